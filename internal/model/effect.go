package model

import "log/slog"

// RequireFunc guards effect activation. A nil guard always passes.
type RequireFunc func(arg any) bool

// ApplyFunc is the reactive body of a triggered effect.
type ApplyFunc func(e *Effect, arg any)

// EffectOptions carries the optional knobs of an Effect. Zero values give a
// permanent, non-stackable, purely passive effect.
type EffectOptions struct {
	Alterations map[Stat]Alteration
	Flags       map[Flag]bool

	Require RequireFunc
	Apply   ApplyFunc

	// SelfTriggers and OtherTriggers are the events this effect reacts to
	// when its target is the acting creature, resp. some other creature.
	SelfTriggers  []GameEvent
	OtherTriggers []GameEvent

	// TurnLifetime of 0 means the effect never expires on its own. A
	// positive lifetime requires a DeleteTrigger event.
	TurnLifetime  int
	DeleteTrigger GameEvent
	HasDelete     bool // true when DeleteTrigger is meaningful

	Stackable          bool
	DeleteOnOwnerDeath bool
	NoLog              bool

	// SpecialHint overrides the hint text shown when the effect activates.
	SpecialHint string
}

// Effect is a named modifier attached to a creature: a bundle of stat
// alterations, an optional reactive require/apply pair, or both. The name is
// the stacking key: non-stackable effects of the same name on the same
// target are mutually exclusive.
//
// While staged inside a trap, an effect targets a hex; activation against a
// creature transfers it there.
type Effect struct {
	ID    int
	Name  string
	Owner *Creature

	// Exactly one of Target/HexTarget is set for a live effect.
	Target    *Creature
	HexTarget *Hex

	CreationTurn int
	Deleted      bool

	opts EffectOptions
}

// NewEffect builds an effect owned by owner against the given creature
// target. The caller (the game) assigns the id and registers it.
func NewEffect(id int, name string, owner, target *Creature, turn int, opts EffectOptions) *Effect {
	e := &Effect{
		ID:           id,
		Name:         name,
		Owner:        owner,
		Target:       target,
		CreationTurn: turn,
		opts:         opts,
	}
	if e.opts.TurnLifetime > 0 && !e.opts.HasDelete {
		slog.Warn("effect has turn lifetime but no delete trigger, defaulting to start of round",
			"effect", name)
		e.opts.DeleteTrigger = EventStartOfRound
		e.opts.HasDelete = true
	}
	return e
}

// NewHexEffect builds an effect staged against a hex, to be transferred to a
// creature by a trap.
func NewHexEffect(id int, name string, owner *Creature, hex *Hex, turn int, opts EffectOptions) *Effect {
	e := NewEffect(id, name, owner, nil, turn, opts)
	e.HexTarget = hex
	return e
}

// Options returns the effect's option set.
func (e *Effect) Options() EffectOptions { return e.opts }

// Alterations returns the numeric stat alterations this effect contributes.
func (e *Effect) Alterations() map[Stat]Alteration { return e.opts.Alterations }

// Flags returns the boolean stat overrides this effect contributes.
func (e *Effect) Flags() map[Flag]bool { return e.opts.Flags }

// Stackable reports whether the effect may coexist with a same-name effect.
func (e *Effect) Stackable() bool { return e.opts.Stackable }

// NoLog reports whether activation logging is suppressed.
func (e *Effect) NoLog() bool { return e.opts.NoLog }

// SpecialHint returns the override hint text shown on activation, or ""
// for the default.
func (e *Effect) SpecialHint() string { return e.opts.SpecialHint }

// DeleteOnOwnerDeath reports whether the effect dies with its owner.
func (e *Effect) DeleteOnOwnerDeath() bool { return e.opts.DeleteOnOwnerDeath }

// TriggersOnSelf reports whether the effect reacts to ev on its own target.
func (e *Effect) TriggersOnSelf(ev GameEvent) bool {
	for _, t := range e.opts.SelfTriggers {
		if t == ev {
			return true
		}
	}
	return false
}

// TriggersOnOther reports whether the effect reacts to ev fired by another
// creature.
func (e *Effect) TriggersOnOther(ev GameEvent) bool {
	for _, t := range e.opts.OtherTriggers {
		if t == ev {
			return true
		}
	}
	return false
}

// ExpiresOn reports whether the effect's lifetime has run out for a delete
// trigger firing on the given turn. An effect created on turn N with
// lifetime L survives every firing before turn N+L.
func (e *Effect) ExpiresOn(ev GameEvent, turn int) bool {
	if e.opts.TurnLifetime <= 0 || !e.opts.HasDelete {
		return false
	}
	if e.opts.DeleteTrigger != ev {
		return false
	}
	return turn-e.CreationTurn >= e.opts.TurnLifetime
}

// Activate runs the effect against arg. The require guard is evaluated
// first; on failure nothing happens and false is returned. A hex-staged
// effect activated against a creature transfers itself onto it before
// running its body — this is how trap-staged effects land on the creature
// that sprang them. A refused transfer (non-stackable duplicate) leaves
// the effect staged on its hex and returns false.
func (e *Effect) Activate(arg any) bool {
	if e.opts.Require != nil && !e.opts.Require(arg) {
		return false
	}
	if c, ok := arg.(*Creature); ok && e.HexTarget != nil {
		if !c.AddEffect(e) {
			return false
		}
	}
	if !e.opts.NoLog {
		slog.Info("effect activated", "effect", e.Name, "id", e.ID)
	}
	if e.opts.Apply != nil {
		e.opts.Apply(e, arg)
	}
	return true
}
