package battle

import (
	"log/slog"

	"github.com/nandastone/AncientBeast/internal/metrics"
	"github.com/nandastone/AncientBeast/internal/model"
)

// NewEffect constructs and registers an effect against a creature target.
// The effect is not attached yet; use AttachEffect, or hand it to a Damage
// or Trap.
func (g *Game) NewEffect(name string, owner, target *model.Creature, opts model.EffectOptions) *model.Effect {
	e := model.NewEffect(g.effects.Len(), name, owner, target, g.Turn, opts)
	g.effects.Add(e)
	return e
}

// NewHexEffect constructs and registers an effect staged against a hex for
// trap transfer.
func (g *Game) NewHexEffect(name string, owner *model.Creature, hex *model.Hex, opts model.EffectOptions) *model.Effect {
	e := model.NewHexEffect(g.effects.Len(), name, owner, hex, g.Turn, opts)
	g.effects.Add(e)
	return e
}

// AttachEffect attaches an effect to a creature. A non-stackable duplicate
// is rejected with no mutation and false. A successful attach fires the
// attach trigger after the target's stats are recomputed.
func (g *Game) AttachEffect(e *model.Effect, target *model.Creature) bool {
	if !target.AddEffect(e) {
		slog.Debug("non-stackable effect refused", "effect", e.Name,
			"target", target.Name)
		return false
	}
	metrics.EffectsAttached.Inc()
	if hint := e.SpecialHint(); hint != "" {
		g.signals.Hint(target, hint)
	}
	g.Trigger(model.EventEffectAttach, target, e)
	return true
}

// ReplaceEffect removes any same-name non-stackable effect on the target
// before attaching, tombstoning the replaced one in the registry.
func (g *Game) ReplaceEffect(e *model.Effect, target *model.Creature) {
	if !e.Stackable() {
		if old := target.FindEffect(e.Name); old != nil {
			g.DeleteEffect(old)
		}
	}
	g.AttachEffect(e, target)
}

// DeleteEffect removes an effect from its target's list and tombstones it in
// the registry — both, or neither. Deleting an effect still staged on a hex
// is a warning no-op: hex-staged effects only leave by being transferred
// onto a creature and deleted there.
func (g *Game) DeleteEffect(e *model.Effect) {
	if e.Target == nil {
		slog.Warn("cannot delete hex-staged effect", "effect", e.Name, "id", e.ID)
		return
	}
	if e.Deleted {
		return
	}
	e.Target.RemoveEffect(e)
	e.Deleted = true
}

// PlaceTrap stages a trap on a hex. The staged effects should target the
// hex (NewHexEffect); springing transfers them to the stepping creature.
func (g *Game) PlaceTrap(name string, hex *model.Hex, owner *model.Creature, effects []*model.Effect, oneShot, ownerTurnBound bool) *model.Trap {
	g.trapSeq++
	t := model.NewTrap(g.trapSeq, name, hex, owner, effects)
	t.DestroyOnActivate = oneShot
	t.OwnerTurnBound = ownerTurnBound
	g.traps = append(g.traps, t)
	return t
}

// destroyOwnerBoundTraps clears traps whose lifetime is tied to their
// owner's active-turn boundary. Runs when the owner's turn starts.
func (g *Game) destroyOwnerBoundTraps(owner *model.Creature) {
	for _, t := range g.traps {
		if !t.Destroyed && t.OwnerTurnBound && t.Owner == owner {
			t.Destroy()
		}
	}
}
