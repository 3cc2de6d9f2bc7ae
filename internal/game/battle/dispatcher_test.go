package battle

import (
	"testing"

	"github.com/nandastone/AncientBeast/internal/model"
)

// stubAbility counts activations for one trigger set.
type stubAbility struct {
	name          string
	selfTriggers  []model.GameEvent
	otherTriggers []model.GameEvent
	require       func(arg any) bool
	fired         int
}

func (a *stubAbility) Name() string                     { return a.name }
func (a *stubAbility) SelfTriggers() []model.GameEvent  { return a.selfTriggers }
func (a *stubAbility) OtherTriggers() []model.GameEvent { return a.otherTriggers }
func (a *stubAbility) Activate(any)                     { a.fired++ }
func (a *stubAbility) Require(arg any) bool {
	if a.require == nil {
		return true
	}
	return a.require(arg)
}

func TestTrigger_SelfAndOtherPhases(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	q := model.NewPlayer(1, "Blue")
	g.AddPlayer(p)
	g.AddPlayer(q)
	actor := mustSummon(t, g, p, "actor", 10, nil, 1, 1, SummonOptions{Active: true})
	watcher := mustSummon(t, g, q, "watcher", 8, nil, 6, 4, SummonOptions{Active: true})

	own := &stubAbility{name: "own", selfTriggers: []model.GameEvent{model.EventCreatureMove}}
	reactive := &stubAbility{name: "reactive", otherTriggers: []model.GameEvent{model.EventCreatureMove}}
	wrongPhase := &stubAbility{name: "wrongPhase", selfTriggers: []model.GameEvent{model.EventCreatureMove}}
	g.RegisterAbility(actor, own)
	g.RegisterAbility(watcher, reactive)
	g.RegisterAbility(watcher, wrongPhase)

	g.Trigger(model.EventCreatureMove, actor, actor)

	if own.fired != 1 {
		t.Errorf("actor's self ability fired %d times, want 1", own.fired)
	}
	if reactive.fired != 1 {
		t.Errorf("watcher's other ability fired %d times, want 1", reactive.fired)
	}
	if wrongPhase.fired != 0 {
		t.Errorf("watcher's self-trigger ability fired %d times on another's event, want 0", wrongPhase.fired)
	}
}

func TestTrigger_DeadActorSkipsSelfPhase(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	q := model.NewPlayer(1, "Blue")
	g.AddPlayer(p)
	g.AddPlayer(q)
	actor := mustSummon(t, g, p, "actor", 10, nil, 1, 1, SummonOptions{Active: true})
	watcher := mustSummon(t, g, q, "watcher", 8, nil, 6, 4, SummonOptions{Active: true})

	own := &stubAbility{name: "own", selfTriggers: []model.GameEvent{model.EventDamage}}
	reactive := &stubAbility{name: "reactive", otherTriggers: []model.GameEvent{model.EventDamage}}
	g.RegisterAbility(actor, own)
	g.RegisterAbility(watcher, reactive)

	actor.Dead = true
	g.Trigger(model.EventDamage, actor, nil)

	if own.fired != 0 {
		t.Error("dead actor's own ability fired")
	}
	if reactive.fired != 1 {
		t.Error("others phase should still run when the actor is dead")
	}
}

func TestTrigger_RequireGuardsActivation(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	actor := mustSummon(t, g, p, "actor", 10, nil, 1, 1, SummonOptions{Active: true})

	guarded := &stubAbility{
		name:         "guarded",
		selfTriggers: []model.GameEvent{model.EventStartPhase},
		require:      func(any) bool { return false },
	}
	g.RegisterAbility(actor, guarded)

	g.Trigger(model.EventStartPhase, actor, actor)
	if guarded.fired != 0 {
		t.Error("ability fired despite failing require guard")
	}
}

func TestTrigger_PreviewCreaturesExcluded(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	q := model.NewPlayer(1, "Blue")
	g.AddPlayer(p)
	g.AddPlayer(q)
	actor := mustSummon(t, g, p, "actor", 10, nil, 1, 1, SummonOptions{Active: true})
	preview := mustSummon(t, g, q, "preview", 8, nil, 6, 4, SummonOptions{Temp: true})

	reactive := &stubAbility{name: "reactive", otherTriggers: []model.GameEvent{model.EventCreatureMove}}
	g.RegisterAbility(preview, reactive)

	g.Trigger(model.EventCreatureMove, actor, actor)
	if reactive.fired != 0 {
		t.Error("preview creature reacted to a trigger")
	}
}

func TestEffectExpiry_SweptBeforeDispatch(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	c := mustSummon(t, g, p, "target", 5, nil, 2, 2, SummonOptions{Active: true})

	g.Turn = 3
	e := g.NewEffect("Chill", nil, c, model.EffectOptions{
		Alterations:   map[model.Stat]model.Alteration{model.StatMovement: model.Multiply(0.5)},
		TurnLifetime:  1,
		DeleteTrigger: model.EventStartOfRound,
		HasDelete:     true,
		NoLog:         true,
	})
	if !g.AttachEffect(e, c) {
		t.Fatal("attach failed")
	}

	// Same turn it was created: the lifetime has not elapsed yet.
	g.Trigger(model.EventStartOfRound, nil, nil)
	if e.Deleted || c.FindEffect("Chill") == nil {
		t.Fatal("effect expired on its creation turn")
	}

	g.Turn = 4
	g.Trigger(model.EventStartOfRound, nil, nil)
	if !e.Deleted {
		t.Error("effect not swept after its lifetime elapsed")
	}
	if c.FindEffect("Chill") != nil {
		t.Error("expired effect still attached to the creature")
	}
	if got := c.Stats().Int(model.StatMovement); got != 5 {
		t.Errorf("movement = %d after expiry, want base 5", got)
	}
}

func TestEffectExpiry_OnlyOnMatchingTrigger(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	c := mustSummon(t, g, p, "target", 5, nil, 2, 2, SummonOptions{Active: true})

	e := g.NewEffect("Brand", nil, c, model.EffectOptions{
		TurnLifetime:  1,
		DeleteTrigger: model.EventEndPhase,
		HasDelete:     true,
		NoLog:         true,
	})
	g.AttachEffect(e, c)

	g.Turn = 5
	g.Trigger(model.EventStartOfRound, nil, nil)
	if e.Deleted {
		t.Error("effect expired on a non-matching phase boundary")
	}
	g.Trigger(model.EventEndPhase, c, c)
	if !e.Deleted {
		t.Error("effect not expired on its delete trigger")
	}
}

func TestDeleteEffect_HexStagedRefused(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	owner := mustSummon(t, g, p, "owner", 5, nil, 2, 2, SummonOptions{Active: true})

	h := g.grid.HexAt(5, 3)
	e := g.NewHexEffect("Snare", owner, h, model.EffectOptions{NoLog: true})
	g.DeleteEffect(e)
	if e.Deleted {
		t.Error("hex-staged effect must not be deletable before transfer")
	}
}

func TestAttachEffect_NonStackableDuplicate(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	c := mustSummon(t, g, p, "target", 5, nil, 2, 2, SummonOptions{Active: true})

	first := g.NewEffect("Curse", nil, c, model.EffectOptions{NoLog: true})
	second := g.NewEffect("Curse", nil, c, model.EffectOptions{NoLog: true})
	if !g.AttachEffect(first, c) {
		t.Fatal("first attach failed")
	}
	if g.AttachEffect(second, c) {
		t.Error("non-stackable duplicate was attached")
	}

	g.ReplaceEffect(second, c)
	if !first.Deleted {
		t.Error("replace did not tombstone the old effect")
	}
	if c.FindEffect("Curse") != second {
		t.Error("replace did not attach the new effect")
	}
}
