package battle

import (
	"log/slog"

	"github.com/nandastone/AncientBeast/internal/model"
)

// Trigger routes one game event through the dispatch network in the fixed
// two-phase order:
//
//  1. Self phase — the acting creature's own abilities, then its effects,
//     registered for the plain event. Skipped entirely when the actor is
//     already dead.
//  2. Others phase — every other living, non-preview creature's abilities
//     and effects registered for the event's "other" qualifier.
//
// Abilities and effects run to completion per creature before dispatch
// moves to the next creature; counters and reflections depend on this
// order. Traps are never dispatched here — step handling springs them
// after the effect phases so a trap-made effect cannot fire twice.
//
// On phase-boundary events the expired-effect sweep runs first, so an
// effect cannot react on the tick it expires.
func (g *Game) Trigger(ev model.GameEvent, actor *model.Creature, arg any) {
	if ev.IsPhaseBoundary() {
		g.sweepExpiredEffects(ev)
	}

	if actor != nil && !actor.Dead {
		for _, ab := range g.abilities[actor.ID] {
			if hasTrigger(ab.SelfTriggers(), ev) && ab.Require(arg) {
				ab.Activate(arg)
			}
		}
		for _, e := range actor.Effects() {
			if !e.Deleted && e.TriggersOnSelf(ev) {
				e.Activate(arg)
			}
		}
	}

	for _, c := range g.creatures.All() {
		if c == actor || c.Dead || c.Temp {
			continue
		}
		for _, ab := range g.abilities[c.ID] {
			if hasTrigger(ab.OtherTriggers(), ev) && ab.Require(arg) {
				ab.Activate(arg)
			}
		}
		for _, e := range c.Effects() {
			if !e.Deleted && e.TriggersOnOther(ev) {
				e.Activate(arg)
			}
		}
	}
}

func hasTrigger(triggers []model.GameEvent, ev model.GameEvent) bool {
	for _, t := range triggers {
		if t == ev {
			return true
		}
	}
	return false
}

// sweepExpiredEffects deletes every effect whose turn lifetime has elapsed
// for this delete trigger. Effects still staged on a hex are left alone:
// they are cleaned up by being transferred onto a creature and expiring
// there.
func (g *Game) sweepExpiredEffects(ev model.GameEvent) {
	for _, e := range g.effects.All() {
		if e.Deleted || e.Target == nil {
			continue
		}
		if e.ExpiresOn(ev, g.Turn) {
			slog.Debug("effect expired", "effect", e.Name, "id", e.ID,
				"trigger", ev.String())
			g.DeleteEffect(e)
		}
	}
}
