package battle

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nandastone/AncientBeast/internal/metrics"
	"github.com/nandastone/AncientBeast/internal/model"
)

// NextCreature ends the active creature's phase and hands the turn to the
// next queued creature, rolling the round over when the current queue is
// exhausted. Dead, fled, and dizzy creatures are passed over; dizziness is
// spent by the forfeited turn. The turn throttle rejects re-entrant
// turn-ending calls while one is in flight.
func (g *Game) NextCreature() {
	if g.turnThrottle {
		slog.Warn("turn advance already in flight, ignoring")
		return
	}
	g.turnThrottle = true
	defer func() { g.turnThrottle = false }()

	if g.active != nil && !g.delaying {
		g.Trigger(model.EventEndPhase, g.active, g.active)
	}
	g.delaying = false

	for {
		if g.queue.IsCurrentEmpty() {
			if g.queue.IsNextEmpty() {
				g.active = nil
				slog.Info("no creatures left to schedule", "match_id", g.matchID)
				return
			}
			g.nextRound()
		}
		c := g.queue.Dequeue()
		if c == nil {
			continue
		}
		if c.Dead || (c.Player != nil && c.Player.Fled()) {
			continue
		}
		if c.Dizzy {
			c.Dizzy = false
			g.signals.Hint(c, "Dizzy")
			g.record("skip", c.ID, "dizzy")
			continue
		}
		g.startTurn(c)
		return
	}
}

// nextRound copies the next-round roster in, re-sorts the round after, and
// fires the start-of-round event (which sweeps expired effects first). The
// round boundary has no acting creature, so the event carries no actor and
// only other-phase listeners hear it.
func (g *Game) nextRound() {
	g.Turn++
	metrics.RoundsTotal.Inc()
	for _, c := range g.creatures.All() {
		c.Delayed = false
	}
	g.queue.NextRound()
	slog.Info("round started", "turn", g.Turn)
	g.Trigger(model.EventStartOfRound, nil, g.Turn)
}

// startTurn activates a creature: owner-bound traps expire, sickness
// clears, passive regeneration runs unless fatigued, movement and
// endurance reset, and the start-phase event fires.
func (g *Game) startTurn(c *model.Creature) {
	g.active = c
	g.turnStartedAt = time.Now()
	metrics.TurnsTotal.Inc()
	slog.Debug("turn started", "creature", c.Name, "id", c.ID, "turn", g.Turn)

	g.destroyOwnerBoundTraps(c)
	c.MaterializationSickness = false

	if c.IsFatigued() {
		g.signals.Hint(c, "Fatigued")
	} else {
		stats := c.Stats()
		if regrowth := stats.Int(model.StatRegrowth); regrowth != 0 {
			if applied := c.Heal(regrowth); applied != 0 {
				g.Trigger(model.EventHeal, c, applied)
			}
		}
		if meditation := stats.Int(model.StatMeditation); meditation > 0 {
			c.Recharge(meditation)
		}
	}
	stats := c.Stats()
	c.RestoreEndurance(stats.Int(model.StatEndurance))
	c.RestoreMovement(stats.Int(model.StatMovement))

	g.Trigger(model.EventStartPhase, c, c)
	g.signals.RefreshUI()
}

// SkipTurn ends the active creature's turn without acting. Turn-clock and
// match-clock timeouts call this forcibly.
func (g *Game) SkipTurn() {
	if g.active == nil {
		return
	}
	g.record("skip", g.active.ID, "")
	g.NextCreature()
}

// DelayTurn postpones the active creature's turn to later in the round.
// A creature can delay only once per round.
func (g *Game) DelayTurn() bool {
	c := g.active
	if c == nil || c.Delayed {
		return false
	}
	g.record("delay", c.ID, "")
	g.queue.Delay(c, true)
	g.delaying = true
	g.NextCreature()
	return true
}

// Flee removes the active leader from the battle. The match continues on
// points for the fleeing player.
func (g *Game) Flee() bool {
	c := g.active
	if c == nil || !c.Leader || c.Player == nil {
		return false
	}
	c.Player.SetFled()
	g.record("flee", c.ID, "")
	for _, other := range g.creatures.All() {
		if other.Player == c.Player {
			g.queue.Remove(other)
		}
	}
	g.grid.Displace(c)
	g.signals.Hint(c, "Fled")
	slog.Info("leader fled", "creature", c.Name, "player", c.Player.Name)
	g.NextCreature()
	return true
}

// UseAbility spends the active creature's energy on a named ability and
// records it. The ability body itself runs through the trigger network or
// direct calls by the content layer; the core only handles the bookkeeping
// shared by every ability: sickness and energy gating, cost, fatigue.
func (g *Game) UseAbility(name string, cost int) bool {
	c := g.active
	if c == nil {
		return false
	}
	if c.MaterializationSickness {
		g.signals.Hint(c, "Sickened")
		return false
	}
	if reqEnergy := c.Stats().Int(model.StatReqEnergy); c.Energy < cost || c.Energy < reqEnergy {
		g.signals.Hint(c, "Not enough energy")
		return false
	}
	c.Energy -= cost
	g.record("ability", c.ID, fmt.Sprintf("%s cost=%d", name, cost))
	return true
}
