package battle

import (
	"fmt"
	"log/slog"

	"github.com/nandastone/AncientBeast/internal/metrics"
	"github.com/nandastone/AncientBeast/internal/model"
)

// SummonOptions tunes creature creation.
type SummonOptions struct {
	// Active waives materialization sickness: the creature may act the
	// same turn it appears.
	Active bool
	// Leader marks the player's leader unit.
	Leader bool
	// Temp creates a preview creature awaiting confirmation. It occupies
	// the queue's scratch slot, not a queue position, and is skipped by
	// trigger dispatch.
	Temp bool
	// DeathDrop is placed on the creature's hex when it dies.
	DeathDrop *model.Drop
}

// Summon materializes a creature on the grid and schedules it by
// initiative into the next round.
func (g *Game) Summon(p *model.Player, name string, base model.StatBlock, x, y, size int, opts SummonOptions) (*model.Creature, error) {
	c := model.NewCreature(g.creatures.Len(), name, p, x, y, size, base, opts.Active)
	c.Leader = opts.Leader
	c.Temp = opts.Temp
	c.DeathDrop = opts.DeathDrop
	if !g.grid.Place(c) {
		return nil, fmt.Errorf("summoning %s at (%d,%d): footprint blocked", name, x, y)
	}
	g.creatures.Add(c)

	if c.Temp {
		g.queue.SetTemp(c)
		return c, nil
	}
	g.queue.AddByInitiative(c)
	g.record("summon", c.ID, name)
	g.Trigger(model.EventCreatureSummon, c, c)
	return c, nil
}

// ConfirmSummon promotes the preview creature into a real combatant.
func (g *Game) ConfirmSummon() *model.Creature {
	c := g.queue.Temp()
	if c == nil {
		return nil
	}
	g.queue.ClearTemp()
	c.Temp = false
	g.queue.AddByInitiative(c)
	g.record("summon", c.ID, c.Name)
	g.Trigger(model.EventCreatureSummon, c, c)
	return c
}

// CancelSummon discards the preview creature and frees its footprint.
func (g *Game) CancelSummon() {
	if c := g.queue.Temp(); c != nil {
		g.grid.Displace(c)
		g.queue.ClearTemp()
	}
}

// Move walks the active creature to (x, y), spending remaining movement.
// Refused while input is frozen, for immobile, frozen, sick, or dead
// creatures, and when no walkable path fits the movement budget.
func (g *Game) Move(c *model.Creature, x, y int) bool {
	if g.inputFrozen {
		return false
	}
	if c.Dead {
		return false
	}
	if c.Frozen {
		g.signals.Hint(c, "Frozen")
		return false
	}
	if c.MaterializationSickness {
		g.signals.Hint(c, "Sickened")
		return false
	}
	stats := c.Stats()
	if !stats.Flag(model.FlagMoveable) {
		g.signals.Hint(c, "Immovable")
		return false
	}

	steps, ok := g.grid.PathLength(c, x, y)
	if !ok {
		return false
	}
	if steps > c.RemainingMove {
		g.signals.Hint(c, "Out of reach")
		return false
	}

	g.Trigger(model.EventStepOut, c, c)
	if !g.grid.MoveTo(c, x, y) {
		slog.Warn("move blocked after path check", "creature", c.Name, "x", x, "y", y)
		return false
	}
	c.RemainingMove -= steps
	g.record("move", c.ID, fmt.Sprintf("to=(%d,%d) steps=%d", x, y, steps))
	g.Trigger(model.EventCreatureMove, c, c)
	g.stepIn(c)
	return true
}

// stepIn resolves everything waiting on the destination: drop pickup first,
// then the step-in event, then traps — strictly last, so a trap's freshly
// transferred effect is not re-dispatched by the effect phase it was born
// in.
func (g *Game) stepIn(c *model.Creature) {
	for _, p := range c.OccupiedCoords() {
		h := g.grid.HexAt(p[0], p[1])
		if h == nil || h.Drop == nil {
			continue
		}
		d := h.Drop
		h.Drop = nil
		c.AddDrop(d)
		if c.Player != nil {
			c.Player.AddScore(model.ScorePickupDrop, c.Name)
		}
		g.signals.PlaySound("pickup")
		slog.Info("drop collected", "drop", d.Name, "creature", c.Name)
	}

	g.Trigger(model.EventStepIn, c, c)
	g.springTraps(c)
}

// springTraps fires every trap under the creature's footprint. A staged
// effect that refuses to transfer (require guard, non-stackable duplicate)
// does not count as sprung and attaches nothing.
func (g *Game) springTraps(c *model.Creature) {
	for _, p := range c.OccupiedCoords() {
		h := g.grid.HexAt(p[0], p[1])
		if h == nil || h.Trap == nil {
			continue
		}
		t := h.Trap
		sprung := false
		for _, e := range t.Effects {
			if !e.Activate(c) {
				continue
			}
			sprung = true
			if e.Target == c {
				metrics.EffectsAttached.Inc()
				if hint := e.SpecialHint(); hint != "" {
					g.signals.Hint(c, hint)
				}
				g.Trigger(model.EventEffectAttach, c, e)
			}
		}
		if !sprung {
			continue
		}
		metrics.TrapsSprung.Inc()
		g.signals.PlaySound("trap")
		slog.Info("trap sprung", "trap", t.Name, "creature", c.Name)
		if t.DestroyOnActivate {
			t.Destroy()
		}
	}
}
