package battle

import (
	"log/slog"

	"github.com/nandastone/AncientBeast/internal/metrics"
	"github.com/nandastone/AncientBeast/internal/model"
)

// Kill is the terminal transition for a creature: marks it dead, fires the
// death event, scores the kill, drops the death pickup, clears owner-bound
// effects, removes the creature from both queues, and advances the turn if
// the dying creature held it. The creature stays registered in the arena —
// its id remains a valid lookup key for the rest of the match.
func (g *Game) Kill(target, killer *model.Creature) {
	if target.Dead {
		slog.Info("kill on already dead creature ignored", "target", target.Name)
		return
	}
	target.Dead = true
	target.Health = 0
	metrics.CreaturesKilled.Inc()
	g.record("death", target.ID, "")
	slog.Info("creature died", "creature", target.Name, "id", target.ID)

	g.Trigger(model.EventCreatureDeath, target, target)
	g.scoreKill(target, killer)

	for _, e := range g.effects.All() {
		if !e.Deleted && e.Owner == target && e.DeleteOnOwnerDeath() && e.Target != nil {
			g.DeleteEffect(e)
		}
	}
	for _, t := range g.traps {
		if !t.Destroyed && t.Owner == target && t.OwnerTurnBound {
			t.Destroy()
		}
	}

	if target.DeathDrop != nil {
		if h := g.grid.HexAt(target.X, target.Y); h != nil {
			model.PlaceDrop(target.DeathDrop, h)
		}
	}

	g.grid.Displace(target)
	g.queue.Remove(target)

	if g.active == target {
		g.NextCreature()
		return
	}
	// Occupancy changed under the active creature; let the UI recompute
	// its movement options.
	g.signals.RefreshUI()
}

// scoreKill credits the scoring events for one death: deny for friendly
// fire, otherwise first-kill, kill, humiliation for a leader, and
// annihilation when the whole team is wiped.
func (g *Game) scoreKill(target, killer *model.Creature) {
	if killer == nil || killer.Player == nil || target.Player == nil {
		return
	}
	if killer.Player == target.Player {
		for _, p := range g.players {
			if p != killer.Player {
				p.AddScore(model.ScoreDeny, target.Name)
			}
		}
		return
	}

	if !g.firstKill {
		g.firstKill = true
		killer.Player.AddScore(model.ScoreFirstKill, target.Name)
	}
	killer.Player.AddScore(model.ScoreKill, target.Name)
	if target.Leader {
		killer.Player.AddScore(model.ScoreHumiliation, target.Name)
	}
	if g.teamWiped(target.Player) {
		killer.Player.AddScore(model.ScoreAnnihilation, target.Name)
	}
}

// teamWiped reports whether every non-preview creature of a player is dead.
func (g *Game) teamWiped(p *model.Player) bool {
	for _, c := range g.creatures.All() {
		if c.Player == p && !c.Temp && !c.Dead {
			return false
		}
	}
	return true
}
