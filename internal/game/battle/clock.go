package battle

import (
	"log/slog"
	"time"
)

// EnforceClocks applies the configured turn and match clocks. The combat
// core never suspends mid-calculation, so clocks are polled by the external
// driver loop rather than fired from timer goroutines: the forced skip runs
// on the same synchronous call chain as every other action.
//
// An expired match clock freezes input and stops further turns; the match
// is then decided on points. An expired turn clock forcibly skips the
// active creature's turn.
func (g *Game) EnforceClocks(now time.Time) {
	if g.cfg.MatchTime > 0 && !g.matchStartedAt.IsZero() &&
		now.Sub(g.matchStartedAt) >= time.Duration(g.cfg.MatchTime)*time.Second {
		if !g.timedOut {
			g.timedOut = true
			g.FreezeInput()
			slog.Info("match clock expired, deciding on points", "match_id", g.matchID)
		}
		return
	}
	if g.cfg.TurnTime > 0 && g.active != nil &&
		now.Sub(g.turnStartedAt) >= time.Duration(g.cfg.TurnTime)*time.Second {
		slog.Info("turn clock expired, skipping", "creature", g.active.Name)
		g.SkipTurn()
	}
}

// TimedOut reports whether the match clock has expired.
func (g *Game) TimedOut() bool { return g.timedOut }
