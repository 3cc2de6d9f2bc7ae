// Package battle orchestrates one match: the creature and effect arenas,
// turn and round progression, trigger dispatch, damage application, traps,
// drops, and scoring. All mutation happens synchronously within the turn
// call chain; nothing here runs concurrently with itself.
package battle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nandastone/AncientBeast/internal/arena"
	"github.com/nandastone/AncientBeast/internal/config"
	"github.com/nandastone/AncientBeast/internal/game/combat"
	"github.com/nandastone/AncientBeast/internal/game/queue"
	"github.com/nandastone/AncientBeast/internal/model"
)

// Game is the match orchestrator. Exactly one match is live per instance;
// Teardown fully resets state before the next one.
type Game struct {
	cfg     config.Match
	grid    Grid
	signals Signals
	actions ActionLog
	matchID uuid.UUID

	creatures *arena.Store[*model.Creature]
	effects   *arena.Store[*model.Effect]
	players   []*model.Player
	abilities map[int][]Ability
	traps     []*model.Trap
	trapSeq   int

	queue *queue.Queue

	// Turn is the round counter; effects record it as their creation turn.
	Turn int

	active       *model.Creature
	turnThrottle bool
	inputFrozen  bool
	firstKill    bool
	delaying     bool
	timedOut     bool

	matchStartedAt time.Time
	turnStartedAt  time.Time
}

// New wires a match. Nil signals or actions fall back to no-ops.
func New(cfg config.Match, grid Grid, signals Signals, actions ActionLog) *Game {
	if signals == nil {
		signals = NoopSignals{}
	}
	if actions == nil {
		actions = NoopActionLog{}
	}
	return &Game{
		cfg:       cfg,
		grid:      grid,
		signals:   signals,
		actions:   actions,
		matchID:   uuid.New(),
		creatures: arena.NewStore[*model.Creature](),
		effects:   arena.NewStore[*model.Effect](),
		abilities: make(map[int][]Ability),
		queue:     queue.New(),
	}
}

// MatchID returns the replay correlation id of this match.
func (g *Game) MatchID() uuid.UUID { return g.matchID }

// AddPlayer registers a player before the match starts.
func (g *Game) AddPlayer(p *model.Player) { g.players = append(g.players, p) }

// Players returns the registered players.
func (g *Game) Players() []*model.Player { return g.players }

// Creature looks up a creature by id. Dead creatures stay resolvable for
// the remainder of the match.
func (g *Game) Creature(id int) (*model.Creature, bool) {
	return g.creatures.Get(id)
}

// Creatures returns a snapshot of every registered creature.
func (g *Game) Creatures() []*model.Creature { return g.creatures.All() }

// ActiveCreature returns the creature whose turn it is, or nil.
func (g *Game) ActiveCreature() *model.Creature { return g.active }

// Queue returns the turn scheduler, for queue-state queries by the UI.
func (g *Game) Queue() *queue.Queue { return g.queue }

// RegisterAbility attaches an externally defined ability to a creature.
func (g *Game) RegisterAbility(c *model.Creature, ab Ability) {
	g.abilities[c.ID] = append(g.abilities[c.ID], ab)
}

// ScoreSummaries returns the per-player scoring breakdown.
func (g *Game) ScoreSummaries() []combat.ScoreSummary {
	out := make([]combat.ScoreSummary, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, combat.Summarize(p, g.cfg.Score))
	}
	return out
}

// FreezeInput blocks player actions while queued animations resolve.
func (g *Game) FreezeInput() { g.inputFrozen = true }

// ThawInput resumes the synchronous state machine once animations complete.
func (g *Game) ThawInput() { g.inputFrozen = false }

// InputFrozen reports whether a movement or animation is in progress.
func (g *Game) InputFrozen() bool { return g.inputFrozen }

// Start fires the reset event and hands the first turn out.
func (g *Game) Start() {
	slog.Info("match started", "match_id", g.matchID, "players", len(g.players))
	g.matchStartedAt = time.Now()
	g.Trigger(model.EventReset, nil, nil)
	g.NextCreature()
}

// Teardown clears all match state. No state leaks across matches.
func (g *Game) Teardown() {
	g.creatures.Reset()
	g.effects.Reset()
	g.queue.Reset()
	g.players = nil
	g.abilities = make(map[int][]Ability)
	g.traps = nil
	g.trapSeq = 0
	g.Turn = 0
	g.active = nil
	g.turnThrottle = false
	g.inputFrozen = false
	g.firstKill = false
	g.timedOut = false
	g.matchStartedAt = time.Time{}
	g.turnStartedAt = time.Time{}
	slog.Info("match torn down", "match_id", g.matchID)
}

// record writes one resolved action to the replay sink. Sink errors are
// logged and swallowed: replay loss never corrupts a live match.
func (g *Game) record(kind string, actorID int, detail string) {
	rec := ActionRecord{
		MatchID: g.matchID,
		Turn:    g.Turn,
		ActorID: actorID,
		Kind:    kind,
		Detail:  detail,
	}
	if err := g.actions.Record(context.Background(), rec); err != nil {
		slog.Warn("recording action failed", "kind", kind, "err", err)
	}
}
