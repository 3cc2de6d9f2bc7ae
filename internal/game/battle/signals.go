package battle

import (
	"context"

	"github.com/google/uuid"

	"github.com/nandastone/AncientBeast/internal/model"
)

// Grid is the hex-grid collaborator the combat core consumes: occupancy,
// walkability, adjacency, and pathfinding. The geo package provides the
// in-process implementation.
type Grid interface {
	HexAt(x, y int) *model.Hex
	Place(c *model.Creature) bool
	Displace(c *model.Creature)
	MoveTo(c *model.Creature, x, y int) bool
	IsWalkable(x, y, size int, ignore *model.Creature) bool
	AreAdjacent(a, b *model.Creature) bool
	PathLength(c *model.Creature, x, y int) (steps int, ok bool)
}

// Signals is the outward-facing collaborator for user-visible feedback.
// Failures in the combat core surface exclusively through hints and log
// lines, never error dialogs.
type Signals interface {
	Hint(c *model.Creature, text string)
	PlaySound(name string)
	RefreshUI()
}

// NoopSignals discards every signal. Used headless and in tests.
type NoopSignals struct{}

func (NoopSignals) Hint(*model.Creature, string) {}
func (NoopSignals) PlaySound(string)             {}
func (NoopSignals) RefreshUI()                   {}

// ActionRecord is one resolved action written to the replay sink.
type ActionRecord struct {
	MatchID uuid.UUID
	Turn    int
	ActorID int
	Kind    string // summon, move, skip, delay, flee, ability, damage, death
	Detail  string
}

// ActionLog is the replay sink collaborator. The persisted format is the
// sink's business, not the core's.
type ActionLog interface {
	Record(ctx context.Context, rec ActionRecord) error
}

// NoopActionLog drops every record.
type NoopActionLog struct{}

func (NoopActionLog) Record(context.Context, ActionRecord) error { return nil }

// Ability is an externally defined capability dispatched by the trigger
// network. SelfTriggers fire on the holder's own events, OtherTriggers on
// events acted by any other living, non-preview creature.
type Ability interface {
	Name() string
	SelfTriggers() []model.GameEvent
	OtherTriggers() []model.GameEvent
	Require(arg any) bool
	Activate(arg any)
}
