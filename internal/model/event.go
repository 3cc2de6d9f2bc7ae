package model

// GameEvent identifies one kind of game event routed through the trigger
// dispatcher. Capability holders register explicit self and other trigger
// sets instead of matching event names by pattern.
type GameEvent uint8

const (
	EventStepIn GameEvent = iota
	EventStepOut
	EventCreatureMove
	EventAttack
	EventUnderAttack
	EventDamage
	EventHeal
	EventEffectAttach
	EventCreatureSummon
	EventCreatureDeath
	EventStartPhase
	EventEndPhase
	EventStartOfRound
	EventReset
)

var eventNames = [...]string{
	"onStepIn", "onStepOut", "onCreatureMove", "onAttack", "onUnderAttack",
	"onDamage", "onHeal", "onEffectAttach", "onCreatureSummon",
	"onCreatureDeath", "onStartPhase", "onEndPhase", "onStartOfRound",
	"onReset",
}

func (e GameEvent) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// IsPhaseBoundary reports whether expired-effect sweeps run before this
// event is dispatched, so an effect cannot fire on the tick it expires.
func (e GameEvent) IsPhaseBoundary() bool {
	switch e {
	case EventReset, EventStartPhase, EventEndPhase, EventStartOfRound:
		return true
	}
	return false
}
