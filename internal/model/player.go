package model

// ScoreKind classifies one scoring event credited to a player.
type ScoreKind uint8

const (
	ScoreFirstKill ScoreKind = iota
	ScoreKill
	ScoreDeny // friendly fire, credited to the opponents
	ScoreHumiliation
	ScoreAnnihilation
	ScorePickupDrop
)

var scoreKindNames = [...]string{
	"firstKill", "kill", "deny", "humiliation", "annihilation", "pickupDrop",
}

func (k ScoreKind) String() string {
	if int(k) < len(scoreKindNames) {
		return scoreKindNames[k]
	}
	return "unknown"
}

// ScoreEntry records a single scoring event.
type ScoreEntry struct {
	Kind     ScoreKind
	Creature string // name of the creature the event concerns, if any
}

// Player owns a team of creatures and accumulates score entries over the
// match. Point values per entry kind live in config, not here.
type Player struct {
	ID   int
	Name string

	score []ScoreEntry
	fled  bool
}

// NewPlayer creates a player with an empty score sheet.
func NewPlayer(id int, name string) *Player {
	return &Player{ID: id, Name: name}
}

// AddScore appends one scoring event.
func (p *Player) AddScore(kind ScoreKind, creature string) {
	p.score = append(p.score, ScoreEntry{Kind: kind, Creature: creature})
}

// Score returns a copy of the player's score sheet.
func (p *Player) Score() []ScoreEntry {
	out := make([]ScoreEntry, len(p.score))
	copy(out, p.score)
	return out
}

// HasScored reports whether any entry of the given kind exists.
func (p *Player) HasScored(kind ScoreKind) bool {
	for _, e := range p.score {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// SetFled marks the player's leader as having fled the battle.
func (p *Player) SetFled() { p.fled = true }

// Fled reports whether the player's leader fled.
func (p *Player) Fled() bool { return p.fled }
