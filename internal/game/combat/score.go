package combat

import (
	"github.com/nandastone/AncientBeast/internal/config"
	"github.com/nandastone/AncientBeast/internal/model"
)

// ScoreSummary is the per-player scoring breakdown exposed to the UI.
type ScoreSummary struct {
	PlayerID int
	Counts   map[model.ScoreKind]int
	Total    int
}

// Summarize folds a player's score sheet into per-kind counts and a point
// total using the configured point values.
func Summarize(p *model.Player, points config.ScorePoints) ScoreSummary {
	s := ScoreSummary{
		PlayerID: p.ID,
		Counts:   make(map[model.ScoreKind]int),
	}
	for _, e := range p.Score() {
		s.Counts[e.Kind]++
		s.Total += points.Value(e.Kind)
	}
	return s
}
