package combat

import (
	"testing"

	"github.com/nandastone/AncientBeast/internal/config"
	"github.com/nandastone/AncientBeast/internal/model"
)

func TestSummarize(t *testing.T) {
	points := config.DefaultMatch().Score

	p := model.NewPlayer(1, "Red")
	p.AddScore(model.ScoreFirstKill, "Snow Bunny")
	p.AddScore(model.ScoreKill, "Snow Bunny")
	p.AddScore(model.ScoreKill, "Uncle Fungus")
	p.AddScore(model.ScorePickupDrop, "frog leg")

	s := Summarize(p, points)
	if s.PlayerID != 1 {
		t.Errorf("PlayerID = %d, want 1", s.PlayerID)
	}
	if got := s.Counts[model.ScoreKill]; got != 2 {
		t.Errorf("kill count = %d, want 2", got)
	}
	want := points.FirstKill + 2*points.Kill + points.PickupDrop
	if s.Total != want {
		t.Errorf("Total = %d, want %d", s.Total, want)
	}
}

func TestSummarize_EmptySheet(t *testing.T) {
	p := model.NewPlayer(2, "Blue")
	s := Summarize(p, config.DefaultMatch().Score)
	if s.Total != 0 || len(s.Counts) != 0 {
		t.Errorf("empty sheet summary = %+v, want zero totals", s)
	}
}
