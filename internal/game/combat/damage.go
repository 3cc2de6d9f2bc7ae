// Package combat holds the damage value object, the defense-mitigation
// formula, and score summaries. Orchestration (triggers, death, queue
// bookkeeping) lives in the battle package; everything here is pure
// computation over model types.
package combat

import (
	"math"

	"github.com/nandastone/AncientBeast/internal/model"
)

// Status short-circuits normal damage application when non-empty.
type Status string

const (
	StatusNone          Status = ""
	StatusDodged        Status = "Dodged"
	StatusShielded      Status = "Shielded"
	StatusDisintegrated Status = "Disintegrated"
)

// Damage represents one damage application from an attacker to a target.
type Damage struct {
	Attacker *model.Creature
	Target   *model.Creature

	// Amounts maps damage type to raw amount before mitigation.
	Amounts map[model.DamageType]int

	// Area is the number of hexes the hit covers; target defense is divided
	// by it, so larger-area hits are mitigated less per target.
	Area int

	// Provenance flags, set by the battle before application.
	Melee    bool
	Counter  bool
	FromTrap bool

	// Effects to apply to the target if the damage lands.
	Effects []*model.Effect

	Status Status
}

// New builds a damage application with normal (empty) status.
func New(attacker, target *model.Creature, amounts map[model.DamageType]int, area int, effects []*model.Effect) *Damage {
	return &Damage{
		Attacker: attacker,
		Target:   target,
		Amounts:  amounts,
		Area:     area,
		Effects:  effects,
	}
}

// Result is the outcome of applying the formula to every damage type.
type Result struct {
	ByType map[model.DamageType]int
	Total  int

	// Valid is false when the computation produced a non-finite value; the
	// caller must abort the application without touching creature state.
	Valid bool
}

// Apply computes final damage against the target's current effective stats.
// Pure damage bypasses mitigation; every other type uses
//
//	points = round(raw * (1 + (offense - defense/area + atkType - defType)/100))
//
// The summed total is floored at 1: a hit that lands always costs at least
// one health.
func (d *Damage) Apply() Result {
	res := Result{ByType: make(map[model.DamageType]int, len(d.Amounts)), Valid: true}

	var atk, def model.StatBlock
	if d.Attacker != nil {
		atk = d.Attacker.Stats()
	}
	if d.Target != nil {
		def = d.Target.Stats()
	}

	total := 0.0
	for typ, raw := range d.Amounts {
		pts := float64(raw)
		if stat, ok := typ.MitigationStat(); ok {
			factor := 1 + (atk.Value(model.StatOffense)-
				def.Value(model.StatDefense)/float64(d.Area)+
				atk.Value(stat)-def.Value(stat))/100
			pts = math.Round(float64(raw) * factor)
		}
		if math.IsNaN(pts) || math.IsInf(pts, 0) {
			res.Valid = false
			return res
		}
		res.ByType[typ] = int(pts)
		total += pts
	}

	if total < 1 {
		total = 1
	}
	res.Total = int(total)
	return res
}
