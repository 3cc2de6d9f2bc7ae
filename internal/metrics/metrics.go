// Package metrics exposes Prometheus counters for the combat core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TurnsTotal counts creature turn activations.
	TurnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "turns_total",
		Help:      "Number of creature turns started.",
	})

	// RoundsTotal counts round advances.
	RoundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "rounds_total",
		Help:      "Number of rounds started.",
	})

	// DamageDealt accumulates final damage points by type.
	DamageDealt = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "damage_points_total",
		Help:      "Final damage points applied, by damage type.",
	}, []string{"type"})

	// CreaturesKilled counts deaths.
	CreaturesKilled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "creatures_killed_total",
		Help:      "Number of creature deaths.",
	})

	// EffectsAttached counts successful effect attachments.
	EffectsAttached = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "effects_attached_total",
		Help:      "Number of effects successfully attached to creatures.",
	})

	// TrapsSprung counts trap activations.
	TrapsSprung = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "combat",
		Name:      "traps_sprung_total",
		Help:      "Number of traps sprung by creatures stepping in.",
	})
)
