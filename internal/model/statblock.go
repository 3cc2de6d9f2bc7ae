package model

import "math"

// StatBlock is one snapshot of creature statistics: numeric stats plus
// boolean flags. Creatures carry two snapshots, the immutable base block and
// the derived effective block rebuilt by RecomputeStats.
type StatBlock struct {
	values [statCount]float64
	flags  [flagCount]bool
}

// NewStatBlock builds a block from explicit stat values. Unlisted stats are
// zero, unlisted flags are false except moveable which defaults to true.
func NewStatBlock(values map[Stat]float64, flags map[Flag]bool) StatBlock {
	var b StatBlock
	b.flags[FlagMoveable] = true
	for s, v := range values {
		b.values[s] = v
	}
	for f, v := range flags {
		b.flags[f] = v
	}
	return b
}

// Value returns the current numeric value of a stat. The read-only
// accessors take value receivers so they chain onto snapshot copies.
func (b StatBlock) Value(s Stat) float64 { return b.values[s] }

// SetValue overwrites a numeric stat.
func (b *StatBlock) SetValue(s Stat, v float64) { b.values[s] = v }

// Flag returns the current value of a boolean stat.
func (b StatBlock) Flag(f Flag) bool { return b.flags[f] }

// SetFlag overwrites a boolean stat.
func (b *StatBlock) SetFlag(f Flag, v bool) { b.flags[f] = v }

// Int returns a numeric stat rounded to the nearest integer.
func (b StatBlock) Int(s Stat) int { return int(math.Round(b.values[s])) }

// Apply folds one contributor's alterations into the block. Each alteration
// transforms the value computed so far in this pass, so successive
// contributors compose sequentially.
func (b *StatBlock) Apply(alts map[Stat]Alteration) {
	for s, a := range alts {
		switch a.Op {
		case AlterSet:
			b.values[s] = a.Value
		case AlterMultiply:
			b.values[s] *= a.Value
		case AlterDivide:
			if a.Value != 0 {
				b.values[s] /= a.Value
			}
		}
	}
}

// ApplyFlags folds one contributor's boolean overrides into the block.
func (b *StatBlock) ApplyFlags(flags map[Flag]bool) {
	for f, v := range flags {
		b.flags[f] = v
	}
}

// ClampPoolMaxima floors the four pool maximum stats at 1. Runs after every
// recompute so no stack of debuffs can zero out a pool ceiling.
func (b *StatBlock) ClampPoolMaxima() {
	for _, s := range []Stat{StatHealth, StatEndurance, StatEnergy, StatMovement} {
		if b.values[s] < 1 {
			b.values[s] = 1
		}
	}
}
