package model

import "log/slog"

// Creature is the primary combat entity: position and footprint on the hex
// grid, base and derived stat blocks, depletable pools, the ordered list of
// active effects, collected drops, status flags, and lifecycle flags.
//
// Ids are assigned once per match by the game's creature arena and stay
// valid lookup keys for the whole match, dead or alive.
type Creature struct {
	ID     int
	Name   string
	Player *Player
	Leader bool // the player's leader unit; killing it is a humiliation

	// Position: offset coordinates of the rightmost occupied hex. A
	// creature of Size s also occupies the s-1 hexes to its left.
	X, Y int
	Size int

	baseStats StatBlock
	stats     StatBlock

	// Depletable pools, each capped by the corresponding effective stat.
	Health        int
	Energy        int
	Endurance     int
	RemainingMove int

	effects []*Effect // insertion order = application order
	drops   []*Drop

	// Status flags. Cryostasis requires Frozen. Dizzy forfeits the
	// creature's next scheduled turn.
	Frozen     bool
	Cryostasis bool
	Dizzy      bool

	// Lifecycle flags.
	Dead                    bool
	Temp                    bool // preview-only, excluded from dispatch
	MaterializationSickness bool
	Delayed                 bool

	// DeathDrop, if set, is placed on the creature's hex when it dies.
	DeathDrop *Drop
}

// NewCreature summons a creature with full pools. A creature summoned
// "active" skips materialization sickness and may act the same turn.
func NewCreature(id int, name string, p *Player, x, y, size int, base StatBlock, active bool) *Creature {
	c := &Creature{
		ID:                      id,
		Name:                    name,
		Player:                  p,
		X:                       x,
		Y:                       y,
		Size:                    size,
		baseStats:               base,
		stats:                   base,
		MaterializationSickness: !active,
	}
	c.stats.ClampPoolMaxima()
	c.Health = c.stats.Int(StatHealth)
	c.Energy = c.stats.Int(StatEnergy)
	c.Endurance = c.stats.Int(StatEndurance)
	c.RemainingMove = c.stats.Int(StatMovement)
	return c
}

// BaseStats returns a copy of the immutable base block.
func (c *Creature) BaseStats() StatBlock { return c.baseStats }

// Stats returns a copy of the current effective block.
func (c *Creature) Stats() StatBlock { return c.stats }

// RecomputeStats rebuilds the effective block from the base block by folding
// every active effect's alterations in application order, then every
// collected drop's. Pool maxima are floored at 1 and current pools clamped
// to their maxima. This is the only code path that writes c.stats.
func (c *Creature) RecomputeStats() {
	b := c.baseStats
	for _, e := range c.effects {
		b.Apply(e.Alterations())
		b.ApplyFlags(e.Flags())
	}
	for _, d := range c.drops {
		b.Apply(d.Alterations)
	}
	b.ClampPoolMaxima()
	c.stats = b

	if max := c.stats.Int(StatHealth); c.Health > max {
		c.Health = max
	}
	if max := c.stats.Int(StatEnergy); c.Energy > max {
		c.Energy = max
	}
	if max := c.stats.Int(StatEndurance); c.Endurance > max {
		c.Endurance = max
	}
	if max := c.stats.Int(StatMovement); c.RemainingMove > max {
		c.RemainingMove = max
	}
}

// Heal raises (or, for negative regrowth, lowers) health. The amount is
// clamped so health never exceeds its maximum and never drops below 1
// through this path: healing cannot kill. Returns the amount applied.
func (c *Creature) Heal(amount int) int {
	if headroom := c.stats.Int(StatHealth) - c.Health; amount > headroom {
		amount = headroom
	}
	if c.Health+amount < 1 {
		amount = 1 - c.Health
	}
	c.Health += amount
	return amount
}

// Recharge restores energy, clamped to the energy maximum.
func (c *Creature) Recharge(amount int) int {
	max := c.stats.Int(StatEnergy)
	if c.Energy+amount > max {
		amount = max - c.Energy
	}
	c.Energy += amount
	return amount
}

// RestoreEndurance restores endurance, clamped to its maximum.
func (c *Creature) RestoreEndurance(amount int) int {
	max := c.stats.Int(StatEndurance)
	if c.Endurance+amount > max {
		amount = max - c.Endurance
	}
	c.Endurance += amount
	return amount
}

// RestoreMovement restores remaining movement, clamped to the movement stat.
func (c *Creature) RestoreMovement(amount int) int {
	max := c.stats.Int(StatMovement)
	if c.RemainingMove+amount > max {
		amount = max - c.RemainingMove
	}
	c.RemainingMove += amount
	return amount
}

// AddFatigue reduces endurance, floored at 0. Fatigue-immune creatures
// ignore it entirely.
func (c *Creature) AddFatigue(amount int) {
	if c.stats.Flag(FlagFatigueImmunity) {
		return
	}
	c.Endurance -= amount
	if c.Endurance < 0 {
		c.Endurance = 0
	}
}

// IsFatigued reports whether passive regeneration is blocked.
func (c *Creature) IsFatigued() bool {
	return c.Endurance == 0 && !c.stats.Flag(FlagFatigueImmunity)
}

// AddEffect attaches an effect. A non-stackable effect is refused when an
// active effect of the same name is already present; nothing is mutated and
// false is returned. A successful attach recomputes stats.
func (c *Creature) AddEffect(e *Effect) bool {
	if !e.Stackable() && c.FindEffect(e.Name) != nil {
		return false
	}
	e.Target = c
	e.HexTarget = nil
	c.effects = append(c.effects, e)
	c.RecomputeStats()
	return true
}

// ReplaceEffect removes any same-name non-stackable effect first, then
// attaches the new one.
func (c *Creature) ReplaceEffect(e *Effect) {
	if !e.Stackable() {
		if old := c.FindEffect(e.Name); old != nil {
			c.RemoveEffect(old)
			old.Deleted = true
		}
	}
	c.AddEffect(e)
}

// RemoveEffect detaches an effect from the creature's list and recomputes
// stats. Removing an effect that is not attached is a warning no-op.
func (c *Creature) RemoveEffect(e *Effect) {
	for i, cur := range c.effects {
		if cur == e {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			c.RecomputeStats()
			return
		}
	}
	slog.Warn("removing effect not attached to creature",
		"effect", e.Name, "creature", c.Name, "id", c.ID)
}

// FindEffect returns the first active effect with the given name, or nil.
func (c *Creature) FindEffect(name string) *Effect {
	for _, e := range c.effects {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Effects returns a copy of the active effect list in application order.
func (c *Creature) Effects() []*Effect {
	out := make([]*Effect, len(c.effects))
	copy(out, c.effects)
	return out
}

// AddDrop collects a drop: its alterations join the recompute and its pool
// bonuses are applied once.
func (c *Creature) AddDrop(d *Drop) {
	c.drops = append(c.drops, d)
	c.RecomputeStats()
	if d.Health != 0 {
		c.Heal(d.Health)
	}
	if d.Energy != 0 {
		c.Recharge(d.Energy)
	}
}

// Drops returns a copy of the collected drop list.
func (c *Creature) Drops() []*Drop {
	out := make([]*Drop, len(c.drops))
	copy(out, c.drops)
	return out
}

// Freeze stops the creature. With cryostasis the freeze additionally
// survives incoming damage.
func (c *Creature) Freeze(cryostasis bool) {
	c.Frozen = true
	if cryostasis {
		c.Cryostasis = true
	}
}

// Unfreeze clears the frozen state, cryostasis included.
func (c *Creature) Unfreeze() {
	c.Frozen = false
	c.Cryostasis = false
}

// OccupiedCoords returns the offset coordinates of every hex covered by the
// creature's footprint, rightmost first.
func (c *Creature) OccupiedCoords() [][2]int {
	out := make([][2]int, 0, c.Size)
	for i := 0; i < c.Size; i++ {
		out = append(out, [2]int{c.X - i, c.Y})
	}
	return out
}

// AdjacentTo reports whether any hex of c's footprint shares an edge with
// any hex of other's footprint.
func (c *Creature) AdjacentTo(other *Creature) bool {
	if other == nil {
		return false
	}
	for _, a := range c.OccupiedCoords() {
		for _, b := range other.OccupiedCoords() {
			if HexesAdjacent(a[0], a[1], b[0], b[1]) {
				return true
			}
		}
	}
	return false
}
