package model

// Drop is a permanent pickup left on a hex when a creature dies. The next
// creature entering the hex collects it: its alterations join the owner's
// recompute through the drop list (stackable without limit) and its pool
// bonuses restore health and energy once, on pickup.
type Drop struct {
	Name string
	Hex  *Hex

	Alterations map[Stat]Alteration

	// One-time pool restores applied on pickup.
	Health int
	Energy int
}

// PlaceDrop binds a drop to a hex. An existing drop on the hex is replaced;
// death sites are rare enough that the last corpse wins.
func PlaceDrop(d *Drop, hex *Hex) {
	d.Hex = hex
	hex.Drop = d
}
