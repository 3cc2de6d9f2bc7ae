package model

// Trap is a hex-bound, owner-scoped object holding effects staged for
// transfer. Whichever creature steps into the hex receives the staged
// effects; the trap itself never alters stats directly.
type Trap struct {
	ID    int
	Name  string
	Hex   *Hex
	Owner *Creature

	// Effects staged against the trap's hex. Springing the trap activates
	// each one against the stepping creature, transferring it there.
	Effects []*Effect

	// DestroyOnActivate removes the trap after its first spring.
	DestroyOnActivate bool

	// OwnerTurnBound destroys the trap at the boundary of its owner's next
	// active turn instead of leaving it in place indefinitely.
	OwnerTurnBound bool

	Destroyed bool
}

// NewTrap stages a trap on a hex and binds it there.
func NewTrap(id int, name string, hex *Hex, owner *Creature, effects []*Effect) *Trap {
	t := &Trap{
		ID:      id,
		Name:    name,
		Hex:     hex,
		Owner:   owner,
		Effects: effects,
	}
	hex.Trap = t
	return t
}

// Destroy unbinds the trap from its hex.
func (t *Trap) Destroy() {
	t.Destroyed = true
	if t.Hex != nil && t.Hex.Trap == t {
		t.Hex.Trap = nil
	}
}
