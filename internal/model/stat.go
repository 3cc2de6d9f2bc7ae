package model

// Stat identifies a numeric creature statistic.
type Stat uint8

const (
	StatHealth Stat = iota
	StatRegrowth
	StatEndurance
	StatEnergy
	StatMeditation
	StatInitiative
	StatOffense
	StatDefense
	StatMovement
	StatPierce
	StatSlash
	StatCrush
	StatShock
	StatBurn
	StatFrost
	StatMental
	StatReqEnergy
	statCount // sentinel, keep last
)

var statNames = [statCount]string{
	"health", "regrowth", "endurance", "energy", "meditation",
	"initiative", "offense", "defense", "movement",
	"pierce", "slash", "crush", "shock", "burn", "frost",
	"mental", "reqEnergy",
}

func (s Stat) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}
	return "unknown"
}

// Flag identifies a boolean creature statistic.
type Flag uint8

const (
	FlagMoveable Flag = iota
	FlagFatigueImmunity
	flagCount // sentinel, keep last
)

func (f Flag) String() string {
	switch f {
	case FlagMoveable:
		return "moveable"
	case FlagFatigueImmunity:
		return "fatigueImmunity"
	}
	return "unknown"
}

// AlterOp defines how an Alteration is applied to the running stat value.
type AlterOp uint8

const (
	AlterSet      AlterOp = iota // overwrite with Value (last writer wins)
	AlterMultiply                // running value × Value
	AlterDivide                  // running value ÷ Value
)

// Alteration is a single stat-affecting entry contributed by an Effect or a
// Drop. Multiply and Divide compose against the value computed so far in the
// current recompute pass, not against the base stat.
type Alteration struct {
	Op    AlterOp
	Value float64
}

// Set returns an alteration that overwrites the stat.
func Set(v float64) Alteration { return Alteration{Op: AlterSet, Value: v} }

// Multiply returns an alteration that scales the running stat value.
func Multiply(f float64) Alteration { return Alteration{Op: AlterMultiply, Value: f} }

// Divide returns an alteration that divides the running stat value.
func Divide(f float64) Alteration { return Alteration{Op: AlterDivide, Value: f} }

// DamageType identifies one entry in a damage amount map.
type DamageType uint8

const (
	DamagePierce DamageType = iota
	DamageSlash
	DamageCrush
	DamageShock
	DamageBurn
	DamageFrost
	DamageMental
	DamagePure // bypasses mitigation entirely
)

var damageTypeNames = [...]string{
	"pierce", "slash", "crush", "shock", "burn", "frost", "mental", "pure",
}

func (d DamageType) String() string {
	if int(d) < len(damageTypeNames) {
		return damageTypeNames[d]
	}
	return "unknown"
}

// MitigationStat returns the stat that offsets this damage type on both
// sides of the formula. ok is false for pure damage.
func (d DamageType) MitigationStat() (stat Stat, ok bool) {
	switch d {
	case DamagePierce:
		return StatPierce, true
	case DamageSlash:
		return StatSlash, true
	case DamageCrush:
		return StatCrush, true
	case DamageShock:
		return StatShock, true
	case DamageBurn:
		return StatBurn, true
	case DamageFrost:
		return StatFrost, true
	case DamageMental:
		return StatMental, true
	}
	return 0, false
}
