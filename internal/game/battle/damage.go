package battle

import (
	"fmt"
	"log/slog"

	"github.com/nandastone/AncientBeast/internal/game/combat"
	"github.com/nandastone/AncientBeast/internal/metrics"
	"github.com/nandastone/AncientBeast/internal/model"
)

// DamageOutcome reports what one damage application did.
type DamageOutcome struct {
	Kill   bool
	Damage int
	Status combat.Status
}

// TakeDamage resolves one damage application against its target: provenance
// flags, attack triggers, status short-circuits, the mitigation formula,
// lethality, attached effects, freeze-breaking, and the damage trigger.
//
// Damaging an already-dead creature is an informational no-op. A non-finite
// computation hints "Error" at the player and aborts this application only,
// leaving creature state untouched.
func (g *Game) TakeDamage(dmg *combat.Damage, suppressRetaliation bool) DamageOutcome {
	target := dmg.Target
	if target == nil {
		return DamageOutcome{}
	}
	if target.Dead {
		slog.Info("damage on dead creature ignored", "target", target.Name, "id", target.ID)
		return DamageOutcome{}
	}

	if dmg.Attacker != nil {
		dmg.Melee = g.grid.AreAdjacent(dmg.Attacker, target)
	}

	g.Trigger(model.EventUnderAttack, target, dmg)
	if dmg.Attacker != nil {
		g.Trigger(model.EventAttack, dmg.Attacker, dmg)
	}
	if target.Dead {
		// A reactive ability resolved the attack before the damage landed.
		return DamageOutcome{Kill: true, Status: dmg.Status}
	}

	switch dmg.Status {
	case combat.StatusDodged, combat.StatusShielded:
		slog.Info("attack absorbed", "target", target.Name, "status", string(dmg.Status))
		g.signals.Hint(target, string(dmg.Status))
		return DamageOutcome{Status: dmg.Status}
	case combat.StatusDisintegrated:
		g.signals.Hint(target, string(dmg.Status))
		g.Kill(target, dmg.Attacker)
		return DamageOutcome{Kill: true, Status: dmg.Status}
	}

	res := dmg.Apply()
	if !res.Valid {
		slog.Error("non-finite damage computed", "target", target.Name,
			"area", dmg.Area)
		g.signals.Hint(target, "Error")
		return DamageOutcome{}
	}

	target.Health -= res.Total
	for typ, pts := range res.ByType {
		if pts > 0 {
			metrics.DamageDealt.WithLabelValues(typ.String()).Add(float64(pts))
		}
	}
	g.signals.Hint(target, fmt.Sprintf("-%d", res.Total))
	detail := fmt.Sprintf("total=%d", res.Total)
	if dmg.FromTrap {
		detail += " source=trap"
	}
	g.record("damage", target.ID, detail)

	if target.Health <= 0 {
		target.Health = 0
		g.Kill(target, dmg.Attacker)
		return DamageOutcome{Kill: true, Damage: res.Total}
	}

	for _, e := range dmg.Effects {
		g.AttachEffect(e, target)
	}
	if res.Total > 0 && target.Frozen && !target.Cryostasis {
		target.Unfreeze()
	}
	target.AddFatigue(res.Total)

	// A trap has no body to retaliate against.
	if !suppressRetaliation && !dmg.FromTrap {
		g.Trigger(model.EventDamage, target, dmg)
	}
	return DamageOutcome{Damage: res.Total}
}

// Heal restores health through the clamped heal path and fires the heal
// event with the amount actually applied.
func (g *Game) Heal(target *model.Creature, amount int) int {
	if target == nil || target.Dead {
		return 0
	}
	applied := target.Heal(amount)
	if applied != 0 {
		g.signals.Hint(target, fmt.Sprintf("+%d", applied))
		g.Trigger(model.EventHeal, target, applied)
	}
	return applied
}
