package battle

import (
	"testing"

	"github.com/nandastone/AncientBeast/internal/model"
)

func twoPlayerMatch(t *testing.T) (*Game, *model.Creature, *model.Creature) {
	t.Helper()
	g := newTestGame(t)
	red := model.NewPlayer(0, "Red")
	blue := model.NewPlayer(1, "Blue")
	g.AddPlayer(red)
	g.AddPlayer(blue)
	fast := mustSummon(t, g, red, "fast", 50, nil, 1, 1, SummonOptions{Active: true, Leader: true})
	slow := mustSummon(t, g, blue, "slow", 10, nil, 8, 4, SummonOptions{Active: true, Leader: true})
	return g, fast, slow
}

func TestStart_HighestInitiativeActsFirst(t *testing.T) {
	g, fast, _ := twoPlayerMatch(t)
	g.Start()

	if g.Turn != 1 {
		t.Errorf("turn = %d after start, want 1", g.Turn)
	}
	if g.ActiveCreature() != fast {
		t.Errorf("active = %v, want the higher-initiative creature", g.ActiveCreature())
	}
}

func TestSkipTurn_AdvancesAndRollsRound(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	g.SkipTurn()
	if g.ActiveCreature() != slow {
		t.Fatal("skip did not hand the turn to the next creature")
	}
	g.SkipTurn()
	if g.Turn != 2 {
		t.Errorf("turn = %d after round rollover, want 2", g.Turn)
	}
	if g.ActiveCreature() != fast {
		t.Error("new round should start with the higher-initiative creature")
	}
}

func TestStartTurn_RestoresPoolsUnlessFatigued(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	fast.Health = 80
	fast.Energy = 10
	fast.RemainingMove = 0
	fast.Endurance = 5
	g.SkipTurn() // to slow
	slow.Health = 50
	slow.Endurance = 0 // fatigued: no regrowth, no meditation
	g.SkipTurn() // round 2, back to fast

	// Default stats carry no regrowth or meditation, but movement and
	// endurance reset in full.
	if fast.RemainingMove != 5 {
		t.Errorf("remaining move = %d, want 5", fast.RemainingMove)
	}
	if fast.Endurance != 30 {
		t.Errorf("endurance = %d, want full 30", fast.Endurance)
	}

	g.SkipTurn() // to slow
	if slow.Health != 50 {
		t.Errorf("fatigued creature regenerated: health %d, want 50", slow.Health)
	}
	if slow.Endurance != 30 {
		t.Errorf("endurance should still reset while fatigued, got %d", slow.Endurance)
	}
}

func TestStartTurn_RegrowthHeals(t *testing.T) {
	g := newTestGame(t)
	p := model.NewPlayer(0, "Red")
	g.AddPlayer(p)
	c := mustSummon(t, g, p, "regen", 10,
		map[model.Stat]float64{model.StatRegrowth: 6}, 2, 2, SummonOptions{Active: true})
	c.Health = 90
	g.Start()
	if c.Health != 96 {
		t.Errorf("health = %d after regrowth turn start, want 96", c.Health)
	}
}

func TestDelayTurn_ReentersLaterThisRound(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	if !g.DelayTurn() {
		t.Fatal("delay refused for an undelayed creature")
	}
	if g.ActiveCreature() != slow {
		t.Fatal("delay did not hand the turn over")
	}
	g.SkipTurn()
	if g.ActiveCreature() != fast {
		t.Fatal("delayed creature did not re-enter the current round")
	}
	if g.Turn != 1 {
		t.Errorf("turn = %d, want still 1", g.Turn)
	}

	// Once per round only.
	if g.DelayTurn() {
		t.Error("second delay in the same round was accepted")
	}

	g.SkipTurn()
	if g.Turn != 2 {
		t.Errorf("turn = %d after the delayed creature's turn, want 2", g.Turn)
	}
	if fast.Delayed {
		t.Error("delayed flag not cleared on round rollover")
	}
}

func TestFlee_LeaderOnlyAndRemovesTeam(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	mustSummon(t, g, fast.Player, "extra", 30, nil, 3, 1, SummonOptions{Active: true})
	g.Start()

	if !g.Flee() {
		t.Fatal("leader flee refused")
	}
	if !fast.Player.Fled() {
		t.Error("player not marked as fled")
	}
	if g.ActiveCreature() != slow {
		t.Errorf("active = %v after flee, want the opponent", g.ActiveCreature())
	}

	// The fled team never gets another turn.
	g.SkipTurn()
	if g.ActiveCreature() != slow {
		t.Errorf("fled player's creature %v got a turn", g.ActiveCreature())
	}

	// A non-leader cannot flee.
	g2, _, _ := twoPlayerMatch(t)
	grunt := mustSummon(t, g2, g2.Players()[0], "grunt", 99, nil, 3, 1, SummonOptions{Active: true})
	g2.Start()
	if g2.ActiveCreature() != grunt {
		t.Fatal("setup: grunt should act first")
	}
	if g2.Flee() {
		t.Error("non-leader flee accepted")
	}
}

func TestUseAbility_EnergyGating(t *testing.T) {
	g, fast, _ := twoPlayerMatch(t)
	g.Start()

	if !g.UseAbility("Frost Bolt", 15) {
		t.Fatal("affordable ability refused")
	}
	if fast.Energy != 25 {
		t.Errorf("energy = %d after cost 15, want 25", fast.Energy)
	}
	if g.UseAbility("Frost Bolt", 30) {
		t.Error("unaffordable ability accepted")
	}
	if fast.Energy != 25 {
		t.Errorf("refused ability still spent energy: %d", fast.Energy)
	}

	fast.MaterializationSickness = true
	if g.UseAbility("Frost Bolt", 1) {
		t.Error("sickened creature used an ability")
	}
}

func TestMove_SpendsMovementAndRefusals(t *testing.T) {
	g, fast, _ := twoPlayerMatch(t)
	g.Start()

	if !g.Move(fast, 4, 1) {
		t.Fatal("move along an empty row refused")
	}
	if fast.X != 4 || fast.Y != 1 {
		t.Errorf("position = (%d,%d), want (4,1)", fast.X, fast.Y)
	}
	if fast.RemainingMove != 2 {
		t.Errorf("remaining move = %d, want 2", fast.RemainingMove)
	}

	if g.Move(fast, 4, 5) {
		t.Error("move beyond remaining movement accepted")
	}

	fast.Freeze(false)
	if g.Move(fast, 5, 1) {
		t.Error("frozen creature moved")
	}
	fast.Unfreeze()

	g.FreezeInput()
	if g.Move(fast, 5, 1) {
		t.Error("move accepted while input frozen")
	}
	g.ThawInput()
}

func TestMove_PicksUpDrop(t *testing.T) {
	g, fast, _ := twoPlayerMatch(t)
	g.Start()

	h := g.grid.HexAt(2, 1)
	model.PlaceDrop(&model.Drop{Name: "mandible", Energy: 10}, h)
	fast.Energy = 20

	if !g.Move(fast, 2, 1) {
		t.Fatal("move refused")
	}
	if h.Drop != nil {
		t.Error("drop left on the hex after pickup")
	}
	if len(fast.Drops()) != 1 {
		t.Fatal("drop not collected")
	}
	if fast.Energy != 30 {
		t.Errorf("energy = %d after drop bonus, want 30", fast.Energy)
	}
	if !fast.Player.HasScored(model.ScorePickupDrop) {
		t.Error("pickup not scored")
	}
}

func TestMove_SpringsTrapAfterStepIn(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	h := g.grid.HexAt(3, 1)
	snare := g.NewHexEffect("Snare", slow, h, model.EffectOptions{
		Alterations: map[model.Stat]model.Alteration{model.StatMovement: model.Set(2)},
		NoLog:       true,
	})
	trap := g.PlaceTrap("Snare Trap", h, slow, []*model.Effect{snare}, true, false)

	if !g.Move(fast, 3, 1) {
		t.Fatal("move refused")
	}
	if snare.Target != fast {
		t.Fatal("trap effect not transferred to the stepping creature")
	}
	if fast.FindEffect("Snare") == nil {
		t.Error("trap effect not attached")
	}
	if got := fast.Stats().Int(model.StatMovement); got != 2 {
		t.Errorf("movement = %d after snare, want 2", got)
	}
	if !trap.Destroyed {
		t.Error("one-shot trap survived springing")
	}
}

func TestMove_TrapTransferRefusedForDuplicate(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	held := g.NewEffect("Snare", slow, fast, model.EffectOptions{NoLog: true})
	if !g.AttachEffect(held, fast) {
		t.Fatal("setup: first snare refused")
	}

	attachWatch := &stubAbility{name: "attachWatch", selfTriggers: []model.GameEvent{model.EventEffectAttach}}
	g.RegisterAbility(fast, attachWatch)

	h := g.grid.HexAt(3, 1)
	staged := g.NewHexEffect("Snare", slow, h, model.EffectOptions{NoLog: true})
	trap := g.PlaceTrap("Snare Trap", h, slow, []*model.Effect{staged}, true, false)

	if !g.Move(fast, 3, 1) {
		t.Fatal("move refused")
	}
	if staged.Target != nil || staged.HexTarget != h {
		t.Error("refused trap effect should stay staged on its hex")
	}
	if got := len(fast.Effects()); got != 1 {
		t.Errorf("creature has %d effects, want 1", got)
	}
	if attachWatch.fired != 0 {
		t.Errorf("attach trigger fired %d times for a refused transfer, want 0", attachWatch.fired)
	}
	if trap.Destroyed {
		t.Error("trap counted a refused transfer as sprung")
	}
}

func TestNextCreature_DizzyForfeitsTurn(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	g.Start()

	slow.Dizzy = true
	g.SkipTurn()

	if g.ActiveCreature() != fast {
		t.Errorf("active = %v, want the dizzy creature's turn skipped", g.ActiveCreature())
	}
	if g.Turn != 2 {
		t.Errorf("turn = %d, want 2 after the dizzy skip rolled the round", g.Turn)
	}
	if slow.Dizzy {
		t.Error("dizzy flag not cleared by the forfeited turn")
	}

	g.SkipTurn()
	if g.ActiveCreature() != slow {
		t.Error("creature should act normally the round after being dizzy")
	}
}

func TestNextRound_StartOfRoundHasNoActor(t *testing.T) {
	g, fast, slow := twoPlayerMatch(t)
	// slow acts last each round, so it is the leftover active creature when
	// the round rolls over. Its self triggers must not hear the boundary.
	lastActor := &stubAbility{name: "lastActor", selfTriggers: []model.GameEvent{model.EventStartOfRound}}
	roundWide := &stubAbility{name: "roundWide", otherTriggers: []model.GameEvent{model.EventStartOfRound}}
	g.RegisterAbility(slow, lastActor)
	g.RegisterAbility(fast, roundWide)

	g.Start()
	g.SkipTurn()
	g.SkipTurn() // rolls into round 2

	if g.Turn != 2 {
		t.Fatalf("turn = %d, want 2", g.Turn)
	}
	if lastActor.fired != 0 {
		t.Errorf("self-trigger ability fired %d times at round start, want 0", lastActor.fired)
	}
	if roundWide.fired != 2 {
		t.Errorf("other-trigger ability fired %d times over two round starts, want 2", roundWide.fired)
	}
}

func TestTeardown_ClearsMatchState(t *testing.T) {
	g, _, _ := twoPlayerMatch(t)
	g.Start()
	g.Teardown()

	if len(g.Creatures()) != 0 || len(g.Players()) != 0 {
		t.Error("teardown left creatures or players registered")
	}
	if g.Turn != 0 || g.ActiveCreature() != nil {
		t.Error("teardown left turn state")
	}
	if !g.Queue().IsCurrentEmpty() || !g.Queue().IsNextEmpty() {
		t.Error("teardown left queued creatures")
	}
}
