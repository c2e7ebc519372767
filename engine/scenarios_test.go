package engine

import (
	"testing"

	"github.com/lixenwraith/cellmine/element"
)

// TestScenarioTrivialMove: the agent at the center of an
// otherwise-empty 3x3 board moves one cell right with no reward
// signal.
func TestScenarioTrivialMove(t *testing.T) {
	s, err := New("3|3|0|1|1|1|1|0|1|1|1|1", DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	row, col := s.PositionOf(s.AgentIdx)
	if row != 1 || col != 2 {
		t.Fatalf("agent at (%d,%d), want (1,2)", row, col)
	}
	if s.Grid[4] != element.Empty {
		t.Fatalf("vacated center should be Empty, got %v", s.Grid[4])
	}
	if s.RewardSignal != 0 {
		t.Fatalf("reward_signal = %#x, want 0", uint64(s.RewardSignal))
	}
}

// TestScenarioDiamondPickup: walking onto a diamond collects it and
// raises the CollectDiamond reward bit.
func TestScenarioDiamondPickup(t *testing.T) {
	p := DefaultParams()
	p.Gravity = false
	s, err := New("3|3|1|1|1|1|1|0|5|1|1|1", p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	row, col := s.PositionOf(s.AgentIdx)
	if row != 1 || col != 2 {
		t.Fatalf("agent at (%d,%d), want (1,2)", row, col)
	}
	if s.GemsCollected != 1 {
		t.Fatalf("gems_collected = %d, want 1", s.GemsCollected)
	}
	if s.RewardSignal&element.RewardCollectDiamond == 0 {
		t.Fatal("expected CollectDiamond reward bit")
	}
}

// TestScenarioExitOpenThenEnter: with the gem quota already met (set
// directly, since the level grammar cannot express a nonzero starting
// gems_collected), a closed exit opens on the next tick and the agent
// enters it the tick after.
func TestScenarioExitOpenThenEnter(t *testing.T) {
	s, err := New("1|2|1|0|7", DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.GemsCollected = 1

	// Up is out-of-bounds on a single-row board: the agent's action is a
	// no-op, but the world (including ExitClosed) still ticks.
	if err := s.ApplyAction(element.Up); err != nil {
		t.Fatalf("ApplyAction (stand still): %v", err)
	}
	if s.Grid[1] != element.ExitOpen {
		t.Fatalf("exit should have opened, grid[1] = %v", s.Grid[1])
	}
	if s.IsTerminal() {
		t.Fatal("should not be terminal before walking into the exit")
	}

	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction (enter exit): %v", err)
	}
	if !s.IsAgentInExit {
		t.Fatal("expected is_agent_in_exit == true")
	}
	if !s.IsSolution() {
		t.Fatal("expected is_solution() == true")
	}
	if s.RewardSignal&element.RewardWalkThroughExit == 0 {
		t.Fatal("expected WalkThroughExit reward bit")
	}
}

// TestScenarioStoneFallKillsAgent: the agent sits below a stone with
// one empty cell between them; Down is out of bounds from the agent's
// row, so it is used as the held action throughout, keeping the agent
// fixed in place while the stone falls onto it across two ticks.
func TestScenarioStoneFallKillsAgent(t *testing.T) {
	p := DefaultParams()
	p.Gravity = true
	s, err := New("3|3|0|1|3|1|1|1|1|1|0|1", p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.IsAgentAlive {
		t.Fatal("agent should start alive")
	}

	if err := s.ApplyAction(element.Down); err != nil {
		t.Fatalf("ApplyAction tick 1: %v", err)
	}
	if s.Grid[1] != element.Empty {
		t.Fatalf("stone's original cell should be Empty, got %v", s.Grid[1])
	}
	if s.Grid[4] != element.StoneFalling {
		t.Fatalf("stone should have fallen to (1,1), grid[4] = %v", s.Grid[4])
	}
	if !s.IsAgentAlive {
		t.Fatal("agent should still be alive after tick 1")
	}

	if err := s.ApplyAction(element.Down); err != nil {
		t.Fatalf("ApplyAction tick 2: %v", err)
	}
	if s.IsAgentAlive {
		t.Fatal("agent should have been crushed by the falling stone")
	}
}

// TestScenarioBombChain: a stone falls through an empty gap onto the
// left of two adjacent bombs; both are consumed by the blast and
// resolve to Empty the tick after, along with every Consumable Dirt
// cell adjacent to the blast center.
func TestScenarioBombChain(t *testing.T) {
	p := DefaultParams()
	p.Gravity = true
	// 4 rows x 4 cols. Row0: Agent Dirt Dirt Dirt. Row1: Dirt Stone Dirt
	// Dirt. Row2: Dirt Empty Dirt Dirt. Row3: Dirt Bomb Bomb Dirt.
	level := "4|4|0|" +
		"0|2|2|2|" +
		"2|3|2|2|" +
		"2|1|2|2|" +
		"2|41|41|2"
	s, err := New(level, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Tick 1: the stone converts to StoneFalling and drops one row, into
	// the empty gap at (2,1).
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction tick 1: %v", err)
	}
	if s.Grid[9] != element.StoneFalling {
		t.Fatalf("stone should have fallen into the gap, grid[9] = %v", s.Grid[9])
	}

	// Tick 2: the stone lands on the left bomb and detonates at its own
	// cell, consuming both bombs (one directly below, one diagonally
	// below) and every adjacent Dirt cell.
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction tick 2: %v", err)
	}
	for _, idx := range []int{4, 6, 8, 9, 10, 12, 13, 14} {
		if k := s.Grid[idx]; k != element.ExplosionEmpty {
			t.Fatalf("grid[%d] = %v, want ExplosionEmpty after the blast", idx, k)
		}
	}

	// Tick 3: every Explosion* cell resolves to Empty.
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction tick 3: %v", err)
	}
	for _, idx := range []int{4, 6, 8, 9, 10, 12, 13, 14} {
		if k := s.Grid[idx]; k != element.Empty {
			t.Fatalf("grid[%d] = %v, want Empty after resolution", idx, k)
		}
	}
	if s.Grid[13] != element.Empty || s.Grid[14] != element.Empty {
		t.Fatal("both former bomb cells should be Empty")
	}
}

// TestScenarioBlobGrowthBound: a blob with BlobChance saturated grows
// toward its size cap and latches to Stone once it exceeds it; the
// following tick converts every blob cell.
func TestScenarioBlobGrowthBound(t *testing.T) {
	p := DefaultParams()
	p.BlobChance = 255
	p.BlobMaxPercentage = 0.16
	level := "5|5|0|" +
		"0|2|2|2|2|" +
		"2|2|2|2|2|" +
		"2|2|2|2|2|" +
		"2|2|2|2|2|" +
		"2|2|2|2|23" // Blob at bottom-right corner (code 23)
	s, err := New(level, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	maxSize := s.BlobMaxSize
	if maxSize <= 0 {
		t.Fatalf("BlobMaxSize = %d, want a positive bound", maxSize)
	}

	converted := false
	for i := 0; i < 200 && !converted; i++ {
		if err := s.ApplyAction(element.Down); err != nil {
			t.Fatalf("ApplyAction tick %d: %v", i, err)
		}
		if s.BlobSwap == element.Stone && len(s.GetIndices(element.Blob)) == 0 {
			converted = true
		}
	}
	if !converted {
		t.Fatal("blob never latched and converted to Stone within the tick budget")
	}
	if got := len(s.GetIndices(element.Stone)); got == 0 {
		t.Fatal("expected at least one Stone cell after blob collapse")
	}
}
