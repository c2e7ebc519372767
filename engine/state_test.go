package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/cellmine/element"
)

const trivialLevel = "3|3|0|1|1|1|1|0|1|1|1|1"

func TestNewParsesAgentPosition(t *testing.T) {
	s, err := New(trivialLevel, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.AgentIdx != 4 {
		t.Errorf("AgentIdx = %d, want 4", s.AgentIdx)
	}
	if !s.IsAgentAlive || s.IsAgentInExit {
		t.Errorf("fresh state should be alive and not in exit")
	}
}

func TestNewRejectsMalformedLevel(t *testing.T) {
	if _, err := New("not-a-level", DefaultParams()); err == nil {
		t.Fatal("expected an error for a malformed level string")
	}
}

func TestHashMatchesXORInvariant(t *testing.T) {
	s, err := New(trivialLevel, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.GetHash() != s.RecomputeHash() {
		t.Fatalf("incremental hash %d != recomputed hash %d", s.GetHash(), s.RecomputeHash())
	}
	if err := s.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction: %v", err)
	}
	if s.GetHash() != s.RecomputeHash() {
		t.Fatalf("after tick: incremental hash %d != recomputed hash %d", s.GetHash(), s.RecomputeHash())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s, _ := New(trivialLevel, DefaultParams())
	clone := s.Clone()
	if !s.Equal(clone) {
		t.Fatal("fresh clone should be equal to its source")
	}
	if err := clone.ApplyAction(element.Right); err != nil {
		t.Fatalf("ApplyAction on clone: %v", err)
	}
	if s.Equal(clone) {
		t.Fatal("stepping the clone should not affect the original")
	}
	if s.AgentIdx != 4 {
		t.Fatal("original AgentIdx should be unchanged")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := New(trivialLevel, DefaultParams())
	_ = s.ApplyAction(element.Right)
	snap := s.ToSnapshot()
	restored := FromSnapshot(snap)
	if !s.Equal(restored) {
		t.Fatal("round-tripped state should equal the original")
	}
	if s.GetHash() != restored.GetHash() {
		t.Fatal("round-tripped state should have the identical hash")
	}
}

func TestApplyActionRejectsInvalidCode(t *testing.T) {
	s, _ := New(trivialLevel, DefaultParams())
	if err := s.ApplyAction(element.Noop); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestIndexOfPositionOutOfRange(t *testing.T) {
	s, _ := New(trivialLevel, DefaultParams())
	if _, err := s.IndexOfPosition(99, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestGemsCollectedMonotonic(t *testing.T) {
	s, _ := New("3|3|1|1|1|1|1|0|5|1|1|1", DefaultParams())
	before := s.GemsCollected
	_ = s.ApplyAction(element.Right)
	if s.GemsCollected < before {
		t.Fatal("gems_collected must never decrease")
	}
}
