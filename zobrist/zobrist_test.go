package zobrist

import (
	"testing"

	"github.com/lixenwraith/cellmine/element"
)

func TestSplitMix64Deterministic(t *testing.T) {
	a := SplitMix64(0)
	b := SplitMix64(0)
	if a != b {
		t.Fatalf("SplitMix64(0) not deterministic: %d != %d", a, b)
	}
	if SplitMix64(0) == SplitMix64(1) {
		t.Fatal("SplitMix64 should differ across distinct inputs")
	}
}

func TestHasherMatchesDirectOf(t *testing.T) {
	h := NewHasher(9)
	for i := 0; i < 9; i++ {
		got := h.Of(element.Stone, i)
		want := Of(9, element.Stone, i)
		if got != want {
			t.Fatalf("cache mismatch at idx %d: got %d want %d", i, got, want)
		}
	}
}

func TestEmptyHasNonzeroContribution(t *testing.T) {
	h := NewHasher(4)
	if h.Of(element.Empty, 0) == 0 {
		t.Fatal("Empty must participate in the hash with a non-zero value (in general)")
	}
}

func TestFullMatchesXOR(t *testing.T) {
	grid := []element.HiddenCellType{element.Agent, element.Empty, element.Stone, element.Dirt}
	h := NewHasher(len(grid))
	var want uint64
	for i, k := range grid {
		want ^= Of(int64(len(grid)), k, i)
	}
	if got := h.Full(grid); got != want {
		t.Fatalf("Full() = %d, want %d", got, want)
	}
}
