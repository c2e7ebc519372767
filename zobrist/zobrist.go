// Package zobrist maintains the incremental 64-bit board hash. Every
// grid mutation XORs out the old per-cell contribution and XORs in the
// new one, so the running hash always equals the XOR of H(kind, idx)
// over every cell without ever re-scanning the board.
package zobrist

import "github.com/lixenwraith/cellmine/element"

// SplitMix64 is the reference SplitMix64 step function, used both to
// seed the RNG (package rng) and to derive per-(kind, index) hash
// contributions.
func SplitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hasher caches H(kind, idx) values for a fixed board size, avoiding a
// SplitMix64 call on every mutation once a (kind, idx) pair has been
// seen once. This is purely an optimization; H is always mathematically
// equal to the recomputed SplitMix64 value (see Of).
type Hasher struct {
	flatSize int64
	cache    [element.NumHiddenCellTypes][]uint64
}

// NewHasher creates a cache sized for a board holding flatSize cells.
func NewHasher(flatSize int) *Hasher {
	return &Hasher{flatSize: int64(flatSize)}
}

// Of returns H(kind, idx) = SplitMix64(flatSize*int(kind) + idx), lazily
// populating the per-kind cache row on first access.
func (h *Hasher) Of(kind element.HiddenCellType, idx int) uint64 {
	if kind < 0 || int(kind) >= len(h.cache) {
		return Of(h.flatSize, kind, idx)
	}
	row := h.cache[kind]
	if row == nil {
		row = make([]uint64, h.flatSize)
		for i := range row {
			row[i] = Of(h.flatSize, kind, i)
		}
		h.cache[kind] = row
	}
	if idx < 0 || idx >= len(row) {
		return Of(h.flatSize, kind, idx)
	}
	return row[idx]
}

// Of computes H(kind, idx) directly, with no caching.
func Of(flatSize int64, kind element.HiddenCellType, idx int) uint64 {
	return SplitMix64(uint64(flatSize*int64(kind) + int64(idx)))
}

// Full recomputes the hash of grid from scratch by XORing H(kind, idx)
// over every cell. Used to verify the incremental hash invariant in
// tests and is otherwise never called on the hot path.
func (h *Hasher) Full(grid []element.HiddenCellType) uint64 {
	var hash uint64
	for i, kind := range grid {
		hash ^= h.Of(kind, i)
	}
	return hash
}
