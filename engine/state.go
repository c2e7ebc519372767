// Package engine implements the deterministic per-tick cellular update
// rule: the grid primitives, the per-element update rules, and the tick
// driver that ties them together. State is a plain value type; every
// field a caller might want to compare, clone, or serialize is
// exported.
package engine

import (
	"fmt"

	"github.com/lixenwraith/cellmine/element"
	"github.com/lixenwraith/cellmine/level"
	"github.com/lixenwraith/cellmine/rng"
	"github.com/lixenwraith/cellmine/zobrist"
)

// State is the full simulation state advanced one tick per ApplyAction
// call. Hash always equals the XOR of the per-cell Zobrist values, and
// exactly one Agent/AgentInExit cell exists while IsAgentAlive holds.
type State struct {
	Rows, Cols int
	Grid       []element.HiddenCellType
	hasUpdated []bool

	AgentIdx int

	GemsRequired  int
	GemsCollected int

	MagicWallSteps int
	MagicActive    bool

	BlobSize     int
	BlobMaxSize  int
	BlobEnclosed bool
	BlobSwap     element.HiddenCellType

	BlobChance            int
	Gravity               bool
	DisableExplosions     bool
	ButterflyExplosionVer ButterflyExplosionVer
	ButterflyMoveVer      ButterflyMoveVer

	RandomState uint64

	RewardSignal element.Reward
	Hash         uint64

	IsAgentAlive  bool
	IsAgentInExit bool

	hasher *zobrist.Hasher
}

// New builds a State from a level string and configuration.
func New(levelString string, p Params) (*State, error) {
	b, err := level.Parse(levelString)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return newFromBoard(b, p), nil
}

func newFromBoard(b *level.Board, p Params) *State {
	flat := b.Rows * b.Cols
	debugAssert(b.AgentIdx >= 0 && b.AgentIdx < flat, "agent index out of grid bounds")
	debugAssert(len(b.Grid) == flat, "parsed grid size does not match rows*cols")
	s := &State{
		Rows:                  b.Rows,
		Cols:                  b.Cols,
		Grid:                  append([]element.HiddenCellType(nil), b.Grid...),
		hasUpdated:            make([]bool, flat),
		AgentIdx:              b.AgentIdx,
		GemsRequired:          b.GemsRequired,
		MagicWallSteps:        p.MagicWallSteps,
		BlobSize:              0,
		BlobMaxSize:           int(float64(flat) * p.BlobMaxPercentage),
		BlobEnclosed:          true,
		BlobSwap:              element.Null,
		BlobChance:            p.BlobChance,
		Gravity:               p.Gravity,
		DisableExplosions:     p.DisableExplosions,
		ButterflyExplosionVer: p.ButterflyExplosionVer,
		ButterflyMoveVer:      p.ButterflyMoveVer,
		IsAgentAlive:          true,
		IsAgentInExit:         b.AgentInExit,
		hasher:                zobrist.NewHasher(flat),
	}
	seed := p.Seed
	if seed == 0 {
		s.RandomState = zobrist.SplitMix64(0)
	} else {
		s.RandomState = zobrist.SplitMix64(seed)
	}
	var hash uint64
	for i, kind := range s.Grid {
		hash ^= s.hasher.Of(kind, i)
	}
	s.Hash = hash
	return s
}

// Clone returns an independent deep copy: a separate grid array, a
// separate has-updated array, and its own hash cache so the clone can
// be advanced on another goroutine with no shared mutable state.
func (s *State) Clone() *State {
	c := *s
	c.Grid = append([]element.HiddenCellType(nil), s.Grid...)
	c.hasUpdated = append([]bool(nil), s.hasUpdated...)
	c.hasher = zobrist.NewHasher(s.Rows * s.Cols)
	return &c
}

// Equal reports structural equality of every field.
func (s *State) Equal(o *State) bool {
	if o == nil {
		return false
	}
	if s.Rows != o.Rows || s.Cols != o.Cols ||
		s.AgentIdx != o.AgentIdx ||
		s.GemsRequired != o.GemsRequired || s.GemsCollected != o.GemsCollected ||
		s.MagicWallSteps != o.MagicWallSteps || s.MagicActive != o.MagicActive ||
		s.BlobSize != o.BlobSize || s.BlobMaxSize != o.BlobMaxSize ||
		s.BlobEnclosed != o.BlobEnclosed || s.BlobSwap != o.BlobSwap ||
		s.BlobChance != o.BlobChance || s.Gravity != o.Gravity ||
		s.DisableExplosions != o.DisableExplosions ||
		s.ButterflyExplosionVer != o.ButterflyExplosionVer ||
		s.ButterflyMoveVer != o.ButterflyMoveVer ||
		s.RandomState != o.RandomState ||
		s.RewardSignal != o.RewardSignal || s.Hash != o.Hash ||
		s.IsAgentAlive != o.IsAgentAlive || s.IsAgentInExit != o.IsAgentInExit {
		return false
	}
	if len(s.Grid) != len(o.Grid) {
		return false
	}
	for i := range s.Grid {
		if s.Grid[i] != o.Grid[i] {
			return false
		}
	}
	if len(s.hasUpdated) != len(o.hasUpdated) {
		return false
	}
	for i := range s.hasUpdated {
		if s.hasUpdated[i] != o.hasUpdated[i] {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the episode has ended: the agent died, or
// reached the exit.
func (s *State) IsTerminal() bool { return !s.IsAgentAlive || s.IsAgentInExit }

// IsSolution reports whether the agent reached the exit.
func (s *State) IsSolution() bool { return s.IsAgentInExit }

// GetRewardSignal returns the bitmask of events from the last tick.
func (s *State) GetRewardSignal() element.Reward { return s.RewardSignal }

// GetHash returns the current incremental board hash.
func (s *State) GetHash() uint64 { return s.Hash }

// RecomputeHash is the O(rows*cols) reference computation used by tests
// to check the incremental hash invariant; never called on the tick
// hot path.
func (s *State) RecomputeHash() uint64 {
	return s.hasher.Full(s.Grid)
}

// PositionOf decomposes a flat index into (row, col).
func (s *State) PositionOf(idx int) (row, col int) { return idx / s.Cols, idx % s.Cols }

// IndexOfPosition composes (row, col) back into a flat index, or
// ErrOutOfRange if out of bounds.
func (s *State) IndexOfPosition(row, col int) (int, error) {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return 0, ErrOutOfRange
	}
	return row*s.Cols + col, nil
}

// GetHiddenItem returns the hidden kind at (row, col).
func (s *State) GetHiddenItem(row, col int) (element.HiddenCellType, error) {
	idx, err := s.IndexOfPosition(row, col)
	if err != nil {
		return element.Null, err
	}
	return s.Grid[idx], nil
}

// GetIndices returns every flat index currently holding kind.
func (s *State) GetIndices(kind element.HiddenCellType) []int {
	var out []int
	for i, k := range s.Grid {
		if k == kind {
			out = append(out, i)
		}
	}
	return out
}

// GetPositions returns every (row, col) currently holding kind.
func (s *State) GetPositions(kind element.HiddenCellType) [][2]int {
	var out [][2]int
	for i, k := range s.Grid {
		if k == kind {
			r, c := s.PositionOf(i)
			out = append(out, [2]int{r, c})
		}
	}
	return out
}

// Snapshot is an exported, flat serialization of State sufficient for a
// round-trip: all scalar fields plus the grid (as int8 codes matching
// the level grammar) and the has-updated flags.
type Snapshot struct {
	Rows, Cols            int
	Grid                  []int8
	HasUpdated            []bool
	AgentIdx              int
	GemsRequired          int
	GemsCollected         int
	MagicWallSteps        int
	MagicActive           bool
	BlobSize              int
	BlobMaxSize           int
	BlobEnclosed          bool
	BlobSwap              int8
	BlobChance            int
	Gravity               bool
	DisableExplosions     bool
	ButterflyExplosionVer ButterflyExplosionVer
	ButterflyMoveVer      ButterflyMoveVer
	RandomState           uint64
	RewardSignal          uint64
	Hash                  uint64
	IsAgentAlive          bool
	IsAgentInExit         bool
}

// ToSnapshot captures s in the serializable form.
func (s *State) ToSnapshot() Snapshot {
	grid := make([]int8, len(s.Grid))
	for i, k := range s.Grid {
		grid[i] = int8(k)
	}
	return Snapshot{
		Rows: s.Rows, Cols: s.Cols,
		Grid:                  grid,
		HasUpdated:            append([]bool(nil), s.hasUpdated...),
		AgentIdx:              s.AgentIdx,
		GemsRequired:          s.GemsRequired,
		GemsCollected:         s.GemsCollected,
		MagicWallSteps:        s.MagicWallSteps,
		MagicActive:           s.MagicActive,
		BlobSize:              s.BlobSize,
		BlobMaxSize:           s.BlobMaxSize,
		BlobEnclosed:          s.BlobEnclosed,
		BlobSwap:              int8(s.BlobSwap),
		BlobChance:            s.BlobChance,
		Gravity:               s.Gravity,
		DisableExplosions:     s.DisableExplosions,
		ButterflyExplosionVer: s.ButterflyExplosionVer,
		ButterflyMoveVer:      s.ButterflyMoveVer,
		RandomState:           s.RandomState,
		RewardSignal:          uint64(s.RewardSignal),
		Hash:                  s.Hash,
		IsAgentAlive:          s.IsAgentAlive,
		IsAgentInExit:         s.IsAgentInExit,
	}
}

// FromSnapshot reconstructs a State from a previously captured Snapshot.
func FromSnapshot(snap Snapshot) *State {
	grid := make([]element.HiddenCellType, len(snap.Grid))
	for i, c := range snap.Grid {
		grid[i] = element.HiddenCellType(c)
	}
	s := &State{
		Rows: snap.Rows, Cols: snap.Cols,
		Grid:                  grid,
		hasUpdated:            append([]bool(nil), snap.HasUpdated...),
		AgentIdx:              snap.AgentIdx,
		GemsRequired:          snap.GemsRequired,
		GemsCollected:         snap.GemsCollected,
		MagicWallSteps:        snap.MagicWallSteps,
		MagicActive:           snap.MagicActive,
		BlobSize:              snap.BlobSize,
		BlobMaxSize:           snap.BlobMaxSize,
		BlobEnclosed:          snap.BlobEnclosed,
		BlobSwap:              element.HiddenCellType(snap.BlobSwap),
		BlobChance:            snap.BlobChance,
		Gravity:               snap.Gravity,
		DisableExplosions:     snap.DisableExplosions,
		ButterflyExplosionVer: snap.ButterflyExplosionVer,
		ButterflyMoveVer:      snap.ButterflyMoveVer,
		RandomState:           snap.RandomState,
		RewardSignal:          element.Reward(snap.RewardSignal),
		Hash:                  snap.Hash,
		IsAgentAlive:          snap.IsAgentAlive,
		IsAgentInExit:         snap.IsAgentInExit,
		hasher:                zobrist.NewHasher(snap.Rows * snap.Cols),
	}
	return s
}

func (s *State) rngNext() uint64 {
	g := rng.FromState(s.RandomState)
	v := g.Next()
	s.RandomState = g.State()
	return v
}
