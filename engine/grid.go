package engine

import "github.com/lixenwraith/cellmine/element"

// indexOf returns the flat index of the cell one step from idx in
// direction d, without bounds checking. Callers must first confirm
// inBounds(idx, d).
func (s *State) indexOf(idx int, d element.Direction) int {
	off := element.DirectionOffset(d)
	row, col := s.PositionOf(idx)
	return (row+off.DRow)*s.Cols + (col + off.DCol)
}

// inBounds reports whether the cell one step from idx in direction d
// lies on the grid.
func (s *State) inBounds(idx int, d element.Direction) bool {
	off := element.DirectionOffset(d)
	row, col := s.PositionOf(idx)
	nr, nc := row+off.DRow, col+off.DCol
	return nr >= 0 && nr < s.Rows && nc >= 0 && nc < s.Cols
}

// isType reports whether the in-bounds neighbor of idx in direction d
// equals kind. d defaults to Noop (the cell itself).
func (s *State) isType(idx int, kind element.HiddenCellType, d element.Direction) bool {
	if !s.inBounds(idx, d) {
		return false
	}
	return s.Grid[s.indexOf(idx, d)] == kind
}

// hasProperty reports whether the in-bounds neighbor of idx in
// direction d carries any bit in mask. d defaults to Noop.
func (s *State) hasProperty(idx int, mask element.Property, d element.Direction) bool {
	if !s.inBounds(idx, d) {
		return false
	}
	return element.HasProperty(s.Grid[s.indexOf(idx, d)], mask)
}

// at reads the neighbor of idx in direction d; caller must have
// confirmed inBounds.
func (s *State) at(idx int, d element.Direction) element.HiddenCellType {
	return s.Grid[s.indexOf(idx, d)]
}

// writeCell replaces grid[idx] with kind, maintaining the incremental
// hash. It does not touch hasUpdated; callers decide that separately
// since set_item/move_item have different marking semantics.
func (s *State) writeCell(idx int, kind element.HiddenCellType) {
	old := s.Grid[idx]
	if old == kind {
		return
	}
	s.Hash ^= s.hasher.Of(old, idx)
	s.Grid[idx] = kind
	s.Hash ^= s.hasher.Of(kind, idx)
}

// setItem writes kind into the neighbor of idx in direction d (default
// Noop, i.e. idx itself), updates the hash, and marks the destination
// updated so the scan does not revisit it this tick.
func (s *State) setItem(idx int, kind element.HiddenCellType, d element.Direction) {
	dst := idx
	if d != element.Noop {
		dst = s.indexOf(idx, d)
	}
	s.writeCell(dst, kind)
	s.hasUpdated[dst] = true
}

// moveItem atomically relocates grid[src] into its neighbor in
// direction d, leaving src Empty. The destination is marked updated;
// the source is not (it is now Empty and needs no further work).
func (s *State) moveItem(src int, d element.Direction) {
	dst := s.indexOf(src, d)
	kind := s.Grid[src]
	s.writeCell(src, element.Empty)
	s.writeCell(dst, kind)
	s.hasUpdated[dst] = true
}

// markUpdated flags idx as processed for the remainder of this tick.
func (s *State) markUpdated(idx int) { s.hasUpdated[idx] = true }
