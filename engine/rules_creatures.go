package engine

import "github.com/lixenwraith/cellmine/element"

var cardinals = [4]element.Direction{element.Up, element.Right, element.Down, element.Left}

func (s *State) anyCardinalIs(idx int, kinds ...element.HiddenCellType) bool {
	for _, d := range cardinals {
		if !s.inBounds(idx, d) {
			continue
		}
		neighbor := s.at(idx, d)
		for _, k := range kinds {
			if neighbor == k {
				return true
			}
		}
	}
	return false
}

// updateFirefly implements the Firefly(dir) rule: explode if cornered
// next to the agent or a blob, otherwise prefer turning left, then
// continuing straight, then turning right in place.
func (s *State) updateFirefly(idx int) {
	kind := s.Grid[idx]
	dir := element.FireflyFacing(kind)

	if s.anyCardinalIs(idx, element.Agent, element.Blob) {
		s.explode(idx, element.ElementToExplosion(kind), element.Noop)
		return
	}

	left := element.RotateLeft(dir)
	if s.isType(idx, element.Empty, left) {
		s.setItem(idx, element.FireflyAt(left), element.Noop)
		s.moveItem(idx, left)
		return
	}
	if s.isType(idx, element.Empty, dir) {
		s.setItem(idx, element.FireflyAt(dir), element.Noop)
		s.moveItem(idx, dir)
		return
	}
	s.setItem(idx, element.FireflyAt(element.RotateRight(dir)), element.Noop)
}

// updateButterfly implements the Butterfly(dir) rule: the mirror image
// of Firefly, preferring right turns. A no-move left turn additionally
// steps into the new direction under InstantVer.
func (s *State) updateButterfly(idx int) {
	kind := s.Grid[idx]
	dir := element.ButterflyFacing(kind)

	right := element.RotateRight(dir)
	if s.isType(idx, element.Empty, right) {
		s.setItem(idx, element.ButterflyAt(right), element.Noop)
		s.moveItem(idx, right)
		return
	}
	if s.isType(idx, element.Empty, dir) {
		s.setItem(idx, element.ButterflyAt(dir), element.Noop)
		s.moveItem(idx, dir)
		return
	}

	left := element.RotateLeft(dir)
	canStep := s.isType(idx, element.Empty, left)
	s.setItem(idx, element.ButterflyAt(left), element.Noop)
	if s.ButterflyMoveVer == InstantVer && canStep {
		s.moveItem(idx, left)
	}
}

// updateOrange implements the Orange(dir) rule: keep moving in the
// current facing while possible, explode next to the agent when
// blocked, otherwise reroute to a random open cardinal direction.
func (s *State) updateOrange(idx int) {
	kind := s.Grid[idx]
	dir := element.OrangeFacing(kind)

	if s.isType(idx, element.Empty, dir) {
		s.moveItem(idx, dir)
		return
	}
	if s.anyCardinalIs(idx, element.Agent) {
		s.explode(idx, element.ElementToExplosion(kind), element.Noop)
		return
	}

	var open []element.Direction
	for _, d := range cardinals {
		if s.isType(idx, element.Empty, d) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return
	}
	pick := open[int(s.rngNext()%uint64(len(open)))]
	s.setItem(idx, element.OrangeAt(pick), element.Noop)
}
