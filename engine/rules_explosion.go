package engine

import "github.com/lixenwraith/cellmine/element"

// frontier is one pending explosion center: a cell about to be
// overwritten with product and then fanned out from. An explicit queue
// replaces direct recursion so a large consumable region cannot blow
// the stack; termination holds because every popped center is overwritten with an
// Explosion* kind, which is neither CanExplode nor Consumable, so a
// cell can be queued at most once per live neighbor before its first
// pop retires it.
type frontier struct {
	center  int
	product element.HiddenCellType
}

// explode resolves the target one step from idx in direction dir (Noop
// meaning idx itself) into an explosion, then fans outward through any
// chain of CanExplode/Consumable neighbors. The blast ignores the
// has-updated flags: a cell the tick already touched (the agent's cell
// included) is still caught in the radius.
func (s *State) explode(idx int, product element.HiddenCellType, dir element.Direction) {
	center := idx
	if dir != element.Noop {
		if !s.inBounds(idx, dir) {
			return
		}
		center = s.indexOf(idx, dir)
	}
	s.detonate(center, product)
}

func (s *State) detonate(center int, product element.HiddenCellType) {
	queue := []frontier{{center, product}}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		if s.Grid[f.center] == element.Agent {
			s.IsAgentAlive = false
		}
		s.writeCell(f.center, f.product)
		s.hasUpdated[f.center] = true

		for _, d := range element.AllDirections {
			if !s.inBounds(f.center, d) {
				continue
			}
			nIdx := s.indexOf(f.center, d)
			nKind := s.Grid[nIdx]
			switch {
			case element.HasProperty(nKind, element.CanExplode):
				queue = append(queue, frontier{nIdx, element.ElementToExplosion(nKind)})
			case element.HasProperty(nKind, element.Consumable):
				if nKind == element.Agent {
					s.IsAgentAlive = false
				}
				s.writeCell(nIdx, f.product)
				s.hasUpdated[nIdx] = true
			}
		}
	}
}

// updateExplosion resolves an Explosion* cell on the tick it is scanned:
// it ORs in the reward bit for its kind and replaces itself with the
// resting element the explosion leaves behind.
func (s *State) updateExplosion(idx int) {
	kind := s.Grid[idx]
	s.RewardSignal |= element.ExplosionToReward(kind)
	s.setItem(idx, element.ExplosionToElement(kind), element.Noop)
}
