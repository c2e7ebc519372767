package engine

import "github.com/lixenwraith/cellmine/element"

// canRoll reports whether a resting rounded object at idx can roll in
// cardinal direction dir (Left or Right): the cell below must be
// Rounded, and both dir and the corresponding diagonal-down cell must
// be Empty.
func (s *State) canRoll(idx int, dir element.Direction) bool {
	if !s.hasProperty(idx, element.Rounded, element.Down) {
		return false
	}
	if !s.isType(idx, element.Empty, dir) {
		return false
	}
	diag := element.DownLeft
	if dir == element.Right {
		diag = element.DownRight
	}
	return s.isType(idx, element.Empty, diag)
}

// updateResting implements the shared resting-object rule for Stone,
// Diamond, Nut and Bomb: fall, roll, or stay. rollKind is the kind
// written when rolling sideways, identical to the falling variant for
// everything except Bomb, which rolls as Bomb.
func (s *State) updateResting(idx int, fallKind, rollKind element.HiddenCellType, fall func(int)) {
	if !s.Gravity {
		return
	}
	if s.isType(idx, element.Empty, element.Down) {
		s.setItem(idx, fallKind, element.Noop)
		fall(idx)
		return
	}
	if s.canRoll(idx, element.Left) {
		s.setItem(idx, rollKind, element.Noop)
		s.moveItem(idx, element.Left)
		return
	}
	if s.canRoll(idx, element.Right) {
		s.setItem(idx, rollKind, element.Noop)
		s.moveItem(idx, element.Right)
		return
	}
	// Neither falls nor rolls: remains resting, no mutation.
}

func (s *State) updateStone(idx int) {
	s.updateResting(idx, element.StoneFalling, element.StoneFalling, s.updateStoneFalling)
}

func (s *State) updateDiamond(idx int) {
	s.updateResting(idx, element.DiamondFalling, element.DiamondFalling, s.updateDiamondFalling)
}

func (s *State) updateNut(idx int) {
	s.updateResting(idx, element.NutFalling, element.NutFalling, s.updateNutFalling)
}

func (s *State) updateBomb(idx int) {
	// A resting bomb rolls as Bomb, not BombFalling.
	s.updateResting(idx, element.BombFalling, element.Bomb, s.updateBombFalling)
}

// moveThroughMagic passes a falling object at idx through the magic
// wall below it into the cell two rows down, converted per the
// magic-wall table, but only when that cell is Empty and the wall still
// has budget. If the under-cell is occupied, or the budget is gone, the
// falling object is left exactly where it is, neither consumed nor
// moved.
func (s *State) moveThroughMagic(idx int) {
	if s.MagicWallSteps <= 0 {
		return
	}
	s.MagicActive = true
	if !s.inBounds(idx, element.Down) {
		return
	}
	wallIdx := s.indexOf(idx, element.Down)
	if !s.inBounds(wallIdx, element.Down) {
		return
	}
	underIdx := s.indexOf(wallIdx, element.Down)
	if s.Grid[underIdx] != element.Empty {
		return
	}
	kind := s.Grid[idx]
	converted := element.MagicWallConversion(kind)
	s.writeCell(idx, element.Empty)
	s.writeCell(underIdx, converted)
	s.hasUpdated[underIdx] = true
}

func (s *State) updateStoneFalling(idx int) {
	if s.isType(idx, element.Empty, element.Down) {
		s.moveItem(idx, element.Down)
		return
	}
	if !s.inBounds(idx, element.Down) {
		return
	}
	below := s.at(idx, element.Down)

	if s.ButterflyExplosionVer == ConvertVer && element.IsButterfly(below) {
		belowIdx := s.indexOf(idx, element.Down)
		s.writeCell(idx, element.Empty)
		s.writeCell(belowIdx, element.Diamond)
		s.hasUpdated[belowIdx] = true
		s.RewardSignal |= element.RewardButterflyToDiamond
		return
	}
	if s.hasProperty(idx, element.CanExplode, element.Down) {
		s.explode(idx, element.ElementToExplosion(below), element.Down)
		return
	}
	if s.isType(idx, element.WallMagicOn, element.Down) || s.isType(idx, element.WallMagicDormant, element.Down) {
		s.moveThroughMagic(idx)
		return
	}
	if below == element.Nut {
		belowIdx := s.indexOf(idx, element.Down)
		s.writeCell(idx, element.Empty)
		s.writeCell(belowIdx, element.Diamond)
		s.hasUpdated[belowIdx] = true
		s.RewardSignal |= element.RewardNutToDiamond
		return
	}
	if below == element.Bomb {
		s.explode(idx, element.ElementToExplosion(element.StoneFalling), element.Noop)
		return
	}
	if s.canRoll(idx, element.Left) {
		s.moveItem(idx, element.Left)
		return
	}
	if s.canRoll(idx, element.Right) {
		s.moveItem(idx, element.Right)
		return
	}
	if below == element.Agent {
		// Cannot roll off and the agent isn't CanExplode: crush it in
		// place via the same detonation path chain reactions use, so
		// is_agent_alive and any secondary blast radius are handled
		// uniformly (see detonate).
		s.explode(idx, element.ElementToExplosion(element.StoneFalling), element.Down)
		return
	}
	s.setItem(idx, element.Stone, element.Noop)
}

func (s *State) updateDiamondFalling(idx int) {
	if s.isType(idx, element.Empty, element.Down) {
		s.moveItem(idx, element.Down)
		return
	}
	if !s.inBounds(idx, element.Down) {
		return
	}
	below := s.at(idx, element.Down)

	// Diamonds have no distinct "convert to diamond" case (they already
	// are diamonds): a Butterfly below always detonates normally here,
	// under either ButterflyExplosionVer.
	if s.hasProperty(idx, element.CanExplode, element.Down) {
		s.explode(idx, element.ElementToExplosion(below), element.Down)
		return
	}
	if s.isType(idx, element.WallMagicOn, element.Down) || s.isType(idx, element.WallMagicDormant, element.Down) {
		s.moveThroughMagic(idx)
		return
	}
	// Diamonds do not crack nuts and do not trigger bomb explosions.
	if s.canRoll(idx, element.Left) {
		s.moveItem(idx, element.Left)
		return
	}
	if s.canRoll(idx, element.Right) {
		s.moveItem(idx, element.Right)
		return
	}
	if below == element.Agent {
		s.explode(idx, element.ElementToExplosion(element.DiamondFalling), element.Down)
		return
	}
	s.setItem(idx, element.Diamond, element.Noop)
}

func (s *State) updateNutFalling(idx int) {
	if s.isType(idx, element.Empty, element.Down) {
		s.moveItem(idx, element.Down)
		return
	}
	if s.canRoll(idx, element.Left) {
		s.moveItem(idx, element.Left)
		return
	}
	if s.canRoll(idx, element.Right) {
		s.moveItem(idx, element.Right)
		return
	}
	s.setItem(idx, element.Nut, element.Noop)
}

func (s *State) updateBombFalling(idx int) {
	if s.isType(idx, element.Empty, element.Down) {
		s.moveItem(idx, element.Down)
		return
	}
	if s.canRoll(idx, element.Left) {
		s.moveItem(idx, element.Left)
		return
	}
	if s.canRoll(idx, element.Right) {
		s.moveItem(idx, element.Right)
		return
	}
	if !s.DisableExplosions {
		s.explode(idx, element.ElementToExplosion(element.BombFalling), element.Noop)
		return
	}
	// Explosions disabled: the bomb remains blocked and falling; there
	// is no degrade-to-resting path here.
}
