package engine

import "github.com/lixenwraith/cellmine/element"

func isKey(k element.HiddenCellType) bool {
	switch k {
	case element.KeyRed, element.KeyBlue, element.KeyGreen, element.KeyYellow:
		return true
	default:
		return false
	}
}

func isOpenGate(k element.HiddenCellType) bool {
	switch k {
	case element.GateRedOpen, element.GateBlueOpen, element.GateGreenOpen, element.GateYellowOpen:
		return true
	default:
		return false
	}
}

func isDiamondLike(k element.HiddenCellType) bool {
	return k == element.Diamond || k == element.DiamondFalling
}

// moveAgentTo relocates the agent from src to dst, overwriting whatever
// dst held, and updates AgentIdx.
func (s *State) moveAgentTo(src, dst int) {
	s.writeCell(dst, element.Agent)
	s.writeCell(src, element.Empty)
	s.hasUpdated[dst] = true
	s.AgentIdx = dst
}

// openGate converts every closed gate of closedKind's color to open.
func (s *State) openGate(closedKind element.HiddenCellType) {
	openKind, ok := element.GateOpen(closedKind)
	if !ok {
		return
	}
	for i, k := range s.Grid {
		if k == closedKind {
			s.writeCell(i, openKind)
			s.hasUpdated[i] = true
		}
	}
}

// tryPush attempts to shove the Pushable cell at targetIdx one further
// step in dir, then moves the agent into targetIdx.
func (s *State) tryPush(idx, targetIdx int, dir element.Direction, kind element.HiddenCellType) {
	if !s.inBounds(targetIdx, dir) {
		return
	}
	twoIdx := s.indexOf(targetIdx, dir)
	if s.Grid[twoIdx] != element.Empty {
		return
	}
	newKind := kind
	if s.inBounds(twoIdx, element.Down) && s.isType(twoIdx, element.Empty, element.Down) {
		if fk, ok := element.ToFalling(kind); ok {
			newKind = fk
		}
	}
	s.writeCell(twoIdx, newKind)
	s.hasUpdated[twoIdx] = true
	s.writeCell(targetIdx, element.Empty)
	s.moveAgentTo(idx, targetIdx)
}

// walkThroughGate implements step 7 of UpdateAgent: the agent may only
// enter an open gate if the cell one further step past it is
// Traversable, in which case that cell's interaction (collect diamond,
// collect key) applies first and the agent ends up standing there.
func (s *State) walkThroughGate(idx, gateIdx int, dir element.Direction, gateKind element.HiddenCellType) {
	if !s.inBounds(gateIdx, dir) {
		return
	}
	farIdx := s.indexOf(gateIdx, dir)
	farKind := s.Grid[farIdx]
	if !element.HasProperty(farKind, element.Traversable) {
		return
	}

	switch {
	case isDiamondLike(farKind):
		s.GemsCollected++
		s.RewardSignal |= element.RewardCollectDiamond
	case isKey(farKind):
		s.RewardSignal |= element.KeyToSignal(farKind)
		if gc, ok := element.KeyToGate(farKind); ok {
			s.openGate(gc)
		}
	}

	s.writeCell(farIdx, element.Agent)
	s.writeCell(idx, element.Empty)
	s.hasUpdated[farIdx] = true
	s.AgentIdx = farIdx
	s.RewardSignal |= element.GateToSignal(gateKind)
}

// updateAgent implements UpdateAgent(idx, dir): the agent's one action
// for this tick. Blocked actions are silent no-ops; the world still
// advances around them.
func (s *State) updateAgent(idx int, dir element.Direction) {
	if !s.inBounds(idx, dir) {
		return
	}
	tIdx := s.indexOf(idx, dir)
	t := s.Grid[tIdx]

	switch {
	case t == element.Empty || t == element.Dirt:
		s.moveAgentTo(idx, tIdx)
	case isDiamondLike(t):
		s.GemsCollected++
		s.RewardSignal |= element.RewardCollectDiamond
		s.moveAgentTo(idx, tIdx)
	case (dir == element.Left || dir == element.Right) && element.HasProperty(t, element.Pushable):
		s.tryPush(idx, tIdx, dir, t)
	case isKey(t):
		s.RewardSignal |= element.KeyToSignal(t)
		gateClosed, _ := element.KeyToGate(t)
		s.moveAgentTo(idx, tIdx)
		s.openGate(gateClosed)
	case isOpenGate(t):
		s.walkThroughGate(idx, tIdx, dir, t)
	case t == element.ExitOpen:
		s.writeCell(tIdx, element.AgentInExit)
		s.writeCell(idx, element.Empty)
		s.hasUpdated[tIdx] = true
		s.AgentIdx = tIdx
		s.IsAgentInExit = true
		s.RewardSignal |= element.RewardWalkThroughExit
	}
}
