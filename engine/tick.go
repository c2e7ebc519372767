package engine

import "github.com/lixenwraith/cellmine/element"

// ApplyAction advances the simulation exactly one tick: StartScan
// resets per-tick bookkeeping, UpdateAgent applies the agent's move,
// then every still-unupdated cell is dispatched once in row-major
// order, and EndScan latches the blob swap and counts down the magic
// wall budget. The action must be one of Up/Right/Down/Left; anything
// else is an argument error and the tick is not advanced.
func (s *State) ApplyAction(a element.Direction) error {
	if a < 0 || int(a) >= element.NumActions {
		return ErrInvalidAction
	}

	s.startScan()

	if s.IsAgentAlive && !s.IsAgentInExit && s.Grid[s.AgentIdx] == element.Agent {
		if s.inBounds(s.AgentIdx, a) {
			s.updateAgent(s.AgentIdx, a)
		}
		// The agent's cell (wherever it ended up) is claimed so the scan
		// below never re-dispatches it. Once the agent is dead or in the
		// exit its old index holds an ordinary cell (e.g. a resolving
		// explosion) and must stay eligible for the scan.
		s.markUpdated(s.AgentIdx)
	}

	for i := 0; i < len(s.Grid); i++ {
		if s.hasUpdated[i] {
			continue
		}
		s.dispatch(i)
	}

	s.endScan()
	return nil
}

func (s *State) startScan() {
	s.BlobSize = 0
	s.BlobEnclosed = true
	s.RewardSignal = 0
	for i := range s.hasUpdated {
		s.hasUpdated[i] = false
	}
}

func (s *State) endScan() {
	if s.BlobSwap == element.Null {
		if s.BlobEnclosed {
			s.BlobSwap = element.Diamond
		}
		if s.BlobSize > s.BlobMaxSize {
			s.BlobSwap = element.Stone
		}
	}
	if s.MagicActive {
		if s.MagicWallSteps > 0 {
			s.MagicWallSteps--
		}
		s.MagicActive = s.MagicActive && s.MagicWallSteps > 0
	}
}

func (s *State) dispatch(i int) {
	switch kind := s.Grid[i]; kind {
	case element.Stone:
		s.updateStone(i)
	case element.StoneFalling:
		s.updateStoneFalling(i)
	case element.Diamond:
		s.updateDiamond(i)
	case element.DiamondFalling:
		s.updateDiamondFalling(i)
	case element.Nut:
		s.updateNut(i)
	case element.NutFalling:
		s.updateNutFalling(i)
	case element.Bomb:
		s.updateBomb(i)
	case element.BombFalling:
		s.updateBombFalling(i)
	case element.ExitClosed:
		s.updateExit(i)
	case element.Blob:
		s.updateBlob(i)
	case element.WallMagicDormant, element.WallMagicOn:
		s.updateMagicWall(i)
	case element.ExplosionDiamond, element.ExplosionBoulder, element.ExplosionEmpty:
		s.updateExplosion(i)
	default:
		switch {
		case element.IsFirefly(kind):
			s.updateFirefly(i)
		case element.IsButterfly(kind):
			s.updateButterfly(i)
		case element.IsOrange(kind):
			s.updateOrange(i)
		}
	}
}
