package engine

import "github.com/lixenwraith/cellmine/element"

// updateBlob applies any swap latched at the end of the previous tick,
// otherwise grows the colony and probes a random cardinal neighbor for
// expansion. The two RNG draws (growth decision, then direction) always
// happen together; nothing here short-circuits before both are taken.
func (s *State) updateBlob(idx int) {
	if s.BlobSwap != element.Null {
		s.setItem(idx, s.BlobSwap, element.Noop)
		return
	}

	s.BlobSize++
	for _, d := range cardinals {
		if s.isType(idx, element.Empty, d) || s.isType(idx, element.Dirt, d) {
			s.BlobEnclosed = false
			break
		}
	}

	r1 := int(s.rngNext() % 256)
	willGrow := r1 < s.BlobChance
	r2 := int(s.rngNext() % 4)
	d := cardinals[r2]

	if willGrow && (s.isType(idx, element.Empty, d) || s.isType(idx, element.Dirt, d)) {
		s.setItem(idx, element.Blob, d)
	}
}

// updateMagicWall implements the MagicWall rule: a dormant or active
// wall cell re-derives its visible state from the shared magic_active
// flag and remaining step budget every tick it is scanned.
func (s *State) updateMagicWall(idx int) {
	switch {
	case s.MagicActive:
		s.setItem(idx, element.WallMagicOn, element.Noop)
	case s.MagicWallSteps > 0:
		s.setItem(idx, element.WallMagicDormant, element.Noop)
	default:
		s.setItem(idx, element.WallMagicExpired, element.Noop)
	}
}

// updateExit implements the ExitClosed rule: open once enough gems are
// collected.
func (s *State) updateExit(idx int) {
	if s.GemsCollected >= s.GemsRequired {
		s.setItem(idx, element.ExitOpen, element.Noop)
	}
}
