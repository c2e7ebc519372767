// Package observation projects a simulation grid into its consumer
// output formats: a one-hot channel-major tensor for RL callers, a
// sprite-blit RGB image, and an SVG debug view. All are pure
// projections through the element catalog; none mutates the state it
// reads.
package observation

import (
	"github.com/lixenwraith/cellmine/element"
	"github.com/lixenwraith/cellmine/engine"
)

// NumChannels is the number of one-hot observation channels, one per
// VisibleCellType.
const NumChannels = int(element.NumVisibleCellTypes)

// Shape returns the tensor's (channels, rows, cols) shape.
func Shape(s *engine.State) (channels, rows, cols int) {
	return NumChannels, s.Rows, s.Cols
}

// Tensor builds the one-hot observation: float32 of length
// NumChannels*rows*cols, channel-major (channel varies slowest).
func Tensor(s *engine.State) []float32 {
	flat := s.Rows * s.Cols
	out := make([]float32, NumChannels*flat)
	for i, kind := range s.Grid {
		ch := int(element.Visible(kind))
		out[ch*flat+i] = 1
	}
	return out
}
