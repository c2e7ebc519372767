package observation

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lixenwraith/cellmine/element"
	"github.com/lixenwraith/cellmine/engine"
)

// SVGOptions configures WriteSVG.
type SVGOptions struct {
	CellSize   int  // pixels per cell, default 24
	ShowGlyphs bool // overlay each cell's catalog glyph
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 24, ShowGlyphs: true}
}

// WriteSVG renders s as a scalable vector grid: a filled rect per cell
// colored by its visible kind, optionally labeled with the hidden
// kind's glyph. It is additive to ToImage, not a replacement — useful
// for inspecting boards in a browser without decoding a raw pixel
// buffer.
func WriteSVG(w io.Writer, s *engine.State, opts SVGOptions) error {
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}
	cs := opts.CellSize
	width := s.Cols * cs
	height := s.Rows * cs

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#101010")

	for i, kind := range s.Grid {
		row, col := i/s.Cols, i%s.Cols
		x, y := col*cs, row*cs
		sp := sprites[element.Visible(kind)]
		style := fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:#000;stroke-width:1", sp[0], sp[1], sp[2])
		canvas.Rect(x, y, cs, cs, style)
		if opts.ShowGlyphs {
			canvas.Text(x+cs/2, y+cs/2+4, string(element.Glyph(kind)),
				"text-anchor:middle;font-size:12px;fill:#fff")
		}
	}

	canvas.End()
	return nil
}
