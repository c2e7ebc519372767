package observation

import (
	"github.com/lixenwraith/cellmine/element"
	"github.com/lixenwraith/cellmine/engine"
)

// TileSize is the edge length, in pixels, of each cell's solid-color
// sprite in ToImage's output.
const TileSize = 32

// sprite is a compile-time solid-color tile. Rendering here is a plain
// per-cell lookup blit; anything fancier belongs in an external,
// asset-backed renderer.
type sprite [3]byte

var sprites = [element.NumVisibleCellTypes]sprite{
	element.VAgent:            {255, 215, 0},
	element.VEmpty:            {0, 0, 0},
	element.VDirt:             {139, 90, 43},
	element.VStone:            {128, 128, 128},
	element.VDiamond:          {0, 255, 255},
	element.VExitClosed:       {160, 160, 0},
	element.VExitOpen:         {255, 255, 0},
	element.VAgentInExit:      {255, 230, 120},
	element.VFirefly:          {255, 0, 0},
	element.VButterfly:        {255, 0, 255},
	element.VWallBrick:        {180, 100, 50},
	element.VWallSteel:        {90, 90, 90},
	element.VWallMagicDormant: {80, 0, 160},
	element.VWallMagicOn:      {160, 0, 255},
	element.VWallMagicExpired: {60, 60, 70},
	element.VBlob:             {0, 180, 0},
	element.VExplosionDiamond: {255, 160, 255},
	element.VExplosionBoulder: {255, 160, 160},
	element.VExplosionEmpty:   {255, 255, 255},
	element.VGateRedClosed:    {120, 0, 0},
	element.VGateRedOpen:      {255, 0, 0},
	element.VGateBlueClosed:   {0, 0, 120},
	element.VGateBlueOpen:     {0, 0, 255},
	element.VGateGreenClosed:  {0, 120, 0},
	element.VGateGreenOpen:    {0, 255, 0},
	element.VGateYellowClosed: {120, 120, 0},
	element.VGateYellowOpen:   {255, 255, 0},
	element.VKeyRed:           {255, 80, 80},
	element.VKeyBlue:          {80, 80, 255},
	element.VKeyGreen:         {80, 255, 80},
	element.VKeyYellow:        {255, 255, 150},
	element.VNut:              {200, 170, 100},
	element.VBomb:             {40, 40, 40},
	element.VOrange:           {255, 140, 0},
}

// ImageShape returns the raster output's (rows*TileSize, cols*TileSize,
// 3) shape.
func ImageShape(s *engine.State) (height, width, channels int) {
	return s.Rows * TileSize, s.Cols * TileSize, 3
}

// ToImage renders s by blitting each cell's solid-color sprite into a
// row-major RGB byte buffer of length rows*cols*TileSize*TileSize*3.
func ToImage(s *engine.State) []byte {
	h := s.Rows * TileSize
	w := s.Cols * TileSize
	out := make([]byte, h*w*3)

	for i, kind := range s.Grid {
		row, col := i/s.Cols, i%s.Cols
		sp := sprites[element.Visible(kind)]
		baseY := row * TileSize
		baseX := col * TileSize
		for y := 0; y < TileSize; y++ {
			rowOff := (baseY + y) * w * 3
			for x := 0; x < TileSize; x++ {
				off := rowOff + (baseX+x)*3
				out[off] = sp[0]
				out[off+1] = sp[1]
				out[off+2] = sp[2]
			}
		}
	}
	return out
}
