package element

// Direction enumerates the movement/facing directions used throughout
// the grid. The first four values double as agent action codes, so
// their ordinal values are load-bearing: apply_action validates its
// argument against this range.
type Direction int8

const (
	Up Direction = iota
	Right
	Down
	Left
	Noop
	UpRight
	DownRight
	DownLeft
	UpLeft
)

// NumActions is the count of valid agent action codes (Up..Left).
const NumActions = 4

// Offset is a (column, row) delta.
type Offset struct{ DCol, DRow int }

var directionOffsets = [...]Offset{
	Up:        {0, -1},
	Right:     {1, 0},
	Down:      {0, 1},
	Left:      {-1, 0},
	Noop:      {0, 0},
	UpRight:   {1, -1},
	DownRight: {1, 1},
	DownLeft:  {-1, 1},
	UpLeft:    {-1, -1},
}

// DirectionOffset returns the (dcol, drow) delta for d.
func DirectionOffset(d Direction) Offset { return directionOffsets[d] }

// AllDirections lists every direction but Noop, the set Explode fans
// out into when searching for secondary consumable/explodable neighbors.
var AllDirections = [8]Direction{Up, Right, Down, Left, UpRight, DownRight, DownLeft, UpLeft}

// cardinal rotation cycles clockwise Up->Right->Down->Left->Up. Fireflies
// prefer rotating left (counter-clockwise); butterflies prefer right.
var rotateRight = [4]Direction{Up: Right, Right: Down, Down: Left, Left: Up}
var rotateLeft = [4]Direction{Up: Left, Left: Down, Down: Right, Right: Up}

// RotateLeft returns the direction one quarter-turn counter-clockwise
// from a cardinal d.
func RotateLeft(d Direction) Direction { return rotateLeft[d] }

// RotateRight returns the direction one quarter-turn clockwise from a
// cardinal d.
func RotateRight(d Direction) Direction { return rotateRight[d] }

var fireflyToDir = [4]Direction{FireflyUp - FireflyUp: Up, FireflyRight - FireflyUp: Right, FireflyDown - FireflyUp: Down, FireflyLeft - FireflyUp: Left}
var dirToFirefly = [4]HiddenCellType{Up: FireflyUp, Right: FireflyRight, Down: FireflyDown, Left: FireflyLeft}
var dirToButterfly = [4]HiddenCellType{Up: ButterflyUp, Right: ButterflyRight, Down: ButterflyDown, Left: ButterflyLeft}
var dirToOrange = [4]HiddenCellType{Up: OrangeUp, Right: OrangeRight, Down: OrangeDown, Left: OrangeLeft}

var butterflyToDir = [4]Direction{0: Up, 1: Right, 2: Down, 3: Left}
var orangeToDir = [4]Direction{0: Up, 1: Right, 2: Down, 3: Left}

// FireflyFacing returns the direction a FireflyUp/Right/Down/Left cell
// is currently facing.
func FireflyFacing(kind HiddenCellType) Direction { return fireflyToDir[kind-FireflyUp] }

// FireflyAt returns the Firefly variant facing d.
func FireflyAt(d Direction) HiddenCellType { return dirToFirefly[d] }

// ButterflyFacing returns the direction a ButterflyUp/Right/Down/Left
// cell is currently facing.
func ButterflyFacing(kind HiddenCellType) Direction { return butterflyToDir[kind-ButterflyUp] }

// ButterflyAt returns the Butterfly variant facing d.
func ButterflyAt(d Direction) HiddenCellType { return dirToButterfly[d] }

// OrangeFacing returns the direction an OrangeUp/Right/Down/Left cell
// is currently facing.
func OrangeFacing(kind HiddenCellType) Direction { return orangeToDir[kind-OrangeUp] }

// OrangeAt returns the Orange variant facing d.
func OrangeAt(d Direction) HiddenCellType { return dirToOrange[d] }

// IsFirefly, IsButterfly and IsOrange classify a hidden kind by family,
// independent of its current facing.
func IsFirefly(kind HiddenCellType) bool   { return kind >= FireflyUp && kind <= FireflyLeft }
func IsButterfly(kind HiddenCellType) bool { return kind >= ButterflyUp && kind <= ButterflyLeft }
func IsOrange(kind HiddenCellType) bool    { return kind >= OrangeUp && kind <= OrangeLeft }
