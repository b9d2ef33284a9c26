package beam

import (
	"fmt"

	"contraption/pkg/grid"
)

var (
	onlyUp    = []Direction{Up}
	onlyRight = []Direction{Right}
	onlyDown  = []Direction{Down}
	onlyLeft  = []Direction{Left}
	upDown    = []Direction{Up, Down}
	leftRight = []Direction{Left, Right}
)

var straight = [directionCount][]Direction{
	Up:    onlyUp,
	Right: onlyRight,
	Down:  onlyDown,
	Left:  onlyLeft,
}

// interactions[tile][incoming] lists the outgoing headings. The slices are
// shared and must not be modified.
var interactions = [...][directionCount][]Direction{
	grid.Empty: straight,
	grid.ForwardMirror: {
		Up:    onlyRight,
		Right: onlyUp,
		Down:  onlyLeft,
		Left:  onlyDown,
	},
	grid.BackwardMirror: {
		Up:    onlyLeft,
		Left:  onlyUp,
		Down:  onlyRight,
		Right: onlyDown,
	},
	grid.VerticalSplitter: {
		Up:    onlyUp,
		Down:  onlyDown,
		Left:  upDown,
		Right: upDown,
	},
	grid.HorizontalSplitter: {
		Left:  onlyLeft,
		Right: onlyRight,
		Up:    leftRight,
		Down:  leftRight,
	},
}

// Interact returns the headings a beam leaves tile t with after arriving
// with heading in. The result has one or two entries and is read-only.
func Interact(t grid.TileKind, in Direction) []Direction {
	if int(t) >= len(interactions) || !in.Valid() {
		panic(fmt.Sprintf("beam: unexpected interaction of %v with %v", t, in))
	}
	return interactions[t][in]
}
