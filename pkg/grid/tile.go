package grid

// TileKind identifies the optical element occupying a cell.
type TileKind uint8

const (
	// Empty lets a beam pass straight through.
	Empty TileKind = iota
	// ForwardMirror is the '/' mirror.
	ForwardMirror
	// BackwardMirror is the '\' mirror.
	BackwardMirror
	// VerticalSplitter is the '|' splitter.
	VerticalSplitter
	// HorizontalSplitter is the '-' splitter.
	HorizontalSplitter

	tileKindCount
)

var tileSymbols = [tileKindCount]byte{
	Empty:              '.',
	ForwardMirror:      '/',
	BackwardMirror:     '\\',
	VerticalSplitter:   '|',
	HorizontalSplitter: '-',
}

// Valid reports whether t is one of the declared tile kinds.
func (t TileKind) Valid() bool { return t < tileKindCount }

// Symbol returns the layout character for t, or '?' for unknown kinds.
func (t TileKind) Symbol() byte {
	if !t.Valid() {
		return '?'
	}
	return tileSymbols[t]
}

func (t TileKind) String() string {
	switch t {
	case Empty:
		return "empty"
	case ForwardMirror:
		return "forward-mirror"
	case BackwardMirror:
		return "backward-mirror"
	case VerticalSplitter:
		return "vertical-splitter"
	case HorizontalSplitter:
		return "horizontal-splitter"
	}
	return "unknown"
}

// TileFor maps a layout character to its tile kind.
func TileFor(c byte) (TileKind, bool) {
	switch c {
	case '.':
		return Empty, true
	case '/':
		return ForwardMirror, true
	case '\\':
		return BackwardMirror, true
	case '|':
		return VerticalSplitter, true
	case '-':
		return HorizontalSplitter, true
	}
	return 0, false
}
