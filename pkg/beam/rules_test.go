package beam

import (
	"slices"
	"testing"

	"contraption/pkg/grid"
)

func TestInteract(t *testing.T) {
	cases := []struct {
		tile grid.TileKind
		in   Direction
		want []Direction
	}{
		{grid.Empty, Up, []Direction{Up}},
		{grid.Empty, Left, []Direction{Left}},

		{grid.ForwardMirror, Up, []Direction{Right}},
		{grid.ForwardMirror, Right, []Direction{Up}},
		{grid.ForwardMirror, Down, []Direction{Left}},
		{grid.ForwardMirror, Left, []Direction{Down}},

		{grid.BackwardMirror, Up, []Direction{Left}},
		{grid.BackwardMirror, Left, []Direction{Up}},
		{grid.BackwardMirror, Down, []Direction{Right}},
		{grid.BackwardMirror, Right, []Direction{Down}},

		{grid.VerticalSplitter, Up, []Direction{Up}},
		{grid.VerticalSplitter, Down, []Direction{Down}},
		{grid.VerticalSplitter, Left, []Direction{Up, Down}},
		{grid.VerticalSplitter, Right, []Direction{Up, Down}},

		{grid.HorizontalSplitter, Left, []Direction{Left}},
		{grid.HorizontalSplitter, Right, []Direction{Right}},
		{grid.HorizontalSplitter, Up, []Direction{Left, Right}},
		{grid.HorizontalSplitter, Down, []Direction{Left, Right}},
	}
	for _, c := range cases {
		got := slices.Clone(Interact(c.tile, c.in))
		slices.Sort(got)
		want := slices.Clone(c.want)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("Interact(%v, %v) = %v, want %v", c.tile, c.in, got, want)
		}
	}
}

func TestInteractTotal(t *testing.T) {
	for tile := grid.Empty; tile.Valid(); tile++ {
		for d := Up; d.Valid(); d++ {
			out := Interact(tile, d)
			if len(out) == 0 || len(out) > 2 {
				t.Fatalf("Interact(%v, %v) returned %d headings", tile, d, len(out))
			}
		}
	}
}

func TestInteractPanicsOnUnknownTile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an unknown tile kind")
		}
	}()
	Interact(grid.TileKind(99), Up)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"up": Up, ">": Right, "v": Down, "Left": Left} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
