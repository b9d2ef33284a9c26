package beam

import (
	"errors"
	"strings"
	"testing"

	"contraption/pkg/grid"
)

const sampleLayout = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func mustParse(t *testing.T, layout string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(layout)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestEnergizedSample(t *testing.T) {
	g := mustParse(t, sampleLayout)
	n, err := EnergizedFrom(g, 0, 0, Right)
	if err != nil {
		t.Fatalf("EnergizedFrom: %v", err)
	}
	if n != 46 {
		t.Fatalf("energized = %d, want 46", n)
	}
}

func TestEnergizedDeterministic(t *testing.T) {
	g := mustParse(t, sampleLayout)
	first, _ := EnergizedFrom(g, 0, 0, Right)
	for i := 0; i < 5; i++ {
		n, _ := EnergizedFrom(g, 0, 0, Right)
		if n != first {
			t.Fatalf("run %d energized %d, first run %d", i, n, first)
		}
	}
}

func TestStraightLine(t *testing.T) {
	layout := strings.Repeat(strings.Repeat(".", 7)+"\n", 4)
	g := mustParse(t, layout)
	n, err := EnergizedFrom(g, 0, 0, Right)
	if err != nil {
		t.Fatalf("EnergizedFrom: %v", err)
	}
	if n != g.Cols() {
		t.Fatalf("energized = %d, want %d", n, g.Cols())
	}
}

func TestSingleCell(t *testing.T) {
	for _, layout := range []string{".", "/", "\\", "|", "-"} {
		g := mustParse(t, layout)
		for d := Up; d.Valid(); d++ {
			n, err := EnergizedFrom(g, 0, 0, d)
			if err != nil || n != 1 {
				t.Fatalf("%q heading %v: energized %d, err %v; want 1", layout, d, n, err)
			}
		}
	}
}

func TestSplitterFanOut(t *testing.T) {
	g := mustParse(t, "...\n.|.\n...")
	v, err := Trace(g, At(1, 0, Right))
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	for _, want := range []State{At(0, 1, Up), At(2, 1, Down)} {
		if !v.Contains(want) {
			t.Fatalf("visited set lacks %v", want)
		}
	}
	if v.Contains(At(1, 2, Right)) {
		t.Fatal("beam passed through a splitter struck side-on")
	}
	if n := EnergizedCount(v); n != 4 {
		t.Fatalf("energized = %d, want 4", n)
	}
}

func TestMirrorLoopTerminates(t *testing.T) {
	g := mustParse(t, "/-\\\n|.|\n\\-/\n")
	tr, err := NewTracer(g, At(1, 0, Up))
	if err != nil {
		t.Fatalf("NewTracer: %v", err)
	}
	v, err := tr.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := EnergizedCount(v); n != 8 {
		t.Fatalf("energized = %d, want 8", n)
	}
	if tr.Expansions() > g.Area()*4 {
		t.Fatalf("expanded %d fronts on a %d-cell grid", tr.Expansions(), g.Area())
	}
	if !tr.Done() || tr.Pending() != 0 {
		t.Fatal("tracer not drained after Run")
	}
}

func TestTracerSteps(t *testing.T) {
	g := mustParse(t, "...\n...")
	tr, err := NewTracer(g, At(0, 0, Right))
	if err != nil {
		t.Fatalf("NewTracer: %v", err)
	}
	steps := 0
	for tr.Step() {
		steps++
		if len(tr.Visited()) != steps+1 && !tr.Done() {
			t.Fatalf("after %d steps visited %d fronts", steps, len(tr.Visited()))
		}
	}
	if steps != 3 {
		t.Fatalf("took %d steps, want 3", steps)
	}
	if tr.Step() {
		t.Fatal("Step after completion reported progress")
	}
	if tr.Err() != nil {
		t.Fatalf("Err = %v", tr.Err())
	}
}

func TestEnergizedPositions(t *testing.T) {
	g := mustParse(t, "-.\n..")
	v, err := Trace(g, At(0, 0, Down))
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	cells := v.Energized()
	if len(cells) != EnergizedCount(v) {
		t.Fatalf("Energized() has %d cells, count %d", len(cells), EnergizedCount(v))
	}
	if len(cells) != 2 {
		t.Fatalf("energized %v, want (0,0) and (0,1)", cells)
	}
}

func TestBoundsViolation(t *testing.T) {
	g := mustParse(t, sampleLayout)
	for _, s := range []State{At(-1, 0, Down), At(0, 10, Left), At(10, 3, Up), At(0, 0, Direction(9))} {
		_, err := EnergizedFrom(g, s.Row, s.Col, s.Dir)
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("start %v: expected BoundsError, got %v", s, err)
		}
		if be.Rows != 10 || be.Cols != 10 {
			t.Fatalf("BoundsError dims %dx%d", be.Rows, be.Cols)
		}
	}
}

func TestBoundOnCount(t *testing.T) {
	g := mustParse(t, sampleLayout)
	for _, s := range Edges(g.Rows(), g.Cols()) {
		n, err := EnergizedFrom(g, s.Row, s.Col, s.Dir)
		if err != nil {
			t.Fatalf("EnergizedFrom(%v): %v", s, err)
		}
		if n <= 0 || n > g.Area() {
			t.Fatalf("start %v energized %d, outside (0, %d]", s, n, g.Area())
		}
	}
}
