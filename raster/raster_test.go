// seehuhn.de/go/minicad - a minimal raster drawing tool
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"fmt"
	"image"
	"math"
	"slices"
	"testing"
)

type lineFunc func(dst []image.Point, x0, y0, x1, y1 int) []image.Point

var lineAlgorithms = []struct {
	name string
	fn   lineFunc
}{
	{"direct", LineDirect},
	{"dda", LineDDA},
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.49, 1},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{-2.5, -2},
		{-2.51, -3},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%g): expected %d, got %d", c.in, c.want, got)
		}
	}
}

// TestAxisAlignedLines checks that vertical and horizontal segments step by
// one pixel along the moving axis and keep the other coordinate fixed.
func TestAxisAlignedLines(t *testing.T) {
	for _, alg := range lineAlgorithms {
		for _, d := range []int{-7, -1, 1, 2, 10} {
			t.Run(fmt.Sprintf("%s_vertical_%d", alg.name, d), func(t *testing.T) {
				pts := alg.fn(nil, 3, 4, 3, 4+d)
				if len(pts) != abs(d)+1 {
					t.Fatalf("expected %d pixels, got %d", abs(d)+1, len(pts))
				}
				for i, p := range pts {
					want := image.Point{X: 3, Y: 4 + i*sign(d)}
					if p != want {
						t.Errorf("pixel %d: expected %v, got %v", i, want, p)
					}
				}
			})
			t.Run(fmt.Sprintf("%s_horizontal_%d", alg.name, d), func(t *testing.T) {
				pts := alg.fn(nil, -2, 5, -2+d, 5)
				if len(pts) != abs(d)+1 {
					t.Fatalf("expected %d pixels, got %d", abs(d)+1, len(pts))
				}
				for i, p := range pts {
					want := image.Point{X: -2 + i*sign(d), Y: 5}
					if p != want {
						t.Errorf("pixel %d: expected %v, got %v", i, want, p)
					}
				}
			})
		}
	}
}

func TestSinglePixelLine(t *testing.T) {
	for _, alg := range lineAlgorithms {
		pts := alg.fn(nil, 9, -4, 9, -4)
		want := []image.Point{{X: 9, Y: -4}}
		if !slices.Equal(pts, want) {
			t.Errorf("%s: expected %v, got %v", alg.name, want, pts)
		}
	}
}

// TestLineEndpoints checks that both algorithms start and end exactly at
// the given endpoints, for every direction in a small neighbourhood.
func TestLineEndpoints(t *testing.T) {
	const x0, y0 = 5, -3
	for dx := -13; dx <= 13; dx++ {
		for dy := -13; dy <= 13; dy++ {
			x1, y1 := x0+dx, y0+dy
			want := []image.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}
			for _, alg := range lineAlgorithms {
				pts := alg.fn(nil, x0, y0, x1, y1)
				got := []image.Point{pts[0], pts[len(pts)-1]}
				if !slices.Equal(got, want) {
					t.Errorf("%s (%d,%d)-(%d,%d): expected endpoints %v, got %v",
						alg.name, x0, y0, x1, y1, want, got)
				}
				if n := max(abs(dx), abs(dy)) + 1; len(pts) != n {
					t.Errorf("%s (%d,%d)-(%d,%d): expected %d pixels, got %d",
						alg.name, x0, y0, x1, y1, n, len(pts))
				}
			}
		}
	}
}

func TestLineExamples(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{
			name: "shallow",
			x0:   0, y0: 0, x1: 4, y1: 2,
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}},
		},
		{
			name: "shallow_reversed",
			x0:   4, y0: 2, x1: 0, y1: 0,
			want: []image.Point{{4, 2}, {3, 2}, {2, 1}, {1, 1}, {0, 0}},
		},
		{
			name: "steep",
			x0:   0, y0: 0, x1: 1, y1: 3,
			want: []image.Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}},
		},
		{
			name: "diagonal_down",
			x0:   0, y0: 0, x1: 3, y1: -3,
			want: []image.Point{{0, 0}, {1, -1}, {2, -2}, {3, -3}},
		},
	}
	for _, c := range cases {
		for _, alg := range lineAlgorithms {
			t.Run(c.name+"_"+alg.name, func(t *testing.T) {
				got := alg.fn(nil, c.x0, c.y0, c.x1, c.y1)
				if !slices.Equal(got, c.want) {
					t.Errorf("expected %v, got %v", c.want, got)
				}
			})
		}
	}
}

// TestLineDDATie pins a sample which lands on a pixel boundary after
// accumulating the increments in float64 arithmetic.
func TestLineDDATie(t *testing.T) {
	pts := LineDDA(nil, 0, 0, -60, -58)
	if len(pts) != 61 {
		t.Fatalf("expected 61 pixels, got %d", len(pts))
	}
	if want := image.Pt(-45, -43); pts[45] != want {
		t.Errorf("sample 45: expected %v, got %v", want, pts[45])
	}
	if want := image.Pt(-60, -58); pts[60] != want {
		t.Errorf("last sample: expected %v, got %v", want, pts[60])
	}
}

func TestLineAppends(t *testing.T) {
	prefix := []image.Point{{X: 100, Y: 100}}
	got := LineDirect(prefix, 0, 0, 2, 0)
	want := []image.Point{{100, 100}, {0, 0}, {1, 0}, {2, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCircleZeroRadius(t *testing.T) {
	got := Circle(nil, 4, -8, 0)
	want := []image.Point{{X: 4, Y: -8}}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestCircleRadius5 checks the octant walk of the midpoint algorithm:
// (0,5) (1,5) (2,5) (3,4) (4,3), eight mirrored points each.
func TestCircleRadius5(t *testing.T) {
	pts := Circle(nil, 0, 0, 5)
	if len(pts) != 5*8 {
		t.Fatalf("expected %d points, got %d", 5*8, len(pts))
	}

	want := map[image.Point]bool{}
	for _, o := range []image.Point{{0, 5}, {1, 5}, {2, 5}, {3, 4}, {4, 3}} {
		for _, p := range octants(o.X, o.Y) {
			want[p] = true
		}
	}
	got := pointSet(pts)
	if len(got) != 28 {
		t.Errorf("expected 28 distinct pixels, got %d", len(got))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("missing pixel %v", p)
		}
	}
	for p := range got {
		if !want[p] {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	const cx, cy = 7, -3
	for r := 1; r <= 40; r++ {
		pts := Circle(nil, cx, cy, r)
		if len(pts)%8 != 0 {
			t.Errorf("r=%d: %d points is not a multiple of 8", r, len(pts))
		}
		set := pointSet(pts)
		for p := range set {
			for _, q := range octants(p.X-cx, p.Y-cy) {
				q = q.Add(image.Point{X: cx, Y: cy})
				if !set[q] {
					t.Errorf("r=%d: %v present but mirror %v missing", r, p, q)
				}
			}
			d := math.Hypot(float64(p.X-cx), float64(p.Y-cy))
			if math.Abs(d-float64(r)) >= 1 {
				t.Errorf("r=%d: pixel %v at distance %.3f", r, p, d)
			}
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	a := Circle(nil, 1, 2, -6)
	b := Circle(nil, 1, 2, 6)
	if !slices.Equal(a, b) {
		t.Errorf("negative radius: expected %v, got %v", b, a)
	}
}

func TestEllipseDegenerate(t *testing.T) {
	got := Ellipse(nil, 3, 3, 0, 0)
	want := []image.Point{{X: 3, Y: 3}}
	if !slices.Equal(got, want) {
		t.Errorf("rx=ry=0: expected %v, got %v", want, got)
	}

	// a zero semi-axis must terminate and stay on the collapsed axis
	for _, c := range []struct{ rx, ry int }{{0, 5}, {5, 0}, {0, 1}, {1, 0}} {
		pts := Ellipse(nil, 0, 0, c.rx, c.ry)
		if len(pts) == 0 {
			t.Errorf("rx=%d ry=%d: no pixels", c.rx, c.ry)
		}
		for _, p := range pts {
			if abs(p.X) > max(c.rx, 1) || abs(p.Y) > c.ry {
				t.Errorf("rx=%d ry=%d: pixel %v outside the ellipse box", c.rx, c.ry, p)
			}
		}
	}
}

func TestEllipseSmall(t *testing.T) {
	got := Ellipse(nil, 0, 0, 2, 1)
	var want []image.Point
	for _, o := range []image.Point{{0, 1}, {1, 1}, {2, 0}} {
		want = ellipse4(want, 0, 0, o.X, o.Y)
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEllipseSymmetry(t *testing.T) {
	const cx, cy = -4, 11
	for rx := 0; rx <= 15; rx++ {
		for ry := 0; ry <= 15; ry++ {
			pts := Ellipse(nil, cx, cy, rx, ry)
			set := pointSet(pts)
			for p := range set {
				dx, dy := p.X-cx, p.Y-cy
				for _, q := range []image.Point{{cx + dx, cy - dy}, {cx - dx, cy + dy}, {cx - dx, cy - dy}} {
					if !set[q] {
						t.Errorf("rx=%d ry=%d: %v present but mirror %v missing", rx, ry, p, q)
					}
				}
			}
		}
	}
}

// TestEllipseMatchesCircle compares an ellipse with equal semi-axes to the
// circle of the same radius.
func TestEllipseMatchesCircle(t *testing.T) {
	for _, r := range []int{1, 3} {
		e := pointSet(Ellipse(nil, 0, 0, r, r))
		c := pointSet(Circle(nil, 0, 0, r))
		if len(e) != len(c) {
			t.Errorf("r=%d: ellipse has %d pixels, circle %d", r, len(e), len(c))
		}
		for p := range c {
			if !e[p] {
				t.Errorf("r=%d: circle pixel %v missing from ellipse", r, p)
			}
		}
	}

	for r := 1; r <= 30; r++ {
		for _, p := range Ellipse(nil, 0, 0, r, r) {
			d := math.Hypot(float64(p.X), float64(p.Y))
			if math.Abs(d-float64(r)) >= 1 {
				t.Errorf("r=%d: ellipse pixel %v at distance %.3f", r, p, d)
			}
		}
	}
}

func TestEllipseLargeAxes(t *testing.T) {
	// rx*rx overflows 32 bits
	pts := Ellipse(nil, 0, 0, 70000, 3)
	set := pointSet(pts)
	if !set[image.Point{X: 0, Y: 3}] || !set[image.Point{X: 0, Y: -3}] {
		t.Errorf("missing top or bottom vertex")
	}
	for _, p := range pts {
		if abs(p.X) > 70000 || abs(p.Y) > 3 {
			t.Fatalf("pixel %v outside the ellipse box", p)
		}
	}
}

func octants(x, y int) []image.Point {
	return circle8(nil, 0, 0, x, y)
}

func pointSet(pts []image.Point) map[image.Point]bool {
	set := make(map[image.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}
