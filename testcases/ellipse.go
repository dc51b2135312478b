package testcases

import (
	"image"

	"seehuhn.de/go/minicad"
)

var ellipseCases = []TestCase{
	{
		Name:   "small",
		Shape:  minicad.Ellipse{CX: 8, CY: 8, RX: 2, RY: 1, Pen: pen(minicad.Black, 1)},
		Width:  16,
		Height: 16,
		Pixels: quadrants(8, 8, image.Point{0, 1}, image.Point{1, 1}, image.Point{2, 0}),
	},
	{
		Name:  "round3",
		Shape: minicad.Ellipse{CX: 8, CY: 8, RX: 3, RY: 3, Pen: pen(minicad.Black, 1)},
		Width: 16, Height: 16,
		Pixels: quadrants(8, 8,
			image.Point{0, 3}, image.Point{1, 3}, image.Point{2, 2},
			image.Point{3, 1}, image.Point{3, 0}),
	},
	{
		// the last point on the x-axis is (9,0), not (10,0)
		Name:  "flat",
		Shape: minicad.Ellipse{CX: 32, CY: 32, RX: 10, RY: 1, Pen: pen(minicad.Red, 1)},
		Width: 64, Height: 64,
		Pixels: quadrants(32, 32,
			image.Point{0, 1}, image.Point{1, 1}, image.Point{2, 1},
			image.Point{3, 1}, image.Point{4, 1}, image.Point{5, 1},
			image.Point{6, 1}, image.Point{7, 1}, image.Point{8, 1},
			image.Point{9, 0}),
	},
	{
		Name:   "wide",
		Shape:  minicad.Ellipse{CX: 32, CY: 32, RX: 25, RY: 10, Pen: pen(minicad.Blue, 1)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tall",
		Shape:  minicad.Ellipse{CX: 32, CY: 32, RX: 8, RY: 28, Pen: pen(minicad.Green, 1)},
		Width:  64,
		Height: 64,
	},
}
