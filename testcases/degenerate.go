package testcases

import (
	"image"

	"seehuhn.de/go/minicad"
)

var degenerateCases = []TestCase{
	{
		Name: "point_direct",
		Shape: minicad.Line{
			X0: 5, Y0: 5, X1: 5, Y1: 5,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(5, 5),
	},
	{
		Name: "point_dda",
		Shape: minicad.Line{
			X0: 5, Y0: 5, X1: 5, Y1: 5,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(5, 5),
	},
	{
		Name:   "circle_zero",
		Shape:  minicad.Circle{CX: 5, CY: 5, Radius: 0, Pen: pen(minicad.Black, 1)},
		Width:  8,
		Height: 8,
		Pixels: pts(5, 5),
	},
	{
		Name:   "ellipse_zero",
		Shape:  minicad.Ellipse{CX: 5, CY: 5, Pen: pen(minicad.Black, 1)},
		Width:  8,
		Height: 8,
		Pixels: pts(5, 5),
	},
	{
		Name:   "ellipse_zero_rx",
		Shape:  minicad.Ellipse{CX: 8, CY: 8, RX: 0, RY: 3, Pen: pen(minicad.Black, 1)},
		Width:  16,
		Height: 16,
		Pixels: quadrants(8, 8,
			image.Point{0, 3}, image.Point{1, 2}, image.Point{1, 1}, image.Point{1, 0}),
	},
	{
		Name:   "ellipse_zero_ry",
		Shape:  minicad.Ellipse{CX: 8, CY: 8, RX: 4, RY: 0, Pen: pen(minicad.Black, 1)},
		Width:  16,
		Height: 16,
		Pixels: quadrants(8, 8, image.Point{0, 0}),
	},
}
