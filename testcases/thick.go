package testcases

import "seehuhn.de/go/minicad"

var thickCases = []TestCase{
	{
		Name: "line_3px",
		Shape: minicad.Line{
			X0: 8, Y0: 8, X1: 56, Y1: 30,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Red, 3),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "line_2px_dda",
		Shape: minicad.Line{
			X0: 8, Y0: 56, X1: 20, Y1: 4,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Black, 2),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_5px",
		Shape:  minicad.Circle{CX: 32, CY: 32, Radius: 18, Pen: pen(minicad.Blue, 5)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_3px",
		Shape:  minicad.Ellipse{CX: 32, CY: 32, RX: 24, RY: 12, Pen: pen(minicad.Green, 3)},
		Width:  64,
		Height: 64,
	},
}
