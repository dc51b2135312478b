package testcases

import "seehuhn.de/go/minicad"

var lineCases = []TestCase{
	{
		Name: "vertical",
		Shape: minicad.Line{
			X0: 10, Y0: 10, X1: 10, Y1: 20,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  32,
		Height: 32,
		Pixels: vertical(10, 10, 20),
	},
	{
		Name: "vertical_down_dda",
		Shape: minicad.Line{
			X0: 4, Y0: 28, X1: 4, Y1: 3,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Blue, 1),
		},
		Width:  32,
		Height: 32,
		Pixels: vertical(4, 28, 3),
	},
	{
		Name: "shallow_direct",
		Shape: minicad.Line{
			X0: 2, Y0: 2, X1: 6, Y1: 4,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(2, 2, 3, 3, 4, 3, 5, 4, 6, 4),
	},
	{
		Name: "shallow_dda",
		Shape: minicad.Line{
			X0: 2, Y0: 2, X1: 6, Y1: 4,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(2, 2, 3, 3, 4, 3, 5, 4, 6, 4),
	},
	{
		Name: "steep_direct",
		Shape: minicad.Line{
			X0: 2, Y0: 2, X1: 3, Y1: 5,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Red, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(2, 2, 2, 3, 3, 4, 3, 5),
	},
	{
		Name: "antidiagonal_dda",
		Shape: minicad.Line{
			X0: 1, Y0: 6, X1: 6, Y1: 1,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Green, 1),
		},
		Width:  8,
		Height: 8,
		Pixels: pts(1, 6, 2, 5, 3, 4, 4, 3, 5, 2, 6, 1),
	},
	{
		Name: "long_direct",
		Shape: minicad.Line{
			X0: 3, Y0: 5, X1: 60, Y1: 40,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "long_dda",
		Shape: minicad.Line{
			X0: 3, Y0: 5, X1: 60, Y1: 40,
			Algorithm: minicad.DDA,
			Pen:       pen(minicad.Black, 1),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "clipped",
		Shape: minicad.Line{
			X0: -20, Y0: 10, X1: 80, Y1: 50,
			Algorithm: minicad.Direct,
			Pen:       pen(minicad.Red, 1),
		},
		Width:  64,
		Height: 64,
	},
}
