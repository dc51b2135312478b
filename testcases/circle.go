package testcases

import (
	"image"

	"seehuhn.de/go/minicad"
)

var circleCases = []TestCase{
	{
		Name:   "radius1",
		Shape:  minicad.Circle{CX: 4, CY: 4, Radius: 1, Pen: pen(minicad.Black, 1)},
		Width:  8,
		Height: 8,
		Pixels: octants(4, 4, image.Point{0, 1}, image.Point{1, 0}),
	},
	{
		Name:   "radius3",
		Shape:  minicad.Circle{CX: 8, CY: 8, Radius: 3, Pen: pen(minicad.Black, 1)},
		Width:  16,
		Height: 16,
		Pixels: octants(8, 8, image.Point{0, 3}, image.Point{1, 3}, image.Point{2, 2}),
	},
	{
		Name:   "radius5",
		Shape:  minicad.Circle{CX: 16, CY: 16, Radius: 5, Pen: pen(minicad.Red, 1)},
		Width:  32,
		Height: 32,
		Pixels: octants(16, 16,
			image.Point{0, 5}, image.Point{1, 5}, image.Point{2, 5},
			image.Point{3, 4}, image.Point{4, 3}),
	},
	{
		Name:   "radius20",
		Shape:  minicad.Circle{CX: 32, CY: 32, Radius: 20, Pen: pen(minicad.Blue, 1)},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "partly_outside",
		Shape:  minicad.Circle{CX: -10, CY: 30, Radius: 25, Pen: pen(minicad.Green, 1)},
		Width:  64,
		Height: 64,
	},
}
