// Command export writes the test cases and their pixels to JSON, for
// checking the scan conversion with independent tools.
// Run from the minicad module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Kind      string   `json:"kind"`
	Algorithm string   `json:"algorithm,omitempty"`
	Params    []int    `json:"params"`
	Color     string   `json:"color"`
	Thickness int      `json:"thickness"`
	Pixels    [][2]int `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	pen := tc.Shape.Stroke()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Color:     pen.Color.String(),
		Thickness: pen.Thickness,
		Pixels:    pixelsToJSON(minicad.Rasterize(tc.Shape)),
	}

	switch s := tc.Shape.(type) {
	case minicad.Line:
		jtc.Kind = "line"
		jtc.Algorithm = s.Algorithm.String()
		jtc.Params = []int{s.X0, s.Y0, s.X1, s.Y1}
	case minicad.Circle:
		jtc.Kind = "circle"
		jtc.Params = []int{s.CX, s.CY, s.Radius}
	case minicad.Ellipse:
		jtc.Kind = "ellipse"
		jtc.Params = []int{s.CX, s.CY, s.RX, s.RY}
	}
	return jtc
}

func pixelsToJSON(pixels []image.Point) [][2]int {
	res := make([][2]int, len(pixels))
	for i, p := range pixels {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}
