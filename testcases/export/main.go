// seehuhn.de/go/stipple - turn grayscale images into animated dot drawings
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

// Export renders every test scene with the default settings and writes
// the scene, the drawing and the dot set to testdata/scenes/.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stipple"
	"seehuhn.de/go/stipple/output"
	"seehuhn.de/go/stipple/testcases"
)

func main() {
	outDir := flag.String("d", filepath.Join("testdata", "scenes"), "output directory")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	stipple.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := stipple.DefaultConfig()
	cfg.RandomSeed = *seed
	e, err := stipple.NewEngine(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(e, filepath.Join(*outDir, name), tc); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func export(e *stipple.Engine, base string, tc testcases.TestCase) error {
	img := tc.Image()
	if err := writeFile(base+"_scene.png", func(f *os.File) error {
		return png.Encode(f, img)
	}); err != nil {
		return err
	}

	var roi *stipple.Rect
	if tc.HasROI() {
		roi = &stipple.Rect{
			X:      tc.ROI.Min.X,
			Y:      tc.ROI.Min.Y,
			Width:  tc.ROI.Dx(),
			Height: tc.ROI.Dy(),
		}
	}
	ds, err := e.Generate(stipple.GrayFromImage(img), roi)
	if err != nil {
		return err
	}

	opt := stipple.DefaultCanvasOptions()
	if err := writeFile(base+"_dots.png", func(f *os.File) error {
		return output.WritePNG(f, ds, opt)
	}); err != nil {
		return err
	}
	return writeFile(base+".json", func(f *os.File) error {
		return output.WriteJSON(f, ds)
	})
}

func writeFile(name string, write func(*os.File) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
