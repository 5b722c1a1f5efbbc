// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cog

import (
	"image/color"
	"math"
	"testing"

	"github.com/priyankapiba/cog-handle/colormap"
	"github.com/priyankapiba/cog-handle/raster"
)

func TestRenderColormappedNoData(t *testing.T) {
	grid := raster.NewGrid(2, 1)
	grid.Set(0, 0, math.NaN())
	grid.Set(1, 0, 7)

	cm, err := colormap.Build(colormap.Returns())
	if err != nil {
		t.Fatalf(`TestRenderColormappedNoData: %v`, err)
	}
	img := RenderColormapped(grid, cm)

	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf(`TestRenderColormappedNoData: no-data cell rendered as %v.`, got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{253, 231, 37, 255}) {
		t.Errorf(`TestRenderColormappedNoData: max-return cell rendered as %v.`, got)
	}
}

func TestRenderGrayClamps(t *testing.T) {
	grid := raster.NewGrid(4, 1)
	copy(grid.Data, []float64{-10, 0, 100, 500})

	img := RenderGray(grid, 0, 100)
	wanted := []uint8{0, 0, 255, 255}
	for inx, want := range wanted {
		if got := img.Pix[inx]; got != want {
			t.Errorf(`TestRenderGrayClamps: cell %d rendered as %d, wanted %d.`, inx, got, want)
		}
	}
}

func TestGrayBounds(t *testing.T) {
	grid := raster.NewGrid(4, 1)
	copy(grid.Data, []float64{10, 20, 30, 40})

	fixed, _ := DatasetProfile("3dep-lidar-intensity")
	lo, hi, err := GrayBounds(grid, fixed)
	if err != nil || lo != 0 || hi != 255 {
		t.Errorf(`TestGrayBounds: fixed bounds came back as %v/%v (%v).`, lo, hi, err)
	}

	stretched, _ := DatasetProfile("3dep-lidar-dsm")
	lo, hi, err = GrayBounds(grid, stretched)
	if err != nil {
		t.Fatalf(`TestGrayBounds: %v`, err)
	}
	if lo < 10 || hi > 40 || lo >= hi {
		t.Errorf(`TestGrayBounds: stretch bounds came back as %v/%v.`, lo, hi)
	}
}

func TestDatasetProfiles(t *testing.T) {
	if len(Datasets()) != 8 {
		t.Errorf(`TestDatasetProfiles: expected 8 profiles, got %d.`, len(Datasets()))
	}
	returns, err := DatasetProfile("3dep-lidar-returns")
	if err != nil {
		t.Fatalf(`TestDatasetProfiles: %v`, err)
	}
	clamp, ok := returns.Policy.(raster.ClampLowHigh)
	if !ok || clamp.LowCut != 1 || clamp.HighCut != 7 {
		t.Errorf(`TestDatasetProfiles: returns policy came back as %#v.`, returns.Policy)
	}
	if _, err = DatasetProfile("3dep-lidar-nonesuch"); err == nil {
		t.Error(`TestDatasetProfiles: passed on what should have been an unknown collection.`)
	}
}
