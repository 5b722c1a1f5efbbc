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

package raster

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/tiff"
)

// DecodeTIFF reads a GeoTIFF body into a single-band grid.  Georeferencing
// tags are ignored; only the pixel samples matter here.
func DecodeTIFF(byts []byte) (*Grid, error) {
	img, err := tiff.Decode(bytes.NewReader(byts))
	if err != nil {
		return nil, fmt.Errorf(`tiff.Decode: %s`, err.Error())
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a grid.  Gray images keep their
// sample values; anything else collapses to luminance.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())

	switch im := img.(type) {
	case *image.Gray:
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				grid.Set(x, y, float64(im.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
	case *image.Gray16:
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				grid.Set(x, y, float64(im.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
	default:
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
				grid.Set(x, y, lum)
			}
		}
	}
	return grid
}
