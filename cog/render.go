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
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/priyankapiba/cog-handle/colormap"
	"github.com/priyankapiba/cog-handle/raster"
)

// RenderColormapped paints a grid through a colormap.  No-data cells stay
// fully transparent.
func RenderColormapped(g *raster.Grid, cm *colormap.Colormap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if math.IsNaN(v) {
				continue
			}
			img.SetRGBA(x, y, cm.AtValue(v))
		}
	}
	return img
}

// RenderGray paints a grid on a fixed linear gray scale from lo to hi,
// clamping at both ends.  No-data cells render black.
func RenderGray(g *raster.Grid, lo, hi float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	width := hi - lo
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.At(x, y)
			if math.IsNaN(v) || width <= 0 {
				continue
			}
			t := (v - lo) / width
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			img.Pix[img.PixOffset(x, y)] = uint8(t*255.0 + 0.5)
		}
	}
	return img
}

// GrayBounds picks the gray-scale endpoints for a profile: intensity-style
// products use the fixed 0-255 scale, everything else stretches between the
// 2nd and 98th percentile of the valid samples.
func GrayBounds(g *raster.Grid, profile Profile) (float64, float64, error) {
	if profile.FixedGray {
		return 0, 255, nil
	}
	summary, err := raster.Summarize(g)
	if err != nil {
		return 0, 0, fmt.Errorf(`raster.Summarize: %s`, err.Error())
	}
	return summary.P2, summary.P98, nil
}

// EncodePNG serializes a rendered image.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf(`png.Encode: %s`, err.Error())
	}
	return buf.Bytes(), nil
}
