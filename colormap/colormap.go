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

package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidInput is returned by Build for degenerate input: fewer than
// two interval-color pairs, or all lower bounds identical.
var ErrInvalidInput = errors.New("colormap: invalid input")

// Pair associates a half-open value range [Low, High) with a display color.
// Pairs are caller-supplied in ascending, non-overlapping order.  Only the
// lower bounds drive interpolation; High is descriptive.
type Pair struct {
	Low   float64
	High  float64
	Color color.RGBA
}

// Colormap is a piecewise-linear RGBA interpolation built from interval-color
// pairs.  Control point positions are the pairs' lower bounds rescaled into
// [0, 1]; queries outside that range clamp to the endpoint colors.
type Colormap struct {
	positions []float64
	colors    []colorful.Color
	alphas    []float64
	min, max  float64
}

// Build constructs a Colormap from at least two interval-color pairs.
func Build(pairs []Pair) (*Colormap, error) {
	if len(pairs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 interval-color pairs, got %d", ErrInvalidInput, len(pairs))
	}
	min, max := pairs[0].Low, pairs[0].Low
	for _, p := range pairs[1:] {
		if p.Low < min {
			min = p.Low
		}
		if p.Low > max {
			max = p.Low
		}
	}
	if max == min {
		return nil, fmt.Errorf("%w: all lower bounds equal %v", ErrInvalidInput, min)
	}

	cm := &Colormap{min: min, max: max}
	for _, p := range pairs {
		cm.positions = append(cm.positions, (p.Low-min)/(max-min))
		cm.colors = append(cm.colors, colorful.Color{
			R: float64(p.Color.R) / 255.0,
			G: float64(p.Color.G) / 255.0,
			B: float64(p.Color.B) / 255.0,
		})
		cm.alphas = append(cm.alphas, float64(p.Color.A)/255.0)
	}
	return cm, nil
}

// At returns the interpolated color at normalized position t.  Positions
// below the first control point or above the last clamp to those colors.
// NaN queries render transparent.
func (cm *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		return color.RGBA{}
	}
	last := len(cm.positions) - 1
	if t <= cm.positions[0] {
		return toRGBA(cm.colors[0], cm.alphas[0])
	}
	if t >= cm.positions[last] {
		return toRGBA(cm.colors[last], cm.alphas[last])
	}
	for inx := 0; inx < last; inx++ {
		lo, hi := cm.positions[inx], cm.positions[inx+1]
		if t >= hi {
			continue
		}
		if hi == lo {
			return toRGBA(cm.colors[inx+1], cm.alphas[inx+1])
		}
		frac := (t - lo) / (hi - lo)
		blend := cm.colors[inx].BlendRgb(cm.colors[inx+1], frac)
		alpha := cm.alphas[inx] + frac*(cm.alphas[inx+1]-cm.alphas[inx])
		return toRGBA(blend, alpha)
	}
	return toRGBA(cm.colors[last], cm.alphas[last])
}

// AtValue applies the same min/max normalization used at build time and
// returns the interpolated color for a raw sample value.
func (cm *Colormap) AtValue(v float64) color.RGBA {
	return cm.At((v - cm.min) / (cm.max - cm.min))
}

// Bounds returns the raw value range covered by the control points.
func (cm *Colormap) Bounds() (min, max float64) {
	return cm.min, cm.max
}

func toRGBA(c colorful.Color, alpha float64) color.RGBA {
	clamped := c.Clamped()
	return color.RGBA{
		R: uint8(clamped.R*255.0 + 0.5),
		G: uint8(clamped.G*255.0 + 0.5),
		B: uint8(clamped.B*255.0 + 0.5),
		A: uint8(alpha*255.0 + 0.5),
	}
}
