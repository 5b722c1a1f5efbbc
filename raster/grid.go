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

import "math"

// Grid is a single-band raster: H rows by W columns of float64 samples in
// row-major order.  NaN marks a cell with no valid measurement.
type Grid struct {
	W, H int
	Data []float64
}

// NewGrid returns a zero-filled grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Data: make([]float64, w*h)}
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Data[y*g.W+x]
}

// Set stores a sample at column x, row y.
func (g *Grid) Set(x, y int, v float64) {
	g.Data[y*g.W+x] = v
}

// ValidCount returns the number of cells holding a real measurement.
func (g *Grid) ValidCount() int {
	count := 0
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			count++
		}
	}
	return count
}
