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

// Policy turns a raw sample into a display-ready one.  Every policy is
// element-wise and idempotent: applying it twice gives the same result as
// applying it once.
type Policy interface {
	// Value transforms a single sample.
	Value(v float64) float64
	// Name identifies the policy for logging and dataset listings.
	Name() string
}

// ClampLowHigh replaces samples below LowCut with 0 and samples at or above
// HighCut with HighCut.  Samples in [LowCut, HighCut) pass unchanged.  Used
// for return-count rasters, which collapse everything >= 7 into one bucket.
type ClampLowHigh struct {
	LowCut, HighCut float64
}

// Value implements Policy.
func (p ClampLowHigh) Value(v float64) float64 {
	if v < p.LowCut {
		return 0
	}
	if v >= p.HighCut {
		return p.HighCut
	}
	return v
}

// Name implements Policy.
func (p ClampLowHigh) Name() string { return "clamp-low-high" }

// MaskNonPositive replaces non-positive samples with the NaN no-data
// sentinel.  Used for elevation, classification and source-id rasters,
// where zero and below mean "no measurement".
type MaskNonPositive struct{}

// Value implements Policy.  NaN input stays NaN, since NaN compares false
// against zero.
func (MaskNonPositive) Value(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return v
}

// Name implements Policy.
func (MaskNonPositive) Name() string { return "mask-non-positive" }

// Identity passes samples through unchanged.  Display relies entirely on
// the colormap or a fixed-scale gray palette.
type Identity struct{}

// Value implements Policy.
func (Identity) Value(v float64) float64 { return v }

// Name implements Policy.
func (Identity) Name() string { return "identity" }

// Bucketize applies a policy to every cell of a grid and returns the result
// as a new grid of the same shape.  The input grid is not mutated.
func Bucketize(g *Grid, p Policy) *Grid {
	out := NewGrid(g.W, g.H)
	for inx, v := range g.Data {
		out.Data[inx] = p.Value(v)
	}
	return out
}
