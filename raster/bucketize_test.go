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
	"math"
	"testing"
)

func sameValue(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func TestClampLowHigh(t *testing.T) {
	policy := ClampLowHigh{LowCut: 1, HighCut: 7}
	inputs := []float64{-5, 0, 0.9, 1, 3, 6.9, 7, 50}
	wanted := []float64{0, 0, 0, 1, 3, 6.9, 7, 7}
	for inx, v := range inputs {
		if got := policy.Value(v); !sameValue(got, wanted[inx]) {
			t.Errorf(`TestClampLowHigh: %v came back as %v, wanted %v.`, v, got, wanted[inx])
		}
	}
}

func TestMaskNonPositive(t *testing.T) {
	policy := MaskNonPositive{}
	inputs := []float64{-1, 0, 0.001, 5}
	wanted := []float64{math.NaN(), math.NaN(), 0.001, 5}
	for inx, v := range inputs {
		if got := policy.Value(v); !sameValue(got, wanted[inx]) {
			t.Errorf(`TestMaskNonPositive: %v came back as %v, wanted %v.`, v, got, wanted[inx])
		}
	}
}

func TestIdentity(t *testing.T) {
	policy := Identity{}
	for _, v := range []float64{-1e9, -0.5, 0, 0.001, 7, 1e9} {
		if got := policy.Value(v); got != v {
			t.Errorf(`TestIdentity: %v came back as %v.`, v, got)
		}
	}
}

func TestPoliciesIdempotent(t *testing.T) {
	inputs := []float64{-5, -1, 0, 0.001, 0.9, 1, 3, 6.9, 7, 50, math.NaN()}
	for _, policy := range []Policy{
		ClampLowHigh{LowCut: 1, HighCut: 7},
		MaskNonPositive{},
		Identity{},
	} {
		for _, v := range inputs {
			once := policy.Value(v)
			twice := policy.Value(once)
			if !sameValue(once, twice) {
				t.Errorf(`TestPoliciesIdempotent: %s reapplied to %v gave %v, first pass gave %v.`,
					policy.Name(), v, twice, once)
			}
		}
	}
}

func TestBucketizeGrid(t *testing.T) {
	grid := NewGrid(4, 2)
	copy(grid.Data, []float64{-5, 0, 0.9, 1, 3, 6.9, 7, 50})

	out := Bucketize(grid, ClampLowHigh{LowCut: 1, HighCut: 7})
	wanted := []float64{0, 0, 0, 1, 3, 6.9, 7, 7}

	if out.W != grid.W || out.H != grid.H {
		t.Fatalf(`TestBucketizeGrid: shape changed to %dx%d.`, out.W, out.H)
	}
	for inx, v := range wanted {
		if !sameValue(out.Data[inx], v) {
			t.Errorf(`TestBucketizeGrid: cell %d came back as %v, wanted %v.`, inx, out.Data[inx], v)
		}
	}
	// input must be untouched
	if grid.Data[0] != -5 || grid.Data[7] != 50 {
		t.Error(`TestBucketizeGrid: input grid was mutated.`)
	}
}

func TestValidCount(t *testing.T) {
	grid := NewGrid(4, 1)
	copy(grid.Data, []float64{-1, 0, 0.001, 5})

	if count := grid.ValidCount(); count != 4 {
		t.Errorf(`TestValidCount: counted %d before masking.`, count)
	}
	out := Bucketize(grid, MaskNonPositive{})
	if count := out.ValidCount(); count != 2 {
		t.Errorf(`TestValidCount: counted %d after masking.`, count)
	}
}
