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
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Summary holds order statistics over the valid (non-NaN) samples of a grid.
// The P2/P98 pair is what the gray renderer uses as its stretch bounds.
type Summary struct {
	Min, Max, Mean float64
	P2, P98        float64
	Valid          int
}

// Summarize computes a Summary.  A grid with no valid samples is an error;
// there is nothing meaningful to display from it.
func Summarize(g *Grid) (Summary, error) {
	var (
		result Summary
		err    error
	)
	result.Valid = g.ValidCount()
	if result.Valid == 0 {
		return result, fmt.Errorf("raster: no valid samples to summarize")
	}
	data := make(stats.Float64Data, 0, result.Valid)
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	if result.Min, err = data.Min(); err != nil {
		return result, err
	}
	if result.Max, err = data.Max(); err != nil {
		return result, err
	}
	if result.Mean, err = data.Mean(); err != nil {
		return result, err
	}
	result.P2 = percentileOr(data, 2, result.Min)
	result.P98 = percentileOr(data, 98, result.Max)
	return result, nil
}

// percentileOr falls back to the given extreme when the percentile is not
// computable.  Percentile refuses ranks that land below the first sample,
// which happens for low percents on tiles with few valid cells.
func percentileOr(data stats.Float64Data, percent, fallback float64) float64 {
	p, err := data.Percentile(percent)
	if err != nil {
		return fallback
	}
	return p
}
