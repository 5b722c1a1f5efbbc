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
	"image/color"
	"testing"
)

func testPairs() []Pair {
	return []Pair{
		{0, 10, color.RGBA{0, 0, 0, 255}},
		{10, 20, color.RGBA{100, 100, 100, 255}},
		{20, 30, color.RGBA{255, 255, 255, 255}},
	}
}

func TestBuildEndpoints(t *testing.T) {
	cm, err := Build(testPairs())
	if err != nil {
		t.Fatalf(`TestBuildEndpoints: unexpected build failure: %v`, err)
	}
	if got := cm.At(0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf(`TestBuildEndpoints: first control point came back as %v.`, got)
	}
	if got := cm.At(1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf(`TestBuildEndpoints: last control point came back as %v.`, got)
	}
	if lo, hi := cm.Bounds(); lo != 0 || hi != 20 {
		t.Errorf(`TestBuildEndpoints: bounds came back as (%v, %v).`, lo, hi)
	}
}

func TestQueryClamps(t *testing.T) {
	cm, err := Build(testPairs())
	if err != nil {
		t.Fatalf(`TestQueryClamps: unexpected build failure: %v`, err)
	}
	first := color.RGBA{0, 0, 0, 255}
	last := color.RGBA{255, 255, 255, 255}
	if got := cm.At(-0.5); got != first {
		t.Errorf(`TestQueryClamps: below-range query came back as %v.`, got)
	}
	if got := cm.At(1.5); got != last {
		t.Errorf(`TestQueryClamps: above-range query came back as %v.`, got)
	}
	if got := cm.AtValue(-100); got != first {
		t.Errorf(`TestQueryClamps: below-range value query came back as %v.`, got)
	}
	if got := cm.AtValue(9999); got != last {
		t.Errorf(`TestQueryClamps: above-range value query came back as %v.`, got)
	}
}

func TestInterpolation(t *testing.T) {
	pairs := []Pair{
		{0, 1, color.RGBA{0, 0, 0, 255}},
		{1, 2, color.RGBA{200, 100, 50, 255}},
	}
	cm, err := Build(pairs)
	if err != nil {
		t.Fatalf(`TestInterpolation: unexpected build failure: %v`, err)
	}
	got := cm.At(0.5)
	// RGB-space blend at the halfway point, within rounding
	for name, pair := range map[string][2]uint8{
		"red": {got.R, 100}, "green": {got.G, 50}, "blue": {got.B, 25},
	} {
		diff := int(pair[0]) - int(pair[1])
		if diff < -1 || diff > 1 {
			t.Errorf(`TestInterpolation: %s channel came back as %d, wanted about %d.`, name, pair[0], pair[1])
		}
	}
	if got.A != 255 {
		t.Errorf(`TestInterpolation: alpha channel came back as %d.`, got.A)
	}
}

func TestBuildRejectsSinglePair(t *testing.T) {
	_, err := Build([]Pair{{0, 1, color.RGBA{0, 0, 0, 255}}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf(`TestBuildRejectsSinglePair: expected ErrInvalidInput, got %v.`, err)
	}
}

func TestBuildRejectsIdenticalBounds(t *testing.T) {
	pairs := []Pair{
		{5, 6, color.RGBA{0, 0, 0, 255}},
		{5, 7, color.RGBA{255, 255, 255, 255}},
	}
	_, err := Build(pairs)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf(`TestBuildRejectsIdenticalBounds: expected ErrInvalidInput, got %v.`, err)
	}
}

func TestTablesBuild(t *testing.T) {
	for name, pairs := range map[string][]Pair{
		"classification": Classification(),
		"returns":        Returns(),
		"height":         Height(),
		"pointsource":    PointSource(),
	} {
		if _, err := Build(pairs); err != nil {
			t.Errorf(`TestTablesBuild: %s table failed to build: %v.`, name, err)
		}
	}
}
