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

import "image/color"

// Classification returns the interval table for ASPRS point-class rasters.
// Classes absent from the table fall between their neighbors and blend,
// which is acceptable for display.
func Classification() []Pair {
	return []Pair{
		{0, 1, color.RGBA{211, 211, 211, 255}},  // created, never classified
		{1, 2, color.RGBA{147, 149, 152, 255}},  // unassigned
		{2, 3, color.RGBA{161, 103, 40, 255}},   // ground
		{3, 4, color.RGBA{135, 211, 124, 255}},  // low vegetation
		{4, 5, color.RGBA{75, 171, 71, 255}},    // medium vegetation
		{5, 6, color.RGBA{21, 108, 25, 255}},    // high vegetation
		{6, 7, color.RGBA{221, 73, 54, 255}},    // building
		{7, 9, color.RGBA{236, 77, 214, 255}},   // low noise
		{9, 10, color.RGBA{44, 114, 211, 255}},  // water
		{10, 11, color.RGBA{85, 85, 85, 255}},   // rail
		{11, 12, color.RGBA{35, 35, 35, 255}},   // road surface
		{17, 18, color.RGBA{247, 226, 24, 255}}, // bridge deck
	}
}

// Returns is a ramp for return-count rasters clamped into [0, 7].
func Returns() []Pair {
	return []Pair{
		{0, 1, color.RGBA{68, 1, 84, 255}},
		{1, 2, color.RGBA{70, 50, 126, 255}},
		{2, 3, color.RGBA{54, 92, 141, 255}},
		{3, 4, color.RGBA{39, 127, 142, 255}},
		{4, 5, color.RGBA{31, 161, 135, 255}},
		{5, 6, color.RGBA{74, 193, 109, 255}},
		{6, 7, color.RGBA{159, 218, 58, 255}},
		{7, 8, color.RGBA{253, 231, 37, 255}},
	}
}

// Height is a ramp for height-above-ground rasters, in meters.
func Height() []Pair {
	return []Pair{
		{0, 2, color.RGBA{247, 252, 245, 255}},
		{2, 5, color.RGBA{199, 233, 192, 255}},
		{5, 10, color.RGBA{116, 196, 118, 255}},
		{10, 20, color.RGBA{35, 139, 69, 255}},
		{20, 30, color.RGBA{0, 90, 50, 255}},
		{30, 50, color.RGBA{255, 204, 0, 255}},
		{50, 80, color.RGBA{204, 51, 0, 255}},
	}
}

// PointSource is a ramp for flight-line source-id rasters.  Source ids are
// arbitrary small integers, so the ramp just cycles distinct hues across a
// generous range.
func PointSource() []Pair {
	return []Pair{
		{0, 128, color.RGBA{31, 119, 180, 255}},
		{128, 256, color.RGBA{255, 127, 14, 255}},
		{256, 384, color.RGBA{44, 160, 44, 255}},
		{384, 512, color.RGBA{214, 39, 40, 255}},
		{512, 640, color.RGBA{148, 103, 189, 255}},
		{640, 768, color.RGBA{140, 86, 75, 255}},
		{768, 896, color.RGBA{227, 119, 194, 255}},
		{896, 1024, color.RGBA{23, 190, 207, 255}},
	}
}
