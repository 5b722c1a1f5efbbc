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
	"fmt"
	"sort"

	"github.com/priyankapiba/cog-handle/colormap"
	"github.com/priyankapiba/cog-handle/raster"
)

// Profile describes how one catalog collection's rasters get prepared for
// display: which asset to pull, how to bucketize the samples, and what
// palette to paint them with.  A nil Ramp means grayscale rendering.
type Profile struct {
	Collection string
	Asset      string
	Policy     raster.Policy
	Ramp       []colormap.Pair
	FixedGray  bool // gray on a fixed 0-255 scale instead of a percentile stretch
}

// The eight lidar-derivative products we know how to render.  The policy
// choices follow the products' no-data conventions: return counts collapse
// into [0,7], elevation/class/source-id rasters treat non-positive samples
// as no-data, and intensity/height pass through untouched.
var profiles = map[string]Profile{
	"3dep-lidar-hag": {
		Collection: "3dep-lidar-hag",
		Asset:      "data",
		Policy:     raster.Identity{},
		Ramp:       colormap.Height(),
	},
	"3dep-lidar-dsm": {
		Collection: "3dep-lidar-dsm",
		Asset:      "data",
		Policy:     raster.MaskNonPositive{},
	},
	"3dep-lidar-dtm": {
		Collection: "3dep-lidar-dtm",
		Asset:      "data",
		Policy:     raster.MaskNonPositive{},
	},
	"3dep-lidar-dtm-native": {
		Collection: "3dep-lidar-dtm-native",
		Asset:      "data",
		Policy:     raster.MaskNonPositive{},
	},
	"3dep-lidar-intensity": {
		Collection: "3dep-lidar-intensity",
		Asset:      "data",
		Policy:     raster.Identity{},
		FixedGray:  true,
	},
	"3dep-lidar-pointsourceid": {
		Collection: "3dep-lidar-pointsourceid",
		Asset:      "data",
		Policy:     raster.MaskNonPositive{},
		Ramp:       colormap.PointSource(),
	},
	"3dep-lidar-returns": {
		Collection: "3dep-lidar-returns",
		Asset:      "data",
		Policy:     raster.ClampLowHigh{LowCut: 1, HighCut: 7},
		Ramp:       colormap.Returns(),
	},
	"3dep-lidar-classification": {
		Collection: "3dep-lidar-classification",
		Asset:      "data",
		Policy:     raster.MaskNonPositive{},
		Ramp:       colormap.Classification(),
	},
}

// DatasetProfile looks up the display profile for a collection.
func DatasetProfile(collection string) (Profile, error) {
	profile, ok := profiles[collection]
	if !ok {
		return Profile{}, fmt.Errorf(`cog-handle error: collection "%s" not defined`, collection)
	}
	return profile, nil
}

// Datasets returns every known profile, ordered by collection id.
func Datasets() []Profile {
	result := make([]Profile, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, profile)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Collection < result[j].Collection
	})
	return result
}
