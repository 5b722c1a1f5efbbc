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
	"log"
	"sort"
	"time"

	"github.com/paulsmith/gogeos/geos"
	"github.com/venicegeo/geojson-geos-go/geojsongeos"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/priyankapiba/cog-handle/catalog"
)

type scoredItem struct {
	item  *catalog.Item
	score float64
}

// ByScore allows for sorting of candidate items by their scores
type ByScore []scoredItem

func (a ByScore) Len() int {
	return len(a)
}
func (a ByScore) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}
func (a ByScore) Less(i, j int) bool {
	return a[i].score < a[j].score
}

// aoiFromBbox builds the area-of-interest geometry from a [w, s, e, n]
// bounding box.
func aoiFromBbox(bbox geojson.BoundingBox) (*geos.Geometry, error) {
	if len(bbox) < 4 {
		return nil, fmt.Errorf("cog-handle error: bbox needs 4 values, got %d", len(bbox))
	}
	ring := [][][]float64{{
		{bbox[0], bbox[1]},
		{bbox[2], bbox[1]},
		{bbox[2], bbox[3]},
		{bbox[0], bbox[3]},
		{bbox[0], bbox[1]},
	}}
	return geojsongeos.GeosFromGeoJSON(geojson.NewPolygon(ring))
}

// BestScene picks the search result that covers the area of interest best.
// Each candidate scores by the share of the AOI its footprint intersects,
// less a small recency penalty so that ties go to newer acquisitions.
// Candidates with no coverage at all are skipped.
func BestScene(aoi *geos.Geometry, items []*catalog.Item) (*catalog.Item, error) {
	var (
		err        error
		aoiArea    float64
		footprint  *geos.Geometry
		intersect  *geos.Geometry
		candidates []scoredItem
	)

	if aoiArea, err = aoi.Area(); err != nil {
		return nil, fmt.Errorf(`aoi.Area: %s`, err.Error())
	}
	if aoiArea == 0.0 {
		return nil, fmt.Errorf("cog-handle error: area of interest is empty")
	}

	for _, item := range items {
		if footprint, err = itemFootprint(item); err != nil {
			log.Printf("Skipping item %v: %v", item.ID, err.Error())
			continue
		}
		if intersect, err = footprint.Intersection(aoi); err != nil {
			log.Printf("Skipping item %v: %v", item.ID, err.Error())
			continue
		}
		area, err := intersect.Area()
		if err != nil {
			log.Printf("Failed to compute intersection area for %v: %v", item.ID, err.Error())
			continue
		}
		if area == 0.0 {
			continue
		}
		candidates = append(candidates, scoredItem{item: item, score: sceneScore(item, area/aoiArea)})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("cog-handle error: no candidate item covers the area of interest")
	}
	sort.Sort(ByScore(candidates))
	return candidates[len(candidates)-1].item, nil
}

// itemFootprint converts an item's geometry to GEOS, falling back to its
// bounding box when the geometry is missing.
func itemFootprint(item *catalog.Item) (*geos.Geometry, error) {
	switch geometry := item.Geometry.(type) {
	case map[string]interface{}:
		return geojsongeos.GeosFromGeoJSON(geojson.FromMap(geometry))
	case nil:
		return aoiFromBbox(item.BBox)
	default:
		return geojsongeos.GeosFromGeoJSON(geometry)
	}
}

func sceneScore(item *catalog.Item, coverage float64) float64 {
	result := coverage
	acquired, err := time.Parse(time.RFC3339, item.Properties.Datetime)
	if err != nil {
		log.Printf("Received invalid date of %v: ", item.Properties.Datetime)
		return result
	}
	// Collections republish on roughly a decade cadence, so a ten-year-old
	// product costs about a tenth of full coverage.
	ageYears := time.Since(acquired).Hours() / (24.0 * 365.0)
	result -= ageYears / 100.0
	return result
}
