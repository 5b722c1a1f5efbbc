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

package catalog

import (
	"fmt"

	"github.com/venicegeo/geojson-go/geojson"
)

// ItemProp represents the properties of the catalog item objects.  It's
// exported to make sure that it plays well with json unmarshaling.
type ItemProp struct {
	Datetime string  `json:"datetime"`
	GSD      float64 `json:"gsd"`
	Epsg     int     `json:"proj:epsg"`
}

// Asset is one downloadable file attached to a catalog item.
type Asset struct {
	Href  string   `json:"href"`
	Type  string   `json:"type"`
	Title string   `json:"title"`
	Roles []string `json:"roles"`
}

// Item is the format for the item objects from the catalog.  If we could we'd
// just use the geojson.Feature type, but items carry an asset map alongside
// their feature parts, and we need to guide the json unmarshaling process a
// bit too directly for that.  Having the parts we care about fully and
// explicitly defined also makes it easier to dig down for specific bits of
// information, when that's called for.  Exported to make sure it plays well
// with json unmarshaling.
type Item struct {
	Type       string              `json:"type"`
	Geometry   interface{}         `json:"geometry"`
	Properties ItemProp            `json:"properties"`
	Assets     map[string]Asset    `json:"assets"`
	Collection string              `json:"collection"`
	ID         string              `json:"id"`
	BBox       geojson.BoundingBox `json:"bbox"`
}

// ItemCollection is the FeatureCollection-shaped search response.
type ItemCollection struct {
	Type     string  `json:"type"`
	Features []*Item `json:"features"`
}

// AssetHref digs the download URL for a named asset out of an item.
func (it *Item) AssetHref(name string) (string, error) {
	asset, ok := it.Assets[name]
	if !ok || asset.Href == "" {
		return "", fmt.Errorf(`catalog: item %s has no "%s" asset`, it.ID, name)
	}
	return asset.Href, nil
}
