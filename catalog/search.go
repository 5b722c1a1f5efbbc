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
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/venicegeo/geojson-go/geojson"
)

// SearchOptions narrows a catalog item search.  Bbox is [west, south, east,
// north] in lon/lat.  Dates is a closed interval in the catalog's
// "start/end" form.  IDs, when set, short-circuits the spatial search to
// the named items.
type SearchOptions struct {
	Collections []string
	Bbox        geojson.BoundingBox
	Dates       string
	IDs         []string
	Limit       int
}

type searchBody struct {
	Collections []string  `json:"collections,omitempty"`
	Bbox        []float64 `json:"bbox,omitempty"`
	Datetime    string    `json:"datetime,omitempty"`
	IDs         []string  `json:"ids,omitempty"`
	Limit       int       `json:"limit,omitempty"`
}

// Search runs one spatial/temporal query against the catalog's search
// endpoint and returns the matching items.  There is no retry; any failure
// belongs to the caller.
func Search(catAddr string, opts SearchOptions) (*ItemCollection, error) {
	body := searchBody{
		Collections: opts.Collections,
		Bbox:        opts.Bbox,
		Datetime:    opts.Dates,
		IDs:         opts.IDs,
		Limit:       opts.Limit,
	}

	byts, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf(`json.Marshal: %s`, err.Error())
	}

	resp, err := http.Post(catAddr+"/search", "application/json", bytes.NewReader(byts))
	if err != nil {
		return nil, fmt.Errorf(`catalog search: %s`, err.Error())
	}
	defer resp.Body.Close()

	respByts, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(`ioutil.ReadAll: %s`, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(`catalog search: status %d: %s`, resp.StatusCode, excerpt(respByts))
	}

	var items ItemCollection
	if err = json.Unmarshal(respByts, &items); err != nil {
		return nil, fmt.Errorf(`json.Unmarshal: %s.  input json: %s`, err.Error(), excerpt(respByts))
	}
	return &items, nil
}

// excerpt keeps error messages readable when the catalog hands back a
// sizable body.
func excerpt(byts []byte) string {
	if len(byts) > 200 {
		return string(byts[:200]) + "..."
	}
	return string(byts)
}
