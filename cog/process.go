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
	"encoding/json"
	"fmt"
	"image"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/priyankapiba/cog-handle/catalog"
	"github.com/priyankapiba/cog-handle/colormap"
	"github.com/priyankapiba/cog-handle/raster"
)

type crInpStruct struct {
	CatAddr    string              `json:"catalogAddr"`     // root URL of the catalog API
	SasAddr    string              `json:"sasAddr"`         // root URL of the token service, "" for public stores
	SubKey     string              `json:"subscriptionKey"` // token service key; falls back to CGH_CAT_AUTH
	Collection string              `json:"collection"`      // catalog collection id
	ItemID     string              `json:"itemId"`          // optional: render this item, skip scene selection
	Bbox       geojson.BoundingBox `json:"bbox"`            // [west, south, east, north]
	Dates      string              `json:"datetime"`        // closed interval, "start/end"
	Limit      int                 `json:"limit"`           // search page size
}

// crOutpStruct carries no error field of its own: handleOut splices the
// error message into the envelope ahead of these.
type crOutpStruct struct {
	Collection string `json:"collection"`
	ItemID     string `json:"itemId"`
	AssetHref  string `json:"assetHref"`
}

// Execute serves as main function for this file, and is the primary
// workhorse function of cog-handle as a whole.  It turns one catalog
// collection over one area of interest into a rendered PNG: search the
// catalog, pick the scene that covers the area best, sign and fetch its
// raster asset, bucketize the samples per the collection's display policy,
// and paint the result.
func Execute(w http.ResponseWriter, r *http.Request) {
	var (
		inpObj  crInpStruct
		outpObj crOutpStruct
		img     image.Image
	)

	fmt.Println("cog-handle called.")
	inpBytes, err := ioutil.ReadAll(r.Body)
	if err != nil {
		handleOut(w, "Error: ioutil.ReadAll: "+err.Error(), outpObj, http.StatusBadRequest)
		return
	}

	err = json.Unmarshal(inpBytes, &inpObj)
	if err != nil {
		handleOut(w, "Error: json.Unmarshal: "+err.Error(), outpObj, http.StatusBadRequest)
		return
	}

	if inpObj.SubKey == "" {
		inpObj.SubKey = os.Getenv("CGH_CAT_AUTH")
	}
	if inpObj.Limit == 0 {
		inpObj.Limit = 50
	}

	profile, err := DatasetProfile(inpObj.Collection)
	if err != nil {
		handleOut(w, "Error: "+err.Error(), outpObj, http.StatusBadRequest)
		return
	}
	outpObj.Collection = profile.Collection

	fmt.Println("cog-handle: searching catalog.")
	opts := catalog.SearchOptions{
		Collections: []string{inpObj.Collection},
		Bbox:        inpObj.Bbox,
		Dates:       inpObj.Dates,
		Limit:       inpObj.Limit,
	}
	if inpObj.ItemID != "" {
		opts.IDs = []string{inpObj.ItemID}
	}
	items, err := catalog.Search(inpObj.CatAddr, opts)
	if err != nil {
		handleOut(w, "Error: catalog.Search: "+err.Error(), outpObj, http.StatusBadGateway)
		return
	}
	if len(items.Features) == 0 {
		handleOut(w, "Error: catalog search returned no items.", outpObj, http.StatusNotFound)
		return
	}

	item := items.Features[0]
	if inpObj.ItemID == "" {
		aoi, err := aoiFromBbox(inpObj.Bbox)
		if err != nil {
			handleOut(w, "Error: "+err.Error(), outpObj, http.StatusBadRequest)
			return
		}
		if item, err = BestScene(aoi, items.Features); err != nil {
			handleOut(w, "Error: "+err.Error(), outpObj, http.StatusNotFound)
			return
		}
	}
	outpObj.ItemID = item.ID

	href, err := item.AssetHref(profile.Asset)
	if err != nil {
		handleOut(w, "Error: "+err.Error(), outpObj, http.StatusBadGateway)
		return
	}
	outpObj.AssetHref = href

	if inpObj.SasAddr != "" {
		tok, err := catalog.TokenFor(inpObj.SasAddr, inpObj.Collection, inpObj.SubKey)
		if err != nil {
			handleOut(w, "Error: catalog.TokenFor: "+err.Error(), outpObj, http.StatusBadGateway)
			return
		}
		href = catalog.SignURL(href, tok)
	}

	fmt.Println("cog-handle: fetching asset.")
	byts, err := catalog.FetchAsset(href)
	if err != nil {
		handleOut(w, "Error: catalog.FetchAsset: "+err.Error(), outpObj, http.StatusBadGateway)
		return
	}

	grid, err := raster.DecodeTIFF(byts)
	if err != nil {
		handleOut(w, "Error: raster.DecodeTIFF: "+err.Error(), outpObj, http.StatusBadGateway)
		return
	}
	grid = raster.Bucketize(grid, profile.Policy)

	fmt.Println("cog-handle: rendering.")
	if profile.Ramp != nil {
		cm, err := colormap.Build(profile.Ramp)
		if err != nil {
			handleOut(w, "Error: colormap.Build: "+err.Error(), outpObj, http.StatusInternalServerError)
			return
		}
		img = RenderColormapped(grid, cm)
	} else {
		lo, hi, err := GrayBounds(grid, profile)
		if err != nil {
			handleOut(w, "Error: "+err.Error(), outpObj, http.StatusInternalServerError)
			return
		}
		img = RenderGray(grid, lo, hi)
	}

	pngBytes, err := EncodePNG(img)
	if err != nil {
		handleOut(w, "Error: "+err.Error(), outpObj, http.StatusInternalServerError)
		return
	}

	fmt.Println("cog-handle: outputting.")
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Item-Id", item.ID)
	w.Write(pngBytes)
}

// ListDatasets reports the collections this service knows how to render,
// with their display policies, for clients that build their own requests.
func ListDatasets(w http.ResponseWriter, r *http.Request) {
	type dsEntry struct {
		Collection string `json:"collection"`
		Asset      string `json:"asset"`
		Policy     string `json:"policy"`
		Rendering  string `json:"rendering"`
	}
	var entries []dsEntry
	for _, profile := range Datasets() {
		rendering := "gray-stretch"
		switch {
		case profile.Ramp != nil:
			rendering = "colormap"
		case profile.FixedGray:
			rendering = "gray-fixed"
		}
		entries = append(entries, dsEntry{
			Collection: profile.Collection,
			Asset:      profile.Asset,
			Policy:     profile.Policy.Name(),
			Rendering:  rendering,
		})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		httpOut(w, `{"error":"json.Marshal error: `+jsonEscString(err.Error())+`"}`, http.StatusInternalServerError)
		return
	}
	httpOut(w, string(b), http.StatusOK)
}
