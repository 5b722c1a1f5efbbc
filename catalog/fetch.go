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
	"io/ioutil"
	"net/http"
)

// FetchAsset downloads a (signed) asset href in one GET.  COG files support
// ranged reads, but whole-object fetches keep this client simple and the
// assets involved are tile-sized.
func FetchAsset(href string) ([]byte, error) {
	resp, err := http.Get(href)
	if err != nil {
		return nil, fmt.Errorf(`asset fetch: %s`, err.Error())
	}
	defer resp.Body.Close()

	byts, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(`ioutil.ReadAll: %s`, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(`asset fetch: status %d: %s`, resp.StatusCode, excerpt(byts))
	}
	return byts, nil
}
