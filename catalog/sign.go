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
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

// Token is a read-access grant for one collection's asset store, handed out
// by the catalog's token service.  The token string is a ready-made query
// string fragment.
type Token struct {
	Token  string `json:"token"`
	Expiry string `json:"msft:expiry"`
}

// Expired reports whether the grant is past its expiry.  An unparseable
// expiry counts as expired; the caller will just request a fresh one.
func (t *Token) Expired() bool {
	expiry, err := time.Parse(time.RFC3339, t.Expiry)
	if err != nil {
		return true
	}
	return time.Now().After(expiry)
}

// TokenFor requests a read-access token for the given collection.  The
// subscription key is optional; anonymous requests get a shorter-lived
// grant.
func TokenFor(sasAddr, collection, subKey string) (*Token, error) {
	var outpObj Token

	req, err := http.NewRequest("GET", sasAddr+"/token/"+collection, nil)
	if err != nil {
		return nil, fmt.Errorf(`http.NewRequest: %s`, err.Error())
	}
	if subKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", subKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(`token request: %s`, err.Error())
	}
	defer resp.Body.Close()

	byts, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(`ioutil.ReadAll: %s`, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(`token request: status %d: %s`, resp.StatusCode, excerpt(byts))
	}
	if err = json.Unmarshal(byts, &outpObj); err != nil {
		return nil, fmt.Errorf(`json.Unmarshal: %s.  input json: %s`, err.Error(), excerpt(byts))
	}
	if outpObj.Token == "" {
		return nil, fmt.Errorf(`token request: empty token in response`)
	}
	return &outpObj, nil
}

// SignURL appends a token's query string to an asset href.  A nil or empty
// token leaves the href untouched, which is correct for public stores.
func SignURL(href string, tok *Token) string {
	if tok == nil || tok.Token == "" {
		return href
	}
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + tok.Token
}
