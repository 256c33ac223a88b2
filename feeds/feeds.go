// Package feeds retrieves raw bibliographic data from upstream APIs. Each
// harvester takes an injected HTTP client, so retry and timeout policy stays
// with the caller.
package feeds

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/miku/bibmerge"
	"github.com/segmentio/encoding/json"
)

// Doer abstracts https://pkg.go.dev/net/http#Client.Do.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// getJSON fetches a URL with query parameters and decodes the JSON response
// into v.
func getJSON(client Doer, userAgent, accept, rawURL string, params url.Values, v interface{}) error {
	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	if userAgent == "" {
		userAgent = bibmerge.UserAgent
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", req.URL, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
