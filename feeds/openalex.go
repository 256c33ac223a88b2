package feeds

import (
	"fmt"
	"net/url"

	"github.com/miku/bibmerge/schema/openalex"
)

const DefaultOpenAlexEndpoint = "https://api.openalex.org/works"

// OpenAlexHarvester fetches works from the openalex API with cursor paging.
type OpenAlexHarvester struct {
	Client      Doer
	ApiEndpoint string
	ApiEmail    string
	UserAgent   string
	PerPage     int
}

type openalexResponse struct {
	Results []openalex.Work `json:"results"`
	Meta    struct {
		Count      int64  `json:"count"`
		NextCursor string `json:"next_cursor"`
	} `json:"meta"`
}

func (h *OpenAlexHarvester) endpoint() string {
	if h.ApiEndpoint == "" {
		return DefaultOpenAlexEndpoint
	}
	return h.ApiEndpoint
}

func (h *OpenAlexHarvester) perPage() int {
	if h.PerPage == 0 {
		return 200
	}
	return h.PerPage
}

// Works fetches all works matching a search query.
func (h *OpenAlexHarvester) Works(search string) ([]openalex.Work, error) {
	var (
		works  []openalex.Work
		cursor = "*"
	)
	for {
		vs := url.Values{}
		vs.Set("search", search)
		vs.Set("per_page", fmt.Sprintf("%d", h.perPage()))
		vs.Set("cursor", cursor)
		if h.ApiEmail != "" {
			vs.Set("mailto", h.ApiEmail)
		}
		var resp openalexResponse
		if err := getJSON(h.Client, h.UserAgent, "", h.endpoint(), vs, &resp); err != nil {
			return nil, fmt.Errorf("openalex works: %w", err)
		}
		works = append(works, resp.Results...)
		if resp.Meta.NextCursor == "" || len(resp.Results) == 0 {
			break
		}
		cursor = resp.Meta.NextCursor
	}
	return works, nil
}
