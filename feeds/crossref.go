package feeds

import (
	"fmt"
	"net/url"

	"github.com/miku/bibmerge/schema/crossref"
	log "github.com/sirupsen/logrus"
)

const DefaultCrossrefEndpoint = "https://api.crossref.org/works"

// CrossrefHarvester fetches works from the crossref REST API with cursor
// based deep paging.
type CrossrefHarvester struct {
	Client      Doer
	ApiEndpoint string
	ApiEmail    string
	UserAgent   string
	Rows        int
}

// worksResponse is the API envelope, stripped to what we use.
type worksResponse struct {
	Message struct {
		Items        []crossref.Work `json:"items"`
		NextCursor   string          `json:"next-cursor"`
		TotalResults int64           `json:"total-results"`
	} `json:"message"`
	Status string `json:"status"`
}

// IsLast returns true, if there are no more records to fetch.
func (wr *worksResponse) IsLast() bool {
	return wr.Message.NextCursor == ""
}

func (h *CrossrefHarvester) endpoint() string {
	if h.ApiEndpoint == "" {
		return DefaultCrossrefEndpoint
	}
	return h.ApiEndpoint
}

func (h *CrossrefHarvester) rows() int {
	if h.Rows == 0 {
		return 1000
	}
	return h.Rows
}

// addOptionalEmail appends a mailto parameter, as suggested by the crossref
// API etiquette.
func (h *CrossrefHarvester) addOptionalEmail(vs url.Values) {
	if h.ApiEmail != "" {
		vs.Add("mailto", h.ApiEmail)
	}
}

// Works fetches all works matching an author query.
func (h *CrossrefHarvester) Works(queryAuthor string) ([]crossref.Work, error) {
	var (
		works  []crossref.Work
		cursor = "*"
	)
	for {
		vs := url.Values{}
		vs.Set("query.author", queryAuthor)
		vs.Set("rows", fmt.Sprintf("%d", h.rows()))
		vs.Set("select", "DOI,title,subtitle,issued,author,container-title,type,URL")
		vs.Set("cursor", cursor)
		h.addOptionalEmail(vs)
		var wr worksResponse
		if err := getJSON(h.Client, h.UserAgent, "", h.endpoint(), vs, &wr); err != nil {
			return nil, fmt.Errorf("crossref works: %w", err)
		}
		works = append(works, wr.Message.Items...)
		log.WithFields(log.Fields{
			"source": "crossref",
			"status": wr.Status,
			"total":  wr.Message.TotalResults,
			"seen":   len(works),
		}).Debug("page done")
		if wr.IsLast() || len(wr.Message.Items) == 0 {
			break
		}
		cursor = wr.Message.NextCursor
	}
	return works, nil
}
