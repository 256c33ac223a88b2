package feeds

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/miku/bibmerge/schema/s2"
)

const DefaultS2Endpoint = "https://api.semanticscholar.org/graph/v1"

// S2Harvester fetches papers from the Semantic Scholar graph API: author
// search by name, then offset paged papers per author.
type S2Harvester struct {
	Client      Doer
	ApiEndpoint string
	UserAgent   string
	PageSize    int
	MaxAuthors  int
}

var s2PaperFields = strings.Join([]string{
	"paperId", "title", "year", "venue", "publicationTypes",
	"externalIds", "url", "authors",
}, ",")

func (h *S2Harvester) endpoint() string {
	if h.ApiEndpoint == "" {
		return DefaultS2Endpoint
	}
	return strings.TrimRight(h.ApiEndpoint, "/")
}

func (h *S2Harvester) pageSize() int {
	if h.PageSize == 0 {
		return 200
	}
	return h.PageSize
}

func (h *S2Harvester) maxAuthors() int {
	if h.MaxAuthors == 0 {
		return 5
	}
	return h.MaxAuthors
}

// AuthorIDs searches author ids by name.
func (h *S2Harvester) AuthorIDs(name string) ([]string, error) {
	vs := url.Values{}
	vs.Set("query", name)
	vs.Set("limit", fmt.Sprintf("%d", h.maxAuthors()))
	vs.Set("fields", "name,aliases")
	var result s2.AuthorSearchResult
	err := getJSON(h.Client, h.UserAgent, "", h.endpoint()+"/author/search", vs, &result)
	if err != nil {
		return nil, fmt.Errorf("s2 author search: %w", err)
	}
	var ids []string
	for _, a := range result.Data {
		if a.AuthorID != "" {
			ids = append(ids, a.AuthorID)
		}
	}
	return ids, nil
}

// AuthorPapers fetches all papers of one author.
func (h *S2Harvester) AuthorPapers(authorID string) ([]s2.Paper, error) {
	var (
		papers []s2.Paper
		offset int64
	)
	for {
		vs := url.Values{}
		vs.Set("fields", s2PaperFields)
		vs.Set("limit", fmt.Sprintf("%d", h.pageSize()))
		vs.Set("offset", fmt.Sprintf("%d", offset))
		var resp s2.PapersResponse
		err := getJSON(h.Client, h.UserAgent, "",
			h.endpoint()+"/author/"+authorID+"/papers", vs, &resp)
		if err != nil {
			return nil, fmt.Errorf("s2 author papers: %w", err)
		}
		papers = append(papers, resp.Data...)
		if resp.Next == 0 || len(resp.Data) == 0 {
			break
		}
		offset = resp.Next
	}
	return papers, nil
}

// Harvest collects papers across all matching authors, deduplicated by paper
// id. The merge engine dedups again by real identifiers downstream.
func (h *S2Harvester) Harvest(name string) ([]s2.Paper, error) {
	ids, err := h.AuthorIDs(name)
	if err != nil {
		return nil, err
	}
	var (
		papers []s2.Paper
		seen   = make(map[string]struct{})
	)
	for _, id := range ids {
		batch, err := h.AuthorPapers(id)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			if _, ok := seen[p.PaperID]; ok {
				continue
			}
			seen[p.PaperID] = struct{}{}
			papers = append(papers, p)
		}
	}
	return papers, nil
}
