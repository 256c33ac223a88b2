// Package s2 contains trimmed Semantic Scholar graph API documents, cf.
// https://api.semanticscholar.org/api-docs/graph
package s2

// Paper is the subset of a paper document we request via the fields
// parameter.
type Paper struct {
	PaperID          string   `json:"paperId"`
	Title            string   `json:"title"`
	Year             int64    `json:"year"`
	Venue            string   `json:"venue"`
	URL              string   `json:"url"`
	PublicationTypes []string `json:"publicationTypes"`
	ExternalIds      struct {
		DOI    string `json:"DOI"`
		PubMed string `json:"PubMed"`
	} `json:"externalIds"`
	Authors []struct {
		AuthorID string `json:"authorId"`
		Name     string `json:"name"`
	} `json:"authors"`
}

// PapersResponse is an offset paged list of papers.
type PapersResponse struct {
	Offset int64   `json:"offset"`
	Next   int64   `json:"next"`
	Data   []Paper `json:"data"`
}

// AuthorSearchResult is the response of /graph/v1/author/search.
type AuthorSearchResult struct {
	Total int64 `json:"total"`
	Data  []struct {
		AuthorID string   `json:"authorId"`
		Name     string   `json:"name"`
		Aliases  []string `json:"aliases"`
	} `json:"data"`
}
