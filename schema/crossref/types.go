// Package crossref contains a trimmed crossref REST API works document, cf.
// https://www.crossref.org/documentation/retrieve-metadata/rest-api/
package crossref

type DatePart []int64

// Author is a crossref author.
type Author struct {
	Family   string `json:"family,omitempty"`
	Given    string `json:"given,omitempty"`
	Name     string `json:"name,omitempty"` // organizations
	Sequence string `json:"sequence,omitempty"`
	ORCID    string `json:"orcid,omitempty"`
}

// Work is the subset of a crossref works message item we harvest via the
// select parameter.
type Work struct {
	DOI            string   `json:"DOI"`
	Title          []string `json:"title,omitempty"`
	Subtitle       []string `json:"subtitle,omitempty"`
	ContainerTitle []string `json:"container-title,omitempty"`
	Author         []Author `json:"author,omitempty"`
	Issued         struct {
		DateParts []DatePart `json:"date-parts,omitempty"`
	} `json:"issued"`
	Type string `json:"type,omitempty"`
	URL  string `json:"URL,omitempty"`
}

// Year returns the first issued year or zero.
func (w *Work) Year() int64 {
	if len(w.Issued.DateParts) > 0 && len(w.Issued.DateParts[0]) > 0 {
		return w.Issued.DateParts[0][0]
	}
	return 0
}
