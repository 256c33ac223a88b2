// Package orcid contains trimmed ORCID public API documents, cf.
// https://info.orcid.org/documentation/
package orcid

// SearchResult is the response of /v3.0/search/.
type SearchResult struct {
	Result []struct {
		OrcidIdentifier struct {
			Path string `json:"path"`
			URI  string `json:"uri"`
		} `json:"orcid-identifier"`
	} `json:"result"`
	NumFound int64 `json:"num-found"`
}

// Works is the response of /v3.0/{id}/works. Works with multiple versions
// across the profile are grouped.
type Works struct {
	Group []WorkGroup `json:"group"`
}

type WorkGroup struct {
	WorkSummary []WorkSummary `json:"work-summary"`
}

// WorkSummary is one version of a work in a profile work list. The put-code
// is only unique within one profile.
type WorkSummary struct {
	PutCode int64 `json:"put-code"`
	Title   struct {
		Title struct {
			Value string `json:"value"`
		} `json:"title"`
	} `json:"title"`
	JournalTitle struct {
		Value string `json:"value"`
	} `json:"journal-title"`
	PublicationDate struct {
		Year struct {
			Value string `json:"value"`
		} `json:"year"`
	} `json:"publication-date"`
	Type        string `json:"type"`
	ExternalIds struct {
		ExternalId []ExternalId `json:"external-id"`
	} `json:"external-ids"`
	URL struct {
		Value string `json:"value"`
	} `json:"url"`
}

// ExternalId is a typed identifier, e.g. doi, pmid, eid.
type ExternalId struct {
	Type  string `json:"external-id-type"`
	Value string `json:"external-id-value"`
}

// ExternalId returns the first external identifier of the given type.
func (ws *WorkSummary) ExternalId(typ string) string {
	for _, id := range ws.ExternalIds.ExternalId {
		if id.Type == typ {
			return id.Value
		}
	}
	return ""
}
