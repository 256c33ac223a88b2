// Package merge implements the record resolution and merge engine. It decides
// which raw records from different sources denote the same publication and
// fuses their fields into one canonical record per identity.
package merge

import "sort"

// Source names the origin of a raw record.
type Source string

const (
	SourcePubmed          Source = "pubmed"
	SourceCrossref        Source = "crossref"
	SourceOpenAlex        Source = "openalex"
	SourceORCID           Source = "orcid"
	SourceSemanticScholar Source = "semanticscholar"
	SourceWordPress       Source = "wordpress"
)

// RawRecord is one source's unmerged view of a publication. All fields are
// plain strings, absent values are empty strings.
type RawRecord struct {
	Source  Source
	Title   string
	Year    string
	Journal string
	Venue   string
	Authors string
	DOI     string
	PMID    string
	PutCode string // orcid only
	URL     string
	Type    string
}

// IsEmpty returns true if the record carries neither identity nor content.
// Such records are dropped before resolution.
func (r *RawRecord) IsEmpty() bool {
	return r.Title == "" && r.Year == "" && r.Journal == "" && r.Venue == "" &&
		r.Authors == "" && r.DOI == "" && r.PMID == "" && r.PutCode == "" &&
		r.URL == "" && r.Type == ""
}

// CanonicalRecord accumulates the best value per field for one canonical key,
// plus provenance: which source supplied each current value and the set of
// all sources that contributed anything.
type CanonicalRecord struct {
	Key        string
	Title      string
	Year       string
	Journal    string
	Venue      string
	Authors    string
	DOI        string
	PMID       string
	URL        string
	Sources    map[Source]struct{}
	Provenance map[string]Source
}

func newCanonicalRecord(key string) *CanonicalRecord {
	return &CanonicalRecord{
		Key:        key,
		Sources:    make(map[Source]struct{}),
		Provenance: make(map[string]Source),
	}
}

// SourceList returns the contributing sources in sorted order.
func (c *CanonicalRecord) SourceList() []string {
	var names []string
	for s := range c.Sources {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}
