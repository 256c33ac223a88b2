package convert

import (
	"strings"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/openalex"
)

// OpenAlexWorkToRawRecord converts an openalex work into a raw record.
func OpenAlexWorkToRawRecord(work *openalex.Work) (merge.RawRecord, error) {
	var rec merge.RawRecord
	title := work.Title
	if title == "" {
		title = work.DisplayName
	}
	if work.ID == "" && work.DOI == "" && title == "" {
		return rec, ErrSkipNoContent
	}
	rec.Source = merge.SourceOpenAlex
	rec.Title = cleanTitle(title)
	rec.DOI = work.DOI
	if rec.DOI == "" {
		rec.DOI = work.IDs.DOI
	}
	rec.PMID = strings.TrimPrefix(work.IDs.PMID, "https://pubmed.ncbi.nlm.nih.gov/")
	rec.Venue = work.Venue()
	rec.Year = formatYear(work.PublicationYear)
	if rec.Year == "" {
		rec.Year = yearString(work.PublicationDate)
	}
	rec.Type = work.Type
	switch {
	case work.ID != "":
		rec.URL = work.ID
	default:
		rec.URL = work.PrimaryLocation.LandingPageURL
	}
	var names []string
	for _, authorship := range work.Authorships {
		name := authorship.Author.DisplayName
		if name == "" {
			name = authorship.RawAuthorName
		}
		names = append(names, name)
	}
	rec.Authors = joinAuthors(names)
	return rec, nil
}
