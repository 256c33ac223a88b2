package convert

import (
	"strings"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/s2"
)

// S2PaperToRawRecord converts a Semantic Scholar paper into a raw record.
func S2PaperToRawRecord(paper *s2.Paper) (merge.RawRecord, error) {
	var rec merge.RawRecord
	if paper.PaperID == "" && paper.Title == "" {
		return rec, ErrSkipNoContent
	}
	rec.Source = merge.SourceSemanticScholar
	rec.Title = cleanTitle(paper.Title)
	rec.Venue = paper.Venue
	rec.Year = formatYear(paper.Year)
	rec.URL = paper.URL
	rec.DOI = paper.ExternalIds.DOI
	rec.PMID = paper.ExternalIds.PubMed
	if len(paper.PublicationTypes) > 0 {
		rec.Type = strings.ToLower(paper.PublicationTypes[0])
	}
	var names []string
	for _, author := range paper.Authors {
		names = append(names, author.Name)
	}
	rec.Authors = joinAuthors(names)
	return rec, nil
}
