package convert

import (
	"strings"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/crossref"
)

// CrossrefWorkToRawRecord converts a crossref works item into a raw record.
func CrossrefWorkToRawRecord(work *crossref.Work) (merge.RawRecord, error) {
	var rec merge.RawRecord
	if work.DOI == "" && len(work.Title) == 0 {
		return rec, ErrSkipNoContent
	}
	rec.Source = merge.SourceCrossref
	rec.DOI = work.DOI
	rec.Title = cleanTitle(strings.Join(work.Title, " "))
	if len(work.Subtitle) > 0 {
		if subtitle := cleanTitle(strings.Join(work.Subtitle, " ")); subtitle != "" {
			rec.Title = rec.Title + ": " + subtitle
		}
	}
	rec.Journal = strings.Join(work.ContainerTitle, " ")
	rec.Year = formatYear(work.Year())
	rec.URL = work.URL
	rec.Type = work.Type
	var names []string
	for _, author := range work.Author {
		switch {
		case author.Name != "":
			names = append(names, author.Name)
		case author.Family != "" || author.Given != "":
			names = append(names, strings.Trim(author.Family+", "+author.Given, ", "))
		}
	}
	rec.Authors = joinAuthors(names)
	return rec, nil
}
