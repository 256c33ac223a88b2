package convert

import (
	"strings"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/pubmed"
)

// PubmedArticleToRawRecord converts an EFetch article into a raw record.
func PubmedArticleToRawRecord(doc *pubmed.Article) (merge.RawRecord, error) {
	var rec merge.RawRecord
	pmid := doc.MedlineCitation.PMID
	if pmid == "" {
		return rec, ErrMissingPMID
	}
	rec.Source = merge.SourcePubmed
	rec.PMID = pmid
	rec.Title = cleanTitle(doc.MedlineCitation.Article.ArticleTitle)
	rec.Journal = doc.MedlineCitation.Article.Journal.Title
	rec.Year = doc.Year()
	rec.URL = "https://pubmed.ncbi.nlm.nih.gov/" + pmid + "/"
	var names []string
	for _, author := range doc.MedlineCitation.Article.AuthorList.Author {
		switch {
		case author.CollectiveName != "":
			names = append(names, author.CollectiveName)
		default:
			names = append(names, strings.TrimSpace(author.LastName+", "+author.ForeName))
		}
	}
	rec.Authors = joinAuthors(names)
	for _, articleID := range doc.PubmedData.ArticleIdList.ArticleId {
		if articleID.IdType == "doi" {
			rec.DOI = articleID.Text
		}
	}
	return rec, nil
}
