package convert

import (
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/crossref"
	"github.com/miku/bibmerge/schema/openalex"
	"github.com/miku/bibmerge/schema/orcid"
	"github.com/miku/bibmerge/schema/pubmed"
	"github.com/miku/bibmerge/schema/s2"
	"github.com/segmentio/encoding/json"
)

const pubmedXML = `
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">5500151</PMID>
      <Article>
        <Journal>
          <Title>Journal of Surgery</Title>
          <JournalIssue><PubDate><Year>2019</Year></PubDate></JournalIssue>
        </Journal>
        <ArticleTitle>Craniofacial  Surgery Outcomes</ArticleTitle>
        <AuthorList>
          <Author><LastName>Eppley</LastName><ForeName>Barry L</ForeName></Author>
          <Author><LastName>Doe</LastName><ForeName>Jane</ForeName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="pubmed">5500151</ArticleId>
        <ArticleId IdType="doi">10.1000/abc</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
</PubmedArticleSet>`

func TestPubmedArticleToRawRecord(t *testing.T) {
	var set pubmed.ArticleSet
	if err := xml.Unmarshal([]byte(pubmedXML), &set); err != nil {
		t.Fatal(err)
	}
	if len(set.Article) != 1 {
		t.Fatalf("got %d articles, want 1", len(set.Article))
	}
	rec, err := PubmedArticleToRawRecord(&set.Article[0])
	if err != nil {
		t.Fatal(err)
	}
	want := merge.RawRecord{
		Source:  merge.SourcePubmed,
		Title:   "Craniofacial Surgery Outcomes",
		Year:    "2019",
		Journal: "Journal of Surgery",
		Authors: "Eppley, Barry L; Doe, Jane",
		DOI:     "10.1000/abc",
		PMID:    "5500151",
		URL:     "https://pubmed.ncbi.nlm.nih.gov/5500151/",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestPubmedMissingPMID(t *testing.T) {
	if _, err := PubmedArticleToRawRecord(&pubmed.Article{}); err != ErrMissingPMID {
		t.Errorf("got %v, want ErrMissingPMID", err)
	}
}

func TestCrossrefWorkToRawRecord(t *testing.T) {
	blob := `{
		"DOI": "10.1000/ABC",
		"title": ["Craniofacial Surgery Outcomes"],
		"subtitle": ["A Retrospective Study"],
		"container-title": ["J Surg"],
		"author": [
			{"family": "Eppley", "given": "Barry L"},
			{"name": "Study Group"}
		],
		"issued": {"date-parts": [[2019, 3]]},
		"type": "journal-article",
		"URL": "http://dx.doi.org/10.1000/abc"
	}`
	var work crossref.Work
	if err := json.Unmarshal([]byte(blob), &work); err != nil {
		t.Fatal(err)
	}
	rec, err := CrossrefWorkToRawRecord(&work)
	if err != nil {
		t.Fatal(err)
	}
	want := merge.RawRecord{
		Source:  merge.SourceCrossref,
		Title:   "Craniofacial Surgery Outcomes: A Retrospective Study",
		Year:    "2019",
		Journal: "J Surg",
		Authors: "Eppley, Barry L; Study Group",
		DOI:     "10.1000/ABC",
		URL:     "http://dx.doi.org/10.1000/abc",
		Type:    "journal-article",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAlexWorkToRawRecord(t *testing.T) {
	blob := `{
		"id": "https://openalex.org/W123",
		"doi": "https://doi.org/10.1000/abc",
		"display_name": "Craniofacial Surgery Outcomes",
		"publication_year": 2019,
		"type": "article",
		"authorships": [{"author": {"display_name": "Barry L. Eppley"}}],
		"ids": {"openalex": "https://openalex.org/W123", "pmid": "https://pubmed.ncbi.nlm.nih.gov/5500151"},
		"host_venue": {"display_name": "J Surg"}
	}`
	var work openalex.Work
	if err := json.Unmarshal([]byte(blob), &work); err != nil {
		t.Fatal(err)
	}
	rec, err := OpenAlexWorkToRawRecord(&work)
	if err != nil {
		t.Fatal(err)
	}
	want := merge.RawRecord{
		Source:  merge.SourceOpenAlex,
		Title:   "Craniofacial Surgery Outcomes",
		Year:    "2019",
		Venue:   "J Surg",
		Authors: "Barry L. Eppley",
		DOI:     "https://doi.org/10.1000/abc",
		PMID:    "5500151",
		URL:     "https://openalex.org/W123",
		Type:    "article",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestOrcidWorkGroupToRawRecord(t *testing.T) {
	blob := `{
		"work-summary": [{
			"put-code": 12345,
			"title": {"title": {"value": "A Title Only Known To ORCID"}},
			"journal-title": {"value": "J Surg"},
			"publication-date": {"year": {"value": "2018"}},
			"type": "journal-article",
			"external-ids": {"external-id": [{"external-id-type": "eid", "external-id-value": "x"}]},
			"url": {"value": ""}
		}]
	}`
	var group orcid.WorkGroup
	if err := json.Unmarshal([]byte(blob), &group); err != nil {
		t.Fatal(err)
	}
	rec, err := OrcidWorkGroupToRawRecord("0000-0001-2345-6789", &group)
	if err != nil {
		t.Fatal(err)
	}
	if rec.PutCode != "12345" {
		t.Errorf("got put code %q, want 12345", rec.PutCode)
	}
	if rec.DOI != "" {
		t.Errorf("unexpected doi %q", rec.DOI)
	}
	if want := "https://orcid.org/0000-0001-2345-6789/work/12345"; rec.URL != want {
		t.Errorf("got url %q, want %q", rec.URL, want)
	}
}

func TestOrcidEmptyGroupSkipped(t *testing.T) {
	_, err := OrcidWorkGroupToRawRecord("", &orcid.WorkGroup{})
	if _, ok := err.(Skip); !ok {
		t.Errorf("got %v, want a Skip error", err)
	}
}

func TestS2PaperToRawRecord(t *testing.T) {
	blob := `{
		"paperId": "abc123",
		"title": "Craniofacial Surgery Outcomes",
		"year": 2019,
		"venue": "J Surg",
		"url": "https://www.semanticscholar.org/paper/abc123",
		"publicationTypes": ["JournalArticle"],
		"externalIds": {"DOI": "10.1000/abc", "PubMed": "5500151"},
		"authors": [{"authorId": "1", "name": "Barry L. Eppley"}]
	}`
	var paper s2.Paper
	if err := json.Unmarshal([]byte(blob), &paper); err != nil {
		t.Fatal(err)
	}
	rec, err := S2PaperToRawRecord(&paper)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Source != merge.SourceSemanticScholar {
		t.Errorf("got source %q", rec.Source)
	}
	if rec.DOI != "10.1000/abc" || rec.PMID != "5500151" {
		t.Errorf("identifiers not mapped: doi=%q pmid=%q", rec.DOI, rec.PMID)
	}
	if rec.Type != "journalarticle" {
		t.Errorf("got type %q", rec.Type)
	}
}
