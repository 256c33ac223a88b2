package feeds

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const mockArticleSet = `<?xml version="1.0"?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>12345678</PMID>
      <Article>
        <ArticleTitle>Custom facial implants in craniofacial surgery.</ArticleTitle>
        <Journal>
          <Title>Journal of Craniofacial Surgery</Title>
          <JournalIssue>
            <PubDate><Year>2019</Year></PubDate>
          </JournalIssue>
        </Journal>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>23456789</PMID>
      <Article>
        <ArticleTitle>Skull reshaping outcomes.</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

// setupEutilsServer serves a two page esearch result and a static efetch
// article set.
func setupEutilsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/esearch.fcgi"):
			var idlist string
			switch r.URL.Query().Get("retstart") {
			case "0":
				idlist = `"12345678"`
			case "1":
				idlist = `"23456789"`
			default:
				idlist = ""
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"esearchresult": {"count": "2", "idlist": [%s]}}`, idlist)
		case strings.HasSuffix(r.URL.Path, "/efetch.fcgi"):
			w.Header().Set("Content-Type", "text/xml")
			io.WriteString(w, mockArticleSet)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestSearchIDs(t *testing.T) {
	server := setupEutilsServer(t)
	defer server.Close()
	h := &PubMedHarvester{
		Client:  server.Client(),
		BaseURL: server.URL,
		RetMax:  1,
	}
	pmids, err := h.SearchIDs("eppley b[au]")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	want := []string{"12345678", "23456789"}
	if len(pmids) != len(want) {
		t.Fatalf("got %d pmids, want %d", len(pmids), len(want))
	}
	for i, pmid := range pmids {
		if pmid != want[i] {
			t.Errorf("pmid %d: got %s, want %s", i, pmid, want[i])
		}
	}
}

func TestFetch(t *testing.T) {
	server := setupEutilsServer(t)
	defer server.Close()
	h := &PubMedHarvester{
		Client:  server.Client(),
		BaseURL: server.URL,
	}
	articles, err := h.Fetch([]string{"12345678", "23456789"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	first := articles[0]
	if got := first.MedlineCitation.PMID; got != "12345678" {
		t.Errorf("pmid: got %s", got)
	}
	if got := first.MedlineCitation.Article.ArticleTitle; got != "Custom facial implants in craniofacial surgery." {
		t.Errorf("title: got %q", got)
	}
	if got := first.Year(); got != "2019" {
		t.Errorf("year: got %q", got)
	}
}

func TestHarvest(t *testing.T) {
	server := setupEutilsServer(t)
	defer server.Close()
	h := &PubMedHarvester{
		Client:    server.Client(),
		BaseURL:   server.URL,
		RetMax:    1,
		BatchSize: 2,
	}
	articles, err := h.Harvest("eppley b[au]")
	if err != nil {
		t.Fatalf("harvest: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
}
