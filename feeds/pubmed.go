package feeds

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/miku/bibmerge/schema/pubmed"
	log "github.com/sirupsen/logrus"
)

const DefaultEutilsBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// PubMedHarvester fetches article metadata via NCBI E-utilities: ESearch for
// the PMID list, then batched EFetch for the article XML.
type PubMedHarvester struct {
	Client    Doer
	BaseURL   string
	Email     string
	UserAgent string
	BatchSize int // PMIDs per EFetch call
	RetMax    int // PMIDs per ESearch page
}

func (h *PubMedHarvester) baseURL() string {
	if h.BaseURL == "" {
		return DefaultEutilsBaseURL
	}
	return strings.TrimRight(h.BaseURL, "/")
}

func (h *PubMedHarvester) batchSize() int {
	if h.BatchSize == 0 {
		return 200
	}
	return h.BatchSize
}

// esearchResponse is the JSON shape of an ESearch result.
type esearchResponse struct {
	EsearchResult struct {
		Count    string   `json:"count"`
		RetMax   string   `json:"retmax"`
		RetStart string   `json:"retstart"`
		IdList   []string `json:"idlist"`
	} `json:"esearchresult"`
}

// SearchIDs returns all PMIDs matching a query term.
func (h *PubMedHarvester) SearchIDs(term string) ([]string, error) {
	retmax := h.RetMax
	if retmax == 0 {
		retmax = 10000
	}
	var (
		pmids    []string
		retstart int
	)
	for {
		params := url.Values{}
		params.Set("db", "pubmed")
		params.Set("term", term)
		params.Set("retmode", "json")
		params.Set("retmax", fmt.Sprintf("%d", retmax))
		params.Set("retstart", fmt.Sprintf("%d", retstart))
		if h.Email != "" {
			params.Set("email", h.Email)
		}
		var resp esearchResponse
		err := getJSON(h.Client, h.UserAgent, "", h.baseURL()+"/esearch.fcgi", params, &resp)
		if err != nil {
			return nil, fmt.Errorf("esearch: %w", err)
		}
		if len(resp.EsearchResult.IdList) == 0 {
			break
		}
		pmids = append(pmids, resp.EsearchResult.IdList...)
		retstart += len(resp.EsearchResult.IdList)
	}
	return pmids, nil
}

// Fetch retrieves full article XML for a batch of PMIDs.
func (h *PubMedHarvester) Fetch(pmids []string) ([]pubmed.Article, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(pmids, ","))
	params.Set("retmode", "xml")
	if h.Email != "" {
		params.Set("email", h.Email)
	}
	req, err := http.NewRequest("GET", h.baseURL()+"/efetch.fcgi", nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("User-Agent", h.UserAgent)
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("efetch: status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var set pubmed.ArticleSet
	if err := xml.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("efetch xml: %w", err)
	}
	return set.Article, nil
}

// Harvest runs search plus batched fetch for a query term.
func (h *PubMedHarvester) Harvest(term string) ([]pubmed.Article, error) {
	pmids, err := h.SearchIDs(term)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"source": "pubmed", "pmids": len(pmids)}).Info("search done")
	var articles []pubmed.Article
	for i := 0; i < len(pmids); i += h.batchSize() {
		end := i + h.batchSize()
		if end > len(pmids) {
			end = len(pmids)
		}
		batch, err := h.Fetch(pmids[i:end])
		if err != nil {
			return nil, err
		}
		articles = append(articles, batch...)
	}
	return articles, nil
}
