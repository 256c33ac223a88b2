package feeds

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCrossrefWorks(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("cursor") {
		case "*":
			fmt.Fprint(w, `{
				"status": "ok",
				"message": {
					"total-results": 2,
					"next-cursor": "page-2",
					"items": [{"DOI": "10.1000/abc", "title": ["First work"]}]
				}
			}`)
		case "page-2":
			fmt.Fprint(w, `{
				"status": "ok",
				"message": {
					"total-results": 2,
					"next-cursor": "",
					"items": [{"DOI": "10.1000/def", "title": ["Second work"]}]
				}
			}`)
		default:
			http.Error(w, "bad cursor", http.StatusBadRequest)
		}
	}))
	defer server.Close()
	h := &CrossrefHarvester{
		Client:      server.Client(),
		ApiEndpoint: server.URL,
		ApiEmail:    "test@example.com",
	}
	works, err := h.Works("eppley")
	if err != nil {
		t.Fatalf("works: %v", err)
	}
	if requests != 2 {
		t.Errorf("got %d requests, want 2", requests)
	}
	if len(works) != 2 {
		t.Fatalf("got %d works, want 2", len(works))
	}
	if works[0].DOI != "10.1000/abc" || works[1].DOI != "10.1000/def" {
		t.Errorf("dois: got %s, %s", works[0].DOI, works[1].DOI)
	}
	if len(works[1].Title) == 0 || works[1].Title[0] != "Second work" {
		t.Errorf("title: got %v", works[1].Title)
	}
}

func TestCrossrefWorksErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()
	h := &CrossrefHarvester{Client: server.Client(), ApiEndpoint: server.URL}
	if _, err := h.Works("eppley"); err == nil {
		t.Fatal("want error on non-200 response")
	}
}
