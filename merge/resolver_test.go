package merge

import (
	"errors"
	"testing"
)

func TestResolveIdentifierPrecedence(t *testing.T) {
	var cases = []struct {
		about string
		rec   RawRecord
		want  string
	}{
		{"doi wins over pmid", RawRecord{Source: SourcePubmed, DOI: "10.1/x", PMID: "123"}, "doi:10.1/x"},
		{"doi url prefix stripped", RawRecord{Source: SourceCrossref, DOI: "https://doi.org/10.1/X"}, "doi:10.1/x"},
		{"dx doi prefix stripped", RawRecord{Source: SourceCrossref, DOI: "http://dx.doi.org/10.1/y"}, "doi:10.1/y"},
		{"pmid when no doi", RawRecord{Source: SourcePubmed, PMID: " 123 "}, "pmid:123"},
		{"put code for orcid rows", RawRecord{Source: SourceORCID, PutCode: "777", Title: "anything"}, "orcid:777"},
	}
	for _, c := range cases {
		r := NewResolver(DefaultThreshold, nil)
		if got := r.Resolve(&c.rec); got != c.want {
			t.Errorf("%s: got %q, want %q", c.about, got, c.want)
		}
	}
}

func TestResolvePutCodeScopedToORCID(t *testing.T) {
	// A put code on a non-orcid row must not establish identity.
	r := NewResolver(DefaultThreshold, nil)
	rec := RawRecord{Source: SourceCrossref, PutCode: "777", Title: "Some Title"}
	if got := r.Resolve(&rec); got != "fuzzy:1" {
		t.Errorf("got %q, want fuzzy:1", got)
	}
}

func TestResolveIdentityStability(t *testing.T) {
	r := NewResolver(DefaultThreshold, nil)
	a := RawRecord{Source: SourcePubmed, DOI: "10.1000/abc", Title: "A Title"}
	b := RawRecord{Source: SourceCrossref, DOI: "https://doi.org/10.1000/ABC", Title: "Completely Different Wording"}
	ka, kb := r.Resolve(&a), r.Resolve(&b)
	if ka != kb {
		t.Errorf("same doi resolved to different keys: %q vs %q", ka, kb)
	}
	if r.Len() != 1 {
		t.Errorf("got %d canonical records, want 1", r.Len())
	}
}

func TestResolveDOIBypassesFuzzy(t *testing.T) {
	// A doi-bearing record must never merge into a near-identical fuzzy canon.
	r := NewResolver(DefaultThreshold, nil)
	fuzzy := RawRecord{Source: SourceWordPress, Title: "Craniofacial Surgery Outcomes"}
	keyed := RawRecord{Source: SourceCrossref, DOI: "10.1/x", Title: "Craniofacial Surgery Outcomes"}
	kf, kk := r.Resolve(&fuzzy), r.Resolve(&keyed)
	if kf == kk {
		t.Errorf("doi record merged into fuzzy canon %q", kf)
	}
	if kk != "doi:10.1/x" {
		t.Errorf("got %q, want doi:10.1/x", kk)
	}
}

func TestResolveFuzzyThresholdBoundary(t *testing.T) {
	// Controllable similarity pins the boundary: >= threshold merges,
	// anything below mints.
	var cases = []struct {
		about string
		score float64
		want  string
	}{
		{"exactly at threshold merges", 92, "fuzzy:1"},
		{"one below mints", 91, "fuzzy:2"},
		{"way above merges", 100, "fuzzy:1"},
	}
	for _, c := range cases {
		sim := func(a, b string) (float64, error) { return c.score, nil }
		r := NewResolver(92, sim)
		first := RawRecord{Source: SourceWordPress, Title: "First Title"}
		second := RawRecord{Source: SourceWordPress, Title: "Second Title"}
		r.Resolve(&first)
		if got := r.Resolve(&second); got != c.want {
			t.Errorf("%s: got %q, want %q", c.about, got, c.want)
		}
	}
}

func TestResolveFuzzyErrorMintsFreshKey(t *testing.T) {
	sim := func(a, b string) (float64, error) { return 0, errors.New("scorer broken") }
	r := NewResolver(DefaultThreshold, sim)
	first := RawRecord{Source: SourceWordPress, Title: "Exact Same Title"}
	second := RawRecord{Source: SourceWordPress, Title: "Exact Same Title"}
	k1, k2 := r.Resolve(&first), r.Resolve(&second)
	if k1 == k2 {
		t.Errorf("failed scorer must mint a fresh key, got %q twice", k1)
	}
}

func TestResolveEmptyTitlesNeverMatch(t *testing.T) {
	r := NewResolver(DefaultThreshold, nil)
	a := RawRecord{Source: SourceWordPress, URL: "https://example.com/a"}
	b := RawRecord{Source: SourceWordPress, URL: "https://example.com/b"}
	if k1, k2 := r.Resolve(&a), r.Resolve(&b); k1 == k2 {
		t.Errorf("title-less records collapsed into %q", k1)
	}
}

func TestRecordsInsertionOrder(t *testing.T) {
	r := NewResolver(DefaultThreshold, nil)
	recs := []RawRecord{
		{Source: SourcePubmed, DOI: "10.1/b"},
		{Source: SourcePubmed, DOI: "10.1/a"},
		{Source: SourcePubmed, PMID: "42"},
	}
	for i := range recs {
		r.Resolve(&recs[i])
	}
	var keys []string
	for _, c := range r.Records() {
		keys = append(keys, c.Key)
	}
	want := []string{"doi:10.1/b", "doi:10.1/a", "pmid:42"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}
