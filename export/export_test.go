package export

import (
	"strings"
	"testing"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/status"
)

func TestRenderMarkdown(t *testing.T) {
	records := []*merge.CanonicalRecord{
		{
			Key:     "doi:10.1000/abc",
			Title:   "Cranial implant design",
			Year:    "2019",
			Journal: "J Surg",
			DOI:     "10.1000/abc",
			Sources: map[merge.Source]struct{}{
				merge.SourcePubmed:   {},
				merge.SourceCrossref: {},
			},
		},
		{
			Key:   "fuzzy:0",
			Title: "A blog post",
			Sources: map[merge.Source]struct{}{
				merge.SourceWordPress: {},
			},
		},
	}
	report := &status.Report{
		GeneratedAt:  "2026-01-01T00:00:00Z",
		TotalRecords: 2,
		Files: []status.FileStatus{
			{Name: "merged.csv", Rows: 2, Status: status.StateOK},
		},
	}
	var sb strings.Builder
	idx := NewIndex("Research Dataset", records, report)
	if err := idx.RenderMarkdown(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		"# Research Dataset",
		"2 records total",
		"| merged.csv | 2 | ok |",
		"Cranial implant design (2019). J Surg. doi:10.1000/abc [crossref, pubmed]",
		"A blog post [wordpress]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownNoReport(t *testing.T) {
	var sb strings.Builder
	idx := NewIndex("Empty", nil, nil)
	if err := idx.RenderMarkdown(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "## Publications") {
		t.Errorf("missing publications section:\n%s", sb.String())
	}
}
