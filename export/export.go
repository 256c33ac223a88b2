// Package export renders merged records into human readable artifacts, a
// markdown index and a PDF via pandoc.
package export

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"text/template"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/status"
	"github.com/miku/clam"
)

// Tool is an external program export shells out to.
type Tool struct {
	Name string
	Docs string
}

// Check verifies the tool is installed.
func (t Tool) Check() error {
	if _, err := exec.LookPath(t.Name); err != nil {
		return fmt.Errorf("%s: %w [%s]", t.Name, err, t.Docs)
	}
	return nil
}

// Pandoc converts the markdown index to PDF.
var Pandoc = Tool{Name: "pandoc", Docs: "https://pandoc.org/installing.html"}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`# {{ .Title }}

Generated: {{ .GeneratedAt }}{{ if .TotalRecords }}, {{ .TotalRecords }} records total{{ end }}.
{{ if .Files }}
| File | Rows | Status |
|------|-----:|--------|
{{ range .Files }}| {{ .Name }} | {{ .Rows }} | {{ .Status }} |
{{ end }}{{ end }}
## Publications
{{ range .Records }}
* {{ if .Title }}{{ .Title }}{{ else }}Untitled{{ end }}{{ if .Year }} ({{ .Year }}){{ end }}{{ if .Journal }}. {{ .Journal }}{{ end }}{{ if .DOI }}. doi:{{ .DOI }}{{ end }}{{ if .PMID }}. pmid:{{ .PMID }}{{ end }} [{{ join .SourceList ", " }}]
{{ end }}`))

// Index bundles everything the markdown index shows.
type Index struct {
	Title        string
	GeneratedAt  string
	TotalRecords int
	Files        []status.FileStatus
	Records      []*merge.CanonicalRecord
}

// NewIndex assembles an index from merged records and an optional status
// report.
func NewIndex(title string, records []*merge.CanonicalRecord, report *status.Report) *Index {
	idx := &Index{Title: title, Records: records}
	if report != nil {
		idx.GeneratedAt = report.GeneratedAt
		idx.TotalRecords = report.TotalRecords
		idx.Files = report.Files
	}
	return idx
}

// RenderMarkdown writes the index as markdown.
func (idx *Index) RenderMarkdown(w io.Writer) error {
	return indexTemplate.Execute(w, idx)
}

// MarkdownToPDF runs pandoc over a markdown file.
func MarkdownToPDF(input, output string) error {
	if err := Pandoc.Check(); err != nil {
		return err
	}
	return clam.Run("pandoc {{ input }} -o {{ output }}", clam.Map{
		"input":  input,
		"output": output,
	})
}
