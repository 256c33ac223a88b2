// bm-export renders merged publication data into a markdown index and,
// optionally, a PDF via pandoc.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/miku/bibmerge"
	"github.com/miku/bibmerge/atomicfile"
	"github.com/miku/bibmerge/export"
	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/status"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# bm-export - render merged publications

Reads the merged JSONL output and status.json and renders a markdown index
with a per file summary table and the full publication list. With -pdf, the
markdown is additionally converted via pandoc.

## external tools

$ sudo apt install pandoc

## usage

$ bm-export
$ bm-export -title "Research Dataset" -pdf

## flags

`, "\n")

var (
	defaultDataDir = path.Join(xdg.DataHome, "bibmerge")

	dir         = flag.String("d", defaultDataDir, "the main data directory")
	outputDir   = flag.String("o", "", "output directory, defaults to DATADIR/output")
	name        = flag.String("n", "merged", "basename of the merged output files")
	title       = flag.String("title", "Publications", "title of the rendered index")
	renderPDF   = flag.Bool("pdf", false, "also render a PDF via pandoc")
	showVersion = flag.Bool("version", false, "show version")
)

func main() {
	flag.Usage = func() {
		io.WriteString(os.Stderr, docs)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(bibmerge.Version)
		os.Exit(0)
	}
	outDir := *outputDir
	if outDir == "" {
		outDir = path.Join(*dir, "output")
	}
	f, err := os.Open(path.Join(outDir, *name+".jsonl"))
	if err != nil {
		log.Fatal(err)
	}
	records, err := merge.ReadJSONL(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	report, err := status.Load(path.Join(outDir, "status.json"))
	if err != nil {
		log.Fatal(err)
	}
	idx := export.NewIndex(*title, records, report)
	mdPath := path.Join(outDir, *name+".md")
	md, err := atomicfile.New(mdPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := idx.RenderMarkdown(md); err != nil {
		md.Abort()
		log.Fatal(err)
	}
	if err := md.Close(); err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{"records": len(records), "file": mdPath}).Info("index written")
	if *renderPDF {
		pdfPath := path.Join(outDir, *name+".pdf")
		if err := export.MarkdownToPDF(mdPath, pdfPath); err != nil {
			log.Fatal(err)
		}
		log.WithFields(log.Fields{"file": pdfPath}).Info("pdf written")
	}
}
