// bm-merge deduplicates and fuses per source snapshots into one canonical
// publication list.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/miku/bibmerge"
	"github.com/miku/bibmerge/atomicfile"
	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/snapshot"
	"github.com/miku/bibmerge/status"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# bm-merge - merge per source snapshots

Reads one snapshot per source, resolves records that denote the same
publication via DOI, PMID, ORCID put code or fuzzy title match, and fuses
their fields into one record per publication. Writes CSV and JSONL plus a
status.json summary.

Sources are processed in priority order, most authoritative first. A later
source fills empty fields, and may replace a free text field only with a
strictly longer value, and only if its weight clears the override minimum.
Identifiers are never replaced once set.

## usage

$ bm-merge
$ bm-merge -p "pubmed:5,openalex:4,crossref:2" -threshold 95
$ bm-merge pubmed:fixtures/pubmed.jsonl crossref:fixtures/crossref.csv

Without positional source:path pairs, the newest snapshot per source under
the data directory is used.

## flags

`, "\n")

var (
	defaultDataDir = path.Join(xdg.DataHome, "bibmerge")

	dir         = flag.String("d", defaultDataDir, "the main data directory with snapshots")
	outputDir   = flag.String("o", "", "output directory, defaults to DATADIR/output")
	priority    = flag.String("p", "", "priority list as source:weight,... highest first")
	threshold   = flag.Float64("threshold", merge.DefaultThreshold, "minimum fuzzy title similarity (0-100)")
	minOverride = flag.Int("min-override-weight", 0, "minimum weight to override free text fields, zero picks the median")
	name        = flag.String("n", "merged", "basename for the output files")
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
	cfg := merge.DefaultConfig()
	cfg.Threshold = *threshold
	cfg.MinOverrideWeight = *minOverride
	if *priority != "" {
		ps, err := merge.ParsePriority(*priority)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Priority = ps
	}
	outDir := *outputDir
	if outDir == "" {
		outDir = path.Join(*dir, "output")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}
	files, err := snapshotFiles(cfg, path.Join(*dir, "snapshots"), flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	weights := cfg.Weights()
	sets := make(map[merge.Source][]merge.RawRecord)
	for src, filename := range files {
		records, err := snapshot.Load(src, filename)
		if err != nil {
			log.Fatal(err)
		}
		log.WithFields(log.Fields{
			"source":  src,
			"records": len(records),
			"file":    filename,
		}).Info("snapshot loaded")
		if _, ok := weights[src]; !ok {
			log.WithFields(log.Fields{"source": src}).Warn("source not in priority list, records will be ignored")
		}
		sets[src] = records
	}
	pipeline := merge.NewPipeline(cfg)
	records := pipeline.Run(sets)
	log.WithFields(log.Fields{"canonical": len(records)}).Info("merge done")
	if err := writeOutputs(outDir, *name, records); err != nil {
		log.Fatal(err)
	}
	statusPath := path.Join(outDir, "status.json")
	prev, err := status.Load(statusPath)
	if err != nil {
		log.Fatal(err)
	}
	labels := map[string]string{
		*name + ".csv": "unified publication list, merged from all sources",
	}
	builder := &status.Builder{Dir: outDir, Labels: labels}
	report, err := builder.Build(prev)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Write(statusPath); err != nil {
		log.Fatal(err)
	}
}

// snapshotFiles maps each configured source to a snapshot path. Explicit
// source:path args win, otherwise we pick the newest matching file under the
// snapshot directory. Sources without any snapshot are skipped.
func snapshotFiles(cfg *merge.Config, snapshotDir string, args []string) (map[merge.Source]string, error) {
	files := make(map[merge.Source]string)
	for _, arg := range args {
		name, filename, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("expected source:path, got %s", arg)
		}
		files[merge.Source(name)] = filename
	}
	for _, sw := range cfg.Priority {
		if _, ok := files[sw.Source]; ok {
			continue
		}
		matches, err := filepath.Glob(path.Join(snapshotDir, string(sw.Source)+"-*"))
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}
		// Day sliced names sort chronologically.
		sort.Strings(matches)
		files[sw.Source] = matches[len(matches)-1]
	}
	return files, nil
}

func writeOutputs(outDir, name string, records []*merge.CanonicalRecord) error {
	csvFile, err := atomicfile.New(path.Join(outDir, name+".csv"))
	if err != nil {
		return err
	}
	if err := merge.WriteCSV(csvFile, records); err != nil {
		csvFile.Abort()
		return err
	}
	if err := csvFile.Close(); err != nil {
		return err
	}
	jsonlFile, err := atomicfile.New(path.Join(outDir, name+".jsonl"))
	if err != nil {
		return err
	}
	if err := merge.WriteJSONL(jsonlFile, records); err != nil {
		jsonlFile.Abort()
		return err
	}
	return jsonlFile.Close()
}
