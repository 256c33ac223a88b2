// bm-fetch harvests raw bibliographic data about a subject from public APIs
// and writes per source snapshots for merging.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/miku/bibmerge"
	"github.com/miku/bibmerge/convert"
	"github.com/miku/bibmerge/dateutil"
	"github.com/miku/bibmerge/feeds"
	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/snapshot"
	"github.com/miku/bibmerge/xflag"
	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# bm-fetch - harvest bibliographic data

Fetches publication metadata about a subject, typically an author, from
public APIs and writes one snapshot file per source. Snapshots are newline
delimited JSON, zstd compressed, and feed directly into bm-merge.

## list sources

$ bm-fetch -l
pubmed
openalex
semanticscholar
crossref
orcid
wordpress

## fetch a source

$ bm-fetch -s pubmed -q "eppley b[au]"
$ bm-fetch -s crossref -q "barry eppley" -e you@example.com
$ bm-fetch -s orcid -q "family-name:Eppley AND given-names:Barry"
$ bm-fetch -s wordpress -wordpress-url https://exploreplasticsurgery.com

## flags

`, "\n")

var (
	defaultDataDir   = path.Join(xdg.DataHome, "bibmerge")
	availableSources = []string{
		"pubmed",
		"openalex",
		"semanticscholar",
		"crossref",
		"orcid",
		"wordpress",
	}
	yesterday = time.Now().Add(-86400 * time.Second)
	oneHour   = 3600 * time.Second
)

var (
	dir          = flag.String("d", defaultDataDir, "the main data directory to put all snapshots under")
	fetchSource  = flag.String("s", "", "name of the source to fetch")
	listSources  = flag.Bool("l", false, "list available source names")
	showStatus   = flag.Bool("a", false, "show snapshot path")
	query        = flag.String("q", "", "subject query, typically an author name")
	apiEmail     = flag.String("e", "", "contact email to send along with polite api requests")
	maxRetries   = flag.Int("r", 3, "max retries")
	timeout      = flag.Duration("T", oneHour, "connection timeout")
	showVersion  = flag.Bool("version", false, "show version")
	wordpressURL = flag.String("wordpress-url", "", "base url of the wordpress site to scrape")
	maxPages     = flag.Int("wordpress-max-pages", 0, "page cap for wordpress scraping, zero means no cap")
	fetchDate    = xflag.Date{Time: yesterday}
)

func main() {
	flag.Var(&fetchDate, "t", "date stamp for the snapshot filename (YYYY-MM-DD)")
	flag.Usage = func() {
		io.WriteString(os.Stderr, docs)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(bibmerge.Version)
		os.Exit(0)
	}
	config := &feeds.Config{
		DataDir:     *dir,
		SnapshotDir: path.Join(*dir, "snapshots"),
		Source:      *fetchSource,
		Query:       *query,
		Email:       *apiEmail,
		UserAgent:   bibmerge.UserAgent,
		MaxRetries:  *maxRetries,
		Timeout:     *timeout,
		Date:        fetchDate.Time,
	}
	if err := os.MkdirAll(config.SnapshotDir, 0755); err != nil {
		log.Fatal(err)
	}
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = *maxRetries
	client.RetryOnHTTP429 = true
	client.Timeout = *timeout
	switch {
	case *showStatus:
		fmt.Printf("snapshots: %s\n", config.SnapshotDir)
	case *listSources:
		for _, s := range availableSources {
			fmt.Println(s)
		}
	case config.Source != "":
		records, err := harvest(client, config)
		if err != nil {
			log.Fatal(err)
		}
		filename := snapshotPath(config)
		if err := snapshot.Write(filename, records); err != nil {
			log.Fatal(err)
		}
		log.WithFields(log.Fields{
			"source":  config.Source,
			"records": len(records),
			"file":    filename,
		}).Info("snapshot written")
	default:
		flag.Usage()
	}
}

// snapshotPath builds a day sliced snapshot filename.
func snapshotPath(config *feeds.Config) string {
	start, end := dateutil.DayRange(config.Date)
	fn := fmt.Sprintf("%s-%s-%s.jsonl.zst",
		config.Source,
		start.Format("2006-01-02"),
		end.Format("2006-01-02"))
	return path.Join(config.SnapshotDir, fn)
}

// harvest fetches one source and converts the documents to raw records.
// Documents we cannot convert are skipped, with a counter in the logs.
func harvest(client feeds.Doer, config *feeds.Config) ([]merge.RawRecord, error) {
	var (
		records []merge.RawRecord
		skipped int
	)
	keep := func(rec merge.RawRecord, err error) {
		if err != nil {
			skipped++
			return
		}
		records = append(records, rec)
	}
	switch config.Source {
	case "pubmed":
		h := &feeds.PubMedHarvester{Client: client, Email: config.Email, UserAgent: config.UserAgent}
		articles, err := h.Harvest(config.Query)
		if err != nil {
			return nil, err
		}
		for i := range articles {
			keep(convert.PubmedArticleToRawRecord(&articles[i]))
		}
	case "openalex":
		h := &feeds.OpenAlexHarvester{Client: client, ApiEmail: config.Email, UserAgent: config.UserAgent}
		works, err := h.Works(config.Query)
		if err != nil {
			return nil, err
		}
		for i := range works {
			keep(convert.OpenAlexWorkToRawRecord(&works[i]))
		}
	case "semanticscholar":
		h := &feeds.S2Harvester{Client: client, UserAgent: config.UserAgent}
		papers, err := h.Harvest(config.Query)
		if err != nil {
			return nil, err
		}
		for i := range papers {
			keep(convert.S2PaperToRawRecord(&papers[i]))
		}
	case "crossref":
		h := &feeds.CrossrefHarvester{Client: client, ApiEmail: config.Email, UserAgent: config.UserAgent}
		works, err := h.Works(config.Query)
		if err != nil {
			return nil, err
		}
		for i := range works {
			keep(convert.CrossrefWorkToRawRecord(&works[i]))
		}
	case "orcid":
		h := &feeds.ORCIDHarvester{Client: client, UserAgent: config.UserAgent}
		profiles, err := h.Harvest(config.Query)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			for i := range p.Groups {
				keep(convert.OrcidWorkGroupToRawRecord(p.OrcidID, &p.Groups[i]))
			}
		}
	case "wordpress":
		if *wordpressURL == "" {
			return nil, fmt.Errorf("wordpress needs -wordpress-url")
		}
		h := &feeds.WordPressHarvester{
			Client:    client,
			BaseURL:   *wordpressURL,
			UserAgent: config.UserAgent,
			MaxPages:  *maxPages,
		}
		posts, err := h.Posts()
		if err != nil {
			return nil, err
		}
		for i := range posts {
			keep(convert.WordPressPostToRawRecord(&posts[i]))
		}
	default:
		return nil, fmt.Errorf("unknown source: %s", config.Source)
	}
	if skipped > 0 {
		log.WithFields(log.Fields{"source": config.Source, "skipped": skipped}).Warn("skipped during conversion")
	}
	return records, nil
}
