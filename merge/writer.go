package merge

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/segmentio/encoding/json"
)

// OutputFields is the stable output schema, consumed downstream as-is.
var OutputFields = []string{
	"title",
	"year",
	"journal",
	"venue",
	"authors",
	"doi",
	"pmid",
	"url",
	"sources",
	"provenance",
}

// provenanceOrder lists the value-carrying fields in output order, for a
// deterministic provenance string.
var provenanceOrder = []string{
	"title", "year", "journal", "venue", "authors", "doi", "pmid", "url",
}

// row flattens a canonical record into output column order.
func row(c *CanonicalRecord) []string {
	return []string{
		c.Title,
		c.Year,
		c.Journal,
		c.Venue,
		c.Authors,
		c.DOI,
		c.PMID,
		c.URL,
		strings.Join(c.SourceList(), ","),
		provenanceString(c),
	}
}

// provenanceString serializes the field to source mapping as semicolon
// separated field=source pairs, in output field order.
func provenanceString(c *CanonicalRecord) string {
	var parts []string
	for _, field := range provenanceOrder {
		if src, ok := c.Provenance[field]; ok {
			parts = append(parts, field+"="+string(src))
		}
	}
	return strings.Join(parts, ";")
}

// WriteCSV writes the canonical set as CSV with a header row.
func WriteCSV(w io.Writer, records []*CanonicalRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputFields); err != nil {
		return err
	}
	for _, c := range records {
		if err := cw.Write(row(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type flatRecord struct {
	Title      string `json:"title"`
	Year       string `json:"year"`
	Journal    string `json:"journal"`
	Venue      string `json:"venue"`
	Authors    string `json:"authors"`
	DOI        string `json:"doi"`
	PMID       string `json:"pmid"`
	URL        string `json:"url"`
	Sources    string `json:"sources"`
	Provenance string `json:"provenance"`
}

// WriteJSONL writes the canonical set as newline delimited JSON, one flat
// record per line, same fields as the CSV.
func WriteJSONL(w io.Writer, records []*CanonicalRecord) error {
	enc := json.NewEncoder(w)
	for _, c := range records {
		fr := flatRecord{
			Title:      c.Title,
			Year:       c.Year,
			Journal:    c.Journal,
			Venue:      c.Venue,
			Authors:    c.Authors,
			DOI:        c.DOI,
			PMID:       c.PMID,
			URL:        c.URL,
			Sources:    strings.Join(c.SourceList(), ","),
			Provenance: provenanceString(c),
		}
		if err := enc.Encode(fr); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSONL reads a canonical set written by WriteJSONL back into records.
func ReadJSONL(r io.Reader) ([]*CanonicalRecord, error) {
	var (
		records []*CanonicalRecord
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 1048576), 16777216)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var fr flatRecord
		if err := json.Unmarshal([]byte(line), &fr); err != nil {
			return nil, err
		}
		c := newCanonicalRecord("")
		c.Title = fr.Title
		c.Year = fr.Year
		c.Journal = fr.Journal
		c.Venue = fr.Venue
		c.Authors = fr.Authors
		c.DOI = fr.DOI
		c.PMID = fr.PMID
		c.URL = fr.URL
		for _, name := range strings.Split(fr.Sources, ",") {
			if name != "" {
				c.Sources[Source(name)] = struct{}{}
			}
		}
		for _, pair := range strings.Split(fr.Provenance, ";") {
			if field, src, ok := strings.Cut(pair, "="); ok {
				c.Provenance[field] = Source(src)
			}
		}
		records = append(records, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
