package snapshot

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/normal"
	"github.com/segmentio/encoding/json"
)

// aliases maps incoming field names (lowercased) to raw record fields.
var aliases = map[string]string{
	"title":            "title",
	"year":             "year",
	"publication_year": "year",
	"journal":          "journal",
	"container":        "journal",
	"container-title":  "journal",
	"venue":            "venue",
	"host_venue":       "venue",
	"authors":          "authors",
	"authorships":      "authors",
	"author_list":      "authors",
	"doi":              "doi",
	"pmid":             "pmid",
	"put_code":         "put_code",
	"putcode":          "put_code",
	"url":              "url",
	"link":             "url",
	"type":             "type",
}

// setField writes a value into the raw record slot named by a canonical
// field name. Empty values are ignored so a lower priority alias never
// clears a value set by an earlier column.
func setField(rec *merge.RawRecord, field, value string) {
	if value == "" {
		return
	}
	switch field {
	case "title":
		rec.Title = value
	case "year":
		rec.Year = value
	case "journal":
		rec.Journal = value
	case "venue":
		rec.Venue = value
	case "authors":
		rec.Authors = value
	case "doi":
		rec.DOI = value
	case "pmid":
		rec.PMID = value
	case "put_code":
		rec.PutCode = value
	case "url":
		rec.URL = value
	case "type":
		rec.Type = value
	}
}

// FromRow builds a raw record from a loosely keyed row. Embedded newlines
// and tabs in values become spaces, so one record stays one output row.
func FromRow(src merge.Source, row map[string]string) merge.RawRecord {
	rec := merge.RawRecord{Source: src}
	for k, v := range row {
		if field, ok := aliases[strings.ToLower(strings.TrimSpace(k))]; ok {
			setField(&rec, field, strings.TrimSpace(normal.ReplaceNewlineAndTab(v)))
		}
	}
	return rec
}

// openReader opens a snapshot file, transparently decompressing by
// extension.
func openReader(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(filename) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedCloser{Reader: zr.IOReadCloser(), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

type wrappedCloser struct {
	io.Reader
	closers []io.Closer
}

func (w *wrappedCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// stem strips compression extensions, so format sniffing sees the logical
// file name.
func stem(filename string) string {
	for _, ext := range []string{".gz", ".zst"} {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename
}

// Load reads a source snapshot into raw records. A missing file means the
// source contributed nothing this run and yields zero records, no error.
// Rows without any recognized field value are dropped.
func Load(src merge.Source, filename string) ([]merge.RawRecord, error) {
	r, err := openReader(filename)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()
	switch filepath.Ext(stem(filename)) {
	case ".jsonl", ".ndjson":
		return readJSONL(src, r)
	default:
		return readCSV(src, r)
	}
}

func readCSV(src merge.Source, r io.Reader) ([]merge.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot header: %w", err)
	}
	var records []merge.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot row: %w", err)
		}
		m := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				m[name] = row[i]
			}
		}
		rec := FromRow(src, m)
		if rec.IsEmpty() {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func readJSONL(src merge.Source, r io.Reader) ([]merge.RawRecord, error) {
	var (
		records []merge.RawRecord
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 1048576), 16777216)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			return nil, fmt.Errorf("snapshot line: %w", err)
		}
		row := make(map[string]string, len(m))
		for k, v := range m {
			switch t := v.(type) {
			case string:
				row[k] = t
			case float64:
				row[k] = strings.TrimSuffix(fmt.Sprintf("%f", t), ".000000")
			}
		}
		rec := FromRow(src, row)
		if rec.IsEmpty() {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
