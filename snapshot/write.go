package snapshot

import (
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/miku/bibmerge/atomicfile"
	"github.com/miku/bibmerge/merge"
	"github.com/segmentio/encoding/json"
)

// jsonRecord mirrors merge.RawRecord with the canonical snapshot field names.
type jsonRecord struct {
	Title   string `json:"title,omitempty"`
	Year    string `json:"year,omitempty"`
	Journal string `json:"journal,omitempty"`
	Venue   string `json:"venue,omitempty"`
	Authors string `json:"authors,omitempty"`
	DOI     string `json:"doi,omitempty"`
	PMID    string `json:"pmid,omitempty"`
	PutCode string `json:"put_code,omitempty"`
	URL     string `json:"url,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Write serializes raw records as JSONL, atomically, compressing by file
// extension. Load can read the result back.
func Write(filename string, records []merge.RawRecord) error {
	f, err := atomicfile.New(filename)
	if err != nil {
		return err
	}
	var (
		w      io.Writer = f
		closer io.Closer
	)
	switch filepath.Ext(filename) {
	case ".gz":
		zw := gzip.NewWriter(f)
		w, closer = zw, zw
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Abort()
			return err
		}
		w, closer = zw, zw
	}
	enc := json.NewEncoder(w)
	for _, rec := range records {
		jr := jsonRecord{
			Title:   rec.Title,
			Year:    rec.Year,
			Journal: rec.Journal,
			Venue:   rec.Venue,
			Authors: rec.Authors,
			DOI:     rec.DOI,
			PMID:    rec.PMID,
			PutCode: rec.PutCode,
			URL:     rec.URL,
			Type:    rec.Type,
		}
		if err := enc.Encode(jr); err != nil {
			f.Abort()
			return err
		}
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			f.Abort()
			return err
		}
	}
	return f.Close()
}
