package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/miku/bibmerge/merge"
)

func TestWriteLoadRoundtrip(t *testing.T) {
	records := []merge.RawRecord{
		{
			Title:   "A Title",
			Year:    "2019",
			Journal: "J Surg",
			DOI:     "10.1/x",
			PMID:    "123",
			URL:     "https://a",
		},
		{
			Title:   "Another Title",
			PutCode: "4567",
		},
	}
	for _, name := range []string{"s.jsonl", "s.jsonl.gz", "s.jsonl.zst"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Write(path, records); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		loaded, err := Load(merge.SourceORCID, path)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		want := make([]merge.RawRecord, len(records))
		copy(want, records)
		for i := range want {
			want[i].Source = merge.SourceORCID
		}
		if diff := cmp.Diff(want, loaded); diff != "" {
			t.Errorf("%s: roundtrip mismatch (-want +got):\n%s", name, diff)
		}
	}
}
