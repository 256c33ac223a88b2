// Package status summarizes merge output files into a machine readable
// status report, suitable for dashboards or a static index page.
package status

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/miku/bibmerge/atomicfile"
	"github.com/segmentio/encoding/json"
)

// File states.
const (
	StateOK      = "ok"
	StateWarn    = "warn"
	StateMissing = "missing"
)

// FileStatus describes one output file.
type FileStatus struct {
	Name      string `json:"name"`
	Label     string `json:"label,omitempty"`
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
	UpdatedAt string `json:"updated_at,omitempty"`
	SizeBytes int64  `json:"size_bytes"`
	Rows      int    `json:"rows"`
	NewRows   int    `json:"new_rows_since_last_run"`
	Status    string `json:"status"`
}

// Report is the full status document.
type Report struct {
	RunID        string       `json:"run_id"`
	GeneratedAt  string       `json:"generated_at"`
	Files        []FileStatus `json:"files"`
	TotalRecords int          `json:"total_records"`
}

// Builder collects file information for a report. Labels map filenames to
// human readable descriptions; labeled files show up as missing when absent.
type Builder struct {
	Dir    string
	Labels map[string]string
}

// countRows counts CSV data rows, excluding the header line.
func countRows(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err == io.EOF {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	var rows int
	for {
		if _, err := r.Read(); err == io.EOF {
			break
		} else if err != nil {
			return rows, err
		}
		rows++
	}
	return rows, nil
}

// Build scans the output directory and assembles a report. A previous report
// may be passed to compute per file row deltas, nil is fine.
func (b *Builder) Build(prev *Report) (*Report, error) {
	prevRows := make(map[string]int)
	if prev != nil {
		for _, f := range prev.Files {
			prevRows[f.Name] = f.Rows
		}
	}
	names, err := filepath.Glob(filepath.Join(b.Dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, filename := range names {
		name := filepath.Base(filename)
		seen[name] = true
		fi, err := os.Stat(filename)
		if err != nil {
			return nil, err
		}
		rows, err := countRows(filename)
		if err != nil {
			return nil, err
		}
		state := StateOK
		if rows == 0 {
			state = StateWarn
		}
		newRows := rows - prevRows[name]
		if newRows < 0 {
			newRows = 0
		}
		report.Files = append(report.Files, FileStatus{
			Name:      name,
			Label:     b.Labels[name],
			Path:      filename,
			Exists:    true,
			UpdatedAt: fi.ModTime().UTC().Format(time.RFC3339),
			SizeBytes: fi.Size(),
			Rows:      rows,
			NewRows:   newRows,
			Status:    state,
		})
		report.TotalRecords += rows
	}
	for name, label := range b.Labels {
		if seen[name] {
			continue
		}
		report.Files = append(report.Files, FileStatus{
			Name:   name,
			Label:  label,
			Path:   filepath.Join(b.Dir, name),
			Status: StateMissing,
		})
	}
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Name < report.Files[j].Name
	})
	return report, nil
}

// Load reads a previous report, a missing file is not an error.
func Load(filename string) (*Report, error) {
	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var report Report
	if err := json.Unmarshal(b, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Write serializes the report atomically.
func (r *Report) Write(filename string) error {
	f, err := atomicfile.New(filename)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		f.Abort()
		return err
	}
	return f.Close()
}
