// Package convert maps raw per-source documents to merge.RawRecord, so the
// engine never touches source specific shapes.
package convert

import (
	"errors"
	"strconv"
	"strings"

	"github.com/miku/bibmerge/dateutil"
)

// Skip wraps errors for documents we deliberately drop during conversion.
type Skip struct {
	err error
}

func (s Skip) Error() string {
	return s.err.Error()
}

var (
	ErrSkipNoContent = Skip{err: errors.New("no content")}
	ErrMissingPMID   = errors.New("missing pmid")
)

// authorSep joins author names in the flat authors field.
const authorSep = "; "

func joinAuthors(names []string) string {
	var nonEmpty []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			nonEmpty = append(nonEmpty, name)
		}
	}
	return strings.Join(nonEmpty, authorSep)
}

func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	for _, prefix := range []string{"Title:", "TITLE:"} {
		if strings.HasPrefix(title, prefix) {
			title = strings.TrimSpace(strings.TrimPrefix(title, prefix))
		}
	}
	return title
}

// yearString extracts a four digit year from a date string, best effort.
func yearString(date string) string {
	return dateutil.Year(date)
}

func formatYear(year int64) string {
	if year == 0 {
		return ""
	}
	return strconv.FormatInt(year, 10)
}
