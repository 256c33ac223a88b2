package convert

import (
	"github.com/miku/bibmerge/feeds"
	"github.com/miku/bibmerge/merge"
)

// WordPressPostToRawRecord converts a scraped post into a raw record. Posts
// carry no identifiers, identity comes from fuzzy title matching alone.
func WordPressPostToRawRecord(post *feeds.Post) (merge.RawRecord, error) {
	var rec merge.RawRecord
	if post.Title == "" && post.URL == "" {
		return rec, ErrSkipNoContent
	}
	rec.Source = merge.SourceWordPress
	rec.Title = cleanTitle(post.Title)
	rec.URL = post.URL
	rec.Year = yearString(post.Date)
	rec.Type = "post"
	return rec, nil
}
