package feeds

import "time"

// Config groups harvest settings shared by the collectors. TODO: move parts
// of this to a config file, once the flag surface settles.
type Config struct {
	// DataDir is the generic data dir for all bibmerge tools.
	DataDir string
	// FeedDir is the directory for raw harvested data only. Recommended to
	// be a subdirectory of the DataDir.
	FeedDir string
	// SnapshotDir is where the normalized per-source snapshots live.
	SnapshotDir string
	// Source is the name of the source to harvest.
	Source string
	// Query is the subject query, typically an author name.
	Query string
	// Email is sent along with requests where the API suggests it, e.g.
	// crossref and openalex mailto.
	Email string
	// UserAgent sent with every request.
	UserAgent string
	// MaxRetries is a generic retry count.
	MaxRetries int
	// Timeout is a generic operation timeout.
	Timeout time.Duration
	// Date to harvest data for, where a source supports it.
	Date time.Time
}
