// Package bibmerge aggregates bibliographic metadata about a single subject
// from multiple public sources and merges it into one canonical record set.
package bibmerge

const (
	AppName   = "bibmerge"
	Version   = "0.2.1"
	UserAgent = AppName + "/" + Version + " (https://github.com/miku/bibmerge)"
)
