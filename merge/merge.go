package merge

import "github.com/miku/bibmerge/normal"

// Merger fuses raw record fields into canonical records. Free-text fields
// follow a monotone fill with a gated length override, identifier fields are
// first-write-wins.
type Merger struct {
	weights     map[Source]int
	minOverride int
}

// NewMerger creates a merger from a config.
func NewMerger(cfg *Config) *Merger {
	return &Merger{
		weights:     cfg.Weights(),
		minOverride: cfg.OverrideWeight(),
	}
}

// Merge fuses a raw record into the canonical record it resolved to. The
// source tag is always added to the contributing set, whether or not any
// field value changed.
func (m *Merger) Merge(c *CanonicalRecord, rec *RawRecord) {
	m.mergeText(c, &c.Title, "title", rec.Title, rec.Source)
	m.mergeText(c, &c.Journal, "journal", rec.Journal, rec.Source)
	m.mergeText(c, &c.Venue, "venue", rec.Venue, rec.Source)
	m.mergeText(c, &c.Authors, "authors", rec.Authors, rec.Source)
	m.mergeIdent(c, &c.DOI, "doi", normal.DOI(rec.DOI), rec.Source)
	m.mergeIdent(c, &c.PMID, "pmid", normal.PMID(rec.PMID), rec.Source)
	m.mergeIdent(c, &c.URL, "url", rec.URL, rec.Source)
	m.mergeIdent(c, &c.Year, "year", rec.Year, rec.Source)
	c.Sources[rec.Source] = struct{}{}
}

// mergeText fills an empty slot, or replaces a shorter value when the source
// is trusted enough. Empty values never overwrite anything.
func (m *Merger) mergeText(c *CanonicalRecord, slot *string, field, value string, src Source) {
	if value == "" {
		return
	}
	if *slot == "" {
		*slot = value
		c.Provenance[field] = src
		return
	}
	if len(value) > len(*slot) && m.weights[src] >= m.minOverride {
		*slot = value
		c.Provenance[field] = src
	}
}

// mergeIdent fills an empty slot only. Identifiers are facts, not gradations
// of quality, so the first authoritative write sticks.
func (m *Merger) mergeIdent(c *CanonicalRecord, slot *string, field, value string, src Source) {
	if value == "" || *slot != "" {
		return
	}
	*slot = value
	c.Provenance[field] = src
}
