package merge

import (
	"fmt"

	"github.com/miku/bibmerge/normal"
)

// Resolver owns the canonical record registry and maps each raw record to
// exactly one canonical key. Identifiers always win over content: a DOI or
// PMID keyed record never goes through title matching, however similar its
// title may be to an existing fuzzy canon.
type Resolver struct {
	threshold float64
	sim       SimilarityFunc
	keys      []string // insertion order of canonical keys
	records   map[string]*CanonicalRecord
	fuzzy     []fuzzyEntry // normalized titles of fuzzy-keyed canons only
	nextFuzzy int
}

type fuzzyEntry struct {
	title string
	key   string
}

// NewResolver creates a resolver with the given fuzzy threshold and
// similarity function. A nil sim falls back to TokenSortRatio.
func NewResolver(threshold float64, sim SimilarityFunc) *Resolver {
	if sim == nil {
		sim = TokenSortRatio
	}
	return &Resolver{
		threshold: threshold,
		sim:       sim,
		records:   make(map[string]*CanonicalRecord),
	}
}

// Resolve assigns a canonical key to a raw record, creating the canonical
// record on first sight. Keys, once assigned, are stable for the run.
func (r *Resolver) Resolve(rec *RawRecord) string {
	var key string
	switch {
	case normal.DOI(rec.DOI) != "":
		key = "doi:" + normal.DOI(rec.DOI)
	case normal.PMID(rec.PMID) != "":
		key = "pmid:" + normal.PMID(rec.PMID)
	case rec.Source == SourceORCID && rec.PutCode != "":
		key = "orcid:" + rec.PutCode
	default:
		key = r.resolveFuzzy(rec)
	}
	if _, ok := r.records[key]; !ok {
		r.records[key] = newCanonicalRecord(key)
		r.keys = append(r.keys, key)
	}
	return key
}

// resolveFuzzy scans previously minted fuzzy keys for a title scoring at or
// above the threshold and reuses the best one, otherwise mints a new key. A
// failing similarity function degrades to minting, never aborts the batch.
// Records with an empty normalized title skip the comparison entirely and
// always mint, two contentless records never collapse into one canon.
func (r *Resolver) resolveFuzzy(rec *RawRecord) string {
	title := normal.Title(rec.Title)
	if title != "" {
		var (
			bestScore float64 = -1
			bestKey   string
		)
		for _, entry := range r.fuzzy {
			score, err := r.sim(title, entry.title)
			if err != nil {
				bestKey = ""
				break
			}
			if score > bestScore {
				bestScore, bestKey = score, entry.key
			}
		}
		if bestKey != "" && bestScore >= r.threshold {
			return bestKey
		}
	}
	r.nextFuzzy++
	key := fmt.Sprintf("fuzzy:%d", r.nextFuzzy)
	r.fuzzy = append(r.fuzzy, fuzzyEntry{title: title, key: key})
	return key
}

// Record returns the canonical record for a key assigned by Resolve.
func (r *Resolver) Record(key string) *CanonicalRecord {
	return r.records[key]
}

// Records returns all canonical records in order of first resolution.
func (r *Resolver) Records() []*CanonicalRecord {
	result := make([]*CanonicalRecord, 0, len(r.keys))
	for _, key := range r.keys {
		result = append(result, r.records[key])
	}
	return result
}

// Len returns the number of canonical records.
func (r *Resolver) Len() int {
	return len(r.keys)
}
