package merge

// Pipeline drives a full batch run: sources are consumed strictly in
// configured priority order, rows strictly in input order, so higher
// authority sources establish baseline values before lower ones fill gaps.
// This ordering is load-bearing, the override rule is not commutative.
type Pipeline struct {
	Config   *Config
	Resolver *Resolver
	Merger   *Merger
}

// NewPipeline wires resolver and merger from one config.
func NewPipeline(cfg *Config) *Pipeline {
	return NewPipelineSim(cfg, nil)
}

// NewPipelineSim is NewPipeline with an explicit similarity function, used by
// tests to pin threshold boundary behavior.
func NewPipelineSim(cfg *Config, sim SimilarityFunc) *Pipeline {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Pipeline{
		Config:   cfg,
		Resolver: NewResolver(cfg.Threshold, sim),
		Merger:   NewMerger(cfg),
	}
}

// Add resolves and merges a batch of raw records from one source. Records
// with no content at all are dropped.
func (p *Pipeline) Add(records []RawRecord) {
	for i := range records {
		rec := &records[i]
		if rec.IsEmpty() {
			continue
		}
		key := p.Resolver.Resolve(rec)
		p.Merger.Merge(p.Resolver.Record(key), rec)
	}
}

// Run consumes all sources in priority order and returns the canonical set
// in order of first resolution.
func (p *Pipeline) Run(sets map[Source][]RawRecord) []*CanonicalRecord {
	for _, sw := range p.Config.Priority {
		p.Add(sets[sw.Source])
	}
	return p.Resolver.Records()
}
