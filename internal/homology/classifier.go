package homology

import "fmt"

// Default classification thresholds, derived from the reference
// screening heuristics: high identity over a long alignment to a
// Select Agent is the strongest homology signal.
const (
	DefaultMinIdentity    = 70.0 // noise floor; hits below are not matches
	DefaultLowIdentity    = 70.0 // identity bound for the LOW tier
	DefaultHighIdentity   = 85.0 // identity bound separating LOW from MEDIUM/HIGH
	DefaultHighLength     = 1000 // alignment length bound for HIGH
	DefaultMediumLength   = 100  // alignment length bound for MEDIUM
	DefaultGCBandMin      = 40.0 // mammalian-optimized GC band
	DefaultGCBandMax      = 50.0
	DefaultMinQueryLength = 20 // shorter queries carry no homology signal
)

// Score caps per tier keep the continuous score strictly ordered
// across tiers for equivalent identity/length.
const (
	scoreCapHigh    = 100.0
	scoreCapMedium  = 70.0
	scoreCapLow     = 40.0
	scoreGCOverride = 30.0

	mediumMultiplier = 0.7
	lowMultiplier    = 0.4
)

// Options configures a Classifier. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	MinIdentity    float64 `yaml:"min_identity"`
	LowIdentity    float64 `yaml:"low_identity"`
	HighIdentity   float64 `yaml:"high_identity"`
	HighLength     int     `yaml:"high_length"`
	MediumLength   int     `yaml:"medium_length"`
	GCBandMin      float64 `yaml:"gc_band_min"`
	GCBandMax      float64 `yaml:"gc_band_max"`
	MinQueryLength int     `yaml:"min_query_length"`
}

// DefaultOptions returns the reference thresholds.
func DefaultOptions() Options {
	return Options{
		MinIdentity:    DefaultMinIdentity,
		LowIdentity:    DefaultLowIdentity,
		HighIdentity:   DefaultHighIdentity,
		HighLength:     DefaultHighLength,
		MediumLength:   DefaultMediumLength,
		GCBandMin:      DefaultGCBandMin,
		GCBandMax:      DefaultGCBandMax,
		MinQueryLength: DefaultMinQueryLength,
	}
}

// Classifier derives a discrete risk level and continuous score from
// alignment hits. Stateless and safe for concurrent use.
type Classifier struct {
	opts Options
}

// NewClassifier creates a classifier with the given options.
func NewClassifier(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Result is the outcome of homology classification for one query.
type Result struct {
	Level       RiskLevel `json:"risk_level"`
	Score       float64   `json:"risk_score"`
	GCContent   float64   `json:"gc_content"`
	QueryLength int       `json:"query_length"`
	HitCount    int       `json:"hit_count"`
	TopHit      *Hit      `json:"top_hit,omitempty"`
	Hits        []Hit     `json:"hits,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// Classify derives the risk level and score for a query from its
// alignment hits. gcContent is the query's GC percentage; when
// checkGC is set, a query with no strong homology but mammalian-
// optimized composition is degraded from NONE to LOW rather than
// passed silently.
//
// Malformed hit records abort classification with InvalidHitError.
func (c *Classifier) Classify(hits []Hit, queryLength int, gcContent float64, checkGC bool) (*Result, error) {
	for _, h := range hits {
		if err := h.Validate(); err != nil {
			return nil, err
		}
	}

	res := &Result{
		GCContent:   gcContent,
		QueryLength: queryLength,
		HitCount:    len(hits),
		Hits:        hits,
	}

	if queryLength < c.opts.MinQueryLength {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"query length %d bp is below the minimum alignment window (%d bp); homology analysis skipped",
			queryLength, c.opts.MinQueryLength))
		return res, nil
	}

	if len(hits) == 0 {
		res.Warnings = append(res.Warnings,
			"no significant matches found in the reference database")
		return res, nil
	}

	best, ok := c.bestQualifying(hits)
	if !ok {
		// Hits exist but all are below the identity floor. Their
		// presence plus host-optimized composition is still a weak
		// signal worth surfacing.
		if checkGC && c.inGCBand(gcContent) {
			res.Level = RiskLow
			res.Score = scoreGCOverride
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"all %d hits fall below the %.0f%% identity floor, but GC content (%.1f%%) is consistent with mammalian-cell optimization - possible unknown viral characteristics",
				len(hits), c.opts.MinIdentity, gcContent))
			return res, nil
		}

		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"all %d hits fall below the %.0f%% identity floor and were discarded as noise",
			len(hits), c.opts.MinIdentity))
		return res, nil
	}

	res.TopHit = &best
	res.Level, res.Score = c.tier(best)

	switch res.Level {
	case RiskHigh:
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"HIGH RISK: %.1f%% identity over %d bp to %s",
			best.Identity, best.AlignmentLength, best.SubjectTitle))
	case RiskMedium:
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"MEDIUM RISK: %.1f%% identity over %d bp to %s",
			best.Identity, best.AlignmentLength, best.SubjectTitle))
	case RiskLow:
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"LOW RISK: %.1f%% identity over %d bp (E-value %.2e) to %s",
			best.Identity, best.AlignmentLength, best.EValue, best.SubjectTitle))
	case RiskNone:
		if checkGC && c.inGCBand(gcContent) {
			res.Level = RiskLow
			res.Score = scoreGCOverride
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"GC content (%.1f%%) consistent with mammalian-cell optimization despite no strong homology",
				gcContent))
		}
	}

	return res, nil
}

// bestQualifying selects the best hit at or above the identity floor
// by identity, tie-broken by alignment length.
func (c *Classifier) bestQualifying(hits []Hit) (Hit, bool) {
	var best Hit
	found := false

	for _, h := range hits {
		if h.Identity < c.opts.MinIdentity {
			continue
		}
		if !found || h.Better(best) {
			best = h
			found = true
		}
	}

	return best, found
}

// tier maps the best qualifying hit onto a risk level and score.
func (c *Classifier) tier(best Hit) (RiskLevel, float64) {
	identity := best.Identity
	length := best.AlignmentLength

	// Score base grows with identity and with alignment length,
	// saturating at the HIGH length bound.
	effLen := length
	if effLen > c.opts.HighLength {
		effLen = c.opts.HighLength
	}
	base := (identity / 100.0) * (float64(effLen) / float64(c.opts.HighLength))

	switch {
	case identity > c.opts.HighIdentity && length > c.opts.HighLength:
		return RiskHigh, capScore(100.0*base, scoreCapHigh)
	case identity > c.opts.HighIdentity && length >= c.opts.MediumLength:
		return RiskMedium, capScore(100.0*base*mediumMultiplier, scoreCapMedium)
	case identity > c.opts.HighIdentity:
		// Short but near-identical fragment.
		return RiskLow, capScore(100.0*base*lowMultiplier, scoreCapLow)
	case identity >= c.opts.LowIdentity:
		// Moderate similarity at any length.
		return RiskLow, capScore(100.0*base*lowMultiplier, scoreCapLow)
	default:
		// Reachable only when the noise floor is configured below
		// the LOW identity bound; resolved by the GC override.
		return RiskNone, 0.0
	}
}

func (c *Classifier) inGCBand(gc float64) bool {
	return gc >= c.opts.GCBandMin && gc <= c.opts.GCBandMax
}

func capScore(score, limit float64) float64 {
	if score > limit {
		return limit
	}
	return score
}
