package homology

// Hit is one reported match from the external homology search,
// normalized from the search tool's native output by the caller.
type Hit struct {
	SubjectID       string  `json:"subject_id" validate:"required"`
	SubjectTitle    string  `json:"subject_title"`
	Identity        float64 `json:"identity" validate:"gte=0,lte=100"`
	AlignmentLength int     `json:"alignment_length" validate:"gte=0"`
	QueryStart      int     `json:"query_start" validate:"gte=0"`
	QueryEnd        int     `json:"query_end" validate:"gte=0"`
	SubjectStart    int     `json:"subject_start" validate:"gte=0"`
	SubjectEnd      int     `json:"subject_end" validate:"gte=0"`
	EValue          float64 `json:"e_value" validate:"gte=0"`
	BitScore        float64 `json:"bit_score"`
	QueryCoverage   float64 `json:"query_coverage" validate:"gte=0,lte=100"`
}

// Validate rejects malformed hit records. Out-of-range fields are an
// input error, never silently clamped.
func (h Hit) Validate() error {
	switch {
	case h.Identity < 0 || h.Identity > 100:
		return &InvalidHitError{Subject: h.SubjectID, Field: "identity",
			Reason: "must be within [0, 100]"}
	case h.AlignmentLength < 0:
		return &InvalidHitError{Subject: h.SubjectID, Field: "alignment_length",
			Reason: "must not be negative"}
	case h.EValue < 0:
		return &InvalidHitError{Subject: h.SubjectID, Field: "e_value",
			Reason: "must not be negative"}
	case h.QueryCoverage < 0 || h.QueryCoverage > 100:
		return &InvalidHitError{Subject: h.SubjectID, Field: "query_coverage",
			Reason: "must be within [0, 100]"}
	}
	return nil
}

// Better reports whether h outranks other by identity, with alignment
// length as the tie-break. Input ordering from the search tool is
// never trusted; the top hit is always re-derived with this
// comparison.
func (h Hit) Better(other Hit) bool {
	if h.Identity != other.Identity {
		return h.Identity > other.Identity
	}
	return h.AlignmentLength > other.AlignmentLength
}
