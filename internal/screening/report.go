// Package screening orchestrates the analysis layers for one input
// sequence and assembles their results into a single report.
//
// The engine is stateless per call: the only shared state is the
// read-only codon usage table captured at construction. Layer
// failures are recorded as warnings on the affected layer's result
// instead of aborting the report, so callers always receive a
// best-effort view that distinguishes "no signal" from "not
// computable". Only an unusable input sequence fails the whole call.
package screening

import (
	"time"

	"github.com/google/uuid"

	"github.com/seqguard/seqguard-go/internal/codon"
	"github.com/seqguard/seqguard-go/internal/homology"
)

// Composition holds the nucleotide composition statistics for the
// query sequence.
type Composition struct {
	GCContent  float64 `json:"gc_content"`
	CpGRatio   float64 `json:"cpg_ratio"`
	Complexity float64 `json:"complexity"`
	ACount     int     `json:"a_count"`
	CCount     int     `json:"c_count"`
	GCount     int     `json:"g_count"`
	TCount     int     `json:"t_count"`
	NCount     int     `json:"n_count"`
}

// Report aggregates the per-layer results for one analyzed sequence.
// It is immutable once returned and owned by the caller; the engine
// retains no reference to it.
type Report struct {
	ID          uuid.UUID           `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	QueryLength int                 `json:"query_length"`
	Composition Composition         `json:"composition"`
	Homology    *homology.Result    `json:"homology"`
	CAI         *codon.FrameProfile `json:"cai"`
	Warnings    []string            `json:"warnings,omitempty"`
}
