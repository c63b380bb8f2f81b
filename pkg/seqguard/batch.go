package seqguard

import (
	"github.com/seqguard/seqguard-go/internal/kmer"
	"github.com/seqguard/seqguard-go/internal/stats"
)

// Batch summary types.
type (
	SetStats         = stats.SetStats
	RiskDistribution = stats.RiskDistribution
	GCHistogram      = stats.GCHistogram
)

// BatchStats aggregates length and composition statistics over a
// batch of sequences.
func BatchStats(seqs []*Sequence) (*SetStats, error) {
	return stats.FromSequences(seqs)
}

// NewGCHistogram bins a batch of sequences by GC content percentage.
func NewGCHistogram(seqs []*Sequence, numBins int) (*GCHistogram, error) {
	return stats.NewGCHistogram(seqs, numBins)
}

// NewRiskDistribution counts screening outcomes per risk level.
func NewRiskDistribution(levels []RiskLevel) *RiskDistribution {
	return stats.FromLevels(levels)
}

// LinguisticComplexity scores how repeat-dominated a sequence is,
// from near 0 (homopolymer) to 1.0 (every word distinct).
func LinguisticComplexity(seq *Sequence) float64 {
	return kmer.LinguisticComplexity(seq)
}
