// Package stats summarizes batches of screened sequences.
//
// Single-sequence reports carry their own composition block; this
// package aggregates across a batch so an operator can triage a whole
// synthesis order at a glance.
package stats

import (
	"fmt"
	"sort"

	"github.com/seqguard/seqguard-go/internal/homology"
	"github.com/seqguard/seqguard-go/internal/sequence"
)

// SetStats aggregates length and composition statistics for a batch
// of sequences. MeanGCContent covers only sequences whose GC content
// is computable (at least one unambiguous base).
type SetStats struct {
	Count          int     `json:"count"`
	TotalBases     int     `json:"total_bases"`
	MinLength      int     `json:"min_length"`
	MaxLength      int     `json:"max_length"`
	MeanLength     float64 `json:"mean_length"`
	MedianLength   int     `json:"median_length"`
	MeanGCContent  float64 `json:"mean_gc_content"`
	GCComputable   int     `json:"gc_computable"`
	TotalAmbiguous int     `json:"total_ambiguous"`
}

// FromSequences calculates batch statistics.
func FromSequences(sequences []*sequence.Sequence) (*SetStats, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(sequences)
	lengths := make([]int, count)
	totalBases := 0
	totalAmbiguous := 0

	for i, seq := range sequences {
		lengths[i] = seq.Len()
		totalBases += seq.Len()
		totalAmbiguous += seq.CountAmbiguous()
	}

	minLen := lengths[0]
	maxLen := lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		medianLen = sorted[mid]
	}

	gcSum := 0.0
	gcComputable := 0
	for _, seq := range sequences {
		gc, err := seq.GCContent()
		if err != nil {
			continue
		}
		gcSum += gc
		gcComputable++
	}
	meanGC := 0.0
	if gcComputable > 0 {
		meanGC = gcSum / float64(gcComputable)
	}

	return &SetStats{
		Count:          count,
		TotalBases:     totalBases,
		MinLength:      minLen,
		MaxLength:      maxLen,
		MeanLength:     float64(totalBases) / float64(count),
		MedianLength:   medianLen,
		MeanGCContent:  meanGC,
		GCComputable:   gcComputable,
		TotalAmbiguous: totalAmbiguous,
	}, nil
}

func (s *SetStats) String() string {
	return fmt.Sprintf(`SetStats {
  count: %d
  total_bases: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean GC: %.1f%%
  ambiguous bases: %d
}`, s.Count, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent, s.TotalAmbiguous)
}

// RiskDistribution counts batch screening outcomes per risk level.
type RiskDistribution struct {
	NoneCount   int `json:"none_count"`
	LowCount    int `json:"low_count"`
	MediumCount int `json:"medium_count"`
	HighCount   int `json:"high_count"`
	Total       int `json:"total"`
}

// FromLevels builds a distribution from per-sequence risk levels.
func FromLevels(levels []homology.RiskLevel) *RiskDistribution {
	dist := &RiskDistribution{Total: len(levels)}

	for _, level := range levels {
		switch level {
		case homology.RiskNone:
			dist.NoneCount++
		case homology.RiskLow:
			dist.LowCount++
		case homology.RiskMedium:
			dist.MediumCount++
		case homology.RiskHigh:
			dist.HighCount++
		}
	}

	return dist
}

// ElevatedRatio returns the proportion of sequences at MEDIUM risk or
// above, the ones that need manual review.
func (d *RiskDistribution) ElevatedRatio() float64 {
	if d.Total == 0 {
		return 0.0
	}
	return float64(d.MediumCount+d.HighCount) / float64(d.Total)
}

func (d *RiskDistribution) String() string {
	return fmt.Sprintf(`RiskDistribution {
  NONE: %d
  LOW: %d
  MEDIUM: %d
  HIGH: %d
}`, d.NoneCount, d.LowCount, d.MediumCount, d.HighCount)
}

// GCHistogram bins sequences by GC content percentage. Sequences
// whose GC content is not computable are excluded.
type GCHistogram struct {
	Bins     []int   `json:"bins"`
	BinSize  float64 `json:"bin_size"`
	NumBins  int     `json:"num_bins"`
	Excluded int     `json:"excluded"`
}

// NewGCHistogram creates a GC content histogram from sequences.
func NewGCHistogram(sequences []*sequence.Sequence, numBins int) (*GCHistogram, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	binSize := 100.0 / float64(numBins)
	hist := &GCHistogram{
		Bins:    make([]int, numBins),
		BinSize: binSize,
		NumBins: numBins,
	}

	for _, seq := range sequences {
		gc, err := seq.GCContent()
		if err != nil {
			hist.Excluded++
			continue
		}
		binIndex := int(gc / binSize)
		if binIndex >= numBins {
			binIndex = numBins - 1
		}
		hist.Bins[binIndex]++
	}

	return hist, nil
}

// ModeBin returns the most populated GC content range as percentage
// bounds.
func (h *GCHistogram) ModeBin() (float64, float64) {
	maxCount := h.Bins[0]
	maxBin := 0

	for i, count := range h.Bins {
		if count > maxCount {
			maxCount = count
			maxBin = i
		}
	}

	start := float64(maxBin) * h.BinSize
	return start, start + h.BinSize
}

func (h *GCHistogram) String() string {
	result := "GC Content Histogram:\n"
	for i := 0; i < h.NumBins; i++ {
		start := int(float64(i) * h.BinSize)
		end := start + int(h.BinSize)
		count := h.Bins[i]

		bar := ""
		for j := 0; j < count; j++ {
			bar += "#"
		}

		result += fmt.Sprintf("%3d-%3d%%: %s (%d)\n", start, end, bar, count)
	}
	return result
}
