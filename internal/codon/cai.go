package codon

import (
	"fmt"
	"math"

	"github.com/seqguard/seqguard-go/internal/sequence"
)

// MinReliableCodons is the number of scored codons below which the CAI
// statistic is flagged as unreliable.
const MinReliableCodons = 10

// CAIResult holds the Codon Adaptation Index for one reading frame.
type CAIResult struct {
	Frame    int      `json:"frame"`
	Value    float64  `json:"value"`
	Scored   int      `json:"scored"`
	Skipped  int      `json:"skipped"`
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// CAI computes the Codon Adaptation Index of a sequence in one forward
// reading frame.
//
// Starting at offset frame, the sequence is partitioned into
// non-overlapping triplets; a trailing partial triplet is discarded.
// Triplets containing ambiguous bases are skipped, as are stop codons
// (they carry no relative-adaptiveness weight). The index is the
// geometric mean of the remaining weights, accumulated in log space:
// multiplying hundreds of weights below 1.0 directly would underflow.
func (t *UsageTable) CAI(seq *sequence.Sequence, frame int) (*CAIResult, error) {
	if frame < 0 || frame > 2 {
		return nil, &InvalidFrameError{Frame: frame}
	}

	res := &CAIResult{Frame: frame}
	bases := seq.Bases

	var logSum float64
	for i := frame; i+3 <= len(bases); i += 3 {
		triplet := bases[i : i+3]

		entry, ok := t.entries[triplet]
		if !ok {
			// Contains N or another ambiguity code.
			res.Skipped++
			continue
		}
		if entry.IsStop() {
			res.Skipped++
			continue
		}

		logSum += math.Log(entry.Weight)
		res.Scored++
	}

	if res.Scored == 0 {
		return nil, &InsufficientDataError{Frame: frame, Skipped: res.Skipped}
	}

	res.Value = math.Exp(logSum / float64(res.Scored))
	res.Valid = true

	if res.Scored < MinReliableCodons {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"frame %d: only %d codons scored (fewer than %d) - CAI statistic unreliable",
			frame, res.Scored, MinReliableCodons))
	}

	return res, nil
}

// FrameProfile holds CAI results for all three forward reading frames.
// The functional frame of an unannotated sequence is not known, so the
// maximum across frames is reported as the headline optimization
// indicator (the most suspicious choice).
type FrameProfile struct {
	Frames [3]CAIResult `json:"frames"`
	MaxCAI float64      `json:"max_cai"`
}

// Profile computes CAI for frames 0, 1, and 2. A frame that cannot be
// scored is recorded in place with a descriptive warning instead of
// aborting the profile; the other frames still report.
func (t *UsageTable) Profile(seq *sequence.Sequence) *FrameProfile {
	profile := &FrameProfile{}

	for frame := 0; frame < 3; frame++ {
		res, err := t.CAI(seq, frame)
		if err != nil {
			var skipped int
			if ins, ok := err.(*InsufficientDataError); ok {
				skipped = ins.Skipped
			}
			profile.Frames[frame] = CAIResult{
				Frame:   frame,
				Skipped: skipped,
				Warnings: []string{fmt.Sprintf(
					"frame %d: CAI not computable: %v", frame, err)},
			}
			continue
		}

		profile.Frames[frame] = *res
		if res.Value > profile.MaxCAI {
			profile.MaxCAI = res.Value
		}
	}

	return profile
}
