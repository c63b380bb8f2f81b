package screening

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqguard/seqguard-go/internal/homology"
	"github.com/seqguard/seqguard-go/internal/sequence"
)

// 27 bases of top-ranked human codons in frame 0.
const optimizedSeq = "ATGGCCAAGCTGGAGCAGTGGACCGTG"

func strongHit() homology.Hit {
	return homology.Hit{
		SubjectID:       "NC_001611",
		SubjectTitle:    "Variola virus, complete genome",
		Identity:        92,
		AlignmentLength: 1500,
		QueryStart:      1,
		QueryEnd:        1500,
		SubjectStart:    100,
		SubjectEnd:      1600,
		EValue:          0,
		BitScore:        2500,
		QueryCoverage:   90,
	}
}

func TestAnalyzeReportShape(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	report, err := engine.Analyze(optimizedSeq, []homology.Hit{strongHit()})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, len(optimizedSeq), report.QueryLength)

	require.NotNil(t, report.Homology)
	require.NotNil(t, report.CAI)
	for frame := 0; frame < 3; frame++ {
		assert.Equal(t, frame, report.CAI.Frames[frame].Frame)
	}

	assert.Equal(t, homology.RiskHigh, report.Homology.Level)
	assert.Equal(t, 1.0, report.CAI.MaxCAI)
}

func TestAnalyzeInvalidSequenceIsFatal(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	_, err := engine.Analyze("ATGXTT", nil)
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidBaseError{}, err)

	_, err = engine.Analyze("   ", nil)
	require.Error(t, err)
	assert.IsType(t, &sequence.EmptySequenceError{}, err)
}

func TestAnalyzeCleansInputOnce(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	messy := "  atg gcc aag\nctg gag cag\ttgg acc gtg "
	report, err := engine.Analyze(messy, nil)
	require.NoError(t, err)

	assert.Equal(t, len(optimizedSeq), report.QueryLength)
	assert.Equal(t, 1.0, report.CAI.MaxCAI)
}

func TestAnalyzeHomologyFailureDoesNotAbort(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	bad := strongHit()
	bad.Identity = 140

	report, err := engine.Analyze(optimizedSeq, []homology.Hit{bad})
	require.NoError(t, err)

	require.NotNil(t, report.Homology)
	assert.Equal(t, homology.RiskNone, report.Homology.Level)
	require.NotEmpty(t, report.Homology.Warnings)
	assert.Contains(t, report.Homology.Warnings[0], "homology classification failed")

	// The codon layer still reported.
	assert.Equal(t, 1.0, report.CAI.MaxCAI)
}

func TestAnalyzeCAIFailureDoesNotAbort(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	// Two bases: no frame has a scoreable codon, homology still runs.
	report, err := engine.Analyze("AT", nil)
	require.NoError(t, err)

	for frame := 0; frame < 3; frame++ {
		res := report.CAI.Frames[frame]
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0], "not computable")
	}

	require.NotNil(t, report.Homology)
	assert.Equal(t, homology.RiskNone, report.Homology.Level)
}

func TestAnalyzeAllAmbiguous(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	report, err := engine.Analyze("NNNNNNNNNNNNNNNNNNNNNNNN", nil)
	require.NoError(t, err)

	require.NotEmpty(t, report.Warnings)

	var gcWarned bool
	for _, w := range report.Warnings {
		if strings.Contains(w, "GC content not computable") {
			gcWarned = true
		}
	}
	assert.True(t, gcWarned)

	// With GC unavailable the mammalian-band override must not fire.
	assert.Equal(t, homology.RiskNone, report.Homology.Level)

	for frame := 0; frame < 3; frame++ {
		assert.False(t, report.CAI.Frames[frame].Valid)
	}
}

func TestAnalyzeGCOverride(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	// 18 of 40 bases are G/C: 45% GC, with one sub-floor hit.
	seq := "ATATATATATATATATATATAT" + "GCGCGCGCGCGCGCGCGC"
	weak := strongHit()
	weak.Identity = 50

	report, err := engine.Analyze(seq, []homology.Hit{weak})
	require.NoError(t, err)

	assert.InDelta(t, 45.0, report.Composition.GCContent, 0.0001)
	assert.Equal(t, homology.RiskLow, report.Homology.Level)
}

func TestAnalyzeLowComplexity(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	report, err := engine.Analyze(strings.Repeat("CAG", 20), nil)
	require.NoError(t, err)

	assert.Less(t, report.Composition.Complexity, 0.2)

	var warned bool
	for _, w := range report.Warnings {
		if strings.Contains(w, "low-complexity") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	first, err := engine.Analyze(optimizedSeq, []homology.Hit{strongHit()})
	require.NoError(t, err)
	second, err := engine.Analyze(optimizedSeq, []homology.Hit{strongHit()})
	require.NoError(t, err)

	assert.Equal(t, first.Composition, second.Composition)
	assert.Equal(t, first.Homology.Level, second.Homology.Level)
	assert.Equal(t, first.Homology.Score, second.Homology.Score)
	assert.Equal(t, first.CAI, second.CAI)
	assert.NotEqual(t, first.ID, second.ID)
}
