package seqguard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTA(t *testing.T) {
	input := `>seq1 first test sequence
ATGGCCAAG
CTGGAGCAG
>seq2
TTTTTT
`
	sequences, err := ParseFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sequences, 2)

	assert.Equal(t, "seq1", sequences[0].ID)
	assert.Equal(t, "first test sequence", sequences[0].Description)
	assert.Equal(t, "ATGGCCAAGCTGGAGCAG", sequences[0].Bases)
	assert.Equal(t, "TTTTTT", sequences[1].Bases)
}

func TestParseFASTAInvalidBases(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader(">x\nATGQ\n"))
	require.Error(t, err)
}

func TestParseHitsJSON(t *testing.T) {
	input := `[
  {
    "subject_id": "NC_001611",
    "subject_title": "Variola virus, complete genome",
    "identity": 92.5,
    "alignment_length": 1500,
    "query_start": 1,
    "query_end": 1500,
    "subject_start": 100,
    "subject_end": 1600,
    "e_value": 0,
    "bit_score": 2500,
    "query_coverage": 90
  }
]`
	hits, err := ParseHitsJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "NC_001611", hits[0].SubjectID)
	assert.InDelta(t, 92.5, hits[0].Identity, 0.0001)
	assert.Equal(t, 1500, hits[0].AlignmentLength)
}

func TestEndToEndScreen(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	hits := []Hit{{
		SubjectID:       "NC_001611",
		SubjectTitle:    "Variola virus, complete genome",
		Identity:        92,
		AlignmentLength: 1500,
		EValue:          0,
		BitScore:        2500,
		QueryCoverage:   90,
	}}

	report, err := engine.Analyze("ATGGCCAAGCTGGAGCAGTGGACCGTG", hits)
	require.NoError(t, err)

	assert.Equal(t, RiskHigh, report.Homology.Level)
	assert.Equal(t, 1.0, report.CAI.MaxCAI)
	require.NotNil(t, report.Homology.TopHit)
}

func TestLoadCodonTableMissing(t *testing.T) {
	_, err := LoadCodonTable("no-such-file.yaml")
	require.Error(t, err)
}

func TestBatchHelpers(t *testing.T) {
	seqs, err := ParseFASTA(strings.NewReader(">a\nATGCATGC\n>b\nGGGGCCCC\n>c\nATATATAT\n"))
	require.NoError(t, err)
	require.Len(t, seqs, 3)

	set, err := BatchStats(seqs)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Count)
	assert.Equal(t, 24, set.TotalBases)
	assert.InDelta(t, 50.0, set.MeanGCContent, 0.0001)

	hist, err := NewGCHistogram(seqs, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, hist.Bins[0])
	assert.Equal(t, 1, hist.Bins[5])
	assert.Equal(t, 1, hist.Bins[9])

	dist := NewRiskDistribution([]RiskLevel{RiskNone, RiskHigh})
	assert.Equal(t, 2, dist.Total)
	assert.InDelta(t, 0.5, dist.ElevatedRatio(), 0.0001)

	score := LinguisticComplexity(seqs[0])
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
