package codon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHumanTableComplete(t *testing.T) {
	table := Human()

	entries := table.Entries()
	require.Len(t, entries, 64)

	// Every synonymous family has a codon with weight exactly 1.0.
	maxByFamily := make(map[byte]float64)
	for _, e := range entries {
		if e.Weight > maxByFamily[e.AminoAcid] {
			maxByFamily[e.AminoAcid] = e.Weight
		}
	}
	for aa, max := range maxByFamily {
		if aa == StopGroup {
			continue
		}
		assert.Equal(t, 1.0, max, "family %c", aa)
	}
}

func TestHumanTableStopCodons(t *testing.T) {
	table := Human()

	for _, c := range []string{"TAA", "TAG", "TGA"} {
		entry, ok := table.Lookup(c)
		require.True(t, ok)
		assert.True(t, entry.IsStop())
		assert.Equal(t, 0.0, entry.Weight)
		assert.True(t, table.IsStop(c))
	}

	assert.False(t, table.IsStop("ATG"))
}

func TestHumanTablePositiveWeights(t *testing.T) {
	for _, e := range Human().Entries() {
		if e.IsStop() {
			continue
		}
		assert.Greater(t, e.Weight, 0.0, "codon %s", e.Codon)
		assert.LessOrEqual(t, e.Weight, 1.0, "codon %s", e.Codon)
	}
}

func TestNewIncompleteTable(t *testing.T) {
	_, err := New("test", map[byte]map[string]float64{
		'M': {"ATG": 1.0},
	})
	require.Error(t, err)

	var incomplete *IncompleteTableError
	require.ErrorAs(t, err, &incomplete)
	assert.Len(t, incomplete.Missing, 63)
}

func TestNewInvalidFrequency(t *testing.T) {
	families := cloneFamilies(humanFrequencies)
	families['M'] = map[string]float64{"ATG": 0}

	_, err := New("test", families)
	require.Error(t, err)
	assert.IsType(t, &InvalidFrequencyError{}, err)
}

func TestNewUnknownCodon(t *testing.T) {
	families := cloneFamilies(humanFrequencies)
	families['M'] = map[string]float64{"AUG": 1.0}

	_, err := New("test", families)
	require.Error(t, err)
	assert.IsType(t, &UnknownCodonError{}, err)
}

func TestNewRenormalizesWeights(t *testing.T) {
	families := cloneFamilies(humanFrequencies)
	// Family maxima far from 1.0: counts per thousand instead of
	// relative frequencies.
	families['K'] = map[string]float64{"AAG": 32.0, "AAA": 24.0}

	table, err := New("test", families)
	require.NoError(t, err)

	aag, _ := table.Lookup("AAG")
	aaa, _ := table.Lookup("AAA")
	assert.Equal(t, 1.0, aag.Weight)
	assert.InDelta(t, 0.75, aaa.Weight, 0.0001)
}

func TestFromYAMLRoundTrip(t *testing.T) {
	families := make(map[string]map[string]float64, len(humanFrequencies))
	for aa, codons := range humanFrequencies {
		families[string(aa)] = codons
	}
	data, err := yaml.Marshal(tableFile{Host: "Homo sapiens", Families: families})
	require.NoError(t, err)

	table, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", table.Host())
	assert.Len(t, table.Entries(), 64)

	atg, ok := table.Lookup("ATG")
	require.True(t, ok)
	assert.Equal(t, 1.0, atg.Weight)
}

func TestFromYAMLBadFamilyKey(t *testing.T) {
	_, err := FromYAML([]byte("host: x\nfamilies:\n  Met:\n    ATG: 1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "family key")
}

func TestFromYAMLIncomplete(t *testing.T) {
	_, err := FromYAML([]byte("host: x\nfamilies:\n  M:\n    ATG: 1.0\n"))
	require.Error(t, err)

	var incomplete *IncompleteTableError
	assert.ErrorAs(t, err, &incomplete)
}

func cloneFamilies(src map[byte]map[string]float64) map[byte]map[string]float64 {
	out := make(map[byte]map[string]float64, len(src))
	for aa, codons := range src {
		inner := make(map[string]float64, len(codons))
		for c, f := range codons {
			inner[c] = f
		}
		out[aa] = inner
	}
	return out
}
