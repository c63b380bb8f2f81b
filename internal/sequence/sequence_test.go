package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		want    string
		wantErr bool
		errType interface{}
	}{
		{
			name:  "valid DNA sequence",
			bases: "ATGCATGC",
			want:  "ATGCATGC",
		},
		{
			name:  "lowercase is uppercased",
			bases: "atgcatgc",
			want:  "ATGCATGC",
		},
		{
			name:  "whitespace is stripped",
			bases: "  ATGC\nATGC\t",
			want:  "ATGCATGC",
		},
		{
			name:  "ambiguous base accepted",
			bases: "ATGCNATGC",
			want:  "ATGCNATGC",
		},
		{
			name:    "empty sequence",
			bases:   "",
			wantErr: true,
			errType: &EmptySequenceError{},
		},
		{
			name:    "whitespace only",
			bases:   "  \n\t ",
			wantErr: true,
			errType: &EmptySequenceError{},
		},
		{
			name:    "invalid base X",
			bases:   "ATGCXATGC",
			wantErr: true,
			errType: &InvalidBaseError{},
		},
		{
			name:    "invalid base U",
			bases:   "AUGC",
			wantErr: true,
			errType: &InvalidBaseError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.bases)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					assert.IsType(t, tt.errType, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, seq)
				assert.Equal(t, tt.want, seq.Bases)
			}
		})
	}
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		want     float64
	}{
		{"all AT", "AAAATTTT", 0.0},
		{"all GC", "GCGCGCGC", 100.0},
		{"mixed with N excluded", "ATGCN", 50.0},
		{"mixed 50%", "ATGC", 50.0},
		{"single G", "G", 100.0},
		{"single A", "A", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.sequence)
			require.NoError(t, err)

			got, err := seq.GCContent()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestGCContentAllAmbiguous(t *testing.T) {
	seq, err := New("NNNNN")
	require.NoError(t, err)

	_, err = seq.GCContent()
	require.Error(t, err)
	assert.IsType(t, &NoUnambiguousBasesError{}, err)
}

func TestBaseCounts(t *testing.T) {
	seq, err := New("AACGTNN")
	require.NoError(t, err)

	counts := seq.BaseCounts()
	assert.Equal(t, BaseCounts{A: 2, C: 1, G: 1, T: 1, N: 2}, counts)
	assert.Equal(t, 7, counts.Total())
	assert.Equal(t, 5, counts.Unambiguous())
}

func TestCountAmbiguous(t *testing.T) {
	seq, err := New("ANNA")
	require.NoError(t, err)

	assert.True(t, seq.HasAmbiguous())
	assert.Equal(t, 2, seq.CountAmbiguous())
}

func TestCpGRatio(t *testing.T) {
	t.Run("no CpG dinucleotides", func(t *testing.T) {
		seq, err := New("GGGCCC")
		require.NoError(t, err)
		assert.Equal(t, 0.0, seq.CpGRatio())
	})

	t.Run("undefined without C or G", func(t *testing.T) {
		seq, err := New("ATATAT")
		require.NoError(t, err)
		assert.Equal(t, 0.0, seq.CpGRatio())
	})

	t.Run("alternating CG", func(t *testing.T) {
		// CGCGCG: 3 observed CpG, 3 C, 3 G, length 6 -> expected 1.5
		seq, err := New("CGCGCG")
		require.NoError(t, err)
		assert.InDelta(t, 2.0, seq.CpGRatio(), 0.0001)
	})
}

func TestClean(t *testing.T) {
	assert.Equal(t, "ATGC", Clean(" at\ngc "))
	assert.Equal(t, "", Clean("\t\n"))
}
