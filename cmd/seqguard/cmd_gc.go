package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var (
	gcSequence string
	gcFASTA    string
	gcJSON     bool
)

var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Report nucleotide composition for a sequence",
	Long: `Reports GC content, CpG observed/expected ratio, and per-base counts
for a sequence. GC content is computed over unambiguous bases only.

Examples:
  seqguard gc -s ATGCGCATTA
  seqguard gc -f query.fasta --json`,
	RunE: runGC,
}

func init() {
	gcCmd.Flags().StringVarP(&gcSequence, "sequence", "s", "", "Raw nucleotide sequence")
	gcCmd.Flags().StringVarP(&gcFASTA, "fasta", "f", "", "FASTA file with the query sequence")
	gcCmd.Flags().BoolVar(&gcJSON, "json", false, "Output as JSON")
}

func runGC(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence(gcSequence, gcFASTA)
	if err != nil {
		return err
	}

	counts := seq.BaseCounts()
	gc, gcErr := seq.GCContent()

	if gcJSON {
		out := map[string]interface{}{
			"length":     seq.Len(),
			"cpg_ratio":  seq.CpGRatio(),
			"complexity": seqguard.LinguisticComplexity(seq),
			"a_count":    counts.A,
			"c_count":    counts.C,
			"g_count":    counts.G,
			"t_count":    counts.T,
			"n_count":    counts.N,
		}
		if gcErr == nil {
			out["gc_content"] = gc
		} else {
			out["warning"] = gcErr.Error()
		}
		return printJSON(out)
	}

	fmt.Printf("Length:     %d bp\n", seq.Len())
	if gcErr == nil {
		fmt.Printf("GC content: %.2f%%\n", gc)
	} else {
		fmt.Printf("GC content: not computable (%v)\n", gcErr)
	}
	fmt.Printf("CpG ratio:  %.3f\n", seq.CpGRatio())
	fmt.Printf("Complexity: %.3f\n", seqguard.LinguisticComplexity(seq))
	fmt.Printf("Counts:     A=%d C=%d G=%d T=%d N=%d\n",
		counts.A, counts.C, counts.G, counts.T, counts.N)
	return nil
}
