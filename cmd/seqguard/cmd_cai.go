package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	caiSequence string
	caiFASTA    string
	caiTable    string
	caiJSON     bool
)

var caiCmd = &cobra.Command{
	Use:   "cai",
	Short: "Compute the codon adaptation index per reading frame",
	Long: `Computes the Codon Adaptation Index for each of the three forward
reading frames against a host codon usage table. Ambiguous and stop
codons are skipped, not scored.

Examples:
  seqguard cai -s ATGGCCAAGCTGGAG
  seqguard cai -f query.fasta --codon-table ecoli.yaml --json`,
	RunE: runCAI,
}

func init() {
	caiCmd.Flags().StringVarP(&caiSequence, "sequence", "s", "", "Raw nucleotide sequence")
	caiCmd.Flags().StringVarP(&caiFASTA, "fasta", "f", "", "FASTA file with the query sequence")
	caiCmd.Flags().StringVar(&caiTable, "codon-table", "", "YAML codon usage table (default: built-in human)")
	caiCmd.Flags().BoolVar(&caiJSON, "json", false, "Output as JSON")
}

func runCAI(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence(caiSequence, caiFASTA)
	if err != nil {
		return err
	}

	table, err := loadTable(caiTable)
	if err != nil {
		return err
	}

	profile := table.Profile(seq)

	if caiJSON {
		return printJSON(map[string]interface{}{
			"host":    table.Host(),
			"profile": profile,
		})
	}

	fmt.Printf("Host: %s\n", table.Host())
	for _, fr := range profile.Frames {
		if fr.Valid {
			fmt.Printf("Frame %d: CAI %.4f (%d codons scored, %d skipped)\n",
				fr.Frame, fr.Value, fr.Scored, fr.Skipped)
		} else {
			fmt.Printf("Frame %d: not computable\n", fr.Frame)
		}
		for _, w := range fr.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
	}
	fmt.Printf("Max CAI: %.4f\n", profile.MaxCAI)
	return nil
}
