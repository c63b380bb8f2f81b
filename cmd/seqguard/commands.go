package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var rootCmd = &cobra.Command{
	Use:   "seqguard",
	Short: "Nucleotide sequence risk screening",
	Long: `seqguard scores nucleotide sequences for synthesis risk.

It combines three independent signals: homology to concerning
pathogens (from pre-computed alignment hits), nucleotide composition,
and codon-usage optimization toward a target host.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the seqguard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("seqguard %s\n", seqguard.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(gcCmd)
	rootCmd.AddCommand(caiCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadSequence resolves the shared -s/-f input flags into a validated
// sequence. A FASTA file may hold several records; the first is used.
func loadSequence(raw, fastaPath string) (*seqguard.Sequence, error) {
	switch {
	case raw != "" && fastaPath != "":
		return nil, fmt.Errorf("use either --sequence or --fasta, not both")
	case raw != "":
		return seqguard.NewSequence(raw)
	case fastaPath != "":
		seqs, err := seqguard.ReadFASTA(fastaPath)
		if err != nil {
			return nil, err
		}
		if len(seqs) == 0 {
			return nil, fmt.Errorf("no sequences in %s", fastaPath)
		}
		if len(seqs) > 1 {
			fmt.Fprintf(os.Stderr, "Note: %s holds %d sequences; using %s\n",
				fastaPath, len(seqs), seqs[0].ID)
		}
		return seqs[0], nil
	default:
		return nil, fmt.Errorf("a sequence is required (--sequence or --fasta)")
	}
}

// loadHits reads alignment hits when a path was given; an absent file
// flag means no hits, which is a valid empty search result.
func loadHits(path string) ([]seqguard.Hit, error) {
	if path == "" {
		return nil, nil
	}
	return seqguard.ReadHitsJSON(path)
}

// loadTable resolves the --codon-table flag, defaulting to the
// built-in human usage table.
func loadTable(path string) (*seqguard.UsageTable, error) {
	if path == "" {
		return seqguard.HumanCodonTable(), nil
	}
	return seqguard.LoadCodonTable(path)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
