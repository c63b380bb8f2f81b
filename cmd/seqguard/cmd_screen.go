package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var (
	screenSequence  string
	screenFASTA     string
	screenHits      string
	screenTable     string
	screenNoCheckGC bool
	screenJSON      bool
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the full risk screening for one sequence",
	Long: `Runs all analysis layers for one sequence and prints the combined
report: nucleotide composition, homology risk classification from the
supplied alignment hits, and the codon-adaptation profile across the
three forward reading frames.

Examples:
  seqguard screen -f query.fasta --hits hits.json
  seqguard screen -s ATGGCCAAGCTGGAG --json
  seqguard screen -f query.fasta --hits hits.json --codon-table ecoli.yaml`,
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVarP(&screenSequence, "sequence", "s", "", "Raw nucleotide sequence")
	screenCmd.Flags().StringVarP(&screenFASTA, "fasta", "f", "", "FASTA file with the query sequence")
	screenCmd.Flags().StringVar(&screenHits, "hits", "", "JSON file with pre-computed alignment hits")
	screenCmd.Flags().StringVar(&screenTable, "codon-table", "", "YAML codon usage table (default: built-in human)")
	screenCmd.Flags().BoolVar(&screenNoCheckGC, "no-check-gc", false, "Disable the GC-content homology override")
	screenCmd.Flags().BoolVar(&screenJSON, "json", false, "Output the report as JSON")
}

func runScreen(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence(screenSequence, screenFASTA)
	if err != nil {
		return err
	}

	hits, err := loadHits(screenHits)
	if err != nil {
		return err
	}

	table, err := loadTable(screenTable)
	if err != nil {
		return err
	}

	opts := seqguard.DefaultOptions()
	opts.CheckGC = !screenNoCheckGC
	opts.Table = table

	engine := seqguard.NewEngine(opts)
	report, err := engine.AnalyzeSequence(seq, hits)
	if err != nil {
		return err
	}

	if screenJSON {
		return printJSON(report)
	}

	printReport(report)
	return nil
}

func printReport(report *seqguard.Report) {
	fmt.Printf("Screening Report %s\n", report.ID)
	fmt.Printf("  Query length: %d bp\n", report.QueryLength)
	fmt.Printf("  GC content:   %.2f%%\n", report.Composition.GCContent)
	fmt.Printf("  CpG ratio:    %.3f\n", report.Composition.CpGRatio)

	fmt.Println("\nHomology:")
	fmt.Printf("  Risk level: %s (score %.1f)\n", report.Homology.Level, report.Homology.Score)
	fmt.Printf("  Hits:       %d\n", report.Homology.HitCount)
	if top := report.Homology.TopHit; top != nil {
		fmt.Printf("  Top hit:    %s (%.1f%% identity over %d bp)\n",
			top.SubjectID, top.Identity, top.AlignmentLength)
	}
	for _, w := range report.Homology.Warnings {
		fmt.Printf("  ! %s\n", w)
	}

	fmt.Println("\nCodon adaptation:")
	for _, fr := range report.CAI.Frames {
		if fr.Valid {
			fmt.Printf("  Frame %d: CAI %.4f (%d codons scored, %d skipped)\n",
				fr.Frame, fr.Value, fr.Scored, fr.Skipped)
		} else {
			fmt.Printf("  Frame %d: not computable\n", fr.Frame)
		}
		for _, w := range fr.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
	}
	fmt.Printf("  Max CAI: %.4f\n", report.CAI.MaxCAI)

	for _, w := range report.Warnings {
		fmt.Printf("\n! %s\n", w)
	}
}
