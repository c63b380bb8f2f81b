package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var (
	statsFASTA string
	statsBins  int
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a batch of sequences",
	Long: `Summarizes a multi-record FASTA file: length and composition
statistics, a GC content histogram, and a composition-only risk
triage of every record (no alignment hits are consulted; the
distribution reflects the GC-content signal alone).

Examples:
  seqguard stats -f order.fasta
  seqguard stats -f order.fasta --bins 20 --json`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFASTA, "fasta", "f", "", "Multi-record FASTA file (required)")
	statsCmd.Flags().IntVar(&statsBins, "bins", 10, "Number of GC histogram bins")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.MarkFlagRequired("fasta")
}

func runStats(cmd *cobra.Command, args []string) error {
	seqs, err := seqguard.ReadFASTA(statsFASTA)
	if err != nil {
		return err
	}
	if len(seqs) == 0 {
		return fmt.Errorf("no sequences in %s", statsFASTA)
	}

	setStats, err := seqguard.BatchStats(seqs)
	if err != nil {
		return err
	}

	hist, err := seqguard.NewGCHistogram(seqs, statsBins)
	if err != nil {
		return err
	}

	engine := seqguard.NewEngine(seqguard.DefaultOptions())
	levels := make([]seqguard.RiskLevel, 0, len(seqs))
	for _, seq := range seqs {
		report, err := engine.AnalyzeSequence(seq, nil)
		if err != nil {
			return fmt.Errorf("screening %s: %w", seq.ID, err)
		}
		levels = append(levels, report.Homology.Level)
	}
	dist := seqguard.NewRiskDistribution(levels)

	if statsJSON {
		return printJSON(map[string]interface{}{
			"set":               setStats,
			"gc_histogram":      hist,
			"risk_distribution": dist,
		})
	}

	fmt.Println(setStats)
	fmt.Println()
	fmt.Print(hist)
	fmt.Println()
	fmt.Println(dist)
	fmt.Printf("Elevated ratio: %.1f%%\n", dist.ElevatedRatio()*100)
	return nil
}
