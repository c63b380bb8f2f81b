package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var (
	classifyHits        string
	classifyQueryLength int
	classifyGC          float64
	classifyThresholds  string
	classifyNoCheckGC   bool
	classifyJSON        bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify homology risk from alignment hits alone",
	Long: `Runs the homology risk classification layer on its own, without a
sequence: the inputs are pre-computed alignment hits plus the query
length and GC content they were derived from.

Examples:
  seqguard classify --hits hits.json --query-length 1200 --gc 45.0
  seqguard classify --hits hits.json --query-length 800 --gc 30 --no-check-gc`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyHits, "hits", "", "JSON file with pre-computed alignment hits")
	classifyCmd.Flags().IntVar(&classifyQueryLength, "query-length", 0, "Query sequence length in bp")
	classifyCmd.Flags().Float64Var(&classifyGC, "gc", 0, "Query GC content percentage")
	classifyCmd.Flags().StringVar(&classifyThresholds, "thresholds", "", "YAML classifier thresholds (default: built-in)")
	classifyCmd.Flags().BoolVar(&classifyNoCheckGC, "no-check-gc", false, "Disable the GC-content override")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output as JSON")
	classifyCmd.MarkFlagRequired("query-length")
}

func runClassify(cmd *cobra.Command, args []string) error {
	hits, err := loadHits(classifyHits)
	if err != nil {
		return err
	}

	opts := seqguard.DefaultClassifierOptions()
	if classifyThresholds != "" {
		opts, err = seqguard.LoadClassifierOptions(classifyThresholds)
		if err != nil {
			return err
		}
	}

	classifier := seqguard.NewClassifier(opts)
	result, err := classifier.Classify(hits, classifyQueryLength, classifyGC, !classifyNoCheckGC)
	if err != nil {
		return err
	}

	if classifyJSON {
		return printJSON(result)
	}

	fmt.Printf("Risk level: %s (score %.1f)\n", result.Level, result.Score)
	fmt.Printf("Hits:       %d\n", result.HitCount)
	if top := result.TopHit; top != nil {
		fmt.Printf("Top hit:    %s (%.1f%% identity over %d bp, E-value %.2e)\n",
			top.SubjectID, top.Identity, top.AlignmentLength, top.EValue)
	}
	for _, w := range result.Warnings {
		fmt.Printf("! %s\n", w)
	}
	return nil
}
