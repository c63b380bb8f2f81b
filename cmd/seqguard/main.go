// Command seqguard screens nucleotide sequences for synthesis risk
// from the command line.
//
// Usage:
//
//	seqguard screen -f sequence.fasta -hits hits.json
//	seqguard gc -s ATGGCCAAG
//	seqguard cai -f sequence.fasta
//	seqguard classify -hits hits.json -query-length 1200 -gc 45
//	seqguard version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
