package screening

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/seqguard/seqguard-go/internal/codon"
	"github.com/seqguard/seqguard-go/internal/homology"
	"github.com/seqguard/seqguard-go/internal/kmer"
	"github.com/seqguard/seqguard-go/internal/sequence"
)

// Options configures an Engine.
type Options struct {
	// CheckGC enables the composition-based degradation of a NONE
	// homology result when GC content sits in the mammalian-
	// optimized band.
	CheckGC bool

	// Classifier holds the homology thresholds.
	Classifier homology.Options

	// Table is the host codon usage reference. Nil selects the
	// built-in human table.
	Table *codon.UsageTable
}

// DefaultOptions returns the reference configuration: GC checking on,
// default thresholds, human codon usage.
func DefaultOptions() Options {
	return Options{
		CheckGC:    true,
		Classifier: homology.DefaultOptions(),
	}
}

// Engine runs the analysis layers. Safe for concurrent use; every
// Analyze call is independent.
type Engine struct {
	table      *codon.UsageTable
	classifier *homology.Classifier
	checkGC    bool
}

// NewEngine creates an engine from options.
func NewEngine(opts Options) *Engine {
	table := opts.Table
	if table == nil {
		table = codon.Human()
	}

	return &Engine{
		table:      table,
		classifier: homology.NewClassifier(opts.Classifier),
		checkGC:    opts.CheckGC,
	}
}

// Analyze validates and cleans the raw sequence once, then runs the
// composition, homology, and codon-adaptation layers and assembles
// the report. hits are the pre-computed alignment records for this
// query from the external search.
//
// The homology classification and the three reading-frame CAI
// computations have no data dependency on each other and run
// concurrently; the result is identical to sequential execution.
func (e *Engine) Analyze(raw string, hits []homology.Hit) (*Report, error) {
	seq, err := sequence.New(raw)
	if err != nil {
		return nil, err
	}
	return e.AnalyzeSequence(seq, hits)
}

// AnalyzeSequence is Analyze for an already-validated sequence.
func (e *Engine) AnalyzeSequence(seq *sequence.Sequence, hits []homology.Hit) (*Report, error) {
	report := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		QueryLength: seq.Len(),
	}

	counts := seq.BaseCounts()
	report.Composition = Composition{
		CpGRatio:   seq.CpGRatio(),
		Complexity: kmer.LinguisticComplexity(seq),
		ACount:     counts.A,
		CCount:     counts.C,
		GCount:     counts.G,
		TCount:     counts.T,
		NCount:     counts.N,
	}

	if report.Composition.Complexity < kmer.LowComplexityThreshold {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"sequence is low-complexity (linguistic complexity %.2f); homology hits and codon statistics may be unreliable",
			report.Composition.Complexity))
	}

	gc, gcErr := seq.GCContent()
	checkGC := e.checkGC
	if gcErr != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"GC content not computable: %v", gcErr))
		checkGC = false
	}
	report.Composition.GCContent = gc

	var (
		g        errgroup.Group
		homRes   *homology.Result
		homErr   error
		frames   [3]*codon.CAIResult
		frameErr [3]error
	)

	g.Go(func() error {
		homRes, homErr = e.classifier.Classify(hits, seq.Len(), gc, checkGC)
		return nil
	})

	for frame := 0; frame < 3; frame++ {
		frame := frame
		g.Go(func() error {
			frames[frame], frameErr[frame] = e.table.CAI(seq, frame)
			return nil
		})
	}

	// Layer errors are collected per layer, never propagated.
	_ = g.Wait()

	if homErr != nil {
		homRes = &homology.Result{
			Level:       homology.RiskNone,
			QueryLength: seq.Len(),
			GCContent:   gc,
			HitCount:    len(hits),
			Warnings: []string{fmt.Sprintf(
				"homology classification failed: %v", homErr)},
		}
	}
	report.Homology = homRes

	profile := &codon.FrameProfile{}
	for frame := 0; frame < 3; frame++ {
		if frameErr[frame] != nil {
			var skipped int
			if ins, ok := frameErr[frame].(*codon.InsufficientDataError); ok {
				skipped = ins.Skipped
			}
			profile.Frames[frame] = codon.CAIResult{
				Frame:   frame,
				Skipped: skipped,
				Warnings: []string{fmt.Sprintf(
					"frame %d: CAI not computable: %v", frame, frameErr[frame])},
			}
			continue
		}

		profile.Frames[frame] = *frames[frame]
		if frames[frame].Value > profile.MaxCAI {
			profile.MaxCAI = frames[frame].Value
		}
	}
	report.CAI = profile

	return report, nil
}
