package handlers

import (
	"net/http"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

// SequenceRequest carries a raw sequence string.
type SequenceRequest struct {
	Sequence string `json:"sequence" validate:"required"`
}

// GCContentResponse is the response for GC content.
type GCContentResponse struct {
	GCContent   float64 `json:"gc_content"`
	QueryLength int     `json:"query_length"`
}

// GCContent calculates GC content over unambiguous bases.
func (a *API) GCContent(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !a.decode(w, r, &req) {
		return
	}

	seq, err := seqguard.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	gc, err := seq.GCContent()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GCContentResponse{
		GCContent:   gc,
		QueryLength: seq.Len(),
	})
}

// CompositionResponse is the response for composition statistics.
type CompositionResponse struct {
	Length     int      `json:"length"`
	GCContent  float64  `json:"gc_content"`
	CpGRatio   float64  `json:"cpg_ratio"`
	Complexity float64  `json:"complexity"`
	ACount     int      `json:"a_count"`
	CCount     int      `json:"c_count"`
	GCount     int      `json:"g_count"`
	TCount     int      `json:"t_count"`
	NCount     int      `json:"n_count"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Composition returns full composition statistics for a sequence.
func (a *API) Composition(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !a.decode(w, r, &req) {
		return
	}

	seq, err := seqguard.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := CompositionResponse{
		Length:     seq.Len(),
		CpGRatio:   seq.CpGRatio(),
		Complexity: seqguard.LinguisticComplexity(seq),
	}

	counts := seq.BaseCounts()
	resp.ACount, resp.CCount, resp.GCount, resp.TCount, resp.NCount =
		counts.A, counts.C, counts.G, counts.T, counts.N

	gc, err := seq.GCContent()
	if err != nil {
		resp.Warnings = append(resp.Warnings, err.Error())
	} else {
		resp.GCContent = gc
	}

	writeJSON(w, http.StatusOK, resp)
}

// ValidateResponse reports whether a sequence is acceptable.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Length  int    `json:"length,omitempty"`
	Message string `json:"message,omitempty"`
}

// Validate checks a sequence against the accepted alphabet.
func (a *API) Validate(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !a.decode(w, r, &req) {
		return
	}

	seq, err := seqguard.NewSequence(req.Sequence)
	if err != nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ValidateResponse{Valid: true, Length: seq.Len()})
}
