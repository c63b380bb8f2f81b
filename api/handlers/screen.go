package handlers

import (
	"net/http"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

// ScreenRequest carries one sequence plus the pre-computed alignment
// hits for it. check_gc overrides the server default when present.
type ScreenRequest struct {
	Sequence string         `json:"sequence" validate:"required"`
	Hits     []seqguard.Hit `json:"hits" validate:"dive"`
	CheckGC  *bool          `json:"check_gc"`
}

// Screen runs the full three-layer analysis and returns the report.
func (a *API) Screen(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if !a.decode(w, r, &req) {
		return
	}

	engine := a.engine
	if req.CheckGC != nil && *req.CheckGC != a.opts.CheckGC {
		opts := a.opts
		opts.CheckGC = *req.CheckGC
		engine = seqguard.NewEngine(opts)
	}

	report, err := engine.Analyze(req.Sequence, req.Hits)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	observeScreening(report.Homology.Level)
	writeJSON(w, http.StatusOK, report)
}
