package handlers

import (
	"net/http"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

// CAIRequest carries a sequence for codon-adaptation scoring.
type CAIRequest struct {
	Sequence string `json:"sequence" validate:"required"`
}

// CAIResponse reports the per-frame CAI profile.
type CAIResponse struct {
	Host    string                `json:"host"`
	Profile seqguard.FrameProfile `json:"profile"`
}

// CAI computes the codon-adaptation profile across the three forward
// reading frames.
func (a *API) CAI(w http.ResponseWriter, r *http.Request) {
	var req CAIRequest
	if !a.decode(w, r, &req) {
		return
	}

	seq, err := seqguard.NewSequence(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table := a.opts.Table
	if table == nil {
		table = seqguard.HumanCodonTable()
	}

	writeJSON(w, http.StatusOK, CAIResponse{
		Host:    table.Host(),
		Profile: *table.Profile(seq),
	})
}
