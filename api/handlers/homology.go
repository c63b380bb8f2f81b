package handlers

import (
	"net/http"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

// ClassifyRequest carries pre-computed alignment hits and the query
// context needed to classify them.
type ClassifyRequest struct {
	Hits        []seqguard.Hit `json:"hits" validate:"dive"`
	QueryLength int            `json:"query_length" validate:"gt=0"`
	GCContent   float64        `json:"gc_content" validate:"gte=0,lte=100"`
	CheckGC     bool           `json:"check_gc"`
}

// Classify runs homology risk classification alone.
func (a *API) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !a.decode(w, r, &req) {
		return
	}

	classifier := seqguard.NewClassifier(a.opts.Classifier)
	result, err := classifier.Classify(req.Hits, req.QueryLength, req.GCContent, req.CheckGC)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
