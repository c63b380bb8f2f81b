// Package handlers provides HTTP handlers for the screening API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

// API holds the screening engine and request validator shared by all
// handlers.
type API struct {
	opts     seqguard.Options
	engine   *seqguard.Engine
	validate *validator.Validate
}

// New creates the handler set from screening options.
func New(opts seqguard.Options) *API {
	return &API{
		opts:     opts,
		engine:   seqguard.NewEngine(opts),
		validate: validator.New(),
	}
}

// decode parses and validates a JSON request body.
func (a *API) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
