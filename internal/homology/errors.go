package homology

import "fmt"

// HitError is the base error type for homology classification.
type HitError interface {
	error
	IsHitError()
}

// InvalidHitError is returned for a malformed alignment-hit record.
// It is fatal to homology classification only; other analysis layers
// proceed.
type InvalidHitError struct {
	Subject string
	Field   string
	Reason  string
}

func (e *InvalidHitError) Error() string {
	subject := e.Subject
	if subject == "" {
		subject = "<unknown>"
	}
	return fmt.Sprintf("invalid hit %s: %s %s", subject, e.Field, e.Reason)
}

func (e *InvalidHitError) IsHitError() {}
