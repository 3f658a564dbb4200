// internal/errors/errors.go
package appErrors

import "fmt"

// ErrInvalidStatus is returned when a status string is outside the
// draft/active/paused/completed enumeration.
type ErrInvalidStatus struct {
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid campaign status %q", e.Status)
}

// Helper constructor
func NewInvalidStatus(status string) error {
	return &ErrInvalidStatus{Status: status}
}

// ErrIllegalTransition is returned when a campaign status change is not
// allowed by the transition table (completed is terminal).
type ErrIllegalTransition struct {
	From string
	To   string
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal status transition %q -> %q", e.From, e.To)
}

func NewIllegalTransition(from, to string) error {
	return &ErrIllegalTransition{From: from, To: to}
}
