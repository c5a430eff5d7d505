package model

import "fmt"

// ValidationError is a user-input rejection. The operation that returns one
// leaves all state unchanged; the message is meant to be shown verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}
