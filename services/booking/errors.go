package booking

import "fmt"

// FlowError reports an infrastructure failure of the flow session store.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSessionNotFound is returned when the session id has no draft
// (never started, expired, or cancelled).
var ErrSessionNotFound = &FlowError{
	Code:    "sessionNotFound",
	Message: "booking session not found or expired",
}
