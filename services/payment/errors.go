package payment

import "fmt"

// ValidationError reports a missing or malformed booking field caught
// before any call to the payment processor.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid checkout request: missing %s", e.Field)
}

// UpstreamError wraps a failure from the payment processor, including
// customer lookup or creation. Terminal for the submission attempt; the
// caller surfaces a retry affordance, never retries automatically.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment upstream failure during %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
