package orders

import "fmt"

// Error kinds for upstream print-on-demand failures, mapped from HTTP
// status classes. No automatic retry on any of them.
const (
	KindValidation   = "validation"   // 422 or local precheck
	KindUnauthorized = "unauthorized" // 401/403
	KindNotFound     = "notFound"     // 404
	KindUpstream     = "upstream"     // anything else non-2xx
)

// APIError is a typed failure from the print-on-demand upstream.
type APIError struct {
	Kind       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("print api error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// kindForStatus maps an upstream status code to an error kind.
func kindForStatus(status int) string {
	switch status {
	case 401, 403:
		return KindUnauthorized
	case 404:
		return KindNotFound
	case 422:
		return KindValidation
	default:
		return KindUpstream
	}
}
