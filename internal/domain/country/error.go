package country

import "errors"

var ErrNotFound = errors.New("no matching countries")

// UpstreamError wraps a failure of the external catalog provider so the
// handler can attach the upstream message for diagnostics.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "upstream catalog error"
}
