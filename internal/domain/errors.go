package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecordsFound is returned when a publish selection is empty or
	// resolves to zero stored records.
	ErrNoRecordsFound = errors.New("no records found")

	// ErrInvalidCredential is returned when a required credential is
	// missing; the caller must re-authenticate out of band.
	ErrInvalidCredential = errors.New("missing or invalid credential")
)

// UpstreamError reports an unreachable external endpoint or a
// non-success response from it. Message carries the endpoint's own
// error text when the payload was parseable.
type UpstreamError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
