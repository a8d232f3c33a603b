package marketapi

import "fmt"

// RemoteError is a failed round trip against one named resource.
//
// StatusCode is zero when the request never completed (dial failure,
// context cancellation) and non-zero when the server answered outside
// the 2xx range or with a body that could not be decoded.
type RemoteError struct {
	Resource   Resource
	Op         string
	StatusCode int
	Err        error
}

// Error renders the resource, operation, and underlying cause.
func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Resource, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Resource, e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

func remoteErr(resource Resource, op string, statusCode int, err error) error {
	return &RemoteError{Resource: resource, Op: op, StatusCode: statusCode, Err: err}
}
