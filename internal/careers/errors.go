package careers

import "errors"

// FileError reports a violated CV attachment constraint. It is a distinct
// failure class from field validation errors.
type FileError struct {
	Message string
}

func (e FileError) Error() string { return e.Message }

// ErrDispatchFailed means the mail collaborator reported a failure.
var ErrDispatchFailed = errors.New("failed to dispatch email")
