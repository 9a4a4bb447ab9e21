package tracker

// ValidationError reports malformed input, rejected before storage is
// touched. The message is safe to show to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// WriteError reports a storage failure while persisting a status update.
// Unlike read-path failures, write failures always surface to the caller:
// a user's update must never be dropped silently.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
