package contract

type ScheduleErrorCode string

const (
	// ErrInvalidDate means the supplied target date was malformed or missing
	// when required; the engine never silently defaults a bad date.
	ErrInvalidDate ScheduleErrorCode = "INVALID_DATE"
	// ErrCollaboratorUnavailable means a backing store or calendar source
	// failed; the engine cannot substitute defaults for missing inputs.
	ErrCollaboratorUnavailable ScheduleErrorCode = "COLLABORATOR_UNAVAILABLE"
	// ErrDataIntegrity means a collaborator returned structurally invalid
	// records.
	ErrDataIntegrity ScheduleErrorCode = "DATA_INTEGRITY"
	ErrInternalError ScheduleErrorCode = "INTERNAL_ERROR"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Cause   error
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ScheduleError) Unwrap() error {
	return e.Cause
}

// NewInvalidDateError reports a malformed target date.
func NewInvalidDateError(raw string) *ScheduleError {
	return &ScheduleError{Code: ErrInvalidDate, Message: "invalid target date " + raw + " (want YYYY-MM-DD)"}
}

// NewCollaboratorError wraps a failure from an external store.
func NewCollaboratorError(what string, cause error) *ScheduleError {
	return &ScheduleError{Code: ErrCollaboratorUnavailable, Message: what + " unavailable", Cause: cause}
}
