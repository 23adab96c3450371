package suggestions

import "fmt"

// Fixed user-facing error messages
const (
	MsgIntegrationDisabled = "suggestion integration is disabled for this draft"
	MsgEmptyDraft          = "cannot submit an empty draft"
	MsgEmptySignature      = "a signature is required before submitting"
	MsgSubmitInProgress    = "a submission is already in progress"
	MsgSubmitFailed        = "failed to record the submission"
)

// ValidationError represents invalid input to a draft operation
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// PermissionError represents a suggestion action attempted while integration is disabled
type PermissionError struct {
	Message string
	Cause   error
}

func (e *PermissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("permission error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("permission error: %s", e.Message)
}

func (e *PermissionError) Unwrap() error {
	return e.Cause
}

// ExternalWriteError represents a failure of the audit-log sink during submission
type ExternalWriteError struct {
	Message string
	Cause   error
}

func (e *ExternalWriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("external write error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("external write error: %s", e.Message)
}

func (e *ExternalWriteError) Unwrap() error {
	return e.Cause
}
