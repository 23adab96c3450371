package ingestion

import "fmt"

// LoadError represents a failure reading, validating or decoding an input document
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "document"
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
