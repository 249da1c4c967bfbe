package util

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable marks a document or stop-word stream that could not
	// be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDestinationUnavailable marks a report destination that could not be
	// opened or written.
	ErrDestinationUnavailable = errors.New("destination unavailable")
)

// SourceError reports a failure to read one of the pipeline inputs.
type SourceError struct {
	// Name is the role of the input, e.g. "document" or "stop words".
	Name string
	// Path is the file the input was read from, empty for in-memory streams.
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Name, e.Path, ErrSourceUnavailable, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Name, ErrSourceUnavailable, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// DestinationError reports a failure to write the report.
type DestinationError struct {
	Path string
	Err  error
}

func (e *DestinationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("report %s: %s: %v", e.Path, ErrDestinationUnavailable, e.Err)
	}
	return fmt.Sprintf("report: %s: %v", ErrDestinationUnavailable, e.Err)
}

func (e *DestinationError) Unwrap() error { return e.Err }

func (e *DestinationError) Is(target error) bool { return target == ErrDestinationUnavailable }
