// Package errs defines the typed error values raised by serena-mcp's
// internal components. They exist for diagnostic logging — every tool
// handler still surfaces failures to the JSON-RPC layer as a flat
// internal-error message, per the transport's error-handling contract.
package errs

import (
	"fmt"
	"time"
)

// Kind classifies the stage of the pipeline that produced an error.
type Kind string

const (
	KindPath     Kind = "path"
	KindExtract  Kind = "extract"
	KindBody     Kind = "body"
	KindEditor   Kind = "editor"
	KindSearch   Kind = "search"
	KindOnboard  Kind = "onboard"
	KindConfig   Kind = "config"
	KindInternal Kind = "internal"
)

// PathError reports a failure resolving a user-supplied path.
type PathError struct {
	Input      string
	Underlying error
	Timestamp  time.Time
}

func NewPathError(input string, err error) *PathError {
	return &PathError{Input: input, Underlying: err, Timestamp: time.Now()}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("resolve path %q: %v", e.Input, e.Underlying)
}

func (e *PathError) Unwrap() error { return e.Underlying }

// ExtractError reports a failure while extracting symbols from a file.
type ExtractError struct {
	FilePath   string
	Underlying error
	Timestamp  time.Time
}

func NewExtractError(path string, err error) *ExtractError {
	return &ExtractError{FilePath: path, Underlying: err, Timestamp: time.Now()}
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract symbols from %s: %v", e.FilePath, e.Underlying)
}

func (e *ExtractError) Unwrap() error { return e.Underlying }

// EditorError reports a failure performing a rename or body replacement.
type EditorError struct {
	Operation  string
	FilePath   string
	Underlying error
	Timestamp  time.Time
}

func NewEditorError(op, path string, err error) *EditorError {
	return &EditorError{Operation: op, FilePath: path, Underlying: err, Timestamp: time.Now()}
}

func (e *EditorError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.FilePath, e.Underlying)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Underlying)
}

func (e *EditorError) Unwrap() error { return e.Underlying }

// SearchError reports a failure during pattern search.
type SearchError struct {
	Pattern    string
	Underlying error
	Timestamp  time.Time
}

func NewSearchError(pattern string, err error) *SearchError {
	return &SearchError{Pattern: pattern, Underlying: err, Timestamp: time.Now()}
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search failed for pattern %q: %v", e.Pattern, e.Underlying)
}

func (e *SearchError) Unwrap() error { return e.Underlying }

// FileError reports a failure touching the filesystem.
type FileError struct {
	Operation  string
	Path       string
	Underlying error
	Timestamp  time.Time
}

func NewFileError(op, path string, err error) *FileError {
	return &FileError{Operation: op, Path: path, Underlying: err, Timestamp: time.Now()}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

func (e *FileError) Unwrap() error { return e.Underlying }

// ConfigError reports a startup configuration problem.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Underlying: err, Timestamp: time.Now()}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

func (e *ConfigError) Unwrap() error { return e.Underlying }

// MultiError aggregates several independent failures into one.
type MultiError struct {
	Errors []error
}

func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

func (e *MultiError) Unwrap() []error { return e.Errors }
