// Package errors provides custom error types for the bookshelf system.
// These errors enable programmatic error checking with errors.Is and
// errors.As, so the presentation layer can decide how to surface each
// failure without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As and Is re-export the standard library helpers so callers need only
// one errors import.
var (
	As = errors.As
	Is = errors.Is
)

// Common sentinel errors for the bookshelf system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange indicates a positional index outside the catalog
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPersistence indicates the durable store could not be read or written
	ErrPersistence = errors.New("persistence failure")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IndexOutOfRangeError reports a positional index that does not address a
// record. Positions shift after every removal, so a stale index is the
// usual cause.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface
func (e *IndexOutOfRangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d out of range: catalog is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is implements errors.Is support
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NewIndexOutOfRangeError creates a new IndexOutOfRangeError
func NewIndexOutOfRangeError(index, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Index: index, Len: length}
}

// PersistenceError represents a failed load or save of the durable store.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s library %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s library: %v", e.Op, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op, path string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Path: path, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "sync", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "update", "delete", "load"
	Resource  string // "book", "library", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIndexOutOfRange checks if an error is a stale or invalid position
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsPersistence checks if an error came from the durable store
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}
