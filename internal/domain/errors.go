package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrSchema      = errors.New("schema error")
	ErrResource    = errors.New("resource error")
)

// ValidationError provides programmatic access to request-shape failures
// (malformed JSON bodies, unknown template ids). Step validation issues are
// returned as data and never travel as this error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SchemaError reports a key, column, rule or coordinate that does not match
// the declared schema. It is raised while loading configuration and when raw
// input names a key the schema does not declare.
type SchemaError struct {
	Subject string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrSchema.Error(), e.Subject, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewSchemaError builds a SchemaError with a formatted reason.
func NewSchemaError(subject, format string, args ...any) *SchemaError {
	return &SchemaError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

// ResourceError reports a document resource (canvas, font) that could not be
// loaded. Fatal resource errors abort composition and also match
// ErrUnavailable; recoverable ones are logged and composition continues.
type ResourceError struct {
	Resource string
	Fatal    bool
	Err      error
}

func (e *ResourceError) Error() string {
	kind := "recoverable"
	if e.Fatal {
		kind = "fatal"
	}
	return fmt.Sprintf("%s (%s) %s: %v", ErrResource.Error(), kind, e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() []error {
	errs := []error{ErrResource, e.Err}
	if e.Fatal {
		errs = append(errs, ErrUnavailable)
	}
	return errs
}
