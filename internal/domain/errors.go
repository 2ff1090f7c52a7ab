package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input. The engine coerces missing numeric
// fields to zero and missing dates to "no value" instead of failing a build,
// so this surfaces only at the request boundary.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// RenderError means a section could not compute its layout. Fatal to the
// build; no partial artifact is returned.
type RenderError struct {
	Section string
	Err     error
}

func (e RenderError) Error() string {
	if e.Section == "" {
		return "render failed"
	}
	return fmt.Sprintf("render %s failed", e.Section)
}

func (e RenderError) Unwrap() error { return e.Err }

// EmitError means the PDF backend could not produce the final artifact.
// Fatal; carries the backend cause.
type EmitError struct {
	Err error
}

func (e EmitError) Error() string {
	if e.Err == nil {
		return "emit failed"
	}
	return fmt.Sprintf("emit failed: %v", e.Err)
}

func (e EmitError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target RenderError
	return errors.As(err, &target)
}

func IsEmit(err error) bool {
	var target EmitError
	return errors.As(err, &target)
}
