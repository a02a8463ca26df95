package apperr

import (
	"fmt"
	"strings"
)

// Kind classifies why caller input was rejected.
type Kind string

const (
	KindUnrecognizedParameter Kind = "unrecognized_parameter"
	KindMissingParameter      Kind = "missing_parameter"
	KindInvalidValue          Kind = "invalid_value"
	KindBadURL                Kind = "bad_url"
)

// ValidationError is returned for malformed or unrecognized caller input.
// It always names the parameter key and the raw value that caused it.
type ValidationError struct {
	Kind    Kind
	Key     string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindUnrecognizedParameter, KindMissingParameter:
		b.WriteString("Key Error: ")
		b.WriteString(e.Key)
	case KindBadURL:
		b.WriteString("Bad URL: ")
		b.WriteString(e.Value)
	default:
		fmt.Fprintf(&b, "Value Error for key '%s': %s", e.Key, e.Value)
	}
	if e.Message != "" {
		b.WriteString(" - ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewUnrecognized(keys ...string) *ValidationError {
	return &ValidationError{Kind: KindUnrecognizedParameter, Key: strings.Join(keys, ", ")}
}

func NewMissing(keys ...string) *ValidationError {
	return &ValidationError{Kind: KindMissingParameter, Key: strings.Join(keys, ", ")}
}

func NewValue(key, value, msg string) *ValidationError {
	return &ValidationError{Kind: KindInvalidValue, Key: key, Value: value, Message: msg}
}

func NewValueWrap(key, value, msg string, err error) *ValidationError {
	return &ValidationError{Kind: KindInvalidValue, Key: key, Value: value, Message: msg, Err: err}
}

func NewBadURL(url string, err error) *ValidationError {
	return &ValidationError{Kind: KindBadURL, Value: url, Err: err}
}

// QueryBuildError signals that the assembler received a parameter shape it
// cannot handle. It is a server-side defect, not a user input problem.
type QueryBuildError struct {
	Step  string
	Cause error
}

func (e *QueryBuildError) Error() string {
	return "Query build error"
}

// Details returns the step and underlying cause, for logs only.
func (e *QueryBuildError) Details() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Cause)
}

func (e *QueryBuildError) Unwrap() error {
	return e.Cause
}

func NewQueryBuild(step string, cause error) *QueryBuildError {
	return &QueryBuildError{Step: step, Cause: cause}
}
