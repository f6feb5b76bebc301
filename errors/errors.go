package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // deriving descriptors from Go types
	PhaseResolve Phase = "resolve" // class and member lookup
	PhaseAlloc   Phase = "alloc"   // object allocation and construction
	PhaseCall    Phase = "call"    // method invocation
	PhaseParse   Phase = "parse"   // descriptor and class-file parsing
	PhaseRuntime Phase = "runtime" // environment operations
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnsupported  Kind = "unsupported"
	KindTypeMismatch Kind = "type_mismatch"
	KindBadSignature Kind = "bad_signature"
	KindException    Kind = "exception"
	KindAllocation   Kind = "allocation"
	KindInvalidData  Kind = "invalid_data"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	JavaType string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.GoType != "" || e.JavaType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.JavaType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", runtime type ")
			b.WriteString(e.JavaType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("runtime type ")
			b.WriteString(e.JavaType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.JavaType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the module's error taxonomy

// ClassNotFound creates a class resolution error
func ClassNotFound(name string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindNotFound,
		JavaType: name,
		Detail:   "class not found",
	}
}

// MemberNotFound creates a member resolution error. Resolution matches
// name and full signature text exactly; a near-miss overload is still
// not found.
func MemberNotFound(class, name, sig string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindNotFound,
		JavaType: class,
		Detail:   fmt.Sprintf("no member %s%s", name, sig),
	}
}

// UnsupportedType creates an error for a Go type outside the closed
// mapping universe
func UnsupportedType(goType string, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindUnsupported,
		GoType: goType,
		Detail: detail,
	}
}

// BadShape creates an error for a Go func type that cannot serve as a
// callable signature
func BadShape(goType string, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindBadSignature,
		GoType: goType,
		Detail: detail,
	}
}

// TypeMismatch creates a kind-tag mismatch error
func TypeMismatch(phase Phase, goType, javaType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		GoType:   goType,
		JavaType: javaType,
	}
}

// Exception wraps a managed-runtime exception raised during a call.
// The pending exception state is left untouched for the caller.
func Exception(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindException,
		Detail: detail,
		Cause:  cause,
	}
}

// AllocationFailed creates an object allocation error
func AllocationFailed(class string, cause error) *Error {
	return &Error{
		Phase:    PhaseAlloc,
		Kind:     KindAllocation,
		JavaType: class,
		Detail:   "allocation failed",
		Cause:    cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error for descriptor or class-file input
func ParseFailed(input, detail string) *Error {
	if len(input) > 64 {
		input = input[:64] + "..."
	}
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("%s in %q", detail, input),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
