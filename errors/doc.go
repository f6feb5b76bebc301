// Package errors provides structured error types for the binding layer.
//
// Every error carries a Phase (where in processing it occurred) and a
// Kind (what went wrong), so callers can match with errors.Is against a
// prototype without string comparison. All failures propagate immediately
// to the direct caller; nothing in this module retries, because every
// failure here is either a programming mistake (wrong signature, wrong
// type) or a managed-runtime exception the caller must handle.
package errors
