package reflector

import (
	"unicode/utf16"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
)

// String adapts runtime string objects to Go. An adapter is in one of
// two states:
//
//   - owned: created from Go content via NewString/NewStringUTF16. The
//     runtime string is a fresh independent object and nothing needs to
//     be released.
//   - borrowed: wrapped around an existing string object via
//     StringFromObject, holding the runtime's pinned UTF-8 buffer. A
//     borrowed adapter must be released exactly once; a missing release
//     leaks the pinned buffer, and a second release is undefined behavior
//     at the environment boundary.
//
// Release on an owned adapter returns without reaching the environment,
// so the owned state cannot trip the borrowed contract. For a borrow
// bounded to one scope, prefer WithUTFChars.
type String struct {
	env      jui.Env
	ref      jui.Ref
	utf8     []byte
	borrowed bool
}

// NewString creates a fresh runtime string from Go UTF-8 content. The
// adapter is owned; no release is needed.
func NewString(env jui.Env, s string) (*String, error) {
	ref, err := env.NewStringUTF([]byte(s))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseAlloc, errors.KindAllocation, err, "new string")
	}
	return &String{env: env, ref: ref, utf8: []byte(s)}, nil
}

// NewStringUTF16 creates a fresh runtime string from UTF-16 code units.
func NewStringUTF16(env jui.Env, units []uint16) (*String, error) {
	ref, err := env.NewString(units)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseAlloc, errors.KindAllocation, err, "new string")
	}
	return &String{env: env, ref: ref, utf8: []byte(string(utf16.Decode(units)))}, nil
}

// StringFromObject wraps an existing runtime string object, pinning its
// UTF-8 backing buffer. The adapter is borrowed: the caller owns exactly
// one Release.
func StringFromObject(env jui.Env, obj Object) (*String, error) {
	chars, err := env.GetStringUTFChars(obj.Ref)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCall, errors.KindInvalidData, err, "get string chars")
	}
	return &String{env: env, ref: obj.Ref, utf8: chars, borrowed: true}, nil
}

// Borrowed reports whether the adapter holds a pinned runtime buffer.
func (s *String) Borrowed() bool { return s.borrowed }

// Release unpins the borrowed buffer. On an owned adapter this is a
// no-op that never reaches the environment. The buffer is invalid after
// release.
func (s *String) Release() {
	if !s.borrowed {
		return
	}
	s.borrowed = false
	s.env.ReleaseStringUTFChars(s.ref, s.utf8)
}

// String returns the UTF-8 content as a Go string.
func (s *String) String() string { return string(s.utf8) }

// Bytes returns the UTF-8 content. For a borrowed adapter this is the
// pinned runtime buffer itself; it must not be used after Release.
func (s *String) Bytes() []byte { return s.utf8 }

// Len returns the UTF-8 length in bytes.
func (s *String) Len() int { return len(s.utf8) }

// Object returns the underlying string object.
func (s *String) Object() Object { return Object{Ref: s.ref} }

// JRef returns the boundary reference; nil-safe.
func (s *String) JRef() jui.Ref {
	if s == nil {
		return jui.NullRef
	}
	return s.ref
}

// ToJValue projects the adapter to a boundary reference value for use as
// a call argument.
func (s *String) ToJValue() jui.JValue { return jui.Object(s.JRef()) }

// TypeDescriptor marks *String as the string-class native type; nil-safe.
func (s *String) TypeDescriptor() descriptor.Descriptor {
	return descriptor.ObjectOf(descriptor.StringClass)
}

// WithUTFChars pins obj's UTF-8 buffer, passes it to fn and releases it
// on every exit path, including a panic in fn. Use this instead of
// StringFromObject when the borrow does not need to outlive one scope.
func WithUTFChars(env jui.Env, obj Object, fn func([]byte) error) error {
	chars, err := env.GetStringUTFChars(obj.Ref)
	if err != nil {
		return errors.Wrap(errors.PhaseCall, errors.KindInvalidData, err, "get string chars")
	}
	defer env.ReleaseStringUTFChars(obj.Ref, chars)
	return fn(chars)
}
