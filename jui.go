package jui

import "math"

// Ref is an opaque handle to an object owned by the managed runtime.
// The zero value is the null reference.
type Ref uint64

// NullRef is the null object reference.
const NullRef Ref = 0

// IsNull reports whether the reference is null.
func (r Ref) IsNull() bool { return r == NullRef }

// MethodID identifies a resolved method within its declaring class.
// IDs are stable for the lifetime of the environment and are never
// re-resolved once bound to a callable.
type MethodID uint64

// RefKind selects the lifetime class of a reference.
type RefKind uint8

const (
	RefLocal RefKind = iota
	RefGlobal
	RefWeakGlobal
)

// CallKind tags a boundary value and selects the per-kind call operation
// used to decode a method's result. There is one tag per primitive kind,
// one shared tag for all reference kinds, and one for void.
type CallKind uint8

const (
	CallVoid CallKind = iota
	CallBoolean
	CallByte
	CallChar
	CallShort
	CallInt
	CallLong
	CallFloat
	CallDouble
	CallObject
)

var callKindNames = [...]string{
	CallVoid:    "void",
	CallBoolean: "boolean",
	CallByte:    "byte",
	CallChar:    "char",
	CallShort:   "short",
	CallInt:     "int",
	CallLong:    "long",
	CallFloat:   "float",
	CallDouble:  "double",
	CallObject:  "object",
}

func (k CallKind) String() string {
	if int(k) < len(callKindNames) {
		return callKindNames[k]
	}
	return "unknown"
}

// JValue is the generic single-word value union passed across the
// native/managed boundary. Scalar payloads live in bits; reference
// payloads live in ref. The kind tag records which accessor is valid.
type JValue struct {
	bits uint64
	ref  Ref
	kind CallKind
}

// Void is the absent value returned by void calls.
func Void() JValue { return JValue{kind: CallVoid} }

func Bool(v bool) JValue {
	var b uint64
	if v {
		b = 1
	}
	return JValue{kind: CallBoolean, bits: b}
}

func Byte(v int8) JValue      { return JValue{kind: CallByte, bits: uint64(uint8(v))} }
func Char(v uint16) JValue    { return JValue{kind: CallChar, bits: uint64(v)} }
func Short(v int16) JValue    { return JValue{kind: CallShort, bits: uint64(uint16(v))} }
func Int(v int32) JValue      { return JValue{kind: CallInt, bits: uint64(uint32(v))} }
func Long(v int64) JValue     { return JValue{kind: CallLong, bits: uint64(v)} }
func Float(v float32) JValue  { return JValue{kind: CallFloat, bits: uint64(math.Float32bits(v))} }
func Double(v float64) JValue { return JValue{kind: CallDouble, bits: math.Float64bits(v)} }
func Object(r Ref) JValue     { return JValue{kind: CallObject, ref: r} }

// Kind returns the value's tag.
func (v JValue) Kind() CallKind { return v.kind }

func (v JValue) Bool() bool      { return v.bits != 0 }
func (v JValue) Byte() int8      { return int8(uint8(v.bits)) }
func (v JValue) Char() uint16    { return uint16(v.bits) }
func (v JValue) Short() int16    { return int16(uint16(v.bits)) }
func (v JValue) Int() int32      { return int32(uint32(v.bits)) }
func (v JValue) Long() int64     { return int64(v.bits) }
func (v JValue) Float() float32  { return math.Float32frombits(uint32(v.bits)) }
func (v JValue) Double() float64 { return math.Float64frombits(v.bits) }
func (v JValue) Object() Ref     { return v.ref }

// Env is the embedding interface of the managed runtime. An Env is bound
// to a single native thread and every operation is a direct synchronous
// call; callers sequence operations themselves. All recoverable failures
// are returned immediately, never retried. A method-call error means the
// managed runtime raised an exception; this layer does not inspect or
// clear that state.
type Env interface {
	// FindClass resolves a class by its slash-separated qualified name.
	FindClass(name string) (Ref, error)

	// NewRef promotes ref to the requested lifetime kind.
	NewRef(kind RefKind, ref Ref) (Ref, error)
	// DeleteRef releases a reference previously produced by NewRef or
	// returned from a call. Releasing twice is undefined behavior.
	DeleteRef(kind RefKind, ref Ref)

	// AllocObject allocates an instance without running any constructor.
	AllocObject(class Ref) (Ref, error)
	// NewObject allocates an instance and runs the constructor identified
	// by method with the given arguments.
	NewObject(class Ref, method MethodID, args []JValue) (Ref, error)

	// GetMethodID resolves an instance method by exact name and exact
	// serialized signature text.
	GetMethodID(class Ref, name, sig string) (MethodID, error)
	// GetStaticMethodID is GetMethodID for static members.
	GetStaticMethodID(class Ref, name, sig string) (MethodID, error)

	// CallMethod invokes an instance method, decoding the result with the
	// operation selected by kind.
	CallMethod(kind CallKind, obj Ref, method MethodID, args []JValue) (JValue, error)
	// CallStaticMethod is CallMethod without a receiver.
	CallStaticMethod(kind CallKind, class Ref, method MethodID, args []JValue) (JValue, error)

	// NewStringUTF creates a string object from UTF-8 content.
	NewStringUTF(utf8 []byte) (Ref, error)
	// NewString creates a string object from UTF-16 code units.
	NewString(utf16 []uint16) (Ref, error)

	// GetStringUTFLength returns the UTF-8 length of a string object.
	GetStringUTFLength(str Ref) int
	// GetStringUTFChars pins and returns the UTF-8 backing buffer of a
	// string object. Every successful call must be paired with exactly one
	// ReleaseStringUTFChars.
	GetStringUTFChars(str Ref) ([]byte, error)
	ReleaseStringUTFChars(str Ref, chars []byte)

	// GetStringChars pins and returns the UTF-16 backing buffer. Pairs
	// with ReleaseStringChars the same way.
	GetStringChars(str Ref) ([]uint16, error)
	ReleaseStringChars(str Ref, chars []uint16)
}
