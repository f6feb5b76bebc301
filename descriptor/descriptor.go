package descriptor

import "strings"

// Kind discriminates the variants of a type descriptor.
type Kind uint8

const (
	KindByte Kind = iota
	KindChar
	KindInt
	KindLong
	KindShort
	KindFloat
	KindDouble
	KindBoolean
	KindVoid
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindByte:    "byte",
	KindChar:    "char",
	KindInt:     "int",
	KindLong:    "long",
	KindShort:   "short",
	KindFloat:   "float",
	KindDouble:  "double",
	KindBoolean: "boolean",
	KindVoid:    "void",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether the kind is one of the eight primitive
// value kinds (void is not a value).
func (k Kind) IsPrimitive() bool {
	return k <= KindBoolean
}

// Well-known class names.
const (
	StringClass = "java/lang/String"
	ObjectClass = "java/lang/Object"
)

// Descriptor describes one value type in the managed runtime's type
// system. Descriptors are immutable values; compare them with Equal.
// The zero value is the byte descriptor; prefer the constructors.
type Descriptor struct {
	class string
	elem  *Descriptor
	kind  Kind
}

func Byte() Descriptor    { return Descriptor{kind: KindByte} }
func Char() Descriptor    { return Descriptor{kind: KindChar} }
func Int() Descriptor     { return Descriptor{kind: KindInt} }
func Long() Descriptor    { return Descriptor{kind: KindLong} }
func Short() Descriptor   { return Descriptor{kind: KindShort} }
func Float() Descriptor   { return Descriptor{kind: KindFloat} }
func Double() Descriptor  { return Descriptor{kind: KindDouble} }
func Boolean() Descriptor { return Descriptor{kind: KindBoolean} }
func Void() Descriptor    { return Descriptor{kind: KindVoid} }

// ObjectOf returns the descriptor of an object reference type. The class
// name must be fully qualified and slash separated, e.g. "java/lang/String".
func ObjectOf(className string) Descriptor {
	return Descriptor{kind: KindObject, class: className}
}

// ArrayOf returns the descriptor of an array whose elements are elem.
func ArrayOf(elem Descriptor) Descriptor {
	e := elem
	return Descriptor{kind: KindArray, elem: &e}
}

// Kind returns the descriptor's variant.
func (d Descriptor) Kind() Kind { return d.kind }

// ClassName returns the qualified class name of an object descriptor and
// "" for every other kind.
func (d Descriptor) ClassName() string { return d.class }

// Elem returns the element descriptor of an array descriptor. It panics
// on any other kind.
func (d Descriptor) Elem() Descriptor {
	if d.kind != KindArray {
		panic("descriptor: Elem on non-array descriptor " + d.kind.String())
	}
	return *d.elem
}

// IsString reports whether d describes the runtime's string class. This
// is the single polymorphic case in type mapping: string-typed objects
// cross the boundary through the managed String adapter.
func (d Descriptor) IsString() bool {
	return d.kind == KindObject && d.class == StringClass
}

// Equal reports structural equality: same variant, same payload.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case KindObject:
		return d.class == o.class
	case KindArray:
		return d.elem.Equal(*o.elem)
	default:
		return true
	}
}

// String serializes the descriptor to the runtime's exact wire grammar:
// single letters for primitives and void, "L<name>;" for objects and
// "[<elem>" for arrays.
func (d Descriptor) String() string {
	var b strings.Builder
	d.appendTo(&b)
	return b.String()
}

var primitiveLetters = [...]byte{
	KindByte:    'B',
	KindChar:    'C',
	KindInt:     'I',
	KindLong:    'J',
	KindShort:   'S',
	KindFloat:   'F',
	KindDouble:  'D',
	KindBoolean: 'Z',
	KindVoid:    'V',
}

func (d Descriptor) appendTo(b *strings.Builder) {
	switch d.kind {
	case KindObject:
		b.WriteByte('L')
		b.WriteString(d.class)
		b.WriteByte(';')
	case KindArray:
		b.WriteByte('[')
		d.elem.appendTo(b)
	default:
		b.WriteByte(primitiveLetters[d.kind])
	}
}

// Method is a full call signature: ordered parameter descriptors plus a
// return descriptor. Parameter order is call-signature order.
type Method struct {
	params []Descriptor
	ret    Descriptor
}

// NewMethod builds a method descriptor. The params slice is copied.
func NewMethod(ret Descriptor, params ...Descriptor) Method {
	var p []Descriptor
	if len(params) > 0 {
		p = make([]Descriptor, len(params))
		copy(p, params)
	}
	return Method{params: p, ret: ret}
}

// NumParams returns the number of parameters.
func (m Method) NumParams() int { return len(m.params) }

// Param returns the i-th parameter descriptor.
func (m Method) Param(i int) Descriptor { return m.params[i] }

// Return returns the return descriptor.
func (m Method) Return() Descriptor { return m.ret }

// Equal reports structural equality of signatures.
func (m Method) Equal(o Method) bool {
	if len(m.params) != len(o.params) || !m.ret.Equal(o.ret) {
		return false
	}
	for i := range m.params {
		if !m.params[i].Equal(o.params[i]) {
			return false
		}
	}
	return true
}

// String serializes the signature as "(" + parameter encodings + ")" +
// return encoding, with no separators. Member resolution matches this
// text byte for byte.
func (m Method) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range m.params {
		p.appendTo(&b)
	}
	b.WriteByte(')')
	m.ret.appendTo(&b)
	return b.String()
}
