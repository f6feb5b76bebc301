package reflector

import (
	"reflect"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
)

// Typed is implemented by Go types that carry a fixed runtime type
// descriptor: Object, *String and generated wrapper types. The method
// must be callable on a zero value.
type Typed interface {
	TypeDescriptor() descriptor.Descriptor
}

// refHolder is satisfied by every object-kind native representation.
type refHolder interface {
	JRef() jui.Ref
}

var (
	objectType = reflect.TypeOf(Object{})
	stringType = reflect.TypeOf((*String)(nil))
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	typedType  = reflect.TypeOf((*Typed)(nil)).Elem()
)

// DescriptorOf maps a Go type to its runtime type descriptor. The type
// universe is closed: the eight fixed-width primitive Go types, Object,
// *String and Typed implementors. Anything else is rejected here, before
// any member can be resolved against it.
func DescriptorOf(t reflect.Type) (descriptor.Descriptor, error) {
	switch t.Kind() {
	case reflect.Int8:
		return descriptor.Byte(), nil
	case reflect.Uint16:
		return descriptor.Char(), nil
	case reflect.Int32:
		return descriptor.Int(), nil
	case reflect.Int64:
		return descriptor.Long(), nil
	case reflect.Int16:
		return descriptor.Short(), nil
	case reflect.Float32:
		return descriptor.Float(), nil
	case reflect.Float64:
		return descriptor.Double(), nil
	case reflect.Bool:
		return descriptor.Boolean(), nil
	}

	if t.Implements(typedType) {
		return reflect.Zero(t).Interface().(Typed).TypeDescriptor(), nil
	}

	return descriptor.Descriptor{}, errors.UnsupportedType(t.String(),
		"not in the closed mapping universe (fixed-width primitives, Object, *String, Typed implementors)")
}

// NativeType maps a descriptor to the in-process Go type that holds a
// decoded value of that kind. String-class objects map to *String; every
// other object or array maps to the opaque Object handle. This is the
// inverse direction of DescriptorOf up to wrapper types.
func NativeType(d descriptor.Descriptor) (reflect.Type, error) {
	switch d.Kind() {
	case descriptor.KindByte:
		return reflect.TypeOf(int8(0)), nil
	case descriptor.KindChar:
		return reflect.TypeOf(uint16(0)), nil
	case descriptor.KindInt:
		return reflect.TypeOf(int32(0)), nil
	case descriptor.KindLong:
		return reflect.TypeOf(int64(0)), nil
	case descriptor.KindShort:
		return reflect.TypeOf(int16(0)), nil
	case descriptor.KindFloat:
		return reflect.TypeOf(float32(0)), nil
	case descriptor.KindDouble:
		return reflect.TypeOf(float64(0)), nil
	case descriptor.KindBoolean:
		return reflect.TypeOf(false), nil
	case descriptor.KindObject:
		if d.IsString() {
			return stringType, nil
		}
		return objectType, nil
	case descriptor.KindArray:
		return objectType, nil
	default:
		return nil, errors.UnsupportedType("", "void has no native representation")
	}
}

// CallKindFor maps a return descriptor to the per-kind call operation
// used to decode it: one tag per primitive kind, one shared tag for all
// reference kinds, one for void.
func CallKindFor(d descriptor.Descriptor) jui.CallKind {
	switch d.Kind() {
	case descriptor.KindByte:
		return jui.CallByte
	case descriptor.KindChar:
		return jui.CallChar
	case descriptor.KindInt:
		return jui.CallInt
	case descriptor.KindLong:
		return jui.CallLong
	case descriptor.KindShort:
		return jui.CallShort
	case descriptor.KindFloat:
		return jui.CallFloat
	case descriptor.KindDouble:
		return jui.CallDouble
	case descriptor.KindBoolean:
		return jui.CallBoolean
	case descriptor.KindObject, descriptor.KindArray:
		return jui.CallObject
	default:
		return jui.CallVoid
	}
}

// packerFor compiles the native-to-boundary direction for one argument.
func packerFor(d descriptor.Descriptor, t reflect.Type) (func(reflect.Value) jui.JValue, error) {
	switch d.Kind() {
	case descriptor.KindByte:
		return func(v reflect.Value) jui.JValue { return jui.Byte(int8(v.Int())) }, nil
	case descriptor.KindChar:
		return func(v reflect.Value) jui.JValue { return jui.Char(uint16(v.Uint())) }, nil
	case descriptor.KindInt:
		return func(v reflect.Value) jui.JValue { return jui.Int(int32(v.Int())) }, nil
	case descriptor.KindLong:
		return func(v reflect.Value) jui.JValue { return jui.Long(v.Int()) }, nil
	case descriptor.KindShort:
		return func(v reflect.Value) jui.JValue { return jui.Short(int16(v.Int())) }, nil
	case descriptor.KindFloat:
		return func(v reflect.Value) jui.JValue { return jui.Float(float32(v.Float())) }, nil
	case descriptor.KindDouble:
		return func(v reflect.Value) jui.JValue { return jui.Double(v.Float()) }, nil
	case descriptor.KindBoolean:
		return func(v reflect.Value) jui.JValue { return jui.Bool(v.Bool()) }, nil
	case descriptor.KindObject, descriptor.KindArray:
		return func(v reflect.Value) jui.JValue {
			if v.Kind() == reflect.Ptr && v.IsNil() {
				return jui.Object(jui.NullRef)
			}
			return jui.Object(v.Interface().(refHolder).JRef())
		}, nil
	default:
		return nil, errors.UnsupportedType(t.String(), "void argument")
	}
}

// unpackerFor compiles the boundary-to-native direction for the return
// value. String-class results route through the adapter's borrowed
// constructor; releasing that borrow is the caller's obligation.
func unpackerFor(d descriptor.Descriptor, t reflect.Type) (func(jui.Env, jui.JValue) (reflect.Value, error), error) {
	switch d.Kind() {
	case descriptor.KindByte:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Byte()).Convert(t), nil
		}, nil
	case descriptor.KindChar:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Char()).Convert(t), nil
		}, nil
	case descriptor.KindInt:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Int()).Convert(t), nil
		}, nil
	case descriptor.KindLong:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Long()).Convert(t), nil
		}, nil
	case descriptor.KindShort:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Short()).Convert(t), nil
		}, nil
	case descriptor.KindFloat:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Float()).Convert(t), nil
		}, nil
	case descriptor.KindDouble:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Double()).Convert(t), nil
		}, nil
	case descriptor.KindBoolean:
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return reflect.ValueOf(v.Bool()).Convert(t), nil
		}, nil
	case descriptor.KindObject, descriptor.KindArray:
		if t == stringType {
			return func(env jui.Env, v jui.JValue) (reflect.Value, error) {
				s, err := StringFromObject(env, Object{Ref: v.Object()})
				if err != nil {
					return reflect.Value{}, err
				}
				return reflect.ValueOf(s), nil
			}, nil
		}
		return func(_ jui.Env, v jui.JValue) (reflect.Value, error) {
			return objectValue(t, v.Object())
		}, nil
	default:
		return nil, errors.UnsupportedType(t.String(), "void result has no value")
	}
}

// objectValue builds a value of the object-kind type t holding ref. For
// wrapper types this fills the embedded Object field.
func objectValue(t reflect.Type, ref jui.Ref) (reflect.Value, error) {
	if t == objectType {
		return reflect.ValueOf(Object{Ref: ref}), nil
	}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type == objectType {
				v := reflect.New(t).Elem()
				v.Field(i).Set(reflect.ValueOf(Object{Ref: ref}))
				return v, nil
			}
		}
	}
	return reflect.Value{}, errors.UnsupportedType(t.String(), "object result type does not embed reflector.Object")
}
