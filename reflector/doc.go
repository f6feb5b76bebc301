// Package reflector builds strongly typed callables over the untyped
// embedding interface.
//
// A Reflector resolves classes; a Class resolves members against a
// signature derived from a Go func type supplied at compile time:
//
//	type JInteger struct{ reflector.Object }
//
//	func (JInteger) TypeDescriptor() descriptor.Descriptor {
//		return descriptor.ObjectOf("java/lang/Integer")
//	}
//
//	cls, _ := r.GetClass("java/lang/Integer")
//	valueOf, _ := reflector.GetStaticMethod[func(int32) (JInteger, error)](cls, "valueOf")
//	boxed, _ := valueOf.Fn()(42) // resolved against the exact text (I)Ljava/lang/Integer;
//
// The func type fixes everything: the descriptor text used for member
// resolution, the packing of each argument into the boundary value
// union, the per-kind call operation for the return, and the decoding of
// the result. Once a callable is built its member id and signature are
// permanent.
//
// Type mapping is total over a closed universe: int8, uint16, int32,
// int64, int16, float32, float64 and bool map to the eight primitive
// kinds; Object (and any struct embedding it that implements Typed) maps
// to an object reference; *String maps to the runtime's string class and
// is the mapping's single polymorphic case.
package reflector
