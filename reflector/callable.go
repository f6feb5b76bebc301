package reflector

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
)

// Method is an instance method bound to a resolved member id. The func
// type F fixes the call signature permanently: it must be
// func(recv, args...) (R, error), or func(recv, args...) error for void
// returns, where recv is any object-kind type. A Method holds its Class
// non-owning and must not be used after the Class is closed.
type Method[F any] struct {
	fn    F
	class *Class
	name  string
	sig   *signature
	id    jui.MethodID
}

// GetMethod derives the member signature from F, resolves the member by
// exact name and signature text, and binds the id permanently. Overload
// selection is by signature text only; a type outside the mapping
// universe fails here with an unsupported-type error.
func GetMethod[F any](c *Class, name string) (*Method[F], error) {
	ft := reflect.TypeOf((*F)(nil)).Elem()
	sig, err := compileSignature(ft, shapeMethod)
	if err != nil {
		return nil, err
	}

	id, err := c.r.env.GetMethodID(c.ref, name, sig.text)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err,
			"resolve "+c.name+"."+name+sig.text)
	}

	Logger().Debug("method bound",
		zap.String("class", c.name), zap.String("name", name), zap.String("sig", sig.text))

	m := &Method[F]{class: c, name: name, sig: sig, id: id}
	m.fn = reflect.MakeFunc(ft, m.invoke).Interface().(F)
	return m, nil
}

func (m *Method[F]) invoke(in []reflect.Value) []reflect.Value {
	env := m.class.r.env
	recv := in[0].Interface().(refHolder).JRef()
	res, err := env.CallMethod(m.sig.callKind, recv, m.id, m.sig.packArgs(in, 1))
	return m.sig.results(env, res, err)
}

// Fn returns the strongly typed callable. Any failure from the per-kind
// call operation, including a pending managed exception, comes back as
// the error result untranslated.
func (m *Method[F]) Fn() F { return m.fn }

// Name returns the bound member name.
func (m *Method[F]) Name() string { return m.name }

// Descriptor returns the derived method descriptor.
func (m *Method[F]) Descriptor() descriptor.Method { return m.sig.desc }

// Signature returns the serialized signature text the member was
// resolved against.
func (m *Method[F]) Signature() string { return m.sig.text }

// StaticMethod is a static method bound to a resolved member id. F is
// func(args...) (R, error), or func(args...) error for void returns.
type StaticMethod[F any] struct {
	fn    F
	class *Class
	name  string
	sig   *signature
	id    jui.MethodID
}

// GetStaticMethod is GetMethod for static members; F carries no receiver.
func GetStaticMethod[F any](c *Class, name string) (*StaticMethod[F], error) {
	ft := reflect.TypeOf((*F)(nil)).Elem()
	sig, err := compileSignature(ft, shapeStatic)
	if err != nil {
		return nil, err
	}

	id, err := c.r.env.GetStaticMethodID(c.ref, name, sig.text)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err,
			"resolve static "+c.name+"."+name+sig.text)
	}

	Logger().Debug("static method bound",
		zap.String("class", c.name), zap.String("name", name), zap.String("sig", sig.text))

	m := &StaticMethod[F]{class: c, name: name, sig: sig, id: id}
	m.fn = reflect.MakeFunc(ft, m.invoke).Interface().(F)
	return m, nil
}

func (m *StaticMethod[F]) invoke(in []reflect.Value) []reflect.Value {
	env := m.class.r.env
	res, err := env.CallStaticMethod(m.sig.callKind, m.class.ref, m.id, m.sig.packArgs(in, 0))
	return m.sig.results(env, res, err)
}

// Fn returns the strongly typed callable.
func (m *StaticMethod[F]) Fn() F { return m.fn }

// Name returns the bound member name.
func (m *StaticMethod[F]) Name() string { return m.name }

// Descriptor returns the derived method descriptor.
func (m *StaticMethod[F]) Descriptor() descriptor.Method { return m.sig.desc }

// Signature returns the serialized signature text.
func (m *StaticMethod[F]) Signature() string { return m.sig.text }

// Constructor is a constructor bound to a resolved <init> member id.
// F is func(args...) (Object, error); the derived descriptor always has
// a void return.
type Constructor[F any] struct {
	fn    F
	class *Class
	sig   *signature
	id    jui.MethodID
}

const ctorName = "<init>"

// GetConstructor resolves the constructor matching F's parameter list.
func GetConstructor[F any](c *Class) (*Constructor[F], error) {
	ft := reflect.TypeOf((*F)(nil)).Elem()
	sig, err := compileSignature(ft, shapeCtor)
	if err != nil {
		return nil, err
	}

	id, err := c.r.env.GetMethodID(c.ref, ctorName, sig.text)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseResolve, errors.KindNotFound, err,
			"resolve "+c.name+"."+ctorName+sig.text)
	}

	Logger().Debug("constructor bound",
		zap.String("class", c.name), zap.String("sig", sig.text))

	ctor := &Constructor[F]{class: c, sig: sig, id: id}
	ctor.fn = reflect.MakeFunc(ft, ctor.invoke).Interface().(F)
	return ctor, nil
}

func (ctor *Constructor[F]) invoke(in []reflect.Value) []reflect.Value {
	env := ctor.class.r.env
	ref, err := env.NewObject(ctor.class.ref, ctor.id, ctor.sig.packArgs(in, 0))
	if err != nil {
		return []reflect.Value{reflect.Zero(objectType), errValue(err)}
	}
	return []reflect.Value{
		reflect.ValueOf(Object{Ref: ref, Class: ctor.class}),
		nilError,
	}
}

// Fn returns the strongly typed callable.
func (ctor *Constructor[F]) Fn() F { return ctor.fn }

// Descriptor returns the derived method descriptor.
func (ctor *Constructor[F]) Descriptor() descriptor.Method { return ctor.sig.desc }

// Signature returns the serialized signature text.
func (ctor *Constructor[F]) Signature() string { return ctor.sig.text }
