package reflector

import (
	"reflect"
	"sync"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
)

// shape distinguishes the three callable forms a Go func type can take.
type shape uint8

const (
	shapeMethod shape = iota // func(recv, args...) (R, error) | func(recv, args...) error
	shapeStatic              // func(args...) (R, error) | func(args...) error
	shapeCtor                // func(args...) (Object, error)
)

// signature is a Go func type compiled against the descriptor grammar:
// the derived method descriptor, its serialized text, and the per-slot
// boundary codecs. Compiled once per (shape, func type) and cached; the
// binding to a callable is permanent.
type signature struct {
	fnType   reflect.Type
	desc     descriptor.Method
	text     string
	args     []argCodec // receiver excluded
	unpack   func(jui.Env, jui.JValue) (reflect.Value, error) // nil for void
	retType  reflect.Type
	callKind jui.CallKind
}

type argCodec struct {
	pack func(reflect.Value) jui.JValue
}

type sigKey struct {
	t  reflect.Type
	sh shape
}

var sigCache sync.Map // sigKey -> *signature

// compileSignature derives a method descriptor and boundary codecs from
// a Go func type. A type outside the closed mapping universe fails here,
// before any member id can be bound to it; once compiled, no call through
// the signature can mismatch it.
func compileSignature(ft reflect.Type, sh shape) (*signature, error) {
	key := sigKey{t: ft, sh: sh}
	if cached, ok := sigCache.Load(key); ok {
		return cached.(*signature), nil
	}

	sig, err := compile(ft, sh)
	if err != nil {
		return nil, err
	}

	sigCache.Store(key, sig)
	return sig, nil
}

func compile(ft reflect.Type, sh shape) (*signature, error) {
	if ft.Kind() != reflect.Func {
		return nil, errors.BadShape(ft.String(), "callable signature must be a func type")
	}
	if ft.IsVariadic() {
		return nil, errors.BadShape(ft.String(), "variadic signatures are not supported")
	}

	// Every shape ends in an error result.
	if ft.NumOut() < 1 || ft.NumOut() > 2 || ft.Out(ft.NumOut()-1) != errorType {
		return nil, errors.BadShape(ft.String(), "last result must be error")
	}

	sig := &signature{fnType: ft}

	firstArg := 0
	if sh == shapeMethod {
		if ft.NumIn() < 1 {
			return nil, errors.BadShape(ft.String(), "instance method needs a receiver parameter")
		}
		recvDesc, err := DescriptorOf(ft.In(0))
		if err != nil {
			return nil, err
		}
		if k := recvDesc.Kind(); k != descriptor.KindObject && k != descriptor.KindArray {
			return nil, errors.BadShape(ft.String(), "receiver parameter must be object-kind")
		}
		firstArg = 1
	}

	var params []descriptor.Descriptor
	for i := firstArg; i < ft.NumIn(); i++ {
		d, err := DescriptorOf(ft.In(i))
		if err != nil {
			return nil, err
		}
		pack, err := packerFor(d, ft.In(i))
		if err != nil {
			return nil, err
		}
		params = append(params, d)
		sig.args = append(sig.args, argCodec{pack: pack})
	}

	ret := descriptor.Void()
	switch sh {
	case shapeCtor:
		// Constructors always resolve against a void return; the produced
		// object comes back through the allocation operation instead.
		if ft.NumOut() != 2 || ft.Out(0) != objectType {
			return nil, errors.BadShape(ft.String(), "constructor must return (Object, error)")
		}
	default:
		if ft.NumOut() == 2 {
			retType := ft.Out(0)
			d, err := DescriptorOf(retType)
			if err != nil {
				return nil, err
			}
			unpack, err := unpackerFor(d, retType)
			if err != nil {
				return nil, err
			}
			ret = d
			sig.retType = retType
			sig.unpack = unpack
		}
	}

	sig.desc = descriptor.NewMethod(ret, params...)
	sig.text = sig.desc.String()
	sig.callKind = CallKindFor(ret)
	return sig, nil
}

// packArgs packs the native argument values following the receiver into
// boundary values.
func (s *signature) packArgs(in []reflect.Value, firstArg int) []jui.JValue {
	if len(s.args) == 0 {
		return nil
	}
	out := make([]jui.JValue, len(s.args))
	for i, c := range s.args {
		out[i] = c.pack(in[firstArg+i])
	}
	return out
}

// results assembles the reflect results for a call outcome. The env
// error, if any, passes through untranslated.
func (s *signature) results(env jui.Env, v jui.JValue, err error) []reflect.Value {
	if s.unpack == nil {
		return []reflect.Value{errValue(err)}
	}
	if err != nil {
		return []reflect.Value{reflect.Zero(s.retType), errValue(err)}
	}
	rv, uerr := s.unpack(env, v)
	if uerr != nil {
		return []reflect.Value{reflect.Zero(s.retType), errValue(uerr)}
	}
	return []reflect.Value{rv, nilError}
}

var nilError = reflect.Zero(errorType)

// errValue projects err into a reflect.Value of the error interface type.
func errValue(err error) reflect.Value {
	if err == nil {
		return nilError
	}
	return reflect.ValueOf(err)
}
