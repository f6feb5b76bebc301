package reflector

import (
	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
)

// Class is a handle to a resolved runtime class. It owns the global
// reference produced at lookup and releases it exactly once on Close.
// Callables derived from a Class hold it non-owning and must not be used
// after the Class is closed.
type Class struct {
	r    *Reflector
	name string
	ref  jui.Ref
	owns bool
}

// Name returns the qualified slash-separated class name.
func (c *Class) Name() string { return c.name }

// Ref returns the underlying class reference.
func (c *Class) Ref() jui.Ref { return c.ref }

// Reflector returns the owning reflector.
func (c *Class) Reflector() *Reflector { return c.r }

// Create allocates a new instance without running any constructor. The
// runtime may refuse, e.g. for an abstract class.
func (c *Class) Create() (Object, error) {
	ref, err := c.r.env.AllocObject(c.ref)
	if err != nil {
		return Object{}, errors.AllocationFailed(c.name, err)
	}
	return Object{Ref: ref, Class: c}, nil
}

// Close releases the class's global reference. Safe to call more than
// once; only the first call reaches the environment. Callables derived
// from the class are unusable afterwards.
func (c *Class) Close() {
	if !c.owns {
		return
	}
	c.owns = false
	c.r.env.DeleteRef(jui.RefGlobal, c.ref)
}

// Object pairs a runtime object reference with the Class that produced
// or describes it. Objects have reference semantics only; equality and
// hashing are not defined.
type Object struct {
	Class *Class
	Ref   jui.Ref
}

// IsNil reports whether the object holds the null reference.
func (o Object) IsNil() bool { return o.Ref.IsNull() }

// JRef returns the boundary reference. Types embedding Object inherit it.
func (o Object) JRef() jui.Ref { return o.Ref }

// TypeDescriptor marks Object as an object-kind native type. Generated
// wrapper types embed Object and shadow this with their own class name.
func (o Object) TypeDescriptor() descriptor.Descriptor {
	return descriptor.ObjectOf(descriptor.ObjectClass)
}
