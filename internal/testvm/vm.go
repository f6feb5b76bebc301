package testvm

import (
	"fmt"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
)

// VM is an in-memory managed object runtime implementing jui.Env. Like
// the real embedding interface it is bound to one goroutine; nothing is
// synchronized.
type VM struct {
	classes map[string]*Class
	methods []*method // index = MethodID - 1
	refs    *refTable
	hashSeq int32
}

// New creates a VM preloaded with the builtin classes java/lang/Object,
// java/lang/String and java/lang/Integer.
func New() *VM {
	vm := &VM{
		classes: make(map[string]*Class),
		refs:    newRefTable(),
	}
	registerBuiltins(vm)
	return vm
}

// MethodFunc is the body of a registered method. recv is nil for static
// methods and constructors receive the freshly allocated instance. A
// returned error is the VM's pending-exception state for that call.
type MethodFunc func(vm *VM, recv *Instance, args []jui.JValue) (jui.JValue, error)

type method struct {
	class  *Class
	name   string
	sig    string
	desc   descriptor.Method
	fn     MethodFunc
	id     jui.MethodID
	static bool
}

// Class is a registered class with per-signature method tables. Members
// are keyed by name plus full signature text: overloads resolve by
// signature string only, never by type compatibility.
type Class struct {
	vm       *VM
	name     string
	abstract bool
	methods  map[string]*method
}

// RegisterClass registers (or returns the already registered) class.
func (vm *VM) RegisterClass(name string) *Class {
	if c, ok := vm.classes[name]; ok {
		return c
	}
	c := &Class{vm: vm, name: name, methods: make(map[string]*method)}
	vm.classes[name] = c
	return c
}

// RegisterAbstractClass registers a class that refuses allocation.
func (vm *VM) RegisterAbstractClass(name string) *Class {
	c := vm.RegisterClass(name)
	c.abstract = true
	return c
}

// Name returns the qualified class name.
func (c *Class) Name() string { return c.name }

func memberKey(name, sig string) string { return name + sig }

func (c *Class) add(name, sig string, static bool, fn MethodFunc) error {
	desc, err := descriptor.ParseMethod(sig)
	if err != nil {
		return err
	}
	key := memberKey(name, sig)
	if _, ok := c.methods[key]; ok {
		return fmt.Errorf("testvm: duplicate member %s.%s%s", c.name, name, sig)
	}
	m := &method{
		class:  c,
		name:   name,
		sig:    sig,
		desc:   desc,
		fn:     fn,
		static: static,
		id:     jui.MethodID(len(c.vm.methods) + 1),
	}
	c.vm.methods = append(c.vm.methods, m)
	c.methods[key] = m
	return nil
}

// AddMethod registers an instance method under the exact signature text.
func (c *Class) AddMethod(name, sig string, fn MethodFunc) error {
	return c.add(name, sig, false, fn)
}

// AddStaticMethod registers a static method.
func (c *Class) AddStaticMethod(name, sig string, fn MethodFunc) error {
	return c.add(name, sig, true, fn)
}

func (vm *VM) methodByID(id jui.MethodID) (*method, error) {
	if id == 0 || int(id) > len(vm.methods) {
		return nil, fmt.Errorf("testvm: invalid method id %d", id)
	}
	return vm.methods[id-1], nil
}

// Instance is an object instance: a class plus named field state. An
// instance allocated without running a constructor has no fields at all,
// which is how builtins detect uninitialized state.
type Instance struct {
	class  *Class
	fields map[string]any
}

func newInstance(c *Class) *Instance {
	return &Instance{class: c, fields: make(map[string]any)}
}

// Class returns the instance's class.
func (i *Instance) Class() *Class { return i.class }

// Field returns a named field value.
func (i *Instance) Field(name string) (any, bool) {
	v, ok := i.fields[name]
	return v, ok
}

// SetField stores a named field value.
func (i *Instance) SetField(name string, v any) { i.fields[name] = v }

// Instance resolves an object reference to its instance.
func (vm *VM) Instance(ref jui.Ref) (*Instance, error) {
	if ref.IsNull() {
		return nil, errNullPointer("null receiver")
	}
	v, ok := vm.refs.get(ref)
	if !ok {
		return nil, fmt.Errorf("testvm: stale object reference %d", ref)
	}
	inst, ok := v.(*Instance)
	if !ok {
		return nil, fmt.Errorf("testvm: reference %d is not an object", ref)
	}
	return inst, nil
}

// StringValue resolves a string object reference to its Go string. An
// uninitialized string instance (allocated without a constructor) has no
// value and raises the null-pointer exception a real runtime would.
func (vm *VM) StringValue(ref jui.Ref) (string, error) {
	inst, err := vm.Instance(ref)
	if err != nil {
		return "", err
	}
	return stringValue(inst)
}

func stringValue(inst *Instance) (string, error) {
	if inst.class.name != descriptor.StringClass {
		return "", fmt.Errorf("testvm: %s is not a string", inst.class.name)
	}
	v, ok := inst.fields[valueField]
	if !ok {
		return "", errNullPointer("uninitialized " + descriptor.StringClass)
	}
	return v.(string), nil
}

// NewStringRef creates a string object and returns a local reference to
// it, for use inside registered method bodies.
func (vm *VM) NewStringRef(s string) jui.Ref {
	inst := newInstance(vm.classes[descriptor.StringClass])
	inst.fields[valueField] = s
	return vm.refs.insert(jui.RefLocal, inst)
}

// LiveRefs reports the number of live references, for leak assertions.
func (vm *VM) LiveRefs() int { return vm.refs.live() }

// Exception-shaped errors, named the way the managed runtime names them.

func errNullPointer(detail string) error {
	return fmt.Errorf("java.lang.NullPointerException: %s", detail)
}

func errNoClassDef(name string) error {
	return fmt.Errorf("java.lang.NoClassDefFoundError: %s", name)
}

func errNoSuchMethod(class, name, sig string) error {
	return fmt.Errorf("java.lang.NoSuchMethodError: %s.%s%s", class, name, sig)
}

func errInstantiation(name string) error {
	return fmt.Errorf("java.lang.InstantiationError: %s", name)
}
