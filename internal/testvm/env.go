package testvm

import (
	"fmt"
	"unicode/utf16"

	"go.uber.org/zap"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
)

// jui.Env implementation. Misuse that is undefined behavior at the real
// boundary (double reference release, unbalanced buffer release) panics
// here so tests catch it.

var _ jui.Env = (*VM)(nil)

// FindClass resolves a registered class and returns a local reference.
func (vm *VM) FindClass(name string) (jui.Ref, error) {
	c, ok := vm.classes[name]
	if !ok {
		return jui.NullRef, errNoClassDef(name)
	}
	return vm.refs.insert(jui.RefLocal, c), nil
}

// NewRef promotes ref to the requested lifetime kind.
func (vm *VM) NewRef(kind jui.RefKind, ref jui.Ref) (jui.Ref, error) {
	v, ok := vm.refs.get(ref)
	if !ok {
		return jui.NullRef, fmt.Errorf("testvm: NewRef on invalid reference %d", ref)
	}
	return vm.refs.insert(kind, v), nil
}

// DeleteRef releases a reference. Releasing an invalid or already
// released reference panics: it is undefined behavior at the boundary.
func (vm *VM) DeleteRef(kind jui.RefKind, ref jui.Ref) {
	if k, ok := vm.refs.kind(ref); !ok || k != kind {
		panic(fmt.Sprintf("testvm: DeleteRef(%d) on invalid reference (wrong kind or double release)", ref))
	}
	if !vm.refs.drop(ref) {
		panic(fmt.Sprintf("testvm: DeleteRef(%d) with outstanding pinned buffers", ref))
	}
}

func (vm *VM) classOf(ref jui.Ref) (*Class, error) {
	v, ok := vm.refs.get(ref)
	if !ok {
		return nil, fmt.Errorf("testvm: stale class reference %d", ref)
	}
	c, ok := v.(*Class)
	if !ok {
		return nil, fmt.Errorf("testvm: reference %d is not a class", ref)
	}
	return c, nil
}

// AllocObject allocates an instance without running any constructor.
func (vm *VM) AllocObject(class jui.Ref) (jui.Ref, error) {
	c, err := vm.classOf(class)
	if err != nil {
		return jui.NullRef, err
	}
	if c.abstract {
		return jui.NullRef, errInstantiation(c.name)
	}
	return vm.refs.insert(jui.RefLocal, newInstance(c)), nil
}

// NewObject allocates an instance and runs the given constructor on it.
func (vm *VM) NewObject(class jui.Ref, methodID jui.MethodID, args []jui.JValue) (jui.Ref, error) {
	ref, err := vm.AllocObject(class)
	if err != nil {
		return jui.NullRef, err
	}
	m, err := vm.methodByID(methodID)
	if err != nil {
		return jui.NullRef, err
	}
	inst, _ := vm.refs.get(ref)
	if _, err := m.fn(vm, inst.(*Instance), args); err != nil {
		vm.refs.drop(ref)
		return jui.NullRef, err
	}
	return ref, nil
}

func (vm *VM) lookupMethod(class jui.Ref, name, sig string, static bool) (jui.MethodID, error) {
	c, err := vm.classOf(class)
	if err != nil {
		return 0, err
	}
	m, ok := c.methods[memberKey(name, sig)]
	if !ok || m.static != static {
		return 0, errNoSuchMethod(c.name, name, sig)
	}
	return m.id, nil
}

// GetMethodID resolves an instance method by exact name and signature.
func (vm *VM) GetMethodID(class jui.Ref, name, sig string) (jui.MethodID, error) {
	return vm.lookupMethod(class, name, sig, false)
}

// GetStaticMethodID resolves a static method by exact name and signature.
func (vm *VM) GetStaticMethodID(class jui.Ref, name, sig string) (jui.MethodID, error) {
	return vm.lookupMethod(class, name, sig, true)
}

// returnKind is the VM's own view of the per-kind operation table: one
// tag per primitive return kind, one for references, one for void.
func returnKind(d descriptor.Descriptor) jui.CallKind {
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

func (vm *VM) dispatch(kind jui.CallKind, m *method, recv *Instance, args []jui.JValue) (jui.JValue, error) {
	if want := returnKind(m.desc.Return()); kind != want {
		return jui.Void(), fmt.Errorf("testvm: %s.%s%s called with %s operation, declared return needs %s",
			m.class.name, m.name, m.sig, kind, want)
	}
	if len(args) != m.desc.NumParams() {
		return jui.Void(), fmt.Errorf("testvm: %s.%s%s called with %d arguments",
			m.class.name, m.name, m.sig, len(args))
	}

	Logger().Debug("dispatch",
		zap.String("class", m.class.name),
		zap.String("method", m.name),
		zap.String("sig", m.sig),
		zap.Bool("static", m.static))

	return m.fn(vm, recv, args)
}

// CallMethod invokes an instance method. A method-body error is the
// pending exception and propagates untranslated.
func (vm *VM) CallMethod(kind jui.CallKind, obj jui.Ref, methodID jui.MethodID, args []jui.JValue) (jui.JValue, error) {
	m, err := vm.methodByID(methodID)
	if err != nil {
		return jui.Void(), err
	}
	if m.static {
		return jui.Void(), fmt.Errorf("testvm: CallMethod on static member %s.%s", m.class.name, m.name)
	}
	recv, err := vm.Instance(obj)
	if err != nil {
		return jui.Void(), err
	}
	return vm.dispatch(kind, m, recv, args)
}

// CallStaticMethod invokes a static method.
func (vm *VM) CallStaticMethod(kind jui.CallKind, class jui.Ref, methodID jui.MethodID, args []jui.JValue) (jui.JValue, error) {
	m, err := vm.methodByID(methodID)
	if err != nil {
		return jui.Void(), err
	}
	if !m.static {
		return jui.Void(), fmt.Errorf("testvm: CallStaticMethod on instance member %s.%s", m.class.name, m.name)
	}
	if c, err := vm.classOf(class); err != nil {
		return jui.Void(), err
	} else if c != m.class {
		return jui.Void(), fmt.Errorf("testvm: method %s.%s called through class %s", m.class.name, m.name, c.name)
	}
	return vm.dispatch(kind, m, nil, args)
}

// NewStringUTF creates a string object from UTF-8 content.
func (vm *VM) NewStringUTF(utf8 []byte) (jui.Ref, error) {
	return vm.NewStringRef(string(utf8)), nil
}

// NewString creates a string object from UTF-16 code units.
func (vm *VM) NewString(units []uint16) (jui.Ref, error) {
	return vm.NewStringRef(string(utf16.Decode(units))), nil
}

// GetStringUTFLength returns the UTF-8 length of a string object.
func (vm *VM) GetStringUTFLength(str jui.Ref) int {
	s, err := vm.StringValue(str)
	if err != nil {
		return 0
	}
	return len(s)
}

// GetStringUTFChars pins the string and returns its UTF-8 bytes. Must be
// balanced by exactly one ReleaseStringUTFChars.
func (vm *VM) GetStringUTFChars(str jui.Ref) ([]byte, error) {
	s, err := vm.StringValue(str)
	if err != nil {
		return nil, err
	}
	vm.refs.pin(str)
	return []byte(s), nil
}

// ReleaseStringUTFChars unpins the string. An unbalanced release panics.
func (vm *VM) ReleaseStringUTFChars(str jui.Ref, chars []byte) {
	if !vm.refs.unpin(str) {
		panic(fmt.Sprintf("testvm: ReleaseStringUTFChars(%d) without matching get (double release?)", str))
	}
}

// GetStringChars pins the string and returns its UTF-16 code units.
func (vm *VM) GetStringChars(str jui.Ref) ([]uint16, error) {
	s, err := vm.StringValue(str)
	if err != nil {
		return nil, err
	}
	vm.refs.pin(str)
	return utf16.Encode([]rune(s)), nil
}

// ReleaseStringChars unpins the string. An unbalanced release panics.
func (vm *VM) ReleaseStringChars(str jui.Ref, chars []uint16) {
	if !vm.refs.unpin(str) {
		panic(fmt.Sprintf("testvm: ReleaseStringChars(%d) without matching get (double release?)", str))
	}
}

// PinnedBuffers reports the outstanding pinned buffer count for a string
// reference, for lifecycle assertions in tests.
func (vm *VM) PinnedBuffers(str jui.Ref) int {
	if str == 0 || int(str) > len(vm.refs.entries) {
		return 0
	}
	return vm.refs.entries[str-1].pins
}
