package reflector_test

import (
	goerrors "errors"
	"testing"

	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/errors"
	"github.com/kn3ll/jui/internal/testvm"
	"github.com/kn3ll/jui/reflector"
)

func TestGetClass(t *testing.T) {
	vm := testvm.New()
	r := reflector.New(vm)

	cls, err := r.GetClass(descriptor.StringClass)
	if err != nil {
		t.Fatal(err)
	}
	if cls.Name() != descriptor.StringClass {
		t.Errorf("Name() = %q", cls.Name())
	}
	if cls.Ref().IsNull() {
		t.Error("class holds null reference")
	}
	cls.Close()
}

func TestGetClassNotFound(t *testing.T) {
	_, r := newReflector(t)
	_, err := r.GetClass("no/such/Class")
	if err == nil {
		t.Fatal("GetClass on unknown class succeeded")
	}
	if !goerrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindNotFound}) {
		t.Errorf("err = %v", err)
	}
}

func TestClassCloseIdempotent(t *testing.T) {
	_, r := newReflector(t)
	cls, err := r.GetClass(descriptor.StringClass)
	if err != nil {
		t.Fatal(err)
	}
	// The second Close must not reach the environment; testvm panics on a
	// double reference release.
	cls.Close()
	cls.Close()
}

func TestCreateWithoutConstructor(t *testing.T) {
	vm, r := newReflector(t)
	cls := getClass(t, r, descriptor.StringClass)

	obj, err := cls.Create()
	if err != nil {
		t.Fatal(err)
	}
	if obj.IsNil() {
		t.Fatal("Create returned null object")
	}
	// No constructor ran, so the instance has no content yet.
	if _, err := vm.StringValue(obj.Ref); err == nil {
		t.Error("uninitialized string has a value")
	}
}

func TestCreateAbstractFails(t *testing.T) {
	vm, r := newReflector(t)
	vm.RegisterAbstractClass("test/Abstract")
	cls := getClass(t, r, "test/Abstract")

	_, err := cls.Create()
	if err == nil {
		t.Fatal("Create on abstract class succeeded")
	}
	if !goerrors.Is(err, &errors.Error{Phase: errors.PhaseAlloc, Kind: errors.KindAllocation}) {
		t.Errorf("err = %v", err)
	}
}

func TestObjectTypeDescriptor(t *testing.T) {
	var o reflector.Object
	if got := o.TypeDescriptor(); got.ClassName() != descriptor.ObjectClass {
		t.Errorf("TypeDescriptor() = %s", got)
	}
	if !o.IsNil() {
		t.Error("zero Object not nil")
	}
}
