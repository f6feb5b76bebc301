package testvm

import (
	"fmt"
	"unicode/utf16"

	"github.com/kn3ll/jui"
	"github.com/kn3ll/jui/descriptor"
)

const (
	integerClass = "java/lang/Integer"
	valueField   = "value"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func registerBuiltins(vm *VM) {
	registerObject(vm)
	registerString(vm)
	registerInteger(vm)
}

func registerObject(vm *VM) {
	obj := vm.RegisterClass(descriptor.ObjectClass)

	must(obj.AddMethod("<init>", "()V", func(_ *VM, _ *Instance, _ []jui.JValue) (jui.JValue, error) {
		return jui.Void(), nil
	}))

	must(obj.AddMethod("hashCode", "()I", func(vm *VM, recv *Instance, _ []jui.JValue) (jui.JValue, error) {
		h, ok := recv.fields["__hash"]
		if !ok {
			vm.hashSeq++
			h = vm.hashSeq
			recv.fields["__hash"] = h
		}
		return jui.Int(h.(int32)), nil
	}))
}

func registerString(vm *VM) {
	str := vm.RegisterClass(descriptor.StringClass)

	must(str.AddMethod("<init>", "(Ljava/lang/String;)V", func(vm *VM, recv *Instance, args []jui.JValue) (jui.JValue, error) {
		s, err := vm.StringValue(args[0].Object())
		if err != nil {
			return jui.Void(), err
		}
		recv.fields[valueField] = s
		return jui.Void(), nil
	}))

	// length counts UTF-16 code units, matching the runtime's contract.
	must(str.AddMethod("length", "()I", func(_ *VM, recv *Instance, _ []jui.JValue) (jui.JValue, error) {
		s, err := stringValue(recv)
		if err != nil {
			return jui.Void(), err
		}
		return jui.Int(int32(len(utf16.Encode([]rune(s))))), nil
	}))

	must(str.AddMethod("isEmpty", "()Z", func(_ *VM, recv *Instance, _ []jui.JValue) (jui.JValue, error) {
		s, err := stringValue(recv)
		if err != nil {
			return jui.Void(), err
		}
		return jui.Bool(len(s) == 0), nil
	}))

	must(str.AddMethod("charAt", "(I)C", func(_ *VM, recv *Instance, args []jui.JValue) (jui.JValue, error) {
		s, err := stringValue(recv)
		if err != nil {
			return jui.Void(), err
		}
		units := utf16.Encode([]rune(s))
		i := args[0].Int()
		if i < 0 || int(i) >= len(units) {
			return jui.Void(), fmt.Errorf("java.lang.StringIndexOutOfBoundsException: index %d, length %d", i, len(units))
		}
		return jui.Char(units[i]), nil
	}))

	must(str.AddMethod("concat", "(Ljava/lang/String;)Ljava/lang/String;", func(vm *VM, recv *Instance, args []jui.JValue) (jui.JValue, error) {
		s, err := stringValue(recv)
		if err != nil {
			return jui.Void(), err
		}
		other, err := vm.StringValue(args[0].Object())
		if err != nil {
			return jui.Void(), err
		}
		return jui.Object(vm.NewStringRef(s + other)), nil
	}))
}

func registerInteger(vm *VM) {
	integer := vm.RegisterClass(integerClass)

	must(integer.AddMethod("<init>", "(I)V", func(_ *VM, recv *Instance, args []jui.JValue) (jui.JValue, error) {
		recv.fields[valueField] = args[0].Int()
		return jui.Void(), nil
	}))

	must(integer.AddStaticMethod("valueOf", "(I)Ljava/lang/Integer;", func(vm *VM, _ *Instance, args []jui.JValue) (jui.JValue, error) {
		inst := newInstance(vm.classes[integerClass])
		inst.fields[valueField] = args[0].Int()
		return jui.Object(vm.refs.insert(jui.RefLocal, inst)), nil
	}))

	must(integer.AddMethod("intValue", "()I", func(_ *VM, recv *Instance, _ []jui.JValue) (jui.JValue, error) {
		v, ok := recv.fields[valueField]
		if !ok {
			return jui.Void(), errNullPointer("uninitialized " + integerClass)
		}
		return jui.Int(v.(int32)), nil
	}))
}
