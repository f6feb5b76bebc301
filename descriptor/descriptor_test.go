package descriptor

import "testing"

func TestDescriptorString(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want string
	}{
		{"byte", Byte(), "B"},
		{"char", Char(), "C"},
		{"int", Int(), "I"},
		{"long", Long(), "J"},
		{"short", Short(), "S"},
		{"float", Float(), "F"},
		{"double", Double(), "D"},
		{"boolean", Boolean(), "Z"},
		{"void", Void(), "V"},
		{"object", ObjectOf(ObjectClass), "Ljava/lang/Object;"},
		{"string", ObjectOf(StringClass), "Ljava/lang/String;"},
		{"int array", ArrayOf(Int()), "[I"},
		{"2d double array", ArrayOf(ArrayOf(Double())), "[[D"},
		{"object array", ArrayOf(ObjectOf(StringClass)), "[Ljava/lang/String;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMethodString(t *testing.T) {
	tests := []struct {
		name string
		m    Method
		want string
	}{
		{"no params void", NewMethod(Void()), "()V"},
		{"int and string to void", NewMethod(Void(), Int(), ObjectOf(StringClass)), "(ILjava/lang/String;)V"},
		{"int to integer", NewMethod(ObjectOf("java/lang/Integer"), Int()), "(I)Ljava/lang/Integer;"},
		{"string to string", NewMethod(ObjectOf(StringClass), ObjectOf(StringClass)), "(Ljava/lang/String;)Ljava/lang/String;"},
		{"long pair to long", NewMethod(Long(), Long(), Long()), "(JJ)J"},
		{"array param", NewMethod(Int(), ArrayOf(Int())), "([I)I"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptorEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Descriptor
		want bool
	}{
		{"same primitive", Int(), Int(), true},
		{"different primitives", Int(), Long(), false},
		{"same class", ObjectOf(StringClass), ObjectOf(StringClass), true},
		{"different classes", ObjectOf(StringClass), ObjectOf(ObjectClass), false},
		{"primitive vs object", Int(), ObjectOf(StringClass), false},
		{"same array", ArrayOf(Int()), ArrayOf(Int()), true},
		{"different element", ArrayOf(Int()), ArrayOf(Long()), false},
		{"array depth", ArrayOf(Int()), ArrayOf(ArrayOf(Int())), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Equal(tt.b)
			if got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if back := tt.b.Equal(tt.a); back != tt.want {
				t.Errorf("Equal not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestMethodEqual(t *testing.T) {
	a := NewMethod(Void(), Int(), ObjectOf(StringClass))
	b := NewMethod(Void(), Int(), ObjectOf(StringClass))
	if !a.Equal(b) {
		t.Error("identical signatures not equal")
	}
	if a.Equal(NewMethod(Void(), Int())) {
		t.Error("different arity reported equal")
	}
	if a.Equal(NewMethod(Int(), Int(), ObjectOf(StringClass))) {
		t.Error("different return reported equal")
	}
	if a.Equal(NewMethod(Void(), ObjectOf(StringClass), Int())) {
		t.Error("different parameter order reported equal")
	}
}

func TestIsString(t *testing.T) {
	if !ObjectOf(StringClass).IsString() {
		t.Error("string class descriptor not detected")
	}
	if ObjectOf(ObjectClass).IsString() {
		t.Error("object class descriptor reported as string")
	}
	if ArrayOf(ObjectOf(StringClass)).IsString() {
		t.Error("string array reported as string")
	}
}

func TestElemPanicsOnNonArray(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Elem on non-array did not panic")
		}
	}()
	Int().Elem()
}

func TestKindIsPrimitive(t *testing.T) {
	for _, k := range []Kind{KindByte, KindChar, KindInt, KindLong, KindShort, KindFloat, KindDouble, KindBoolean} {
		if !k.IsPrimitive() {
			t.Errorf("%v.IsPrimitive() = false", k)
		}
	}
	for _, k := range []Kind{KindVoid, KindObject, KindArray} {
		if k.IsPrimitive() {
			t.Errorf("%v.IsPrimitive() = true", k)
		}
	}
}
