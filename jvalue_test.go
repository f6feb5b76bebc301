package jui

import (
	"math"
	"testing"
)

func TestJValueBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{false, true} {
		jv := Bool(v)
		if jv.Kind() != CallBoolean {
			t.Errorf("Bool(%v).Kind() = %v, want %v", v, jv.Kind(), CallBoolean)
		}
		if got := jv.Bool(); got != v {
			t.Errorf("Bool(%v).Bool() = %v", v, got)
		}
	}
}

func TestJValueByteRoundTrip(t *testing.T) {
	for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		jv := Byte(v)
		if jv.Kind() != CallByte {
			t.Fatalf("Byte(%d).Kind() = %v", v, jv.Kind())
		}
		if got := jv.Byte(); got != v {
			t.Errorf("Byte(%d).Byte() = %d", v, got)
		}
	}
}

func TestJValueCharRoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 'A', 0x7FFF, 0xFFFF} {
		if got := Char(v).Char(); got != v {
			t.Errorf("Char(%d).Char() = %d", v, got)
		}
	}
}

func TestJValueShortRoundTrip(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		if got := Short(v).Short(); got != v {
			t.Errorf("Short(%d).Short() = %d", v, got)
		}
	}
}

func TestJValueIntRoundTrip(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -1, 0, 1, 42, math.MaxInt32} {
		jv := Int(v)
		if jv.Kind() != CallInt {
			t.Fatalf("Int(%d).Kind() = %v", v, jv.Kind())
		}
		if got := jv.Int(); got != v {
			t.Errorf("Int(%d).Int() = %d", v, got)
		}
	}
}

func TestJValueLongRoundTrip(t *testing.T) {
	for _, v := range []int64{math.MinInt64, math.MinInt32 - 1, -1, 0, 1, math.MaxInt32 + 1, math.MaxInt64} {
		if got := Long(v).Long(); got != v {
			t.Errorf("Long(%d).Long() = %d", v, got)
		}
	}
}

func TestJValueFloatRoundTrip(t *testing.T) {
	values := []float32{0, float32(math.Copysign(0, -1)), 1.5, -1.5,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())}
	for _, v := range values {
		got := Float(v).Float()
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("Float round trip changed bits: %08x -> %08x",
				math.Float32bits(v), math.Float32bits(got))
		}
	}
}

func TestJValueDoubleRoundTrip(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1.5, -1.5,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range values {
		got := Double(v).Double()
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("Double round trip changed bits: %016x -> %016x",
				math.Float64bits(v), math.Float64bits(got))
		}
	}
}

func TestJValueObjectRoundTrip(t *testing.T) {
	for _, r := range []Ref{NullRef, 1, 42, math.MaxUint32} {
		jv := Object(r)
		if jv.Kind() != CallObject {
			t.Fatalf("Object(%d).Kind() = %v", r, jv.Kind())
		}
		if got := jv.Object(); got != r {
			t.Errorf("Object(%d).Object() = %d", r, got)
		}
	}
}

func TestVoidKind(t *testing.T) {
	if Void().Kind() != CallVoid {
		t.Fatalf("Void().Kind() = %v", Void().Kind())
	}
	var zero JValue
	if zero.Kind() != CallVoid {
		t.Fatalf("zero JValue kind = %v, want void", zero.Kind())
	}
}

func TestCallKindString(t *testing.T) {
	tests := []struct {
		kind CallKind
		want string
	}{
		{CallVoid, "void"},
		{CallBoolean, "boolean"},
		{CallByte, "byte"},
		{CallChar, "char"},
		{CallShort, "short"},
		{CallInt, "int"},
		{CallLong, "long"},
		{CallFloat, "float"},
		{CallDouble, "double"},
		{CallObject, "object"},
		{CallKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CallKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRefIsNull(t *testing.T) {
	if !NullRef.IsNull() {
		t.Error("NullRef.IsNull() = false")
	}
	if Ref(7).IsNull() {
		t.Error("Ref(7).IsNull() = true")
	}
}
