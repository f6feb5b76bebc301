package descriptor

import "testing"

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"B", "C", "I", "J", "S", "F", "D", "Z", "V",
		"Ljava/lang/Object;",
		"Ljava/lang/String;",
		"[I",
		"[[D",
		"[Ljava/lang/String;",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			d, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", in, err)
			}
			if got := d.String(); got != in {
				t.Errorf("Parse(%q).String() = %q", in, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"X",
		"L",
		"Ljava/lang/String",
		"L;",
		"[",
		"[V",
		"II",
		"Ljava/lang/String;I",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) succeeded", in)
			}
		})
	}
}

func TestParseMethodRoundTrip(t *testing.T) {
	inputs := []string{
		"()V",
		"(I)V",
		"(ILjava/lang/String;)V",
		"(I)Ljava/lang/Integer;",
		"(Ljava/lang/String;)Ljava/lang/String;",
		"([I[Ljava/lang/Object;)[B",
		"(BCIJSFDZ)V",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			m, err := ParseMethod(in)
			if err != nil {
				t.Fatalf("ParseMethod(%q): %v", in, err)
			}
			if got := m.String(); got != in {
				t.Errorf("ParseMethod(%q).String() = %q", in, got)
			}
		})
	}
}

func TestParseMethodStructure(t *testing.T) {
	m, err := ParseMethod("(ILjava/lang/String;)V")
	if err != nil {
		t.Fatal(err)
	}
	if m.NumParams() != 2 {
		t.Fatalf("NumParams = %d, want 2", m.NumParams())
	}
	if !m.Param(0).Equal(Int()) {
		t.Errorf("Param(0) = %s, want I", m.Param(0))
	}
	if !m.Param(1).Equal(ObjectOf(StringClass)) {
		t.Errorf("Param(1) = %s, want Ljava/lang/String;", m.Param(1))
	}
	if m.Return().Kind() != KindVoid {
		t.Errorf("Return = %s, want V", m.Return())
	}
}

func TestParseMethodErrors(t *testing.T) {
	inputs := []string{
		"",
		"V",
		"()",
		"(",
		"(I",
		"(V)V",
		"([V)V",
		"()VV",
		"()X",
		"(X)V",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseMethod(in); err == nil {
				t.Errorf("ParseMethod(%q) succeeded", in)
			}
		})
	}
}
