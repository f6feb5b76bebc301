package reflector_test

import (
	"testing"

	"github.com/kn3ll/jui/descriptor"
	"github.com/kn3ll/jui/internal/testvm"
	"github.com/kn3ll/jui/reflector"
)

func TestOwnedStringAdapter(t *testing.T) {
	vm := testvm.New()

	s, err := reflector.NewString(vm, "owned")
	if err != nil {
		t.Fatal(err)
	}
	if s.Borrowed() {
		t.Error("fresh string reported borrowed")
	}
	if s.String() != "owned" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d", s.Len())
	}
	if vm.PinnedBuffers(s.JRef()) != 0 {
		t.Error("owned adapter pinned a buffer")
	}

	// Release on an owned adapter never reaches the environment, so any
	// number of calls is harmless.
	s.Release()
	s.Release()
}

func TestOwnedStringUTF16(t *testing.T) {
	vm := testvm.New()

	s, err := reflector.NewStringUTF16(vm, []uint16{'o', 'k', 0xD83D, 0xDE00})
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "ok\U0001F600" {
		t.Errorf("String() = %q", s.String())
	}

	back, err := vm.StringValue(s.JRef())
	if err != nil {
		t.Fatal(err)
	}
	if back != s.String() {
		t.Errorf("runtime holds %q, adapter holds %q", back, s.String())
	}
}

func TestBorrowedStringLifecycle(t *testing.T) {
	vm := testvm.New()
	ref := vm.NewStringRef("borrowed")

	s, err := reflector.StringFromObject(vm, reflector.Object{Ref: ref})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Borrowed() {
		t.Fatal("adapter not borrowed")
	}
	if s.String() != "borrowed" {
		t.Errorf("String() = %q", s.String())
	}
	if vm.PinnedBuffers(ref) != 1 {
		t.Fatalf("pins = %d, want 1", vm.PinnedBuffers(ref))
	}

	s.Release()
	if s.Borrowed() {
		t.Error("adapter still borrowed after release")
	}
	if vm.PinnedBuffers(ref) != 0 {
		t.Fatalf("pins = %d after release", vm.PinnedBuffers(ref))
	}

	// A second Release finds nothing to do; the environment boundary is
	// never crossed twice.
	s.Release()
	if vm.PinnedBuffers(ref) != 0 {
		t.Error("second release changed pin state")
	}
}

func TestNilStringAdapter(t *testing.T) {
	var s *reflector.String
	if !s.JRef().IsNull() {
		t.Error("nil adapter reference not null")
	}
	if !s.TypeDescriptor().IsString() {
		t.Error("nil adapter lost its type descriptor")
	}
}

func TestMethodResultStringIsBorrowed(t *testing.T) {
	vm := testvm.New()
	r := reflector.New(vm)
	cls, err := r.GetClass(descriptor.StringClass)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Close()

	concat, err := reflector.GetMethod[func(reflector.Object, *reflector.String) (*reflector.String, error)](cls, "concat")
	if err != nil {
		t.Fatal(err)
	}

	recv := reflector.Object{Ref: vm.NewStringRef("ab")}
	arg, err := reflector.NewString(vm, "cd")
	if err != nil {
		t.Fatal(err)
	}

	got, err := concat.Fn()(recv, arg)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "abcd" {
		t.Errorf("concat = %q", got.String())
	}
	if !got.Borrowed() {
		t.Fatal("string result not borrowed")
	}
	if vm.PinnedBuffers(got.JRef()) != 1 {
		t.Fatalf("pins = %d", vm.PinnedBuffers(got.JRef()))
	}
	got.Release()
	if vm.PinnedBuffers(got.JRef()) != 0 {
		t.Error("release did not unpin")
	}
}

func TestNullStringArgument(t *testing.T) {
	vm := testvm.New()
	r := reflector.New(vm)
	cls, err := r.GetClass(descriptor.StringClass)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Close()

	concat, err := reflector.GetMethod[func(reflector.Object, *reflector.String) (*reflector.String, error)](cls, "concat")
	if err != nil {
		t.Fatal(err)
	}

	recv := reflector.Object{Ref: vm.NewStringRef("ab")}
	// A nil *String packs as the null reference; the body raises.
	if _, err := concat.Fn()(recv, nil); err == nil {
		t.Fatal("concat with null argument succeeded")
	}
}

func TestWithUTFChars(t *testing.T) {
	vm := testvm.New()
	ref := vm.NewStringRef("scoped")
	obj := reflector.Object{Ref: ref}

	var seen string
	err := reflector.WithUTFChars(vm, obj, func(b []byte) error {
		if vm.PinnedBuffers(ref) != 1 {
			t.Errorf("pins inside scope = %d", vm.PinnedBuffers(ref))
		}
		seen = string(b)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != "scoped" {
		t.Errorf("seen = %q", seen)
	}
	if vm.PinnedBuffers(ref) != 0 {
		t.Error("buffer still pinned after scope")
	}
}

func TestWithUTFCharsReleasesOnPanic(t *testing.T) {
	vm := testvm.New()
	ref := vm.NewStringRef("panicky")
	obj := reflector.Object{Ref: ref}

	func() {
		defer func() { recover() }()
		_ = reflector.WithUTFChars(vm, obj, func([]byte) error {
			panic("boom")
		})
	}()

	if vm.PinnedBuffers(ref) != 0 {
		t.Error("buffer still pinned after panic")
	}
}
