package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestProc_CallDispatches(t *testing.T) {
	var got []uintptr
	p := NewProc("vkDummy", func(args ...uintptr) uintptr {
		got = args
		return 7
	})

	if !p.Valid() {
		t.Fatal("resolved proc reports invalid")
	}
	if r := p.Call(1, 2, 3); r != 7 {
		t.Fatalf("Call() = %d, want 7", r)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("dispatched args = %v", got)
	}
}

func TestProc_UnresolvedCallPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("calling an unresolved proc did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "vkNotLoaded") {
			t.Fatalf("panic message %v does not name the entry point", r)
		}
	}()

	p := Proc{name: "vkNotLoaded"}
	p.Call()
}

func TestProcFromAddr_NullAddress(t *testing.T) {
	p := ProcFromAddr("vkMissing", 0)
	if p.Valid() {
		t.Fatal("null address produced a valid proc")
	}
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(name string) (Proc, error) {
		if name != "vkCreateInstance" {
			return Proc{}, &SymbolNotFoundError{Name: name}
		}
		return NewProc(name, func(...uintptr) uintptr { return 0 }), nil
	})

	if _, err := r.Resolve("vkCreateInstance"); err != nil {
		t.Fatalf("Resolve(vkCreateInstance) = %v", err)
	}

	_, err := r.Resolve("vkBogus")
	var snf *SymbolNotFoundError
	if !errors.As(err, &snf) || snf.Name != "vkBogus" {
		t.Fatalf("Resolve(vkBogus) = %v, want SymbolNotFoundError", err)
	}
	if !strings.Contains(err.Error(), "vkBogus") {
		t.Fatalf("error %q does not name the symbol", err)
	}
}
