package registry

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	reg := New[string]()
	reg.Register("upcase", "producer-a")

	if !reg.Supports("upcase") {
		t.Fatalf("expected registry to support %q", "upcase")
	}
	got, ok := reg.Lookup("upcase")
	if !ok || got != "producer-a" {
		t.Fatalf("unexpected lookup result %q (ok=%v)", got, ok)
	}
}

func TestRegisterLastWriterWins(t *testing.T) {
	reg := New[string]()
	reg.Register("upcase", "first")
	reg.Register("upcase", "second")

	got, _ := reg.Lookup("upcase")
	if got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestUnregisterAbsentKindIsNoOp(t *testing.T) {
	reg := New[string]()
	reg.Unregister("never-registered")

	reg.Register("upcase", "producer")
	reg.Unregister("upcase")
	if reg.Supports("upcase") {
		t.Fatal("expected kind to be removed")
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	reg := New[int]()
	reg.Register("a", 1)
	reg.Register("b", 2)

	snapshot := reg.All()
	snapshot["c"] = 3

	if reg.Supports("c") {
		t.Fatal("mutating the snapshot must not affect the registry")
	}
	if len(reg.All()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reg.All()))
	}
}

func TestKindsSorted(t *testing.T) {
	reg := New[int]()
	reg.Register("b", 2)
	reg.Register("a", 1)

	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Fatalf("unexpected kinds %v", kinds)
	}
}
