package plugin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Name: "attributes", Version: "2.1.0"})

	reg, ok := r.Get("attributes")
	if !ok {
		t.Fatal("registration missing")
	}
	if reg.Version != "2.1.0" {
		t.Errorf("version = %q, want %q", reg.Version, "2.1.0")
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Name: "attributes", Version: "1.0.0"})
	r.Register(Registration{Name: "attributes", Version: "2.0.0"})

	reg, _ := r.Get("attributes")
	if reg.Version != "2.0.0" {
		t.Errorf("version = %q, want %q", reg.Version, "2.0.0")
	}
	if len(r.Names()) != 1 {
		t.Errorf("names = %v, want one entry", r.Names())
	}
}

func TestRegisterEmptyNameIgnored(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Version: "1.0.0"})
	if len(r.Names()) != 0 {
		t.Errorf("empty-name registration should be ignored, got %v", r.Names())
	}
}

func TestDeregister(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Name: "attributes"})

	if !r.Deregister("attributes") {
		t.Error("Deregister should report true for a present entry")
	}
	if r.Deregister("attributes") {
		t.Error("Deregister should report false the second time")
	}
	if _, ok := r.Get("attributes"); ok {
		t.Error("entry should be gone")
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Name: "zeta"})
	r.Register(Registration{Name: "attributes"})
	r.Register(Registration{Name: "morph"})

	want := []string{"attributes", "morph", "zeta"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNilRegistrySafe(t *testing.T) {
	var r *Registry
	r.Register(Registration{Name: "x"})
	if r.Deregister("x") {
		t.Error("nil registry should report false")
	}
	if _, ok := r.Get("x"); ok {
		t.Error("nil registry should report absent")
	}
	if r.Names() != nil {
		t.Error("nil registry should have no names")
	}
}
