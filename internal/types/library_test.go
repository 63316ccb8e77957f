package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestLibraryKeepsRegistrationOrder(t *testing.T) {
	lib := NewLibrary("L")
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		lib.Define(name, &Struct{})
	}
	want := []string{"Zeta", "Alpha", "Mid"}
	if got := lib.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	var visited []string
	_ = lib.Each(func(name string, _ TypeDef) error {
		visited = append(visited, name)
		return nil
	})
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("Each visited %v, want %v", visited, want)
	}
}

func TestLibraryRedefineKeepsFirstPosition(t *testing.T) {
	lib := NewLibrary("L")
	first := &Struct{}
	second := &Interface{}
	lib.Define("A", first)
	lib.Define("B", &Struct{})
	if replaced := lib.Define("A", second); !replaced {
		t.Fatal("expected replaced=true")
	}
	if got := lib.Names(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("Names() = %v", got)
	}
	def, ok := lib.Lookup("A")
	if !ok || def != TypeDef(second) {
		t.Fatalf("Lookup(A) = %v, %v; want the second definition", def, ok)
	}
	if lib.Len() != 2 {
		t.Fatalf("Len() = %d", lib.Len())
	}
}

func TestLibraryNamesIsACopy(t *testing.T) {
	lib := NewLibrary("L")
	lib.Define("A", &Struct{})
	names := lib.Names()
	names[0] = "mutated"
	if _, ok := lib.Lookup("A"); !ok || lib.Names()[0] != "A" {
		t.Fatal("library was mutated through Names()")
	}
}

func TestLibraryEachStopsOnError(t *testing.T) {
	lib := NewLibrary("L")
	lib.Define("A", &Struct{})
	lib.Define("B", &Struct{})
	stop := errors.New("stop")
	calls := 0
	err := lib.Each(func(string, TypeDef) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestLibraryUnresolved(t *testing.T) {
	lib := NewLibrary("L")
	lib.Define("S", &Struct{Fields: []Param{
		{Name: "a", Type: Named{Name: "Missing"}},
		{Name: "b", Type: PointerTo(Named{Name: "S"})},
	}})
	lib.Define("I", &Interface{Methods: []Method{
		{Name: "M", Return: Named{Name: "Other"}, Params: []Param{{Name: "p", Type: PointerTo(Named{Name: "Missing"})}}},
	}})
	want := []string{"Missing", "Other"}
	if got := lib.Unresolved(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Unresolved() = %v, want %v", got, want)
	}
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	if lib.Len() != 0 || lib.Names() != nil {
		t.Fatal("nil library should be empty")
	}
	if _, ok := lib.Lookup("x"); ok {
		t.Fatal("nil library lookup should fail")
	}
}
