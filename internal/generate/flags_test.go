package generate

import "testing"

func TestExpand(t *testing.T) {
	got := Expand(Flags{All: true, Page: true, File: "routes/admin.php"})
	want := Flags{
		All: true, Page: true, File: "routes/admin.php",
		Model: true, Factory: true, Seed: true, Migration: true,
		Policy: true, Resource: true, Crud: true, Route: true,
	}
	if got != want {
		t.Errorf("Expand() = %+v, want %+v", got, want)
	}
}

func TestExpand_WithoutAll(t *testing.T) {
	in := Flags{Model: true, Force: true}
	if got := Expand(in); got != in {
		t.Errorf("Expand() changed flags without --all: %+v", got)
	}
}

func TestExpand_Idempotent(t *testing.T) {
	inputs := []Flags{
		{},
		{All: true},
		{All: true, Force: true},
		{Crud: true, Route: true},
	}
	for _, in := range inputs {
		once := Expand(in)
		if twice := Expand(once); twice != once {
			t.Errorf("Expand not idempotent for %+v: %+v != %+v", in, twice, once)
		}
	}
}

func TestExpand_DoesNotMutate(t *testing.T) {
	in := Flags{All: true}
	_ = Expand(in)
	if in.Model {
		t.Error("Expand mutated its argument")
	}
}

func TestFlagsAny(t *testing.T) {
	if (Flags{}).Any() {
		t.Error("zero Flags reports Any")
	}
	if !(Flags{File: "x"}).Any() {
		t.Error("File not counted by Any")
	}
}
