package objectc

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, name, src string) *ObjectFile {
	t.Helper()
	of, err := Parse(name, []byte(src))
	if err != nil {
		t.Fatalf("Parse(%s): %v", name, err)
	}
	return of
}

// TestInheritanceScenario: A.object
// defines OBJECT(A) PARENT(DEFAULT) PUBLIC int x; B.object defines
// OBJECT(B) PARENT(A) PUBLIC int y;
func TestInheritanceScenario(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) PUBLIC int x;`)
	bObj := mustParse(t, "B.object", `OBJECT(B) PARENT(A) PUBLIC int y;`)

	sorted, err := Resolve([]*ObjectFile{a, bObj})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	var names []string
	for _, o := range sorted {
		names = append(names, o.Name)
	}
	want := []string{"DEFAULT", "A", "B"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("sorted order = %v, want %v", names, want)
	}

	var bNode *ObjectFile
	for _, o := range sorted {
		if o.Name == "B" {
			bNode = o
		}
	}
	foundX := false
	for _, m := range bNode.InheritedVariables {
		if m.Name == "x" {
			foundX = true
		}
	}
	if !foundX {
		t.Fatal("B.InheritedVariables does not contain x")
	}

	header := GenerateHeader(sorted)
	if !strings.Contains(header, "class B_t : public A_t") {
		t.Fatalf("header does not declare B_t : public A_t:\n%s", header)
	}
	if strings.Count(header, "int y") != 1 {
		t.Fatalf("expected B_t to declare y exactly once:\n%s", header)
	}
}

// TestEventPropagationScenario: A
// implements EVENT_UPDATE; B : A does not. After sort,
// B.Events[UPDATE].Inherits == true, and the generated source calls
// the parent's event method.
func TestEventPropagationScenario(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) EVENT_UPDATE { do_thing(); }`)
	bObj := mustParse(t, "B.object", `OBJECT(B) PARENT(A)`)

	sorted, err := Resolve([]*ObjectFile{a, bObj})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	var bNode *ObjectFile
	for _, o := range sorted {
		if o.Name == "B" {
			bNode = o
		}
	}
	if !bNode.Events[EventUpdate].Inherits {
		t.Fatal("expected B.Events[UPDATE].Inherits == true")
	}

	source := GenerateSource(sorted)
	if !strings.Contains(source, "A_t::event_update(delta);") {
		t.Fatalf("expected a generated call to A_t::event_update, got:\n%s", source)
	}
}

func TestHashCollisionIsFatal(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) HASH(0x1)`)
	bObj := mustParse(t, "B.object", `OBJECT(B) PARENT(DEFAULT) HASH(0x1)`)

	sorted, err := Resolve([]*ObjectFile{a, bObj})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := Validate(sorted); err == nil {
		t.Fatal("expected a HASH collision error")
	}
}

func TestSelfParentIsFatal(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(A)`)
	if _, err := Resolve([]*ObjectFile{a}); err == nil {
		t.Fatal("expected self-inheritance to be fatal")
	}
}

func TestMissingParentIsFatal(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(NOSUCHTHING)`)
	if _, err := Resolve([]*ObjectFile{a}); err == nil {
		t.Fatal("expected a missing-parent error")
	}
}

func TestWriteWithoutReadIsFatal(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) WRITE { buf.write(&id, sizeof(id)); }`)
	sorted, err := Resolve([]*ObjectFile{a})
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(sorted); err == nil {
		t.Fatal("expected WRITE without READ to be fatal")
	}
}

func TestNetworkedRequiresSerialize(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) NETWORKED(true)`)
	sorted, err := Resolve([]*ObjectFile{a})
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(sorted); err == nil {
		t.Fatal("expected NETWORKED without SERIALIZE/DESERIALIZE to be fatal")
	}
}

func TestDisableForbidsInheritsAndImplements(t *testing.T) {
	a := mustParse(t, "A.object", `OBJECT(A) PARENT(DEFAULT) EVENT_UPDATE DISABLE {}`)
	if !a.Events[EventUpdate].Disabled {
		t.Fatal("expected Disabled")
	}
	if a.Events[EventUpdate].Implements || a.Events[EventUpdate].Inherits {
		t.Fatal("DISABLE must forbid both Implements and Inherits")
	}

	bObj := mustParse(t, "B.object", `OBJECT(B) PARENT(A)`)
	sorted, err := Resolve([]*ObjectFile{a, bObj})
	if err != nil {
		t.Fatal(err)
	}
	var bNode *ObjectFile
	for _, o := range sorted {
		if o.Name == "B" {
			bNode = o
		}
	}
	if bNode.Events[EventUpdate].Inherits {
		t.Fatal("a disabled parent event must not propagate Inherits to the child")
	}
}

func TestTokenizeRejectsDuplicateObjectKeyword(t *testing.T) {
	_, err := tokenize([]byte("OBJECT(A) PARENT(DEFAULT) OBJECT(B)"))
	if err == nil {
		t.Fatal("expected an error for OBJECT appearing twice (maxCount 1)")
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	src := []byte("// OBJECT(Ignored)\nOBJECT(Real) /* PARENT(Ignored2) */ PARENT(DEFAULT)")
	tokens, err := tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, tok := range tokens {
		if tok.kw == KwObject {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one OBJECT token, got %d", count)
	}
}
