package parser

import "testing"

const minimalVertexShader = `
vertex_input VSInput {
	position_in float3 pos;
	float2 uv;
}
vertex_output VSOutput {
	position_out float4 clipPos;
	float2 uv;
}
void vertex_main(VSInput v, VSOutput o) {
	o.uv = v.uv;
}
`

func TestParsesMinimalVertexShader(t *testing.T) {
	sh, err := Parse("test.shader", []byte(minimalVertexShader))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sh.Symbols.Structs) != 2 {
		t.Fatalf("expected 2 structs, got %d", len(sh.Symbols.Structs))
	}
	if len(sh.Symbols.Functions) != 1 || !sh.Symbols.Functions[0].IsEntry {
		t.Fatalf("expected vertex_main registered as an entry point")
	}
}

// TestVertexMainReversedParametersFails:
// vertex_main with its first two parameters swapped must fail with an
// exact diagnostic.
func TestVertexMainReversedParametersFails(t *testing.T) {
	src := `
vertex_input VSInput {
	float3 pos;
}
vertex_output VSOutput {
	position_out float4 clipPos;
}
void vertex_main(VSOutput o, VSInput i) {
}
`
	_, err := Parse("test.shader", []byte(src))
	if err == nil {
		t.Fatal("expected an error for reversed vertex_main parameters")
	}
	want := "vertex_main() first parameter must be type 'vertex_input'"
	if !containsSubstring(err.Error(), want) {
		t.Fatalf("error = %q, want it to contain %q", err.Error(), want)
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestUniformBufferSlotCollisionIsFatal(t *testing.T) {
	src := `
uniform_buffer Frame(0) {
	float4 tint;
}
uniform_buffer Lighting(0) {
	float4 sunColor;
}
void vertex_main(vertex_input v, vertex_output o) {
}
`
	_, err := Parse("test.shader", []byte(src))
	if err == nil {
		t.Fatal("expected a slot collision error")
	}
}

func TestSwizzleOnVectorPrimitive(t *testing.T) {
	src := `
vertex_input VSInput {
	float4 pos;
}
vertex_output VSOutput {
	position_out float4 clipPos;
}
void vertex_main(VSInput v, VSOutput o) {
	o.clipPos = v.pos.xyzw;
}
`
	sh, err := Parse("test.shader", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, n := range sh.Arena.Nodes {
		if n.Kind == NSwizzle && n.Mask == "xyzw" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a Swizzle node with mask xyzw")
	}
}

func TestComputeMainThreadGroup(t *testing.T) {
	src := `
mutable_buffer Data(0) {
	float4 value;
}
void compute_main(8, 8, 1, Data d) {
}
`
	sh, err := Parse("test.shader", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fn := sh.Symbols.Functions[0]
	if fn.ThreadGroup != [3]int{8, 8, 1} {
		t.Fatalf("expected thread group {8,8,1}, got %v", fn.ThreadGroup)
	}
}
