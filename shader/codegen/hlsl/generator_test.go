package hlsl

import (
	"strings"
	"testing"

	"github.com/mantaforge/buildtool/shader/parser"
)

const minimalFragmentShader = `
uniform_buffer Tint(0) {
	float4 color;
}
fragment_input FSInput {
	float2 uv;
}
fragment_output FSOutput {
	float4 color target(0, COLOR);
}
void fragment_main(FSInput i, FSOutput o, Tint t) {
	o.color = i.uv.xyxy * t.color;
}
`

func TestGenerateFragmentShader(t *testing.T) {
	sh, err := parser.Parse("test.shader", []byte(minimalFragmentShader))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(sh)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.Contains(out.Source, "cbuffer Tint : register(b0)") {
		t.Errorf("source missing Tint cbuffer:\n%s", out.Source)
	}
	if !strings.Contains(out.Source, "float4 Tint_color;") {
		t.Errorf("source missing namespaced buffer member:\n%s", out.Source)
	}
	if !strings.Contains(out.Source, "float4 color : SV_TARGET0;") {
		t.Errorf("source missing fragment output semantic:\n%s", out.Source)
	}
	if !strings.Contains(out.Source, "struct SV_fragment {") {
		t.Errorf("source missing SV_fragment struct:\n%s", out.Source)
	}
	if !strings.Contains(out.Source, "o.color = i.uv.xyxy * Tint_color;") {
		t.Errorf("source missing rewritten buffer-member reference:\n%s", out.Source)
	}
}

const texturedVertexShader = `
vertex_input VSInput {
	position_in float3 pos;
	float4 color packed_as(UNORM8);
}
vertex_output VSOutput {
	position_out float4 clipPos;
}
void vertex_main(VSInput v, VSOutput o) {
}
`

func TestGenerateInputLayout(t *testing.T) {
	sh, err := parser.Parse("test.shader", []byte(texturedVertexShader))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(sh)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.InputLayout, `"POSITION", 0, DXGI_FORMAT_R32G32B32_FLOAT, 0, 0, D3D11_INPUT_PER_VERTEX_DATA, 0`) {
		t.Errorf("input layout missing position row:\n%s", out.InputLayout)
	}
	if !strings.Contains(out.InputLayout, `"TEXCOORD", 0, DXGI_FORMAT_R8G8B8A8_UNORM, 0, 12, D3D11_INPUT_PER_VERTEX_DATA, 0`) {
		t.Errorf("input layout missing packed color row:\n%s", out.InputLayout)
	}
}

const textureSamplingShader = `
texture2d Albedo(0);
fragment_input FSInput {
	float2 uv;
}
fragment_output FSOutput {
	float4 color target(0, COLOR);
}
void fragment_main(FSInput i, FSOutput o) {
	o.color = texture_sample_2d(Albedo, i.uv);
}
`

func TestGenerateDeclaresGlobalSamplerOnlyOnUse(t *testing.T) {
	sh, err := parser.Parse("test.shader", []byte(textureSamplingShader))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(sh)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.Source, "SamplerState GlobalSampler : register(s0);") {
		t.Errorf("source missing GlobalSampler declaration:\n%s", out.Source)
	}
	if !strings.Contains(out.Source, "Albedo.Sample(GlobalSampler, i.uv)") {
		t.Errorf("source missing rewritten texture sample call:\n%s", out.Source)
	}
	if strings.Count(out.Source, "SamplerState GlobalSampler") != 1 {
		t.Errorf("GlobalSampler declared more than once:\n%s", out.Source)
	}
}

func TestGenerateReflectionStd140Padding(t *testing.T) {
	const src = `
uniform_buffer Camera(0) {
	float3 eye;
	float4x4 viewProj;
}
fragment_input FSInput {
	float2 uv;
}
fragment_output FSOutput {
	float4 color target(0, COLOR);
}
void fragment_main(FSInput i, FSOutput o, Camera c) {
	o.color = c.viewProj[0];
}
`
	sh, err := parser.Parse("test.shader", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Generate(sh)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.ReflectionHPP, "Float3 eye;") {
		t.Errorf("reflection missing eye member:\n%s", out.ReflectionHPP)
	}
	if !strings.Contains(out.ReflectionHPP, "uint8_t _pad1[4];") {
		t.Errorf("reflection missing std140 padding after float3:\n%s", out.ReflectionHPP)
	}
	if !strings.Contains(out.ReflectionHPP, "static_assert(sizeof(Camera) == 80") {
		t.Errorf("reflection missing size static_assert:\n%s", out.ReflectionHPP)
	}
}
