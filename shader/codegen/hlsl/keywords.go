package hlsl

// reserved is the set of HLSL identifiers a generated name must never
// collide with: FXC/DXC keywords, reserved words, and intrinsic
// function names, condensed from the naga project's HLSL backend
// keyword table.
var reserved = map[string]bool{
	"AppendStructuredBuffer": true, "asm": true, "asm_fragment": true,
	"BlendState": true, "bool": true, "break": true, "Buffer": true,
	"ByteAddressBuffer": true, "case": true, "cbuffer": true, "centroid": true,
	"class": true, "column_major": true, "compile": true, "compile_fragment": true,
	"CompileShader": true, "const": true, "continue": true, "ComputeShader": true,
	"ConsumeStructuredBuffer": true, "default": true, "DepthStencilState": true,
	"DepthStencilView": true, "discard": true, "do": true, "double": true,
	"DomainShader": true, "dword": true, "else": true, "export": true,
	"extern": true, "false": true, "float": true, "for": true, "fxgroup": true,
	"GeometryShader": true, "groupshared": true, "half": true, "Hullshader": true,
	"if": true, "in": true, "inline": true, "inout": true, "InputPatch": true,
	"int": true, "interface": true, "line": true, "lineadj": true, "linear": true,
	"LineStream": true, "matrix": true, "min10float": true, "min12int": true,
	"min16float": true, "min16int": true, "min16uint": true, "namespace": true,
	"nointerpolation": true, "noperspective": true, "NULL": true, "out": true,
	"OutputPatch": true, "packoffset": true, "pass": true, "pixelfragment": true,
	"PixelShader": true, "point": true, "PointStream": true, "precise": true,
	"RasterizerState": true, "RenderTargetView": true, "return": true,
	"register": true, "row_major": true, "RWBuffer": true, "RWByteAddressBuffer": true,
	"RWStructuredBuffer": true, "RWTexture1D": true, "RWTexture1DArray": true,
	"RWTexture2D": true, "RWTexture2DArray": true, "RWTexture3D": true,
	"sample": true, "sampler": true, "SamplerState": true, "SamplerComparisonState": true,
	"shared": true, "snorm": true, "stateblock": true, "stateblock_state": true,
	"static": true, "string": true, "struct": true, "switch": true,
	"StructuredBuffer": true, "tbuffer": true, "technique": true, "technique10": true,
	"technique11": true, "texture": true, "Texture1D": true, "Texture1DArray": true,
	"Texture2D": true, "Texture2DArray": true, "Texture2DMS": true, "Texture2DMSArray": true,
	"Texture3D": true, "TextureCube": true, "TextureCubeArray": true, "true": true,
	"typedef": true, "triangle": true, "triangleadj": true, "TriangleStream": true,
	"uint": true, "uniform": true, "unorm": true, "unsigned": true, "vector": true,
	"vertexfragment": true, "VertexShader": true, "void": true, "volatile": true,
	"while": true,

	"auto": true, "catch": true, "char": true, "const_cast": true, "delete": true,
	"dynamic_cast": true, "enum": true, "explicit": true, "friend": true, "goto": true,
	"long": true, "mutable": true, "new": true, "operator": true, "private": true,
	"protected": true, "public": true, "reinterpret_cast": true, "short": true,
	"signed": true, "sizeof": true, "static_cast": true, "template": true, "this": true,
	"throw": true, "try": true, "typename": true, "union": true, "using": true,
	"virtual": true,

	"abs": true, "acos": true, "all": true, "any": true, "asfloat": true,
	"asin": true, "asint": true, "asuint": true, "atan": true, "atan2": true,
	"ceil": true, "clamp": true, "clip": true, "cos": true, "cosh": true,
	"countbits": true, "cross": true, "ddx": true, "ddy": true, "degrees": true,
	"determinant": true, "distance": true, "dot": true, "exp": true, "exp2": true,
	"faceforward": true, "firstbithigh": true, "firstbitlow": true, "floor": true,
	"fma": true, "fmod": true, "frac": true, "frexp": true, "fwidth": true,
	"InterlockedAdd": true, "InterlockedAnd": true, "InterlockedCompareExchange": true,
	"InterlockedCompareStore": true, "InterlockedExchange": true, "InterlockedMax": true,
	"InterlockedMin": true, "InterlockedOr": true, "InterlockedXor": true,
	"isfinite": true, "isinf": true, "isnan": true, "ldexp": true, "length": true,
	"lerp": true, "lit": true, "log": true, "log10": true, "log2": true, "mad": true,
	"max": true, "min": true, "modf": true, "mul": true, "noise": true,
	"normalize": true, "pow": true, "radians": true, "rcp": true, "reflect": true,
	"refract": true, "reversebits": true, "round": true, "rsqrt": true,
	"saturate": true, "sign": true, "sin": true, "sincos": true, "sinh": true,
	"smoothstep": true, "sqrt": true, "step": true, "tan": true, "tanh": true,
	"GlobalSampler": true, "SV": true,
}

// IsReserved reports whether name collides with an HLSL keyword,
// reserved word, or intrinsic.
func IsReserved(name string) bool { return reserved[name] }

// Escape prefixes an underscore onto any identifier that collides
// with an HLSL reserved word, leaving ordinary identifiers untouched.
func Escape(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if IsReserved(name) {
		return "_" + name
	}
	return name
}
