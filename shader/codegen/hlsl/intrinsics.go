package hlsl

import (
	"fmt"
	"strings"
)

// renamedIntrinsics is the subset of the intrinsic mapping that is a
// pure rename: same arity, same argument order.
var renamedIntrinsics = map[string]string{
	"mod":               "fmod",
	"bit_count":         "countbits",
	"bit_firsthigh":     "firstbithigh",
	"bit_firstlow":      "firstbitlow",
	"bit_reverse":       "reversebits",
	"float_to_int_bits":  "asint",
	"float_to_uint_bits": "asuint",
	"int_to_float_bits":  "asfloat",
	"uint_to_float_bits": "asfloat",
}

var atomicOps = map[string]string{
	"atomic_add":             "InterlockedAdd",
	"atomic_and":             "InterlockedAnd",
	"atomic_or":              "InterlockedOr",
	"atomic_xor":             "InterlockedXor",
	"atomic_min":             "InterlockedMin",
	"atomic_max":             "InterlockedMax",
	"atomic_exchange":        "InterlockedExchange",
	"atomic_compare_exchange": "InterlockedCompareExchange",
}

var textureIndexDims = map[string]string{
	"texture_index_1d": "float2",
	"texture_index_2d": "float3",
	"texture_index_3d": "float4",
}

// rewriteCall resolves a source-level intrinsic call (name already
// determined not to be a user function) into HLSL text, given its
// arguments already rendered to HLSL. ok is false for a builtin with
// no rewrite, which the caller passes through verbatim as name(args...).
func rewriteCall(name string, args []string) (string, bool) {
	if hlslName, ok := renamedIntrinsics[name]; ok {
		return fmt.Sprintf("%s(%s)", hlslName, strings.Join(args, ", ")), true
	}
	if hlslName, ok := atomicOps[name]; ok {
		return fmt.Sprintf("%s(%s)", hlslName, strings.Join(args, ", ")), true
	}
	if dim, ok := textureIndexDims[name]; ok && len(args) >= 3 {
		return fmt.Sprintf("%s.Load(%s(%s, %s))", args[0], dim, args[1], args[2]), true
	}

	if name == "texture_sample_2d" && len(args) == 2 {
		return fmt.Sprintf("%s.Sample(GlobalSampler, %s)", args[0], args[1]), true
	}
	if strings.HasPrefix(name, "texture_sample_") && strings.HasSuffix(name, "_level") && len(args) == 3 {
		return fmt.Sprintf("%s.SampleLevel(GlobalSampler, %s, %s)", args[0], args[1], args[2]), true
	}

	switch name {
	case "depth_normalize":
		if len(args) == 3 {
			return fmt.Sprintf("((%s-%s)/(%s-%s))", args[0], args[1], args[2], args[1]), true
		}
	case "depth_linearize":
		if len(args) == 3 {
			z, n, f := args[0], args[1], args[2]
			return fmt.Sprintf("((((%s*%s)/(%s-%s*(%s-%s))) - %s)/(%s-%s))", n, f, f, z, f, n, n, f, n), true
		}
	case "depth_unproject":
		if len(args) == 1 {
			return fmt.Sprintf("(%s.z/%s.w)", args[0], args[0]), true
		}
	}
	return "", false
}

// usesTexture reports whether name is one of the texture-sample
// intrinsics, so the generator knows to emit GlobalSampler on first use.
func usesTexture(name string) bool {
	if name == "texture_sample_2d" {
		return true
	}
	if strings.HasPrefix(name, "texture_sample_") && strings.HasSuffix(name, "_level") {
		return true
	}
	return false
}
