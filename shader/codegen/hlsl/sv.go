package hlsl

// svFields lists the synthetic per-stage system values bundled into
// a single `SV` struct passed as the first argument to every user
// function, so call sites never have to special-case which stage
// they're compiled for.
var svFields = map[string][]struct{ name, typ, semantic string }{
	"vertex": {
		{"vertexID", "uint", "SV_VertexID"},
		{"instanceID", "uint", "SV_InstanceID"},
	},
	"fragment": {
		{"primitiveID", "uint", "SV_PrimitiveID"},
		{"isFrontFace", "bool", "SV_IsFrontFace"},
	},
	"compute": {
		{"dispatchThreadID", "uint3", "SV_DispatchThreadID"},
		{"groupID", "uint3", "SV_GroupID"},
		{"groupThreadID", "uint3", "SV_GroupThreadID"},
		{"groupIndex", "uint", "SV_GroupIndex"},
	},
}

// stageOf maps a stage entry-point function name to the svFields key
// covering it; ray_* entries have no SV struct (DXR carries its own
// intrinsics) and are reported as "".
func stageOf(entryName string) string {
	switch entryName {
	case "vertex_main":
		return "vertex"
	case "fragment_main":
		return "fragment"
	case "compute_main":
		return "compute"
	default:
		return ""
	}
}

// writeSVStructs emits one `struct SV_<stage> { ... }` per stage actually used
// by an entry point in this shader, so an HLSL file with only a
// fragment_main doesn't declare unused compute fields.
func (g *generator) writeSVStructs() {
	seen := map[string]bool{}
	for _, fn := range g.sh.Symbols.Functions {
		if !fn.IsEntry {
			continue
		}
		stage := stageOf(fn.Name)
		if stage == "" || seen[stage] {
			continue
		}
		seen[stage] = true
		g.printf("struct SV_%s {\n", stage)
		for _, f := range svFields[stage] {
			g.printf("\t%s %s : %s;\n", f.typ, f.name, f.semantic)
		}
		g.line("};")
		g.line("")
	}
}

// svStructName returns the SV struct type name for the stage an entry
// point belongs to.
func svStructName(entryName string) string {
	stage := stageOf(entryName)
	if stage == "" {
		return ""
	}
	return "SV_" + stage
}
