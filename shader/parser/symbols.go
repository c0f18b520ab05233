package parser

import "fmt"

// StructKind distinguishes the ten struct-like declaration forms
// legal at program scope.
type StructKind int

const (
	KindStruct StructKind = iota
	KindSharedStruct
	KindUniformBuffer
	KindConstantBuffer
	KindMutableBuffer
	KindInstanceInput
	KindVertexInput
	KindVertexOutput
	KindFragmentInput
	KindFragmentOutput
)

// TypeInfo is one entry in the types table: either a builtin scalar/
// vector/matrix primitive or a user struct, referenced by StructID
// when IsStruct.
type TypeInfo struct {
	Name     string
	IsStruct bool
	StructID int
	Lanes    int // component count for builtin primitives (1 for scalars, 16/9 for matrices); 0 for structs
}

// FunctionInfo is one entry in the functions table.
type FunctionInfo struct {
	Name       string
	ReturnType string
	Params     []Param
	Body       NodeID
	IsEntry    bool
	ThreadGroup [3]int // compute_main's leading (X,Y,Z); zero for every other function
}

// Param is one function or stage-entry parameter.
type Param struct {
	Name string
	Type string
}

// VariableInfo is one entry in the variables table: a local, a
// parameter, or a struct member.
type VariableInfo struct {
	Name string
	Type string
}

// Member is one field of a user struct, carrying the position_in/
// position_out/target/packed_as attributes.
type Member struct {
	Name       string
	Type       string
	IsPosition bool   // position_in or position_out
	Target     int    // set by target(slot, ...); -1 if unset
	TargetKind string // "COLOR" or "DEPTH"
	PackedAs   string // packed_as(FMT) format tag; "" if unset
}

// StructInfo is one entry in the structs table.
type StructInfo struct {
	Name    string
	Kind    StructKind
	Slot    int // buffer/texture binding slot; -1 if not applicable
	Size    int // optional buffer size argument; 0 if unset
	Members []Member
}

// TextureInfo is one entry in the textures table.
type TextureInfo struct {
	Name string
	Type string // texture1d/texture2d/texture3d/texture_cube/texture2d_array
	Slot int
}

// Shader-wide slot maxima.
const (
	MaxBufferSlots  = 14
	MaxTextureSlots = 32
	MaxTargetSlots  = 8
	MaxDepthSlots   = 1
)

// SlotSet is a fixed-size bitmap tracking which slots in a binding
// class are already claimed, used to detect collisions across
// buffers, textures, and fragment output targets.
type SlotSet struct {
	used [MaxTextureSlots]bool // sized to the largest class; smaller classes only use a prefix
	max  int
}

func newSlotSet(max int) SlotSet { return SlotSet{max: max} }

// Claim marks slot as used, returning an error if it is out of range
// or already bound.
func (s *SlotSet) Claim(slot int, class string) error {
	if slot < 0 || slot >= s.max {
		return fmt.Errorf("%s slot %d out of range [0,%d)", class, slot, s.max)
	}
	if s.used[slot] {
		return fmt.Errorf("%s slot %d already bound", class, slot)
	}
	s.used[slot] = true
	return nil
}

// SymbolTable holds every name-indexed table for one shader file:
// contiguous vectors plus name-to-ID maps, a lexical scope stack for
// variable lookup, and the slot bitmaps.
type SymbolTable struct {
	Types     []TypeInfo
	Functions []FunctionInfo
	Variables []VariableInfo
	Structs   []StructInfo
	Textures  []TextureInfo

	TypeMap     map[string]int
	FunctionMap map[string]int
	TextureMap  map[string]int
	SwizzleMap  map[string]string
	SVSemanticMap map[string]string

	scope []int // stack of VariableID currently in lexical scope

	BufferSlots  SlotSet
	TextureSlots SlotSet
	TargetSlots  SlotSet
	DepthSlots   SlotSet
}

var builtinPrimitives = []struct {
	name  string
	lanes int
}{
	{"float", 1}, {"float2", 2}, {"float3", 3}, {"float4", 4},
	{"int", 1}, {"int2", 2}, {"int3", 3}, {"int4", 4},
	{"uint", 1}, {"uint2", 2}, {"uint3", 3}, {"uint4", 4},
	{"bool", 1}, {"bool2", 2}, {"bool3", 3}, {"bool4", 4},
	{"float4x4", 16}, {"float3x3", 9},
}

// NewSymbolTable returns a table preloaded with builtin primitive
// types and the standard swizzle/SV-semantic maps.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		TypeMap:       map[string]int{},
		FunctionMap:   map[string]int{},
		TextureMap:    map[string]int{},
		SwizzleMap:    map[string]string{},
		SVSemanticMap: map[string]string{},
		BufferSlots:   newSlotSet(MaxBufferSlots),
		TextureSlots:  newSlotSet(MaxTextureSlots),
		TargetSlots:   newSlotSet(MaxTargetSlots),
		DepthSlots:    newSlotSet(MaxDepthSlots),
	}
	for _, p := range builtinPrimitives {
		id := len(st.Types)
		st.Types = append(st.Types, TypeInfo{Name: p.name, Lanes: p.lanes})
		st.TypeMap[p.name] = id
	}
	for _, c := range []byte("xyzw") {
		st.SwizzleMap[string(c)] = string(c)
	}
	for _, c := range []byte("rgba") {
		st.SwizzleMap[string(c)] = string(c)
	}
	st.SVSemanticMap["POSITION"] = "SV_POSITION"
	st.SVSemanticMap["DEPTH"] = "SV_DEPTH"
	return st
}

// AddStruct registers a new struct/buffer/stage-IO declaration and
// returns its StructID.
func (st *SymbolTable) AddStruct(info StructInfo) int {
	id := len(st.Structs)
	st.Structs = append(st.Structs, info)
	st.TypeMap[info.Name] = len(st.Types)
	st.Types = append(st.Types, TypeInfo{Name: info.Name, IsStruct: true, StructID: id})
	return id
}

// AddTexture registers a texture declaration and returns its ID.
func (st *SymbolTable) AddTexture(info TextureInfo) int {
	id := len(st.Textures)
	st.Textures = append(st.Textures, info)
	st.TextureMap[info.Name] = id
	return id
}

// AddFunction registers a function (including stage entry points) and
// returns its ID.
func (st *SymbolTable) AddFunction(info FunctionInfo) int {
	id := len(st.Functions)
	st.Functions = append(st.Functions, info)
	st.FunctionMap[info.Name] = id
	return id
}

// PushVariable declares a new variable in the current lexical scope
// and returns its VariableID.
func (st *SymbolTable) PushVariable(v VariableInfo) int {
	id := len(st.Variables)
	st.Variables = append(st.Variables, v)
	st.scope = append(st.scope, id)
	return id
}

// EnterScope and ExitScope bracket a lexical block; ExitScope drops
// every variable pushed since the matching EnterScope from
// visibility, though the Variables table itself keeps them (the arena
// never shrinks, only the scope stack used for name resolution does).
func (st *SymbolTable) EnterScope() int { return len(st.scope) }

func (st *SymbolTable) ExitScope(mark int) { st.scope = st.scope[:mark] }

// FindVariable resolves name against the scope stack, innermost
// first's scope_find_variable.
func (st *SymbolTable) FindVariable(name string) (int, bool) {
	for i := len(st.scope) - 1; i >= 0; i-- {
		id := st.scope[i]
		if st.Variables[id].Name == name {
			return id, true
		}
	}
	return 0, false
}
