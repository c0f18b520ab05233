package lexer

// compilerKeywords is every reserved word the Compiler-mode lexer
// recognizes: struct-kind names, texture types, type
// qualifiers, control flow, attributes, and boolean literals.
// Pixel-format tags are not keywords (see formatTags).
var compilerKeywords = map[string]bool{
	// struct kinds
	"struct":          true,
	"shared_struct":   true,
	"uniform_buffer":  true,
	"constant_buffer": true,
	"mutable_buffer":  true,
	"instance_input":  true,
	"vertex_input":    true,
	"vertex_output":   true,
	"fragment_input":  true,
	"fragment_output": true,

	// texture types
	"texture1d":     true,
	"texture2d":     true,
	"texture3d":     true,
	"texture_cube":  true,
	"texture2d_array": true,

	// qualifiers
	"in":    true,
	"out":   true,
	"inout": true,
	"const": true,

	// control flow
	"if":       true,
	"else":     true,
	"while":    true,
	"do":       true,
	"for":      true,
	"switch":   true,
	"case":     true,
	"default":  true,
	"return":   true,
	"break":    true,
	"continue": true,
	"discard":  true,

	// attributes
	"position_in":  true,
	"position_out": true,
	"target":       true,
	"packed_as":    true,

	// boolean literals are lexed as keywords, not identifiers, so the
	// parser can fold them directly into Boolean AST nodes.
	"true":  true,
	"false": true,
}

// formatTags is the UNORM8..FLOAT32 family passed to packed_as(...).
// They are valid identifiers syntactically but the parser requires
// one of these exact names in that position; kept as a lookup table
// rather than lexer keywords so plain identifiers aren't shadowed.
var formatTags = map[string]bool{
	"UNORM8": true, "UNORM16": true,
	"SNORM8": true, "SNORM16": true,
	"UINT8": true, "UINT16": true, "UINT32": true,
	"SINT8": true, "SINT16": true, "SINT32": true,
	"FLOAT16": true, "FLOAT32": true,
}

// IsFormatTag reports whether name is a recognized packed_as format
// tag.
func IsFormatTag(name string) bool { return formatTags[name] }

// preprocessorKeywords is the directive vocabulary recognized only in
// Preprocessor mode.
var preprocessorKeywords = map[string]bool{
	"include": true, "define": true, "if": true, "ifdef": true,
	"ifndef": true, "else": true, "elif": true, "endif": true,
	"pragma": true, "once": true, "defined": true, "undefined": true,
}
