package objectc

import (
	"fmt"
	"strings"
)

// GenerateHeader emits objects.generated.hpp: one class per object
// in sorted (parent-before-child) order, each deriving from its
// parent's generated class, plus a templated ObjectHandle<Object::Name>
// per object.
func GenerateHeader(sorted []*ObjectFile) string {
	var b strings.Builder
	b.WriteString("// Code generated by the object-definition compiler. DO NOT EDIT.\n")
	b.WriteString("#pragma once\n\n")
	b.WriteString("#include \"objects.system.generated.hpp\"\n")
	for _, inc := range collectIncludes(sorted, true) {
		fmt.Fprintf(&b, "#include \"%s\"\n", inc)
	}
	b.WriteString("\nnamespace CoreObjects {\n\n")

	for _, o := range sorted {
		writeClass(&b, o)
		b.WriteString("\n")
	}
	for _, o := range sorted {
		writeGlobalDecls(&b, o)
	}
	for _, o := range sorted {
		writeHandle(&b, o)
	}

	b.WriteString("} // namespace CoreObjects\n")
	return b.String()
}

// collectIncludes unions every object's HEADER_INCLUDES (or
// SOURCE_INCLUDES when header is false) preserving sorted-object
// order, deduplicated.
func collectIncludes(sorted []*ObjectFile, header bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range sorted {
		list := o.IncludesHeader
		if !header {
			list = o.IncludesSource
		}
		for _, inc := range list {
			if !seen[inc] {
				seen[inc] = true
				out = append(out, inc)
			}
		}
	}
	return out
}

// membersOf returns o's own members of exactly vis, split by
// function/data.
func membersOf(o *ObjectFile, vis Visibility, functions bool) []Member {
	var out []Member
	for _, m := range o.Members {
		if m.Visibility == vis && m.IsFunction == functions {
			out = append(out, m)
		}
	}
	return out
}

// writeGlobalDecls emits the header-side form of an object's GLOBAL
// members: extern for functions and for variables not marked DVAR
// (DVAR globals get only their static source definition).
func writeGlobalDecls(b *strings.Builder, o *ObjectFile) {
	for _, m := range membersOf(o, VisGlobal, true) {
		fmt.Fprintf(b, "extern %s;\n", functionSignature(m))
	}
	for _, m := range membersOf(o, VisGlobal, false) {
		if m.IsDVAR {
			continue
		}
		fmt.Fprintf(b, "extern %s;\n", m.Decl)
	}
}

func writeClass(b *strings.Builder, o *ObjectFile) {
	parentType := ""
	if o.Parent != nil {
		parentType = o.Parent.Type
	}

	fmt.Fprintf(b, "class %s", o.Type)
	if parentType != "" {
		fmt.Fprintf(b, " : public %s", parentType)
	}
	b.WriteString(" {\n")

	for _, f := range o.Friends {
		fmt.Fprintf(b, "\tfriend class %s;\n", f)
	}
	if o.HasWrite || o.HasSerialize {
		fmt.Fprintf(b, "\tfriend struct ObjectHandle<Object::%s>;\n", o.Name)
	}

	b.WriteString("public:\n")
	fmt.Fprintf(b, "\t%s() = default;\n", o.Type)
	for _, c := range o.Constructors {
		if c.Params == "" {
			continue // the default constructor above already covers this
		}
		fmt.Fprintf(b, "\t%s(%s);\n", o.Type, c.Params)
	}

	for _, m := range membersOf(o, VisPublic, false) {
		fmt.Fprintf(b, "\t%s;\n", memberDecl(m))
	}
	for _, m := range membersOf(o, VisPublic, true) {
		fmt.Fprintf(b, "\tvirtual %s;\n", functionSignature(m))
	}
	for e := Event(0); e < EventCount; e++ {
		entry := o.Events[e]
		if entry.Disabled {
			continue
		}
		if entry.Implements || entry.Inherits {
			_, ret, params, _ := EventInfo(e)
			fmt.Fprintf(b, "\tvirtual %s %s(%s);\n", ret, eventMethodName(e), params)
		}
	}

	writeProtectedMembers(b, o)

	b.WriteString("private:\n")
	if len(o.Versions) > 0 {
		fmt.Fprintf(b, "\tenum { %s, VERSION_COUNT };\n", strings.Join(o.Versions, ", "))
	}
	if o.HasWrite {
		b.WriteString("\tvoid _write(Buffer& buf) const;\n")
		b.WriteString("\tbool _read(Buffer& buf);\n")
	}
	if o.HasSerialize {
		b.WriteString("\tvoid _serialize(Buffer& buf) const;\n")
		b.WriteString("\tbool _deserialize(Buffer& buf);\n")
	}
	for _, m := range o.Members {
		if m.Visibility != VisPrivate || m.IsFunction {
			continue
		}
		fmt.Fprintf(b, "\t%s;\n", memberDecl(m))
	}
	for _, m := range o.Members {
		if m.Visibility != VisPrivate || !m.IsFunction {
			continue
		}
		fmt.Fprintf(b, "\t%s;\n", functionSignature(m))
	}
	for e := Event(0); e < EventCount; e++ {
		entry := o.Events[e]
		if !entry.Disabled {
			continue
		}
		_, ret, params, _ := EventInfo(e)
		fmt.Fprintf(b, "\t%s %s(%s) {}\n", ret, eventMethodName(e), params)
	}

	b.WriteString("};\n")
}

func writeProtectedMembers(b *strings.Builder, o *ObjectFile) {
	hasAny := false
	for _, m := range o.Members {
		if m.Visibility == VisProtected {
			hasAny = true
			break
		}
	}
	if !hasAny {
		return
	}
	b.WriteString("protected:\n")
	for _, m := range o.Members {
		if m.Visibility != VisProtected {
			continue
		}
		if m.IsFunction {
			fmt.Fprintf(b, "\tvirtual %s;\n", functionSignature(m))
		} else {
			fmt.Fprintf(b, "\t%s;\n", memberDecl(m))
		}
	}
}

func memberDecl(m Member) string {
	if m.Init != "" {
		return fmt.Sprintf("%s = %s", m.Decl, m.Init)
	}
	return m.Decl
}

func functionSignature(m Member) string {
	return fmt.Sprintf("%s(%s)", m.Decl, m.Params)
}

func writeHandle(b *strings.Builder, o *ObjectFile) {
	fmt.Fprintf(b, "template <> struct ObjectHandle<Object::%s> {\n", o.Name)
	fmt.Fprintf(b, "\tstatic %s stub;\n", o.Type)
	fmt.Fprintf(b, "\t%s* ptr = nullptr;\n", o.Type)
	fmt.Fprintf(b, "\t%s* operator->() const { return ptr ? ptr : &stub; }\n", o.Type)
	b.WriteString("\texplicit operator bool() const { return ptr != nullptr; }\n")
	if o.HasWrite {
		fmt.Fprintf(b, "\tstatic void write(Buffer& buf, const %s& obj) { obj._write(buf); }\n", o.Type)
		fmt.Fprintf(b, "\tstatic bool read(Buffer& buf, %s& obj) { return obj._read(buf); }\n", o.Type)
	}
	if o.HasSerialize {
		fmt.Fprintf(b, "\tstatic void serialize(Buffer& buf, const %s& obj) { obj._serialize(buf); }\n", o.Type)
		fmt.Fprintf(b, "\tstatic bool deserialize(Buffer& buf, %s& obj) { return obj._deserialize(buf); }\n", o.Type)
	}
	b.WriteString("};\n\n")
}
