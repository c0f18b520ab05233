package objectc

import (
	"fmt"
	"strings"
)

// GenerateSource emits objects.generated.cpp: the compile-time
// per-type tables, the category/type bucket maps, per-category event
// dispatch functions and their function-pointer tables, the
// ObjectContext dispatchers, and every object's
// own method bodies (constructors, declared functions, write/read,
// serialize/deserialize, and event methods with their auto-generated
// parent call).
func GenerateSource(sorted []*ObjectFile) string {
	var b strings.Builder
	b.WriteString("// Code generated by the object-definition compiler. DO NOT EDIT.\n")
	b.WriteString("#include \"objects.generated.hpp\"\n")
	for _, inc := range collectIncludes(sorted, false) {
		fmt.Fprintf(&b, "#include \"%s\"\n", inc)
	}
	b.WriteString("\nnamespace CoreObjects {\n\n")

	writeTypeTables(&b, sorted)
	writeCategoryTables(&b, sorted)
	writeGlobalDefs(&b, sorted)
	for _, o := range sorted {
		fmt.Fprintf(&b, "%s ObjectHandle<Object::%s>::stub;\n", o.Type, o.Name)
	}
	b.WriteString("\n")
	writeEventDispatch(&b, sorted)
	writeMethodBodies(&b, sorted)

	b.WriteString("} // namespace CoreObjects\n")
	return b.String()
}

func writeTypeTables(b *strings.Builder, sorted []*ObjectFile) {
	fields := []struct {
		decl string
		fn   func(*ObjectFile) string
	}{
		{"constexpr size_t TYPE_SIZE[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("sizeof(%s)", o.Type) }},
		{"constexpr size_t TYPE_ALIGNMENT[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("alignof(%s)", o.Type) }},
		{"constexpr const char* TYPE_NAME[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("%q", o.Name) }},
		{"constexpr int32_t TYPE_BUCKET_CAPACITY[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("%d", o.BucketSize) }},
		{"constexpr int64_t TYPE_MAX_COUNT[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("%d", o.CountMax) }},
		{"constexpr uint16_t TYPE_INHERITANCE_DEPTH[TYPE_COUNT] = {", func(o *ObjectFile) string { return fmt.Sprintf("%d", o.Depth) }},
		{"constexpr uint64_t TYPE_HASH[TYPE_COUNT] = {", func(o *ObjectFile) string { return "0x" + o.HashHex + "ULL" }},
		{"constexpr bool TYPE_SERIALIZED[TYPE_COUNT] = {", func(o *ObjectFile) string { return boolLit(o.HasSerialize) }},
	}
	for _, f := range fields {
		b.WriteString(f.decl + "\n")
		for _, o := range sorted {
			fmt.Fprintf(b, "\t%s,\n", f.fn(o))
		}
		b.WriteString("};\n")
	}
	b.WriteString("\n")
}

func boolLit(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func writeCategoryTables(b *strings.Builder, sorted []*ObjectFile) {
	categories := Categories(sorted)

	fmt.Fprintf(b, "constexpr int32_t CATEGORY_TYPE_BUCKET[CATEGORY_COUNT][TYPE_COUNT] = {\n")
	for _, cat := range categories {
		b.WriteString("\t{ ")
		bucket := 0
		for _, o := range sorted {
			if InCategory(o, cat) {
				fmt.Fprintf(b, "%d, ", bucket)
				bucket++
			} else {
				b.WriteString("-1, ")
			}
		}
		b.WriteString("},\n")
	}
	b.WriteString("};\n\n")

	fmt.Fprintf(b, "constexpr uint32_t CATEGORY_TYPE_COUNT[CATEGORY_COUNT] = {\n")
	for _, cat := range categories {
		fmt.Fprintf(b, "\t%d,\n", len(TypesInCategory(sorted, cat)))
	}
	b.WriteString("};\n\n")

	for ci, cat := range categories {
		members := TypesInCategory(sorted, cat)
		fmt.Fprintf(b, "constexpr Object CATEGORY_TYPES_%d[] = {\n", ci)
		for _, o := range members {
			fmt.Fprintf(b, "\tObject::%s,\n", o.Name)
		}
		b.WriteString("};\n")
	}
	b.WriteString("constexpr const Object* CATEGORY_TYPES[CATEGORY_COUNT] = {\n")
	for ci := range categories {
		fmt.Fprintf(b, "\tCATEGORY_TYPES_%d,\n", ci)
	}
	b.WriteString("};\n\n")
}

// dispatchableEvents returns every void-returning event other than
// CREATE. Value-returning events (TEST, NETWORK_RECEIVE) are called
// per object, never broadcast; CREATE has no per-category broadcast
// because object construction is driven by the allocator, not a
// per-frame sweep.
func dispatchableEvents() []Event {
	var out []Event
	for e := Event(0); e < EventCount; e++ {
		if e == EventCreate {
			continue
		}
		_, ret, _, _ := EventInfo(e)
		if ret == "void" {
			out = append(out, e)
		}
	}
	return out
}

func writeEventDispatch(b *strings.Builder, sorted []*ObjectFile) {
	categories := Categories(sorted)

	for _, e := range dispatchableEvents() {
		_, _, params, callArgs := EventInfo(e)
		method := eventMethodName(e)

		for _, cat := range categories {
			fmt.Fprintf(b, "static void %s_%s(ObjectContext& ctx%s) {\n", method, cat, prefixComma(params))
			for _, o := range TypesInCategory(sorted, cat) {
				if !o.IsInstantiable() || !eligibleForDispatch(o, e) {
					continue
				}
				fmt.Fprintf(b, "\tforeach_object(ctx, Object::%s, [&](ObjectHandle<Object::%s>& h) { h->%s(%s); });\n",
					o.Name, o.Name, method, callArgs)
			}
			b.WriteString("}\n")
		}

		fmt.Fprintf(b, "using %sFn = void(*)(ObjectContext&%s);\n", method, prefixComma(params))
		fmt.Fprintf(b, "constexpr %sFn %s_BY_CATEGORY[CATEGORY_COUNT] = {\n", method, method)
		for _, cat := range categories {
			fmt.Fprintf(b, "\t&%s_%s,\n", method, cat)
		}
		b.WriteString("};\n")

		fmt.Fprintf(b, "void ObjectContext::%s(%s) {\n", method, params)
		fmt.Fprintf(b, "\tfor (uint32_t c = 0; c < CATEGORY_COUNT; ++c) { %s_BY_CATEGORY[c](*this%s); }\n", method, prefixComma(callArgs))
		b.WriteString("}\n\n")
	}
}

// eligibleForDispatch reports whether o's own (possibly inherited)
// event slot is non-manual and non-disabled, the condition for
// inclusion in the per-category sweep.
func eligibleForDispatch(o *ObjectFile, e Event) bool {
	entry := o.Events[e]
	if entry.Disabled || entry.Manual {
		return false
	}
	return entry.Implements || entry.Inherits
}

func prefixComma(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

func writeMethodBodies(b *strings.Builder, sorted []*ObjectFile) {
	for _, o := range sorted {
		parentType := ""
		if o.Parent != nil {
			parentType = o.Parent.Type
		}

		for _, c := range o.Constructors {
			if c.Params == "" {
				continue
			}
			fmt.Fprintf(b, "%s::%s(%s) {\n\t%s\n}\n\n", o.Type, o.Type, c.Params, rewriteInherit(c.Body, parentType))
		}

		for _, m := range o.Members {
			if !m.IsFunction || m.Visibility == VisGlobal {
				continue
			}
			returnPart := strings.TrimSuffix(m.Decl, m.Name)
			fmt.Fprintf(b, "%s%s::%s(%s) {\n\t%s\n}\n\n", returnPart, o.Type, m.Name, m.Params, rewriteInherit(m.Body, parentType))
		}

		if o.HasWrite {
			fmt.Fprintf(b, "void %s::_write(Buffer& buf) const {\n\t%s\n}\n\n", o.Type, rewriteInherit(o.WriteBody, parentType))
			fmt.Fprintf(b, "bool %s::_read(Buffer& buf) {\n\t%s\n}\n\n", o.Type, rewriteInherit(o.ReadBody, parentType))
		}
		if o.HasSerialize {
			fmt.Fprintf(b, "void %s::_serialize(Buffer& buf) const {\n\t%s\n}\n\n", o.Type, rewriteInherit(o.SerializeBody, parentType))
			fmt.Fprintf(b, "bool %s::_deserialize(Buffer& buf) {\n\t%s\n}\n\n", o.Type, rewriteInherit(o.DeserializeBody, parentType))
		}

		for e := Event(0); e < EventCount; e++ {
			entry := o.Events[e]
			if entry.Disabled || (!entry.Implements && !entry.Inherits) {
				continue
			}
			_, ret, params, callArgs := EventInfo(e)
			method := eventMethodName(e)
			fmt.Fprintf(b, "%s %s::%s(%s) {\n", ret, o.Type, method, params)
			if !entry.Implements {
				// o has no body of its own; it only redeclares the
				// override to keep the virtual chain explicit, so
				// forward straight to the parent's implementation.
				fwd := ""
				if ret != "void" {
					fwd = "return "
				}
				fmt.Fprintf(b, "\t%sCoreObjects::%s::%s(%s);\n", fwd, parentType, method, callArgs)
				b.WriteString("}\n\n")
				continue
			}
			if parentType != "" && !entry.NoInherit {
				fmt.Fprintf(b, "\tCoreObjects::%s::%s(%s);\n", parentType, method, callArgs)
			}
			fmt.Fprintf(b, "\t%s\n", rewriteInherit(entry.Source, parentType))
			b.WriteString("}\n\n")
		}
	}
}

// writeGlobalDefs emits the source-side form of every object's GLOBAL
// members: free function definitions, and static variable definitions
// with their initializer (DVAR globals have no header extern, so the
// static definition here is their only emission).
func writeGlobalDefs(b *strings.Builder, sorted []*ObjectFile) {
	wrote := false
	for _, o := range sorted {
		for _, m := range membersOf(o, VisGlobal, false) {
			fmt.Fprintf(b, "static %s;\n", memberDecl(m))
			wrote = true
		}
	}
	for _, o := range sorted {
		parentType := ""
		if o.Parent != nil {
			parentType = o.Parent.Type
		}
		for _, m := range membersOf(o, VisGlobal, true) {
			fmt.Fprintf(b, "%s(%s) {\n\t%s\n}\n\n", m.Decl, m.Params, rewriteInherit(m.Body, parentType))
			wrote = true
		}
	}
	if wrote {
		b.WriteString("\n")
	}
}
