package objectc

import (
	"fmt"
	"strings"
)

// GenerateSystemHeader emits objects.system.generated.hpp: the sorted
// Object enum, the ObjectCategory enum, and the TYPE_COUNT/
// CATEGORY_COUNT constants.
func GenerateSystemHeader(sorted []*ObjectFile) string {
	var b strings.Builder
	b.WriteString("// Code generated by the object-definition compiler. DO NOT EDIT.\n")
	b.WriteString("#pragma once\n\n")
	b.WriteString("namespace CoreObjects {\n\n")

	b.WriteString("enum class Object : uint32_t {\n")
	for _, o := range sorted {
		fmt.Fprintf(&b, "\t%s,\n", o.Name)
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "constexpr uint32_t TYPE_COUNT = %d;\n\n", len(sorted))

	categories := Categories(sorted)
	b.WriteString("enum class ObjectCategory : uint32_t {\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "\t%s,\n", c)
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "constexpr uint32_t CATEGORY_COUNT = %d;\n\n", len(categories))

	b.WriteString("} // namespace CoreObjects\n")
	return b.String()
}
