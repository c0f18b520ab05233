package objectc

import (
	"fmt"
	"strings"
)

// GenerateIntellisense emits objects.generated.intellisense: a
// syntactic aid listing each object's inherited members, for editor
// tooling that doesn't want to walk the inheritance chain itself.
func GenerateIntellisense(sorted []*ObjectFile) string {
	var b strings.Builder
	b.WriteString("// Code generated by the object-definition compiler. DO NOT EDIT.\n")
	for _, o := range sorted {
		fmt.Fprintf(&b, "%s (parent: %s, depth: %d)\n", o.Name, parentName(o), o.Depth)
		for _, m := range o.InheritedVariables {
			fmt.Fprintf(&b, "\tinherited var   %s\n", memberDecl(m))
		}
		for _, m := range o.InheritedFunctions {
			fmt.Fprintf(&b, "\tinherited func  %s\n", functionSignature(m))
		}
		for e := Event(0); e < EventCount; e++ {
			if o.InheritedEvents[e] {
				fmt.Fprintf(&b, "\tinherited event %s\n", eventMethodName(e))
			}
		}
	}
	return b.String()
}

func parentName(o *ObjectFile) string {
	if o.Parent == nil {
		return "(none)"
	}
	return o.Parent.Name
}
