package objectc

import "fmt"

// maxDepth bounds the inheritance chain; Depth is emitted as a
// uint16 table entry, so 65535 is the hard ceiling.
const maxDepth = 65535

// Resolve links every ObjectFile's parent/child relationship, runs a
// topological sort rooted at DEFAULT, propagates events down the
// chain, and aggregates each node's inherited members/categories/
// friends. files must not already include DEFAULT; Resolve parses
// and prepends the embedded default object itself.
func Resolve(files []*ObjectFile) ([]*ObjectFile, error) {
	defaultObj, err := Parse("<embedded DEFAULT>", []byte(defaultObjectSource))
	if err != nil {
		return nil, fmt.Errorf("objectc: internal: failed to parse embedded DEFAULT: %w", err)
	}

	all := make([]*ObjectFile, 0, len(files)+1)
	all = append(all, defaultObj)
	all = append(all, files...)

	byName := make(map[string]*ObjectFile, len(all))
	for _, of := range all {
		if _, dup := byName[of.Name]; dup {
			return nil, fmt.Errorf("objectc: duplicate OBJECT name %q", of.Name)
		}
		byName[of.Name] = of
	}

	for _, of := range all {
		if of.Name == "DEFAULT" {
			continue
		}
		if of.NameParent == of.Name {
			return nil, fmt.Errorf("objectc: %s: object cannot name itself as PARENT", of.Name)
		}
		parent, ok := byName[of.NameParent]
		if !ok {
			return nil, fmt.Errorf("objectc: %s: parent %q not found", of.Name, of.NameParent)
		}
		of.Parent = parent
		parent.Children = append(parent.Children, of)
	}

	sorted, err := topoSort(defaultObj)
	if err != nil {
		return nil, err
	}
	if len(sorted) != len(all) {
		return nil, fmt.Errorf("objectc: %d objects unreachable from DEFAULT (disconnected or cyclic PARENT chain)", len(all)-len(sorted))
	}

	propagateEvents(sorted)
	aggregateInheritance(sorted)

	return sorted, nil
}

// topoSort performs a DFS from root, assigning Depth as it descends
// and filling the result parent-before-child.
// Children are visited in the order they were linked, which is
// deterministic because Resolve iterates `all` (the caller's gathered
// and sorted file order) to build that linkage.
func topoSort(root *ObjectFile) ([]*ObjectFile, error) {
	var out []*ObjectFile
	var visit func(o *ObjectFile, depth int) error
	visit = func(o *ObjectFile, depth int) error {
		if o.Visited {
			return fmt.Errorf("objectc: cycle detected at %q", o.Name)
		}
		if depth >= maxDepth {
			return fmt.Errorf("objectc: %s: inheritance depth exceeds %d", o.Name, maxDepth)
		}
		o.Visited = true
		o.Depth = depth
		out = append(out, o)
		for _, child := range o.Children {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// propagateEvents copies a parent's inherits|implements flag down to
// any child whose own slot has neither Implements nor Inherits set,
// carrying Manual along. Walking sorted order
// guarantees the parent's own propagated state is final before a
// child consults it.
func propagateEvents(sorted []*ObjectFile) {
	for _, o := range sorted {
		if o.Parent == nil {
			continue
		}
		for e := Event(0); e < EventCount; e++ {
			pe := o.Parent.Events[e]
			ce := &o.Events[e]
			if ce.Implements || ce.Inherits {
				continue
			}
			if pe.Disabled {
				continue
			}
			if pe.Inherits || pe.Implements {
				ce.Inherits = true
				ce.Manual = pe.Manual
			}
		}
	}
}

// aggregateInheritance fills InheritedVariables/Functions/Categories/
// Friends and the InheritedEvents "implemented somewhere in the
// chain" bitmap, walking parent-before-child so each node simply
// extends its parent's already-computed aggregate.
func aggregateInheritance(sorted []*ObjectFile) {
	for _, o := range sorted {
		if o.Parent == nil {
			continue
		}
		p := o.Parent

		o.InheritedVariables = append(append([]Member{}, p.InheritedVariables...), visibleMembers(p, false)...)
		o.InheritedFunctions = append(append([]Member{}, p.InheritedFunctions...), visibleMembers(p, true)...)
		o.InheritedCategories = dedupStrings(append(append([]string{}, p.InheritedCategories...), p.Categories...))
		o.InheritedFriends = dedupStrings(append(append([]string{}, p.InheritedFriends...), p.Friends...))

		o.InheritedEvents = p.InheritedEvents
		for e := Event(0); e < EventCount; e++ {
			if p.Events[e].Implements && !p.Events[e].Disabled {
				o.InheritedEvents[e] = true
			}
		}
	}
}

// visibleMembers returns of's own public/protected members (the ones
// a child can see and must not re-declare), split by function/data.
func visibleMembers(of *ObjectFile, functions bool) []Member {
	var out []Member
	for _, m := range of.Members {
		if m.Visibility != VisPublic && m.Visibility != VisProtected {
			continue
		}
		if m.IsFunction == functions {
			out = append(out, m)
		}
	}
	return out
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
