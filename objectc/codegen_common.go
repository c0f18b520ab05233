package objectc

import (
	"regexp"
	"strings"
)

var inheritToken = regexp.MustCompile(`\bINHERIT\b`)

// rewriteInherit replaces the literal token INHERIT in user code with
// the parent's fully qualified type, used wherever a
// constructor, function, or event body is spliced into generated
// code. An object with no parent (DEFAULT) never contains INHERIT in
// valid input; parentType is passed as "" in that case and the token
// is left untouched if it somehow appears.
func rewriteInherit(body, parentType string) string {
	if parentType == "" {
		return body
	}
	return inheritToken.ReplaceAllString(body, "CoreObjects::"+parentType)
}

// eventMethodName lowercases an event's enum name into the method
// name codegen emits, e.g. EVENT_UPDATE_CUSTOM -> event_update_custom.
func eventMethodName(e Event) string {
	return "event_" + strings.ToLower(eventNames[e])
}
