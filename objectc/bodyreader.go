package objectc

import (
	"strconv"
	"strings"
)

// findParens returns the byte offsets of the first `(` in s and its
// matching `)`, or ok=false if s has no parenthesized group.
func findParens(s string) (open, close int, ok bool) {
	open = strings.IndexByte(s, '(')
	if open == -1 {
		return 0, 0, false
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return open, i, true
			}
		}
	}
	return 0, 0, false
}

// findBrace returns the byte offsets of the first `{` in s and its
// matching `}`, tracking nested scopes.
func findBrace(s string) (open, close int, ok bool) {
	open = strings.IndexByte(s, '{')
	if open == -1 {
		return 0, 0, false
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return open, i, true
			}
		}
	}
	return 0, 0, false
}

// parenLiteral extracts and trims the contents of a `KEYWORD(value)`
// body, used by OBJECT, PARENT, HASH, COUNT, BUCKET_SIZE, ABSTRACT,
// NETWORKED.
func parenLiteral(body string) (string, bool) {
	open, close, ok := findParens(body)
	if !ok || close <= open+1 {
		inner := ""
		if ok {
			inner = strings.TrimSpace(body[open+1 : close])
		}
		return inner, ok
	}
	return strings.TrimSpace(body[open+1 : close]), true
}

// parenList splits a `KEYWORD(a, b, c)` body into its comma-separated,
// trimmed elements, used by VERSIONS, CATEGORY, FRIEND.
func parenList(body string) []string {
	inner, ok := parenLiteral(body)
	if !ok || inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIntLiteral(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 0, 64)
	return v, err == nil
}

func parseBoolLiteral(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
