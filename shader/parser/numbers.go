package parser

import "strconv"

// parseIntText parses a decimal or 0x-prefixed hex integer literal
// text as scanned by the lexer.
func parseIntText(text string) (int, error) {
	v, err := strconv.ParseInt(text, 0, 64)
	return int(v), err
}
