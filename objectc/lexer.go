package objectc

import "fmt"

// token is one recognized keyword occurrence: its id and the source
// range of its body, the text between the end of its own name and
// the start of the next keyword occurrence (or end of file for the
// last one).
type token struct {
	kw              Keyword
	matchLine       int
	bodyStart, bodyEnd int
}

// stripComments replaces `//` line comments and `/* */` block comments
// with spaces (newlines preserved as newlines) so that byte offsets
// and line numbers in the stripped buffer still line up with the
// original source for error reporting.
func stripComments(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)
	for i := 0; i < len(out); i++ {
		if out[i] == '/' && i+1 < len(out) && out[i+1] == '/' {
			j := i
			for j < len(out) && out[j] != '\n' {
				out[j] = ' '
				j++
			}
			i = j
		} else if out[i] == '/' && i+1 < len(out) && out[i+1] == '*' {
			j := i
			for j < len(out)-1 && !(out[j] == '*' && out[j+1] == '/') {
				if out[j] != '\n' {
					out[j] = ' '
				}
				j++
			}
			if j < len(out)-1 {
				out[j], out[j+1] = ' ', ' '
				j++
			}
			i = j
		}
	}
	return out
}

func isIdentChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// lineAt returns the 1-based line number of offset pos within src.
func lineAt(src []byte, pos int) int {
	line := 1
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			line++
		}
	}
	return line
}

// tokenize scans stripped source for keyword occurrences in source
// order, producing one token per occurrence with its body range, and
// validates each keyword's required/maxCount contract.
func tokenize(src []byte) ([]token, error) {
	stripped := stripComments(src)
	keywords := allKeywords()

	var tokens []token
	counts := make(map[Keyword]int)

	for i := 0; i < len(stripped); i++ {
		if !isUpper(stripped[i]) {
			continue
		}
		if i > 0 && isIdentChar(stripped[i-1]) {
			continue
		}
		matched := -1
		matchedName := ""
		for _, k := range keywords {
			n := len(k.Name)
			if i+n > len(stripped) {
				continue
			}
			if string(stripped[i:i+n]) != k.Name {
				continue
			}
			if i+n < len(stripped) && isIdentChar(stripped[i+n]) {
				continue
			}
			matched = int(k.Keyword)
			matchedName = k.Name
			break
		}
		if matched == -1 {
			continue
		}
		kw := Keyword(matched)
		if len(tokens) > 0 {
			tokens[len(tokens)-1].bodyEnd = i
		}
		tokens = append(tokens, token{kw: kw, matchLine: lineAt(stripped, i), bodyStart: i + len(matchedName)})
		counts[kw]++
		i += len(matchedName) - 1
	}
	if len(tokens) > 0 {
		tokens[len(tokens)-1].bodyEnd = len(stripped)
	}

	for k, info := range keywordTable {
		if info.required && counts[k] == 0 {
			return nil, fmt.Errorf("objectc: missing required keyword %s", info.name)
		}
		if info.maxCount >= 0 && counts[k] > info.maxCount {
			return nil, fmt.Errorf("objectc: keyword %s occurs %d times, max %d", info.name, counts[k], info.maxCount)
		}
	}
	return tokens, nil
}

// body returns a token's raw body text from the stripped source.
func (t token) body(stripped []byte) string {
	return string(stripped[t.bodyStart:t.bodyEnd])
}
