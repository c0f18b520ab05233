package objectc

import (
	"fmt"
	"strings"

	"github.com/mantaforge/buildtool/internal/hashutil"
)

// Parse tokenizes and parses one `.object` source buffer into an
// ObjectFile. path is recorded for diagnostics only.
func Parse(path string, src []byte) (*ObjectFile, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("objectc: %s: %w", path, err)
	}
	stripped := stripComments(src)

	of := &ObjectFile{SourcePath: path, NameParent: "DEFAULT", CountMax: -1, BucketSize: -1}

	for _, t := range tokens {
		body := t.body(stripped)
		if err := applyKeyword(of, t.kw, body); err != nil {
			return nil, fmt.Errorf("objectc: %s:%d: %w", path, t.matchLine, err)
		}
	}

	if of.Name == "" {
		return nil, fmt.Errorf("objectc: %s: OBJECT(name) is required", path)
	}
	of.Type = of.Name + "_t"

	if of.Hash == 0 && of.HashHex == "" {
		of.Hash = hashutil.HashString64(of.Name)
		of.HashIsName = true
	}
	of.HashHex = fmt.Sprintf("%016X", of.Hash)

	return of, nil
}

func applyKeyword(of *ObjectFile, kw Keyword, body string) error {
	if kw >= kwEventBase && kw < kwEventBase+Keyword(EventCount) {
		ev := Event(kw - kwEventBase)
		of.Events[ev] = parseEventBody(body)
		return nil
	}

	switch kw {
	case KwObject:
		name, ok := parenLiteral(body)
		if !ok || name == "" {
			return fmt.Errorf("OBJECT() requires a name")
		}
		of.Name = name
	case KwParent:
		name, ok := parenLiteral(body)
		if ok && name != "" {
			of.NameParent = name
		}
	case KwIncludes, KwHeaderIncludes:
		of.IncludesHeader = append(of.IncludesHeader, parseIncludeList(body)...)
		if kw == KwIncludes {
			of.IncludesSource = append(of.IncludesSource, parseIncludeList(body)...)
		}
	case KwSourceIncludes:
		of.IncludesSource = append(of.IncludesSource, parseIncludeList(body)...)
	case KwCount:
		lit, _ := parenLiteral(body)
		if v, ok := parseIntLiteral(lit); ok {
			of.CountMax = v
		}
	case KwBucketSize:
		lit, _ := parenLiteral(body)
		if v, ok := parseIntLiteral(lit); ok {
			of.BucketSize = v
		}
	case KwHash:
		lit, _ := parenLiteral(body)
		if v, ok := parseIntLiteral(lit); ok {
			of.Hash = uint64(v)
		} else {
			of.Hash = hashutil.HashString64(strings.Trim(lit, `"`))
		}
	case KwCategory:
		of.Categories = append(of.Categories, parenList(body)...)
	case KwFriend:
		of.Friends = append(of.Friends, parenList(body)...)
	case KwVersions:
		of.Versions = parenList(body)
	case KwAbstract:
		lit, _ := parenLiteral(body)
		of.Abstract = parseBoolLiteral(lit)
	case KwNetworked:
		lit, _ := parenLiteral(body)
		of.Networked = parseBoolLiteral(lit)
	case KwConstructor:
		c, err := parseConstructor(body)
		if err != nil {
			return err
		}
		of.Constructors = append(of.Constructors, c)
	case KwWrite:
		of.HasWrite = true
		of.WriteBody = bracedBody(body)
	case KwRead:
		of.HasRead = true
		of.ReadBody = bracedBody(body)
	case KwSerialize:
		of.HasSerialize = true
		of.SerializeBody = bracedBody(body)
	case KwDeserialize:
		of.HasDeserialize = true
		of.DeserializeBody = bracedBody(body)
	case KwPublic:
		of.Members = append(of.Members, parseMember(VisPublic, body))
	case KwProtected:
		of.Members = append(of.Members, parseMember(VisProtected, body))
	case KwPrivate:
		of.Members = append(of.Members, parseMember(VisPrivate, body))
	case KwGlobal:
		of.Members = append(of.Members, parseMember(VisGlobal, body))
	}
	return nil
}

func parseIncludeList(body string) []string {
	body = strings.TrimSpace(body)
	if i := strings.IndexByte(body, ';'); i >= 0 {
		body = body[:i]
	}
	parts := strings.Split(body, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"<>`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseConstructor(body string) (Constructor, error) {
	po, pc, ok := findParens(body)
	if !ok {
		return Constructor{}, fmt.Errorf("CONSTRUCTOR requires (args)")
	}
	bo, bc, ok := findBrace(body)
	if !ok {
		return Constructor{}, fmt.Errorf("CONSTRUCTOR requires a { } body")
	}
	return Constructor{
		Params: strings.TrimSpace(body[po+1 : pc]),
		Body:   strings.TrimSpace(body[bo+1 : bc]),
	}, nil
}

func bracedBody(body string) string {
	o, c, ok := findBrace(body)
	if !ok {
		return ""
	}
	return strings.TrimSpace(body[o+1 : c])
}

// parseEventBody reads the up-to-three modifiers (DISABLE, MANUAL,
// NOINHERIT) preceding an event's `{ … }` block
func parseEventBody(body string) EventEntry {
	o, c, hasBrace := findBrace(body)
	var e EventEntry
	modifierText := body
	if hasBrace {
		modifierText = body[:o]
		e.Source = strings.TrimSpace(body[o+1 : c])
	}
	for _, word := range strings.Fields(modifierText) {
		switch word {
		case "DISABLE":
			e.Disabled = true
		case "MANUAL":
			e.Manual = true
		case "NOINHERIT":
			e.NoInherit = true
		}
	}
	if e.Disabled {
		e.Manual = true
		e.Implements = false
	} else if hasBrace {
		e.Implements = true
	}
	return e
}

// parseMember parses one PUBLIC/PROTECTED/PRIVATE/GLOBAL body into a
// Member, distinguishing function from variable by whether a `{…}`
// scope precedes the terminating `;`. GLOBAL bodies
// may be prefixed with DVAR, which this compiler treats as a
// static-definition-only marker carried through to codegen.
func parseMember(vis Visibility, body string) Member {
	trimmed := strings.TrimSpace(body)
	isDVAR := false
	if strings.HasPrefix(trimmed, "DVAR") && (len(trimmed) == 4 || !isIdentChar(trimmed[4])) {
		isDVAR = true
		trimmed = strings.TrimSpace(trimmed[4:])
	}

	semiIdx := strings.IndexByte(trimmed, ';')
	braceOpen, braceClose, hasBrace := findBrace(trimmed)

	if hasBrace && (semiIdx == -1 || braceOpen < semiIdx) {
		sig := strings.TrimSpace(trimmed[:braceOpen])
		parenOpen, parenClose, hasParen := findParens(sig)
		decl, params := sig, ""
		if hasParen {
			decl = strings.TrimSpace(sig[:parenOpen])
			params = strings.TrimSpace(sig[parenOpen+1 : parenClose])
		}
		return Member{
			Visibility: vis, IsFunction: true, IsDVAR: isDVAR,
			Decl: decl, Name: lastIdentifier(decl), Params: params,
			Body: strings.TrimSpace(trimmed[braceOpen+1 : braceClose]),
		}
	}

	declPart := trimmed
	if semiIdx >= 0 {
		declPart = trimmed[:semiIdx]
	}
	init := ""
	if eq := strings.IndexByte(declPart, '='); eq >= 0 {
		init = strings.TrimSpace(declPart[eq+1:])
		declPart = declPart[:eq]
	}
	declPart = strings.TrimSpace(declPart)
	return Member{
		Visibility: vis, IsDVAR: isDVAR,
		Decl: declPart, Name: lastIdentifier(declPart), Init: init,
	}
}

// lastIdentifier returns the final whitespace-separated token of s
// with leading pointer/reference sigils stripped — the heuristic used
// to recover a declaration's member name from raw "Type name" text.
func lastIdentifier(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	return strings.TrimLeft(last, "*&")
}
