package lexer

import "testing"

func collect(l *Lexer) []Token {
	var out []Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestScansKeywordsAndIdentifiers(t *testing.T) {
	l := New([]byte("vertex_input V vertex_output O"), Compiler)
	toks := collect(l)
	want := []struct {
		kind Kind
		text string
	}{
		{Keyword, "vertex_input"}, {Ident, "V"},
		{Keyword, "vertex_output"}, {Ident, "O"}, {EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Fatalf("token %d = %v, want {%v %q}", i, toks[i], w.kind, w.text)
		}
	}
}

func TestScansNumbersAndHex(t *testing.T) {
	l := New([]byte("42 3.14 0xFF"), Compiler)
	toks := collect(l)
	if toks[0].Kind != Integer || toks[0].Text != "42" {
		t.Fatalf("want Integer 42, got %v", toks[0])
	}
	if toks[1].Kind != Number || toks[1].Text != "3.14" {
		t.Fatalf("want Number 3.14, got %v", toks[1])
	}
	if toks[2].Kind != Integer || toks[2].Text != "0xFF" {
		t.Fatalf("want Integer 0xFF, got %v", toks[2])
	}
}

func TestScansCompoundPunctuation(t *testing.T) {
	l := New([]byte("a <<= b == c"), Compiler)
	toks := collect(l)
	if toks[1].Text != "<<=" {
		t.Fatalf("want <<=, got %v", toks[1])
	}
	if toks[3].Text != "==" {
		t.Fatalf("want ==, got %v", toks[3])
	}
}

func TestSkipsCommentsInBothForms(t *testing.T) {
	l := New([]byte("a // trailing comment\n/* block */ b"), Compiler)
	toks := collect(l)
	if toks[0].Text != "a" || toks[1].Text != "b" {
		t.Fatalf("comments not skipped: %v", toks)
	}
}

func TestBackPushesTokenForLookahead(t *testing.T) {
	l := New([]byte("a b"), Compiler)
	first := l.Next()
	second := l.Next()
	l.Back(second)
	replay := l.Next()
	if replay != second {
		t.Fatalf("Back/Next round trip mismatch: %v vs %v", replay, second)
	}
	third := l.Next()
	if third.Kind != EOF {
		t.Fatalf("expected EOF after replay, got %v", third)
	}
	_ = first
}

func TestCompilerModeTreatsDirectiveAsWhitespace(t *testing.T) {
	l := New([]byte("#include \"foo.shader\"\nstruct S {}"), Compiler)
	toks := collect(l)
	if toks[0].Kind != Keyword || toks[0].Text != "struct" {
		t.Fatalf("expected the directive line skipped, got %v", toks[0])
	}
}

func TestPreprocessorModeTokenizesDirective(t *testing.T) {
	l := New([]byte("#include \"foo.shader\""), Preprocessor)
	tok := l.Next()
	if tok.Kind != Keyword || tok.Text != "#include" {
		t.Fatalf("want Keyword #include, got %v", tok)
	}
}

func TestUnknownByteIsError(t *testing.T) {
	l := New([]byte("@"), Compiler)
	tok := l.Next()
	if tok.Kind != Error {
		t.Fatalf("expected Error token, got %v", tok)
	}
}
