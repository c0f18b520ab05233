package diag

import "testing"

func TestErrorSinkFirstErrorWins(t *testing.T) {
	sink := NewErrorSink()
	if sink.Dirty() {
		t.Fatal("new sink must not be dirty")
	}

	first := sink.Fatal(&BuildError{Kind: KindUserData, File: "a.object", Line: 3, Reason: "missing OBJECT"})
	second := sink.Fatal(&BuildError{Kind: KindIO, File: "b.texture", Reason: "not found"})

	if !sink.Dirty() || sink.ExitCode() != 1 {
		t.Fatalf("sink should be dirty with exit code 1, got dirty=%v exitCode=%d", sink.Dirty(), sink.ExitCode())
	}
	if sink.First() != first.(*BuildError) {
		t.Fatal("First() must return the first recorded error")
	}
	if second == first {
		t.Fatal("Fatal should still return the error it was given, not silently swallow it")
	}
	if sink.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (both Fatal calls counted even though only the first wins)", sink.Count())
	}
}

func TestBuildErrorRendersCaretUnderline(t *testing.T) {
	err := &BuildError{
		Kind: KindSyntax, File: "x.shader", Line: 5,
		Reason:     "unexpected token \"}\"",
		SourceLine: "float4 x = }",
		Column:     12,
	}
	got := err.Error()
	want := "x.shader:5: syntax: unexpected token \"}\"\nfloat4 x = }\n           ^"
	if got != want {
		t.Fatalf("Error() =\n%q\nwant\n%q", got, want)
	}
}
