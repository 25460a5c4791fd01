package errs

import (
	"errors"
	"testing"
)

func TestPathError(t *testing.T) {
	underlying := errors.New("HOME not set")
	err := NewPathError("~/project", underlying)

	if !errors.Is(err, underlying) {
		t.Errorf("expected error to unwrap to underlying error")
	}

	want := `resolve path "~/project": HOME not set`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestExtractError(t *testing.T) {
	underlying := errors.New("file too large")
	err := NewExtractError("/repo/big.go", underlying)

	want := "extract symbols from /repo/big.go: file too large"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEditorErrorWithAndWithoutPath(t *testing.T) {
	withPath := NewEditorError("rename_symbol", "/repo/a.go", errors.New("no match"))
	if got, want := withPath.Error(), "rename_symbol failed for /repo/a.go: no match"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noPath := NewEditorError("replace_symbol_body", "", errors.New("ambiguous"))
	if got, want := noPath.Error(), "replace_symbol_body failed: ambiguous"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSearchError(t *testing.T) {
	err := NewSearchError("(unterminated", errors.New("missing closing paren"))
	want := `search failed for pattern "(unterminated": missing closing paren`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMultiError(t *testing.T) {
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	multi := NewMultiError([]error{err1, nil, err2})
	if len(multi.Errors) != 2 {
		t.Fatalf("expected nil errors filtered, got %d entries", len(multi.Errors))
	}

	if got, want := multi.Error(), "2 errors: [error 1 error 2]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	single := NewMultiError([]error{err1})
	if single.Error() != "error 1" {
		t.Errorf("Error() = %q, want %q", single.Error(), "error 1")
	}

	empty := NewMultiError(nil)
	if empty.Error() != "no errors" {
		t.Errorf("Error() = %q, want %q", empty.Error(), "no errors")
	}
}

