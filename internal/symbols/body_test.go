package symbols

import (
	"strings"
	"testing"

	"github.com/standardbeagle/serena-mcp/internal/lang"
)

func TestLocateBodyBracesWithStringContainingBrace(t *testing.T) {
	content := "fn weird() {\n    let s = \"{ not a brace\";\n    do_thing();\n}\n"
	pf := ParseContent(content, lang.Rust)
	if len(pf.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(pf.Symbols))
	}
	body := pf.Symbols[0].Body
	if body.Kind != ExtentBraces {
		t.Fatalf("kind = %v, want Braces", body.Kind)
	}
	if content[body.End] != '}' || content[body.End-1] != '\n' {
		t.Errorf("expected end to land on the real closing brace, got %q", content[body.End])
	}
}

func TestLocateBodyNoneOnForwardDeclaration(t *testing.T) {
	content := "fn stub();\n"
	pf := ParseContent(content, lang.Generic)
	if len(pf.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(pf.Symbols))
	}
	if pf.Symbols[0].Body.Kind != ExtentNone {
		t.Errorf("body kind = %v, want None", pf.Symbols[0].Body.Kind)
	}
}

func TestLocateBodyIndentedPython(t *testing.T) {
	content := "def greet():\n    x = 1\n\n    return x\n\nprint('done')\n"
	pf := ParseContent(content, lang.Python)
	if len(pf.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(pf.Symbols))
	}
	body := pf.Symbols[0].Body
	if body.Kind != ExtentIndented {
		t.Fatalf("kind = %v, want Indented", body.Kind)
	}
	bodyText := content[body.Start:body.End]
	if strings.Contains(bodyText, "print") {
		t.Errorf("body leaked past the dedent: %q", bodyText)
	}
	if !strings.Contains(bodyText, "return x") {
		t.Errorf("body missing trailing line: %q", bodyText)
	}
}

func TestLocateBodyIndentedNoBody(t *testing.T) {
	content := "def stub():\npass\n"
	pf := ParseContent(content, lang.Python)
	if len(pf.Symbols) != 1 {
		t.Fatalf("got %d symbols, want 1", len(pf.Symbols))
	}
	if pf.Symbols[0].Body.Kind != ExtentNone {
		t.Errorf("body kind = %v, want None (dedented immediately)", pf.Symbols[0].Body.Kind)
	}
}

func TestBraceBalanceProperty(t *testing.T) {
	content := "fn f() {\n    if x {\n        y();\n    }\n}\n"
	pf := ParseContent(content, lang.Rust)
	body := pf.Symbols[0].Body
	inner := content[body.Start:body.End]
	depth := 0
	for _, r := range inner {
		if r == '{' {
			depth++
		}
		if r == '}' {
			depth--
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced braces in extracted body: depth=%d", depth)
	}
}
