package toolset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/standardbeagle/serena-mcp/internal/config"
	"github.com/standardbeagle/serena-mcp/internal/editor"
)

func TestBuildRegistersEveryTool(t *testing.T) {
	registry := Build(config.Default())
	want := []string{
		"read_file", "write_file", "list_dir",
		"search_pattern",
		"find_symbol", "find_referencing_symbols", "get_symbols_overview", "rename_symbol", "replace_symbol_body",
		"onboarding_tool", "prepare_for_new_conversation", "check_onboarding_performed",
		"write_memory", "read_memory", "list_memories", "delete_memory",
	}
	descriptors := registry.Descriptors()
	if len(descriptors) != len(want) {
		t.Fatalf("got %d tools, want %d: %+v", len(descriptors), len(want), descriptors)
	}
	byName := map[string]bool{}
	for _, d := range descriptors {
		byName[d.Name] = true
	}
	for _, name := range want {
		if !byName[name] {
			t.Errorf("missing tool %q", name)
		}
	}
}

func TestReadWriteFileRoundTrip(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	writeArgs, _ := json.Marshal(map[string]interface{}{"path": path, "content": "hello"})
	if _, err := registry.Call("write_file", writeArgs); err != nil {
		t.Fatalf("write_file returned error: %v", err)
	}

	readArgs, _ := json.Marshal(map[string]interface{}{"path": path})
	result, err := registry.Call("read_file", readArgs)
	if err != nil {
		t.Fatalf("read_file returned error: %v", err)
	}
	payload, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if payload["content"] != "hello" {
		t.Errorf("content = %v, want hello", payload["content"])
	}
}

func TestMemoryRoundTripThroughRegistry(t *testing.T) {
	t.Setenv("SERENA_STATE_DIR", t.TempDir())
	registry := Build(config.Default())

	writeArgs, _ := json.Marshal(map[string]interface{}{
		"id": "n1", "namespace": "ns", "content": "remember this",
	})
	if _, err := registry.Call("write_memory", writeArgs); err != nil {
		t.Fatalf("write_memory returned error: %v", err)
	}

	readArgs, _ := json.Marshal(map[string]interface{}{"id": "n1", "namespace": "ns"})
	result, err := registry.Call("read_memory", readArgs)
	if err != nil {
		t.Fatalf("read_memory returned error: %v", err)
	}
	_ = result
}

func TestSearchPatternThroughRegistry(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("needle here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": dir, "pattern": "needle"})
	result, err := registry.Call("search_pattern", args)
	if err != nil {
		t.Fatalf("search_pattern returned error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a non-nil search result")
	}
}

func TestUnknownToolErrors(t *testing.T) {
	registry := Build(config.Default())
	if _, err := registry.Call("does_not_exist", nil); err == nil {
		t.Fatal("expected an error calling an unregistered tool")
	}
}

func TestFindSymbolDefaultsToSubstringMatch(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	if err := os.WriteFile(path, []byte("def bar():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": path, "name": "ba"})
	result, err := registry.Call("find_symbol", args)
	if err != nil {
		t.Fatalf("find_symbol returned error: %v", err)
	}
	payload, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	symbols, ok := payload["symbols"].([]editor.FoundSymbol)
	if !ok || len(symbols) != 1 {
		t.Fatalf("symbols = %#v, want one substring match for %q", payload["symbols"], "bar")
	}
	if symbols[0].Name != "bar" {
		t.Errorf("matched symbol = %q, want bar", symbols[0].Name)
	}
}

func TestFindSymbolExplicitSubstringFalseRequiresExactMatch(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	if err := os.WriteFile(path, []byte("def bar():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": path, "name": "ba", "match_substring": false})
	result, err := registry.Call("find_symbol", args)
	if err != nil {
		t.Fatalf("find_symbol returned error: %v", err)
	}
	payload := result.(map[string]interface{})
	symbols, _ := payload["symbols"].([]editor.FoundSymbol)
	if len(symbols) != 0 {
		t.Errorf("symbols = %#v, want no exact match for %q", symbols, "ba")
	}
}

func TestRenameSymbolDefaultsToCaseSensitive(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	if err := os.WriteFile(path, []byte("var Foo int\nvar foo int\n"), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": path, "old_name": "Foo", "new_name": "Bar"})
	result, err := registry.Call("rename_symbol", args)
	if err != nil {
		t.Fatalf("rename_symbol returned error: %v", err)
	}
	payload := result.(map[string]interface{})
	if payload["replacements"] != 1 {
		t.Errorf("replacements = %v, want 1 (case-sensitive default must not also rename lowercase foo)", payload["replacements"])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "var Bar int\nvar foo int\n" {
		t.Errorf("file content = %q, want only Foo renamed", string(data))
	}
}

func TestReplaceSymbolBodyDefaultsToCaseSensitive(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	if err := os.WriteFile(path, []byte("func Foo() {\n\treturn\n}\n\nfunc foo() {\n\treturn\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": path, "symbol": "Foo", "new_body": "func Foo() {\n\tdone()\n}"})
	if _, err := registry.Call("replace_symbol_body", args); err != nil {
		t.Fatalf("replace_symbol_body returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "done()") || !strings.Contains(string(data), "func foo() {\n\treturn\n}") {
		t.Errorf("file content = %q, want only Foo's body replaced", string(data))
	}
}

func TestFindReferencingSymbolsDefaultsToTwoLinesOfContext(t *testing.T) {
	registry := Build(config.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	content := "line1\nline2\ntarget\nline4\nline5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	args, _ := json.Marshal(map[string]interface{}{"path": path, "name": "target"})
	result, err := registry.Call("find_referencing_symbols", args)
	if err != nil {
		t.Fatalf("find_referencing_symbols returned error: %v", err)
	}
	payload := result.(map[string]interface{})
	refs, ok := payload["references"].([]editor.Reference)
	if !ok || len(refs) != 1 {
		t.Fatalf("references = %#v, want exactly one match", payload["references"])
	}
	if len(refs[0].Before) != 2 || len(refs[0].After) != 2 {
		t.Errorf("Before = %v, After = %v, want 2 lines of context each by default", refs[0].Before, refs[0].After)
	}
}
