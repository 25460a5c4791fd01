package rpc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/standardbeagle/serena-mcp/internal/diagnostics"
	"github.com/standardbeagle/serena-mcp/internal/toolset"
)

func TestRunStdioPing(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc":"2.0","method":"ping","id":1}` + "\n")
	var out bytes.Buffer

	if err := RunStdio(in, &out, toolset.NewRegistry(), diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	var result map[string]bool
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("invalid result: %v", err)
	}
	if !result["pong"] {
		t.Error("expected pong:true")
	}
}

func TestRunStdioMethodNotFound(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc":"2.0","method":"bogus","id":2}` + "\n")
	var out bytes.Buffer

	if err := RunStdio(in, &out, toolset.NewRegistry(), diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != CodeMethodNotFound {
		t.Fatalf("expected method-not-found error, got %+v", resp.Error)
	}
}

func TestRunStdioParseError(t *testing.T) {
	in := strings.NewReader("not json\n")
	var out bytes.Buffer

	if err := RunStdio(in, &out, toolset.NewRegistry(), diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != CodeParseError {
		t.Fatalf("expected parse error, got %+v", resp.Error)
	}
}

func TestRunStdioToolsListAndCall(t *testing.T) {
	registry := toolset.NewRegistry()
	registry.Register(toolset.NewTool("echo", "echoes its input", nil, func(args json.RawMessage) (interface{}, error) {
		return map[string]string{"echoed": string(args)}, nil
	}))

	lines := strings.Join([]string{
		`{"jsonrpc":"2.0","method":"tools.list","id":1}`,
		`{"jsonrpc":"2.0","method":"tools.call","id":2,"params":{"tool":"echo","arguments":{"x":1}}}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := RunStdio(strings.NewReader(lines), &out, registry, diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	responses := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(responses) != 2 {
		t.Fatalf("got %d response lines, want 2", len(responses))
	}

	var listResp response
	if err := json.Unmarshal([]byte(responses[0]), &listResp); err != nil {
		t.Fatalf("invalid tools.list response: %v", err)
	}
	if listResp.Error != nil {
		t.Fatalf("unexpected tools.list error: %+v", listResp.Error)
	}

	var callResp response
	if err := json.Unmarshal([]byte(responses[1]), &callResp); err != nil {
		t.Fatalf("invalid tools.call response: %v", err)
	}
	if callResp.Error != nil {
		t.Fatalf("unexpected tools.call error: %+v", callResp.Error)
	}
}

func TestRunStdioInvalidParams(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc":"2.0","method":"tools.call","id":3,"params":{}}` + "\n")
	var out bytes.Buffer

	if err := RunStdio(in, &out, toolset.NewRegistry(), diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != CodeInvalidParams {
		t.Fatalf("expected invalid-params error, got %+v", resp.Error)
	}
}

func TestRunStdioUnknownToolIsInternalError(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc":"2.0","method":"tools.call","id":4,"params":{"tool":"nope"}}` + "\n")
	var out bytes.Buffer

	if err := RunStdio(in, &out, toolset.NewRegistry(), diagnostics.Discard); err != nil {
		t.Fatalf("RunStdio returned error: %v", err)
	}

	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != CodeInternalError {
		t.Fatalf("expected internal error, got %+v", resp.Error)
	}
}
