package toolset

import (
	"encoding/json"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/standardbeagle/serena-mcp/internal/config"
	"github.com/standardbeagle/serena-mcp/internal/onboarding"
	"github.com/standardbeagle/serena-mcp/internal/pathresolve"
)

// RegisterWorkflowTools wires onboarding_tool, prepare_for_new_conversation,
// and check_onboarding_performed.
func RegisterWorkflowTools(r *Registry, cfg config.ServerConfig) {
	r.Register(NewTool("onboarding_tool", "Summarize a project's structure, returning a cached summary unless refresh is set.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":    {Type: "string"},
				"refresh": {Type: "boolean"},
			},
		},
		onboardingHandler(cfg)))

	r.Register(NewTool("prepare_for_new_conversation", "Summarize a project and suggest what to look at first.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path": {Type: "string"},
			},
		},
		prepareHandler(cfg)))

	r.Register(NewTool("check_onboarding_performed", "Report whether onboarding has ever run for a project.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path": {Type: "string"},
			},
		},
		handleCheckOnboardingPerformed))
}

type onboardingArgs struct {
	Path    string `json:"path"`
	Refresh bool   `json:"refresh"`
}

func onboardingHandler(cfg config.ServerConfig) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args onboardingArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		path, err := pathresolve.ResolveOrDefault(args.Path)
		if err != nil {
			return nil, err
		}
		summary, source, err := onboarding.Run(path, cfg.MaxDirectories, cfg.MaxLanguages, args.Refresh, time.Now())
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"summary": summary, "source": source}, nil
	}
}

type prepareArgs struct {
	Path string `json:"path"`
}

func prepareHandler(cfg config.ServerConfig) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args prepareArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		path, err := pathresolve.ResolveOrDefault(args.Path)
		if err != nil {
			return nil, err
		}
		summary, suggestions, err := onboarding.PrepareForNewConversation(path, cfg.MaxDirectories, cfg.MaxLanguages, time.Now())
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"summary": summary, "suggestions": suggestions}, nil
	}
}

type checkOnboardingArgs struct {
	Path string `json:"path"`
}

func handleCheckOnboardingPerformed(arguments json.RawMessage) (interface{}, error) {
	var args checkOnboardingArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.ResolveOrDefault(args.Path)
	if err != nil {
		return nil, err
	}
	performed, updatedAt, err := onboarding.CheckPerformed(path)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{"performed": performed}
	if performed {
		result["updated_at"] = updatedAt
	}
	return result, nil
}
