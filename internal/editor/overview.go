package editor

import (
	"os"

	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/symbols"
	"github.com/standardbeagle/serena-mcp/internal/walk"
)

// SymbolBrief is the abbreviated per-symbol row in an overview.
type SymbolBrief struct {
	Name      string
	Kind      string
	Line      int
	Signature string
}

// FileOverview summarises one file's symbols.
type FileOverview struct {
	Path        string
	Language    string
	SymbolCount int
	Symbols     []SymbolBrief
}

const overviewDepth = 4

// GetSymbolsOverview returns a single FileOverview when path is a
// file (with every symbol), or a slice of FileOverview — one per
// recognised file up to maxFiles, each capped to its first five
// symbols — when path is a directory.
func GetSymbolsOverview(path string, maxFiles int) (*FileOverview, []FileOverview, error) {
	if maxFiles <= 0 {
		maxFiles = 20
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	if !info.IsDir() {
		ov, ok, err := fileOverview(path, -1)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return &FileOverview{Path: path}, nil, nil
		}
		return ov, nil, nil
	}

	var out []FileOverview
	err = walk.Walk(path, walk.Options{MaxDepth: overviewDepth}, func(filePath string, depth int) error {
		if len(out) >= maxFiles {
			return nil
		}
		ov, ok, err := fileOverview(filePath, 5)
		if err != nil || !ok {
			return nil
		}
		out = append(out, *ov)
		return nil
	})
	return nil, out, err
}

func fileOverview(path string, limit int) (*FileOverview, bool, error) {
	tag, recognised := lang.ForPath(path)
	if !recognised {
		return nil, false, nil
	}
	pf, ok, err := symbols.ParseFile(path)
	if err != nil || !ok {
		return nil, false, err
	}

	briefs := make([]SymbolBrief, 0, len(pf.Symbols))
	for _, s := range pf.Symbols {
		briefs = append(briefs, SymbolBrief{Name: s.Name, Kind: s.Kind, Line: s.Line, Signature: s.Signature})
	}
	total := len(briefs)
	if limit >= 0 && len(briefs) > limit {
		briefs = briefs[:limit]
	}

	return &FileOverview{
		Path:        path,
		Language:    string(tag),
		SymbolCount: total,
		Symbols:     briefs,
	}, true, nil
}
