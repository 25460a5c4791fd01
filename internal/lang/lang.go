// Package lang maps file extensions to the small closed set of
// language tags shared by the symbol extractor, search, and onboarding
// components.
package lang

import "strings"

// Tag identifies the language family a recognised source file belongs
// to, used to select a symbol-extraction pattern table.
type Tag string

const (
	Python     Tag = "python"
	Rust       Tag = "rust"
	TypeScript Tag = "typescript"
	JavaScript Tag = "javascript"
	Go         Tag = "go"
	JavaFamily Tag = "java"
	CSharp     Tag = "csharp"
	Generic    Tag = "generic"
)

var extensions = map[string]Tag{
	".py":    Python,
	".pyi":   Python,
	".rs":    Rust,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".go":    Go,
	".java":  JavaFamily,
	".kt":    JavaFamily,
	".kts":   JavaFamily,
	".scala": JavaFamily,
	".cs":    CSharp,
	".c":     Generic,
	".h":     Generic,
	".cc":    Generic,
	".cpp":   Generic,
	".cxx":   Generic,
	".hpp":   Generic,
	".rb":    Generic,
	".php":   Generic,
	".swift": Generic,
	".lua":   Generic,
	".zig":   Generic,
	".hs":    Generic,
	".ml":    Generic,
	".mli":   Generic,
	".ex":    Generic,
	".exs":   Generic,
	".nim":   Generic,
	".sh":    Generic,
	".bash":  Generic,
	".zsh":   Generic,
}

// humanNames gives display names for the onboarding summariser's
// dominant-language list. Extensions not listed here fall back to
// their upper-cased form without the leading dot.
var humanNames = map[string]string{
	".py":    "Python",
	".pyi":   "Python",
	".rs":    "Rust",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".mjs":   "JavaScript",
	".cjs":   "JavaScript",
	".go":    "Go",
	".java":  "Java",
	".kt":    "Kotlin",
	".kts":   "Kotlin",
	".scala": "Scala",
	".cs":    "C#",
	".c":     "C",
	".h":     "C",
	".cc":    "C++",
	".cpp":   "C++",
	".cxx":   "C++",
	".hpp":   "C++",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".lua":   "Lua",
	".zig":   "Zig",
	".hs":    "Haskell",
	".ml":    "OCaml",
	".mli":   "OCaml",
	".ex":    "Elixir",
	".exs":   "Elixir",
	".nim":   "Nim",
	".sh":    "Shell",
	".bash":  "Shell",
	".zsh":   "Shell",
}

// ForExtension returns the Tag for a recognised extension (including
// the leading dot, case-insensitive) and true, or ("", false) if the
// extension isn't part of the closed set.
func ForExtension(ext string) (Tag, bool) {
	tag, ok := extensions[strings.ToLower(ext)]
	return tag, ok
}

// ForPath is a convenience wrapper that extracts the extension from a
// file name or path before looking it up.
func ForPath(path string) (Tag, bool) {
	ext := extOf(path)
	if ext == "" {
		return "", false
	}
	return ForExtension(ext)
}

// HumanName returns a display name for an extension, falling back to
// its upper-cased form (without the leading dot) when unrecognised.
func HumanName(ext string) string {
	ext = strings.ToLower(ext)
	if name, ok := humanNames[ext]; ok {
		return name
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	slash := strings.LastIndexAny(path, "/\\")
	if slash > i {
		return ""
	}
	return path[i:]
}
