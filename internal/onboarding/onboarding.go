// Package onboarding implements the onboarding summariser: a bounded
// project walk cached in the state store, plus the three tools built
// on top of it (onboarding_tool, prepare_for_new_conversation,
// check_onboarding_performed).
package onboarding

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/statestore"
	"github.com/standardbeagle/serena-mcp/internal/walk"
	"github.com/standardbeagle/serena-mcp/pkg/pathutil"
)

const (
	maxDepth           = 6
	maxFilesScanned    = 5000
	maxSampleFiles     = 12
	maxSamplesPerDir   = 3
	maxTODOCount       = 200
	maxInspectFileSize = 512 * 1024
	readmeExcerptCap   = 1200
)

var readmeNames = []string{"README.md", "README", "readme.md", "Readme.md"}

// DirectorySummary describes one top-level directory.
type DirectorySummary struct {
	Name        string   `json:"name"`
	FileCount   int      `json:"file_count"`
	SampleFiles []string `json:"sample_files"`
}

// LanguageTally counts files of one extension.
type LanguageTally struct {
	Language  string `json:"language"`
	Extension string `json:"extension"`
	FileCount int    `json:"file_count"`
}

// ProjectSummary is the bounded description of a project root.
type ProjectSummary struct {
	RootPath        string              `json:"root_path"`
	GeneratedAt     time.Time           `json:"generated_at"`
	FilesScanned    int                 `json:"files_scanned"`
	Truncated       bool                `json:"truncated"`
	Directories     []DirectorySummary  `json:"directories"`
	Languages       []LanguageTally     `json:"languages"`
	SampleFiles     []string            `json:"sample_files"`
	TODOCount       int                 `json:"todo_count"`
	ReadmeExcerpt   string              `json:"readme_excerpt,omitempty"`
}

// StoredSummary pairs a summary with its persistence timestamp.
type StoredSummary struct {
	Summary   ProjectSummary `json:"summary"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type workflowState map[string]StoredSummary

const stateFile = "workflow_state.json"

// Summarize walks root and builds a fresh ProjectSummary, ignoring any
// cache.
func Summarize(root string, maxDirectories, maxLanguages int, now time.Time) (ProjectSummary, error) {
	if maxDirectories <= 0 {
		maxDirectories = 6
	}
	if maxLanguages <= 0 {
		maxLanguages = 6
	}

	summary := ProjectSummary{RootPath: root, GeneratedAt: now}

	dirOrder := []string{}
	dirCounts := map[string]*DirectorySummary{}
	extCounts := map[string]int{}
	filesScanned := 0
	todoCount := 0

	err := walk.Walk(root, walk.Options{MaxDepth: maxDepth, SkipDirs: walk.DefaultSkipDirs}, func(path string, depth int) error {
		if filesScanned >= maxFilesScanned {
			summary.Truncated = true
			return nil
		}
		filesScanned++

		ext := strings.ToLower(filepath.Ext(path))
		if ext != "" {
			extCounts[ext]++
		}

		rel := pathutil.ToRelative(path, root)
		topDir := topLevelDir(rel)
		if topDir != "" {
			ds, ok := dirCounts[topDir]
			if !ok {
				ds = &DirectorySummary{Name: topDir}
				dirCounts[topDir] = ds
				dirOrder = append(dirOrder, topDir)
			}
			ds.FileCount++
			if len(ds.SampleFiles) < maxSamplesPerDir {
				ds.SampleFiles = append(ds.SampleFiles, rel)
			}
		}

		if len(summary.SampleFiles) < maxSampleFiles {
			summary.SampleFiles = append(summary.SampleFiles, rel)
		}

		if todoCount < maxTODOCount {
			if info, err := os.Stat(path); err == nil && info.Size() <= maxInspectFileSize {
				if data, err := os.ReadFile(path); err == nil && utf8.Valid(data) {
					todoCount += strings.Count(string(data), "TODO") + strings.Count(string(data), "FIXME")
				}
			}
		}

		return nil
	})
	if err != nil {
		return ProjectSummary{}, err
	}
	if filesScanned >= maxFilesScanned {
		summary.Truncated = true
	}

	summary.FilesScanned = filesScanned
	if todoCount > maxTODOCount {
		todoCount = maxTODOCount
	}
	summary.TODOCount = todoCount

	sort.Strings(dirOrder)
	for _, name := range dirOrder {
		if len(summary.Directories) >= maxDirectories {
			break
		}
		summary.Directories = append(summary.Directories, *dirCounts[name])
	}

	summary.Languages = topLanguages(extCounts, maxLanguages)
	summary.ReadmeExcerpt = readExcerpt(root)

	return summary, nil
}

func topLevelDir(rel string) string {
	rel = filepath.ToSlash(rel)
	i := strings.IndexByte(rel, '/')
	if i < 0 {
		return ""
	}
	return rel[:i]
}

func topLanguages(extCounts map[string]int, max int) []LanguageTally {
	exts := make([]string, 0, len(extCounts))
	for ext := range extCounts {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		if extCounts[exts[i]] != extCounts[exts[j]] {
			return extCounts[exts[i]] > extCounts[exts[j]]
		}
		return exts[i] < exts[j]
	})
	if len(exts) > max {
		exts = exts[:max]
	}
	out := make([]LanguageTally, len(exts))
	for i, ext := range exts {
		out[i] = LanguageTally{Language: lang.HumanName(ext), Extension: ext, FileCount: extCounts[ext]}
	}
	return out
}

func readExcerpt(root string) string {
	for _, name := range readmeNames {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if len(data) <= readmeExcerptCap {
			return string(data)
		}
		return string(data[:readmeExcerptCap]) + "…"
	}
	return ""
}

// CheckPerformed reports whether onboarding has ever succeeded for
// root, and when.
func CheckPerformed(root string) (bool, time.Time, error) {
	var state workflowState
	if err := statestore.Load(stateFile, &state); err != nil {
		return false, time.Time{}, err
	}
	stored, ok := state[root]
	if !ok {
		return false, time.Time{}, nil
	}
	return true, stored.UpdatedAt, nil
}

// Run is onboarding_tool: returns the cached summary unless refresh is
// set or none exists, along with "cached" or "fresh" as the source.
func Run(root string, maxDirectories, maxLanguages int, refresh bool, now time.Time) (ProjectSummary, string, error) {
	var state workflowState
	if err := statestore.Load(stateFile, &state); err != nil {
		return ProjectSummary{}, "", err
	}
	if state == nil {
		state = workflowState{}
	}

	if !refresh {
		if stored, ok := state[root]; ok {
			return stored.Summary, "cached", nil
		}
	}

	summary, err := Summarize(root, maxDirectories, maxLanguages, now)
	if err != nil {
		return ProjectSummary{}, "", err
	}
	state[root] = StoredSummary{Summary: summary, UpdatedAt: now}
	if err := statestore.Save(stateFile, state); err != nil {
		return ProjectSummary{}, "", err
	}
	return summary, "fresh", nil
}

// Suggestions derives the suggestion list prepare_for_new_conversation
// returns alongside a summary.
func Suggestions(s ProjectSummary) []string {
	var out []string
	if s.TODOCount > 0 {
		out = append(out, "review outstanding TODO/FIXME markers")
	}
	if s.Truncated {
		out = append(out, "large project: summary was truncated")
	}
	if len(s.Languages) > 0 {
		out = append(out, "primary language appears to be "+s.Languages[0].Language)
	}
	if len(s.Directories) > 0 {
		names := make([]string, len(s.Directories))
		for i, d := range s.Directories {
			names[i] = d.Name
		}
		out = append(out, "top-level directories: "+strings.Join(names, ", "))
	}
	if s.ReadmeExcerpt == "" {
		out = append(out, "no README found at the project root")
	}
	return out
}

// PrepareForNewConversation is prepare_for_new_conversation: always
// returns the (possibly freshly generated) summary plus suggestions.
func PrepareForNewConversation(root string, maxDirectories, maxLanguages int, now time.Time) (ProjectSummary, []string, error) {
	summary, _, err := Run(root, maxDirectories, maxLanguages, false, now)
	if err != nil {
		return ProjectSummary{}, nil, err
	}
	return summary, Suggestions(summary), nil
}
