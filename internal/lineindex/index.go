// Package lineindex builds an O(log n) offset-to-line lookup table over a
// file's contents, the foundation every other component in serena-mcp
// uses to translate between byte offsets and 1-based line/column
// positions.
package lineindex

import "sort"

// Record describes one line of a file: the byte offset of its first
// byte, the byte offset one past its terminator (or the file length for
// the final line of a file with no trailing newline), and its text with
// the trailing newline stripped.
type Record struct {
	Start int
	End   int
	Text  string
}

// Index is an ordered, contiguous sequence of line Records plus a sorted
// array of line-start offsets for binary search.
type Index struct {
	records []Record
	starts  []int
}

// Build splits content on '\n', keeping the terminator with each piece,
// and records one Record per piece with the terminator stripped from its
// text. A file that does not end with '\n' still produces a final record
// whose End equals len(content).
func Build(content string) *Index {
	idx := &Index{}
	if content == "" {
		idx.records = []Record{{Start: 0, End: 0, Text: ""}}
		idx.starts = []int{0}
		return idx
	}

	start := 0
	for {
		nl := indexByte(content, start, '\n')
		if nl == -1 {
			if start < len(content) {
				idx.records = append(idx.records, Record{Start: start, End: len(content), Text: content[start:]})
			}
			break
		}
		idx.records = append(idx.records, Record{Start: start, End: nl + 1, Text: content[start:nl]})
		start = nl + 1
	}

	idx.starts = make([]int, len(idx.records))
	for i, r := range idx.records {
		idx.starts[i] = r.Start
	}
	return idx
}

func indexByte(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// LineCount returns the number of line records in the index.
func (idx *Index) LineCount() int {
	return len(idx.records)
}

// LineOfOffset returns the 0-based index of the line containing byte
// offset o: the largest i such that starts[i] <= o.
func (idx *Index) LineOfOffset(o int) int {
	i := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > o })
	if i == 0 {
		return 0
	}
	return i - 1
}

// Bounds returns the (start, end) byte offsets of line i (0-based),
// including the line terminator in end (or the file length for the last
// record).
func (idx *Index) Bounds(i int) (int, int) {
	r := idx.records[i]
	return r.Start, r.End
}

// Line returns the Record for line i (0-based).
func (idx *Index) Line(i int) Record {
	return idx.records[i]
}

// Text returns the trailing-newline-stripped text of line i (0-based).
func (idx *Index) Text(i int) string {
	return idx.records[i].Text
}
