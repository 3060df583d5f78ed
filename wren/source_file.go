package wren

import "strings"

// SourceFile is a named, immutable piece of Wren source text. The lexer and
// every token it produces keep a reference into it, so the file must outlive
// them.
type SourceFile struct {
	Path    string
	Content string
}

func NewSourceFile(path string, content string) *SourceFile {
	return &SourceFile{
		Path:    path,
		Content: content,
	}
}

// LineAt returns the 1-based line containing the given byte offset. Offsets
// at len(Content) are valid query points: end-of-input tokens sit there.
func (f *SourceFile) LineAt(offset int) int {
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	return strings.Count(f.Content[:offset], "\n") + 1
}

// ColumnAt returns the 1-based column of the given byte offset, counted from
// the character after the previous line feed.
func (f *SourceFile) ColumnAt(offset int) int {
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	return offset - strings.LastIndexByte(f.Content[:offset], '\n')
}
