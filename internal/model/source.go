package model

import "strings"

// SourceFile is a text file decomposed into lines. Every line keeps its
// trailing newline; only the last line may lack one.
type SourceFile struct {
	Path  Path
	Lines []string
}

// NewSourceFile splits content into lines, preserving terminators.
func NewSourceFile(path Path, content string) SourceFile {
	return SourceFile{Path: path, Lines: SplitLines(content)}
}

// SplitLines splits s after every "\n". Joining the result gives back s.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// FirstLine returns line 0, if the file has any content.
func (s SourceFile) FirstLine() (string, bool) {
	if len(s.Lines) == 0 {
		return "", false
	}

	return s.Lines[0], true
}

// String joins the lines back into the file content.
func (s SourceFile) String() string {
	return strings.Join(s.Lines, "")
}
