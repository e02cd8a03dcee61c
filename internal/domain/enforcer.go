// Package domain holds the slug line rules and the workflow that applies them.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mouse-blink/slugline/internal/adapter"
	m "github.com/mouse-blink/slugline/internal/model"
)

// MarkerPrefix starts every slug line.
const MarkerPrefix = "#: "

// ErrNotText is returned for files whose content is not valid UTF-8.
var ErrNotText = errors.New("file content is not valid UTF-8 text")

// markerPattern recognises a slug line. The optional prefix is an absolute
// path without whitespace, so full-path markers are recognised and corrected
// like base-name ones while ordinary comments mentioning a path are not.
var markerPattern = regexp.MustCompile(`^#: (?:(?:/|[A-Za-z]:\\)(?:[^\s/\\]+[/\\])*)?[\p{L}\p{N}_]+\.py\r?\n$`)

// Enforcer keeps the slug line of a single file in sync with its name.
type Enforcer interface {
	// EnsureMarker inserts or corrects the slug line, writing the file at
	// most once.
	EnsureMarker(path m.Path, fullPath bool) (m.ChangeResult, error)
	// CheckMarker reports what EnsureMarker would do without writing.
	CheckMarker(path m.Path, fullPath bool) (m.ChangeResult, error)
}

type enforcer struct {
	fsAdapter adapter.SourceFSAdapter
	log       *zap.Logger
}

// NewEnforcer creates an Enforcer reading and writing through fsAdapter.
func NewEnforcer(fsAdapter adapter.SourceFSAdapter, log *zap.Logger) Enforcer {
	if log == nil {
		log = zap.NewNop()
	}

	return &enforcer{fsAdapter: fsAdapter, log: log}
}

// MarkerName returns the name embedded in the slug line of path.
func MarkerName(path m.Path, fullPath bool) (string, error) {
	if !fullPath {
		return path.Base(), nil
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	return abs, nil
}

// MarkerLine returns the slug line for name, newline included.
func MarkerLine(name string) string {
	return MarkerPrefix + name + "\n"
}

// IsMarkerLine reports whether line has the shape of a slug line.
func IsMarkerLine(line string) bool {
	return markerPattern.MatchString(line)
}

// Apply computes the outcome for src against the expected slug line and
// returns the updated file. The slug line takes the line ending of the
// file's first line. src is not modified.
func Apply(src m.SourceFile, expected string) (m.SourceFile, m.Outcome) {
	first, ok := src.FirstLine()
	if ok {
		expected = withLineEnding(expected, first)
	}

	switch {
	case ok && first == expected:
		return src, m.Unchanged
	case ok && IsMarkerLine(first):
		lines := make([]string, len(src.Lines))
		copy(lines, src.Lines)
		lines[0] = expected

		return m.SourceFile{Path: src.Path, Lines: lines}, m.Corrected
	default:
		lines := make([]string, 0, len(src.Lines)+1)
		lines = append(lines, expected)
		lines = append(lines, src.Lines...)

		return m.SourceFile{Path: src.Path, Lines: lines}, m.Inserted
	}
}

// withLineEnding gives marker the CRLF terminator when line has one.
func withLineEnding(marker, line string) string {
	if !strings.HasSuffix(line, "\r\n") {
		return marker
	}

	return strings.TrimSuffix(marker, "\n") + "\r\n"
}

func (e *enforcer) EnsureMarker(path m.Path, fullPath bool) (m.ChangeResult, error) {
	return e.process(path, fullPath, false)
}

func (e *enforcer) CheckMarker(path m.Path, fullPath bool) (m.ChangeResult, error) {
	return e.process(path, fullPath, true)
}

func (e *enforcer) process(path m.Path, fullPath, dryRun bool) (m.ChangeResult, error) {
	name, err := MarkerName(path, fullPath)
	if err != nil {
		return m.ChangeResult{}, err
	}

	content, err := e.fsAdapter.ReadFile(path)
	if err != nil {
		return m.ChangeResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return m.ChangeResult{}, fmt.Errorf("decode %s: %w", path, ErrNotText)
	}

	src := m.NewSourceFile(path, string(content))
	updated, outcome := Apply(src, MarkerLine(name))
	result := m.ChangeResult{Path: path, Name: name, Outcome: outcome}

	e.log.Debug("slug line checked",
		zap.String("path", string(path)),
		zap.String("outcome", outcome.String()),
		zap.Bool("dryRun", dryRun))

	if !outcome.Changed() || dryRun {
		return result, nil
	}

	info, err := e.fsAdapter.FileInfo(path)
	if err != nil {
		return m.ChangeResult{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := e.fsAdapter.WriteFile(path, []byte(updated.String()), info.Mode().Perm()); err != nil {
		return m.ChangeResult{}, fmt.Errorf("write %s: %w", path, err)
	}

	return result, nil
}
