// Package adapter contains filesystem adapters for the slugline CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/slugline/internal/model"
)

// SourceGlob selects the files the slug line is enforced on.
const SourceGlob = "*.py"

const recursiveSuffix = "/..."

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects the files matching SourceGlob under the provided roots.
	// Results are absolute, de-duplicated and kept in discovery order.
	Get(roots []m.Path, recursive bool) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile overwrites a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// keep permission bits when rewriting.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots. An empty root list scans
// the current directory. A root ending in "/..." is always scanned recursively.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, recursive bool) ([]m.Path, error) {
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	seen := make(map[string]struct{})

	var files []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		files = append(files, m.Path(path))
	}

	for _, root := range roots {
		rootPath, rootRecursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if isSourceFile(rootPath) {
				add(rootPath)
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive || rootRecursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !isSourceFile(path) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root in lexical order, optionally descending
// into subdirectories. Version control metadata directories are never entered.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || isVCSDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, recursiveSuffix) {
		return strings.TrimSuffix(rootStr, recursiveSuffix), true
	}

	return rootStr, false
}

func isSourceFile(path string) bool {
	ok, err := filepath.Match(SourceGlob, filepath.Base(path))

	return err == nil && ok
}

func isVCSDir(name string) bool {
	switch name {
	case ".git", ".hg", ".svn":
		return true
	default:
		return false
	}
}
