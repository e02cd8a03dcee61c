package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/mouse-blink/slugline/internal/adapter"
	"github.com/mouse-blink/slugline/internal/controller"
	m "github.com/mouse-blink/slugline/internal/model"
)

// ErrChangesPending is returned by a dry run that found files to change.
var ErrChangesPending = errors.New("slug lines need updating")

// EnforceArgs holds the arguments for one run over a set of roots.
type EnforceArgs struct {
	Paths     []m.Path
	Recursive bool
	FullPath  bool
	Exclude   []string
	// DryRun reports outcomes without writing any file.
	DryRun bool
	// KeepGoing reports per-file failures and continues with the next file
	// instead of aborting the batch.
	KeepGoing bool
	// List renders the outcomes as a single table. Implies DryRun.
	List bool
}

// Workflow defines the interface for slug line operations.
type Workflow interface {
	Enforce(args EnforceArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	enforcer  Enforcer
	log       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	enforcer Enforcer,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		enforcer:  enforcer,
		log:       log,
	}
}

// Enforce discovers the files under args.Paths and applies the slug line to
// each one in discovery order, reporting every result to the UI.
func (w *workflow) Enforce(args EnforceArgs) error {
	dryRun := args.DryRun || args.List

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(startOption(args)); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	files, err := w.getFiles(args.Paths, args.Recursive, excludes)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		w.ui.DisplayNoFiles()
		return nil
	}

	w.log.Debug("files discovered", zap.Int("count", len(files)), zap.Bool("dryRun", dryRun))

	results := make([]m.ChangeResult, 0, len(files))

	var failures []error

	for _, file := range files {
		result, err := w.processFile(file, args.FullPath, dryRun)
		if err != nil {
			if !args.KeepGoing {
				return err
			}

			w.log.Warn("skipping file", zap.String("path", string(file)), zap.Error(err))
			w.ui.DisplayError(file, err)
			failures = append(failures, err)

			continue
		}

		results = append(results, result)
		w.ui.DisplayResult(result)
	}

	changes := m.CountChanges(results)
	if err := w.ui.DisplaySummary(changes); err != nil {
		return err
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}

	if dryRun && changes > 0 {
		return ErrChangesPending
	}

	return nil
}

// getFiles discovers candidate files and drops the excluded ones.
func (w *workflow) getFiles(roots []m.Path, recursive bool, excludes []*regexp.Regexp) ([]m.Path, error) {
	files, err := w.fsAdapter.Get(roots, recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}

	if len(excludes) == 0 {
		return files, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	kept := files[:0:0]

	for _, file := range files {
		if w.isExcluded(m.Path(wd), file, excludes) {
			w.log.Debug("excluded", zap.String("path", string(file)))
			continue
		}

		kept = append(kept, file)
	}

	return kept, nil
}

func (w *workflow) processFile(file m.Path, fullPath, dryRun bool) (m.ChangeResult, error) {
	if dryRun {
		return w.enforcer.CheckMarker(file, fullPath)
	}

	return w.enforcer.EnsureMarker(file, fullPath)
}

// isExcluded matches the slash-separated path relative to wd. Paths that
// cannot be made relative are matched as they are.
func (w *workflow) isExcluded(wd, file m.Path, excludes []*regexp.Regexp) bool {
	candidate := string(file)
	if rel, err := w.fsAdapter.RelPath(wd, file); err == nil {
		candidate = string(rel)
	}

	candidate = filepath.ToSlash(candidate)

	for _, re := range excludes {
		if re.MatchString(candidate) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func startOption(args EnforceArgs) controller.StartOption {
	switch {
	case args.List:
		return controller.WithListMode()
	case args.DryRun:
		return controller.WithCheckMode()
	default:
		return controller.WithApplyMode()
	}
}
