package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Action describes what happened, or would happen, to a target file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionUpdate    Action = "update"
	ActionSkip      Action = "skip"
)

// Entry records one file emitted by a Writer.
type Entry struct {
	Kind   string // artifact kind, e.g. "Controller"
	Path   string // path relative to the project root, slash separated
	Action Action
}

// Writer emits generated files under a project root. Every target is
// checked for existence before writing: an existing file is a
// *ConflictError unless force is set.
type Writer interface {
	// Root returns the absolute project root.
	Root() string

	// Exists reports whether relPath exists under the root.
	Exists(relPath string) bool

	// ReadFile returns the contents of relPath.
	ReadFile(relPath string) ([]byte, error)

	// Write creates relPath with content. It returns the absolute path written.
	Write(kind, relPath string, content []byte, force bool) (string, error)

	// Update replaces the contents of relPath, creating it when missing.
	// It never reports a conflict and is used for files assemble appends to.
	Update(kind, relPath string, content []byte) (string, error)

	// Skip records that relPath was left untouched.
	Skip(kind, relPath string)

	// Entries returns every recorded emission in order.
	Entries() []Entry
}

// writer is the concrete implementation of Writer.
type writer struct {
	root    string
	dryRun  bool
	mu      sync.Mutex
	entries []Entry
	virtual map[string][]byte // dry-run contents keyed by absolute path
}

// NewWriter creates a Writer rooted at projectRoot.
func NewWriter(projectRoot string) (Writer, error) {
	return newWriter(projectRoot, false)
}

// NewDryRunWriter creates a Writer that performs every check but never
// touches the filesystem. Entries reports what would have been written.
func NewDryRunWriter(projectRoot string) (Writer, error) {
	return newWriter(projectRoot, true)
}

func newWriter(projectRoot string, dryRun bool) (*writer, error) {
	abs, err := filepath.Abs(filepath.Clean(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	w := &writer{root: abs, dryRun: dryRun}
	if dryRun {
		w.virtual = make(map[string][]byte)
	}
	return w, nil
}

func (w *writer) Root() string {
	return w.root
}

func (w *writer) Exists(relPath string) bool {
	if err := validateTargetPath(w.root, relPath); err != nil {
		return false
	}
	exists, err := w.exists(w.abs(relPath))
	return err == nil && exists
}

func (w *writer) ReadFile(relPath string) ([]byte, error) {
	if err := validateTargetPath(w.root, relPath); err != nil {
		return nil, err
	}
	dest := w.abs(relPath)
	w.mu.Lock()
	data, ok := w.virtual[dest]
	w.mu.Unlock()
	if ok {
		return data, nil
	}
	return os.ReadFile(dest)
}

func (w *writer) Write(kind, relPath string, content []byte, force bool) (string, error) {
	if err := validateTargetPath(w.root, relPath); err != nil {
		return "", err
	}
	dest := w.abs(relPath)

	exists, err := w.exists(dest)
	if err != nil {
		return "", err
	}
	action := ActionCreate
	if exists {
		if !force {
			return "", &ConflictError{Kind: kind, Path: filepath.ToSlash(relPath)}
		}
		action = ActionOverwrite
	}

	if err := w.put(dest, content); err != nil {
		return "", err
	}
	w.record(kind, relPath, action)
	return dest, nil
}

func (w *writer) Update(kind, relPath string, content []byte) (string, error) {
	if err := validateTargetPath(w.root, relPath); err != nil {
		return "", err
	}
	dest := w.abs(relPath)

	exists, err := w.exists(dest)
	if err != nil {
		return "", err
	}
	action := ActionUpdate
	if !exists {
		action = ActionCreate
	}

	if err := w.put(dest, content); err != nil {
		return "", err
	}
	w.record(kind, relPath, action)
	return dest, nil
}

func (w *writer) Skip(kind, relPath string) {
	w.record(kind, relPath, ActionSkip)
}

func (w *writer) Entries() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// exists reports whether dest is present on disk or in the dry-run overlay.
func (w *writer) exists(dest string) (bool, error) {
	w.mu.Lock()
	_, ok := w.virtual[dest]
	w.mu.Unlock()
	if ok {
		return true, nil
	}
	_, err := os.Stat(dest)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %q: %w", dest, err)
}

// put creates parent directories and writes content. In dry-run mode the
// content is kept in memory instead.
func (w *writer) put(dest string, content []byte) error {
	if w.dryRun {
		w.mu.Lock()
		w.virtual[dest] = content
		w.mu.Unlock()
		return nil
	}
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", dir, err)
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", dest, err)
	}
	return nil
}

func (w *writer) record(kind, relPath string, action Action) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, Entry{Kind: kind, Path: filepath.ToSlash(relPath), Action: action})
}

func (w *writer) abs(relPath string) string {
	return filepath.Join(w.root, filepath.Clean(filepath.FromSlash(relPath)))
}

// validateTargetPath ensures a target path does not escape projectRoot.
func validateTargetPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absPath := filepath.Join(projectRoot, cleaned)
	if !strings.HasPrefix(absPath, projectRoot+string(filepath.Separator)) && absPath != projectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
