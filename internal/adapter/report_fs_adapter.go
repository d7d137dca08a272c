// Package adapter contains the infrastructure adapters of mutanalysis: report
// discovery and parsing, result persistence, metrics, summaries and watching.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// DefaultReportName is the file name the engine writes its XML report to.
const DefaultReportName = "mutations.xml"

const recursiveSuffix = "/..."

// ReportFSAdapter abstracts the filesystem operations the workflow relies on
// so it can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type ReportFSAdapter interface {
	// Walk traverses root. When recursive is false sub-directories are skipped.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FindReports resolves Go-style path patterns to report files named
	// reportName. Files given explicitly are always included. Paths matching
	// any exclude regex are dropped.
	FindReports(ctx context.Context, paths []m.Path, reportName string, exclude ...string) ([]m.ReportFile, error)

	// Open opens a file for streaming reads.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Glob returns the paths matching pattern.
	Glob(pattern string) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalReportFSAdapter implements ReportFSAdapter on the local filesystem.
type LocalReportFSAdapter struct{}

// NewLocalReportFSAdapter constructs a LocalReportFSAdapter.
func NewLocalReportFSAdapter() *LocalReportFSAdapter {
	return &LocalReportFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalReportFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// FindReports implements ReportFSAdapter.
func (a *LocalReportFSAdapter) FindReports(ctx context.Context, paths []m.Path, reportName string, exclude ...string) ([]m.ReportFile, error) {
	if reportName == "" {
		reportName = DefaultReportName
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var reports []m.ReportFile

	add := func(short, full string) {
		if isExcluded(excludes, short) {
			return
		}

		if _, ok := seen[m.Path(full)]; ok {
			return
		}

		seen[m.Path(full)] = struct{}{}
		reports = append(reports, m.ReportFile{ShortPath: m.Path(short), FullPath: m.Path(full)})
	}

	for _, pattern := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root, recursive := splitPattern(string(pattern))

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("report path %s: %w", pattern, err)
		}

		if !info.IsDir() {
			full, err := filepath.Abs(root)
			if err != nil {
				return nil, err
			}

			add(filepath.Clean(root), full)

			continue
		}

		err = a.Walk(m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() || info.Name() != reportName {
				return nil
			}

			full, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			add(path, full)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", pattern, err)
		}
	}

	slices.SortFunc(reports, func(x, y m.ReportFile) int {
		return strings.Compare(string(x.ShortPath), string(y.ShortPath))
	})

	return reports, nil
}

func splitPattern(pattern string) (string, bool) {
	if pattern == "..." {
		return ".", true
	}

	if strings.HasSuffix(pattern, recursiveSuffix) {
		root := strings.TrimSuffix(pattern, recursiveSuffix)
		if root == "" {
			root = "/"
		}

		return root, true
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(filepath.ToSlash(path)) {
			return true
		}
	}

	return false
}

// Open opens a file for reading.
func (a *LocalReportFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - report paths come from the user's own project
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalReportFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file, creating missing parent directories.
func (a *LocalReportFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalReportFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalReportFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Glob returns the paths matching pattern in sorted order.
func (a *LocalReportFSAdapter) Glob(pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalReportFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
