// Package fileserver stores and serves files below a base directory on disk.
package fileserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644
)

// topLevelDirectories are the only directories writes may land in.
var topLevelDirectories = []string{"recipes"}

var ErrPathOutsideBase = errors.New("path escapes base directory")

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	return f.baseDir
}

// cleanPath resolves path relative to baseDir and rejects anything that would
// land outside of it or outside the allowed top-level directories.
func cleanPath(baseDir, path string) (string, error) {
	rel := filepath.Clean(filepath.Join(string(filepath.Separator), path))
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		rel = "."
	}

	full := filepath.Join(baseDir, rel)
	within, err := filepath.Rel(baseDir, full)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideBase
	}
	return full, nil
}

func allowedTopLevel(path string) bool {
	top, _, _ := strings.Cut(filepath.ToSlash(filepath.Clean(path)), "/")
	for _, dir := range topLevelDirectories {
		if top == dir {
			return true
		}
	}
	return false
}

// Write stores data at path and returns the number of bytes written.
func (f *FileServer) Write(path string, data []byte) (n int, err error) {
	if !allowedTopLevel(path) {
		return 0, fmt.Errorf("writing %q: %w", path, ErrPathOutsideBase)
	}
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.OpenFile(fullpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err = file.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing file: %w", err)
	}

	return n, nil
}

// Delete removes the file at path. Deleting a missing file is not an error.
func (f *FileServer) Delete(path string) error {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullpath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

func (f *FileServer) Exists(path string) (bool, error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(fullpath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// Handler serves stored files under urlPrefix. Directory listings are refused.
func (f *FileServer) Handler(urlPrefix string) http.Handler {
	files := http.FileServer(http.Dir(f.baseDir))
	return http.StripPrefix(strings.TrimRight(urlPrefix, "/"), http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			files.ServeHTTP(w, r)
		}))
}
