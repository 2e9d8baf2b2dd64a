// Package project resolves where a scaffold is written.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AssetsDirName is the directory under the project root holding css, js and img.
const AssetsDirName = "assets"

// ErrMalformedPath is returned when a path cannot be interpreted.
var ErrMalformedPath = errors.New("malformed project path")

// Location is the resolved project root and its assets directory.
type Location struct {
	RootDir   string
	AssetsDir string
}

// Resolve derives a Location from cwd and an optional path argument. An empty
// path means cwd itself, an absolute path is used as-is, and a relative path
// is joined onto cwd. No filesystem access happens here.
func Resolve(cwd, path string) (Location, error) {
	if strings.ContainsRune(cwd, 0) || !filepath.IsAbs(cwd) {
		return Location{}, fmt.Errorf("%w: working directory %q is not absolute", ErrMalformedPath, cwd)
	}
	if strings.ContainsRune(path, 0) {
		return Location{}, fmt.Errorf("%w: %q contains a NUL byte", ErrMalformedPath, path)
	}

	var root string
	switch {
	case path == "":
		root = filepath.Clean(cwd)
	case filepath.IsAbs(path):
		root = filepath.Clean(path)
	default:
		root = filepath.Join(cwd, path)
	}

	return Location{
		RootDir:   root,
		AssetsDir: filepath.Join(root, AssetsDirName),
	}, nil
}

// Join returns a path under the project root.
func (l Location) Join(elem ...string) string {
	return filepath.Join(append([]string{l.RootDir}, elem...)...)
}

// Rel returns path relative to the project root, or path unchanged when it
// lies outside the root.
func (l Location) Rel(path string) string {
	rel, err := filepath.Rel(l.RootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
