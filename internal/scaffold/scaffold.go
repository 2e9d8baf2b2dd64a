package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/webinit-labs/webinit/internal/project"
)

// AssetDirs are created under the assets directory.
var AssetDirs = []string{"css", "js", "img"}

// Placeholder files written empty, relative to the assets directory.
var (
	StylesheetFile = filepath.Join("css", "style.css")
	ScriptFile     = filepath.Join("js", "script.js")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Builder creates the project skeleton on fs at loc.
type Builder struct {
	fs  afero.Fs
	loc project.Location
}

// NewBuilder returns a Builder writing through fs.
func NewBuilder(fs afero.Fs, loc project.Location) *Builder {
	return &Builder{fs: fs, loc: loc}
}

// CreateDirectories creates the assets directory and its css, js and img
// sub-directories. If the assets directory already exists nothing is
// attempted and a single Skipped outcome is returned.
func (b *Builder) CreateDirectories() *Result {
	exists, err := afero.Exists(b.fs, b.loc.AssetsDir)
	if err != nil {
		return &Result{Outcomes: []Outcome{
			failed(b.loc.AssetsDir, true, fmt.Errorf("checking %s: %w", b.loc.AssetsDir, err)),
		}}
	}
	if exists {
		return &Result{Outcomes: []Outcome{skipped(b.loc.AssetsDir, true)}}
	}

	outcomes := make([]Outcome, 0, len(AssetDirs)+1)
	if err := b.fs.Mkdir(b.loc.AssetsDir, dirPerm); err != nil {
		outcomes = append(outcomes, failed(b.loc.AssetsDir, true, fmt.Errorf("creating %s: %w", b.loc.AssetsDir, err)))
	} else {
		outcomes = append(outcomes, created(b.loc.AssetsDir, true))
	}

	// Sub-directories do not depend on each other; each gets its own slot.
	subs := make([]Outcome, len(AssetDirs))
	var g errgroup.Group
	for i, name := range AssetDirs {
		i := i
		dir := filepath.Join(b.loc.AssetsDir, name)
		g.Go(func() error {
			if err := b.fs.Mkdir(dir, dirPerm); err != nil {
				subs[i] = failed(dir, true, fmt.Errorf("creating %s: %w", dir, err))
				return nil
			}
			subs[i] = created(dir, true)
			return nil
		})
	}
	_ = g.Wait()

	return &Result{Outcomes: append(outcomes, subs...)}
}

// CreateFiles writes empty style.css and script.js placeholders. Existing
// files are truncated.
func (b *Builder) CreateFiles() *Result {
	paths := []string{
		filepath.Join(b.loc.AssetsDir, StylesheetFile),
		filepath.Join(b.loc.AssetsDir, ScriptFile),
	}

	outcomes := make([]Outcome, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := afero.WriteFile(b.fs, path, nil, filePerm); err != nil {
				outcomes[i] = failed(path, false, fmt.Errorf("writing %s: %w", path, err))
				return nil
			}
			outcomes[i] = created(path, false)
			return nil
		})
	}
	_ = g.Wait()

	return &Result{Outcomes: outcomes}
}
