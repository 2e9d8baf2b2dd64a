// Package page renders and writes the index.html of a scaffolded project.
package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"

	"github.com/webinit-labs/webinit/internal/catalog"
	"github.com/webinit-labs/webinit/internal/project"
	"github.com/webinit-labs/webinit/internal/scaffold"
)

// IndexFile is the generated document's name under the project root.
const IndexFile = "index.html"

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// ErrInvalidFramework is returned when no usable framework was selected.
var ErrInvalidFramework = errors.New("invalid framework selection")

// Selections are the user's answers consumed by the generator.
type Selections struct {
	ProjectName string
	Framework   *catalog.Entry
	Libraries   []*catalog.Entry
	JQuery      *catalog.JQuery // nil means no jQuery
}

type templateData struct {
	ProjectName     string
	Stylesheets     []catalog.Resource
	Scripts         []catalog.Resource
	LocalStylesheet string
	LocalScript     string
}

// Render assembles the index.html text. Stylesheets come first (framework,
// libraries in selection order, then the local style.css), followed by
// scripts (jQuery, the framework script, then the local script.js).
func Render(sel Selections) (string, error) {
	if err := checkFramework(sel.Framework); err != nil {
		return "", err
	}

	data := templateData{
		ProjectName:     sel.ProjectName,
		LocalStylesheet: path.Join(project.AssetsDirName, filepath.ToSlash(scaffold.StylesheetFile)),
		LocalScript:     path.Join(project.AssetsDirName, filepath.ToSlash(scaffold.ScriptFile)),
	}

	data.Stylesheets = append(data.Stylesheets, sel.Framework.Stylesheet)
	for _, lib := range sel.Libraries {
		if lib == nil {
			continue
		}
		data.Stylesheets = append(data.Stylesheets, lib.Stylesheet)
	}

	if sel.JQuery != nil {
		data.Scripts = append(data.Scripts, sel.JQuery.Script)
	}
	if sel.Framework.Script != nil {
		data.Scripts = append(data.Scripts, *sel.Framework.Script)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing index template: %w", err)
	}
	return buf.String(), nil
}

// WriteIndex writes index.html under loc.RootDir. An existing index.html is
// never overwritten: the outcome is Skipped. An invalid framework aborts with
// ErrInvalidFramework before anything is written. Filesystem failures are
// reported through the outcome, not the error.
func WriteIndex(fs afero.Fs, loc project.Location, sel Selections) (scaffold.Outcome, error) {
	target := loc.Join(IndexFile)

	exists, err := afero.Exists(fs, target)
	if err != nil {
		return scaffold.Outcome{Path: target, Status: scaffold.Failed, Err: fmt.Errorf("checking %s: %w", target, err)}, nil
	}
	if exists {
		return scaffold.Outcome{Path: target, Status: scaffold.Skipped}, nil
	}

	content, err := Render(sel)
	if err != nil {
		return scaffold.Outcome{}, err
	}

	if err := afero.WriteFile(fs, target, []byte(content), 0644); err != nil {
		return scaffold.Outcome{Path: target, Status: scaffold.Failed, Err: fmt.Errorf("writing %s: %w", target, err)}, nil
	}
	return scaffold.Outcome{Path: target, Status: scaffold.Created}, nil
}

func checkFramework(fw *catalog.Entry) error {
	if fw == nil {
		return fmt.Errorf("%w: expected a catalog framework, got none", ErrInvalidFramework)
	}
	if err := fw.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFramework, err)
	}
	return nil
}
