// Package wizard runs the interactive scaffolding session: it asks for the
// project name, builds the directory skeleton, asks for the framework,
// libraries and jQuery version, and finally writes index.html.
package wizard

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/webinit-labs/webinit/internal/catalog"
	"github.com/webinit-labs/webinit/internal/page"
	"github.com/webinit-labs/webinit/internal/project"
	"github.com/webinit-labs/webinit/internal/prompt"
	"github.com/webinit-labs/webinit/internal/scaffold"
)

// Question texts.
const (
	ProjectNameQuestion = "What is the name of your project?"
	FrameworkQuestion   = "Select a CSS framework"
	LibrariesQuestion   = "Choose CSS Libraries"
	JQueryQuestion      = "Which version of jQuery do you want?"

	// NoJQueryChoice is the menu label for leaving jQuery out.
	NoJQueryChoice = "I don't want to use jQuery"

	emptyNameMessage = "Please enter a name for your project."
)

// Options configures a session.
type Options struct {
	FS       afero.Fs
	Location project.Location
	Catalog  *catalog.Catalog
	Prompter *prompt.Prompter

	// Out receives progress lines, Err receives warnings and failures.
	Out io.Writer
	Err io.Writer

	// DefaultFramework and DefaultJQuery name the preselected answers.
	// Unknown names mean no default.
	DefaultFramework string
	DefaultJQuery    string
}

// Summary describes what a session did.
type Summary struct {
	Selections  page.Selections
	Directories *scaffold.Result
	Files       *scaffold.Result
	Index       scaffold.Outcome
}

// Failed reports whether any filesystem operation failed.
func (s *Summary) Failed() bool {
	if s.Directories != nil && len(s.Directories.Failures()) > 0 {
		return true
	}
	if s.Files != nil && len(s.Files.Failures()) > 0 {
		return true
	}
	return s.Index.Status == scaffold.Failed
}

// Run executes the session. Prompt errors and an invalid framework abort the
// session; filesystem failures are reported and the session continues.
func Run(opts Options) (*Summary, error) {
	if opts.Catalog == nil {
		return nil, errors.New("wizard: no catalog configured")
	}
	rep := reporter{out: opts.Out, err: opts.Err, loc: opts.Location}
	summary := &Summary{}

	name, err := opts.Prompter.Input(ProjectNameQuestion, validateName)
	if err != nil {
		return nil, fmt.Errorf("reading project name: %w", err)
	}
	summary.Selections.ProjectName = name

	builder := scaffold.NewBuilder(opts.FS, opts.Location)
	summary.Directories = builder.CreateDirectories()
	rep.directories(summary.Directories)
	summary.Files = builder.CreateFiles()
	rep.files(summary.Files)

	fw, err := askFramework(opts)
	if err != nil {
		return summary, err
	}
	summary.Selections.Framework = fw

	libs, err := askLibraries(opts)
	if err != nil {
		return summary, err
	}
	summary.Selections.Libraries = libs

	jq, err := askJQuery(opts)
	if err != nil {
		return summary, err
	}
	summary.Selections.JQuery = jq

	outcome, err := page.WriteIndex(opts.FS, opts.Location, summary.Selections)
	if err != nil {
		return summary, fmt.Errorf("generating %s: %w", page.IndexFile, err)
	}
	summary.Index = outcome
	rep.index(outcome)

	return summary, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New(emptyNameMessage)
	}
	return nil
}

func askFramework(opts Options) (*catalog.Entry, error) {
	names := opts.Catalog.FrameworkNames()
	idx, err := opts.Prompter.Select(FrameworkQuestion, names, indexOf(names, opts.DefaultFramework))
	if err != nil {
		return nil, fmt.Errorf("reading framework: %w", err)
	}
	fw, _ := opts.Catalog.Framework(names[idx])
	return fw, nil
}

func askLibraries(opts Options) ([]*catalog.Entry, error) {
	names := opts.Catalog.LibraryNames()
	picked, err := opts.Prompter.MultiSelect(LibrariesQuestion, names)
	if err != nil {
		return nil, fmt.Errorf("reading libraries: %w", err)
	}
	libs := make([]*catalog.Entry, 0, len(picked))
	for _, idx := range picked {
		lib, _ := opts.Catalog.Library(names[idx])
		libs = append(libs, lib)
	}
	return libs, nil
}

func askJQuery(opts Options) (*catalog.JQuery, error) {
	names := opts.Catalog.JQueryNames()
	choices := append(append([]string{}, names...), NoJQueryChoice)

	def := indexOf(names, opts.DefaultJQuery)
	if opts.DefaultJQuery == catalog.NoJQuery {
		def = len(names)
	}

	idx, err := opts.Prompter.Select(JQueryQuestion, choices, def)
	if err != nil {
		return nil, fmt.Errorf("reading jQuery version: %w", err)
	}
	if idx == len(names) {
		return nil, nil
	}
	jq, _ := opts.Catalog.JQueryVersion(names[idx])
	return jq, nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
