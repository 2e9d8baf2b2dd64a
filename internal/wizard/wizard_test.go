package wizard

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/webinit-labs/webinit/internal/catalog"
	"github.com/webinit-labs/webinit/internal/page"
	"github.com/webinit-labs/webinit/internal/project"
	"github.com/webinit-labs/webinit/internal/prompt"
	"github.com/webinit-labs/webinit/internal/scaffold"
)

type session struct {
	fs   afero.Fs
	loc  project.Location
	out  bytes.Buffer
	errs bytes.Buffer
	opts Options
}

func newSession(t *testing.T, input string) *session {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}

	fs := afero.NewMemMapFs()
	root := filepath.FromSlash("/work/demo")
	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("creating root: %v", err)
	}
	loc, err := project.Resolve(root, "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	s := &session{fs: fs, loc: loc}
	s.opts = Options{
		FS:               fs,
		Location:         loc,
		Catalog:          cat,
		Prompter:         prompt.New(strings.NewReader(input), &s.out),
		Out:              &s.out,
		Err:              &s.errs,
		DefaultFramework: "Normalize",
		DefaultJQuery:    "v3",
	}
	return s
}

func (s *session) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(s.fs, filepath.Join(s.loc.RootDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected output to contain %q\n--- output ---\n%s", substr, content)
	}
}

func TestRun_FullSession(t *testing.T) {
	// name, framework #1 (Normalize), library #2 (Animate), jQuery #3 (v3)
	s := newSession(t, "Demo\n1\n2\n3\n")

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Failed() {
		t.Fatalf("unexpected failures: %+v", summary)
	}

	sel := summary.Selections
	if sel.ProjectName != "Demo" || sel.Framework.Name != "Normalize" {
		t.Errorf("selections = %+v", sel)
	}
	if len(sel.Libraries) != 1 || sel.Libraries[0].Name != "Animate" {
		t.Errorf("libraries = %+v, want [Animate]", sel.Libraries)
	}
	if sel.JQuery == nil || sel.JQuery.Name != "v3" {
		t.Errorf("jQuery = %+v, want v3", sel.JQuery)
	}

	for _, dir := range []string{"assets", "assets/css", "assets/js", "assets/img"} {
		if ok, _ := afero.DirExists(s.fs, filepath.Join(s.loc.RootDir, filepath.FromSlash(dir))); !ok {
			t.Errorf("directory %s missing", dir)
		}
	}
	if got := s.read(t, "assets/css/style.css"); got != "" {
		t.Errorf("style.css = %q, want empty", got)
	}
	if got := s.read(t, "assets/js/script.js"); got != "" {
		t.Errorf("script.js = %q, want empty", got)
	}

	want, err := page.Render(sel)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := s.read(t, "index.html"); got != want {
		t.Errorf("index.html does not match rendered document")
	}

	out := s.out.String()
	assertContains(t, out, ProjectNameQuestion)
	assertContains(t, out, "Creating project scaffold...")
	assertContains(t, out, "img directory created successfully!")
	assertContains(t, out, "assets/css/style.css created successfully!")
	assertContains(t, out, "index.html created successfully!")
	assertContains(t, out, NoJQueryChoice)

	// Scaffolding is announced before the framework question.
	if strings.Index(out, "Creating project scaffold...") > strings.Index(out, FrameworkQuestion) {
		t.Error("scaffold must be created between the name and framework questions")
	}
}

func TestRun_DefaultsAndNoLibraries(t *testing.T) {
	s := newSession(t, "Site\n\n\n\n")
	s.opts.DefaultFramework = "Bootstrap"
	s.opts.DefaultJQuery = "v1"

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	sel := summary.Selections
	if sel.Framework.Name != "Bootstrap" {
		t.Errorf("framework = %s, want Bootstrap", sel.Framework.Name)
	}
	if len(sel.Libraries) != 0 {
		t.Errorf("libraries = %v, want none", sel.Libraries)
	}
	if sel.JQuery == nil || sel.JQuery.Name != "v1" {
		t.Errorf("jQuery = %+v, want v1", sel.JQuery)
	}
}

func TestRun_NoJQuery(t *testing.T) {
	s := newSession(t, "Site\n2\n\n4\n")

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Selections.JQuery != nil {
		t.Errorf("jQuery = %+v, want none", summary.Selections.JQuery)
	}
	if strings.Contains(s.read(t, "index.html"), "jquery") {
		t.Error("index.html should not reference jQuery")
	}
}

func TestRun_DefaultNoJQuery(t *testing.T) {
	s := newSession(t, "Site\n\n\n\n")
	s.opts.DefaultJQuery = catalog.NoJQuery

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Selections.JQuery != nil {
		t.Errorf("jQuery = %+v, want none", summary.Selections.JQuery)
	}
}

func TestRun_ExistingProject(t *testing.T) {
	s := newSession(t, "Again\n1\n\n\n")

	index := filepath.Join(s.loc.RootDir, page.IndexFile)
	if err := afero.WriteFile(s.fs, index, []byte("keep me"), 0644); err != nil {
		t.Fatalf("seeding index: %v", err)
	}
	css := filepath.Join(s.loc.AssetsDir, scaffold.StylesheetFile)
	if err := s.fs.MkdirAll(filepath.Dir(css), 0755); err != nil {
		t.Fatalf("seeding css dir: %v", err)
	}
	if err := afero.WriteFile(s.fs, css, []byte("h1{}"), 0644); err != nil {
		t.Fatalf("seeding css: %v", err)
	}
	if err := s.fs.MkdirAll(filepath.Join(s.loc.AssetsDir, "js"), 0755); err != nil {
		t.Fatalf("seeding js dir: %v", err)
	}

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if summary.Directories.Outcomes[0].Status != scaffold.Skipped {
		t.Errorf("directories should be skipped, got %+v", summary.Directories.Outcomes)
	}
	if summary.Index.Status != scaffold.Skipped {
		t.Errorf("index should be skipped, got %s", summary.Index.Status)
	}
	if got := s.read(t, "index.html"); got != "keep me" {
		t.Errorf("index.html overwritten: %q", got)
	}
	if got := s.read(t, "assets/css/style.css"); got != "" {
		t.Errorf("style.css should be truncated, got %q", got)
	}

	errs := s.errs.String()
	assertContains(t, errs, s.loc.AssetsDir+" already exists!")
	assertContains(t, errs, "index.html already exists!")
}

func TestRun_InputEndsEarly(t *testing.T) {
	s := newSession(t, "Demo\n")

	_, err := Run(s.opts)
	if !errors.Is(err, prompt.ErrNoInput) {
		t.Fatalf("Run() error = %v, want ErrNoInput", err)
	}
	// The skeleton is already in place when the framework question fails.
	if ok, _ := afero.DirExists(s.fs, s.loc.AssetsDir); !ok {
		t.Error("assets directory should have been created")
	}
	if ok, _ := afero.Exists(s.fs, filepath.Join(s.loc.RootDir, page.IndexFile)); ok {
		t.Error("index.html should not be written")
	}
}

func TestRun_FilesystemFailuresContinue(t *testing.T) {
	s := newSession(t, "Demo\n1\n\n\n")
	s.opts.FS = afero.NewReadOnlyFs(s.fs)

	summary, err := Run(s.opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !summary.Failed() {
		t.Error("expected failures on a read-only filesystem")
	}
	if summary.Index.Status != scaffold.Failed {
		t.Errorf("index status = %s, want failed", summary.Index.Status)
	}
	assertContains(t, s.errs.String(), "error: ")
}

func TestRun_NoCatalog(t *testing.T) {
	s := newSession(t, "Demo\n")
	s.opts.Catalog = nil
	if _, err := Run(s.opts); err == nil {
		t.Fatal("expected error without catalog")
	}
}
