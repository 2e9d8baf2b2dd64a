package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog, parsed once on first access.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(builtinCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("built-in catalog: %w", defaultErr)
		}
	})
	return defaultCat, defaultErr
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw YAML against the catalog schema, decodes it, and checks
// entry invariants. jQuery options are ordered by version, oldest first.
func Parse(data []byte) (*Catalog, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("schema validation failed: %s", result.Summary())
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	if err := c.check(); err != nil {
		return nil, err
	}

	if err := sortJQuery(c.JQuery); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) check() error {
	for _, list := range []struct {
		kind    string
		entries []Entry
	}{
		{"framework", c.Frameworks},
		{"library", c.Libraries},
	} {
		seen := make(map[string]bool)
		for i := range list.entries {
			e := &list.entries[i]
			if err := e.Validate(); err != nil {
				return err
			}
			if seen[e.Name] {
				return fmt.Errorf("%w: duplicate %s name %q", ErrInvalidEntry, list.kind, e.Name)
			}
			seen[e.Name] = true
			if err := checkVersion(e.Name, e.Version); err != nil {
				return err
			}
		}
	}

	seen := make(map[string]bool)
	for i := range c.JQuery {
		j := &c.JQuery[i]
		if err := j.Validate(); err != nil {
			return err
		}
		if strings.EqualFold(j.Name, NoJQuery) {
			return fmt.Errorf("%w: jQuery name %q is reserved", ErrInvalidEntry, j.Name)
		}
		if seen[j.Name] {
			return fmt.Errorf("%w: duplicate jQuery name %q", ErrInvalidEntry, j.Name)
		}
		seen[j.Name] = true
		if err := checkVersion(j.Name, j.Version); err != nil {
			return err
		}
	}
	return nil
}

func checkVersion(name, version string) error {
	if version == "" {
		return nil
	}
	if _, err := semver.NewVersion(version); err != nil {
		return fmt.Errorf("%w: %s version %q: %v", ErrInvalidEntry, name, version, err)
	}
	return nil
}

// sortJQuery orders options by semver. Options without a version keep their
// relative position after the versioned ones.
func sortJQuery(opts []JQuery) error {
	versions := make(map[string]*semver.Version, len(opts))
	for _, o := range opts {
		if o.Version == "" {
			continue
		}
		v, err := semver.NewVersion(o.Version)
		if err != nil {
			return fmt.Errorf("parsing jQuery %s version: %w", o.Name, err)
		}
		versions[o.Name] = v
	}
	sort.SliceStable(opts, func(i, j int) bool {
		vi, vj := versions[opts[i].Name], versions[opts[j].Name]
		switch {
		case vi == nil:
			return false
		case vj == nil:
			return true
		default:
			return vi.LessThan(vj)
		}
	})
	return nil
}

// NoJQuery is the reserved option name meaning "do not include jQuery".
const NoJQuery = "none"

// Framework looks up a framework by display name.
func (c *Catalog) Framework(name string) (*Entry, bool) {
	return findEntry(c.Frameworks, name)
}

// Library looks up a library by display name.
func (c *Catalog) Library(name string) (*Entry, bool) {
	return findEntry(c.Libraries, name)
}

// JQueryVersion looks up a jQuery option by name (e.g., "v3").
func (c *Catalog) JQueryVersion(name string) (*JQuery, bool) {
	for i := range c.JQuery {
		if c.JQuery[i].Name == name {
			return &c.JQuery[i], true
		}
	}
	return nil, false
}

// FrameworkNames returns framework names in catalog order.
func (c *Catalog) FrameworkNames() []string { return entryNames(c.Frameworks) }

// LibraryNames returns library names in catalog order.
func (c *Catalog) LibraryNames() []string { return entryNames(c.Libraries) }

// JQueryNames returns jQuery option names, oldest version first.
func (c *Catalog) JQueryNames() []string {
	names := make([]string, len(c.JQuery))
	for i, j := range c.JQuery {
		names[i] = j.Name
	}
	return names
}

func findEntry(entries []Entry, name string) (*Entry, bool) {
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i], true
		}
	}
	return nil, false
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return data, nil
}
