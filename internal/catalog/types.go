package catalog

import (
	"errors"
	"fmt"
	"net/url"
)

// Resource is a single remote file referenced from a generated page.
type Resource struct {
	URL       string `yaml:"url"`
	Integrity string `yaml:"integrity"`
}

// Entry is a named stylesheet with an optional companion script.
// Frameworks and libraries share this shape.
type Entry struct {
	Name       string    `yaml:"name"`
	Version    string    `yaml:"version,omitempty"`
	Stylesheet Resource  `yaml:"stylesheet"`
	Script     *Resource `yaml:"script,omitempty"`
}

// JQuery is one selectable jQuery build. The "no jQuery" choice is a nil *JQuery.
type JQuery struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version,omitempty"`
	Script  Resource `yaml:"script"`
}

// Catalog is the immutable set of assets offered to the user.
type Catalog struct {
	Frameworks []Entry  `yaml:"frameworks"`
	Libraries  []Entry  `yaml:"libraries"`
	JQuery     []JQuery `yaml:"jquery"`
}

// ErrInvalidEntry is wrapped by every Validate failure.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Validate checks the entry invariants: a non-empty name, an absolute
// stylesheet URL with an integrity digest, and, when a script is present,
// an absolute script URL with its own digest.
func (e *Entry) Validate() error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidEntry)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidEntry)
	}
	if err := e.Stylesheet.validate(); err != nil {
		return fmt.Errorf("%w: %s stylesheet: %v", ErrInvalidEntry, e.Name, err)
	}
	if e.Script != nil {
		if err := e.Script.validate(); err != nil {
			return fmt.Errorf("%w: %s script: %v", ErrInvalidEntry, e.Name, err)
		}
	}
	return nil
}

// Validate checks that the option has a name and a usable script reference.
func (j *JQuery) Validate() error {
	if j == nil {
		return fmt.Errorf("%w: nil jQuery option", ErrInvalidEntry)
	}
	if j.Name == "" {
		return fmt.Errorf("%w: jQuery name is empty", ErrInvalidEntry)
	}
	if err := j.Script.validate(); err != nil {
		return fmt.Errorf("%w: jQuery %s script: %v", ErrInvalidEntry, j.Name, err)
	}
	return nil
}

func (r Resource) validate() error {
	if r.URL == "" {
		return errors.New("url is empty")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("parsing url %q: %w", r.URL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("url %q is not absolute", r.URL)
	}
	if r.Integrity == "" {
		return fmt.Errorf("url %q has no integrity digest", r.URL)
	}
	return nil
}
