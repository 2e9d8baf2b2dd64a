package wizard

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/webinit-labs/webinit/internal/project"
	"github.com/webinit-labs/webinit/internal/scaffold"
)

// reporter prints outcomes the way the session announces them.
type reporter struct {
	out io.Writer
	err io.Writer
	loc project.Location
}

func (r reporter) directories(res *scaffold.Result) {
	if len(res.Outcomes) == 1 && res.Outcomes[0].Status == scaffold.Skipped {
		fmt.Fprintf(r.err, "%s already exists!\n", res.Outcomes[0].Path)
		return
	}

	fmt.Fprintln(r.out, "Creating project scaffold...")
	for i, o := range res.Outcomes {
		switch {
		case o.Status == scaffold.Failed:
			fmt.Fprintf(r.err, "error: %v\n", o.Err)
		case i == 0:
			fmt.Fprintln(r.out, "Project scaffold created successfully!")
		default:
			fmt.Fprintf(r.out, "%s directory created successfully!\n", filepath.Base(o.Path))
		}
	}
}

func (r reporter) files(res *scaffold.Result) {
	for _, o := range res.Outcomes {
		r.outcome(o)
	}
}

func (r reporter) index(o scaffold.Outcome) {
	r.outcome(o)
}

func (r reporter) outcome(o scaffold.Outcome) {
	switch o.Status {
	case scaffold.Created:
		fmt.Fprintf(r.out, "%s created successfully!\n", r.loc.Rel(o.Path))
	case scaffold.Skipped:
		fmt.Fprintf(r.err, "%s already exists!\n", r.loc.Rel(o.Path))
	case scaffold.Failed:
		fmt.Fprintf(r.err, "error: %v\n", o.Err)
	}
}
