package scaffold

// Status is the result of one filesystem target.
type Status int

const (
	// Created means the directory or file was written.
	Created Status = iota
	// Skipped means the target already existed and was left alone.
	Skipped
	// Failed means the operation returned an error; see Outcome.Err.
	Failed
)

// String returns a lowercase label for the status.
func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to a single path.
type Outcome struct {
	Path   string
	IsDir  bool
	Status Status
	Err    error
}

// Result holds the outcomes of one builder stage, in a fixed order.
type Result struct {
	Outcomes []Outcome
}

// Failures returns the outcomes whose status is Failed.
func (r *Result) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == Failed {
			failed = append(failed, o)
		}
	}
	return failed
}

func created(path string, isDir bool) Outcome {
	return Outcome{Path: path, IsDir: isDir, Status: Created}
}

func skipped(path string, isDir bool) Outcome {
	return Outcome{Path: path, IsDir: isDir, Status: Skipped}
}

func failed(path string, isDir bool, err error) Outcome {
	return Outcome{Path: path, IsDir: isDir, Status: Failed, Err: err}
}
