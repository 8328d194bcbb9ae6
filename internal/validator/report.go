package validator

import "github.com/leapstack-labs/schemaguard/pkg/core"

// Summary counts what a run looked at.
type Summary struct {
	Definitions int `json:"definitions"`
	Files       int `json:"files"`
	Models      int `json:"models"`
	ValidModels int `json:"valid_models"`
	Columns     int `json:"columns"`
	Problems    int `json:"problems"`
}

// Report is the outcome of a run. Problems keep accumulation order:
// pairing problems first, then per file in the order files were validated.
type Report struct {
	RunID       string         `json:"run_id"`
	ModelsDir   string         `json:"models_dir"`
	ChangedOnly bool           `json:"changed_only"`
	Files       []string       `json:"files"`
	Problems    []core.Problem `json:"problems"`
	Summary     Summary        `json:"summary"`
}

// Failed reports whether the run found any problem.
func (r *Report) Failed() bool {
	return len(r.Problems) > 0
}

// Lines flattens all problems into report lines.
func (r *Report) Lines() []string {
	var lines []string
	for _, p := range r.Problems {
		lines = append(lines, p.Lines()...)
	}
	return lines
}

func (r *Report) add(problems ...core.Problem) {
	r.Problems = append(r.Problems, problems...)
	r.Summary.Problems = len(r.Problems)
}
