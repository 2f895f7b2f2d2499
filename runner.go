package lessonmark

import "context"

// Runner executes learner code and captures what it logs.
//
// A returned error means the runner itself failed (missing interpreter,
// cancelled context). Failures of the code under test are reported in
// Execution.Err instead, alongside whatever was logged before the failure.
type Runner interface {
	Run(ctx context.Context, code string) (*Execution, error)
}

// Execution is the captured result of one run.
type Execution struct {
	Output []string        // one entry per console.log call
	Err    *ExecutionError // nil when the code completed
}

// Passed reports whether the code completed and its output matches expected.
func (e *Execution) Passed(expected string) bool {
	return e != nil && e.Err == nil && CheckOutput(e.Output, expected) == VerdictMatch
}

// ExecutionError is a thrown error or a timeout in the code under test.
type ExecutionError struct {
	Message  string
	TimedOut bool
}

func (e *ExecutionError) Error() string {
	if e.TimedOut {
		return "execution timed out"
	}
	return e.Message
}
