package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/process"
)

// Defaults for NodeRunner.
const (
	DefaultCommand = "node"
	DefaultTimeout = 5 * time.Second

	// maxOutputBytes caps what is read back from the child.
	maxOutputBytes = 1 << 20
)

// Compile-time interface check.
var _ lessonmark.Runner = (*NodeRunner)(nil)

// NodeRunner executes code with a node binary. The zero value is not usable;
// create with NewNodeRunner.
type NodeRunner struct {
	command  string
	timeout  time.Duration
	lookPath func(string) (string, error)
}

// Option configures a NodeRunner.
type Option func(*NodeRunner)

// WithCommand sets the node executable (name on PATH or absolute path).
func WithCommand(cmd string) Option {
	return func(r *NodeRunner) {
		if cmd != "" {
			r.command = cmd
		}
	}
}

// WithTimeout bounds one run. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(r *NodeRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewNodeRunner creates a runner. The executable is resolved on each Run so a
// runner can be created before node is installed.
func NewNodeRunner(opts ...Option) *NodeRunner {
	r := &NodeRunner{
		command:  DefaultCommand,
		timeout:  DefaultTimeout,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes code and captures its console output.
// Thrown errors and timeouts are reported in Execution.Err; the returned error
// is reserved for failures to run at all.
func (r *NodeRunner) Run(ctx context.Context, code string) (*lessonmark.Execution, error) {
	if strings.TrimSpace(code) == "" {
		return nil, lessonmark.ErrEmptyCode
	}

	bin, err := r.lookPath(r.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", lessonmark.ErrRunnerUnavailable, r.command, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, "-e", harness) // #nosec G204 -- configured interpreter
	cmd.Stdin = strings.NewReader(code)
	stdout := &limitedBuffer{max: maxOutputBytes}
	stderr := &limitedBuffer{max: maxOutputBytes}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	process.SetProcessGroup(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}
	cmd.WaitDelay = time.Second

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return &lessonmark.Execution{Err: &lessonmark.ExecutionError{TimedOut: true}}, nil
	}

	data := stdout.Bytes()
	if !gjson.ValidBytes(data) {
		// The harness never printed: node failed before running the code
		// (bad flags, out of memory, killed by a signal).
		msg := strings.TrimSpace(stderr.String())
		if msg == "" && runErr != nil {
			msg = runErr.Error()
		}
		if msg == "" {
			msg = "no result from runner"
		}
		return &lessonmark.Execution{Err: &lessonmark.ExecutionError{Message: msg}}, nil
	}

	return parseResult(data), nil
}

// parseResult reads the harness document. A non-string error field counts as
// no error.
func parseResult(data []byte) *lessonmark.Execution {
	doc := gjson.ParseBytes(data)

	lines := doc.Get("output").Array()
	out := &lessonmark.Execution{Output: make([]string, len(lines))}
	for i, l := range lines {
		out.Output[i] = l.String()
	}

	if e := doc.Get("error"); e.Type == gjson.String {
		out.Err = &lessonmark.ExecutionError{Message: e.String()}
	}
	return out
}

// limitedBuffer keeps the first max bytes written and discards the rest.
type limitedBuffer struct {
	bytes.Buffer
	max int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.Len(); room > 0 {
		if len(p) > room {
			b.Buffer.Write(p[:room])
		} else {
			b.Buffer.Write(p)
		}
	}
	return len(p), nil
}
