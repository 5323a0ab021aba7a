package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/acarl005/stripansi"

	"pyedit/internal/logger"
)

var ErrStart = errors.New("process failed to start")

// Result holds the combined stdout/stderr of a finished child
type Result struct {
	Command  string
	Output   string
	ExitCode int
	Duration time.Duration
}

// ExitError is returned when the child exits non-zero
type ExitError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

type ExecRunner struct {
	logger logger.Logger
	env    []string
}

func NewExecRunner(log logger.Logger, env ...string) *ExecRunner {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ExecRunner{logger: log, env: env}
}

// Run blocks until the child exits. There is no timeout; ctx is only used to
// kill the child when the application shuts down.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	command := commandLine(name, args)
	r.logger.Debug("Process", "starting", map[string]interface{}{
		"command": command,
	})

	start := time.Now()
	out, err := cmd.CombinedOutput()
	result := &Result{
		Command:  command,
		Output:   stripansi.Strip(string(out)),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.ExitCode = -1
			return result, fmt.Errorf("%w: %s: %v", ErrStart, command, err)
		}
		result.ExitCode = exitErr.ExitCode()
		r.logger.Warning("Process", "non-zero exit", map[string]interface{}{
			"command":     command,
			"exit_code":   result.ExitCode,
			"duration_ms": result.Duration.Milliseconds(),
		})
		return result, &ExitError{Command: command, ExitCode: result.ExitCode, Output: result.Output}
	}

	r.logger.Debug("Process", "finished", map[string]interface{}{
		"command":     command,
		"exit_code":   0,
		"duration_ms": result.Duration.Milliseconds(),
	})
	return result, nil
}

// commandLine renders argv for logs and titles, eliding long inline code.
func commandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if strings.ContainsAny(a, "\n") || len(a) > 60 {
			a = fmt.Sprintf("<%d bytes>", len(a))
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
