package unitview

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// ExecResult captures one finished invocation of the external tool.
type ExecResult struct {
	// ExitSuccess is true when the process exited with status zero
	ExitSuccess bool
	// Stdout is the captured standard output
	Stdout []byte
	// Stderr is the captured standard error
	Stderr []byte
}

// Runner runs an external command with arguments and captures its exit
// status and output. The error is non-nil only when the process could not
// be spawned at all; a non-zero exit is reported through ExitSuccess and
// left to the caller to interpret alongside Stderr.
type Runner interface {
	Run(ctx context.Context, args ...string) (ExecResult, error)
}

// SystemctlRunner invokes the systemctl binary directly, optionally through
// sudo for non-root callers. Arguments are passed verbatim; no shell is
// involved and no timeout is imposed beyond what the context carries.
type SystemctlRunner struct {
	// Path is the path to the systemctl binary
	Path string

	// UseSudo indicates whether to prefix invocations with sudo
	UseSudo bool

	// SudoPath is the sudo binary to use when UseSudo is set
	SudoPath string
}

// NewSystemctlRunner returns a runner with default binary paths and no sudo.
func NewSystemctlRunner() *SystemctlRunner {
	return &SystemctlRunner{
		Path:     DefaultSystemctlPath,
		SudoPath: DefaultSudoPath,
	}
}

// Run executes systemctl with the given arguments.
func (r *SystemctlRunner) Run(ctx context.Context, args ...string) (ExecResult, error) {
	var cmd *exec.Cmd
	if r.UseSudo {
		cmd = exec.CommandContext(ctx, r.SudoPath, append([]string{r.Path}, args...)...)
	} else {
		cmd = exec.CommandContext(ctx, r.Path, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ExecResult{
		ExitSuccess: err == nil,
		Stdout:      stdout.Bytes(),
		Stderr:      stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero. That is a result,
			// not a spawn failure.
			return res, nil
		}
		return ExecResult{}, err
	}
	return res, nil
}
