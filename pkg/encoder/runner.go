package encoder

import (
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner runs the encoder for one invocation. A nil error means the encoder
// reported success.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// RunnerFunc adapts a function to Runner
type RunnerFunc func(ctx context.Context, inv Invocation) error

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, inv Invocation) error {
	return f(ctx, inv)
}

// ExecRunner runs the encoder as a child process
type ExecRunner struct {
	Binary string
	// Timeout bounds one invocation; zero means no limit
	Timeout time.Duration
	// Output receives the encoder's stdout and stderr; nil discards it
	Output io.Writer

	logger zerolog.Logger
}

// NewExecRunner creates a runner for the given binary
func NewExecRunner(binary string, timeout time.Duration, output io.Writer) *ExecRunner {
	return &ExecRunner{
		Binary:  binary,
		Timeout: timeout,
		Output:  output,
		logger:  logging.GetLogger("encoder.exec"),
	}
}

// Run executes the encoder synchronously and maps the outcome to a coded
// error: ENCODER_START, ENCODER_TIMEOUT or ENCODER_EXIT
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := inv.Args()
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdout = r.Output
	cmd.Stderr = r.Output

	r.logger.Debug().
		Str("binary", r.Binary).
		Strs("args", args).
		Msg("Running encoder")

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		r.logger.Debug().Str("path", inv.Path).Dur("duration", elapsed).Msg("Encoder succeeded")
		return nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return errors.Wrapf(err, errors.ErrEncoderTimeout, "encoder timed out after %s", r.Timeout).
			WithDetail("path", inv.Path)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return errors.Newf(errors.ErrEncoderExit, "encoder exited with status %d", exitErr.ExitCode()).
			WithDetail("path", inv.Path).
			WithDetail("exitCode", exitErr.ExitCode())
	}

	return errors.Wrapf(err, errors.ErrEncoderStart, "cannot start encoder %s", r.Binary).
		WithDetail("path", inv.Path)
}
