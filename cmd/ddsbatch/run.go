package ddsbatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/ddsbatch/pkg/config"
	"github.com/arthur-debert/ddsbatch/pkg/convert"
	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/arthur-debert/ddsbatch/pkg/style"
	"github.com/arthur-debert/ddsbatch/pkg/ui"
	"github.com/arthur-debert/ddsbatch/pkg/walker"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fileSystem is swapped for a MemMapFs in tests
var fileSystem = afero.NewOsFs()

// newRunner builds the encoder runner; tests replace it with a fake
var newRunner = func(binary string, cfg *config.Config, output io.Writer) encoder.Runner {
	return encoder.NewExecRunner(binary, cfg.Timeout, output)
}

func wrapf(msg string, err error) error {
	return fmt.Errorf(msg, err)
}

func runBatch(cmd *cobra.Command, f *flags, args []string) error {
	logger := logging.GetLogger("cmd.run")

	cfg, err := loadConfig(cmd, f, args)
	if err != nil {
		return err
	}
	defer pauseBeforeExit(cfg, cmd.InOrStdin(), cmd.ErrOrStderr())

	// The encoder is handed absolute paths
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWalk, "cannot resolve root %s", cfg.Root)
	}

	rs, err := loadRules(cfg)
	if err != nil {
		return err
	}

	binary, err := encoder.ResolveCurrent(cfg.Encoder.Path, cfg.Encoder.Platforms)
	if err != nil {
		return wrapf(MsgErrEncoder, err)
	}
	if !cfg.DryRun {
		if _, err := exec.LookPath(binary); err != nil {
			logger.Warn().Str("encoder", binary).Err(err).Msg("Encoder not found; every conversion will fail")
		}
	}

	out, format, err := newRenderer(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var encoderOutput io.Writer = io.Discard
	if f.verbosity > 0 && !format.Machine() {
		encoderOutput = cmd.ErrOrStderr()
	}

	orch := convert.New(convert.Options{
		Fs:      fileSystem,
		Rules:   rs,
		Runner:  newRunner(binary, cfg, encoderOutput),
		Scales:  encoder.Scales{Model: cfg.Scale.Model, NormalMap: cfg.Scale.NormalMap},
		Workers: cfg.Workers,
		DryRun:  cfg.DryRun,
		Observer: func(res convert.Result) {
			if err := out.RenderProgress(res); err != nil {
				logger.Debug().Err(err).Msg("Cannot write progress")
			}
		},
	})

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("root", root).
		Str("encoder", binary).
		Str("rules", rs.Name).
		Int("workers", orch.Workers()).
		Msg("Running batch")

	w := walker.New(fileSystem, root, cfg.Anchor, cfg.Extensions)
	summary, runErr := orch.RunBatch(ctx, w)
	if summary == nil {
		return runErr
	}

	if err := out.RenderSummary(summary); err != nil {
		return err
	}
	if summary.Discovered == 0 && !format.Machine() {
		_ = out.RenderMessage(fmt.Sprintf(MsgNoImages, root))
	}
	if cfg.DryRun && !format.Machine() {
		_ = out.RenderMessage(MsgDryRunNotice)
	}
	if summary.AllFailed() {
		reportAllFailed(cmd.ErrOrStderr(), format, binary)
	}

	if runErr != nil {
		return runErr
	}
	if summary.HasFailures() {
		return fmt.Errorf(MsgErrBatchFailed, summary.Failed, summary.Attempted())
	}
	return nil
}

// reportAllFailed prints the wrong-encoder diagnostic on stderr
func reportAllFailed(w io.Writer, format ui.Format, binary string) {
	body := fmt.Sprintf(MsgAllFailedBody, binary)
	if format == ui.FormatTerminal || (format == ui.FormatAuto && isTerminalWriter(w)) {
		_, _ = fmt.Fprintln(w, style.AlertBoxStyle.Render(style.ErrorStyle.Render(MsgAllFailedTitle)+"\n"+body))
		return
	}
	_, _ = fmt.Fprintf(w, "%s\n%s\n", MsgAllFailedTitle, body)
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
