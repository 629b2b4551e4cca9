// Test Type: Integration Test
// Description: Tests for running the encoder as a child process

package encoder_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEncoder writes an executable shell script standing in for img2dds
func fakeEncoder(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script encoders are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "img2dds")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestExecRunner(t *testing.T) {
	inv := encoder.Invocation{Flags: "-vcmNs", Scale: "0.5", Path: "/tmp/Space Factory/a.png"}

	t.Run("success_passes_args", func(t *testing.T) {
		bin := fakeEncoder(t, `for a in "$@"; do echo "[$a]"; done`)
		var out bytes.Buffer
		r := encoder.NewExecRunner(bin, time.Minute, &out)

		require.NoError(t, r.Run(context.Background(), inv))
		assert.Equal(t, "[-vcmNs]\n[0.5]\n[/tmp/Space Factory/a.png]\n", out.String())
	})

	t.Run("non_zero_exit", func(t *testing.T) {
		bin := fakeEncoder(t, "exit 3")
		err := encoder.NewExecRunner(bin, 0, nil).Run(context.Background(), inv)

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncoderExit))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, 3, details["exitCode"])
		assert.Equal(t, inv.Path, details["path"])
	})

	t.Run("missing_binary", func(t *testing.T) {
		r := encoder.NewExecRunner(filepath.Join(t.TempDir(), "nope"), 0, nil)
		err := r.Run(context.Background(), inv)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncoderStart))
	})

	t.Run("timeout", func(t *testing.T) {
		bin := fakeEncoder(t, "exec sleep 5")
		r := encoder.NewExecRunner(bin, 50*time.Millisecond, nil)
		err := r.Run(context.Background(), inv)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncoderTimeout))
	})
}

func TestRunnerFunc(t *testing.T) {
	var got encoder.Invocation
	r := encoder.RunnerFunc(func(_ context.Context, inv encoder.Invocation) error {
		got = inv
		return nil
	})
	inv := encoder.Invocation{Flags: "-vc", Path: "a.png"}
	require.NoError(t, r.Run(context.Background(), inv))
	assert.Equal(t, inv, got)
}
