package ddsbatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/ddsbatch/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPauseBeforeExit(t *testing.T) {
	prev := pauseOnExit
	t.Cleanup(func() { pauseOnExit = prev })

	cfg := &config.Config{Output: config.OutputConfig{Prompt: true}}

	t.Run("disabled_off_windows", func(t *testing.T) {
		pauseOnExit = false
		var out bytes.Buffer
		pauseBeforeExit(cfg, strings.NewReader("\n"), &out)
		assert.Empty(t, out.String())
	})

	t.Run("skipped_when_stdin_is_not_a_terminal", func(t *testing.T) {
		pauseOnExit = true
		var out bytes.Buffer
		pauseBeforeExit(cfg, strings.NewReader("\n"), &out)
		assert.Empty(t, out.String())
	})

	t.Run("skipped_when_prompt_disabled", func(t *testing.T) {
		pauseOnExit = true
		var out bytes.Buffer
		pauseBeforeExit(&config.Config{}, strings.NewReader("\n"), &out)
		assert.Empty(t, out.String())
	})
}
