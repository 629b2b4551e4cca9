package ddsbatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/arthur-debert/ddsbatch/pkg/config"
	"github.com/arthur-debert/ddsbatch/pkg/ui"
)

// pauseOnExit is true where the tool is usually started by double-clicking,
// which closes the console window as soon as the process ends
var pauseOnExit = runtime.GOOS == "windows"

// pauseBeforeExit waits for Enter when the console would otherwise vanish
func pauseBeforeExit(cfg *config.Config, in io.Reader, out io.Writer) {
	if !pauseOnExit || !cfg.Output.Prompt {
		return
	}
	if f, ok := in.(*os.File); !ok || !ui.IsTerminal(f) {
		return
	}
	_, _ = fmt.Fprint(out, MsgPressEnter)
	_, _ = bufio.NewReader(in).ReadString('\n')
}
