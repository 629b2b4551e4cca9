package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ddsbatch/cmd/ddsbatch"
	"github.com/arthur-debert/ddsbatch/pkg/style"
)

func main() {
	rootCmd := ddsbatch.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
