package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ddsbatch/cmd/ddsbatch"
	"github.com/arthur-debert/ddsbatch/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "DDSBATCH",
		Section: "1",
		Source:  "ddsbatch " + version.Version,
		Manual:  "ddsbatch manual",
	}

	if err := doc.GenMan(ddsbatch.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
