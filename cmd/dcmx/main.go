// Command dcmx is a streaming DICOM Part 10 toolkit: dump, filter,
// anonymize, and frame extraction, built directly on the p10 token-stream
// engine.
package main

import (
	"fmt"
	"os"

	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/cli"
)

// version, commit, and date are set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, "dcmx:", err)
		os.Exit(1)
	}
}
