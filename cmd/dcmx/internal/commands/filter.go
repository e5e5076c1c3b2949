package commands

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/config"
	"github.com/dcmxlabs/dcmx/p10"
)

// FilterCmd keeps only elements whose path matches a glob, writing the
// result to a new Part 10 file.
type FilterCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input DICOM Part 10 file."`
	Output string `arg:"" type:"path" help:"Output path for the filtered file."`
	Glob   string `name:"glob" required:"" help:"Path glob to keep, e.g. '(0010,*)' or '(0008,0020)/**'."`
}

// Run reads Input, drops every element whose path does not match Glob, and
// writes the survivors to Output.
func (c *FilterCmd) Run(cfg *config.GlobalConfig) error {
	predicate, err := p10.FilterByPathGlob(c.Glob)
	if err != nil {
		return fmt.Errorf("compiling glob %q: %w", c.Glob, err)
	}

	toks, err := readTokens(c.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Input, err)
	}

	filter := p10.NewFilter(predicate, true)
	var out []p10.Token
	for _, tok := range toks {
		forwarded, err := filter.AddToken(tok)
		if err != nil {
			return fmt.Errorf("filtering: %w", err)
		}
		out = append(out, forwarded...)
	}

	if err := writeTokens(c.Output, out); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	log.Info("filter complete", "input", c.Input, "output", c.Output, "dropped", len(filter.Dropped()))
	return nil
}
