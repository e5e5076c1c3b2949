package commands

import (
	"fmt"

	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/config"
	"github.com/dcmxlabs/dcmx/p10"
)

// FramesCmd extracts pixel data frames from a file and reports their
// sizes, without decoding them into images.
type FramesCmd struct {
	Input         string `arg:"" type:"existingfile" help:"Input DICOM Part 10 file."`
	DefaultFrames int    `name:"default-frames" default:"1" help:"Frame count to assume when NumberOfFrames is absent."`
}

// Run reads Input and prints one line per extracted frame.
func (c *FramesCmd) Run(cfg *config.GlobalConfig) error {
	toks, err := readTokens(c.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Input, err)
	}

	extractor := p10.NewPixelDataFrames(c.DefaultFrames)
	for _, tok := range toks {
		if _, err := extractor.AddToken(tok); err != nil {
			return fmt.Errorf("extracting frames: %w", err)
		}
	}

	frames := extractor.Frames()
	if len(frames) == 0 {
		fmt.Println("no pixel data frames found")
		return nil
	}

	for _, f := range frames {
		total := 0
		for _, frag := range f.Fragments {
			total += len(frag)
		}
		fmt.Printf("frame %d: %d bytes (%d fragment(s))\n", f.Index, total, len(f.Fragments))
	}
	return nil
}
