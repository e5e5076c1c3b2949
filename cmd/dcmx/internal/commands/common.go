// Package commands implements dcmx's subcommands against the p10/dataset
// core: dump, filter, anonymize, and frames.
package commands

import (
	"os"

	"github.com/dcmxlabs/dcmx/p10"
)

// readTokens reads the entire file at path and drains it through a Reader
// in one shot, since a CLI command always has the whole file in memory
// already.
func readTokens(path string) ([]p10.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := p10.NewReader(p10.DefaultReaderConfig())
	if err := r.WriteBytes(data, true); err != nil {
		return nil, err
	}
	return r.ReadTokens()
}

// writeTokens renders toks as Part 10 bytes and writes them to path.
func writeTokens(path string, toks []p10.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return p10.WriteDataSetToBytes(toks, p10.DefaultWriterConfig(), func(b []byte) error {
		_, err := f.Write(b)
		return err
	})
}
