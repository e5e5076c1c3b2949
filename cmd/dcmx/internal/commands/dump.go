package commands

import (
	"fmt"
	"sort"

	"github.com/alexeyco/simpletable"

	"github.com/dcmxlabs/dcmx/cmd/dcmx/internal/config"
	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dicomjson"
	"github.com/dcmxlabs/dcmx/p10"
)

// DumpCmd prints a file's data set, either as a tag/VR/name/value table or
// as DICOM JSON (PS3.18 Annex F).
type DumpCmd struct {
	Path string `arg:"" type:"existingfile" help:"Path to a DICOM Part 10 file."`
}

// Run executes the dump command against the global format setting.
func (c *DumpCmd) Run(cfg *config.GlobalConfig) error {
	toks, err := readTokens(c.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Path, err)
	}

	ds, err := p10.BuildDataSet(toks)
	if err != nil {
		return fmt.Errorf("building data set from %s: %w", c.Path, err)
	}

	if cfg.Format == "json" {
		out, err := dicomjson.Encode(ds, dicomjson.EncodeOptions{})
		if err != nil {
			return fmt.Errorf("encoding DICOM JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(renderTable(ds))
	return nil
}

// renderTable renders ds as a Tag/VR/Name/Value table, ascending tag
// order, the way simpletable.StyleDefault would for a kong/charmbracelet
// style CLI listing.
func renderTable(ds *dataset.DataSet) string {
	elems := ds.Elements()
	sort.Slice(elems, func(i, j int) bool { return elems[i].Tag().Less(elems[j].Tag()) })

	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "Tag"},
			{Align: simpletable.AlignCenter, Text: "VR"},
			{Align: simpletable.AlignLeft, Text: "Name"},
			{Align: simpletable.AlignLeft, Text: "Value"},
		},
	}

	table.Body = &simpletable.Body{Cells: make([][]*simpletable.Cell, 0, len(elems))}
	for _, elem := range elems {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: elem.Tag().String()},
			{Text: elem.VR().String()},
			{Text: elem.Name()},
			{Text: elem.Value().String()},
		})
	}

	table.SetStyle(simpletable.StyleDefault)
	return table.String()
}
