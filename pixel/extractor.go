package pixel

import (
	"fmt"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
)

// ExtractGeometry reads the pixel-geometry attributes SplitNative and
// AssembleFrames need from a data set, defaulting NumberOfFrames to 1 when
// absent, as spec.md's native frame-splitting rules require.
// PlanarConfiguration is not read.
func ExtractGeometry(ds *dataset.DataSet) (Geometry, error) {
	rows, err := getInt(ds, tag.Rows, "Rows")
	if err != nil {
		return Geometry{}, err
	}
	columns, err := getInt(ds, tag.Columns, "Columns")
	if err != nil {
		return Geometry{}, err
	}
	bitsAllocated, err := getInt(ds, tag.BitsAllocated, "BitsAllocated")
	if err != nil {
		return Geometry{}, err
	}
	samplesPerPixel, err := getInt(ds, tag.SamplesPerPixel, "SamplesPerPixel")
	if err != nil {
		return Geometry{}, err
	}
	numberOfFrames := getIntDefault(ds, tag.NumberOfFrames, 1)

	return Geometry{
		Rows:            rows,
		Columns:         columns,
		BitsAllocated:   bitsAllocated,
		SamplesPerPixel: samplesPerPixel,
		NumberOfFrames:  numberOfFrames,
	}, nil
}

func getInt(ds *dataset.DataSet, t tag.Tag, name string) (int, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return 0, &MissingAttributeError{Attribute: name}
	}
	switch v := elem.Value().(type) {
	case *value.IntValue:
		ints := v.Ints()
		if len(ints) == 0 {
			return 0, &MissingAttributeError{Attribute: name}
		}
		return int(ints[0]), nil
	default:
		return 0, &InvalidPixelDataError{Details: name + " has an unexpected value type"}
	}
}

func getIntDefault(ds *dataset.DataSet, t tag.Tag, def int) int {
	elem, err := ds.Get(t)
	if err != nil {
		return def
	}
	switch v := elem.Value().(type) {
	case *value.IntValue:
		ints := v.Ints()
		if len(ints) == 0 {
			return def
		}
		return int(ints[0])
	case *value.StringValue:
		strs := v.Strings()
		if len(strs) == 0 {
			return def
		}
		var n int
		if _, err := fmt.Sscanf(strs[0], "%d", &n); err != nil {
			return def
		}
		return n
	default:
		return def
	}
}
