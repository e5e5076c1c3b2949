package pixel_test

import (
	"strconv"
	"testing"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/pixel"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datasetWithGeometry(t *testing.T, rows, columns, bitsAllocated, samplesPerPixel int, withFrames *int) *dataset.DataSet {
	t.Helper()
	ds := dataset.NewDataSet()
	addInt := func(tg tag.Tag, v vr.VR, n int) {
		val, err := value.NewIntValue(v, []int64{int64(n)})
		require.NoError(t, err)
		elem, err := element.NewElement(tg, v, val)
		require.NoError(t, err)
		require.NoError(t, ds.Add(elem))
	}
	addInt(tag.Rows, vr.UnsignedShort, rows)
	addInt(tag.Columns, vr.UnsignedShort, columns)
	addInt(tag.BitsAllocated, vr.UnsignedShort, bitsAllocated)
	addInt(tag.SamplesPerPixel, vr.UnsignedShort, samplesPerPixel)
	if withFrames != nil {
		// NumberOfFrames is IS (Integer String), a string VR: getIntDefault
		// parses it back out rather than expecting an IntValue.
		val, err := value.NewStringValue(vr.IntegerString, []string{fmtInt(*withFrames)})
		require.NoError(t, err)
		elem, err := element.NewElement(tag.NumberOfFrames, vr.IntegerString, val)
		require.NoError(t, err)
		require.NoError(t, ds.Add(elem))
	}
	return ds
}

func fmtInt(n int) string {
	return strconv.Itoa(n)
}

func TestExtractGeometry_Defaults(t *testing.T) {
	ds := datasetWithGeometry(t, 64, 64, 16, 1, nil)

	g, err := pixel.ExtractGeometry(ds)
	require.NoError(t, err)
	assert.Equal(t, 64, g.Rows)
	assert.Equal(t, 64, g.Columns)
	assert.Equal(t, 16, g.BitsAllocated)
	assert.Equal(t, 1, g.SamplesPerPixel)
	assert.Equal(t, 1, g.NumberOfFrames, "NumberOfFrames defaults to 1 when absent")
}

func TestExtractGeometry_ExplicitFrameCount(t *testing.T) {
	frames := 12
	ds := datasetWithGeometry(t, 32, 32, 8, 3, &frames)

	g, err := pixel.ExtractGeometry(ds)
	require.NoError(t, err)
	assert.Equal(t, 12, g.NumberOfFrames)
}

func TestExtractGeometry_MissingAttribute(t *testing.T) {
	ds := dataset.NewDataSet()

	_, err := pixel.ExtractGeometry(ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, pixel.ErrMissingAttribute)
}
