package dataset_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustElement(t *testing.T, tg tag.Tag, v vr.VR, val value.Value) *element.Element {
	t.Helper()
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	return elem
}

func TestDataSet_ToItemFromItem(t *testing.T) {
	ds := dataset.NewDataSet()
	nameVal, _ := value.NewStringValue(vr.PersonName, []string{"Doe^John"})
	require.NoError(t, ds.Add(mustElement(t, tag.PatientName, vr.PersonName, nameVal)))

	item := ds.ToItem()
	require.Len(t, item, 1)
	assert.Equal(t, tag.PatientName, item[0].Tag)

	rebuilt, err := dataset.FromItem(item)
	require.NoError(t, err)
	assert.Equal(t, 1, rebuilt.Len())
	elem, err := rebuilt.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", elem.Value().String())
}

func TestDataSet_WalkRecursive(t *testing.T) {
	innerNameVal, _ := value.NewStringValue(vr.ShortString, []string{"111030"})
	innerItem := value.Item{
		{Tag: tag.New(0x0008, 0x0100), VR: vr.ShortString, Value: innerNameVal},
	}
	seqTag := tag.New(0x0040, 0xA043)
	seqVal := value.NewSequenceValue([]value.Item{innerItem})

	ds := dataset.NewDataSet()
	require.NoError(t, ds.Add(mustElement(t, seqTag, vr.SequenceOfItems, seqVal)))

	var visited []dcmpath.Path
	err := ds.WalkRecursive(func(path dcmpath.Path, elem *element.Element) error {
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, visited, 2, "should visit the sequence element and its nested element")

	last, ok := visited[1].Last()
	require.True(t, ok)
	assert.Equal(t, tag.New(0x0008, 0x0100), last.Tag)
	assert.True(t, visited[1].HasPrefix(visited[0]))
}

func TestDataSet_Filter(t *testing.T) {
	ds := dataset.NewDataSet()
	nameVal, _ := value.NewStringValue(vr.PersonName, []string{"Doe^John"})
	idVal, _ := value.NewStringValue(vr.LongString, []string{"12345"})
	require.NoError(t, ds.Add(mustElement(t, tag.PatientName, vr.PersonName, nameVal)))
	require.NoError(t, ds.Add(mustElement(t, tag.PatientID, vr.LongString, idVal)))

	filtered := ds.Filter(func(elem *element.Element) bool {
		return elem.Tag().Equals(tag.PatientID)
	})

	assert.Equal(t, 1, filtered.Len())
	assert.True(t, filtered.Contains(tag.PatientID))
	assert.False(t, filtered.Contains(tag.PatientName))
}
