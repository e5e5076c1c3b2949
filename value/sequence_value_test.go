package value_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeNameEntry(name string) value.Entry {
	sv, _ := value.NewStringValue(vr.PersonName, []string{name})
	return value.Entry{Tag: tag.PatientName, VR: vr.PersonName, Value: sv}
}

func TestSequenceValue_NewSequenceValue(t *testing.T) {
	item := value.Item{makeNameEntry("Doe^John")}
	seq := value.NewSequenceValue([]value.Item{item})

	require.Equal(t, vr.SequenceOfItems, seq.VR())
	require.Len(t, seq.Items(), 1)
	entry, ok := seq.Items()[0].Get(tag.PatientName)
	require.True(t, ok)
	assert.Equal(t, "Doe^John", entry.Value.String())
}

func TestSequenceValue_NilItemsIsEmpty(t *testing.T) {
	seq := value.NewSequenceValue(nil)
	assert.Empty(t, seq.Items())
	assert.Equal(t, "(sequence, 0 items)", seq.String())
}

func TestSequenceValue_Equals(t *testing.T) {
	itemA := value.Item{makeNameEntry("Doe^John")}
	itemB := value.Item{makeNameEntry("Doe^John")}
	itemC := value.Item{makeNameEntry("Smith^Jane")}

	a := value.NewSequenceValue([]value.Item{itemA})
	b := value.NewSequenceValue([]value.Item{itemB})
	c := value.NewSequenceValue([]value.Item{itemC})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(value.NewSequenceValue(nil)))
}

func TestSequenceValue_BytesUnsupported(t *testing.T) {
	seq := value.NewSequenceValue([]value.Item{{makeNameEntry("Doe^John")}})
	assert.Nil(t, seq.Bytes())
}

func TestSequenceValue_EqualsRejectsOtherValueTypes(t *testing.T) {
	seq := value.NewSequenceValue(nil)
	bv, _ := value.NewBytesValue(vr.OtherByte, []byte{0x01})
	assert.False(t, seq.Equals(bv))
}

func TestItem_Get_MissingTag(t *testing.T) {
	item := value.Item{makeNameEntry("Doe^John")}
	_, ok := item.Get(tag.StudyInstanceUID)
	assert.False(t, ok)
}

func TestEncapsulatedPixelDataValue_NewEncapsulatedPixelDataValue(t *testing.T) {
	fragments := [][]byte{{}, {0xDE, 0xAD, 0xBE, 0xEF}}
	px, err := value.NewEncapsulatedPixelDataValue(vr.OtherByte, fragments)
	require.NoError(t, err)

	assert.Equal(t, vr.OtherByte, px.VR())
	require.Len(t, px.Fragments(), 2)
	assert.Empty(t, px.Fragments()[0], "first fragment is the Basic Offset Table")
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, px.Fragments()[1])
}

func TestEncapsulatedPixelDataValue_InvalidVR(t *testing.T) {
	_, err := value.NewEncapsulatedPixelDataValue(vr.PersonName, nil)
	assert.Error(t, err)
}

func TestEncapsulatedPixelDataValue_NilFragmentsIsEmpty(t *testing.T) {
	px, err := value.NewEncapsulatedPixelDataValue(vr.OtherWord, nil)
	require.NoError(t, err)
	assert.Empty(t, px.Fragments())
}

func TestEncapsulatedPixelDataValue_Equals(t *testing.T) {
	a, _ := value.NewEncapsulatedPixelDataValue(vr.OtherByte, [][]byte{{0x01, 0x02}})
	b, _ := value.NewEncapsulatedPixelDataValue(vr.OtherByte, [][]byte{{0x01, 0x02}})
	c, _ := value.NewEncapsulatedPixelDataValue(vr.OtherByte, [][]byte{{0x01, 0x03}})
	d, _ := value.NewEncapsulatedPixelDataValue(vr.OtherWord, [][]byte{{0x01, 0x02}})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}

func TestEncapsulatedPixelDataValue_BytesUnsupported(t *testing.T) {
	px, _ := value.NewEncapsulatedPixelDataValue(vr.OtherByte, [][]byte{{0x01}})
	assert.Nil(t, px.Bytes())
}
