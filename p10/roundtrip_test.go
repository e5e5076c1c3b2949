package p10_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/p10"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/uid"
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

func mustStringValue(t *testing.T, v vr.VR, s string) value.Value {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	return val
}

// fileMetaDataSet builds a minimal, valid File Meta Information data set:
// the Writer does not synthesize Transfer Syntax UID itself, so every
// round-trip test must supply (0002,0010) directly.
func fileMetaDataSet(t *testing.T, transferSyntaxUID string) *dataset.DataSet {
	t.Helper()
	ds := dataset.NewDataSet()
	elems := []*element.Element{
		mustElement(t, tag.New(0x0002, 0x0002), vr.UniqueIdentifier, mustStringValue(t, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.7")),
		mustElement(t, tag.New(0x0002, 0x0003), vr.UniqueIdentifier, mustStringValue(t, vr.UniqueIdentifier, "1.2.3.4.5.6")),
		mustElement(t, tag.New(0x0002, 0x0010), vr.UniqueIdentifier, mustStringValue(t, vr.UniqueIdentifier, transferSyntaxUID)),
	}
	for _, e := range elems {
		require.NoError(t, ds.Add(e))
	}
	return ds
}

func dataSetTokens(elems []*element.Element) []p10.Token {
	toks := make([]p10.Token, 0, len(elems)*2+1)
	for _, elem := range elems {
		b := elem.Value().Bytes()
		toks = append(toks,
			p10.DataElementHeader{Tag: elem.Tag(), VR: elem.VR(), Length: uint32(len(b))},
			p10.DataElementValueBytes{Tag: elem.Tag(), VR: elem.VR(), Chunk: b, Remaining: 0},
		)
	}
	return toks
}

func TestWriterReaderRoundTrip_ExplicitVRLittleEndian(t *testing.T) {
	fileMeta := fileMetaDataSet(t, uid.ExplicitVRLittleEndian.String())
	patientName := mustElement(t, tag.PatientName, vr.PersonName, mustStringValue(t, vr.PersonName, "SMITH^JOHN"))
	studyDesc := mustElement(t, tag.StudyDescription, vr.ShortText, mustStringValue(t, vr.ShortText, "chest x-ray"))

	var toks []p10.Token
	toks = append(toks, p10.FilePreambleAndDICMPrefix{})
	toks = append(toks, p10.FileMetaInformation{DataSet: fileMeta, TransferSyntaxUID: uid.ExplicitVRLittleEndian.String()})
	toks = append(toks, dataSetTokens([]*element.Element{patientName, studyDesc})...)
	toks = append(toks, p10.End{})

	var written []byte
	err := p10.WriteDataSetToBytes(toks, p10.DefaultWriterConfig(), func(b []byte) error {
		written = append(written, b...)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, written)

	r := p10.NewReader(p10.DefaultReaderConfig())
	require.NoError(t, r.WriteBytes(written, true))
	readTokens, err := r.ReadTokens()
	require.NoError(t, err)

	ds, err := p10.BuildDataSet(readTokens)
	require.NoError(t, err)

	gotName, err := ds.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, []string{"SMITH^JOHN"}, gotName.Value().(*value.StringValue).Strings())

	gotDesc, err := ds.Get(tag.StudyDescription)
	require.NoError(t, err)
	assert.Equal(t, []string{"chest x-ray"}, gotDesc.Value().(*value.StringValue).Strings())

	tsElem, err := ds.Get(tag.New(0x0002, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, uid.ExplicitVRLittleEndian.String(), tsElem.Value().String())
}

func TestWriterReaderRoundTrip_ImplicitVRLittleEndian(t *testing.T) {
	fileMeta := fileMetaDataSet(t, uid.ImplicitVRLittleEndian.String())
	rows := mustElement(t, tag.Rows, vr.UnsignedShort, func() value.Value {
		val, err := value.NewIntValue(vr.UnsignedShort, []int64{512})
		require.NoError(t, err)
		return val
	}())

	var toks []p10.Token
	toks = append(toks, p10.FilePreambleAndDICMPrefix{})
	toks = append(toks, p10.FileMetaInformation{DataSet: fileMeta, TransferSyntaxUID: uid.ImplicitVRLittleEndian.String()})
	toks = append(toks, dataSetTokens([]*element.Element{rows})...)
	toks = append(toks, p10.End{})

	var written []byte
	err := p10.WriteDataSetToBytes(toks, p10.DefaultWriterConfig(), func(b []byte) error {
		written = append(written, b...)
		return nil
	})
	require.NoError(t, err)

	r := p10.NewReader(p10.DefaultReaderConfig())
	require.NoError(t, r.WriteBytes(written, true))
	readTokens, err := r.ReadTokens()
	require.NoError(t, err)

	ds, err := p10.BuildDataSet(readTokens)
	require.NoError(t, err)
	got, err := ds.Get(tag.Rows)
	require.NoError(t, err)
	assert.Equal(t, []int64{512}, got.Value().(*value.IntValue).Ints())
}

func TestReader_MissingDICMPrefix(t *testing.T) {
	r := p10.NewReader(p10.DefaultReaderConfig())
	bad := make([]byte, 132)
	copy(bad[128:132], "XXXX")
	require.NoError(t, r.WriteBytes(bad, true))
	_, err := r.ReadTokens()
	require.Error(t, err)
}

func TestWriter_MissingTransferSyntaxUID(t *testing.T) {
	fileMeta := dataset.NewDataSet()
	require.NoError(t, fileMeta.Add(mustElement(t, tag.New(0x0002, 0x0002), vr.UniqueIdentifier, mustStringValue(t, vr.UniqueIdentifier, "1.2.3"))))

	var toks []p10.Token
	toks = append(toks, p10.FilePreambleAndDICMPrefix{})
	toks = append(toks, p10.FileMetaInformation{DataSet: fileMeta, TransferSyntaxUID: ""})
	toks = append(toks, p10.End{})

	var written []byte
	err := p10.WriteDataSetToBytes(toks, p10.DefaultWriterConfig(), func(b []byte) error {
		written = append(written, b...)
		return nil
	})
	require.Error(t, err, "writeFileMeta must fail to resolve an empty transfer syntax UID")
}

func TestReader_OutOfOrderRootElementsRejected(t *testing.T) {
	fileMeta := fileMetaDataSet(t, uid.ExplicitVRLittleEndian.String())
	// PatientName is (0010,0010), StudyDescription is (0008,1030): writing
	// PatientName first puts the stream in descending tag order.
	higherTag := mustElement(t, tag.PatientName, vr.PersonName, mustStringValue(t, vr.PersonName, "a"))
	lowerTag := mustElement(t, tag.StudyDescription, vr.ShortText, mustStringValue(t, vr.ShortText, "b"))

	var toks []p10.Token
	toks = append(toks, p10.FilePreambleAndDICMPrefix{})
	toks = append(toks, p10.FileMetaInformation{DataSet: fileMeta, TransferSyntaxUID: uid.ExplicitVRLittleEndian.String()})
	toks = append(toks, dataSetTokens([]*element.Element{higherTag, lowerTag})...) // out of ascending tag order
	toks = append(toks, p10.End{})

	var written []byte
	err := p10.WriteDataSetToBytes(toks, p10.DefaultWriterConfig(), func(b []byte) error {
		written = append(written, b...)
		return nil
	})
	require.NoError(t, err)

	r := p10.NewReader(p10.DefaultReaderConfig())
	require.NoError(t, r.WriteBytes(written, true))
	_, err = r.ReadTokens()
	require.Error(t, err, "RequireOrderedDataElements defaults to true")
}
