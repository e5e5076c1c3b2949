package anonymize_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/anonymize"
	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/p10"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustElem(t *testing.T, tg tag.Tag, v vr.VR, val value.Value) *element.Element {
	t.Helper()
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	return elem
}

func mustStr(t *testing.T, v vr.VR, s string) value.Value {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	return val
}

// tokensForElements renders a flat root-level token sequence a Reader would
// produce for an implicit-length data set with no sequences.
func tokensForElements(elems []*element.Element) []p10.Token {
	toks := make([]p10.Token, 0, len(elems)*2+1)
	for _, elem := range elems {
		b := elem.Value().Bytes()
		toks = append(toks,
			p10.DataElementHeader{Tag: elem.Tag(), VR: elem.VR(), Length: uint32(len(b)), Path: dcmpath.Path{}.Push(dcmpath.DataElementEntry(elem.Tag()))},
			p10.DataElementValueBytes{Tag: elem.Tag(), VR: elem.VR(), Chunk: b, Remaining: 0},
		)
	}
	toks = append(toks, p10.End{})
	return toks
}

func runTransform(t *testing.T, tr *anonymize.Transform, toks []p10.Token) (*dataset.DataSet, error) {
	t.Helper()
	builder := p10.NewBuilder()
	for _, tok := range toks {
		out, err := tr.AddToken(tok)
		if err != nil {
			return nil, err
		}
		for _, o := range out {
			if err := builder.AddToken(o); err != nil {
				return nil, err
			}
		}
	}
	return builder.DataSet()
}

func TestBasicProfile_DummyAndRemove(t *testing.T) {
	patientName := mustElem(t, tag.PatientName, vr.PersonName, mustStr(t, vr.PersonName, "SMITH^JOHN"))
	institution := mustElem(t, tag.InstitutionName, vr.LongString, mustStr(t, vr.LongString, "General Hospital"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{patientName, institution})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileBasic)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	assert.False(t, out.Contains(tag.InstitutionName), "InstitutionName is ActionRemove by default")
	require.True(t, out.Contains(tag.PatientName))
	elem, err := out.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, []string{"ANONYMOUS"}, elem.Value().(*value.StringValue).Strings())
}

func TestBasicProfile_StudyInstanceUIDReplaced(t *testing.T) {
	original := "1.2.840.10008.1.1.1"
	elem := mustElem(t, tag.StudyInstanceUID, vr.UniqueIdentifier, mustStr(t, vr.UniqueIdentifier, original))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileBasic)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	got, err := out.Get(tag.StudyInstanceUID)
	require.NoError(t, err)
	newUID := got.Value().(*value.StringValue).Strings()[0]
	assert.NotEqual(t, original, newUID)
}

func TestRetainUIDs_KeepsOriginal(t *testing.T) {
	original := "1.2.840.10008.1.1.1"
	elem := mustElem(t, tag.StudyInstanceUID, vr.UniqueIdentifier, mustStr(t, vr.UniqueIdentifier, original))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileRetainUIDs)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	got, err := out.Get(tag.StudyInstanceUID)
	require.NoError(t, err)
	assert.Equal(t, []string{original}, got.Value().(*value.StringValue).Strings())
}

func TestRetainDeviceIdentity_KeepsInstitutionName(t *testing.T) {
	elem := mustElem(t, tag.InstitutionName, vr.LongString, mustStr(t, vr.LongString, "General Hospital"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileRetainDeviceIdentity)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	got, err := out.Get(tag.InstitutionName)
	require.NoError(t, err)
	assert.Equal(t, []string{"General Hospital"}, got.Value().(*value.StringValue).Strings())
}

func TestCleanProfile_DescriptionsUseCleanNotRemove(t *testing.T) {
	elem := mustElem(t, tag.StudyDescription, vr.LongString, mustStr(t, vr.LongString, "CT chest w/contrast"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileClean)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	require.True(t, out.Contains(tag.StudyDescription), "Clean profile preserves descriptions instead of removing them")
	got, err := out.Get(tag.StudyDescription)
	require.NoError(t, err)
	assert.Equal(t, []string{"CT chest w/contrast"}, got.Value().(*value.StringValue).Strings())
}

func TestPrivateTagsRemovedByDefault(t *testing.T) {
	elem := mustElem(t, tag.New(0x0009, 0x0010), vr.LongString, mustStr(t, vr.LongString, "vendor-private"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileBasic)
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	assert.False(t, out.Contains(tag.New(0x0009, 0x0010)))
}

func TestCustomActions_OverridesProfile(t *testing.T) {
	elem := mustElem(t, tag.PatientName, vr.PersonName, mustStr(t, vr.PersonName, "SMITH^JOHN"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileBasic)
	cfg.CustomActions = map[tag.Tag]anonymize.Action{tag.PatientName: anonymize.ActionKeep}
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	got, err := out.Get(tag.PatientName)
	require.NoError(t, err)
	assert.Equal(t, []string{"SMITH^JOHN"}, got.Value().(*value.StringValue).Strings())
}

func TestCallbackAction_InvokesRegisteredCallback(t *testing.T) {
	elem := mustElem(t, tag.StudyDate, vr.Date, mustStr(t, vr.Date, "20200101"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{elem})
	require.NoError(t, err)

	cfg := anonymize.NewConfig(anonymize.ProfileCustom)
	called := false
	cfg.CustomActions = map[tag.Tag]anonymize.Action{tag.StudyDate: anonymize.ActionCallback}
	cfg.Callbacks = map[tag.Tag]func(*element.Element) (*element.Element, error){
		tag.StudyDate: func(e *element.Element) (*element.Element, error) {
			called = true
			val, err := value.NewStringValue(vr.Date, []string{"19700101"})
			if err != nil {
				return nil, err
			}
			return element.NewElement(e.Tag(), e.VR(), val)
		},
	}
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)
	assert.True(t, called)

	got, err := out.Get(tag.StudyDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"19700101"}, got.Value().(*value.StringValue).Strings())
}

func TestCustomProfile_OnlyAppliesNamedActions(t *testing.T) {
	kept := mustElem(t, tag.PatientName, vr.PersonName, mustStr(t, vr.PersonName, "SMITH^JOHN"))
	ds, err := dataset.NewDataSetWithElements([]*element.Element{kept})
	require.NoError(t, err)

	cfg := anonymize.Config{Profile: anonymize.ProfileCustom}
	tr, err := anonymize.NewTransform(ds, cfg)
	require.NoError(t, err)

	out, err := runTransform(t, tr, tokensForElements(ds.Elements()))
	require.NoError(t, err)

	got, err := out.Get(tag.PatientName)
	require.NoError(t, err, "ProfileCustom with no CustomActions entry keeps the tag unchanged")
	assert.Equal(t, []string{"SMITH^JOHN"}, got.Value().(*value.StringValue).Strings())
}
