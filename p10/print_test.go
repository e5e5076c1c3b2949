package p10_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/p10"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_RendersOneLinePerElementAndPassesThrough(t *testing.T) {
	cfg := p10.DefaultPrintConfig()
	p := p10.NewPrint(cfg)

	toks := []p10.Token{
		p10.FilePreambleAndDICMPrefix{},
		p10.DataElementHeader{Tag: tag.PatientName, VR: vr.PersonName, Length: 10},
		p10.DataElementValueBytes{Tag: tag.PatientName, VR: vr.PersonName, Chunk: []byte("SMITH^JOHN"), Remaining: 0},
		p10.End{},
	}

	for _, tok := range toks {
		out, err := p.AddToken(tok)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, tok, out[0])
	}

	lines := p.Lines()
	require.Len(t, lines, 3) // preamble, the element, End
	assert.Contains(t, lines[1], "SMITH")
	assert.Contains(t, p.String(), "End")
}

func TestPrint_TruncatesLongValuePreview(t *testing.T) {
	cfg := p10.DefaultPrintConfig()
	cfg.MaxValuePreviewBytes = 4
	p := p10.NewPrint(cfg)

	big := []byte("this value is much longer than the preview limit")
	toks := []p10.Token{
		p10.DataElementHeader{Tag: tag.StudyDescription, VR: vr.ShortText, Length: uint32(len(big))},
		p10.DataElementValueBytes{Tag: tag.StudyDescription, VR: vr.ShortText, Chunk: big, Remaining: 0},
	}
	for _, tok := range toks {
		_, err := p.AddToken(tok)
		require.NoError(t, err)
	}

	lines := p.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "...")
}
