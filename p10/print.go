package p10

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// PrintConfig controls Print's rendering.
type PrintConfig struct {
	// Width bounds each rendered line; value previews are wrapped to fit.
	// Zero disables wrapping.
	Width int
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// MaxValuePreviewBytes caps how many raw value bytes are buffered for
	// a preview before it is truncated with an ellipsis.
	MaxValuePreviewBytes int

	TagStyle   lipgloss.Style
	VRStyle    lipgloss.Style
	ValueStyle lipgloss.Style
}

// DefaultPrintConfig matches the teacher's banner palette (a muted violet
// accent for structural text, plain for values).
func DefaultPrintConfig() PrintConfig {
	return PrintConfig{
		Width:                100,
		IndentWidth:          2,
		MaxValuePreviewBytes: 64,
		TagStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("#5436bd")).Bold(true),
		VRStyle:              lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ValueStyle:           lipgloss.NewStyle(),
	}
}

// Print is a token transform that renders a styled, width-bounded
// human-readable line per element/sequence/item as it passes through,
// without altering the stream: AddToken always returns tok unchanged.
// Call Lines after (or during) streaming to read what has been rendered.
type Print struct {
	cfg   PrintConfig
	lines []string

	pendingTag   tag.Tag
	pendingVR    vr.VR
	pendingDepth int
	pendingBuf   []byte
	pendingTrunc bool
}

// NewPrint creates a Print transform with the given configuration.
func NewPrint(cfg PrintConfig) *Print {
	return &Print{cfg: cfg}
}

// Lines returns every line rendered so far, in stream order.
func (p *Print) Lines() []string {
	return p.lines
}

// String joins Lines with newlines.
func (p *Print) String() string {
	return strings.Join(p.lines, "\n")
}

// AddToken renders tok into a line (as a side effect) and returns it
// unchanged, so Print can sit anywhere in a transform pipeline.
func (p *Print) AddToken(tok Token) ([]Token, error) {
	switch t := tok.(type) {
	case FilePreambleAndDICMPrefix:
		p.emit(0, "DICM preamble")

	case FileMetaInformation:
		p.emit(0, "File Meta Information (transfer syntax "+t.TransferSyntaxUID+")")

	case DataElementHeader:
		p.pendingTag = t.Tag
		p.pendingVR = t.VR
		p.pendingDepth = t.Path.Len()
		p.pendingBuf = p.pendingBuf[:0]
		p.pendingTrunc = false
		if t.Length == 0 {
			p.emitElement(t.Path.Len(), t.Tag, t.VR, nil, false)
		}

	case DataElementValueBytes:
		if p.pendingTag.Equals(t.Tag) {
			p.bufferPreview(t.Chunk)
			if t.Remaining == 0 {
				p.emitElement(p.pendingDepth, t.Tag, t.VR, p.pendingBuf, p.pendingTrunc)
			}
		}

	case SequenceStart:
		p.emit(t.Path.Len(), p.cfg.TagStyle.Render(t.Tag.String())+" "+p.cfg.VRStyle.Render(t.VR.String())+" {")

	case SequenceDelimiter:
		p.emit(0, "}")

	case SequenceItemStart:
		p.emit(0, "item ["+strconv.Itoa(t.Index)+"] {")

	case SequenceItemDelimiter:
		p.emit(0, "}")

	case PixelDataItem:
		p.emit(0, "fragment ["+strconv.Itoa(t.Index)+"], "+strconv.Itoa(int(t.Length))+" bytes")

	case End:
		p.emit(0, "End")
	}
	return []Token{tok}, nil
}

func (p *Print) bufferPreview(chunk []byte) {
	limit := p.cfg.MaxValuePreviewBytes
	if limit <= 0 {
		limit = 64
	}
	if len(p.pendingBuf) >= limit {
		if len(chunk) > 0 {
			p.pendingTrunc = true
		}
		return
	}
	remaining := limit - len(p.pendingBuf)
	if len(chunk) > remaining {
		p.pendingBuf = append(p.pendingBuf, chunk[:remaining]...)
		p.pendingTrunc = true
		return
	}
	p.pendingBuf = append(p.pendingBuf, chunk...)
}

func (p *Print) emitElement(depth int, t tag.Tag, v vr.VR, raw []byte, truncated bool) {
	preview := previewString(v, raw)
	if truncated {
		preview += "..."
	}
	line := p.cfg.TagStyle.Render(t.String()) + " " + p.cfg.VRStyle.Render(v.String()) + " " + p.cfg.ValueStyle.Render(preview)
	p.emit(depth, line)
}

func previewString(v vr.VR, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	switch {
	case v.IsStringType():
		s, err := decodeStringValue(v, raw)
		if err != nil {
			return "<undecodable>"
		}
		return strings.Join(s.Strings(), "\\")
	default:
		return "<" + strconv.Itoa(len(raw)) + " bytes>"
	}
}

func (p *Print) emit(depth int, text string) {
	indent := strings.Repeat(" ", depth*p.cfg.IndentWidth)
	line := indent + text
	if p.cfg.Width > 0 {
		line = lipgloss.NewStyle().Width(p.cfg.Width).Render(line)
	}
	p.lines = append(p.lines, line)
}
