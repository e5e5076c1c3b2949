package p10

import (
	"encoding/binary"
	"fmt"

	"github.com/dcmxlabs/dcmx/pixel"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// extendedOffsetTable and extendedOffsetTableLengths are (7FE0,0001) and
// (7FE0,0002): frame byte offsets/lengths into the concatenated encapsulated
// fragment stream, authoritative over the Basic Offset Table when present.
var (
	extendedOffsetTable        = tag.Tag{Group: 0x7FE0, Element: 0x0001}
	extendedOffsetTableLengths = tag.Tag{Group: 0x7FE0, Element: 0x0002}
)

// PixelDataFrame is one frame of pixel data extracted from a token stream.
// Fragments holds the frame's raw bytes; native frames always carry exactly
// one fragment, encapsulated frames one assembled run of fragment bytes
// (sub-fragment boundaries do not survive offset-table-driven reassembly,
// since codecs consume a frame's bytes concatenated regardless).
type PixelDataFrame struct {
	Index     int
	Fragments [][]byte
}

// PixelDataFrames is a token transform that watches a root-level data
// element stream for the geometry attributes (Rows, Columns, BitsAllocated,
// SamplesPerPixel, NumberOfFrames, and, for encapsulated data, the Extended
// Offset Table) and the PixelData element itself, passing every token
// through unchanged while buffering what it needs to split PixelData into
// frames. Frames become available, via Frames, once PixelData's closing
// token (SequenceDelimiter for encapsulated data, or the final
// DataElementValueBytes for native data) has been folded in.
//
// Buffering the whole PixelData element is unavoidable: frame boundaries
// (the Basic/Extended Offset Table, or Rows*Columns*BitsAllocated
// arithmetic) cannot be resolved from a prefix of the element's bytes
// alone.
type PixelDataFrames struct {
	geometry pixel.Geometry

	pendingGeometryTag tag.Tag
	pendingGeometryBuf []byte
	haveGeometryTag    bool

	inPixelData  bool
	encapsulated bool

	nativeBuf []byte

	fragments     []pixel.Fragment
	fragmentBuf   []byte
	fragmentIndex int
	bot           pixel.BasicOffsetTable

	eotOffsets []byte
	eotLengths []byte

	frames []PixelDataFrame
}

var geometryTags = map[tag.Tag]bool{
	tag.Rows:             true,
	tag.Columns:          true,
	tag.BitsAllocated:    true,
	tag.SamplesPerPixel:  true,
	tag.NumberOfFrames:   true,
	extendedOffsetTable:  true,
	extendedOffsetTableLengths: true,
}

// NewPixelDataFrames creates a PixelDataFrames transform. defaultNumberOfFrames
// is used if the stream never carries a NumberOfFrames element (single-frame
// data sets routinely omit it).
func NewPixelDataFrames(defaultNumberOfFrames int) *PixelDataFrames {
	if defaultNumberOfFrames <= 0 {
		defaultNumberOfFrames = 1
	}
	return &PixelDataFrames{geometry: pixel.Geometry{NumberOfFrames: defaultNumberOfFrames}}
}

// Frames returns every frame assembled so far. Valid to call at any point;
// grows once PixelData has been fully folded in.
func (p *PixelDataFrames) Frames() []PixelDataFrame {
	return p.frames
}

// AddToken folds one token through the transform, returning it unchanged
// for the caller to forward downstream; the transform never drops or
// rewrites tokens, it only observes them.
func (p *PixelDataFrames) AddToken(tok Token) ([]Token, error) {
	switch t := tok.(type) {
	case DataElementHeader:
		p.pendingGeometryTag = tag.Tag{}
		p.haveGeometryTag = false
		if geometryTags[t.Tag] {
			p.pendingGeometryTag = t.Tag
			p.pendingGeometryBuf = p.pendingGeometryBuf[:0]
			p.haveGeometryTag = true
		}
		if t.Tag.Equals(tag.PixelData) && t.Length != 0xFFFFFFFF {
			p.inPixelData = true
			p.encapsulated = false
			p.nativeBuf = p.nativeBuf[:0]
		}
		return []Token{tok}, nil

	case DataElementValueBytes:
		if p.haveGeometryTag && p.pendingGeometryTag.Equals(t.Tag) {
			p.pendingGeometryBuf = append(p.pendingGeometryBuf, t.Chunk...)
			if t.Remaining == 0 {
				if err := p.applyGeometryValue(p.pendingGeometryTag, t.VR, p.pendingGeometryBuf); err != nil {
					return nil, err
				}
				p.haveGeometryTag = false
			}
			return []Token{tok}, nil
		}
		if p.inPixelData && !p.encapsulated && t.Tag.Equals(tag.PixelData) {
			p.nativeBuf = append(p.nativeBuf, t.Chunk...)
			if t.Remaining == 0 {
				if err := p.finishNative(); err != nil {
					return nil, err
				}
				p.inPixelData = false
			}
			return []Token{tok}, nil
		}
		if p.inPixelData && p.encapsulated {
			p.fragmentBuf = append(p.fragmentBuf, t.Chunk...)
		}
		return []Token{tok}, nil

	case SequenceStart:
		if t.Tag.Equals(tag.PixelData) {
			p.inPixelData = true
			p.encapsulated = true
			p.fragments = nil
			p.fragmentIndex = 0
			p.bot = pixel.BasicOffsetTable{}
		}
		return []Token{tok}, nil

	case PixelDataItem:
		if p.inPixelData && p.encapsulated {
			p.fragmentBuf = p.fragmentBuf[:0]
		}
		return []Token{tok}, nil

	case SequenceItemDelimiter:
		if p.inPixelData && p.encapsulated {
			if p.fragmentIndex == 0 {
				bot, err := pixel.ParseBasicOffsetTable(p.fragmentBuf)
				if err != nil {
					return nil, err
				}
				p.bot = bot
			} else {
				p.fragments = append(p.fragments, pixel.Fragment{Data: append([]byte(nil), p.fragmentBuf...)})
			}
			p.fragmentIndex++
		}
		return []Token{tok}, nil

	case SequenceDelimiter:
		if p.inPixelData && p.encapsulated && t.Tag.Equals(tag.PixelData) {
			if err := p.finishEncapsulated(); err != nil {
				return nil, err
			}
			p.inPixelData = false
		}
		return []Token{tok}, nil

	default:
		return []Token{tok}, nil
	}
}

func (p *PixelDataFrames) applyGeometryValue(t tag.Tag, v vr.VR, data []byte) error {
	switch t {
	case extendedOffsetTable:
		p.eotOffsets = append([]byte(nil), data...)
		return nil
	case extendedOffsetTableLengths:
		p.eotLengths = append([]byte(nil), data...)
		return nil
	}

	if t.Equals(tag.NumberOfFrames) {
		str, err := decodeStringValue(v, data)
		if err != nil {
			return err
		}
		strs := str.Strings()
		if len(strs) == 0 {
			return nil
		}
		var n int
		if _, err := fmt.Sscanf(strs[0], "%d", &n); err != nil {
			return nil
		}
		p.geometry.NumberOfFrames = n
		return nil
	}

	decoded, err := decodeIntValue(v, data, binary.LittleEndian)
	if err != nil {
		return err
	}
	ints := decoded.Ints()
	if len(ints) == 0 {
		return nil
	}
	n := int(ints[0])
	switch t {
	case tag.Rows:
		p.geometry.Rows = n
	case tag.Columns:
		p.geometry.Columns = n
	case tag.BitsAllocated:
		p.geometry.BitsAllocated = n
	case tag.SamplesPerPixel:
		p.geometry.SamplesPerPixel = n
	}
	return nil
}

func (p *PixelDataFrames) finishNative() error {
	frames, err := pixel.SplitNative(p.nativeBuf, p.geometry)
	if err != nil {
		return err
	}
	p.frames = p.frames[:0]
	for i, f := range frames {
		p.frames = append(p.frames, PixelDataFrame{Index: i, Fragments: [][]byte{f}})
	}
	return nil
}

func (p *PixelDataFrames) finishEncapsulated() error {
	var eot *pixel.ExtendedOffsetTable
	if len(p.eotOffsets) > 0 && len(p.eotLengths) > 0 {
		parsed, err := pixel.ParseExtendedOffsetTable(p.eotOffsets, p.eotLengths)
		if err != nil {
			return err
		}
		eot = &parsed
	}
	assembled, err := pixel.AssembleFrames(p.fragments, p.bot, eot, p.geometry.NumberOfFrames)
	if err != nil {
		return err
	}
	p.frames = p.frames[:0]
	for i, f := range assembled {
		p.frames = append(p.frames, PixelDataFrame{Index: i, Fragments: [][]byte{f}})
	}
	return nil
}
