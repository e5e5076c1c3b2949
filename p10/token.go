package p10

import (
	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// Token is one event in a Part 10 stream. The Reader emits Tokens in
// response to buffered bytes; the Writer and Builder consume them. A valid
// token stream is well-bracketed (every SequenceStart is matched by a
// SequenceDelimiter, every SequenceItemStart by a SequenceItemDelimiter) and
// ends with exactly one End.
type Token interface {
	isToken()
}

// FilePreambleAndDICMPrefix carries the 128-byte preamble that precedes the
// "DICM" magic at the start of a Part 10 stream. The preamble content is not
// interpreted.
type FilePreambleAndDICMPrefix struct {
	Preamble [128]byte
}

func (FilePreambleAndDICMPrefix) isToken() {}

// FileMetaInformation carries the fully parsed File Meta Information group
// (0002,xxxx), including the resolved transfer syntax UID used to decode
// everything that follows it.
type FileMetaInformation struct {
	DataSet           *dataset.DataSet
	TransferSyntaxUID string
}

func (FileMetaInformation) isToken() {}

// DataElementHeader introduces a data element: its tag, VR, declared value
// length (0xFFFFFFFF for undefined length), and the path of the element
// relative to the root data set (or the enclosing sequence item).
type DataElementHeader struct {
	Tag    tag.Tag
	VR     vr.VR
	Length uint32
	Path   dcmpath.Path
}

func (DataElementHeader) isToken() {}

// DataElementValueBytes carries one chunk of a data element's value. Chunks
// for a single element arrive in order and their lengths sum to the
// element's declared Length; Remaining is the number of value bytes still
// to come after this chunk (0 on the final chunk).
type DataElementValueBytes struct {
	Tag       tag.Tag
	VR        vr.VR
	Chunk     []byte
	Remaining uint32
}

func (DataElementValueBytes) isToken() {}

// SequenceStart opens a sequence element (VR SQ, or an encapsulated pixel
// data element). It is matched by a later SequenceDelimiter at the same
// nesting depth.
type SequenceStart struct {
	Tag  tag.Tag
	VR   vr.VR
	Path dcmpath.Path
}

func (SequenceStart) isToken() {}

// SequenceDelimiter closes the sequence opened by the most recent unmatched
// SequenceStart.
type SequenceDelimiter struct {
	Tag tag.Tag
}

func (SequenceDelimiter) isToken() {}

// SequenceItemStart opens an item within the innermost open sequence. Index
// is the item's zero-based position within that sequence.
type SequenceItemStart struct {
	Index int
}

func (SequenceItemStart) isToken() {}

// SequenceItemDelimiter closes the item opened by the most recent unmatched
// SequenceItemStart.
type SequenceItemDelimiter struct{}

func (SequenceItemDelimiter) isToken() {}

// PixelDataItem introduces one fragment of encapsulated pixel data. The
// fragment's bytes follow as DataElementValueBytes tokens tagged with
// tag.PixelData, the same as any other element value.
type PixelDataItem struct {
	Index  int
	Length uint32
}

func (PixelDataItem) isToken() {}

// End terminates the token stream. Exactly one End token is ever produced,
// and no further tokens follow it.
type End struct{}

func (End) isToken() {}
