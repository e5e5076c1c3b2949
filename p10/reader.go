package p10

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"io"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

type readerPhase int

const (
	phasePreamble readerPhase = iota
	phaseFileMeta
	phaseDataSet
	phaseDone
)

type frameKind int

const (
	frameSequence frameKind = iota
	frameItem
	frameEncapsulatedPixelData
)

// frame is one entry of the reader's open-bracket stack, tracking a
// sequence, one of its items, or an encapsulated pixel data element.
//
// A defined-length sequence or item carries no Sequence/Item Delimitation
// Item of its own, so when definedLength is set the reader counts down
// remaining as bytes are consumed from inside the frame and synthesizes the
// closing delimiter once it reaches 0.
type frame struct {
	kind          frameKind
	path          dcmpath.Path
	sequenceTag   tag.Tag
	nextItem      int
	definedLength bool
	remaining     uint32
}

// pendingValue tracks an in-progress element value being chunked out as
// DataElementValueBytes tokens.
type pendingValue struct {
	tag       tag.Tag
	vr        vr.VR
	remaining uint32
	active    bool
}

// Reader turns a Part 10 byte stream into Tokens. It never blocks on I/O:
// callers feed bytes with WriteBytes and drain tokens with ReadTokens,
// retrying when ReadTokens reports ErrNeedMoreData.
type Reader struct {
	cfg ReaderConfig

	cursor *byteCursor
	phase  readerPhase

	ts transferSyntax

	fileMeta                 *dataset.DataSet
	fileMetaGroupLengthKnown bool
	fileMetaRemaining        uint32

	frames  []frame
	pending pendingValue

	rootLastTag    tag.Tag
	rootHasLastTag bool
}

// NewReader creates a Reader with zero-valued fields of cfg filled in from
// DefaultReaderConfig.
func NewReader(cfg ReaderConfig) *Reader {
	return &Reader{
		cfg:    mergeReaderConfig(cfg),
		cursor: newByteCursor(),
		phase:  phasePreamble,
	}
}

// WriteBytes appends data to the Reader's internal buffer. isFinal marks
// that no further bytes will ever be supplied; the Reader uses this to
// distinguish a value still in flight from a truncated stream.
func (r *Reader) WriteBytes(data []byte, isFinal bool) error {
	r.cursor.write(data)
	if isFinal {
		r.cursor.markFinal()
	}
	return nil
}

// ReadTokens drains as many complete Tokens as the currently buffered bytes
// allow. It returns dcmxerr.ErrNeedMoreData (with no tokens) when the
// buffer cannot yet produce another token and the stream is not marked
// final; once isFinal has been set and the buffer genuinely runs out
// mid-stream, it returns a PrematureEnd error instead.
func (r *Reader) ReadTokens() ([]Token, error) {
	var out []Token
	for {
		if r.phase == phaseDone {
			break
		}
		tokens, progressed, err := r.step()
		out = append(out, tokens...)
		if err != nil {
			return out, err
		}
		if !progressed {
			break
		}
	}
	r.cursor.compact()
	if len(out) == 0 && r.phase != phaseDone {
		if r.cursor.final && r.cursor.available() == 0 {
			return out, &dcmxerr.PrematureEnd{Path: r.currentPath()}
		}
		return out, dcmxerr.ErrNeedMoreData
	}
	return out, nil
}

func (r *Reader) currentPath() dcmpath.Path {
	if len(r.frames) == 0 {
		return dcmpath.Path{}
	}
	for i := len(r.frames) - 1; i >= 0; i-- {
		if r.frames[i].kind == frameItem {
			return r.frames[i].path
		}
	}
	return r.frames[len(r.frames)-1].path
}

// consume advances the cursor and charges the consumed bytes against every
// enclosing defined-length item frame, so their remaining counters reflect
// nested consumption correctly.
func (r *Reader) consume(n int) {
	r.cursor.advance(n)
	for i := range r.frames {
		if r.frames[i].definedLength {
			r.frames[i].remaining -= uint32(n)
		}
	}
}

func (r *Reader) step() ([]Token, bool, error) {
	if tok, ok := r.closeExhaustedItemFrame(); ok {
		return []Token{tok}, true, nil
	}
	switch r.phase {
	case phasePreamble:
		return r.stepPreamble()
	case phaseFileMeta:
		return r.stepFileMeta()
	case phaseDataSet:
		return r.stepDataSet()
	default:
		return nil, false, nil
	}
}

// closeExhaustedItemFrame synthesizes the closing SequenceItemDelimiter for
// the innermost frame when it is a defined-length item whose declared
// length has been fully consumed.
func (r *Reader) closeExhaustedItemFrame() (Token, bool) {
	if len(r.frames) == 0 {
		return nil, false
	}
	top := r.frames[len(r.frames)-1]
	if top.kind == frameItem && top.definedLength && top.remaining == 0 {
		r.frames = r.frames[:len(r.frames)-1]
		return SequenceItemDelimiter{}, true
	}
	return nil, false
}

func (r *Reader) stepPreamble() ([]Token, bool, error) {
	buf, ok := r.cursor.peek(132)
	if !ok {
		return nil, false, nil
	}
	if string(buf[128:132]) != "DICM" {
		return nil, false, &dcmxerr.DataInvalid{Details: "missing DICM prefix after preamble"}
	}
	var tok FilePreambleAndDICMPrefix
	copy(tok.Preamble[:], buf[:128])
	r.consume(132)
	r.phase = phaseFileMeta
	r.fileMeta = dataset.NewDataSet()
	return []Token{tok}, true, nil
}

// fileMetaTransferSyntax is the fixed encoding of File Meta Information: it
// is always Explicit VR Little Endian, independent of the dataset's own
// transfer syntax.
var fileMetaTransferSyntax = transferSyntax{explicitVR: true, byteOrder: binary.LittleEndian}

// fileMetaGroupLengthTag is (0002,0000), File Meta Information Group
// Length: its value is the exact byte count of every File Meta element
// that follows it, which is how the reader knows where File Meta ends
// without needing to peek ahead into the data set's own encoding.
var fileMetaGroupLengthTag = tag.New(0x0002, 0x0000)

func (r *Reader) stepFileMeta() ([]Token, bool, error) {
	elem, ok, err := r.tryReadRawElement(fileMetaTransferSyntax)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	if !r.fileMetaGroupLengthKnown {
		if !elem.tag.Equals(fileMetaGroupLengthTag) {
			return nil, false, &dcmxerr.DataInvalid{Details: "File Meta Information must begin with the Group Length element (0002,0000)"}
		}
		val, err := decodeValue(elem.vr, elem.value)
		if err != nil {
			return nil, false, err
		}
		intVal, ok := val.(*value.IntValue)
		if !ok || len(intVal.Ints()) == 0 {
			return nil, false, &dcmxerr.DataInvalid{Details: "File Meta Information Group Length has no value"}
		}
		r.fileMetaGroupLengthKnown = true
		r.fileMetaRemaining = uint32(intVal.Ints()[0])
		return nil, true, nil
	}

	val, err := decodeValue(elem.vr, elem.value)
	if err != nil {
		return nil, false, err
	}
	built, err := elementFromRaw(elem.tag, elem.vr, val)
	if err != nil {
		return nil, false, err
	}
	_ = r.fileMeta.Add(built)

	consumed := uint32(elem.headerBytes + len(elem.value))
	if consumed >= r.fileMetaRemaining {
		r.fileMetaRemaining = 0
	} else {
		r.fileMetaRemaining -= consumed
	}

	if r.fileMetaRemaining > 0 {
		return nil, true, nil
	}

	if err := r.finishFileMeta(); err != nil {
		return nil, false, err
	}
	r.phase = phaseDataSet
	return []Token{FileMetaInformation{DataSet: r.fileMeta, TransferSyntaxUID: r.ts.uid}}, true, nil
}

func (r *Reader) finishFileMeta() error {
	tsElem, err := r.fileMeta.Get(tag.New(0x0002, 0x0010))
	if err != nil {
		return &dcmxerr.DataInvalid{Details: "File Meta Information is missing Transfer Syntax UID (0002,0010)"}
	}
	tsUID := tsElem.Value().String()
	ts, err := resolveTransferSyntax(tsUID)
	if err != nil {
		return err
	}
	r.ts = ts
	if ts.deflated {
		if err := r.inflateRemainder(); err != nil {
			return err
		}
	}
	return nil
}

// inflateRemainder decompresses everything currently buffered after the
// File Meta Information using raw DEFLATE. Deflated transfer syntaxes are
// the one case where this Reader requires the full remaining stream to
// already be buffered: a DEFLATE stream cannot be resumed mid-block from
// an arbitrary byte boundary, so isFinal must have been supplied by the
// time File Meta Information finishes parsing.
func (r *Reader) inflateRemainder() error {
	remaining := r.cursor.remainingBytes()
	fr := flate.NewReader(bytes.NewReader(remaining))
	defer fr.Close()
	inflated, err := io.ReadAll(fr)
	if err != nil {
		return &dcmxerr.DataInvalid{Details: "failed to inflate deflated transfer syntax: " + err.Error()}
	}
	r.cursor.replaceRemainder(inflated)
	return nil
}

func (r *Reader) stepDataSet() ([]Token, bool, error) {
	if r.pending.active {
		return r.stepValueBytes()
	}

	if len(r.frames) > 0 {
		top := r.frames[len(r.frames)-1]
		if top.kind == frameSequence || top.kind == frameEncapsulatedPixelData {
			return r.stepSequenceFrame(top)
		}
	}

	header, ok, err := r.tryReadElementHeader(r.ts)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		if r.cursor.final && r.cursor.available() == 0 {
			if len(r.frames) != 0 {
				return nil, false, &dcmxerr.PrematureEnd{Path: r.currentPath()}
			}
			r.phase = phaseDone
			return []Token{End{}}, true, nil
		}
		return nil, false, nil
	}

	return r.emitDataSetElement(header)
}

// emitDataSetElement turns one already-consumed (tag, vr, length) header
// into its header token and, for sequences and encapsulated pixel data,
// opens the corresponding frame.
func (r *Reader) emitDataSetElement(elem rawHeader) ([]Token, bool, error) {
	if err := r.checkOrder(elem.tag); err != nil {
		return nil, false, err
	}

	isPixelData := elem.tag.Equals(tag.PixelData) && elem.length == 0xFFFFFFFF &&
		(elem.vr == vr.OtherByte || elem.vr == vr.OtherWord)
	isSequence := elem.vr == vr.SequenceOfItems

	path := r.currentPath().Push(dcmpath.DataElementEntry(elem.tag))

	if isSequence || isPixelData {
		if len(r.frames) >= r.cfg.MaxSequenceDepth {
			return nil, false, &dcmxerr.MaximumExceeded{Kind: dcmxerr.SequenceDepth, Limit: r.cfg.MaxSequenceDepth}
		}
		kind := frameSequence
		if isPixelData {
			kind = frameEncapsulatedPixelData
		}
		r.frames = append(r.frames, frame{kind: kind, path: path, sequenceTag: elem.tag})
		if elem.length != 0xFFFFFFFF && isSequence {
			// A defined-length sequence carries no Sequence Delimitation
			// Item of its own; track its declared length the same way a
			// defined-length item's is tracked, so the closing
			// SequenceDelimiter can be synthesized once it runs out.
			r.frames[len(r.frames)-1].definedLength = true
			r.frames[len(r.frames)-1].remaining = elem.length
		}
		return []Token{SequenceStart{Tag: elem.tag, VR: elem.vr, Path: path}}, true, nil
	}

	if elem.vr.IsStringType() && elem.length > r.cfg.MaxStringSize {
		return nil, false, &dcmxerr.MaximumExceeded{Kind: dcmxerr.StringSize, Limit: int(r.cfg.MaxStringSize)}
	}

	header := DataElementHeader{Tag: elem.tag, VR: elem.vr, Length: elem.length, Path: path}
	if elem.length == 0 || elem.length == 0xFFFFFFFF {
		return []Token{header}, true, nil
	}
	r.pending = pendingValue{tag: elem.tag, vr: elem.vr, remaining: elem.length, active: true}
	return []Token{header}, true, nil
}

func (r *Reader) stepValueBytes() ([]Token, bool, error) {
	chunkSize := r.pending.remaining
	if chunkSize > r.cfg.MaxTokenSize {
		chunkSize = r.cfg.MaxTokenSize
	}
	avail := uint32(r.cursor.available())
	if avail == 0 {
		return nil, false, nil
	}
	if chunkSize > avail {
		chunkSize = avail
	}
	if chunkSize == 0 {
		return nil, false, nil
	}
	data, _ := r.cursor.peek(int(chunkSize))
	chunk := append([]byte(nil), data...)
	r.consume(int(chunkSize))
	r.pending.remaining -= chunkSize
	tok := DataElementValueBytes{Tag: r.pending.tag, VR: r.pending.vr, Chunk: chunk, Remaining: r.pending.remaining}
	if r.pending.remaining == 0 {
		r.pending.active = false
	}
	return []Token{tok}, true, nil
}

// stepSequenceFrame advances parsing while the innermost open frame is a
// sequence waiting for its next item or its closing delimiter, or an
// encapsulated pixel data element waiting for its next fragment.
func (r *Reader) stepSequenceFrame(top frame) ([]Token, bool, error) {
	if top.definedLength && top.remaining == 0 {
		r.frames = r.frames[:len(r.frames)-1]
		return []Token{SequenceDelimiter{Tag: top.sequenceTag}}, true, nil
	}

	t, length, ok, err := r.tryReadDelimiterOrItemHeader()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	switch {
	case t.Equals(tag.SequenceDelimitationItem):
		r.frames = r.frames[:len(r.frames)-1]
		return []Token{SequenceDelimiter{Tag: top.sequenceTag}}, true, nil

	case t.Equals(tag.Item) && top.kind == frameEncapsulatedPixelData:
		idx := top.nextItem
		r.frames[len(r.frames)-1].nextItem++
		if length != 0 {
			r.pending = pendingValue{tag: tag.PixelData, vr: vr.OtherByte, remaining: length, active: true}
		}
		return []Token{PixelDataItem{Index: idx, Length: length}}, true, nil

	case t.Equals(tag.Item) && top.kind == frameSequence:
		idx := top.nextItem
		r.frames[len(r.frames)-1].nextItem++
		itemPath := top.path.Push(dcmpath.SequenceItemEntry(top.sequenceTag, idx))
		itemFrame := frame{kind: frameItem, path: itemPath}
		if length != 0xFFFFFFFF {
			itemFrame.definedLength = true
			itemFrame.remaining = length
		}
		r.frames = append(r.frames, itemFrame)
		return []Token{SequenceItemStart{Index: idx}}, true, nil

	default:
		return nil, false, &dcmxerr.DataInvalid{Details: "unexpected tag " + t.String() + " inside sequence"}
	}
}

// checkOrder enforces ascending tag order for root-level data elements.
// Elements nested inside sequence items are exempt: each item's internal
// order is whatever its writer produced.
func (r *Reader) checkOrder(t tag.Tag) error {
	if !r.cfg.RequireOrderedDataElements || len(r.frames) != 0 {
		return nil
	}
	if r.rootHasLastTag && !r.rootLastTag.Less(t) {
		return &dcmxerr.DataInvalid{Details: "data elements out of ascending tag order at " + t.String()}
	}
	r.rootHasLastTag = true
	r.rootLastTag = t
	return nil
}
