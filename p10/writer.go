package p10

import (
	"bytes"
	"compress/flate"
	"encoding/binary"

	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

// writerFrameKind distinguishes the two kinds of open bracket a Writer
// tracks while re-serializing a token stream.
type writerFrameKind int

const (
	writerFrameSequence writerFrameKind = iota
	writerFrameItem
	writerFrameEncapsulatedPixelData
)

type writerFrame struct {
	kind writerFrameKind
	tag  tag.Tag
}

// Writer turns a Token stream back into Part 10 bytes. It always emits the
// defined-length form's undefined-length counterpart: every sequence and
// item it writes carries an indefinite length with an explicit closing
// delimiter, regardless of whether the originating Reader saw a defined
// length on the wire, per the Writer's documented defined→indefinite
// conversion contract. Basic Offset Table items inside encapsulated pixel
// data are passed through unchanged, since they carry no nested brackets of
// their own.
type Writer struct {
	cfg WriterConfig

	out bytes.Buffer

	wroteHeader bool
	ts          transferSyntax

	stack []writerFrame

	deflateBuf *bytes.Buffer
}

// NewWriter creates a Writer with zero-valued fields of cfg filled in from
// DefaultWriterConfig.
func NewWriter(cfg WriterConfig) *Writer {
	return &Writer{cfg: mergeWriterConfig(cfg)}
}

// ReadBytes drains and returns every byte written so far, leaving the
// Writer's internal buffer empty. Callers with a slow downstream sink can
// call this between WriteToken calls to apply backpressure. While a deflated
// data set is being written it returns nil; everything written, including
// the File Meta Information, becomes available once End has been written.
func (w *Writer) ReadBytes() []byte {
	if w.deflateBuf != nil {
		return nil
	}
	out := append([]byte(nil), w.out.Bytes()...)
	w.out.Reset()
	return out
}

// WriteToken folds one token into the Writer's output, appending any bytes
// it produces to the internal buffer. Tokens must arrive well-bracketed
// (every SequenceStart/SequenceItemStart closed by a matching delimiter) or
// WriteToken returns an error; payload validity beyond that is the caller's
// responsibility.
func (w *Writer) WriteToken(tok Token) error {
	switch t := tok.(type) {
	case FilePreambleAndDICMPrefix:
		return nil

	case FileMetaInformation:
		return w.writeFileMeta(t)

	case DataElementHeader:
		return w.writeElementHeader(t.Tag, t.VR, t.Length)

	case DataElementValueBytes:
		return w.writeRaw(t.Chunk)

	case SequenceStart:
		if err := w.writeElementHeader(t.Tag, t.VR, 0xFFFFFFFF); err != nil {
			return err
		}
		w.stack = append(w.stack, writerFrame{kind: writerFrameSequence, tag: t.Tag})
		return nil

	case SequenceDelimiter:
		if err := w.popFrame(writerFrameSequence); err != nil {
			return err
		}
		return w.writeDelimiter(tag.SequenceDelimitationItem)

	case SequenceItemStart:
		if err := w.writeItemHeader(0xFFFFFFFF); err != nil {
			return err
		}
		w.stack = append(w.stack, writerFrame{kind: writerFrameItem})
		return nil

	case SequenceItemDelimiter:
		if err := w.popFrame(writerFrameItem); err != nil {
			return err
		}
		return w.writeDelimiter(tag.ItemDelimitationItem)

	case PixelDataItem:
		return w.writeItemHeader(t.Length)

	case End:
		return w.finish()

	default:
		return &dcmxerr.OtherError{Details: "unrecognized token type"}
	}
}

func (w *Writer) popFrame(want writerFrameKind) error {
	if len(w.stack) == 0 {
		return &dcmxerr.OtherError{Details: "closing delimiter with no matching open frame"}
	}
	top := w.stack[len(w.stack)-1]
	if want == writerFrameSequence && top.kind != writerFrameSequence && top.kind != writerFrameEncapsulatedPixelData {
		return &dcmxerr.OtherError{Details: "SequenceDelimiter does not match the innermost open frame"}
	}
	if want == writerFrameItem && top.kind != writerFrameItem {
		return &dcmxerr.OtherError{Details: "SequenceItemDelimiter does not match the innermost open frame"}
	}
	w.stack = w.stack[:len(w.stack)-1]
	return nil
}

func (w *Writer) sink() *bytes.Buffer {
	if w.deflateBuf != nil {
		return w.deflateBuf
	}
	return &w.out
}

func (w *Writer) writeRaw(b []byte) error {
	w.sink().Write(b)
	return nil
}

func (w *Writer) byteOrder() binary.ByteOrder {
	if w.ts.byteOrder != nil {
		return w.ts.byteOrder
	}
	return binary.LittleEndian
}

// writeElementHeader writes an element's (tag, VR, length) header using
// whichever VR-encoding rule the resolved transfer syntax calls for: Explicit
// VR for File Meta Information and any data set whose transfer syntax is
// Explicit VR, Implicit VR (4-byte length, no VR bytes) otherwise.
func (w *Writer) writeElementHeader(t tag.Tag, v vr.VR, length uint32) error {
	order := w.byteOrder()
	buf := make([]byte, 0, 12)
	var tagBytes [4]byte
	order.PutUint16(tagBytes[0:2], t.Group)
	order.PutUint16(tagBytes[2:4], t.Element)
	buf = append(buf, tagBytes[:]...)

	if !w.ts.explicitVR {
		var lenBytes [4]byte
		order.PutUint32(lenBytes[:], length)
		buf = append(buf, lenBytes[:]...)
		return w.writeRaw(buf)
	}

	buf = append(buf, v.String()...)
	if v.UsesExplicitLength32() {
		var rest [6]byte
		order.PutUint32(rest[2:6], length)
		buf = append(buf, rest[:]...)
	} else {
		var lenBytes [2]byte
		order.PutUint16(lenBytes[:], uint16(length))
		buf = append(buf, lenBytes[:]...)
	}
	return w.writeRaw(buf)
}

func (w *Writer) writeItemHeader(length uint32) error {
	return w.writeDelimiterOrItemHeader(tag.Item, length)
}

func (w *Writer) writeDelimiter(t tag.Tag) error {
	return w.writeDelimiterOrItemHeader(t, 0)
}

func (w *Writer) writeDelimiterOrItemHeader(t tag.Tag, length uint32) error {
	order := w.byteOrder()
	var buf [8]byte
	order.PutUint16(buf[0:2], t.Group)
	order.PutUint16(buf[2:4], t.Element)
	order.PutUint32(buf[4:8], length)
	return w.writeRaw(buf[:])
}

// writeFileMeta emits the preamble (unless suppressed), "DICM", and File
// Meta Information in Explicit VR Little Endian, recomputing the (0002,0000)
// Group Length element from the rest of the File Meta elements' encoded
// byte count rather than trusting whatever value the token carries.
func (w *Writer) writeFileMeta(t FileMetaInformation) error {
	if !w.cfg.SuppressPreamble {
		preamble := w.cfg.Preamble
		if preamble == nil {
			preamble = make([]byte, 128)
		}
		if len(preamble) != 128 {
			return &dcmxerr.OtherError{Details: "writer preamble override must be exactly 128 bytes"}
		}
		w.out.Write(preamble)
		w.out.WriteString("DICM")
	}

	tsUID := t.TransferSyntaxUID
	if w.cfg.TransferSyntaxUID != "" {
		tsUID = w.cfg.TransferSyntaxUID
	}
	ts, err := resolveTransferSyntax(tsUID)
	if err != nil {
		return err
	}
	w.ts = ts

	elements := t.DataSet.Elements()
	var body bytes.Buffer
	for _, elem := range elements {
		if elem.Tag().Equals(tag.New(0x0002, 0x0000)) {
			continue
		}
		val := elem.Value()
		if w.cfg.TransferSyntaxUID != "" && elem.Tag().Equals(tag.New(0x0002, 0x0010)) {
			val, err = value.NewStringValue(vr.UniqueIdentifier, []string{w.cfg.TransferSyntaxUID})
			if err != nil {
				return err
			}
		}
		if err := writeExplicitVRElement(&body, elem.Tag(), elem.VR(), val); err != nil {
			return err
		}
	}
	if uid := w.cfg.ImplementationClassUID; uid != "" && !t.DataSet.Contains(tag.New(0x0002, 0x0012)) {
		val, err := value.NewStringValue(vr.UniqueIdentifier, []string{uid})
		if err != nil {
			return err
		}
		if err := writeExplicitVRElement(&body, tag.New(0x0002, 0x0012), vr.UniqueIdentifier, val); err != nil {
			return err
		}
	}
	if name := w.cfg.ImplementationVersionName; name != "" && !t.DataSet.Contains(tag.New(0x0002, 0x0013)) {
		val, err := value.NewStringValue(vr.ShortString, []string{name})
		if err != nil {
			return err
		}
		if err := writeExplicitVRElement(&body, tag.New(0x0002, 0x0013), vr.ShortString, val); err != nil {
			return err
		}
	}

	groupLengthVal, err := value.NewIntValue(vr.UnsignedLong, []int64{int64(body.Len())})
	if err != nil {
		return err
	}
	if err := writeExplicitVRElement(&w.out, tag.New(0x0002, 0x0000), vr.UnsignedLong, groupLengthVal); err != nil {
		return err
	}
	w.out.Write(body.Bytes())

	w.wroteHeader = true
	if ts.deflated && w.cfg.Deflate {
		w.deflateBuf = &bytes.Buffer{}
	}
	return nil
}

// writeExplicitVRElement writes one element header plus value bytes in
// Explicit VR Little Endian, independent of whatever transfer syntax the
// data set at large uses. File Meta Information is always Explicit VR
// Little Endian regardless of the main data set's encoding.
func writeExplicitVRElement(w *bytes.Buffer, t tag.Tag, v vr.VR, val value.Value) error {
	data := val.Bytes()
	if len(data)%2 != 0 {
		data = append(data, v.PaddingByte())
	}
	var tagBytes [4]byte
	binary.LittleEndian.PutUint16(tagBytes[0:2], t.Group)
	binary.LittleEndian.PutUint16(tagBytes[2:4], t.Element)
	w.Write(tagBytes[:])
	w.WriteString(v.String())
	if v.UsesExplicitLength32() {
		var rest [6]byte
		binary.LittleEndian.PutUint32(rest[2:6], uint32(len(data)))
		w.Write(rest[:])
	} else {
		var lenBytes [2]byte
		binary.LittleEndian.PutUint16(lenBytes[:], uint16(len(data)))
		w.Write(lenBytes[:])
	}
	w.Write(data)
	return nil
}

// finish flushes any deflated data-set bytes into the main output buffer.
// Deflate, like Reader.inflateRemainder, is an all-at-once operation: it
// cannot compress a data set incrementally and resume later, so the whole
// data set must have been written before End arrives.
func (w *Writer) finish() error {
	if w.deflateBuf == nil {
		return nil
	}
	var compressed bytes.Buffer
	fw, err := flate.NewWriter(&compressed, flate.DefaultCompression)
	if err != nil {
		return &dcmxerr.WriteError{Details: "failed to create deflate writer: " + err.Error()}
	}
	if _, err := fw.Write(w.deflateBuf.Bytes()); err != nil {
		return &dcmxerr.WriteError{Details: "failed to deflate data set: " + err.Error()}
	}
	if err := fw.Close(); err != nil {
		return &dcmxerr.WriteError{Details: "failed to flush deflate writer: " + err.Error()}
	}
	w.out.Write(compressed.Bytes())
	w.deflateBuf = nil
	return nil
}

// WriteDataSetToBytes is a convenience wrapper that serializes a complete
// token stream through a fresh Writer, invoking sink once for every chunk of
// bytes the Writer produces as it goes (so callers can bound memory use the
// same way a Reader's caller bounds input memory).
func WriteDataSetToBytes(toks []Token, cfg WriterConfig, sink func([]byte) error) error {
	w := NewWriter(cfg)
	for _, tok := range toks {
		if err := w.WriteToken(tok); err != nil {
			return err
		}
		if b := w.ReadBytes(); len(b) > 0 {
			if err := sink(b); err != nil {
				return &dcmxerr.ExternalSinkError{Details: "data set sink failed", Cause: err}
			}
		}
	}
	if b := w.ReadBytes(); len(b) > 0 {
		if err := sink(b); err != nil {
			return &dcmxerr.ExternalSinkError{Details: "data set sink failed", Cause: err}
		}
	}
	return nil
}
