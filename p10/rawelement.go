package p10

import (
	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// rawHeader is a fully-parsed (tag, VR, length) element header. headerBytes
// is how many bytes it occupied on the wire, for callers that need to
// account consumed bytes against an enclosing defined-length item.
type rawHeader struct {
	tag         tag.Tag
	vr          vr.VR
	length      uint32
	headerBytes int
}

// rawElement is a header plus its fully materialized value bytes, used only
// for File Meta Information, whose elements are never chunked.
type rawElement struct {
	rawHeader
	value []byte
}

// tryReadElementHeader attempts to parse one element header (tag, VR,
// length) at the current cursor position without consuming any bytes
// unless the full header is available. It returns ok=false when the buffer
// does not yet hold enough bytes.
func (r *Reader) tryReadElementHeader(ts transferSyntax) (rawHeader, bool, error) {
	tagBytes, ok := r.cursor.peek(4)
	if !ok {
		return rawHeader{}, false, nil
	}
	t := decodeTag(tagBytes, ts)

	if ts.explicitVR {
		vrBytes, ok := r.cursor.peek(6)
		if !ok {
			return rawHeader{}, false, nil
		}
		v, err := vr.Parse(string(vrBytes[4:6]))
		if err != nil {
			return rawHeader{}, false, &dcmxerr.DataInvalid{Details: "invalid VR " + string(vrBytes[4:6]) + " for tag " + t.String()}
		}
		if v.UsesExplicitLength32() {
			full, ok := r.cursor.peek(12)
			if !ok {
				return rawHeader{}, false, nil
			}
			length := ts.byteOrder.Uint32(full[8:12])
			r.consume(12)
			return rawHeader{tag: t, vr: v, length: length, headerBytes: 12}, true, nil
		}
		full, ok := r.cursor.peek(8)
		if !ok {
			return rawHeader{}, false, nil
		}
		length := uint32(ts.byteOrder.Uint16(full[6:8]))
		r.consume(8)
		return rawHeader{tag: t, vr: v, length: length, headerBytes: 8}, true, nil
	}

	full, ok := r.cursor.peek(8)
	if !ok {
		return rawHeader{}, false, nil
	}
	v := implicitVR(t)
	length := ts.byteOrder.Uint32(full[4:8])
	r.consume(8)
	return rawHeader{tag: t, vr: v, length: length, headerBytes: 8}, true, nil
}

// tryReadRawElement reads one header and its full value atomically: nothing
// is consumed unless both are fully buffered. Used for File Meta
// Information, where values are small and never chunked.
func (r *Reader) tryReadRawElement(ts transferSyntax) (rawElement, bool, error) {
	tagBytes, ok := r.cursor.peek(4)
	if !ok {
		return rawElement{}, false, nil
	}
	t := decodeTag(tagBytes, ts)

	headerLen := 8
	var v vr.VR
	var length uint32
	if ts.explicitVR {
		vrBytes, ok := r.cursor.peek(6)
		if !ok {
			return rawElement{}, false, nil
		}
		var err error
		v, err = vr.Parse(string(vrBytes[4:6]))
		if err != nil {
			return rawElement{}, false, &dcmxerr.DataInvalid{Details: "invalid VR " + string(vrBytes[4:6]) + " for tag " + t.String()}
		}
		if v.UsesExplicitLength32() {
			headerLen = 12
			full, ok := r.cursor.peek(12)
			if !ok {
				return rawElement{}, false, nil
			}
			length = ts.byteOrder.Uint32(full[8:12])
		} else {
			full, ok := r.cursor.peek(8)
			if !ok {
				return rawElement{}, false, nil
			}
			length = uint32(ts.byteOrder.Uint16(full[6:8]))
		}
	} else {
		full, ok := r.cursor.peek(8)
		if !ok {
			return rawElement{}, false, nil
		}
		v = implicitVR(t)
		length = ts.byteOrder.Uint32(full[4:8])
	}

	if length == 0xFFFFFFFF {
		return rawElement{}, false, &dcmxerr.DataInvalid{Details: "File Meta Information element " + t.String() + " may not use undefined length"}
	}

	total, ok := r.cursor.peek(headerLen + int(length))
	if !ok {
		return rawElement{}, false, nil
	}
	value := append([]byte(nil), total[headerLen:]...)
	r.consume(headerLen + int(length))
	return rawElement{rawHeader: rawHeader{tag: t, vr: v, length: length, headerBytes: headerLen}, value: value}, true, nil
}

// tryReadDelimiterOrItemHeader reads the fixed Tag(4)+Length(4) pseudo-header
// used for Item, Item Delimitation Item, and Sequence Delimitation Item
// pseudo-elements, which never carry a VR.
func (r *Reader) tryReadDelimiterOrItemHeader() (tag.Tag, uint32, bool, error) {
	full, ok := r.cursor.peek(8)
	if !ok {
		return tag.Tag{}, 0, false, nil
	}
	t := tag.New(r.ts.byteOrder.Uint16(full[0:2]), r.ts.byteOrder.Uint16(full[2:4]))
	length := r.ts.byteOrder.Uint32(full[4:8])
	r.consume(8)
	return t, length, true, nil
}

func decodeTag(b []byte, ts transferSyntax) tag.Tag {
	group := ts.byteOrder.Uint16(b[0:2])
	elem := ts.byteOrder.Uint16(b[2:4])
	return tag.New(group, elem)
}

// implicitVR resolves the VR for implicit-VR-encoded tags via the standard
// dictionary, defaulting to vr.Unknown for unrecognized tags. A tag with
// several possible VRs takes the first listed one (e.g. PixelData's "OB or
// OW" resolves to OB or OW, whichever the dictionary lists first).
func implicitVR(t tag.Tag) vr.VR {
	info, err := tag.Find(t)
	if err != nil || len(info.VRs) == 0 {
		return vr.Unknown
	}
	return info.VRs[0]
}
