// Package rle implements DICOM RLE Lossless (PS3.5 Annex G) decompression
// and registers itself against pixel.DefaultRegistry on import.
package rle

import (
	"encoding/binary"
	"fmt"

	"github.com/dcmxlabs/dcmx/pixel"
)

// TransferSyntaxUID is the RLE Lossless transfer syntax.
const TransferSyntaxUID = "1.2.840.10008.1.2.5"

// Codec implements pixel.Codec for RLE Lossless, PackBits-encoded per
// segment with segments organized by byte position across samples.
type Codec struct{}

func init() {
	pixel.DefaultRegistry.Register(TransferSyntaxUID, Codec{})
}

// Decode reverses RLE Lossless encoding: a 64-byte header (segment count
// plus 15 segment offsets) followed by one PackBits-compressed segment per
// byte-position-within-sample, interleaved back into g's declared geometry.
func (Codec) Decode(frame []byte, g pixel.Geometry) ([]byte, error) {
	if len(frame) < 64 {
		return nil, fmt.Errorf("rle: frame too small for header: %d bytes", len(frame))
	}

	numSegments := binary.LittleEndian.Uint32(frame[0:4])
	if numSegments == 0 || numSegments > 15 {
		return nil, fmt.Errorf("rle: invalid segment count %d", numSegments)
	}
	offsets := make([]uint32, numSegments)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(frame[4+i*4 : 8+i*4])
	}

	bytesPerSample := (g.BitsAllocated + 7) / 8
	samplesPerFrame := g.Rows * g.Columns * g.SamplesPerPixel
	output := make([]byte, samplesPerFrame*bytesPerSample)

	for seg := 0; seg < int(numSegments); seg++ {
		start := int(offsets[seg])
		end := len(frame)
		if seg+1 < int(numSegments) {
			end = int(offsets[seg+1])
		}
		if start > end || end > len(frame) {
			return nil, fmt.Errorf("rle: segment %d offset out of bounds", seg)
		}
		decoded, err := decodePackBits(frame[start:end])
		if err != nil {
			return nil, fmt.Errorf("rle: segment %d: %w", seg, err)
		}
		bytePos := seg % bytesPerSample
		for i := 0; i < len(decoded) && i < samplesPerFrame; i++ {
			output[i*bytesPerSample+bytePos] = decoded[i]
		}
	}
	return output, nil
}

// decodePackBits implements the PackBits algorithm DICOM RLE uses per
// segment: control byte in [0,127] copies the next n+1 bytes literally;
// in [129,255] (as signed, -127..-1) repeats the next byte (257-n) times;
// 128 is a no-op.
func decodePackBits(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)
	pos := 0
	for pos < len(data) {
		control := int8(data[pos])
		pos++
		switch {
		case control >= 0:
			count := int(control) + 1
			if pos+count > len(data) {
				return nil, fmt.Errorf("literal run exceeds segment bounds")
			}
			out = append(out, data[pos:pos+count]...)
			pos += count
		case control != -128:
			count := 1 - int(control)
			if pos >= len(data) {
				return nil, fmt.Errorf("repeat run missing data byte")
			}
			b := data[pos]
			pos++
			for i := 0; i < count; i++ {
				out = append(out, b)
			}
		}
	}
	return out, nil
}
