package rle_test

import (
	"encoding/binary"
	"testing"

	"github.com/dcmxlabs/dcmx/pixel"
	"github.com/dcmxlabs/dcmx/pixel/rle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeHeader builds the 64-byte RLE segment header: segment count
// followed by 15 little-endian uint32 offsets (unused ones left zero).
func encodeHeader(segmentOffsets ...uint32) []byte {
	header := make([]byte, 64)
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(segmentOffsets)))
	for i, off := range segmentOffsets {
		binary.LittleEndian.PutUint32(header[4+i*4:8+i*4], off)
	}
	return header
}

func TestRegistersWithDefaultRegistry(t *testing.T) {
	codec, err := pixel.DefaultRegistry.Lookup(rle.TransferSyntaxUID)
	require.NoError(t, err)
	assert.IsType(t, rle.Codec{}, codec)
}

func TestCodec_Decode_LiteralRun(t *testing.T) {
	// One segment, a single literal run of 4 bytes: control byte 3 means
	// "copy the next 4 bytes literally".
	segment := []byte{3, 0x01, 0x02, 0x03, 0x04}
	frame := append(encodeHeader(64), segment...)

	g := pixel.Geometry{Rows: 2, Columns: 2, BitsAllocated: 8, SamplesPerPixel: 1}
	out, err := rle.Codec{}.Decode(frame, g)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, out)
}

func TestCodec_Decode_RepeatRun(t *testing.T) {
	// control byte -3 (253 as byte) means "repeat the next byte 4 times".
	segment := []byte{253, 0x07}
	frame := append(encodeHeader(64), segment...)

	g := pixel.Geometry{Rows: 2, Columns: 2, BitsAllocated: 8, SamplesPerPixel: 1}
	out, err := rle.Codec{}.Decode(frame, g)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x07, 0x07, 0x07}, out)
}

func TestCodec_Decode_TwoSegmentsInterleaved(t *testing.T) {
	// BitsAllocated 16 means 2 bytes per sample; segment 0 supplies each
	// sample's low byte, segment 1 its high byte.
	low := []byte{1, 0xAA, 0xBB} // literal run of 2 bytes
	high := []byte{1, 0x01, 0x02}
	frame := append(encodeHeader(64, 64+uint32(len(low))), low...)
	frame = append(frame, high...)

	g := pixel.Geometry{Rows: 1, Columns: 2, BitsAllocated: 16, SamplesPerPixel: 1}
	out, err := rle.Codec{}.Decode(frame, g)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x01, 0xBB, 0x02}, out)
}

func TestCodec_Decode_FrameTooSmall(t *testing.T) {
	_, err := rle.Codec{}.Decode([]byte{1, 2, 3}, pixel.Geometry{})
	require.Error(t, err)
}

func TestCodec_Decode_InvalidSegmentCount(t *testing.T) {
	frame := encodeHeader() // segment count field left at 0
	_, err := rle.Codec{}.Decode(frame, pixel.Geometry{})
	require.Error(t, err)
}
