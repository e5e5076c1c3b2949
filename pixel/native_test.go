package pixel_test

import (
	"testing"

	"github.com/dcmxlabs/dcmx/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNative_ByteAligned(t *testing.T) {
	g := pixel.Geometry{Rows: 2, Columns: 2, BitsAllocated: 8, SamplesPerPixel: 1, NumberOfFrames: 2}
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	frames, err := pixel.SplitNative(data, g)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, []byte{1, 2, 3, 4}, frames[0])
	assert.Equal(t, []byte{5, 6, 7, 8}, frames[1])
}

func TestSplitNative_DefaultsToOneFrame(t *testing.T) {
	g := pixel.Geometry{Rows: 1, Columns: 4, BitsAllocated: 8, SamplesPerPixel: 1}
	data := []byte{9, 9, 9, 9}

	frames, err := pixel.SplitNative(data, g)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, data, frames[0])
}

func TestSplitNative_LengthMismatch(t *testing.T) {
	g := pixel.Geometry{Rows: 2, Columns: 2, BitsAllocated: 8, SamplesPerPixel: 1, NumberOfFrames: 2}
	data := []byte{1, 2, 3} // too short for one frame, let alone two

	_, err := pixel.SplitNative(data, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, pixel.ErrInvalidPixelData)
}

func TestSplitNative_BitPacked(t *testing.T) {
	// 2x4 single-bit frames, one all-set byte and one all-clear byte so
	// each frame lands on a whole byte and the unpacked bits are
	// unambiguous regardless of bit order.
	g := pixel.Geometry{Rows: 2, Columns: 4, BitsAllocated: 1, SamplesPerPixel: 1, NumberOfFrames: 2}
	data := []byte{0xFF, 0x00}

	frames, err := pixel.SplitNative(data, g)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, []byte{1, 1, 1, 1, 1, 1, 1, 1}, frames[0])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, frames[1])
}

func TestSplitNative_ZeroFrameSize(t *testing.T) {
	g := pixel.Geometry{Rows: 0, Columns: 0, BitsAllocated: 8, SamplesPerPixel: 1, NumberOfFrames: 1}
	_, err := pixel.SplitNative(nil, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, pixel.ErrInvalidPixelData)
}
