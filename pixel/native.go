package pixel

import "fmt"

// Geometry carries the pixel-geometry attributes frame splitting needs,
// read from a data set's (0028,xxxx) group.
type Geometry struct {
	Rows           int
	Columns        int
	BitsAllocated  int
	SamplesPerPixel int
	NumberOfFrames int
}

// SplitNative divides a single contiguous native pixel data buffer into
// NumberOfFrames frames. For BitsAllocated == 1, frames are bit-packed and
// may straddle byte boundaries, so each frame is unpacked into one bit per
// output byte (0 or 1) rather than sliced on a byte boundary. For every
// other BitsAllocated, frames are sliced on whole-byte boundaries.
func SplitNative(data []byte, g Geometry) ([][]byte, error) {
	frameCount := g.NumberOfFrames
	if frameCount <= 0 {
		frameCount = 1
	}

	if g.BitsAllocated == 1 {
		return splitBitPacked(data, g, frameCount)
	}

	bytesPerSample := (g.BitsAllocated + 7) / 8
	frameSize := g.Rows * g.Columns * g.SamplesPerPixel * bytesPerSample
	if frameSize <= 0 {
		return nil, &InvalidPixelDataError{Details: "frame size computed as zero or negative from Rows/Columns/BitsAllocated"}
	}
	if len(data) != frameSize*frameCount {
		return nil, &InvalidPixelDataError{Details: fmt.Sprintf("pixel data length %d does not divide evenly into %d frames of %d bytes", len(data), frameCount, frameSize)}
	}

	frames := make([][]byte, frameCount)
	for i := 0; i < frameCount; i++ {
		frames[i] = data[i*frameSize : (i+1)*frameSize]
	}
	return frames, nil
}

// splitBitPacked unpacks 1-bit-allocated pixel data, 8 pixels per byte,
// least-significant bit first, into one output byte (0 or 1) per pixel.
// Frame boundaries need not align to a byte: the bit offset for frame i is
// carried across from the whole unpacked stream rather than recomputed
// per-frame, since a frame may begin mid-byte.
func splitBitPacked(data []byte, g Geometry, frameCount int) ([][]byte, error) {
	bitsPerFrame := g.Rows * g.Columns * g.SamplesPerPixel
	totalBits := bitsPerFrame * frameCount
	if bitsPerFrame <= 0 {
		return nil, &InvalidPixelDataError{Details: "frame bit count computed as zero or negative from Rows/Columns"}
	}
	if len(data)*8 < totalBits {
		return nil, &InvalidPixelDataError{Details: fmt.Sprintf("pixel data has %d bits, need %d for %d frames", len(data)*8, totalBits, frameCount)}
	}

	frames := make([][]byte, frameCount)
	bit := 0
	for i := 0; i < frameCount; i++ {
		frame := make([]byte, bitsPerFrame)
		for p := 0; p < bitsPerFrame; p++ {
			byteIdx := bit / 8
			bitIdx := uint(bit % 8)
			frame[p] = (data[byteIdx] >> bitIdx) & 1
			bit++
		}
		frames[i] = frame
	}
	return frames, nil
}
