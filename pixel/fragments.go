package pixel

import (
	"encoding/binary"
)

// Fragment is one item of encapsulated pixel data, excluding the Basic
// Offset Table item itself.
type Fragment struct {
	Data   []byte
	Offset int // byte offset within the concatenated fragment stream
}

// BasicOffsetTable maps frame index to the byte offset (relative to the
// first byte after the Basic Offset Table item) of that frame's first
// fragment. Empty when the first item in the pixel data sequence carried
// zero length.
type BasicOffsetTable struct {
	Offsets []uint32
}

// ExtendedOffsetTable maps frame index to a byte offset and length
// ((7FE0,0001) / (7FE0,0002)), authoritative over the Basic Offset Table
// and the NumberOfFrames/fragment-count heuristic when present.
type ExtendedOffsetTable struct {
	Offsets []uint64
	Lengths []uint64
}

// ParseBasicOffsetTable decodes the first item of an encapsulated pixel
// data element, whose content (when non-empty) is a run of little-endian
// uint32 byte offsets.
func ParseBasicOffsetTable(data []byte) (BasicOffsetTable, error) {
	if len(data)%4 != 0 {
		return BasicOffsetTable{}, &InvalidPixelDataError{Details: "Basic Offset Table length is not a multiple of 4"}
	}
	offsets := make([]uint32, len(data)/4)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return BasicOffsetTable{Offsets: offsets}, nil
}

// ParseExtendedOffsetTable decodes the (7FE0,0001)/(7FE0,0002) element pair
// into frame offsets and lengths, each a run of little-endian uint64s.
func ParseExtendedOffsetTable(offsetBytes, lengthBytes []byte) (ExtendedOffsetTable, error) {
	if len(offsetBytes)%8 != 0 || len(lengthBytes)%8 != 0 {
		return ExtendedOffsetTable{}, &InvalidPixelDataError{Details: "Extended Offset Table element length is not a multiple of 8"}
	}
	offsets := make([]uint64, len(offsetBytes)/8)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint64(offsetBytes[i*8 : i*8+8])
	}
	lengths := make([]uint64, len(lengthBytes)/8)
	for i := range lengths {
		lengths[i] = binary.LittleEndian.Uint64(lengthBytes[i*8 : i*8+8])
	}
	return ExtendedOffsetTable{Offsets: offsets, Lengths: lengths}, nil
}

// AssembleFrames groups fragments into frames using, in priority order: the
// Extended Offset Table (authoritative over everything else), a 1:1
// fragment-to-frame mapping when numberOfFrames equals len(fragments), the
// Basic Offset Table, or (failing all of those) a single frame holding
// every fragment.
func AssembleFrames(fragments []Fragment, bot BasicOffsetTable, eot *ExtendedOffsetTable, numberOfFrames int) ([][]byte, error) {
	concatenated := concatenate(fragments)

	if eot != nil && len(eot.Offsets) > 0 {
		frames := make([][]byte, len(eot.Offsets))
		for i, off := range eot.Offsets {
			length := eot.Lengths[i]
			if off+length > uint64(len(concatenated)) {
				return nil, &InvalidPixelDataError{Details: "Extended Offset Table entry exceeds fragment stream length"}
			}
			frames[i] = concatenated[off : off+length]
		}
		return frames, nil
	}

	if numberOfFrames > 0 && numberOfFrames == len(fragments) {
		frames := make([][]byte, numberOfFrames)
		for i, f := range fragments {
			frames[i] = f.Data
		}
		return frames, nil
	}

	if len(bot.Offsets) > 0 {
		if len(fragments) == 0 {
			return nil, &InvalidPixelDataError{Details: "Basic Offset Table present but no fragments follow it"}
		}
		frames := make([][]byte, len(bot.Offsets))
		for i, frameOffset := range bot.Offsets {
			var end uint32
			if i+1 < len(bot.Offsets) {
				end = bot.Offsets[i+1]
			} else {
				end = uint32(len(concatenated))
			}
			if end > uint32(len(concatenated)) || frameOffset > end {
				return nil, &InvalidPixelDataError{Details: "Basic Offset Table entry out of range"}
			}
			frames[i] = concatenated[frameOffset:end]
		}
		return frames, nil
	}

	return [][]byte{concatenated}, nil
}

func concatenate(fragments []Fragment) []byte {
	total := 0
	for _, f := range fragments {
		total += len(f.Data)
	}
	out := make([]byte, 0, total)
	for _, f := range fragments {
		out = append(out, f.Data...)
	}
	return out
}
