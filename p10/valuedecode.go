package p10

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

// decodeValue turns raw element value bytes into a typed value.Value, working
// from an already-materialized byte slice. It is used for File Meta
// Information, whose elements are read as whole values, and by Builder for
// each element value it has reassembled from DataElementValueBytes chunks.
// Numeric values are always decoded as little endian.
func decodeValue(v vr.VR, data []byte) (value.Value, error) {
	if len(data) == 0 {
		return emptyValue(v)
	}
	switch {
	case v.IsStringType():
		return decodeStringValue(v, data)
	case v == vr.FloatingPointSingle || v == vr.FloatingPointDouble:
		return decodeFloatValue(v, data, binary.LittleEndian)
	case v.IsNumericType():
		return decodeIntValue(v, data, binary.LittleEndian)
	default:
		return value.NewBytesValue(v, data)
	}
}

func emptyValue(v vr.VR) (value.Value, error) {
	switch {
	case v.IsStringType():
		return value.NewStringValue(v, []string{})
	case v == vr.FloatingPointSingle || v == vr.FloatingPointDouble:
		return value.NewFloatValue(v, []float64{})
	case v.IsNumericType():
		return value.NewIntValue(v, []int64{})
	default:
		return value.NewBytesValue(v, []byte{})
	}
}

func decodeStringValue(v vr.VR, data []byte) (*value.StringValue, error) {
	str := strings.TrimRight(string(data), "\x00 ")
	var values []string
	if str != "" {
		values = strings.Split(str, "\\")
	}
	return value.NewStringValue(v, values)
}

func decodeIntValue(v vr.VR, data []byte, byteOrder binary.ByteOrder) (*value.IntValue, error) {
	var bytesPerValue int
	switch v {
	case vr.SignedShort, vr.UnsignedShort:
		bytesPerValue = 2
	case vr.SignedLong, vr.UnsignedLong, vr.AttributeTag:
		bytesPerValue = 4
	case vr.SignedVeryLong, vr.UnsignedVeryLong:
		bytesPerValue = 8
	default:
		return nil, fmt.Errorf("unsupported integer VR: %s", v.String())
	}
	if len(data)%bytesPerValue != 0 {
		return nil, &dcmxerr.DataInvalid{Details: fmt.Sprintf("invalid length %d for VR %s (not a multiple of %d)", len(data), v.String(), bytesPerValue)}
	}

	var values []int64
	for off := 0; off < len(data); off += bytesPerValue {
		switch v {
		case vr.SignedShort:
			values = append(values, int64(int16(byteOrder.Uint16(data[off:]))))
		case vr.UnsignedShort:
			values = append(values, int64(byteOrder.Uint16(data[off:])))
		case vr.SignedLong:
			values = append(values, int64(int32(byteOrder.Uint32(data[off:]))))
		case vr.UnsignedLong:
			values = append(values, int64(byteOrder.Uint32(data[off:])))
		case vr.AttributeTag:
			group := byteOrder.Uint16(data[off:])
			elem := byteOrder.Uint16(data[off+2:])
			values = append(values, int64(group)<<16|int64(elem))
		case vr.SignedVeryLong, vr.UnsignedVeryLong:
			values = append(values, int64(byteOrder.Uint64(data[off:])))
		}
	}
	return value.NewIntValue(v, values)
}

func decodeFloatValue(v vr.VR, data []byte, byteOrder binary.ByteOrder) (*value.FloatValue, error) {
	bytesPerValue := 4
	if v == vr.FloatingPointDouble {
		bytesPerValue = 8
	}
	if len(data)%bytesPerValue != 0 {
		return nil, &dcmxerr.DataInvalid{Details: fmt.Sprintf("invalid length %d for VR %s (not a multiple of %d)", len(data), v.String(), bytesPerValue)}
	}

	var values []float64
	for off := 0; off < len(data); off += bytesPerValue {
		if v == vr.FloatingPointSingle {
			values = append(values, float64(math.Float32frombits(byteOrder.Uint32(data[off:]))))
		} else {
			values = append(values, math.Float64frombits(byteOrder.Uint64(data[off:])))
		}
	}
	return value.NewFloatValue(v, values)
}

func elementFromRaw(t tag.Tag, v vr.VR, val value.Value) (*element.Element, error) {
	return element.NewElement(t, v, val)
}
