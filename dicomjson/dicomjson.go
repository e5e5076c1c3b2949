// Package dicomjson implements the DICOM JSON Model (PS3.18 Annex F) atop
// dataset.DataSet. It is layered strictly above the token-stream/data-set
// layer: it imports dataset, tag, vr, and value, and nothing in the reader,
// writer, or transform packages imports it back.
//
// Three deviations from a literal PS3.18 rendering:
//   - PixelData may be inlined as Base64 (InlineBinary) when requested;
//     otherwise binary VRs are omitted from the encoded object entirely.
//   - BulkDataURI is rejected on decode: this package has no bulk-data
//     retrieval mechanism to resolve it against.
//   - Non-finite floats and int64s outside JSON's safe integer range encode
//     as quoted sentinel strings ("Infinity", "-Infinity", "NaN", or the
//     decimal digits of the out-of-range integer) instead of raw JSON
//     numbers, since encoding/json cannot represent either directly.
package dicomjson

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

// EncodeOptions controls Encode's output.
type EncodeOptions struct {
	// InlineBinary includes OB/OW/OF/OD/OL/OV/UN element values as Base64
	// under "InlineBinary" instead of omitting them.
	InlineBinary bool
}

// personNameJSON mirrors PS3.18 Table F.2.2-1's PersonName object: up to
// three of its component groups, one per coding system role.
type personNameJSON struct {
	Alphabetic  string `json:"Alphabetic,omitempty"`
	Ideographic string `json:"Ideographic,omitempty"`
	Phonetic    string `json:"Phonetic,omitempty"`
}

type elementJSON struct {
	VR           string          `json:"vr"`
	Value        json.RawMessage `json:"Value,omitempty"`
	InlineBinary string          `json:"InlineBinary,omitempty"`
}

// Encode renders ds as a DICOM JSON object: a map from "GGGGEEEE" tag keys
// to {"vr": ..., "Value": [...]}.
func Encode(ds *dataset.DataSet, opts EncodeOptions) ([]byte, error) {
	elems := ds.Elements()
	sort.Slice(elems, func(i, j int) bool { return elems[i].Tag().Less(elems[j].Tag()) })

	out := make(map[string]json.RawMessage, len(elems))
	for _, elem := range elems {
		ej, err := encodeElement(elem, opts)
		if err != nil {
			return nil, fmt.Errorf("dicomjson: encoding %s: %w", elem.Tag().String(), err)
		}
		if ej == nil {
			continue
		}
		raw, err := json.Marshal(ej)
		if err != nil {
			return nil, err
		}
		out[tagKey(elem.Tag())] = raw
	}
	return json.Marshal(out)
}

func tagKey(t tag.Tag) string {
	return fmt.Sprintf("%04X%04X", t.Group, t.Element)
}

func encodeElement(elem *element.Element, opts EncodeOptions) (*elementJSON, error) {
	v := elem.VR()
	ej := &elementJSON{VR: v.String()}

	switch val := elem.Value().(type) {
	case *value.SequenceValue:
		items := val.Items()
		encodedItems := make([]map[string]json.RawMessage, len(items))
		for i, item := range items {
			m := make(map[string]json.RawMessage, len(item))
			for _, entry := range item {
				entryElem, err := element.NewElement(entry.Tag, entry.VR, entry.Value)
				if err != nil {
					return nil, err
				}
				nested, err := encodeElement(entryElem, opts)
				if err != nil {
					return nil, err
				}
				if nested == nil {
					continue
				}
				raw, err := json.Marshal(nested)
				if err != nil {
					return nil, err
				}
				m[tagKey(entry.Tag)] = raw
			}
			encodedItems[i] = m
		}
		raw, err := json.Marshal(encodedItems)
		if err != nil {
			return nil, err
		}
		ej.Value = raw
		return ej, nil

	case *value.EncapsulatedPixelDataValue:
		if !opts.InlineBinary {
			return nil, nil
		}
		concatenated := concatenateFragments(val.Fragments())
		ej.InlineBinary = base64.StdEncoding.EncodeToString(concatenated)
		return ej, nil

	case *value.StringValue:
		strs := val.Strings()
		if v == vr.PersonName {
			names := make([]personNameJSON, len(strs))
			for i, s := range strs {
				names[i] = personNameJSON{Alphabetic: s}
			}
			raw, err := json.Marshal(names)
			if err != nil {
				return nil, err
			}
			ej.Value = raw
			return ej, nil
		}
		raw, err := json.Marshal(strs)
		if err != nil {
			return nil, err
		}
		ej.Value = raw
		return ej, nil

	case *value.IntValue:
		ints := val.Ints()
		parts := make([]json.RawMessage, len(ints))
		for i, n := range ints {
			parts[i] = encodeInt(n)
		}
		raw, err := json.Marshal(parts)
		if err != nil {
			return nil, err
		}
		ej.Value = raw
		return ej, nil

	case *value.FloatValue:
		floats := val.Floats()
		parts := make([]json.RawMessage, len(floats))
		for i, f := range floats {
			parts[i] = encodeFloat(f)
		}
		raw, err := json.Marshal(parts)
		if err != nil {
			return nil, err
		}
		ej.Value = raw
		return ej, nil

	case *value.BytesValue:
		if !opts.InlineBinary {
			return nil, nil
		}
		ej.InlineBinary = base64.StdEncoding.EncodeToString(val.Bytes())
		return ej, nil

	default:
		return nil, fmt.Errorf("unsupported value type %T", val)
	}
}

func concatenateFragments(fragments [][]byte) []byte {
	total := 0
	for _, f := range fragments {
		total += len(f)
	}
	out := make([]byte, 0, total)
	for _, f := range fragments {
		out = append(out, f...)
	}
	return out
}

func encodeInt(n int64) json.RawMessage {
	if n > (1<<53) || n < -(1<<53) {
		return json.RawMessage(strconv.Quote(strconv.FormatInt(n, 10)))
	}
	b, _ := json.Marshal(n)
	return b
}

func encodeFloat(f float64) json.RawMessage {
	switch {
	case math.IsNaN(f):
		return json.RawMessage(`"NaN"`)
	case math.IsInf(f, 1):
		return json.RawMessage(`"Infinity"`)
	case math.IsInf(f, -1):
		return json.RawMessage(`"-Infinity"`)
	default:
		b, _ := json.Marshal(f)
		return b
	}
}

// Decode parses a DICOM JSON object into a data set. BulkDataURI keys are
// rejected: this package cannot resolve them.
func Decode(data []byte) (*dataset.DataSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dicomjson: invalid JSON object: %w", err)
	}
	ds := dataset.NewDataSet()
	for key, val := range raw {
		t, err := parseTagKey(key)
		if err != nil {
			return nil, err
		}
		elem, err := decodeElement(t, val)
		if err != nil {
			return nil, fmt.Errorf("dicomjson: decoding %s: %w", key, err)
		}
		if elem == nil {
			continue
		}
		if err := ds.Add(elem); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func parseTagKey(key string) (tag.Tag, error) {
	if len(key) != 8 {
		return tag.Tag{}, fmt.Errorf("dicomjson: malformed tag key %q", key)
	}
	group, err := strconv.ParseUint(key[0:4], 16, 16)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("dicomjson: malformed tag key %q: %w", key, err)
	}
	elem, err := strconv.ParseUint(key[4:8], 16, 16)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("dicomjson: malformed tag key %q: %w", key, err)
	}
	return tag.New(uint16(group), uint16(elem)), nil
}

func decodeElement(t tag.Tag, raw json.RawMessage) (*element.Element, error) {
	var ej elementJSON
	if err := json.Unmarshal(raw, &ej); err != nil {
		return nil, err
	}
	var probe struct {
		BulkDataURI string `json:"BulkDataURI"`
	}
	_ = json.Unmarshal(raw, &probe)
	if probe.BulkDataURI != "" {
		return nil, fmt.Errorf("BulkDataURI is not supported for decoding")
	}

	v, err := vr.Parse(ej.VR)
	if err != nil {
		return nil, err
	}

	if ej.InlineBinary != "" {
		data, err := base64.StdEncoding.DecodeString(ej.InlineBinary)
		if err != nil {
			return nil, fmt.Errorf("invalid InlineBinary: %w", err)
		}
		val, err := value.NewBytesValue(v, data)
		if err != nil {
			return nil, err
		}
		return element.NewElement(t, v, val)
	}

	if v == vr.SequenceOfItems {
		var rawItems []map[string]json.RawMessage
		if len(ej.Value) > 0 {
			if err := json.Unmarshal(ej.Value, &rawItems); err != nil {
				return nil, err
			}
		}
		items := make([]value.Item, len(rawItems))
		for i, rawItem := range rawItems {
			var item value.Item
			for key, entryRaw := range rawItem {
				entryTag, err := parseTagKey(key)
				if err != nil {
					return nil, err
				}
				entryElem, err := decodeElement(entryTag, entryRaw)
				if err != nil {
					return nil, err
				}
				if entryElem == nil {
					continue
				}
				item = append(item, value.Entry{Tag: entryTag, VR: entryElem.VR(), Value: entryElem.Value()})
			}
			sort.Slice(item, func(a, b int) bool { return item[a].Tag.Less(item[b].Tag) })
			items[i] = item
		}
		return element.NewElement(t, v, value.NewSequenceValue(items))
	}

	if v == vr.PersonName {
		var names []personNameJSON
		if len(ej.Value) > 0 {
			if err := json.Unmarshal(ej.Value, &names); err != nil {
				return nil, err
			}
		}
		strs := make([]string, len(names))
		for i, n := range names {
			strs[i] = n.Alphabetic
		}
		val, err := value.NewStringValue(v, strs)
		if err != nil {
			return nil, err
		}
		return element.NewElement(t, v, val)
	}

	if v.IsStringType() {
		var strs []string
		if len(ej.Value) > 0 {
			if err := json.Unmarshal(ej.Value, &strs); err != nil {
				return nil, err
			}
		}
		val, err := value.NewStringValue(v, strs)
		if err != nil {
			return nil, err
		}
		return element.NewElement(t, v, val)
	}

	if v.IsNumericType() {
		var raws []json.RawMessage
		if len(ej.Value) > 0 {
			if err := json.Unmarshal(ej.Value, &raws); err != nil {
				return nil, err
			}
		}
		ints := make([]int64, len(raws))
		for i, r := range raws {
			n, err := decodeIntRaw(r)
			if err != nil {
				return nil, err
			}
			ints[i] = n
		}
		val, err := value.NewIntValue(v, ints)
		if err != nil {
			return nil, err
		}
		return element.NewElement(t, v, val)
	}

	if v == vr.FloatingPointSingle || v == vr.FloatingPointDouble {
		var raws []json.RawMessage
		if len(ej.Value) > 0 {
			if err := json.Unmarshal(ej.Value, &raws); err != nil {
				return nil, err
			}
		}
		floats := make([]float64, len(raws))
		for i, r := range raws {
			f, err := decodeFloatRaw(r)
			if err != nil {
				return nil, err
			}
			floats[i] = f
		}
		val, err := value.NewFloatValue(v, floats)
		if err != nil {
			return nil, err
		}
		return element.NewElement(t, v, val)
	}

	// Binary VR with neither InlineBinary nor Value present: nothing to
	// decode, so omit the element rather than fabricate an empty one.
	return nil, nil
}

func decodeIntRaw(r json.RawMessage) (int64, error) {
	s := strings.Trim(string(r), `"`)
	if strings.HasPrefix(string(r), `"`) {
		return strconv.ParseInt(s, 10, 64)
	}
	var n int64
	if err := json.Unmarshal(r, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func decodeFloatRaw(r json.RawMessage) (float64, error) {
	if strings.HasPrefix(string(r), `"`) {
		switch strings.Trim(string(r), `"`) {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	var f float64
	if err := json.Unmarshal(r, &f); err != nil {
		return 0, err
	}
	return f, nil
}
