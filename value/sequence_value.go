package value

import (
	"fmt"
	"strings"

	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// Entry is one (tag, VR, value) triple inside an Item. It is the minimal
// element representation the value package needs to describe nested
// content without importing the element/dataset packages built above it.
type Entry struct {
	Tag   tag.Tag
	VR    vr.VR
	Value Value
}

// Item is a single entry of a sequence: an ordered list of Entry, mirroring
// the ordering invariant a data set keeps at every nesting level. A
// sequence's value is a list of Item.
type Item []Entry

// Get returns the Entry for t and true if present.
func (it Item) Get(t tag.Tag) (Entry, bool) {
	for _, e := range it {
		if e.Tag.Equals(t) {
			return e, true
		}
	}
	return Entry{}, false
}

// String renders the item as its tag-ordered entries, comma separated.
func (it Item) String() string {
	parts := make([]string, 0, len(it))
	for _, e := range it {
		parts = append(parts, fmt.Sprintf("%s %s=%s", e.Tag.String(), e.VR.String(), e.Value.String()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// equals compares two items entry by entry, in order.
func (it Item) equals(other Item) bool {
	if len(it) != len(other) {
		return false
	}
	for i := range it {
		if !it[i].Tag.Equals(other[i].Tag) || it[i].VR != other[i].VR {
			return false
		}
		if !it[i].Value.Equals(other[i].Value) {
			return false
		}
	}
	return true
}

// SequenceValue represents a DICOM Sequence of Items (SQ) value: an ordered
// list of Item, each itself a nested data set.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type SequenceValue struct {
	items []Item
}

// NewSequenceValue creates a new SequenceValue from a list of items. A nil
// slice is treated as an empty (zero-item) sequence.
func NewSequenceValue(items []Item) *SequenceValue {
	if items == nil {
		items = []Item{}
	}
	return &SequenceValue{items: items}
}

// VR always returns SequenceOfItems for a SequenceValue.
func (s *SequenceValue) VR() vr.VR {
	return vr.SequenceOfItems
}

// Items returns the sequence's items in order.
func (s *SequenceValue) Items() []Item {
	return s.items
}

// String returns a human-readable summary of the sequence.
func (s *SequenceValue) String() string {
	if len(s.items) == 0 {
		return "(sequence, 0 items)"
	}
	parts := make([]string, len(s.items))
	for i, it := range s.items {
		parts[i] = it.String()
	}
	return fmt.Sprintf("(sequence, %d items) %s", len(s.items), strings.Join(parts, " "))
}

// Bytes is unsupported for SequenceValue: sequences are written as a stream
// of item tokens by the writer, never as a single contiguous byte run.
func (s *SequenceValue) Bytes() []byte {
	return nil
}

// Equals returns true if other is a SequenceValue with the same items in
// the same order.
func (s *SequenceValue) Equals(other Value) bool {
	otherSeq, ok := other.(*SequenceValue)
	if !ok {
		return false
	}
	if len(s.items) != len(otherSeq.items) {
		return false
	}
	for i := range s.items {
		if !s.items[i].equals(otherSeq.items[i]) {
			return false
		}
	}
	return true
}

var _ Value = (*SequenceValue)(nil)

// EncapsulatedPixelDataValue represents the value of a Pixel Data element
// (7FE0,0010) under an encapsulated (compressed) transfer syntax: a list of
// raw fragment byte strings, the first of which is the Basic Offset Table
// (possibly empty).
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
type EncapsulatedPixelDataValue struct {
	vr        vr.VR
	fragments [][]byte
}

// NewEncapsulatedPixelDataValue creates a new EncapsulatedPixelDataValue.
// v must be OtherByte or OtherWord, the only VRs Pixel Data carries. A nil
// fragments slice is treated as empty.
func NewEncapsulatedPixelDataValue(v vr.VR, fragments [][]byte) (*EncapsulatedPixelDataValue, error) {
	if v != vr.OtherByte && v != vr.OtherWord {
		return nil, fmt.Errorf("VR %s cannot carry encapsulated pixel data (expected OB or OW)", v.String())
	}
	if fragments == nil {
		fragments = [][]byte{}
	}
	return &EncapsulatedPixelDataValue{vr: v, fragments: fragments}, nil
}

// VR returns the Value Representation of the pixel data (OB or OW).
func (e *EncapsulatedPixelDataValue) VR() vr.VR {
	return e.vr
}

// Fragments returns the raw fragment byte strings in item order. Fragment 0
// is the Basic Offset Table.
func (e *EncapsulatedPixelDataValue) Fragments() [][]byte {
	return e.fragments
}

// String returns a human-readable summary of the fragment layout.
func (e *EncapsulatedPixelDataValue) String() string {
	total := 0
	for _, f := range e.fragments {
		total += len(f)
	}
	return fmt.Sprintf("(encapsulated pixel data, %d fragments, %d bytes)", len(e.fragments), total)
}

// Bytes is unsupported for EncapsulatedPixelDataValue: fragments are
// written as a stream of PixelDataItem tokens, never as one contiguous run.
func (e *EncapsulatedPixelDataValue) Bytes() []byte {
	return nil
}

// Equals returns true if other is an EncapsulatedPixelDataValue with the
// same VR and identical fragments in the same order.
func (e *EncapsulatedPixelDataValue) Equals(other Value) bool {
	otherPx, ok := other.(*EncapsulatedPixelDataValue)
	if !ok {
		return false
	}
	if e.vr != otherPx.vr {
		return false
	}
	if len(e.fragments) != len(otherPx.fragments) {
		return false
	}
	for i := range e.fragments {
		if len(e.fragments[i]) != len(otherPx.fragments[i]) {
			return false
		}
		for j := range e.fragments[i] {
			if e.fragments[i][j] != otherPx.fragments[i][j] {
				return false
			}
		}
	}
	return true
}

var _ Value = (*EncapsulatedPixelDataValue)(nil)
