// Package tag defines DICOM data element tags and the standard dictionary.
//
// A Tag is a (group, element) pair that uniquely identifies a data element
// within a DICOM data set.
// See https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
// and https://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
package tag

import (
	"fmt"
	"strings"

	"github.com/dcmxlabs/dcmx/vr"
)

const (
	// MetadataGroup is the group number for File Meta Information elements.
	// See https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
	MetadataGroup = 0x0002

	// ItemGroup is the group used for sequence/item delimiter pseudo-tags.
	ItemGroup = 0xFFFE
)

// Well-known item and delimiter pseudo-tags used in sequence and
// encapsulated pixel-data framing. These never appear in the standard
// dictionary: they carry no VR and no value beyond a length.
var (
	Item                   = Tag{ItemGroup, 0xE000}
	ItemDelimitationItem   = Tag{ItemGroup, 0xE00D}
	SequenceDelimitationItem = Tag{ItemGroup, 0xE0DD}
)

// Tag represents a DICOM element tag as a (group, element) pair.
//
// Per DICOM Part 5, Section 7.1:
//   - Odd group numbers identify private elements
//     (https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.8.1)
//   - Group 0x0002 is reserved for File Meta Information
//   - Tags order group-major, element-minor
type Tag struct {
	Group   uint16
	Element uint16
}

// New creates a new Tag with the specified group and element numbers.
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// Equals returns true if this tag equals the provided tag.
func (t Tag) Equals(other Tag) bool {
	return t.Group == other.Group && t.Element == other.Element
}

// Compare returns -1, 0, or 1 if t < other, t == other, or t > other,
// respectively. Tags order group-major, element-minor.
func (t Tag) Compare(other Tag) int {
	a, b := t.Uint32(), other.Uint32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less returns true if t orders strictly before other. It is the
// comparator expected by sort.Slice and similar ordered-container helpers.
func (t Tag) Less(other Tag) bool {
	return t.Uint32() < other.Uint32()
}

// String returns the tag in standard "(GGGG,EEEE)" notation, uppercase hex.
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// Uint32 packs the tag into a single comparable/sortable integer, group in
// the upper 16 bits, element in the lower 16 bits.
func (t Tag) Uint32() uint32 {
	return (uint32(t.Group) << 16) | uint32(t.Element)
}

// IsPrivate returns true if this tag's group is odd.
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.8.1
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsPrivateCreator returns true if this tag is a private creator data
// element: private (odd group) with an element number in [0x10, 0xFF].
// Private creator elements reserve a block of the private group for a
// named implementer and are themselves always LO-valued.
func (t Tag) IsPrivateCreator() bool {
	return t.IsPrivate() && t.Element >= 0x10 && t.Element <= 0xFF
}

// IsMetaElement returns true if this tag belongs to the File Meta
// Information group (0x0002).
func (t Tag) IsMetaElement() bool {
	return t.Group == MetadataGroup
}

// IsItemOrDelimiter returns true for the three pseudo-tags used to frame
// sequence items and encapsulated pixel-data fragments.
func (t Tag) IsItemOrDelimiter() bool {
	return t.Group == ItemGroup
}

// Parse parses a tag string in "(GGGG,EEEE)" or "GGGG,EEEE" form.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Tag{}, fmt.Errorf("invalid tag format: %q, expected (GGGG,EEEE)", s)
	}

	var group, element uint16
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%x", &group); err != nil {
		return Tag{}, fmt.Errorf("invalid group number: %w", err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%x", &element); err != nil {
		return Tag{}, fmt.Errorf("invalid element number: %w", err)
	}

	return New(group, element), nil
}

// Info stores dictionary metadata about a standard Tag.
type Info struct {
	Tag Tag
	// VRs lists every encoding the standard allows for this tag; almost
	// always a single entry.
	VRs []vr.VR
	// Name is the tag's human-readable attribute name, e.g. "Pixel Data".
	Name string
	// Keyword is the identifier form of Name, e.g. "PixelData".
	Keyword string
	// VM is the value multiplicity, e.g. "1", "1-n", "3".
	VM string
	// Retired is true for attributes the standard has withdrawn.
	Retired bool
}

// Find looks up dictionary metadata for t.
//
// Special case: for an even group with element 0x0000, Find synthesizes a
// GenericGroupLength entry, since every group in a DICOM data set may carry
// an implicit group-length element even though the standard dictionary does
// not enumerate one per group.
func Find(t Tag) (Info, error) {
	if info, ok := TagDict[t]; ok {
		return info, nil
	}
	if t.Group%2 == 0 && t.Element == 0x0000 {
		return Info{
			Tag:     t,
			VRs:     []vr.VR{vr.UnsignedLong},
			Name:    "Generic Group Length",
			Keyword: "GenericGroupLength",
			VM:      "1",
		}, nil
	}
	return Info{}, fmt.Errorf("tag %s not found in dictionary", t.String())
}

// FindByKeyword searches the dictionary by Keyword or Name.
//
// This is a linear scan, so it is less efficient than Find; use it for
// human-driven lookups (CLI flags, filter configuration), not hot paths.
func FindByKeyword(keyword string) (Info, error) {
	if keyword == "" {
		return Info{}, fmt.Errorf("keyword cannot be empty")
	}
	for _, info := range TagDict {
		if info.Keyword == keyword || info.Name == keyword {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("tag with keyword %q not found in dictionary", keyword)
}

// FindByName is an alias for FindByKeyword kept for readability at call
// sites that look up by the human-readable attribute name.
func FindByName(name string) (Info, error) {
	return FindByKeyword(name)
}

// MustFind is like Find but panics if t is not in the dictionary. Reserve
// for well-known tags referenced as package-level vars below.
func MustFind(t Tag) Info {
	info, err := Find(t)
	if err != nil {
		panic(fmt.Sprintf("tag %s not found: %v", t.String(), err))
	}
	return info
}
