// Package dcmpath locates a token within the nested structure of a DICOM
// data set: which element, and through which chain of sequences and items
// it is reached.
//
// A Path is an immutable cons-list, cheap to share between a parent frame
// and its children without copying, since every token emitted by a reader
// carries one.
package dcmpath

import (
	"fmt"
	"strings"

	"github.com/dcmxlabs/dcmx/tag"
)

// Entry is one link in a Path: either the tag of a data element, or the
// tag and 0-based index of a sequence item.
type Entry struct {
	Tag   tag.Tag
	Index int
	// isItem distinguishes a SequenceItemEntry (Tag, Index) from a
	// DataElementEntry (Tag only); Index is meaningless when false.
	isItem bool
}

// DataElementEntry builds a path entry for a plain data element.
func DataElementEntry(t tag.Tag) Entry {
	return Entry{Tag: t}
}

// SequenceItemEntry builds a path entry for the index-th item of the
// sequence at tag t.
func SequenceItemEntry(t tag.Tag, index int) Entry {
	return Entry{Tag: t, Index: index, isItem: true}
}

// IsItem reports whether this entry identifies a sequence item rather than
// a plain data element.
func (e Entry) IsItem() bool {
	return e.isItem
}

func (e Entry) String() string {
	if e.isItem {
		return fmt.Sprintf("%s[%d]", e.Tag.String(), e.Index)
	}
	return e.Tag.String()
}

func (e Entry) equals(other Entry) bool {
	return e.Tag.Equals(other.Tag) && e.Index == other.Index && e.isItem == other.isItem
}

// Path is an immutable cursor into a data set's nesting structure: the
// chain of sequence/item entries from the root down to the current data
// element. The zero value is the empty (root-level) path.
type Path struct {
	entry  Entry
	parent *Path
	len    int
}

// Push returns a new Path with e appended as the deepest entry. p is left
// unmodified; the new Path shares p's backing chain.
func (p Path) Push(e Entry) Path {
	parent := p
	return Path{entry: e, parent: &parent, len: p.len + 1}
}

// Pop returns the path with its deepest entry removed, and that entry. Pop
// on an empty Path returns the empty Path and the zero Entry.
func (p Path) Pop() (Path, Entry) {
	if p.len == 0 {
		return Path{}, Entry{}
	}
	return *p.parent, p.entry
}

// Len returns the number of entries in the path, i.e. its nesting depth.
func (p Path) Len() int {
	return p.len
}

// Last returns the deepest entry and true, or the zero Entry and false if
// the path is empty.
func (p Path) Last() (Entry, bool) {
	if p.len == 0 {
		return Entry{}, false
	}
	return p.entry, true
}

// Entries returns the path's entries from root to leaf.
func (p Path) Entries() []Entry {
	out := make([]Entry, p.len)
	cur := p
	for i := p.len - 1; i >= 0; i-- {
		out[i] = cur.entry
		cur = *cur.parent
	}
	return out
}

// Equals returns true if p and other contain the same entries in the same
// order.
func (p Path) Equals(other Path) bool {
	if p.len != other.len {
		return false
	}
	a, b := p.Entries(), other.Entries()
	for i := range a {
		if !a[i].equals(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if prefix's entries are an ordered prefix of p's
// entries. Every path has itself and the empty path as a prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix.len > p.len {
		return false
	}
	a, b := p.Entries(), prefix.Entries()
	for i := range b {
		if !a[i].equals(b[i]) {
			return false
		}
	}
	return true
}

// String renders the path in "(GGGG,EEEE)[i]/(GGGG,EEEE)" notation, root
// to leaf, separated by "/".
func (p Path) String() string {
	if p.len == 0 {
		return "/"
	}
	parts := make([]string, p.len)
	for i, e := range p.Entries() {
		parts[i] = e.String()
	}
	return strings.Join(parts, "/")
}
