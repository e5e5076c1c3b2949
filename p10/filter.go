package p10

import (
	"github.com/gobwas/glob"

	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// FilterPredicate decides whether an element survives a Filter. It is
// called once per data element, including elements nested inside sequence
// items, with length 0xFFFFFFFF for sequence elements (sequences are always
// undefined-length in token form). Returning false drops the element; for a
// VR SQ element or encapsulated pixel data, dropping it drops its entire
// subtree.
type FilterPredicate func(t tag.Tag, v vr.VR, length uint32, path dcmpath.Path) bool

// FilterByPathGlob builds a FilterPredicate that keeps only elements whose
// path (in "(GGGG,EEEE)[i]/(GGGG,EEEE)" form, see dcmpath.Path.String)
// matches pattern, compiled with '/' as the path separator.
func FilterByPathGlob(pattern string) (FilterPredicate, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &dcmxerr.OtherError{Details: "invalid filter path glob " + pattern + ": " + err.Error()}
	}
	return func(_ tag.Tag, _ vr.VR, _ uint32, path dcmpath.Path) bool {
		return g.Match(path.String())
	}, nil
}

// Filter drops data elements from a token stream according to a predicate,
// maintaining bracket well-formedness: dropping a sequence or encapsulated
// pixel data element drops every token in its subtree, however deeply
// nested. It requires no stack of its own on the pass-through side, since
// every element is evaluated independently against the predicate the moment
// it is not already inside a dropped subtree; only the depth of the
// currently-dropped subtree needs tracking.
type Filter struct {
	predicate FilterPredicate
	dropped   *Builder // non-nil when the caller wants dropped elements recorded

	dropDepth int

	suppressingValue bool
}

// NewFilter creates a Filter that keeps only elements for which predicate
// returns true. If recordDropped is true, dropped elements (and whatever
// they contained) accumulate in a side data set retrievable with Dropped.
func NewFilter(predicate FilterPredicate, recordDropped bool) *Filter {
	f := &Filter{predicate: predicate}
	if recordDropped {
		f.dropped = NewBuilder()
	}
	return f
}

func (f *Filter) recordDropped(tok Token) {
	if f.dropped == nil {
		return
	}
	_ = f.dropped.AddToken(tok)
}

// Dropped returns every top-level element dropped so far, including the
// full contents of any dropped sequence subtree. Valid to call at any point
// in the stream, not just after End.
func (f *Filter) Dropped() []*element.Element {
	if f.dropped == nil {
		return nil
	}
	return f.dropped.PartialElements()
}

// AddToken folds one token through the filter, returning the tokens (zero
// or more) that should be forwarded downstream.
func (f *Filter) AddToken(tok Token) ([]Token, error) {
	if f.dropDepth > 0 {
		return nil, f.stepDropping(tok)
	}
	return f.stepPassing(tok)
}

func (f *Filter) stepDropping(tok Token) error {
	f.recordDropped(tok)
	switch tok.(type) {
	case SequenceStart, SequenceItemStart:
		f.dropDepth++
	case SequenceDelimiter, SequenceItemDelimiter:
		f.dropDepth--
	}
	return nil
}

func (f *Filter) stepPassing(tok Token) ([]Token, error) {
	switch t := tok.(type) {
	case DataElementHeader:
		if f.suppressingValue {
			return nil, &dcmxerr.OtherError{Details: "DataElementHeader encountered while a pending value is still in flight"}
		}
		if f.predicate(t.Tag, t.VR, t.Length, t.Path) {
			return []Token{tok}, nil
		}
		f.recordDropped(tok)
		if t.Length != 0 && t.Length != 0xFFFFFFFF {
			f.suppressingValue = true
		}
		return nil, nil

	case DataElementValueBytes:
		if !f.suppressingValue {
			return []Token{tok}, nil
		}
		f.recordDropped(tok)
		if t.Remaining == 0 {
			f.suppressingValue = false
		}
		return nil, nil

	case SequenceStart:
		if f.predicate(t.Tag, t.VR, 0xFFFFFFFF, t.Path) {
			return []Token{tok}, nil
		}
		f.recordDropped(tok)
		f.dropDepth = 1
		return nil, nil

	default:
		return []Token{tok}, nil
	}
}
