package p10

import (
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/vr"
)

// PartialRead is a reader mode that keeps only a requested set of
// root-level tags and signals the caller to stop supplying further input
// once the largest wanted tag has been passed or End is reached. It is
// built from Filter plus early termination, per the wanted-tag ordering
// rule: root-level elements pass only if their tag was requested; elements
// nested inside a kept sequence's items pass through unconditionally.
type PartialRead struct {
	wanted          map[tag.Tag]bool
	maxWanted       tag.Tag
	haveMaxWanted   bool
	includeFileMeta bool

	filter *Filter
	done   bool
}

// NewPartialRead creates a PartialRead that keeps only the root-level tags
// in wanted. includeFileMeta controls whether the File Meta Information
// token is forwarded at all.
func NewPartialRead(wanted []tag.Tag, includeFileMeta bool) *PartialRead {
	p := &PartialRead{
		wanted:          make(map[tag.Tag]bool, len(wanted)),
		includeFileMeta: includeFileMeta,
	}
	for _, t := range wanted {
		p.wanted[t] = true
		if !p.haveMaxWanted || p.maxWanted.Less(t) {
			p.maxWanted = t
			p.haveMaxWanted = true
		}
	}
	p.filter = NewFilter(p.keepPredicate, false)
	return p
}

func (p *PartialRead) keepPredicate(t tag.Tag, _ vr.VR, _ uint32, path dcmpath.Path) bool {
	if path.Len() != 1 {
		return true
	}
	return p.wanted[t]
}

// Done reports whether the wanted tags have all been resolved: a
// root-level tag beyond the largest wanted tag was reached, or the stream
// ended. Once Done, the caller should stop supplying further bytes/tokens.
func (p *PartialRead) Done() bool {
	return p.done
}

// AddToken folds one token through the partial read, returning the tokens
// (zero or more) to forward downstream. Once Done reports true, AddToken
// returns nothing for any further token.
func (p *PartialRead) AddToken(tok Token) ([]Token, error) {
	if p.done {
		return nil, nil
	}

	switch t := tok.(type) {
	case FileMetaInformation:
		if !p.includeFileMeta {
			return nil, nil
		}
		return []Token{tok}, nil

	case DataElementHeader:
		if p.pastWindow(t.Path, t.Tag) {
			p.done = true
			return nil, nil
		}

	case SequenceStart:
		if p.pastWindow(t.Path, t.Tag) {
			p.done = true
			return nil, nil
		}

	case End:
		defer func() { p.done = true }()
	}

	return p.filter.AddToken(tok)
}

func (p *PartialRead) pastWindow(path dcmpath.Path, t tag.Tag) bool {
	return path.Len() == 1 && p.haveMaxWanted && p.maxWanted.Less(t)
}
