package p10

import (
	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
)

// Insert merges a data set into a root-level token stream, keeping the
// output in ascending tag order. Elements inside sequence items pass
// through unchanged; insertion only ever happens at root. On a tag
// collision, the inserted element replaces the incoming one entirely (its
// DataElementHeader and every DataElementValueBytes chunk are dropped).
type Insert struct {
	pending []*element.Element // remaining insert elements, ascending tag order
	depth   int                 // >0 while inside a sequence/item, where insertion never applies

	suppressingIncoming bool // dropping the incoming element's value because the inserter replaced it
}

// NewInsert creates an Insert transform that merges ds's elements into the
// root level of the incoming stream.
func NewInsert(ds *dataset.DataSet) *Insert {
	elems := append([]*element.Element(nil), ds.Elements()...)
	return &Insert{pending: elems}
}

// AddToken folds one token through the transform, returning the tokens to
// forward downstream.
func (ins *Insert) AddToken(tok Token) ([]Token, error) {
	switch t := tok.(type) {
	case SequenceStart:
		ins.depth++
		return []Token{tok}, nil

	case SequenceDelimiter:
		ins.depth--
		return []Token{tok}, nil

	case SequenceItemStart, SequenceItemDelimiter:
		return []Token{tok}, nil

	case DataElementHeader:
		if ins.depth > 0 {
			return []Token{tok}, nil
		}
		var out []Token
		out = append(out, ins.flushBefore(t.Tag)...)
		if len(ins.pending) > 0 && ins.pending[0].Tag().Equals(t.Tag) {
			replacement := ins.pending[0]
			ins.pending = ins.pending[1:]
			out = append(out, elementTokens(replacement)...)
			if t.Length != 0 && t.Length != 0xFFFFFFFF {
				ins.suppressingIncoming = true
			}
			return out, nil
		}
		out = append(out, tok)
		return out, nil

	case DataElementValueBytes:
		if ins.depth > 0 || !ins.suppressingIncoming {
			return []Token{tok}, nil
		}
		if t.Remaining == 0 {
			ins.suppressingIncoming = false
		}
		return nil, nil

	case End:
		out := ins.flushAll()
		out = append(out, tok)
		return out, nil

	default:
		return []Token{tok}, nil
	}
}

// flushBefore emits every pending insert element whose tag is strictly less
// than t, in ascending order, so the merged stream stays sorted.
func (ins *Insert) flushBefore(t tag.Tag) []Token {
	var out []Token
	for len(ins.pending) > 0 && ins.pending[0].Tag().Less(t) {
		out = append(out, elementTokens(ins.pending[0])...)
		ins.pending = ins.pending[1:]
	}
	return out
}

func (ins *Insert) flushAll() []Token {
	var out []Token
	for _, elem := range ins.pending {
		out = append(out, elementTokens(elem)...)
	}
	ins.pending = nil
	return out
}

// elementTokens renders a single already-decoded element as the
// DataElementHeader/DataElementValueBytes token pair a Reader would have
// produced for it, except that the header's Path is left empty. Sequence-valued elements are never expected among
// inserted elements (spec.md scopes Insert to simple root-level elements);
// SQ elements would need their own SequenceStart/item/Delimiter expansion,
// which is left as future work if a caller needs it.
func elementTokens(elem *element.Element) []Token {
	value := elem.Value().Bytes()
	return []Token{
		DataElementHeader{Tag: elem.Tag(), VR: elem.VR(), Length: uint32(len(value))},
		DataElementValueBytes{Tag: elem.Tag(), VR: elem.VR(), Chunk: value, Remaining: 0},
	}
}
