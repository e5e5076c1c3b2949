package p10

import (
	"github.com/dcmxlabs/dcmx/dataset"
	"github.com/dcmxlabs/dcmx/dcmxerr"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/tag"
	"github.com/dcmxlabs/dcmx/value"
	"github.com/dcmxlabs/dcmx/vr"
)

type builderFrameKind int

const (
	builderFrameRoot builderFrameKind = iota
	builderFrameItem
	builderFrameSequence
	builderFrameEncapsulatedPixelData
)

// builderFrame is one entry of the Builder's explicit stack: the root data
// set, an open item collecting elements, an open sequence collecting
// items, or an open encapsulated pixel data element collecting fragments.
// Using a stack instead of recursion keeps AddToken iterative regardless of
// nesting depth.
type builderFrame struct {
	kind builderFrameKind

	elements []*element.Element // builderFrameRoot, builderFrameItem
	items    []value.Item       // builderFrameSequence

	sequenceTag tag.Tag
	sequenceVR  vr.VR

	fragments [][]byte // builderFrameEncapsulatedPixelData

	pendingTag   tag.Tag
	pendingVR    vr.VR
	pendingValue []byte
}

// Builder folds a Token stream into a *dataset.DataSet, maintaining an
// explicit frame stack (root plus one per open sequence, item, or
// encapsulated pixel data element) rather than recursing, so arbitrarily
// nested sequences never grow the Go call stack.
type Builder struct {
	stack []*builderFrame
	final *dataset.DataSet
	ended bool
}

// NewBuilder creates an empty Builder ready to accept tokens starting from
// FilePreambleAndDICMPrefix.
func NewBuilder() *Builder {
	return &Builder{stack: []*builderFrame{{kind: builderFrameRoot}}}
}

func (b *Builder) top() *builderFrame {
	return b.stack[len(b.stack)-1]
}

// AddToken folds one token into the Builder's in-progress state. Tokens
// must arrive in the order a Reader would produce them; FileMetaInformation
// elements are merged into the same data set as the main data set.
func (b *Builder) AddToken(tok Token) error {
	switch t := tok.(type) {
	case FilePreambleAndDICMPrefix:
		return nil

	case FileMetaInformation:
		for _, elem := range t.DataSet.Elements() {
			b.top().elements = append(b.top().elements, elem)
		}
		return nil

	case DataElementHeader:
		top := b.top()
		top.pendingTag = t.Tag
		top.pendingVR = t.VR
		top.pendingValue = nil
		if t.Length == 0 {
			return b.finishPendingElement()
		}
		return nil

	case DataElementValueBytes:
		top := b.top()
		top.pendingValue = append(top.pendingValue, t.Chunk...)
		if t.Remaining == 0 {
			if top.kind == builderFrameEncapsulatedPixelData {
				top.fragments = append(top.fragments, top.pendingValue)
				top.pendingValue = nil
				return nil
			}
			return b.finishPendingElement()
		}
		return nil

	case SequenceStart:
		b.stack = append(b.stack, &builderFrame{kind: builderFrameSequence, sequenceTag: t.Tag, sequenceVR: t.VR})
		return nil

	case SequenceDelimiter:
		return b.closeSequence()

	case SequenceItemStart:
		b.stack = append(b.stack, &builderFrame{kind: builderFrameItem})
		return nil

	case SequenceItemDelimiter:
		return b.closeItem()

	case PixelDataItem:
		top := b.top()
		if top.kind != builderFrameSequence && top.kind != builderFrameEncapsulatedPixelData {
			return &dcmxerr.OtherError{Details: "pixel data fragment encountered outside encapsulated pixel data"}
		}
		top.kind = builderFrameEncapsulatedPixelData
		top.pendingValue = nil
		if t.Length == 0 {
			top.fragments = append(top.fragments, []byte{})
		}
		return nil

	case End:
		return b.finish()

	default:
		return &dcmxerr.OtherError{Details: "unrecognized token type"}
	}
}

func (b *Builder) finishPendingElement() error {
	top := b.top()
	val, err := decodeValue(top.pendingVR, top.pendingValue)
	if err != nil {
		return err
	}
	elem, err := element.NewElement(top.pendingTag, top.pendingVR, val)
	if err != nil {
		return err
	}
	top.elements = append(top.elements, elem)
	top.pendingValue = nil
	return nil
}

func (b *Builder) closeItem() error {
	if len(b.stack) < 2 {
		return &dcmxerr.OtherError{Details: "SequenceItemDelimiter with no open item"}
	}
	closed := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	item := make(value.Item, len(closed.elements))
	for i, e := range closed.elements {
		item[i] = value.Entry{Tag: e.Tag(), VR: e.VR(), Value: e.Value()}
	}
	parent := b.top()
	if parent.kind != builderFrameSequence {
		return &dcmxerr.OtherError{Details: "item closed outside an open sequence"}
	}
	parent.items = append(parent.items, item)
	return nil
}

func (b *Builder) closeSequence() error {
	if len(b.stack) < 2 {
		return &dcmxerr.OtherError{Details: "SequenceDelimiter with no open sequence"}
	}
	closed := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	var val value.Value
	var err error
	if closed.kind == builderFrameEncapsulatedPixelData {
		val, err = value.NewEncapsulatedPixelDataValue(closed.sequenceVR, closed.fragments)
	} else {
		val = value.NewSequenceValue(closed.items)
	}
	if err != nil {
		return err
	}
	elem, err := element.NewElement(closed.sequenceTag, closed.sequenceVR, val)
	if err != nil {
		return err
	}
	parent := b.top()
	parent.elements = append(parent.elements, elem)
	return nil
}

func (b *Builder) finish() error {
	root := b.stack[0]
	ds := dataset.NewDataSet()
	for _, elem := range root.elements {
		if err := ds.Add(elem); err != nil {
			return err
		}
	}
	b.final = ds
	b.ended = true
	return nil
}

// PartialElements returns every root-level element folded in so far, even
// before an End token arrives. Used by Filter to accumulate a side data set
// of dropped elements without needing its own End token to close it out.
func (b *Builder) PartialElements() []*element.Element {
	return b.stack[0].elements
}

// DataSet returns the fully assembled data set. It is only valid once
// AddToken has processed an End token.
func (b *Builder) DataSet() (*dataset.DataSet, error) {
	if !b.ended {
		return nil, &dcmxerr.OtherError{Details: "builder has not received an End token yet"}
	}
	return b.final, nil
}

// BuildDataSet is a convenience wrapper that feeds every token in toks
// through a fresh Builder and returns the resulting data set.
func BuildDataSet(toks []Token) (*dataset.DataSet, error) {
	b := NewBuilder()
	for _, tok := range toks {
		if err := b.AddToken(tok); err != nil {
			return nil, err
		}
	}
	return b.DataSet()
}
