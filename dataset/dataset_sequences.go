package dataset

import (
	"github.com/dcmxlabs/dcmx/dcmpath"
	"github.com/dcmxlabs/dcmx/element"
	"github.com/dcmxlabs/dcmx/value"
)

// ToItem converts the dataset into a value.Item: the minimal (tag, VR,
// value) entry list the value package uses to carry a sequence's nested
// content, in ascending tag order.
func (ds *DataSet) ToItem() value.Item {
	elems := ds.Elements()
	item := make(value.Item, len(elems))
	for i, e := range elems {
		item[i] = value.Entry{Tag: e.Tag(), VR: e.VR(), Value: e.Value()}
	}
	return item
}

// FromItem builds a DataSet from a value.Item, the inverse of ToItem. It is
// used when the builder or a sequence-descending walk needs to treat a
// sequence item as a full dataset.
func FromItem(item value.Item) (*DataSet, error) {
	ds := NewDataSet()
	for _, entry := range item {
		elem, err := element.NewElement(entry.Tag, entry.VR, entry.Value)
		if err != nil {
			return nil, err
		}
		if err := ds.Add(elem); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// VisitFunc is called once per element encountered during WalkRecursive,
// including elements nested inside sequence items. path is the location of
// elem relative to the dataset WalkRecursive was called on.
type VisitFunc func(path dcmpath.Path, elem *element.Element) error

// WalkRecursive visits every element in the dataset in tag order,
// descending into each item of any SequenceValue element it encounters.
// fn returning an error stops the walk and the error propagates.
func (ds *DataSet) WalkRecursive(fn VisitFunc) error {
	return walkRecursive(ds, dcmpath.Path{}, fn)
}

func walkRecursive(ds *DataSet, base dcmpath.Path, fn VisitFunc) error {
	for _, elem := range ds.Elements() {
		elemPath := base.Push(dcmpath.DataElementEntry(elem.Tag()))
		if err := fn(elemPath, elem); err != nil {
			return err
		}

		seq, ok := elem.Value().(*value.SequenceValue)
		if !ok {
			continue
		}

		for idx, item := range seq.Items() {
			itemDS, err := FromItem(item)
			if err != nil {
				return err
			}
			itemPath := base.Push(dcmpath.SequenceItemEntry(elem.Tag(), idx))
			if err := walkRecursive(itemDS, itemPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Filter returns a new DataSet containing only the root-level elements for
// which keep returns true. Unlike WalkRecursive, Filter does not descend
// into sequences: SequenceValue elements are kept or dropped as a whole,
// matching the token-stream Filter transform's root-level semantics.
func (ds *DataSet) Filter(keep func(elem *element.Element) bool) *DataSet {
	filtered := NewDataSet()
	for _, elem := range ds.Elements() {
		if keep(elem) {
			_ = filtered.Add(elem)
		}
	}
	return filtered
}
