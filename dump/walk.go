// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dump

import (
	"fmt"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
)

// DefaultDepthLimit bounds sequence nesting during a walk. Real files nest a
// handful of levels; the limit exists to reject adversarial input.
const DefaultDepthLimit = 256

// StructuralError reports input that is not a walkable DataSet tree: a nil
// root or sequence nesting beyond the depth limit. It is surfaced before any
// record is emitted.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}

// NameLookup resolves a tag to its human readable name. Injecting it keeps
// the walker independent of any particular data dictionary.
type NameLookup func(dicom.DataElementTag) string

type walker struct {
	depthLimit     int
	maxValueLength int
	nameOf         NameLookup
}

// WalkOption configures the behavior of Walk.
type WalkOption func(*walker)

// WithDepthLimit overrides the maximum sequence nesting depth.
func WithDepthLimit(n int) WalkOption {
	return func(w *walker) { w.depthLimit = n }
}

// WithMaxValueLength overrides the truncation limit for rendered values.
func WithMaxValueLength(n int) WalkOption {
	return func(w *walker) { w.maxValueLength = n }
}

// WithNameLookup overrides the tag name resolver. The default is dicom.NameOf.
func WithNameLookup(fn NameLookup) WalkOption {
	return func(w *walker) { w.nameOf = fn }
}

// Walk traverses the data set in element order and emits one record per
// element onto the sink. Sequence elements emit a header record followed by
// an [Item N] boundary per item, with the item's elements two levels deeper.
// Binary classified elements emit a placeholder record carrying the payload
// size; an element whose value cannot be rendered emits an error placeholder
// and the walk continues.
//
// Walk never mutates the data set. It returns a *StructuralError before
// emitting anything when the root is nil or nesting exceeds the depth limit;
// any other non-nil error comes from the sink.
func Walk(ds *dicom.DataSet, sink Sink, opts ...WalkOption) error {
	w := &walker{
		depthLimit:     DefaultDepthLimit,
		maxValueLength: DefaultMaxValueLength,
		nameOf:         dicom.NameOf,
	}
	for _, opt := range opts {
		opt(w)
	}

	if ds == nil {
		return &StructuralError{"root data set is nil"}
	}
	if err := w.checkDepth(ds); err != nil {
		return err
	}
	return w.run(ds, sink)
}

// checkDepth scans the tree before any output is produced so that a depth
// violation surfaces as a clean failure instead of a truncated dump.
func (w *walker) checkDepth(ds *dicom.DataSet) error {
	type frame struct {
		ds    *dicom.DataSet
		depth int
	}

	stack := []frame{{ds, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, elem := range f.ds.Elements {
			seq, ok := elem.Value.(*dicom.SequenceValue)
			if !ok {
				continue
			}
			childDepth := f.depth + 2
			if childDepth > w.depthLimit {
				return &StructuralError{fmt.Sprintf("sequence nesting exceeds depth limit %d", w.depthLimit)}
			}
			for _, item := range seq.Items {
				stack = append(stack, frame{item, childDepth})
			}
		}
	}
	return nil
}

type taskKind int

const (
	taskElement taskKind = iota
	taskItem
	taskEnd
)

// task is one entry of the walk's explicit worklist. The worklist replaces
// native recursion so stack usage stays bounded regardless of input nesting.
type task struct {
	kind  taskKind
	elem  *dicom.DataElement
	index int
	depth int
}

func (w *walker) run(ds *dicom.DataSet, sink Sink) error {
	stack := make([]task, 0, len(ds.Elements))
	for i := len(ds.Elements) - 1; i >= 0; i-- {
		stack = append(stack, task{kind: taskElement, elem: ds.Elements[i]})
	}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t.kind {
		case taskEnd:
			if err := sink.EndChildren(); err != nil {
				return err
			}
		case taskItem:
			if err := sink.Append(Record{Kind: ItemRecord, Depth: t.depth, Index: t.index}); err != nil {
				return err
			}
			if err := sink.BeginChildren(); err != nil {
				return err
			}
		case taskElement:
			var err error
			stack, err = w.visit(t, sink, stack)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) visit(t task, sink Sink, stack []task) ([]task, error) {
	elem := t.elem

	if seq, ok := elem.Value.(*dicom.SequenceValue); ok {
		header := w.elementRecord(elem, t.depth, sequencePlaceholder(len(seq.Items)))
		if err := sink.Append(header); err != nil {
			return stack, err
		}
		if err := sink.BeginChildren(); err != nil {
			return stack, err
		}

		// pushed in reverse so items pop in order; every BeginChildren gets a
		// matching taskEnd
		stack = append(stack, task{kind: taskEnd})
		for i := len(seq.Items) - 1; i >= 0; i-- {
			item := seq.Items[i]
			stack = append(stack, task{kind: taskEnd})
			for j := len(item.Elements) - 1; j >= 0; j-- {
				stack = append(stack, task{kind: taskElement, elem: item.Elements[j], depth: t.depth + 2})
			}
			stack = append(stack, task{kind: taskItem, index: i + 1, depth: t.depth + 1})
		}
		return stack, nil
	}

	if IsBinary(elem) {
		rec := w.elementRecord(elem, t.depth, binaryPlaceholder(valueByteSize(elem)))
		return stack, sink.Append(rec)
	}

	value, err := renderValue(elem.Value)
	if err != nil {
		// one bad element never aborts the walk
		value = unrenderablePlaceholder
	} else {
		value = truncateValue(value, w.maxValueLength)
	}
	return stack, sink.Append(w.elementRecord(elem, t.depth, value))
}

func (w *walker) elementRecord(elem *dicom.DataElement, depth int, value string) Record {
	vrName := ""
	if elem.VR != nil {
		vrName = elem.VR.Name
	}
	return Record{
		Kind:  ElementRecord,
		Depth: depth,
		Tag:   elem.Tag,
		Name:  w.nameOf(elem.Tag),
		VR:    vrName,
		Value: value,
	}
}
