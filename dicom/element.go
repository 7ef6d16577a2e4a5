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

package dicom

// Value is the decoded value field of a DataElement. It is a closed variant:
// exactly one of the concrete types below. Code that consumes values switches
// on the concrete type rather than inspecting the VR a second time.
//
// Invariant: a DataElement with VR SQ always carries a SequenceValue, and a
// SequenceValue never appears under any other VR.
type Value interface {
	isValue()
}

// TextValue holds the values of textual VRs (CS, LO, PN, UI, ...). Value
// multiplicity in the file is expressed with the backslash delimiter; each
// component is one entry of the slice.
type TextValue []string

// IntValue holds the values of integral binary VRs (SS, US, SL, UL) widened
// to int64.
type IntValue []int64

// FloatValue holds the values of floating point binary VRs (FL, FD).
type FloatValue []float64

// TagValue holds the values of the AT (attribute tag) VR.
type TagValue []DataElementTag

// BytesValue holds undecoded bulk data payloads (OB, OW, UN and friends).
type BytesValue []byte

// SequenceValue holds the ordered items of a sequence (SQ) element.
type SequenceValue struct {
	Items []*DataSet
}

func (TextValue) isValue()      {}
func (IntValue) isValue()       {}
func (FloatValue) isValue()     {}
func (TagValue) isValue()       {}
func (BytesValue) isValue()     {}
func (*SequenceValue) isValue() {}

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation
	VR *VR

	// Value is the decoded value field
	Value Value

	// ValueLength is the length of the encoded value field in bytes. It is the
	// length found in the file, so it can be UndefinedLength for sequences and
	// encapsulated pixel data.
	ValueLength uint32
}

// Name returns the data dictionary name of the element's tag, or the
// "Unknown" sentinel when the tag has no dictionary entry.
func (e *DataElement) Name() string {
	return NameOf(e.Tag)
}

// Sequence returns the element's sequence items, or nil when the element is
// not a sequence.
func (e *DataElement) Sequence() []*DataSet {
	if seq, ok := e.Value.(*SequenceValue); ok {
		return seq.Items
	}
	return nil
}
