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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/utf8string"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
)

const (
	// indentWidth is the number of spaces per nesting level in textual output
	indentWidth = 2

	// DefaultMaxValueLength is the default limit, in characters, on a record's
	// rendered value field before truncation
	DefaultMaxValueLength = 128

	// ellipsis marks truncated values
	ellipsis = "..."

	// multiValueSeparator joins the components of multi-valued fields, matching
	// the backslash delimiter DICOM uses in the encoded file
	multiValueSeparator = `\`

	// unrenderablePlaceholder replaces values that cannot be converted to text
	unrenderablePlaceholder = "<unrenderable value>"
)

// RecordKind distinguishes element records from sequence item boundaries.
type RecordKind int

const (
	// ElementRecord is a record describing one data element
	ElementRecord RecordKind = iota

	// ItemRecord is a boundary record marking the start of one sequence item
	ItemRecord
)

// Record is one formatted entry of a walk: either an element rendered as
// `(GGGG,EEEE) | Name | VR | Value`, or an `[Item N]` sequence item boundary.
type Record struct {
	Kind  RecordKind
	Depth int

	// element record fields
	Tag   dicom.DataElementTag
	Name  string
	VR    string
	Value string

	// Index is the 1-based item number of an ItemRecord
	Index int
}

// Label renders the record without indentation, the form used for tree nodes.
func (r Record) Label() string {
	if r.Kind == ItemRecord {
		return fmt.Sprintf("[Item %d]", r.Index)
	}
	return fmt.Sprintf("%s | %s | %s | %s", r.Tag, r.Name, r.VR, r.Value)
}

// String renders the record as one line of text, indented two spaces per
// nesting level. This shape is the tool's documented output contract.
func (r Record) String() string {
	return strings.Repeat(" ", r.Depth*indentWidth) + r.Label()
}

var errRawBytes = errors.New("raw byte value")

// renderValue converts a decoded element value to its display text, joining
// multi-valued fields with the backslash separator. Sequence and byte values
// have no direct text form; callers are expected to have branched on them
// before rendering.
func renderValue(value dicom.Value) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case dicom.TextValue:
		return strings.Join(v, multiValueSeparator), nil
	case dicom.IntValue:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, multiValueSeparator), nil
	case dicom.FloatValue:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, multiValueSeparator), nil
	case dicom.TagValue:
		parts := make([]string, len(v))
		for i, t := range v {
			parts[i] = t.String()
		}
		return strings.Join(parts, multiValueSeparator), nil
	case dicom.BytesValue:
		return "", errRawBytes
	case *dicom.SequenceValue:
		return "", errors.New("sequence value has no textual rendering")
	default:
		return "", fmt.Errorf("unexpected value type %T", value)
	}
}

// truncateValue shortens s to at most limit characters plus an ellipsis.
// Truncation happens on rune boundaries, never inside a multi-byte character.
func truncateValue(s string, limit int) string {
	us := utf8string.NewString(s)
	if us.RuneCount() <= limit {
		return s
	}
	return us.Slice(0, limit) + ellipsis
}

// binaryPlaceholder is the rendering of elided binary values, carrying the
// original payload size.
func binaryPlaceholder(byteLength int) string {
	return fmt.Sprintf("<binary, %d bytes>", byteLength)
}

// sequencePlaceholder is the value rendering of a sequence header record.
func sequencePlaceholder(itemCount int) string {
	return fmt.Sprintf("<sequence, %d items>", itemCount)
}

// valueByteSize reports the size in bytes of an element's encoded value, used
// by the binary placeholder. For values whose file length is unknown the size
// of the decoded payload is used instead.
func valueByteSize(elem *dicom.DataElement) int {
	if b, ok := elem.Value.(dicom.BytesValue); ok {
		return len(b)
	}
	if elem.ValueLength != dicom.UndefinedLength {
		return int(elem.ValueLength)
	}
	rendered, err := renderValue(elem.Value)
	if err != nil {
		return 0
	}
	return len(rendered)
}
