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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
)

func textElem(tag dicom.DataElementTag, vr *dicom.VR, values ...string) *dicom.DataElement {
	length := 0
	for _, v := range values {
		length += len(v)
	}
	return &dicom.DataElement{Tag: tag, VR: vr, Value: dicom.TextValue(values), ValueLength: uint32(length)}
}

func seqElem(tag dicom.DataElementTag, items ...*dicom.DataSet) *dicom.DataElement {
	return &dicom.DataElement{
		Tag:         tag,
		VR:          dicom.SQVR,
		Value:       &dicom.SequenceValue{Items: items},
		ValueLength: dicom.UndefinedLength,
	}
}

func walkText(t *testing.T, ds *dicom.DataSet, opts ...WalkOption) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Walk(ds, NewTextSink(&buf), opts...))
	return buf.String()
}

func TestWalk_FlatDataSet(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00100010, dicom.PNVR, "DOE^JOHN"),
		textElem(0x00100020, dicom.LOVR, "123456"),
	}}

	got := walkText(t, ds)
	want := "(0010,0010) | Patient's Name | PN | DOE^JOHN\n" +
		"(0010,0020) | Patient ID | LO | 123456\n"
	assert.Equal(t, want, got)
}

func TestWalk_BinaryPlaceholder(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		{Tag: dicom.PixelDataTag, VR: dicom.OBVR, Value: dicom.BytesValue(make([]byte, 10000)), ValueLength: 10000},
	}}

	got := walkText(t, ds)
	assert.Equal(t, "(7FE0,0010) | Pixel Data | OB | <binary, 10000 bytes>\n", got)
	assert.NotContains(t, got, "\x00")
}

func TestWalk_Sequence(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		seqElem(0x00081110,
			&dicom.DataSet{Elements: []*dicom.DataElement{
				textElem(0x00081150, dicom.UIVR, "1.2.840.10008.5.1.4.1.1.4"),
			}},
			&dicom.DataSet{Elements: []*dicom.DataElement{
				textElem(0x00081155, dicom.UIVR, "1.2.840.113619.2.176"),
			}},
		),
	}}

	got := walkText(t, ds)
	want := strings.Join([]string{
		"(0008,1110) | Referenced Study Sequence | SQ | <sequence, 2 items>",
		"  [Item 1]",
		"    (0008,1150) | Referenced SOP Class UID | UI | 1.2.840.10008.5.1.4.1.1.4",
		"  [Item 2]",
		"    (0008,1155) | Referenced SOP Instance UID | UI | 1.2.840.113619.2.176",
		"",
	}, "\n")
	assert.Equal(t, want, got)

	// five records total: one header, two boundaries, two nested elements
	assert.Equal(t, 5, strings.Count(got, "\n"))
}

func TestWalk_NestedSequenceDepth(t *testing.T) {
	inner := seqElem(0x00081140,
		&dicom.DataSet{Elements: []*dicom.DataElement{
			textElem(0x00081150, dicom.UIVR, "1.2"),
		}},
	)
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{inner}}),
	}}

	got := walkText(t, ds)
	want := strings.Join([]string{
		"(0008,1110) | Referenced Study Sequence | SQ | <sequence, 1 items>",
		"  [Item 1]",
		"    (0008,1140) | Referenced Image Sequence | SQ | <sequence, 1 items>",
		"      [Item 1]",
		"        (0008,1150) | Referenced SOP Class UID | UI | 1.2",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWalk_TopLevelRecordCount(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00100010, dicom.PNVR, "DOE^JOHN"),
		textElem(0x00100020, dicom.LOVR, "123456"),
		{Tag: dicom.PixelDataTag, VR: dicom.OWVR, Value: dicom.BytesValue{0x00}, ValueLength: 1},
	}}

	got := walkText(t, ds)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// one record per top level element, binary ones included as placeholders
	require.Len(t, lines, ds.Len())
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, " "), "top level records are unindented: %q", line)
	}
}

func TestWalk_UnknownName(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x13370042, dicom.LOVR, "x"),
	}}

	got := walkText(t, ds)
	assert.Equal(t, "(1337,0042) | Unknown | LO | x\n", got)
}

func TestWalk_InjectedNameLookup(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00080008, dicom.CSVR, "ORIGINAL"),
	}}

	stub := func(dicom.DataElementTag) string { return "Stubbed" }
	got := walkText(t, ds, WithNameLookup(stub))
	assert.Equal(t, "(0008,0008) | Stubbed | CS | ORIGINAL\n", got)
}

func TestWalk_Truncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00104000, dicom.LTVR, long),
	}}

	got := walkText(t, ds, WithMaxValueLength(16))
	assert.Equal(t, "(0010,4000) | Patient Comments | LT | "+strings.Repeat("a", 16)+"...\n", got)
}

func TestWalk_Idempotent(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00100010, dicom.PNVR, "DOE^JOHN"),
		seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{
			textElem(0x00081150, dicom.UIVR, "1.2"),
		}}),
	}}

	first := walkText(t, ds)
	second := walkText(t, ds)
	assert.Equal(t, first, second)
}

func TestWalk_NilRoot(t *testing.T) {
	err := Walk(nil, NewTextSink(&bytes.Buffer{}))
	require.Error(t, err)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestWalk_DepthLimit(t *testing.T) {
	// three nested sequences put the innermost elements at depth 6
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{
			seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{
				seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{
					textElem(0x00081150, dicom.UIVR, "1.2"),
				}}),
			}}),
		}}),
	}}

	var buf bytes.Buffer
	err := Walk(ds, NewTextSink(&buf), WithDepthLimit(4))
	require.Error(t, err)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	// the violation surfaces before anything is emitted
	assert.Empty(t, buf.String())

	// a deep enough limit accepts the same input
	require.NoError(t, Walk(ds, NewTextSink(&buf), WithDepthLimit(6)))
}

func TestWalk_EmptySequence(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		seqElem(0x00081110),
	}}

	got := walkText(t, ds)
	assert.Equal(t, "(0008,1110) | Referenced Study Sequence | SQ | <sequence, 0 items>\n", got)
}

func TestWalk_DoesNotMutateInput(t *testing.T) {
	nested := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00081150, dicom.UIVR, "1.2"),
	}}
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00100010, dicom.PNVR, "DOE^JOHN"),
		seqElem(0x00081110, nested),
	}}

	walkText(t, ds)

	require.Len(t, ds.Elements, 2)
	assert.Equal(t, dicom.TextValue{"DOE^JOHN"}, ds.Elements[0].Value)
	require.Len(t, nested.Elements, 1)
	assert.Equal(t, dicom.TextValue{"1.2"}, nested.Elements[0].Value)
}
