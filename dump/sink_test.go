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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
)

func TestTreeSink_Hierarchy(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		textElem(0x00100010, dicom.PNVR, "DOE^JOHN"),
		seqElem(0x00081110,
			&dicom.DataSet{Elements: []*dicom.DataElement{
				textElem(0x00081150, dicom.UIVR, "1.2"),
			}},
			&dicom.DataSet{Elements: []*dicom.DataElement{
				textElem(0x00081155, dicom.UIVR, "3.4"),
			}},
		),
	}}

	sink := NewTreeSink()
	require.NoError(t, Walk(ds, sink))

	root := sink.Root()
	require.Len(t, root.Children, 2)

	assert.Equal(t, "(0010,0010) | Patient's Name | PN | DOE^JOHN", root.Children[0].Label)
	assert.Empty(t, root.Children[0].Children)

	seq := root.Children[1]
	assert.Equal(t, "(0008,1110) | Referenced Study Sequence | SQ | <sequence, 2 items>", seq.Label)
	require.Len(t, seq.Children, 2)

	item1 := seq.Children[0]
	assert.Equal(t, "[Item 1]", item1.Label)
	require.Len(t, item1.Children, 1)
	assert.Equal(t, "(0008,1150) | Referenced SOP Class UID | UI | 1.2", item1.Children[0].Label)

	item2 := seq.Children[1]
	assert.Equal(t, "[Item 2]", item2.Label)
	require.Len(t, item2.Children, 1)
	assert.Equal(t, "(0008,1155) | Referenced SOP Instance UID | UI | 3.4", item2.Children[0].Label)
}

func TestTreeSink_RecordsCarryDepth(t *testing.T) {
	ds := &dicom.DataSet{Elements: []*dicom.DataElement{
		seqElem(0x00081110, &dicom.DataSet{Elements: []*dicom.DataElement{
			textElem(0x00081150, dicom.UIVR, "1.2"),
		}}),
	}}

	sink := NewTreeSink()
	require.NoError(t, Walk(ds, sink))

	seq := sink.Root().Children[0]
	assert.Equal(t, 0, seq.Record.Depth)
	assert.Equal(t, 1, seq.Children[0].Record.Depth)
	assert.Equal(t, 2, seq.Children[0].Children[0].Record.Depth)
}

func TestTreeSink_Unbalanced(t *testing.T) {
	sink := NewTreeSink()
	assert.Error(t, sink.BeginChildren())
	assert.Error(t, sink.EndChildren())
}
