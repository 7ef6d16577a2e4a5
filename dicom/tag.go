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

import "fmt"

// DataElementTag is a unique identifier for a Data Element composed of an ordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// NewTag returns the DataElementTag with the given group and element numbers.
func NewTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetadataElement is true if and only if the Data Element is a file meta element
func (t DataElementTag) IsMetadataElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

// IsPrivate is true if and only if the tag belongs to an odd numbered group
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// IsPrivateCreator is true for tags of the form (gggg,0010-00FF) with gggg odd
func (t DataElementTag) IsPrivateCreator() bool {
	return t.IsPrivate() && 0x0010 <= t.ElementNumber() && t.ElementNumber() <= 0x00FF
}

// String renders the tag in the conventional (GGGG,EEEE) upper-case hex form
func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// DictionaryVR returns the VR the data dictionary associates with the tag. It is used
// to decode files written in the implicit VR syntaxes, which omit VRs from the file.
// Group length elements (gggg,0000) map to UL, private creator elements to LO, and
// tags absent from the dictionary to UN.
func (t DataElementTag) DictionaryVR() *VR {
	if t.ElementNumber() == 0x0000 {
		return ULVR
	}
	if t.IsPrivateCreator() {
		return LOVR
	}
	if entry, ok := dataDictionary[t]; ok {
		return entry.vr
	}
	return UNVR
}

// Tags referenced by the decoder and by the dump package. The complete data
// dictionary lives in dictionary.go.
const (
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	FileMetaInformationVersionTag     DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag        DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag     DataElementTag = 0x00020003
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	ImplementationClassUIDTag         DataElementTag = 0x00020012
	ImplementationVersionNameTag      DataElementTag = 0x00020013

	SpecificCharacterSetTag DataElementTag = 0x00080005

	FloatPixelDataTag       DataElementTag = 0x7FE00008
	DoubleFloatPixelDataTag DataElementTag = 0x7FE00009
	PixelDataTag            DataElementTag = 0x7FE00010
	WaveformDataTag         DataElementTag = 0x54001010

	ItemTag                     DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag     DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag DataElementTag = 0xFFFEE00E
)
