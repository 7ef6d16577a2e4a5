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

// UnknownName is returned by NameOf for tags absent from the data dictionary.
const UnknownName = "Unknown"

// NameOf returns the data dictionary name of the given tag, or UnknownName
// when the tag has no dictionary entry.
func NameOf(tag DataElementTag) string {
	if entry, ok := dataDictionary[tag]; ok {
		return entry.name
	}
	return UnknownName
}

type dictionaryEntry struct {
	name string
	vr   *VR
}

// dataDictionary is a subset of the registry in PS3.6 chapter 6
// [http://dicom.nema.org/medical/dicom/current/output/html/part06.html]
// covering the file meta group and the modules most image IODs carry. Tags
// outside the subset decode fine; they render with the UnknownName sentinel
// and, under implicit VR syntaxes, the UN representation.
var dataDictionary = map[DataElementTag]dictionaryEntry{
	// group 0002: file meta
	FileMetaInformationGroupLengthTag: {"File Meta Information Group Length", ULVR},
	FileMetaInformationVersionTag:     {"File Meta Information Version", OBVR},
	MediaStorageSOPClassUIDTag:        {"Media Storage SOP Class UID", UIVR},
	MediaStorageSOPInstanceUIDTag:     {"Media Storage SOP Instance UID", UIVR},
	TransferSyntaxUIDTag:              {"Transfer Syntax UID", UIVR},
	ImplementationClassUIDTag:         {"Implementation Class UID", UIVR},
	ImplementationVersionNameTag:      {"Implementation Version Name", SHVR},
	0x00020016:                        {"Source Application Entity Title", AEVR},

	// group 0008: identification
	SpecificCharacterSetTag: {"Specific Character Set", CSVR},
	0x00080008:              {"Image Type", CSVR},
	0x00080012:              {"Instance Creation Date", DAVR},
	0x00080013:              {"Instance Creation Time", TMVR},
	0x00080016:              {"SOP Class UID", UIVR},
	0x00080018:              {"SOP Instance UID", UIVR},
	0x00080020:              {"Study Date", DAVR},
	0x00080021:              {"Series Date", DAVR},
	0x00080022:              {"Acquisition Date", DAVR},
	0x00080023:              {"Content Date", DAVR},
	0x00080030:              {"Study Time", TMVR},
	0x00080031:              {"Series Time", TMVR},
	0x00080032:              {"Acquisition Time", TMVR},
	0x00080033:              {"Content Time", TMVR},
	0x00080050:              {"Accession Number", SHVR},
	0x00080060:              {"Modality", CSVR},
	0x00080064:              {"Conversion Type", CSVR},
	0x00080070:              {"Manufacturer", LOVR},
	0x00080080:              {"Institution Name", LOVR},
	0x00080081:              {"Institution Address", STVR},
	0x00080090:              {"Referring Physician's Name", PNVR},
	0x00081010:              {"Station Name", SHVR},
	0x00081030:              {"Study Description", LOVR},
	0x0008103E:              {"Series Description", LOVR},
	0x00081048:              {"Physician(s) of Record", PNVR},
	0x00081050:              {"Performing Physician's Name", PNVR},
	0x00081060:              {"Name of Physician(s) Reading Study", PNVR},
	0x00081070:              {"Operators' Name", PNVR},
	0x00081090:              {"Manufacturer's Model Name", LOVR},
	0x00081110:              {"Referenced Study Sequence", SQVR},
	0x00081111:              {"Referenced Performed Procedure Step Sequence", SQVR},
	0x00081115:              {"Referenced Series Sequence", SQVR},
	0x00081140:              {"Referenced Image Sequence", SQVR},
	0x00081150:              {"Referenced SOP Class UID", UIVR},
	0x00081155:              {"Referenced SOP Instance UID", UIVR},
	0x00082112:              {"Source Image Sequence", SQVR},
	0x00089215:              {"Derivation Code Sequence", SQVR},

	// group 0010: patient
	0x00100010: {"Patient's Name", PNVR},
	0x00100020: {"Patient ID", LOVR},
	0x00100021: {"Issuer of Patient ID", LOVR},
	0x00100030: {"Patient's Birth Date", DAVR},
	0x00100032: {"Patient's Birth Time", TMVR},
	0x00100040: {"Patient's Sex", CSVR},
	0x00101010: {"Patient's Age", ASVR},
	0x00101020: {"Patient's Size", DSVR},
	0x00101030: {"Patient's Weight", DSVR},
	0x00102180: {"Occupation", SHVR},
	0x001021B0: {"Additional Patient History", LTVR},
	0x00104000: {"Patient Comments", LTVR},

	// group 0018: acquisition
	0x00180015: {"Body Part Examined", CSVR},
	0x00180020: {"Scanning Sequence", CSVR},
	0x00180021: {"Sequence Variant", CSVR},
	0x00180022: {"Scan Options", CSVR},
	0x00180023: {"MR Acquisition Type", CSVR},
	0x00180050: {"Slice Thickness", DSVR},
	0x00180060: {"KVP", DSVR},
	0x00180080: {"Repetition Time", DSVR},
	0x00180081: {"Echo Time", DSVR},
	0x00180087: {"Magnetic Field Strength", DSVR},
	0x00180088: {"Spacing Between Slices", DSVR},
	0x00181000: {"Device Serial Number", LOVR},
	0x00181020: {"Software Versions", LOVR},
	0x00181030: {"Protocol Name", LOVR},
	0x00181151: {"X-Ray Tube Current", ISVR},
	0x00185100: {"Patient Position", CSVR},

	// group 0020: study/series/image relationship
	0x0020000D: {"Study Instance UID", UIVR},
	0x0020000E: {"Series Instance UID", UIVR},
	0x00200010: {"Study ID", SHVR},
	0x00200011: {"Series Number", ISVR},
	0x00200012: {"Acquisition Number", ISVR},
	0x00200013: {"Instance Number", ISVR},
	0x00200032: {"Image Position (Patient)", DSVR},
	0x00200037: {"Image Orientation (Patient)", DSVR},
	0x00200052: {"Frame of Reference UID", UIVR},
	0x00201041: {"Slice Location", DSVR},
	0x00204000: {"Image Comments", LTVR},

	// group 0028: image pixel description
	0x00280002: {"Samples per Pixel", USVR},
	0x00280004: {"Photometric Interpretation", CSVR},
	0x00280008: {"Number of Frames", ISVR},
	0x00280010: {"Rows", USVR},
	0x00280011: {"Columns", USVR},
	0x00280030: {"Pixel Spacing", DSVR},
	0x00280100: {"Bits Allocated", USVR},
	0x00280101: {"Bits Stored", USVR},
	0x00280102: {"High Bit", USVR},
	0x00280103: {"Pixel Representation", USVR},
	0x00281050: {"Window Center", DSVR},
	0x00281051: {"Window Width", DSVR},
	0x00281052: {"Rescale Intercept", DSVR},
	0x00281053: {"Rescale Slope", DSVR},

	// group 0040: procedure
	0x00400244: {"Performed Procedure Step Start Date", DAVR},
	0x00400245: {"Performed Procedure Step Start Time", TMVR},
	0x00400253: {"Performed Procedure Step ID", SHVR},
	0x00400254: {"Performed Procedure Step Description", LOVR},
	0x00400260: {"Performed Protocol Code Sequence", SQVR},
	0x00400275: {"Request Attributes Sequence", SQVR},
	0x0040A170: {"Purpose of Reference Code Sequence", SQVR},

	// waveform and pixel payloads
	0x54000100:              {"Waveform Sequence", SQVR},
	WaveformDataTag:         {"Waveform Data", OWVR},
	FloatPixelDataTag:       {"Float Pixel Data", OFVR},
	DoubleFloatPixelDataTag: {"Double Float Pixel Data", ODVR},
	PixelDataTag:            {"Pixel Data", OWVR},
}
