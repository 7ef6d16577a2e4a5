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
	"unicode"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
)

// binaryVRNames is the closed set of VRs that always carry opaque payloads
var binaryVRNames = map[string]bool{
	"OB": true,
	"OD": true,
	"OF": true,
	"OL": true,
	"OV": true,
	"OW": true,
	"UN": true,
}

// binarySizeThreshold is the value length in bytes above which a value whose
// rendering contains non-printable characters is classified as binary
const binarySizeThreshold = 64

// excludedTags are always treated as binary regardless of their VR. They hold
// image and waveform samples, which can be mistyped in the wild.
var excludedTags = map[dicom.DataElementTag]bool{
	dicom.PixelDataTag:    true,
	dicom.WaveformDataTag: true,
}

// IsBinary reports whether the element's value should be treated as opaque
// binary and elided from textual output. The decision is a heuristic: the VR
// is authoritative when it belongs to the known binary set, and a size plus
// printability check catches untyped or mistyped payloads. False positives
// and negatives are possible on adversarial input.
//
// IsBinary is pure and total: it never fails and never mutates the element.
func IsBinary(elem *dicom.DataElement) bool {
	if excludedTags[elem.Tag] {
		return true
	}
	if elem.VR != nil && binaryVRNames[elem.VR.Name] {
		return true
	}
	if _, ok := elem.Value.(dicom.BytesValue); ok {
		return true
	}

	rendered, err := renderValue(elem.Value)
	if err != nil {
		// values we cannot render to text are as good as binary
		return true
	}
	return len(rendered) > binarySizeThreshold && !isPrintable(rendered)
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
