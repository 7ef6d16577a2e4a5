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

import "testing"

func TestDataElementTag_String(t *testing.T) {
	got := ItemTag.String()
	want := "(FFFE,E000)"
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDataElementTag_GroupNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.GroupNumber() != 0xFEDC {
		t.Fatalf("got %v, want %v", tag.GroupNumber(), 0xFEDC)
	}
}

func TestDataElementTag_ElementNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.ElementNumber() != 0xBA98 {
		t.Fatalf("got %v, want %v", tag.ElementNumber(), 0xBA98)
	}
}

func TestNewTag(t *testing.T) {
	if got := NewTag(0x0010, 0x0020); got != DataElementTag(0x00100020) {
		t.Fatalf("got %v, want %v", got, DataElementTag(0x00100020))
	}
}

func TestDataElementTag_IsPrivate(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want bool
	}{
		{
			"when group number is odd, the tag is considered private",
			DataElementTag(0x00010000),
			true,
		},
		{
			"when group number is even, the tag is considered non-private",
			PixelDataTag,
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tag.IsPrivate()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDataElementTag_DictionaryVR(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want *VR
	}{
		{
			"tags in the dictionary return their registered VR",
			DataElementTag(0x00081110),
			SQVR,
		},
		{
			"when lookup fails, UNVR is returned",
			DataElementTag(0xABCDEF98),
			UNVR,
		},
		{
			"group length elements (gggg,0000) have VR UL",
			DataElementTag(0x00090000),
			ULVR,
		},
		{
			"private creator elements (gggg,0010-00FF) with gggg odd have VR LO",
			DataElementTag(0x80010010),
			LOVR,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tag.DictionaryVR()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNameOf(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want string
	}{
		{"known tag", DataElementTag(0x00100010), "Patient's Name"},
		{"known meta tag", TransferSyntaxUIDTag, "Transfer Syntax UID"},
		{"unknown tag returns the sentinel", DataElementTag(0x13370042), UnknownName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NameOf(tc.tag); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLookupVRByName(t *testing.T) {
	vr, err := lookupVRByName("PN")
	if err != nil {
		t.Fatalf("lookupVRByName(PN) => %v", err)
	}
	if vr != PNVR {
		t.Fatalf("got %v, want %v", vr, PNVR)
	}

	if _, err := lookupVRByName("ZZ"); err == nil {
		t.Fatal("expected error for unknown VR name")
	}
}
