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

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// decodeState carries how objects within the DICOM file are stored
type decodeState struct {
	syntax   transferSyntax
	encoding encoding.Encoding
}

// Parse parses a DICOM file represented as an io.Reader, returning the DataSet defined by the
// Data Elements in the file in file order. File meta (group 0002) elements are included in the
// returned DataSet. Every failure is reported as a *DecodeError.
func Parse(r io.Reader) (*DataSet, error) {
	ds, err := parse(r)
	if err != nil {
		return nil, &DecodeError{err}
	}
	return ds, nil
}

func parse(r io.Reader) (*DataSet, error) {
	dr := newDcmReader(r)
	if err := readDicomSignature(dr); err != nil {
		return nil, err
	}

	metaHeaderBytes, err := bufferMetadataHeader(dr)
	if err != nil {
		return nil, fmt.Errorf("reading meta header: %v", err)
	}

	ds := &DataSet{}
	syntax, err := readMetadataHeader(ds, metaHeaderBytes)
	if err != nil {
		return nil, fmt.Errorf("reading meta elements: %v", err)
	}

	state := &decodeState{syntax, defaultCharacterRepertoire}
	body := dr
	if syntax.isDeflated() {
		body = newDcmReader(flate.NewReader(dr.cr))
	}

	if err := readDataSetInto(ds, body, state); err != nil {
		return nil, err
	}
	return ds, nil
}

func readDicomSignature(dr *dcmReader) error {
	if err := dr.Skip(128); err != nil {
		return fmt.Errorf("skipping preamble: %v", err)
	}

	magic, err := dr.String(4)
	if err != nil {
		return fmt.Errorf("reading DICOM signature: %v", err)
	}

	if magic != "DICM" {
		return fmt.Errorf("wrong DICOM signature: %v", magic)
	}

	return nil
}

// bufferMetadataHeader reads the bytes of the file meta group. The group starts with the
// FileMetaInformationGroupLength element, whose value is the byte length of the remaining
// meta elements.
func bufferMetadataHeader(dr *dcmReader) ([]byte, error) {
	firstElemBytes, err := dr.Bytes(4 /*tag*/ + 2 /*vr*/ + 2 /*len*/ + 4 /*UL=4bytes*/)
	if err != nil {
		return nil, fmt.Errorf("buffering bytes of FileMetaInformationGroupLength: %v", err)
	}

	metaState := &decodeState{explicitVRLittleEndian, defaultCharacterRepertoire}
	firstElem, err := readDataElement(newDcmReader(bytes.NewReader(firstElemBytes)), metaState)
	if err != nil {
		return nil, fmt.Errorf("parsing FileMetaInformationGroupLength element: %v", err)
	}
	if firstElem.Tag != FileMetaInformationGroupLengthTag {
		return nil, fmt.Errorf("expected FileMetaInformationGroupLength, got %v", firstElem.Tag)
	}

	groupLength, ok := firstElem.Value.(IntValue)
	if !ok || len(groupLength) != 1 {
		return nil, fmt.Errorf("expected 1 integer value for meta group length")
	}

	remainderBytes, err := dr.Bytes(groupLength[0])
	if err != nil {
		return nil, fmt.Errorf("buffering the file meta elements: %v", err)
	}

	return append(firstElemBytes, remainderBytes...), nil
}

// readMetadataHeader appends the file meta elements to ds and returns the transfer syntax of
// the data set that follows them. Meta elements are always explicit VR little endian.
func readMetadataHeader(ds *DataSet, metaHeaderBytes []byte) (transferSyntax, error) {
	metaState := &decodeState{explicitVRLittleEndian, defaultCharacterRepertoire}
	dr := newDcmReader(bytes.NewReader(metaHeaderBytes))

	syntax := transferSyntax(explicitVRLittleEndian)
	syntaxFound := false
	for {
		elem, err := readDataElement(dr, metaState)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ds.append(elem)

		if elem.Tag == TransferSyntaxUIDTag {
			ids, ok := elem.Value.(TextValue)
			if !ok || len(ids) != 1 {
				return nil, fmt.Errorf("expected 1 string value for transfer syntax")
			}
			syntax = lookupTransferSyntax(ids[0])
			syntaxFound = true
		}
	}

	if !syntaxFound {
		return nil, errors.New("transfer syntax not found")
	}
	return syntax, nil
}

// readDataSetInto appends elements to ds until the input is exhausted. An ItemDelimitationItem
// terminates the loop without error, which handles nested data sets of undefined length.
func readDataSetInto(ds *DataSet, dr *dcmReader, state *decodeState) error {
	for {
		elem, err := readDataElement(dr, state)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parsing element: %v", err)
		}
		ds.append(elem)

		if elem.Tag == SpecificCharacterSetTag {
			applyCharacterSet(elem, state)
		}
	}
}

// applyCharacterSet switches the text repertoire for elements that follow a
// Specific Character Set element. Unrecognized defined terms keep the current
// repertoire rather than failing the whole decode.
func applyCharacterSet(elem *DataElement, state *decodeState) {
	terms, ok := elem.Value.(TextValue)
	if !ok {
		return
	}
	for _, term := range terms {
		if term == "" {
			continue
		}
		if coding, err := lookupEncoding(term); err == nil {
			state.encoding = coding
		}
		return
	}
}

func readDataElement(dr *dcmReader, state *decodeState) (*DataElement, error) {
	tag, err := dr.Tag(state.syntax.byteOrder())
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag: %v", err)
	}

	if tag == ItemDelimitationItemTag {
		// handles the case when we are parsing a nested data set within a sequence with undefined
		// length. This code should never run for the top level data set
		length, err := dr.UInt32(state.syntax.byteOrder())
		if err != nil {
			return nil, fmt.Errorf("reading 32 bit length of item delimitation: %v", err)
		}
		if length != 0 {
			return nil, fmt.Errorf("wrong length for item delimiter. got %v, want %v", length, 0)
		}
		return nil, io.EOF
	}

	vr, err := state.syntax.readVR(dr, tag)
	if err != nil {
		return nil, fmt.Errorf("getting vr: %v", err)
	}

	length, err := state.syntax.readValueLength(dr, vr)
	if err != nil {
		return nil, fmt.Errorf("getting length: %v", err)
	}

	value, err := readValue(dr, state, tag, vr, length)
	if err != nil {
		return nil, fmt.Errorf("parsing value of %v: %v", tag, err)
	}

	return &DataElement{tag, vr, value, length}, nil
}

func readValue(dr *dcmReader, state *decodeState, tag DataElementTag, vr *VR, length uint32) (Value, error) {
	switch vr.kind {
	case textVR, uniqueIdentifierVR:
		return readText(dr, state, vr, length)
	case numberBinaryVR:
		return readNumberBinary(dr, state, vr, length)
	case bulkDataVR:
		switch vr {
		case UCVR, URVR, UTVR:
			// textual VRs that happen to share the 32-bit length encoding of bulk data
			return readText(dr, state, vr, length)
		}
		return readBulkData(dr, state, tag, length)
	case sequenceVR:
		return readSequence(dr, state, length)
	case tagVR:
		return readTagValue(dr, state, length)
	default:
		return nil, fmt.Errorf("unknown vr type found: %v", vr.kind)
	}
}

func readText(dr *dcmReader, state *decodeState, vr *VR, length uint32) (TextValue, error) {
	if length == 0 {
		return TextValue{}, nil
	}

	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading text field value: %v", err)
	}

	text := string(raw)
	if vr.kind == textVR || vr == UCVR {
		// UI and UR are always in the default repertoire
		if text, err = decodeText(state.encoding, raw); err != nil {
			return nil, err
		}
	}

	isPadding := unicode.IsSpace
	if vr == UIVR {
		isPadding = func(r rune) bool {
			return r == 0x00 || r == ' '
		}
	}

	// ST, LT, UT and UR do not support value multiplicity; the backslash is an
	// ordinary character there. Leading spaces are significant for them too.
	switch vr {
	case STVR, LTVR, UTVR, URVR:
		return TextValue{strings.TrimRightFunc(text, isPadding)}, nil
	}

	strs := strings.Split(text, "\\")
	for i, s := range strs {
		strs[i] = strings.TrimFunc(s, isPadding)
	}
	return TextValue(strs), nil
}

func readNumberBinary(dr *dcmReader, state *decodeState, vr *VR, length uint32) (Value, error) {
	order := state.syntax.byteOrder()

	read16 := func() ([]uint16, error) {
		buf := make([]uint16, length/2)
		for i := range buf {
			v, err := dr.UInt16(order)
			if err != nil {
				return nil, err
			}
			buf[i] = v
		}
		return buf, nil
	}
	read32 := func() ([]uint32, error) {
		buf := make([]uint32, length/4)
		for i := range buf {
			v, err := dr.UInt32(order)
			if err != nil {
				return nil, err
			}
			buf[i] = v
		}
		return buf, nil
	}

	switch vr {
	case SSVR:
		buf, err := read16()
		if err != nil {
			return nil, err
		}
		out := make(IntValue, len(buf))
		for i, v := range buf {
			out[i] = int64(int16(v))
		}
		return out, nil
	case USVR:
		buf, err := read16()
		if err != nil {
			return nil, err
		}
		out := make(IntValue, len(buf))
		for i, v := range buf {
			out[i] = int64(v)
		}
		return out, nil
	case SLVR:
		buf, err := read32()
		if err != nil {
			return nil, err
		}
		out := make(IntValue, len(buf))
		for i, v := range buf {
			out[i] = int64(int32(v))
		}
		return out, nil
	case ULVR:
		buf, err := read32()
		if err != nil {
			return nil, err
		}
		out := make(IntValue, len(buf))
		for i, v := range buf {
			out[i] = int64(v)
		}
		return out, nil
	case FLVR:
		buf, err := read32()
		if err != nil {
			return nil, err
		}
		out := make(FloatValue, len(buf))
		for i, v := range buf {
			out[i] = float64(math.Float32frombits(v))
		}
		return out, nil
	case FDVR:
		buf := make(FloatValue, length/8)
		for i := range buf {
			lo, err := read64(dr, order)
			if err != nil {
				return nil, err
			}
			buf[i] = math.Float64frombits(lo)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("unknown vr: %v", vr)
	}
}

func read64(dr *dcmReader, order binary.ByteOrder) (uint64, error) {
	b, err := dr.Bytes(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

func readTagValue(dr *dcmReader, state *decodeState, length uint32) (TagValue, error) {
	ret := make(TagValue, length/4) // 4 bytes per tag

	for i := range ret {
		t, err := dr.Tag(state.syntax.byteOrder())
		if err != nil {
			return nil, err
		}
		ret[i] = t
	}
	return ret, nil
}

func readBulkData(dr *dcmReader, state *decodeState, tag DataElementTag, length uint32) (BytesValue, error) {
	if length == UndefinedLength {
		if tag == PixelDataTag {
			// (7FE0,0010) with undefined length means pixel data in encapsulated (compressed)
			// format, stored as fragments framed with item tags
			// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
			return readEncapsulatedPixelData(dr, state)
		}
		return nil, errors.New("undefined length in non-pixel data not supported")
	}

	b, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading bulk data: %v", err)
	}
	return BytesValue(b), nil
}

func readEncapsulatedPixelData(dr *dcmReader, state *decodeState) (BytesValue, error) {
	order := state.syntax.byteOrder()
	var buf []byte
	for {
		tag, err := dr.Tag(order)
		if err != nil {
			return nil, fmt.Errorf("reading fragment item tag: %v", err)
		}
		length, err := dr.UInt32(order)
		if err != nil {
			return nil, fmt.Errorf("reading fragment item length: %v", err)
		}

		switch tag {
		case SequenceDelimitationItemTag:
			if length != 0 {
				return nil, errors.New("expected 0 length on sequence delimiter")
			}
			return BytesValue(buf), nil
		case ItemTag:
			fragment, err := dr.Bytes(int64(length))
			if err != nil {
				return nil, fmt.Errorf("reading fragment: %v", err)
			}
			buf = append(buf, fragment...)
		default:
			return nil, fmt.Errorf("invalid tag in encapsulated pixel data: %v", tag)
		}
	}
}

func readSequence(dr *dcmReader, state *decodeState, length uint32) (*SequenceValue, error) {
	seq := &SequenceValue{Items: []*DataSet{}}

	sub := dr
	explicitLength := length < UndefinedLength
	if explicitLength {
		sub = dr.Limit(int64(length))
	}

	for {
		tag, err := sub.Tag(state.syntax.byteOrder())
		if err == io.EOF && explicitLength {
			return seq, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading item tag: %v", err)
		}

		if tag == SequenceDelimitationItemTag {
			if explicitLength {
				return nil, errors.New("unexpected sequence delimitation item in explicit length sequence")
			}
			itemLength, err := sub.UInt32(state.syntax.byteOrder())
			if err != nil {
				return nil, fmt.Errorf("reading sequence delimitation item length: %v", err)
			}
			if itemLength != 0 {
				return nil, errors.New("expected 0 length on sequence delimiter")
			}
			return seq, nil
		}
		if tag != ItemTag {
			return nil, fmt.Errorf("invalid item tag in sequence, got %v want %v", tag, ItemTag)
		}

		item, err := readSequenceItem(sub, state)
		if err != nil {
			return nil, err
		}
		seq.Items = append(seq.Items, item)
	}
}

func readSequenceItem(dr *dcmReader, state *decodeState) (*DataSet, error) {
	itemLength, err := dr.UInt32(state.syntax.byteOrder())
	if err != nil {
		return nil, fmt.Errorf("reading sequence item length: %v", err)
	}

	item := &DataSet{}
	sub := dr
	if itemLength < UndefinedLength {
		sub = dr.Limit(int64(itemLength))
	}
	// items of undefined length are terminated by an ItemDelimitationItem, which
	// readDataSetInto treats as end of input
	if err := readDataSetInto(item, sub, state); err != nil {
		return nil, err
	}
	return item, nil
}
