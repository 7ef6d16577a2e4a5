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

// Package dicom provides data structures modelling the DICOM file format as
// specified in [http://dicom.nema.org/medical/dicom/current/output/pdf/part05.pdf]
// and a Parse function that decodes a DICOM file into a DataSet.
//
// The package buffers the whole file into memory: every DataElement in the
// returned DataSet carries a fully decoded Value, including nested sequences
// and bulk data payloads. Consumers that only inspect metadata (such as the
// dump package in this repository) can therefore treat the DataSet as an
// immutable in-memory tree.
package dicom
