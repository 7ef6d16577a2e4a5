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

// Package dump renders a parsed DICOM DataSet as a human readable hierarchy
// of tag/name/VR/value records, eliding bulk binary payloads such as pixel
// and waveform data.
//
// The Walk function traverses a DataSet depth first in data set order and
// emits one Record per element onto a Sink. Two sinks are provided: TextSink
// writes one line per record to an io.Writer, TreeSink builds a parent/child
// node hierarchy suitable for tree widgets. The traversal is read only and
// deterministic: walking the same DataSet twice produces identical records.
package dump
