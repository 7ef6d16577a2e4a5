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

// DecodeError is returned by Parse for any failure to turn file bytes into a
// DataSet: wrong signature, unsupported transfer syntax, truncated input,
// malformed element encodings. Callers that need the root cause can unwrap.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding dicom file: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
