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

// DataSet models a DICOM Data Set as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
//
// Elements preserve the order in which they appear in the file. Tag lookup is
// linear; the data sets this package deals in are metadata sized, so no index
// is maintained.
type DataSet struct {
	Elements []*DataElement
}

// Len returns the number of elements in the data set, excluding elements of
// nested data sets.
func (ds *DataSet) Len() int {
	return len(ds.Elements)
}

// Get returns the first element with the given tag, or nil if the data set
// contains no such element.
func (ds *DataSet) Get(tag DataElementTag) *DataElement {
	for _, elem := range ds.Elements {
		if elem.Tag == tag {
			return elem
		}
	}
	return nil
}

func (ds *DataSet) append(elem *DataElement) {
	ds.Elements = append(ds.Elements, elem)
}
