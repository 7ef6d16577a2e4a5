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

// Command dcmdump prints the metadata of a DICOM file as a human readable
// hierarchy, one record per element, skipping bulk binary payloads such as
// pixel data.
//
// Usage:
//
//	dcmdump [-tree] [-max-value N] [-depth N] file.dcm
//
// Exit status is 0 on success and 1 when the file cannot be decoded or its
// structure cannot be walked. Elements whose values cannot be rendered do not
// affect the exit status; they appear in the output with a placeholder.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yuchdev/DicomMetadataViewer/dicom"
	"github.com/yuchdev/DicomMetadataViewer/dump"
)

var (
	tree       = flag.Bool("tree", false, "render an expandable-style tree with connectors instead of indented lines")
	maxValue   = flag.Int("max-value", dump.DefaultMaxValueLength, "maximum rendered value length before truncation")
	depthLimit = flag.Int("depth", dump.DefaultDepthLimit, "maximum sequence nesting depth")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dcmdump [flags] <dicomfile>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	ds, err := dicom.Parse(file)
	if err != nil {
		return err
	}

	opts := []dump.WalkOption{
		dump.WithMaxValueLength(*maxValue),
		dump.WithDepthLimit(*depthLimit),
	}

	if *tree {
		sink := dump.NewTreeSink()
		if err := dump.Walk(ds, sink, opts...); err != nil {
			return err
		}
		printTree(out, sink.Root(), "")
		return nil
	}

	return dump.Walk(ds, dump.NewTextSink(out), opts...)
}

func printTree(w io.Writer, n *dump.Node, prefix string) {
	for i, child := range n.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(n.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		fmt.Fprintln(w, prefix+connector+child.Label)
		printTree(w, child, childPrefix)
	}
}
