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
	"fmt"
	"io"
)

// Sink receives the records of a walk in traversal order. The walker treats a
// Sink as a write only, append only channel and performs no buffering or
// retries of its own; a non-nil error aborts the walk.
//
// BeginChildren announces that subsequent records are children of the record
// most recently appended, until the matching EndChildren. Line-oriented sinks
// may ignore both since each Record already carries its depth.
type Sink interface {
	Append(r Record) error
	BeginChildren() error
	EndChildren() error
}

// TextSink writes one record per line onto an io.Writer.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a Sink that writes records as lines of text to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w}
}

// Append writes the record and a trailing newline.
func (s *TextSink) Append(r Record) error {
	_, err := fmt.Fprintln(s.w, r.String())
	return err
}

// BeginChildren is a no-op: depth is expressed through indentation.
func (s *TextSink) BeginChildren() error { return nil }

// EndChildren is a no-op.
func (s *TextSink) EndChildren() error { return nil }

// Node is one entry of the hierarchy built by TreeSink. Label carries the
// record text without indentation; depth is expressed structurally through
// Children.
type Node struct {
	Label    string
	Record   Record
	Children []*Node
}

// TreeSink builds a parent/child node hierarchy mirroring the walk's depth
// structure, for display in expandable tree widgets.
type TreeSink struct {
	root  *Node
	stack []*Node
	last  *Node
}

// NewTreeSink returns an empty TreeSink.
func NewTreeSink() *TreeSink {
	root := &Node{}
	return &TreeSink{root: root, stack: []*Node{root}}
}

// Root returns the invisible root node whose children are the top level
// records of the walk.
func (s *TreeSink) Root() *Node {
	return s.root
}

// Append attaches a new node for the record to the current parent.
func (s *TreeSink) Append(r Record) error {
	n := &Node{Label: r.Label(), Record: r}
	parent := s.stack[len(s.stack)-1]
	parent.Children = append(parent.Children, n)
	s.last = n
	return nil
}

// BeginChildren makes the most recently appended node the current parent.
func (s *TreeSink) BeginChildren() error {
	if s.last == nil {
		return fmt.Errorf("BeginChildren before any record was appended")
	}
	s.stack = append(s.stack, s.last)
	s.last = nil
	return nil
}

// EndChildren restores the previous parent.
func (s *TreeSink) EndChildren() error {
	if len(s.stack) <= 1 {
		return fmt.Errorf("EndChildren without matching BeginChildren")
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.last = s.stack[len(s.stack)-1]
	return nil
}
