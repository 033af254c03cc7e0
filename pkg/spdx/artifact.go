// Copyright 2026 Chainguard, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spdx

// Artifact holds the provenance fields shared by every distributable unit.
// Package, File, and Snippet embed it by value.
//
// Supplier and Originator are references to standalone Identity elements,
// not owned copies.
type Artifact struct {
	ElementCore

	ArtifactURL string
	Supplier    *Identity
	Originator  *Identity

	ExternalReferences []ExternalReference
}

// ExternalRefs returns the artifact's external references in declaration
// order, never nil.
func (a Artifact) ExternalRefs() []ExternalReference {
	if len(a.ExternalReferences) == 0 {
		return []ExternalReference{}
	}
	return a.ExternalReferences
}

// AddExternalRef appends an external reference to the artifact.
func (a *Artifact) AddExternalRef(ref ExternalReference) {
	a.ExternalReferences = append(a.ExternalReferences, ref)
}

// Package is an artifact distributed as a versioned unit.
type Package struct {
	Artifact

	Version string
}

// File is an artifact distributed as a single file.
type File struct {
	Artifact

	FileType string
}

// Range is an inclusive start/end span within a file, counted in bytes or
// lines depending on the field holding it.
type Range struct {
	Start int
	End   int
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r == Range{}
}

// Snippet is a sub-range of a file distributed as its own artifact.
// FromFile names the file the ranges index into; ranges without a parent
// file are meaningless, which the validate package flags.
type Snippet struct {
	Artifact

	FromFile  *File
	ByteRange Range
	LineRange Range
}
