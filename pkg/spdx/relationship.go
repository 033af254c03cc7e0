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

import "fmt"

// RelationshipType describes how two elements relate, read From -> To.
type RelationshipType string

// The initial relationship vocabulary. Future revisions may extend the set;
// existing values keep their meaning.
const (
	Describes            RelationshipType = "DESCRIBES"
	DescribedBy          RelationshipType = "DESCRIBED_BY"
	Contains             RelationshipType = "CONTAINS"
	ContainedBy          RelationshipType = "CONTAINED_BY"
	DependsOn            RelationshipType = "DEPENDS_ON"
	DependencyOf         RelationshipType = "DEPENDENCY_OF"
	DependencyManifestOf RelationshipType = "DEPENDENCY_MANIFEST_OF"
	BuildDependencyOf    RelationshipType = "BUILD_DEPENDENCY_OF"
	DevDependencyOf      RelationshipType = "DEV_DEPENDENCY_OF"
	OptionalDependencyOf RelationshipType = "OPTIONAL_DEPENDENCY_OF"
	ProvidedDependencyOf RelationshipType = "PROVIDED_DEPENDENCY_OF"
	TestDependencyOf     RelationshipType = "TEST_DEPENDENCY_OF"
	RuntimeDependencyOf  RelationshipType = "RUNTIME_DEPENDENCY_OF"
	ExampleOf            RelationshipType = "EXAMPLE_OF"
	Generates            RelationshipType = "GENERATES"
	GeneratedFrom        RelationshipType = "GENERATED_FROM"
)

// relationshipTypes is the vocabulary in declaration order.
var relationshipTypes = []RelationshipType{
	Describes,
	DescribedBy,
	Contains,
	ContainedBy,
	DependsOn,
	DependencyOf,
	DependencyManifestOf,
	BuildDependencyOf,
	DevDependencyOf,
	OptionalDependencyOf,
	ProvidedDependencyOf,
	TestDependencyOf,
	RuntimeDependencyOf,
	ExampleOf,
	Generates,
	GeneratedFrom,
}

var inverses = map[RelationshipType]RelationshipType{
	Describes:     DescribedBy,
	DescribedBy:   Describes,
	Contains:      ContainedBy,
	ContainedBy:   Contains,
	DependsOn:     DependencyOf,
	DependencyOf:  DependsOn,
	Generates:     GeneratedFrom,
	GeneratedFrom: Generates,
}

// RelationshipTypes returns the full vocabulary. The returned slice is a
// fresh copy per call.
func RelationshipTypes() []RelationshipType {
	out := make([]RelationshipType, len(relationshipTypes))
	copy(out, relationshipTypes)
	return out
}

// ParseRelationshipType converts a string into a RelationshipType,
// rejecting values outside the vocabulary.
func ParseRelationshipType(s string) (RelationshipType, error) {
	t := RelationshipType(s)
	if !t.Known() {
		return "", fmt.Errorf("unknown relationship type %q", s)
	}
	return t, nil
}

// Known reports whether t is part of the vocabulary.
func (t RelationshipType) Known() bool {
	for _, known := range relationshipTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Invert returns the type as read from the other end of the edge, e.g.
// CONTAINS becomes CONTAINED_BY. Types without a defined inverse return
// themselves with ok set to false.
func (t RelationshipType) Invert() (inv RelationshipType, ok bool) {
	if inv, ok := inverses[t]; ok {
		return inv, true
	}
	return t, false
}

// Relationship is a typed directed edge between two elements. From and To
// are held by reference; a relationship never owns its endpoints.
//
// Nothing here rejects From == To. Callers that consider self-edges
// invalid run the validate package over the document.
type Relationship struct {
	ElementCore

	Type RelationshipType
	From Element
	To   Element
}
