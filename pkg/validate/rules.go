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

package validate

import (
	"fmt"
	"net/url"

	"chainguard.dev/spdx3/pkg/spdx"
)

// DefaultRules returns the rule set Document evaluates.
func DefaultRules() Rules {
	return Rules{
		{
			Name:        "spdxid-present",
			Description: "every element has an assigned SPDXID",
			Severity:    SeverityError,
			CheckFunc:   checkIDsPresent,
		},
		{
			Name:        "spdxid-unique",
			Description: "SPDXIDs are unique within the document scope",
			Severity:    SeverityError,
			CheckFunc:   checkIDsUnique,
		},
		{
			Name:        "relationship-endpoints",
			Description: "relationships reference two existing elements",
			Severity:    SeverityError,
			CheckFunc:   checkRelationshipEndpoints,
		},
		{
			Name:        "relationship-type-known",
			Description: "relationship types come from the known vocabulary",
			Severity:    SeverityError,
			CheckFunc:   checkRelationshipTypes,
		},
		{
			Name:        "relationship-self-edge",
			Description: "relationships do not point an element at itself",
			Severity:    SeverityWarning,
			CheckFunc:   checkSelfEdges,
		},
		{
			Name:        "external-ref-locator",
			Description: "external reference locators parse as URIs where the category requires one",
			Severity:    SeverityError,
			CheckFunc:   checkLocators,
		},
		{
			Name:        "hash-incomplete",
			Description: "attached hashes carry both an algorithm and a generated value",
			Severity:    SeverityWarning,
			CheckFunc:   checkHashes,
		},
		{
			Name:        "snippet-parent",
			Description: "ranged snippets name the file their ranges index into",
			Severity:    SeverityWarning,
			CheckFunc:   checkSnippetParents,
		},
		{
			Name:        "identity-kind",
			Description: "referenced identities declare person, organization, or tool",
			Severity:    SeverityInfo,
			CheckFunc:   checkIdentityKinds,
		},
	}
}

// corer is satisfied by every element type embedding spdx.ElementCore.
type corer interface {
	Core() spdx.ElementCore
}

func checkIDsPresent(scope Scope) []error {
	var errs []error
	for _, e := range scope.all() {
		if e.ID() == "" {
			errs = append(errs, fmt.Errorf("element %q has no SPDXID", nameOf(e)))
		}
	}
	return errs
}

func checkIDsUnique(scope Scope) []error {
	var errs []error
	seen := map[string]bool{}
	for _, e := range scope.all() {
		id := e.ID()
		if id == "" {
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate SPDXID %q", id))
		}
		seen[id] = true
	}
	return errs
}

func checkRelationshipEndpoints(scope Scope) []error {
	var errs []error
	for _, rel := range relationships(scope) {
		if rel.From == nil || rel.To == nil {
			errs = append(errs, fmt.Errorf("relationship %q is missing an endpoint", rel.ID()))
		}
	}
	return errs
}

func checkRelationshipTypes(scope Scope) []error {
	var errs []error
	for _, rel := range relationships(scope) {
		if !rel.Type.Known() {
			errs = append(errs, fmt.Errorf("relationship %q has unknown type %q", rel.ID(), rel.Type))
		}
	}
	return errs
}

func checkSelfEdges(scope Scope) []error {
	var errs []error
	for _, rel := range relationships(scope) {
		if rel.From == nil || rel.To == nil {
			continue
		}
		if rel.From == rel.To || (rel.From.ID() != "" && rel.From.ID() == rel.To.ID()) {
			errs = append(errs, fmt.Errorf("relationship %q relates %q to itself", rel.ID(), rel.From.ID()))
		}
	}
	return errs
}

// uriCategories are the external reference categories whose locator must
// parse as a URI.
var uriCategories = map[string]bool{
	spdx.CategoryPackageManager: true,
	spdx.CategoryPersistentID:   true,
}

func checkLocators(scope Scope) []error {
	var errs []error
	for _, e := range scope.Elements {
		a, ok := artifactOf(e)
		if !ok {
			continue
		}
		for _, ref := range a.ExternalRefs() {
			if !uriCategories[ref.Category] {
				continue
			}
			if err := checkURI(ref.Locator); err != nil {
				errs = append(errs, fmt.Errorf("artifact %q: %s locator: %w", a.ID(), ref.Category, err))
			}
		}
	}
	if scope.Document != nil {
		for _, ref := range scope.Document.ExternalDocRefs() {
			if err := checkURI(ref.Locator); err != nil {
				errs = append(errs, fmt.Errorf("external document ref %q: %w", ref.DocumentRef, err))
			}
		}
	}
	return errs
}

func checkURI(locator string) error {
	if locator == "" {
		return fmt.Errorf("locator is empty")
	}
	u, err := url.Parse(locator)
	if err != nil {
		return fmt.Errorf("parsing locator %q: %w", locator, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("locator %q has no URI scheme", locator)
	}
	return nil
}

func checkHashes(scope Scope) []error {
	var errs []error
	for _, e := range scope.all() {
		c, ok := e.(corer)
		if !ok {
			continue
		}
		h, ok := c.Core().VerifiedWith.(spdx.Hash)
		if !ok {
			continue
		}
		if h.Algorithm == "" {
			errs = append(errs, fmt.Errorf("element %q: hash has no algorithm", e.ID()))
		}
		if h.Value == "" {
			errs = append(errs, fmt.Errorf("element %q: hash value not yet generated", e.ID()))
		}
	}
	return errs
}

func checkSnippetParents(scope Scope) []error {
	var errs []error
	for _, e := range scope.Elements {
		s, ok := e.(*spdx.Snippet)
		if !ok {
			continue
		}
		if s.FromFile == nil && (!s.ByteRange.IsZero() || !s.LineRange.IsZero()) {
			errs = append(errs, fmt.Errorf("snippet %q has ranges but no parent file", s.ID()))
		}
	}
	return errs
}

func checkIdentityKinds(scope Scope) []error {
	var errs []error
	report := func(owner string, role string, id *spdx.Identity) {
		if id != nil && id.Kind == spdx.KindUnset {
			errs = append(errs, fmt.Errorf("%s of %q does not declare person, organization, or tool", role, owner))
		}
	}
	if scope.Document != nil {
		report(scope.Document.ID(), "creator", scope.Document.Creator)
	}
	for _, e := range scope.Elements {
		if a, ok := artifactOf(e); ok {
			report(a.ID(), "supplier", a.Supplier)
			report(a.ID(), "originator", a.Originator)
		}
	}
	return errs
}

func relationships(scope Scope) []*spdx.Relationship {
	var out []*spdx.Relationship
	for _, e := range scope.Elements {
		if rel, ok := e.(*spdx.Relationship); ok {
			out = append(out, rel)
		}
	}
	return out
}

func artifactOf(e spdx.Element) (*spdx.Artifact, bool) {
	switch v := e.(type) {
	case *spdx.Package:
		return &v.Artifact, true
	case *spdx.File:
		return &v.Artifact, true
	case *spdx.Snippet:
		return &v.Artifact, true
	}
	return nil, false
}

func nameOf(e spdx.Element) string {
	if c, ok := e.(corer); ok && c.Core().Name != "" {
		return c.Core().Name
	}
	return e.ID()
}
