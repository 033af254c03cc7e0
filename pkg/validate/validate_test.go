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
	"context"
	"testing"

	purl "github.com/package-url/packageurl-go"
	"github.com/stretchr/testify/require"

	"chainguard.dev/spdx3/pkg/spdx"
)

func wellFormedScope(t *testing.T) (*spdx.Document, []spdx.Element) {
	t.Helper()

	ref, err := spdx.NewPackageManagerRef(&purl.PackageURL{
		Type:      "apk",
		Namespace: "wolfi",
		Name:      "crane",
		Version:   "0.20.2-r1",
	})
	require.NoError(t, err)

	pkg := &spdx.Package{
		Artifact: spdx.Artifact{
			ElementCore:        spdx.ElementCore{SPDXID: "SPDXRef-Package-crane", Name: "crane"},
			ExternalReferences: []spdx.ExternalReference{ref},
		},
		Version: "0.20.2-r1",
	}

	doc := &spdx.Document{
		ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-DOCUMENT", Name: "apk-crane"},
		Namespace:   "https://spdx.org/spdxdocs/chainguard/crane",
		Creator: &spdx.Identity{
			ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Identity-chainguard", Name: "Chainguard"},
			Kind:        spdx.KindOrganization,
		},
	}

	rel := &spdx.Relationship{
		ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Relationship-1"},
		Type:        spdx.Describes,
		From:        doc,
		To:          pkg,
	}

	return doc, []spdx.Element{pkg, rel}
}

func TestDocument_wellFormed(t *testing.T) {
	doc, elements := wellFormedScope(t)
	require.NoError(t, Document(context.Background(), doc, elements...))
}

func TestDocument_missingID(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.File{
		Artifact: spdx.Artifact{ElementCore: spdx.ElementCore{Name: "orphan.go"}},
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "spdxid-present")
	require.ErrorContains(t, err, "orphan.go")
}

func TestDocument_duplicateIDs(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.File{
		Artifact: spdx.Artifact{ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Package-crane"}},
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "spdxid-unique")
	require.ErrorContains(t, err, "SPDXRef-Package-crane")
}

func TestDocument_missingEndpoint(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.Relationship{
		ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Relationship-2"},
		Type:        spdx.Contains,
		From:        doc,
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "relationship-endpoints")
}

func TestDocument_unknownRelationshipType(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.Relationship{
		ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Relationship-2"},
		Type:        spdx.RelationshipType("ANCESTOR_OF"),
		From:        doc,
		To:          elements[0],
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "relationship-type-known")
	require.ErrorContains(t, err, "ANCESTOR_OF")
}

func TestDocument_selfEdgeIsWarningOnly(t *testing.T) {
	doc, elements := wellFormedScope(t)
	pkg := elements[0]
	elements = append(elements, &spdx.Relationship{
		ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Relationship-2"},
		Type:        spdx.DependsOn,
		From:        pkg,
		To:          pkg,
	})

	// Self-edges are logged, not fatal: the model leaves From == To open
	// and the default rules only warn about it.
	require.NoError(t, Document(context.Background(), doc, elements...))
}

func TestDocument_badLocator(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.Package{
		Artifact: spdx.Artifact{
			ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Package-bad"},
			ExternalReferences: []spdx.ExternalReference{{
				Category: spdx.CategoryPackageManager,
				Type:     spdx.RefTypePurl,
				Locator:  "not a uri",
			}},
		},
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "external-ref-locator")
}

func TestDocument_emptyDocRefLocator(t *testing.T) {
	doc, elements := wellFormedScope(t)
	doc.AddExternalDocumentRef(spdx.ExternalDocumentRef{
		DocumentRef: "DocumentRef-upstream",
	})

	err := Document(context.Background(), doc, elements...)
	require.Error(t, err)
	require.ErrorContains(t, err, "DocumentRef-upstream")
}

func TestDocument_incompleteHashIsWarningOnly(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.File{
		Artifact: spdx.Artifact{ElementCore: spdx.ElementCore{
			SPDXID:       "SPDXRef-File-main",
			VerifiedWith: spdx.Hash{Algorithm: "SHA256"},
		}},
	})

	require.NoError(t, Document(context.Background(), doc, elements...))
}

func TestDocument_snippetWithoutParentIsWarningOnly(t *testing.T) {
	doc, elements := wellFormedScope(t)
	elements = append(elements, &spdx.Snippet{
		Artifact:  spdx.Artifact{ElementCore: spdx.ElementCore{SPDXID: "SPDXRef-Snippet-1"}},
		LineRange: spdx.Range{Start: 1, End: 10},
	})

	require.NoError(t, Document(context.Background(), doc, elements...))
}

func TestRules_defaultSet(t *testing.T) {
	names := map[string]bool{}
	for _, rule := range DefaultRules() {
		require.NotEmpty(t, rule.Name)
		require.NotEmpty(t, rule.Description)
		require.NotNil(t, rule.CheckFunc)
		require.False(t, names[rule.Name], "duplicate rule name %q", rule.Name)
		names[rule.Name] = true
	}
}
