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

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/release-utils/version"
)

// IdentityKind distinguishes what an Identity stands for.
type IdentityKind string

const (
	KindUnset        IdentityKind = ""
	KindPerson       IdentityKind = "person"
	KindOrganization IdentityKind = "organization"
	KindTool         IdentityKind = "tool"
)

// Identity is a named actor in the document: the person, organization, or
// tool that created, supplied, or originated something. Identities are
// standalone elements referenced from artifacts and documents, never owned
// by them.
type Identity struct {
	ElementCore

	Kind  IdentityKind
	Email string
}

// Label renders the identity the way SPDX creator and supplier fields
// expect it, e.g. "Organization: Chainguard" or "Person: Jane Doe
// (jane@example.com)". An identity with no kind renders as its bare name.
func (i Identity) Label() string {
	name := i.Name
	if i.Email != "" {
		name = fmt.Sprintf("%s (%s)", name, i.Email)
	}
	if i.Kind == KindUnset {
		return name
	}
	return cases.Title(language.English).String(string(i.Kind)) + ": " + name
}

// NewToolIdentity returns the tool identity for the running binary, with
// its build version stamped into the name.
func NewToolIdentity(name string) *Identity {
	return &Identity{
		ElementCore: ElementCore{
			Name: fmt.Sprintf("%s (%s)", name, version.GetVersionInfo().GitVersion),
		},
		Kind: KindTool,
	}
}
