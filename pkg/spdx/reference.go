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

	purl "github.com/package-url/packageurl-go"
)

// External reference categories.
const (
	CategoryPackageManager = "PACKAGE-MANAGER"
	CategorySecurity       = "SECURITY"
	CategoryPersistentID   = "PERSISTENT-ID"
	CategoryOther          = "OTHER"
)

// External reference types.
const (
	RefTypePurl = "purl"
	RefTypeCPE  = "cpe23Type"
)

// ExternalReference points from an artifact to a resource outside the
// document graph: package-manager coordinates, an advisory, a homepage.
// It is a plain descriptor, immutable once constructed.
type ExternalReference struct {
	Category string
	Type     string
	Locator  string
	Comment  string
}

// NewPackageManagerRef builds the PACKAGE-MANAGER external reference for a
// Package URL. A package should carry at most one purl reference.
func NewPackageManagerRef(p *purl.PackageURL) (ExternalReference, error) {
	if p == nil {
		return ExternalReference{}, fmt.Errorf("building purl reference: nil package URL: %w", ErrConstruction)
	}

	return ExternalReference{
		Category: CategoryPackageManager,
		Type:     RefTypePurl,
		Locator:  p.ToString(),
	}, nil
}

// ExternalDocumentRef points to an element defined in a different SPDX
// document. VerifiedWith carries the integrity method used to check the
// remote document before trusting the reference.
type ExternalDocumentRef struct {
	DocumentRef  string
	Locator      string
	VerifiedWith IntegrityMethod
}
