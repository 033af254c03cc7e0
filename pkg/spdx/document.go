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

import "time"

// Fixed constants of the model. Serializers read these; they are not
// user-settable document fields.
const (
	// SPDXVersion is the SPDX specification version this model implements.
	SPDXVersion = "SPDX-3.0"

	// DataLicense is the license under which SPDX document data is made
	// available.
	DataLicense = "CC0-1.0"
)

// Profile names an SPDX 3.0 profile a document declares conformance to.
type Profile string

const (
	ProfileCore      Profile = "core"
	ProfileSoftware  Profile = "software"
	ProfileSecurity  Profile = "security"
	ProfileLicensing Profile = "licensing"
	ProfileBuild     Profile = "build"
	ProfileUsage     Profile = "usage"
)

// Document is the root element of an SBOM: document-level metadata, the
// identity that created it, the namespace scoping its element identifiers,
// and pointers to elements living in other SPDX documents.
//
// A document conceptually owns the elements declared under it, but element
// values are constructed independently and tied to the document by
// identifier, not containment.
type Document struct {
	ElementCore

	Namespace string
	Created   time.Time
	Creator   *Identity

	ExternalDocumentRefs []ExternalDocumentRef
	Profiles             []Profile
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{}
}

// SPDXVersion returns the fixed specification version of the model.
func (d Document) SPDXVersion() string {
	return SPDXVersion
}

// DataLicense returns the fixed data license of the model.
func (d Document) DataLicense() string {
	return DataLicense
}

// ExternalDocRefs returns the document's external document references,
// never nil.
func (d Document) ExternalDocRefs() []ExternalDocumentRef {
	if len(d.ExternalDocumentRefs) == 0 {
		return []ExternalDocumentRef{}
	}
	return d.ExternalDocumentRefs
}

// AddExternalDocumentRef appends a reference to an element defined in
// another SPDX document.
func (d *Document) AddExternalDocumentRef(ref ExternalDocumentRef) {
	d.ExternalDocumentRefs = append(d.ExternalDocumentRefs, ref)
}
