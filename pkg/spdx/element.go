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

// Element represents any referenceable entity in an SPDX document graph.
type Element interface {
	// ID returns the unique identifier for this element.
	ID() string
}

// ElementCore holds the identity fields shared by every element in the
// graph. Concrete element types embed it by value.
//
// SPDXID is reserved here but never assigned by this package; identifier
// allocation belongs to the consumer building the document. An element with
// an empty SPDXID is not yet addressable.
type ElementCore struct {
	SPDXID      string
	Name        string
	Summary     string
	Description string
	Comment     string

	// VerifiedWith is the integrity method attached to this element, if any.
	VerifiedWith IntegrityMethod
}

// ID implements the Element interface.
func (e ElementCore) ID() string {
	return e.SPDXID
}

// Core returns the shared identity fields. Every concrete element type
// exposes it through embedding, which lets consumers reach the core of an
// Element without switching over the concrete kinds.
func (e ElementCore) Core() ElementCore {
	return e
}
