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

// Package spdx holds the in-memory data model for SPDX 3.0 documents: the
// element kinds that make up an SBOM graph (documents, artifacts,
// identities, relationships), the references that tie them to resources
// inside and outside the graph, and the integrity-method contract used to
// verify an element's authenticity.
//
// The package is construction and accessors only. Serialization to the
// concrete SPDX formats, digest computation, and graph validation are left
// to consumers; see the validate package for an opt-in checker covering the
// invariants this model does not enforce itself.
package spdx
