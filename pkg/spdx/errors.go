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

import "errors"

// The model itself raises none of these during plain construction; they are
// the taxonomy consumers wrap when they add enforcement on top of it.
var (
	// ErrConstruction reports a malformed required field.
	ErrConstruction = errors.New("invalid construction")

	// ErrIntegrityMismatch reports a failed integrity verification.
	ErrIntegrityMismatch = errors.New("integrity mismatch")

	// ErrUnsupportedAlgorithm reports a hash algorithm the verifying
	// consumer does not implement.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)
