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

// IntegrityMethod is a pluggable mechanism for proving that an element's
// content has not been tampered with.
//
// The interface is sealed: only variants declared in this package satisfy
// it, so code consuming a verification method can switch over the closed
// set exhaustively. Hash is the only variant shipped here; signature and
// MAC variants are expected to join the set as the model grows.
type IntegrityMethod interface {
	// Generate computes the proof value for the given input data.
	Generate(data []byte) string

	// Verify compares a candidate value against the method's held proof
	// and reports the outcome.
	Verify(candidate string) string

	isIntegrityMethod()
}

// Hash is an integrity method naming a digest algorithm and its computed
// value. An empty Value means the digest has not been generated yet.
//
// Generate and Verify are stubs: this model defines the contract shape and
// holds the algorithm/value pair, while actual digest computation belongs
// to the consumer wiring in a hashing implementation. Generate returns the
// empty placeholder and Verify echoes its candidate unchanged.
type Hash struct {
	// Algorithm identifies the digest algorithm, e.g. "SHA256". No registry
	// check happens here; rejecting unknown algorithms is the hashing
	// consumer's call (see ErrUnsupportedAlgorithm).
	Algorithm string

	// Value is the computed digest, hex or base64 encoded.
	Value string
}

// Generate implements IntegrityMethod. It returns the empty placeholder;
// digest computation is supplied by the consumer.
func (h Hash) Generate(data []byte) string {
	return ""
}

// Verify implements IntegrityMethod. It echoes the candidate unchanged;
// comparison against a computed digest is supplied by the consumer.
func (h Hash) Verify(candidate string) string {
	return candidate
}

func (Hash) isIntegrityMethod() {}
