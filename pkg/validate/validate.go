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

// Package validate is the opt-in checker for the invariants the spdx model
// deliberately leaves unenforced: identifier presence and uniqueness,
// relationship well-formedness, locator syntax, integrity-method
// completeness. The model stays agnostic; callers who want enforcement run
// a rule set over a document scope and act on the joined errors.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/spdx3/pkg/spdx"
)

// Scope is one document and the elements declared under it, the unit a rule
// set evaluates.
type Scope struct {
	Document *spdx.Document
	Elements []spdx.Element
}

// all returns the document followed by its declared elements.
func (s Scope) all() []spdx.Element {
	out := make([]spdx.Element, 0, len(s.Elements)+1)
	if s.Document != nil {
		out = append(out, s.Document)
	}
	return append(out, s.Elements...)
}

// Function checks one rule against a scope and returns its violations.
type Function func(Scope) []error

// Severity represents a severity level.
type Severity struct {
	Name  string
	Value int
}

const (
	SeverityErrorLevel = iota
	SeverityWarningLevel
	SeverityInfoLevel
)

var (
	SeverityError   = Severity{"ERROR", SeverityErrorLevel}
	SeverityWarning = Severity{"WARNING", SeverityWarningLevel}
	SeverityInfo    = Severity{"INFO", SeverityInfoLevel}
)

// Rule represents a checker rule.
type Rule struct {
	Name        string
	Description string
	Severity    Severity
	CheckFunc   Function
}

// Rules is a list of Rule.
type Rules []Rule

// Eval runs the rules over a scope. Violations at ERROR severity come back
// joined into one error; WARNING and INFO findings are logged through the
// context logger and do not fail the evaluation.
func (r Rules) Eval(ctx context.Context, scope Scope) error {
	log := clog.FromContext(ctx)

	errs := []error{}
	for _, rule := range r {
		for _, err := range rule.CheckFunc(scope) {
			switch rule.Severity.Value {
			case SeverityErrorLevel:
				errs = append(errs, fmt.Errorf("%s: %w", rule.Name, err))
			case SeverityWarningLevel:
				log.Warnf("%s: %v", rule.Name, err)
			default:
				log.Infof("%s: %v", rule.Name, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Document runs the default rule set over a document and the elements
// declared under it.
func Document(ctx context.Context, doc *spdx.Document, elements ...spdx.Element) error {
	return DefaultRules().Eval(ctx, Scope{Document: doc, Elements: elements})
}
