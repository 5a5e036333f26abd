// Copyright 2026 Strata Authors
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

// Package errs is the optimizer's error taxonomy (§7): Unresolved is a
// precondition failure surfaced to the caller with no recovery,
// RuleConvergenceExceeded is a non-fatal warning the caller may ignore,
// and InternalInvariantViolation is fatal — the caller must discard the
// result.
package errs

import "fmt"

type Kind int8

const (
	Unresolved Kind = iota
	RuleConvergenceExceeded
	InternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case Unresolved:
		return "Unresolved"
	case RuleConvergenceExceeded:
		return "RuleConvergenceExceeded"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// OptimizerError is the optimizer's typed error for the Kinds above. An
// error returned by a rule itself reaches the caller wrapped by
// fmt.Errorf, not as an OptimizerError.
type OptimizerError struct {
	Kind    Kind
	Message string
}

func (e *OptimizerError) Error() string {
	return fmt.Sprintf("optimizer: %s: %s", e.Kind, e.Message)
}

func New(kind Kind, format string, args ...interface{}) *OptimizerError {
	return &OptimizerError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether target is an *OptimizerError of the same Kind, so
// errors.Is matches two OptimizerErrors by Kind regardless of Message.
// A bare Kind is not an error and cannot be used as the target.
func (e *OptimizerError) Is(target error) bool {
	other, ok := target.(*OptimizerError)
	return ok && other.Kind == e.Kind
}

func IsKind(err error, kind Kind) bool {
	oe, ok := err.(*OptimizerError)
	return ok && oe.Kind == kind
}
