// Copyright 2024 The Circuit Authors
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

package adt

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorCode is the closed taxonomy spec.md §7 describes: the evaluator
// never returns an error outside this set. Modeled on
// internal/core/adt/errors.go's ErrorCode, which plays the same role
// for cuelang.org/go's Bottom values.
type ErrorCode int

const (
	UndefinedIdentifier ErrorCode = iota
	UndefinedArray
	UndefinedCircuit
	UndefinedCircuitObject
	UndefinedStaticFunction
	UndefinedFunction
	IncompatibleTypes
	InvalidSpread
	InvalidIndex
	InvalidLength
	InvalidArrayAccess
	InvalidCircuitAccess
	InvalidStaticFunction
	InvalidExponent
	IfElseConditional
	FunctionDidNotReturn
	ExpectedCircuitValue
	// GadgetError wraps a failure surfaced by the constraint-system
	// collaborator (spec.md §5's "gadget-layer panics ... propagate as
	// as-is via conversion"); see SPEC_FULL.md §4.1 for why this
	// module converts rather than panics.
	GadgetError
)

func (c ErrorCode) String() string {
	switch c {
	case UndefinedIdentifier:
		return "UndefinedIdentifier"
	case UndefinedArray:
		return "UndefinedArray"
	case UndefinedCircuit:
		return "UndefinedCircuit"
	case UndefinedCircuitObject:
		return "UndefinedCircuitObject"
	case UndefinedStaticFunction:
		return "UndefinedStaticFunction"
	case UndefinedFunction:
		return "UndefinedFunction"
	case IncompatibleTypes:
		return "IncompatibleTypes"
	case InvalidSpread:
		return "InvalidSpread"
	case InvalidIndex:
		return "InvalidIndex"
	case InvalidLength:
		return "InvalidLength"
	case InvalidArrayAccess:
		return "InvalidArrayAccess"
	case InvalidCircuitAccess:
		return "InvalidCircuitAccess"
	case InvalidStaticFunction:
		return "InvalidStaticFunction"
	case InvalidExponent:
		return "InvalidExponent"
	case IfElseConditional:
		return "IfElseConditional"
	case FunctionDidNotReturn:
		return "FunctionDidNotReturn"
	case ExpectedCircuitValue:
		return "ExpectedCircuitValue"
	case GadgetError:
		return "GadgetError"
	}
	return "UnknownError"
}

// EvalError is the evaluator's single error type: a code from the
// closed taxonomy plus a human-readable message and, for GadgetError,
// the wrapped cause. Never panics on a user-reachable path (spec.md
// §7: "All errors are surfaced ... by value").
type EvalError struct {
	Code ErrorCode
	Msg  string
	Err  error // wrapped cause, set only for GadgetError
}

func (e *EvalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Err }

func newErr(code ErrorCode, format string, args ...any) *EvalError {
	return &EvalError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func NewUndefinedIdentifier(name string) *EvalError {
	return newErr(UndefinedIdentifier, "%s", name)
}

func NewUndefinedArray(name string) *EvalError {
	return newErr(UndefinedArray, "%s", name)
}

func NewUndefinedCircuit(name string) *EvalError {
	return newErr(UndefinedCircuit, "%s", name)
}

func NewUndefinedCircuitObject(name string) *EvalError {
	return newErr(UndefinedCircuitObject, "%s", name)
}

func NewUndefinedStaticFunction(name string) *EvalError {
	return newErr(UndefinedStaticFunction, "%s", name)
}

func NewUndefinedFunction() *EvalError {
	return newErr(UndefinedFunction, "callee expression is not a function")
}

func NewIncompatibleTypes(lhs Value, op Op, rhs Value) *EvalError {
	return newErr(IncompatibleTypes, "%s %s %s", lhs.Kind(), op, rhs.Kind())
}

func NewIncompatibleTypesText(text string) *EvalError {
	return newErr(IncompatibleTypes, "%s", text)
}

func NewInvalidSpread(name string) *EvalError {
	return newErr(InvalidSpread, "%s is not an array", name)
}

func NewInvalidIndex(text string) *EvalError {
	return newErr(InvalidIndex, "%s", text)
}

func NewInvalidLength(expected, got int) *EvalError {
	return newErr(InvalidLength, "expected length %d, got %d", expected, got)
}

func NewInvalidArrayAccess() *EvalError {
	return newErr(InvalidArrayAccess, "indexed value is not an array")
}

func NewInvalidCircuitAccess() *EvalError {
	return newErr(InvalidCircuitAccess, "member access on a non-circuit value")
}

func NewInvalidStaticFunction(name string) *EvalError {
	return newErr(InvalidStaticFunction, "%s is not a static function", name)
}

func NewInvalidExponent(text string) *EvalError {
	return newErr(InvalidExponent, "%s", text)
}

func NewIfElseConditional() *EvalError {
	return newErr(IfElseConditional, "condition must be boolean")
}

func NewFunctionDidNotReturn() *EvalError {
	return newErr(FunctionDidNotReturn, "callee produced no return value")
}

func NewExpectedCircuitValue(name string) *EvalError {
	return newErr(ExpectedCircuitValue, "missing binding for field %s", name)
}

func NewGadgetError(err error) *EvalError {
	wrapped := xerrors.Errorf("constraint system rejected the operation: %w", err)
	return &EvalError{Code: GadgetError, Msg: "constraint system rejected the operation", Err: wrapped}
}
