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

package eval

import "github.com/circuitdsl/evalcore/internal/adt"

// evaluateFunctionCall implements spec.md §4.7: the callee must
// evaluate to a Function; the evaluator then delegates to the
// body-owning Invoker collaborator, since function bodies are a
// statement-level construct this module never walks itself
// (spec.md §1). Around the delegated call, CurrentCircuit is set to
// the callee's owning circuit (if any) so a nested "self" reference
// resolves correctly (spec.md §4.6.1), and restored afterward so a
// caller's own "self" is unaffected by a callee that returns control.
// Per spec.md §4.7, the callee's outer scope is file_scope.record_identifier
// when the Function carries one, and file_scope unchanged otherwise.
func evaluateFunctionCall(c *Context, fileScope, functionScope adt.Scope, x adt.FunctionCallExpr) (adt.Value, error) {
	calleeVal, err := Enforce(c, fileScope, functionScope, nil, x.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := adt.Unwrap(calleeVal).(adt.Function)
	if !ok {
		return nil, adt.NewUndefinedFunction()
	}

	outerScope := fileScope
	if fn.OwningCircuit != "" {
		outerScope = fileScope.Child(fn.OwningCircuit)
	}

	prevCircuit := c.CurrentCircuit
	if fn.OwningCircuit != "" {
		c.CurrentCircuit = fn.OwningCircuit
	}
	result, err := c.Invoker.Invoke(c, outerScope, functionScope, fn.AST, x.Args)
	c.CurrentCircuit = prevCircuit
	if err != nil {
		return nil, err
	}

	return unwrapReturn(result)
}

// unwrapReturn implements spec.md §4.7's Return-envelope rules: a
// single-value Return unwraps transparently, a multi-value Return is
// surfaced as an Array (callers that destructure do so downstream of
// this module), and a non-Return result passes through unchanged — the
// Invoker collaborator is free to hand back a bare Value for a body
// with no explicit return statement.
func unwrapReturn(v adt.Value) (adt.Value, error) {
	ret, ok := v.(adt.Return)
	if !ok {
		return v, nil
	}
	switch len(ret.Values) {
	case 0:
		return nil, adt.NewFunctionDidNotReturn()
	case 1:
		return ret.Values[0], nil
	default:
		return adt.Array{Elements: ret.Values}, nil
	}
}
