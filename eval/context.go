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

// Package eval is the expression evaluator core: a recursive tree
// walker over the adt.Expr AST that returns an adt.Value and, as a
// side effect, mutates a gadget.ConstraintSystem and an adt.Store
// (spec.md §2). It is single-threaded and synchronous (spec.md §5):
// no Context here is ever shared across goroutines.
package eval

import (
	"github.com/circuitdsl/evalcore/internal/adt"
	"github.com/circuitdsl/evalcore/internal/gadget"
)

// Invoker is the function-body collaborator spec.md §1 and §4.7
// describe as an opaque callback: the evaluator never looks inside a
// FunctionAST's body, it only calls Invoke with the scopes spec.md
// §4.7 says to construct.
type Invoker interface {
	Invoke(c *Context, outerScope, functionScope adt.Scope, fn *adt.FunctionAST, args []adt.Expr) (adt.Value, error)
}

// Context carries what every recursive call shares besides its
// scopes and expected types: the two collaborators mutated as a side
// effect (the constraint system and the scope store), the function
// Invoker, and CurrentCircuit. Scopes themselves (file_scope,
// function_scope) and expected types are passed by value at each call
// site, per spec.md §2.
type Context struct {
	CS      gadget.ConstraintSystem
	Store   adt.Store
	Invoker Invoker

	// CurrentCircuit names the circuit whose method body is currently
	// being evaluated, if any. It backs "self" resolution in circuit
	// literals and static access (spec.md §4.6.1: "self is an alias
	// for the enclosing file scope's record"); evaluateFunctionCall
	// sets it before delegating to Invoker and restores the caller's
	// value afterward.
	CurrentCircuit string
}

// NewContext builds an evaluator context over the given constraint
// system, scope store, and function invoker.
func NewContext(cs gadget.ConstraintSystem, store adt.Store, invoker Invoker) *Context {
	return &Context{CS: cs, Store: store, Invoker: invoker}
}
