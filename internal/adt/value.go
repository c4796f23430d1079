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

// Package adt holds the data model the evaluator (package eval)
// operates on: the tagged Value union (spec.md §3), the expression AST
// node types it walks (spec.md §4.1), the Op enum, the closed error
// taxonomy (spec.md §7), and the scope store (spec.md §3 "Scope
// store"). It mirrors the shape of cuelang.org/go's internal/core/adt
// package: one small struct per variant implementing a common
// interface, rather than a hand-rolled sum type.
package adt

import (
	"github.com/circuitdsl/evalcore/internal/gadget"
)

// Value is the tagged union described in spec.md §3. Every evaluator
// result, and everything the scope store holds, is a Value.
type Value interface {
	Kind() Kind
	// Clone returns an independent Value. For gadget-backed variants
	// this aliases the same underlying constraint variable (spec.md
	// §5); for structural variants (Array, CircuitExpression) it
	// performs a shallow copy of the element/member slice.
	Clone() Value
}

// Boolean wraps a constrained boolean witness.
type Boolean struct{ Gadget *gadget.Boolean }

func (Boolean) Kind() Kind   { return BooleanKind }
func (b Boolean) Clone() Value { return Boolean{Gadget: b.Gadget} }

// Integer wraps a constrained fixed-width integer witness.
type Integer struct{ Gadget *gadget.Integer }

func (Integer) Kind() Kind     { return IntegerKind }
func (i Integer) Clone() Value { return Integer{Gadget: i.Gadget} }

// FieldElement wraps a native prime-field witness.
type FieldElement struct{ Gadget *gadget.Field }

func (FieldElement) Kind() Kind     { return FieldKind }
func (f FieldElement) Clone() Value { return FieldElement{Gadget: f.Gadget} }

// GroupElement wraps an elliptic-curve point witness.
type GroupElement struct{ Gadget *gadget.Group }

func (GroupElement) Kind() Kind     { return GroupKind }
func (g GroupElement) Clone() Value { return GroupElement{Gadget: g.Gadget} }

// Array is an ordered, fixed-length sequence of Values sharing one
// primitive variant (spec.md §3 invariant 3).
type Array struct{ Elements []Value }

func (Array) Kind() Kind { return ArrayKind }
func (a Array) Clone() Value {
	elems := make([]Value, len(a.Elements))
	copy(elems, a.Elements)
	return Array{Elements: elems}
}

// CircuitMember is one member of a CircuitDefinition template:
// either a data field (DeclaredType set, Function nil) or a function
// member (Function set).
type CircuitMember struct {
	Name         string
	DeclaredType Type
	Function     *FunctionAST // nil for data fields
	IsStatic     bool
}

// CircuitDefinition is the compile-time record schema (spec.md §3); it
// is never itself a runtime value produced by an expression, only a
// lookup target for Circuit literals and static access.
type CircuitDefinition struct {
	Name    string
	Members []CircuitMember // declaration order
}

func (CircuitDefinition) Kind() Kind     { return CircuitDefinitionKind }
func (d CircuitDefinition) Clone() Value { return d }

// BoundMember is one resolved (name, value) pair of a CircuitExpression,
// kept in the owning CircuitDefinition's declaration order (spec.md §3
// invariant 4).
type BoundMember struct {
	Name  string
	Value Value
}

// CircuitExpression is an instantiated record value.
type CircuitExpression struct {
	CircuitName string
	Members     []BoundMember // declaration order
}

func (CircuitExpression) Kind() Kind { return CircuitExpressionKind }
func (c CircuitExpression) Clone() Value {
	members := make([]BoundMember, len(c.Members))
	copy(members, c.Members)
	return CircuitExpression{CircuitName: c.CircuitName, Members: members}
}

// Lookup finds a bound member by name, linear scan, first match
// (spec.md §3 invariant 4 / §4.6.2).
func (c CircuitExpression) Lookup(name string) (Value, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Lookup finds a member of a circuit definition template by name,
// linear scan, first match (spec.md §4.6.3).
func (d CircuitDefinition) Lookup(name string) (CircuitMember, bool) {
	for _, m := range d.Members {
		if m.Name == name {
			return m, true
		}
	}
	return CircuitMember{}, false
}

// Function is a callable value: a function AST plus, if it is bound to
// a record (an instance or static method), that record's identifier
// (spec.md §3).
type Function struct {
	OwningCircuit string // "" if not a method
	AST           *FunctionAST
}

func (Function) Kind() Kind     { return FunctionKind }
func (f Function) Clone() Value { return f }

// Static wraps a Function to mark a class-level rather than
// instance-level binding (spec.md §3).
type Static struct{ Function Function }

func (Static) Kind() Kind     { return StaticKind }
func (s Static) Clone() Value { return Static{Function: s.Function} }

// Mutable wraps any value to mark it as an lvalue suitable for
// reassignment by the (external) statement-level collaborator
// (spec.md §3, §9). Every operator unwraps it transparently and
// idempotently (spec.md §3 invariant 2).
type Mutable struct{ Value Value }

func (Mutable) Kind() Kind     { return MutableKind }
func (m Mutable) Clone() Value { return Mutable{Value: m.Value.Clone()} }

// Unresolved is a numeric literal not yet bound to a concrete
// primitive type (spec.md §3, §4.8).
type Unresolved struct{ Text string }

func (Unresolved) Kind() Kind     { return UnresolvedKind }
func (u Unresolved) Clone() Value { return u }

// Return is the pseudo-value produced by function bodies (spec.md §3,
// §4.7).
type Return struct{ Values []Value }

func (Return) Kind() Kind { return ReturnKind }
func (r Return) Clone() Value {
	values := make([]Value, len(r.Values))
	copy(values, r.Values)
	return Return{Values: values}
}

// Unwrap strips at most one layer of Mutable, per spec.md §4.3 step 1
// / §9 ("unwrap-on-use keeps the interior uniquely owned at operator
// sites"). It is idempotent to call on an already-unwrapped value.
func Unwrap(v Value) Value {
	if m, ok := v.(Mutable); ok {
		return m.Value
	}
	return v
}
