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

// Package gadget is the "concrete gadget library" spec.md §1 and §6
// describe as an external collaborator: it is not part of the
// evaluator's semantics, only of its required surface. The evaluator
// (package eval) never reaches past the ConstraintSystem interface
// defined here into the arithmetic this package performs.
//
// This implementation is a reference backend for testing eval, not a
// production proving system: it tracks witnesses and a flat
// constraint log in memory rather than building an actual R1CS/AIR
// over a pairing-friendly curve. Naming (Schema, Term, register) is
// borrowed from the domain convention the retrieved pack shows for
// this exact layering.
package gadget

import (
	"math/big"

	"github.com/circuitdsl/evalcore/internal/gadget/field"
)

// Term is a single allocated witness: a value together with the index
// of the constraint-system variable it occupies. Two Terms with the
// same Index alias the same circuit wire (spec.md §5, "cloned values
// are independent witnesses that refer to the same constraint
// variables").
type Term struct {
	Index int
	Value *big.Int
}

// ConstraintSystem is the surface spec.md §6 requires of the gadget
// backend: allocation of boolean/integer/field witnesses, conditional
// select over booleans and integers, and primitive arithmetic gadgets.
type ConstraintSystem interface {
	// Modulus returns the prime field modulus this system operates over.
	Modulus() *big.Int

	NewBoolean(value bool) *Boolean
	NewInteger(width int, value *big.Int) (*Integer, error)
	NewField(value *big.Int) *Field
	NewGroup(x, y *big.Int) (*Group, error)

	IntegerAdd(a, b *Integer) (*Integer, error)
	IntegerSub(a, b *Integer) (*Integer, error)
	IntegerMul(a, b *Integer) (*Integer, error)
	IntegerDiv(a, b *Integer) (*Integer, error)
	IntegerPow(a, b *Integer) (*Integer, error)
	IntegerEq(a, b *Integer) *Boolean

	FieldAdd(a, b *Field) *Field
	FieldSub(a, b *Field) *Field
	FieldMul(a, b *Field) *Field
	FieldDiv(a, b *Field) (*Field, error)
	FieldPow(a *Field, exp *Integer) *Field

	GroupAdd(a, b *Group) *Group
	GroupSub(a, b *Group) *Group
	GroupEq(a, b *Group) *Boolean

	BooleanEq(a, b *Boolean) *Boolean
	And(a, b *Boolean) *Boolean
	Or(a, b *Boolean) *Boolean
	Not(a *Boolean) *Boolean

	CondSelectBoolean(cond *Boolean, a, b *Boolean) *Boolean
	CondSelectInteger(cond *Boolean, a, b *Integer) (*Integer, error)

	// ConstraintCount reports the number of constraint groups emitted
	// so far; spec.md §8 invariant 1 relies on this being a pure
	// function of the AST traversal order.
	ConstraintCount() int
}

// Schema is the in-memory reference ConstraintSystem. It allocates
// variable indices monotonically (spec.md §5 "Ordering guarantee") and
// keeps a flat constraint log that tests and the debug printer can
// inspect.
type Schema struct {
	modulus     *big.Int
	nextVar     int
	constraints []string
}

// New returns a Schema operating over the given prime modulus.
func New(modulus *big.Int) *Schema {
	return &Schema{modulus: new(big.Int).Set(modulus)}
}

// NewBN254 returns a Schema over the scalar field modulus of the
// BN254 curve, the default for the reference backend and the CLI.
func NewBN254() *Schema {
	return New(field.BN254ScalarFieldModulus())
}

func (s *Schema) Modulus() *big.Int { return new(big.Int).Set(s.modulus) }

func (s *Schema) alloc(value *big.Int) int {
	idx := s.nextVar
	s.nextVar++
	return idx
}

func (s *Schema) emit(name string) {
	s.constraints = append(s.constraints, name)
}

// ConstraintCount implements ConstraintSystem.
func (s *Schema) ConstraintCount() int { return len(s.constraints) }

// ConstraintLog returns the ordered names of emitted constraint
// groups, for debug printing and golden-style tests.
func (s *Schema) ConstraintLog() []string {
	out := make([]string, len(s.constraints))
	copy(out, s.constraints)
	return out
}

func (s *Schema) reduce(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, s.modulus)
	if r.Sign() < 0 {
		r.Add(r, s.modulus)
	}
	return r
}
