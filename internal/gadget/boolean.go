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

package gadget

import "math/big"

func boolTerm(v bool) *big.Int {
	if v {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// NewBoolean allocates a constrained boolean witness.
func (s *Schema) NewBoolean(value bool) *Boolean {
	idx := s.alloc(boolTerm(value))
	s.emit("boolean.alloc")
	return &Boolean{Term: Term{Index: idx, Value: boolTerm(value)}, Value: value}
}

// BooleanEq implements ConstraintSystem.
func (s *Schema) BooleanEq(a, b *Boolean) *Boolean {
	s.emit("boolean.eq")
	return s.NewBoolean(a.Value == b.Value)
}

// And implements ConstraintSystem.
func (s *Schema) And(a, b *Boolean) *Boolean {
	s.emit("boolean.and")
	return s.NewBoolean(a.Value && b.Value)
}

// Or implements ConstraintSystem.
func (s *Schema) Or(a, b *Boolean) *Boolean {
	s.emit("boolean.or")
	return s.NewBoolean(a.Value || b.Value)
}

// Not implements ConstraintSystem.
func (s *Schema) Not(a *Boolean) *Boolean {
	s.emit("boolean.not")
	return s.NewBoolean(!a.Value)
}

// CondSelectBoolean implements ConstraintSystem: a constrained
// conditional select over two boolean witnesses (spec.md §4.4).
func (s *Schema) CondSelectBoolean(cond *Boolean, a, b *Boolean) *Boolean {
	s.emit("select.boolean")
	if cond.Value {
		return s.NewBoolean(a.Value)
	}
	return s.NewBoolean(b.Value)
}
