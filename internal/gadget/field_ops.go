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

// NewField allocates a native prime-field element witness, reducing
// the given value modulo the system's field.
func (s *Schema) NewField(value *big.Int) *Field {
	idx := s.alloc(s.reduce(value))
	s.emit("field.alloc")
	return &Field{Term: Term{Index: idx, Value: s.reduce(value)}}
}

// FieldAdd implements ConstraintSystem.
func (s *Schema) FieldAdd(a, b *Field) *Field {
	s.emit("field.add")
	return s.NewField(new(big.Int).Add(a.Value, b.Value))
}

// FieldSub implements ConstraintSystem.
func (s *Schema) FieldSub(a, b *Field) *Field {
	s.emit("field.sub")
	return s.NewField(new(big.Int).Sub(a.Value, b.Value))
}

// FieldMul implements ConstraintSystem.
func (s *Schema) FieldMul(a, b *Field) *Field {
	s.emit("field.mul")
	return s.NewField(new(big.Int).Mul(a.Value, b.Value))
}

// FieldDiv implements ConstraintSystem. Division by the zero witness
// is not invertible in a prime field and fails, per spec.md §4.3.
func (s *Schema) FieldDiv(a, b *Field) (*Field, error) {
	if b.Value.Sign() == 0 {
		return nil, divisionByZero("field.div")
	}
	s.emit("field.div")
	inv := new(big.Int).ModInverse(b.Value, s.modulus)
	return s.NewField(new(big.Int).Mul(a.Value, inv)), nil
}

// FieldPow implements ConstraintSystem. The exponent is carried as an
// Integer witness, never a Field one (spec.md §4.3, InvalidExponent is
// rejected earlier, at the eval layer, before this is ever called with
// a field exponent).
func (s *Schema) FieldPow(a *Field, exp *Integer) *Field {
	s.emit("field.pow")
	return s.NewField(new(big.Int).Exp(a.Value, exp.Value, s.modulus))
}
