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

// NewInteger allocates a fixed-width constrained integer witness. The
// range constraint 0 <= value < 2^width is checked eagerly here; a
// real R1CS backend would instead emit bit-decomposition constraints,
// but the observable contract (reject out-of-range witnesses) is the
// same.
func (s *Schema) NewInteger(width int, value *big.Int) (*Integer, error) {
	if value.Sign() < 0 || value.BitLen() > width {
		return nil, overflow("integer.alloc", width)
	}
	idx := s.alloc(value)
	s.emit("integer.alloc")
	return &Integer{Term: Term{Index: idx, Value: new(big.Int).Set(value)}, Width: width}, nil
}

func (s *Schema) integerWidth(a, b *Integer) (int, error) {
	if a.Width != b.Width {
		return 0, widthMismatch("integer", a.Width, b.Width)
	}
	return a.Width, nil
}

// IntegerAdd implements ConstraintSystem.
func (s *Schema) IntegerAdd(a, b *Integer) (*Integer, error) {
	width, err := s.integerWidth(a, b)
	if err != nil {
		return nil, err
	}
	s.emit("integer.add")
	sum := new(big.Int).Add(a.Value, b.Value)
	return s.NewInteger(width, sum)
}

// IntegerSub implements ConstraintSystem.
func (s *Schema) IntegerSub(a, b *Integer) (*Integer, error) {
	width, err := s.integerWidth(a, b)
	if err != nil {
		return nil, err
	}
	s.emit("integer.sub")
	diff := new(big.Int).Sub(a.Value, b.Value)
	return s.NewInteger(width, diff)
}

// IntegerMul implements ConstraintSystem.
func (s *Schema) IntegerMul(a, b *Integer) (*Integer, error) {
	width, err := s.integerWidth(a, b)
	if err != nil {
		return nil, err
	}
	s.emit("integer.mul")
	prod := new(big.Int).Mul(a.Value, b.Value)
	return s.NewInteger(width, prod)
}

// IntegerDiv implements ConstraintSystem.
func (s *Schema) IntegerDiv(a, b *Integer) (*Integer, error) {
	width, err := s.integerWidth(a, b)
	if err != nil {
		return nil, err
	}
	if b.Value.Sign() == 0 {
		return nil, divisionByZero("integer.div")
	}
	s.emit("integer.div")
	q := new(big.Int).Quo(a.Value, b.Value)
	return s.NewInteger(width, q)
}

// IntegerPow implements ConstraintSystem.
func (s *Schema) IntegerPow(a, b *Integer) (*Integer, error) {
	s.emit("integer.pow")
	r := new(big.Int).Exp(a.Value, b.Value, nil)
	return s.NewInteger(a.Width, r)
}

// IntegerEq implements ConstraintSystem.
func (s *Schema) IntegerEq(a, b *Integer) *Boolean {
	s.emit("integer.eq")
	return s.NewBoolean(a.Value.Cmp(b.Value) == 0)
}

// CondSelectInteger implements ConstraintSystem: a constrained
// conditional select over two integer witnesses of the same width
// (spec.md §4.4).
func (s *Schema) CondSelectInteger(cond *Boolean, a, b *Integer) (*Integer, error) {
	width, err := s.integerWidth(a, b)
	if err != nil {
		return nil, err
	}
	s.emit("select.integer")
	if cond.Value {
		return s.NewInteger(width, a.Value)
	}
	return s.NewInteger(width, b.Value)
}
