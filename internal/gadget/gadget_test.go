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

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerArithmetic(t *testing.T) {
	s := NewBN254()
	a, err := s.NewInteger(8, big.NewInt(5))
	require.NoError(t, err)
	b, err := s.NewInteger(8, big.NewInt(3))
	require.NoError(t, err)

	sum, err := s.IntegerAdd(a, b)
	require.NoError(t, err)
	assert.Equal(t, "8", sum.Value.String())

	diff, err := s.IntegerSub(a, b)
	require.NoError(t, err)
	assert.Equal(t, "2", diff.Value.String())

	prod, err := s.IntegerMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "15", prod.Value.String())
}

func TestIntegerOverflowRejected(t *testing.T) {
	s := NewBN254()
	_, err := s.NewInteger(4, big.NewInt(16))
	require.Error(t, err)
}

func TestIntegerDivisionByZero(t *testing.T) {
	s := NewBN254()
	a, _ := s.NewInteger(8, big.NewInt(1))
	zero, _ := s.NewInteger(8, big.NewInt(0))
	_, err := s.IntegerDiv(a, zero)
	require.Error(t, err)
}

func TestIntegerWidthMismatch(t *testing.T) {
	s := NewBN254()
	a, _ := s.NewInteger(8, big.NewInt(1))
	b, _ := s.NewInteger(16, big.NewInt(1))
	_, err := s.IntegerAdd(a, b)
	require.Error(t, err)
}

func TestFieldArithmeticWrapsModulus(t *testing.T) {
	s := New(big.NewInt(17))
	a := s.NewField(big.NewInt(15))
	b := s.NewField(big.NewInt(5))
	sum := s.FieldAdd(a, b)
	assert.Equal(t, "3", sum.Value.String()) // 20 mod 17

	inv, err := s.FieldDiv(a, b)
	require.NoError(t, err)
	// 15 / 5 == 3 (mod 17)
	assert.Equal(t, "3", inv.Value.String())
}

func TestFieldDivisionByZero(t *testing.T) {
	s := New(big.NewInt(17))
	a := s.NewField(big.NewInt(1))
	zero := s.NewField(big.NewInt(0))
	_, err := s.FieldDiv(a, zero)
	require.Error(t, err)
}

func TestGroupAddIdentity(t *testing.T) {
	s := NewBN254()
	p, err := s.NewGroup(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	infinity, err := s.NewGroup(big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)

	sum := s.GroupAdd(p, infinity)
	assert.Equal(t, 0, sum.X.Cmp(p.X))
	assert.Equal(t, 0, sum.Y.Cmp(p.Y))
}

func TestGroupRejectsOffCurvePoint(t *testing.T) {
	s := NewBN254()
	_, err := s.NewGroup(big.NewInt(1), big.NewInt(1))
	require.Error(t, err)
}

func TestGroupAddInverseYieldsIdentity(t *testing.T) {
	s := NewBN254()
	p, err := s.NewGroup(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	neg, err := s.NewGroup(big.NewInt(1), new(big.Int).Sub(s.modulus, big.NewInt(2)))
	require.NoError(t, err)

	sum := s.GroupAdd(p, neg)
	assert.Equal(t, 0, sum.X.Sign())
	assert.Equal(t, 0, sum.Y.Sign())
}

func TestConstraintCountIsMonotonic(t *testing.T) {
	s := NewBN254()
	before := s.ConstraintCount()
	a, _ := s.NewInteger(8, big.NewInt(1))
	b, _ := s.NewInteger(8, big.NewInt(2))
	_, _ = s.IntegerAdd(a, b)
	after := s.ConstraintCount()
	assert.Greater(t, after, before)
}
