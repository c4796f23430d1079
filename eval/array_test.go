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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitdsl/evalcore/internal/adt"
)

func elementExpr(expr adt.Expr) adt.SpreadOrExpression {
	return adt.SpreadOrExpression{Expression: expr}
}

func spreadExpr(name string) adt.SpreadOrExpression {
	return adt.SpreadOrExpression{SpreadName: name, IsSpread: true}
}

func TestEvaluateArrayConstruction(t *testing.T) {
	c := newTestContext()
	expected := []adt.Type{adt.Array(adt.Integer(8), 3)}
	expr := adt.ArrayExpr{Elements: []adt.SpreadOrExpression{
		elementExpr(integerLit("1", 8)),
		elementExpr(integerLit("2", 8)),
		elementExpr(integerLit("3", 8)),
	}}

	v, err := Enforce(c, "", "", expected, expr)
	require.NoError(t, err)
	arr, ok := v.(adt.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)

	for i, want := range []string{"1", "2", "3"} {
		got, err := witnessString(arr.Elements[i])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEvaluateArrayConstructionLengthMismatch(t *testing.T) {
	c := newTestContext()
	expected := []adt.Type{adt.Array(adt.Integer(8), 3)}
	expr := adt.ArrayExpr{Elements: []adt.SpreadOrExpression{
		elementExpr(integerLit("1", 8)),
	}}

	_, err := Enforce(c, "", "", expected, expr)
	require.Error(t, err)
	evalErr, ok := err.(*adt.EvalError)
	require.True(t, ok)
	assert.Equal(t, adt.InvalidLength, evalErr.Code)
}

// TestArraySpreadPreservesOrder covers spec.md §8's spread-order
// testable property: elements appear in declaration order, with a
// spread splicing its source array's elements in place.
func TestArraySpreadPreservesOrder(t *testing.T) {
	c := newTestContext()
	tail := adt.Array{Elements: []adt.Value{
		mustInteger(c, "2", 8),
		mustInteger(c, "3", 8),
	}}
	c.Store.Store(adt.Scope("").Child("tail"), tail)

	expected := []adt.Type{adt.Array(adt.Integer(8), 3)}
	expr := adt.ArrayExpr{Elements: []adt.SpreadOrExpression{
		elementExpr(integerLit("1", 8)),
		spreadExpr("tail"),
	}}

	v, err := Enforce(c, "", "", expected, expr)
	require.NoError(t, err)
	arr, ok := v.(adt.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)

	for i, want := range []string{"1", "2", "3"} {
		got, err := witnessString(arr.Elements[i])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestArrayFullRangeSliceIsIdempotent covers spec.md §8's full-range
// slice property: arr[..] reproduces the same elements in the same
// order.
func TestArrayFullRangeSliceIsIdempotent(t *testing.T) {
	c := newTestContext()
	original := adt.Array{Elements: []adt.Value{
		mustInteger(c, "1", 8),
		mustInteger(c, "2", 8),
		mustInteger(c, "3", 8),
	}}
	c.Store.Store(adt.Scope("").Child("xs"), original)

	expr := adt.ArrayAccessExpr{
		Array: adt.Identifier{Name: "xs"},
		Index: adt.IndexOrRange{IsRange: true},
	}
	v, err := Enforce(c, "", "", nil, expr)
	require.NoError(t, err)
	sliced, ok := v.(adt.Array)
	require.True(t, ok)
	require.Len(t, sliced.Elements, 3)
	for i, want := range []string{"1", "2", "3"} {
		got, err := witnessString(sliced.Elements[i])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEvaluateArrayAccessIndex(t *testing.T) {
	c := newTestContext()
	arr := adt.Array{Elements: []adt.Value{
		mustInteger(c, "10", 8),
		mustInteger(c, "20", 8),
	}}
	c.Store.Store(adt.Scope("").Child("xs"), arr)

	expr := adt.ArrayAccessExpr{
		Array: adt.Identifier{Name: "xs"},
		Index: adt.IndexOrRange{Index: integerLit("1", 8)},
	}
	v, err := Enforce(c, "", "", nil, expr)
	require.NoError(t, err)
	got, err := witnessString(v)
	require.NoError(t, err)
	assert.Equal(t, "20", got)
}

func TestEvaluateArrayAccessOutOfRange(t *testing.T) {
	c := newTestContext()
	arr := adt.Array{Elements: []adt.Value{mustInteger(c, "10", 8)}}
	c.Store.Store(adt.Scope("").Child("xs"), arr)

	expr := adt.ArrayAccessExpr{
		Array: adt.Identifier{Name: "xs"},
		Index: adt.IndexOrRange{Index: integerLit("5", 8)},
	}
	_, err := Enforce(c, "", "", nil, expr)
	require.Error(t, err)
	evalErr, ok := err.(*adt.EvalError)
	require.True(t, ok)
	assert.Equal(t, adt.InvalidIndex, evalErr.Code)
}
