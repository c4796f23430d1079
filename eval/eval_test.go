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

// TestEnforceIsDeterministic covers spec.md §8 invariant 1: two
// independent runs of the same AST under fresh contexts allocate the
// same number of constraint groups and witness the same value.
func TestEnforceIsDeterministic(t *testing.T) {
	expr := adt.BinaryExpr{Op: adt.AddOp, Left: integerLit("1", 8), Right: integerLit("2", 8)}

	run := func() (string, int) {
		c := newTestContext()
		v, err := Enforce(c, "", "", nil, expr)
		require.NoError(t, err)
		got, err := witnessString(v)
		require.NoError(t, err)
		return got, c.CS.ConstraintCount()
	}

	v1, n1 := run()
	v2, n2 := run()
	assert.Equal(t, v1, v2)
	assert.Equal(t, n1, n2)
}

func TestEndToEndScenarios(t *testing.T) {
	t.Run("integer add", func(t *testing.T) {
		c := newTestContext()
		v, err := Enforce(c, "", "", []adt.Type{adt.Integer(32)}, adt.BinaryExpr{
			Op: adt.AddOp, Left: integerLit("1", 32), Right: integerLit("2", 32),
		})
		require.NoError(t, err)
		got, err := witnessString(v)
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("ternary selects then branch", func(t *testing.T) {
		c := newTestContext()
		v, err := Enforce(c, "", "", []adt.Type{adt.Integer(32)}, adt.IfElseExpr{
			Condition: adt.BooleanLiteral{Value: true},
			Then:      integerLit("7", 32),
			Else:      integerLit("9", 32),
		})
		require.NoError(t, err)
		got, err := witnessString(v)
		require.NoError(t, err)
		assert.Equal(t, "7", got)
	})

	t.Run("record literal binding order independence", func(t *testing.T) {
		c := newTestContext()
		c.Store.Store(adt.Scope("").Child("Point"), adt.CircuitDefinition{
			Name: "Point",
			Members: []adt.CircuitMember{
				{Name: "x", DeclaredType: adt.Integer(32)},
				{Name: "y", DeclaredType: adt.Integer(32)},
			},
		})
		v, err := Enforce(c, "", "", nil, adt.CircuitExpr{
			Name: "Point",
			Bindings: []adt.FieldBinding{
				{Name: "y", Value: integerLit("4", 32)},
				{Name: "x", Value: integerLit("3", 32)},
			},
		})
		require.NoError(t, err)
		inst := v.(adt.CircuitExpression)
		require.Equal(t, []string{"x", "y"}, []string{inst.Members[0].Name, inst.Members[1].Name})
		xv, _ := witnessString(inst.Members[0].Value)
		yv, _ := witnessString(inst.Members[1].Value)
		assert.Equal(t, "3", xv)
		assert.Equal(t, "4", yv)
	})

	t.Run("array slice from index to end", func(t *testing.T) {
		c := newTestContext()
		c.Store.Store(adt.Scope("").Child("xs"), adt.Array{Elements: []adt.Value{
			mustInteger(c, "1", 32), mustInteger(c, "2", 32), mustInteger(c, "3", 32),
		}})
		v, err := Enforce(c, "", "", nil, adt.ArrayAccessExpr{
			Array: adt.Identifier{Name: "xs"},
			Index: adt.IndexOrRange{IsRange: true, From: integerLit("1", 32)},
		})
		require.NoError(t, err)
		arr := v.(adt.Array)
		require.Len(t, arr.Elements, 2)
		a, _ := witnessString(arr.Elements[0])
		b, _ := witnessString(arr.Elements[1])
		assert.Equal(t, "2", a)
		assert.Equal(t, "3", b)
	})

	t.Run("array spread appends", func(t *testing.T) {
		c := newTestContext()
		c.Store.Store(adt.Scope("").Child("xs"), adt.Array{Elements: []adt.Value{
			mustInteger(c, "1", 32), mustInteger(c, "2", 32),
		}})
		v, err := Enforce(c, "", "", []adt.Type{adt.Array(adt.Integer(32), 3)}, adt.ArrayExpr{
			Elements: []adt.SpreadOrExpression{
				spreadExpr("xs"),
				elementExpr(integerLit("3", 32)),
			},
		})
		require.NoError(t, err)
		arr := v.(adt.Array)
		require.Len(t, arr.Elements, 3)
		for i, want := range []string{"1", "2", "3"} {
			got, _ := witnessString(arr.Elements[i])
			assert.Equal(t, want, got)
		}
	})

	t.Run("pow with field exponent is invalid", func(t *testing.T) {
		c := newTestContext()
		_, err := Enforce(c, "", "", nil, adt.BinaryExpr{
			Op: adt.PowOp, Left: integerLit("2", 32), Right: adt.FieldLiteral{Text: "5"},
		})
		require.Error(t, err)
		evalErr, ok := err.(*adt.EvalError)
		require.True(t, ok)
		assert.Equal(t, adt.InvalidExponent, evalErr.Code)
		assert.Contains(t, evalErr.Msg, "5")
	})
}
