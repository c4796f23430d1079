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

func pointDefinition() adt.CircuitDefinition {
	return adt.CircuitDefinition{
		Name: "Point",
		Members: []adt.CircuitMember{
			{Name: "x", DeclaredType: adt.Field()},
			{Name: "y", DeclaredType: adt.Field()},
			{
				Name:     "sum",
				IsStatic: true,
				Function: &adt.FunctionAST{
					Name:   "sum",
					Params: []string{"a", "b"},
					Body:   adt.BinaryExpr{Op: adt.AddOp, Left: adt.Identifier{Name: "a"}, Right: adt.Identifier{Name: "b"}},
				},
			},
			{
				Name: "double",
				Function: &adt.FunctionAST{
					Name: "double",
					Body: adt.BinaryExpr{
						Op:    adt.AddOp,
						Left:  adt.Identifier{Name: "x"},
						Right: adt.Identifier{Name: "x"},
					},
				},
			},
		},
	}
}

func TestEvaluateCircuitLiteral(t *testing.T) {
	c := newTestContext()
	c.Store.Store(adt.Scope("").Child("Point"), pointDefinition())

	expr := adt.CircuitExpr{
		Name: "Point",
		Bindings: []adt.FieldBinding{
			{Name: "y", Value: adt.FieldLiteral{Text: "4"}},
			{Name: "x", Value: adt.FieldLiteral{Text: "3"}},
		},
	}
	v, err := Enforce(c, "", "", nil, expr)
	require.NoError(t, err)
	inst, ok := v.(adt.CircuitExpression)
	require.True(t, ok)
	require.Len(t, inst.Members, 4)
	// declaration order is preserved regardless of binding order.
	assert.Equal(t, "x", inst.Members[0].Name)
	assert.Equal(t, "y", inst.Members[1].Name)

	got, err := witnessString(inst.Members[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestEvaluateCircuitLiteralMissingBinding(t *testing.T) {
	c := newTestContext()
	c.Store.Store(adt.Scope("").Child("Point"), pointDefinition())

	expr := adt.CircuitExpr{Name: "Point", Bindings: []adt.FieldBinding{
		{Name: "x", Value: adt.FieldLiteral{Text: "3"}},
	}}
	_, err := Enforce(c, "", "", nil, expr)
	require.Error(t, err)
	evalErr, ok := err.(*adt.EvalError)
	require.True(t, ok)
	assert.Equal(t, adt.ExpectedCircuitValue, evalErr.Code)
}

func TestEvaluateCircuitStaticAccessAndCall(t *testing.T) {
	c := newTestContext()
	c.Store.Store(adt.Scope("").Child("Point"), pointDefinition())
	c.Invoker = bodyInvokerForTest{}

	point := adt.CircuitExpr{Name: "Point", Bindings: []adt.FieldBinding{
		{Name: "x", Value: adt.FieldLiteral{Text: "3"}},
		{Name: "y", Value: adt.FieldLiteral{Text: "4"}},
	}}
	expr := adt.FunctionCallExpr{
		Callee: adt.CircuitStaticFunctionAccessExpr{Type: adt.Identifier{Name: "Point"}, Name: "sum"},
		Args: []adt.Expr{
			adt.CircuitMemberAccessExpr{Value: point, Name: "x"},
			adt.CircuitMemberAccessExpr{Value: point, Name: "y"},
		},
	}

	v, err := Enforce(c, "", "", nil, expr)
	require.NoError(t, err)
	got, err := witnessString(v)
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}

func TestEvaluateCircuitStaticAccessRejectsInstanceMethod(t *testing.T) {
	c := newTestContext()
	c.Store.Store(adt.Scope("").Child("Point"), pointDefinition())

	expr := adt.CircuitStaticFunctionAccessExpr{Type: adt.Identifier{Name: "Point"}, Name: "double"}
	_, err := Enforce(c, "", "", nil, expr)
	require.Error(t, err)
	evalErr, ok := err.(*adt.EvalError)
	require.True(t, ok)
	assert.Equal(t, adt.InvalidStaticFunction, evalErr.Code)
}

// TestEvaluateCircuitInstanceMethodReadsBoundField exercises spec.md
// §4.6.2 end to end: accessing double off a Point instance must bind
// the instance's sibling fields into the method's call scope so the
// body's bare "x" identifier resolves to the bound value 3, not to an
// undefined identifier or a re-evaluated circuit literal.
func TestEvaluateCircuitInstanceMethodReadsBoundField(t *testing.T) {
	c := newTestContext()
	c.Store.Store(adt.Scope("").Child("Point"), pointDefinition())
	c.Invoker = bodyInvokerForTest{}

	point := adt.CircuitExpr{Name: "Point", Bindings: []adt.FieldBinding{
		{Name: "x", Value: adt.FieldLiteral{Text: "3"}},
		{Name: "y", Value: adt.FieldLiteral{Text: "4"}},
	}}
	expr := adt.FunctionCallExpr{
		Callee: adt.CircuitMemberAccessExpr{Value: point, Name: "double"},
		Args:   nil,
	}

	v, err := Enforce(c, "", "", nil, expr)
	require.NoError(t, err)
	got, err := witnessString(v)
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

// bodyInvokerForTest is a minimal Invoker: it evaluates a FunctionAST
// whose Body is a bare adt.Expr, binding positional args into a fresh
// call scope. It mirrors cmd/circuitc/cmd's bodyInvoker without
// importing the cmd package from a test (avoids an import cycle-prone
// dependency of eval on cmd).
type bodyInvokerForTest struct{}

func (bodyInvokerForTest) Invoke(c *Context, outerScope, functionScope adt.Scope, fn *adt.FunctionAST, args []adt.Expr) (adt.Value, error) {
	callScope := outerScope.Child(fn.Name)
	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		v, err := Enforce(c, outerScope, functionScope, nil, args[i])
		if err != nil {
			return nil, err
		}
		c.Store.Store(callScope.Child(param), v)
	}
	body, ok := fn.Body.(adt.Expr)
	if !ok {
		return nil, adt.NewUndefinedFunction()
	}
	result, err := Enforce(c, outerScope, callScope, nil, body)
	if err != nil {
		return nil, err
	}
	return adt.Return{Values: []adt.Value{result}}, nil
}
