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
	"fmt"

	"github.com/circuitdsl/evalcore/internal/adt"
)

// Enforce is the expression dispatcher (spec.md §4.1): pure structural
// recursion on AST shape, routing to the appropriate evaluator. No
// node is visited twice; the same fileScope/functionScope/c.CS are
// threaded through every recursive call.
func Enforce(c *Context, fileScope, functionScope adt.Scope, expectedTypes []adt.Type, expr adt.Expr) (adt.Value, error) {
	switch x := expr.(type) {
	case adt.Identifier:
		return evaluateIdentifier(c, fileScope, functionScope, expectedTypes, x)

	case adt.BooleanLiteral:
		return adt.Boolean{Gadget: c.CS.NewBoolean(x.Value)}, nil

	case adt.IntegerLiteral:
		return evaluateIntegerLiteral(c, x)

	case adt.FieldLiteral:
		return evaluateFieldLiteral(c, x)

	case adt.GroupLiteral:
		return evaluateGroupLiteral(c, x)

	case adt.ImplicitLiteral:
		return enforceNumberImplicit(c, expectedTypes, x.Text)

	case adt.BinaryExpr:
		return evaluateBinary(c, fileScope, functionScope, expectedTypes, x)

	case adt.NotExpr:
		return evaluateNot(c, fileScope, functionScope, x)

	case adt.IfElseExpr:
		return evaluateIfElse(c, fileScope, functionScope, expectedTypes, x)

	case adt.ArrayExpr:
		return evaluateArray(c, fileScope, functionScope, expectedTypes, x)

	case adt.ArrayAccessExpr:
		return evaluateArrayAccess(c, fileScope, functionScope, x)

	case adt.CircuitExpr:
		return evaluateCircuit(c, fileScope, functionScope, x)

	case adt.CircuitMemberAccessExpr:
		return evaluateCircuitMemberAccess(c, fileScope, functionScope, x)

	case adt.CircuitStaticFunctionAccessExpr:
		return evaluateCircuitStaticAccess(c, fileScope, functionScope, x)

	case adt.FunctionCallExpr:
		return evaluateFunctionCall(c, fileScope, functionScope, x)

	default:
		return nil, fmt.Errorf("eval: unhandled expression node %T", expr)
	}
}
