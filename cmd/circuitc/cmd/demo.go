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

package cmd

import "github.com/circuitdsl/evalcore/internal/adt"

// demoCircuitName is the single circuit the CLI's "run" subcommand
// exercises: a two-field-element point with a static "sum" function.
// The tokenizer/parser is out of scope (spec.md §1), so this AST is
// built directly as Go values rather than read from source text.
const demoCircuitName = "Point"

func demoCircuitDefinition() adt.CircuitDefinition {
	return adt.CircuitDefinition{
		Name: demoCircuitName,
		Members: []adt.CircuitMember{
			{Name: "x", DeclaredType: adt.Field()},
			{Name: "y", DeclaredType: adt.Field()},
			{
				Name:     "sum",
				IsStatic: true,
				Function: &adt.FunctionAST{
					Name:   "sum",
					Params: []string{"a", "b"},
					Body: adt.BinaryExpr{
						Op:   adt.AddOp,
						Left: adt.Identifier{Name: "a"},
						Right: adt.Identifier{Name: "b"},
					},
				},
			},
		},
	}
}

// demoExpr builds `Point::sum(Point{x: 3, y: 4}.x, Point{x: 3, y: 4}.y)`,
// exercising record construction, instance field access, static
// function lookup, and a function call in one expression.
func demoExpr() adt.Expr {
	point := adt.CircuitExpr{
		Name: demoCircuitName,
		Bindings: []adt.FieldBinding{
			{Name: "x", Value: adt.FieldLiteral{Text: "3"}},
			{Name: "y", Value: adt.FieldLiteral{Text: "4"}},
		},
	}
	return adt.FunctionCallExpr{
		Callee: adt.CircuitStaticFunctionAccessExpr{
			Type: adt.Identifier{Name: demoCircuitName},
			Name: "sum",
		},
		Args: []adt.Expr{
			adt.CircuitMemberAccessExpr{Value: point, Name: "x"},
			adt.CircuitMemberAccessExpr{Value: point, Name: "y"},
		},
	}
}
