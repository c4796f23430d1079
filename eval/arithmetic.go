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

import "github.com/circuitdsl/evalcore/internal/adt"

// evaluateBinary routes a BinaryExpr to the arithmetic, boolean, or
// comparison evaluator for its operator, after evaluating both
// operands under the same expected_types (spec.md §4.3: "Subexpressions
// receive the same scopes"; the original recursively passes the outer
// expected_types unchanged to both sides).
func evaluateBinary(c *Context, fileScope, functionScope adt.Scope, expectedTypes []adt.Type, x adt.BinaryExpr) (adt.Value, error) {
	left, err := Enforce(c, fileScope, functionScope, expectedTypes, x.Left)
	if err != nil {
		return nil, err
	}
	right, err := Enforce(c, fileScope, functionScope, expectedTypes, x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case adt.AddOp:
		return enforceAdd(c, left, right)
	case adt.SubOp:
		return enforceSub(c, left, right)
	case adt.MulOp:
		return enforceMul(c, left, right)
	case adt.DivOp:
		return enforceDiv(c, left, right)
	case adt.PowOp:
		return enforcePow(c, left, right)
	case adt.AndOp:
		return enforceAnd(c, left, right)
	case adt.OrOp:
		return enforceOr(c, left, right)
	case adt.EqOp:
		return enforceEq(c, left, right)
	case adt.LtOp, adt.LeqOp, adt.GtOp, adt.GeqOp:
		return nil, adt.NewIncompatibleTypesText(
			describeValue(left) + " " + x.Op.String() + " " + describeValue(right) + ", values must be fields")
	default:
		return nil, adt.NewIncompatibleTypes(left, x.Op, right)
	}
}

// enforceAdd implements spec.md §4.3's Add resolution precedence:
// unwrap Mutable, coerce Unresolved against a typed peer, then dispatch
// on the matching primitive class. Supported: integer-integer,
// field-field, group-group.
func enforceAdd(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			w, err := c.CS.IntegerAdd(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	case adt.FieldElement:
		if r, ok := right.(adt.FieldElement); ok {
			return adt.FieldElement{Gadget: c.CS.FieldAdd(l.Gadget, r.Gadget)}, nil
		}
	case adt.GroupElement:
		if r, ok := right.(adt.GroupElement); ok {
			return adt.GroupElement{Gadget: c.CS.GroupAdd(l.Gadget, r.Gadget)}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.AddOp, right)
}

// enforceSub mirrors enforceAdd (spec.md §4.3: "Add/Sub. Supported for
// integer-integer, field-field, group-group").
func enforceSub(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			w, err := c.CS.IntegerSub(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	case adt.FieldElement:
		if r, ok := right.(adt.FieldElement); ok {
			return adt.FieldElement{Gadget: c.CS.FieldSub(l.Gadget, r.Gadget)}, nil
		}
	case adt.GroupElement:
		if r, ok := right.(adt.GroupElement); ok {
			return adt.GroupElement{Gadget: c.CS.GroupSub(l.Gadget, r.Gadget)}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.SubOp, right)
}

// enforceMul implements spec.md §4.3: "Mul. Supported for
// integer-integer and field-field. Group-scalar multiplication is
// explicitly out of scope" — there is deliberately no GroupElement
// case here.
func enforceMul(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			w, err := c.CS.IntegerMul(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	case adt.FieldElement:
		if r, ok := right.(adt.FieldElement); ok {
			return adt.FieldElement{Gadget: c.CS.FieldMul(l.Gadget, r.Gadget)}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.MulOp, right)
}

// enforceDiv implements spec.md §4.3: "Div. Supported for
// integer-integer and field-field. Division by a zero witness must
// fail via the gadget."
func enforceDiv(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			w, err := c.CS.IntegerDiv(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	case adt.FieldElement:
		if r, ok := right.(adt.FieldElement); ok {
			w, err := c.CS.FieldDiv(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.FieldElement{Gadget: w}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.DivOp, right)
}

// enforcePow implements spec.md §4.3: "Pow. Supported for integer base
// & exponent, and field base with integer exponent. A field exponent
// is an explicit error (InvalidExponent)."
func enforcePow(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}

	if f, rightIsField := right.(adt.FieldElement); rightIsField {
		return nil, adt.NewInvalidExponent(f.Gadget.Value.String())
	}

	switch l := left.(type) {
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			w, err := c.CS.IntegerPow(l.Gadget, r.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	case adt.FieldElement:
		if r, ok := right.(adt.Integer); ok {
			return adt.FieldElement{Gadget: c.CS.FieldPow(l.Gadget, r.Gadget)}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.PowOp, right)
}
