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

// evaluateNot implements spec.md §4.4: Not takes a boolean operand and
// returns the gadget negation.
func evaluateNot(c *Context, fileScope, functionScope adt.Scope, x adt.NotExpr) (adt.Value, error) {
	v, err := Enforce(c, fileScope, functionScope, []adt.Type{adt.Boolean()}, x.Operand)
	if err != nil {
		return nil, err
	}
	v = adt.Unwrap(v)
	b, ok := v.(adt.Boolean)
	if !ok {
		return nil, adt.NewIncompatibleTypesText("!" + describeValue(v))
	}
	return adt.Boolean{Gadget: c.CS.Not(b.Gadget)}, nil
}

// enforceAnd implements spec.md §4.4: "And/Or require boolean-boolean
// and invoke their gadget," sharing the Mutable/Unresolved resolution
// pipeline from §4.3.
func enforceAnd(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	l, lok := left.(adt.Boolean)
	r, rok := right.(adt.Boolean)
	if !lok || !rok {
		return nil, adt.NewIncompatibleTypes(left, adt.AndOp, right)
	}
	return adt.Boolean{Gadget: c.CS.And(l.Gadget, r.Gadget)}, nil
}

func enforceOr(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	l, lok := left.(adt.Boolean)
	r, rok := right.(adt.Boolean)
	if !lok || !rok {
		return nil, adt.NewIncompatibleTypes(left, adt.OrOp, right)
	}
	return adt.Boolean{Gadget: c.CS.Or(l.Gadget, r.Gadget)}, nil
}

// enforceEq implements spec.md §4.4: "Eq supports boolean-boolean,
// integer-integer, and group-group (field equality explicitly
// disabled in this core)."
func enforceEq(c *Context, left, right adt.Value) (adt.Value, error) {
	left, right, err := resolveOperands(c, left, right)
	if err != nil {
		return nil, err
	}
	switch l := left.(type) {
	case adt.Boolean:
		if r, ok := right.(adt.Boolean); ok {
			return adt.Boolean{Gadget: c.CS.BooleanEq(l.Gadget, r.Gadget)}, nil
		}
	case adt.Integer:
		if r, ok := right.(adt.Integer); ok {
			return adt.Boolean{Gadget: c.CS.IntegerEq(l.Gadget, r.Gadget)}, nil
		}
	case adt.GroupElement:
		if r, ok := right.(adt.GroupElement); ok {
			return adt.Boolean{Gadget: c.CS.GroupEq(l.Gadget, r.Gadget)}, nil
		}
	}
	return nil, adt.NewIncompatibleTypes(left, adt.EqOp, right)
}

// evaluateIfElse implements spec.md §4.4's ternary: the condition is
// evaluated under expected_types=[Boolean], both branches under the
// outer expected_types, then a constrained conditional select is
// performed over boolean-boolean or integer-integer branch pairs.
// Any other branch pair is explicitly unimplemented, per spec.md.
func evaluateIfElse(c *Context, fileScope, functionScope adt.Scope, expectedTypes []adt.Type, x adt.IfElseExpr) (adt.Value, error) {
	condVal, err := Enforce(c, fileScope, functionScope, []adt.Type{adt.Boolean()}, x.Condition)
	if err != nil {
		return nil, err
	}
	cond, ok := adt.Unwrap(condVal).(adt.Boolean)
	if !ok {
		return nil, adt.NewIfElseConditional()
	}

	thenVal, err := Enforce(c, fileScope, functionScope, expectedTypes, x.Then)
	if err != nil {
		return nil, err
	}
	elseVal, err := Enforce(c, fileScope, functionScope, expectedTypes, x.Else)
	if err != nil {
		return nil, err
	}
	thenVal, elseVal, err = resolveOperands(c, thenVal, elseVal)
	if err != nil {
		return nil, err
	}

	switch t := thenVal.(type) {
	case adt.Boolean:
		if e, ok := elseVal.(adt.Boolean); ok {
			return adt.Boolean{Gadget: c.CS.CondSelectBoolean(cond.Gadget, t.Gadget, e.Gadget)}, nil
		}
	case adt.Integer:
		if e, ok := elseVal.(adt.Integer); ok {
			w, err := c.CS.CondSelectInteger(cond.Gadget, t.Gadget, e.Gadget)
			if err != nil {
				return nil, adt.NewGadgetError(err)
			}
			return adt.Integer{Gadget: w}, nil
		}
	}
	return nil, adt.NewIncompatibleTypesText(
		"if-else branches " + describeValue(thenVal) + "/" + describeValue(elseVal) + " unimplemented")
}
