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
	"github.com/circuitdsl/evalcore/internal/adt"
	"github.com/circuitdsl/evalcore/internal/gadget"
)

// enforceNumberImplicit resolves a deferred-type numeric literal
// (spec.md §4.8): with exactly one expected type, parse under it
// (from_type); otherwise defer as Unresolved until a typed peer shows
// up.
func enforceNumberImplicit(c *Context, expectedTypes []adt.Type, text string) (adt.Value, error) {
	if len(expectedTypes) == 1 {
		return coerceFromType(c, expectedTypes[0], text)
	}
	return adt.Unresolved{Text: text}, nil
}

// coerceFromType parses literal text into a concrete Value of the
// given type (spec.md §6 "from_type").
func coerceFromType(c *Context, t adt.Type, text string) (adt.Value, error) {
	switch t.Kind {
	case adt.IntegerKind:
		n, err := gadget.ParseIntegerText(text)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		width := t.IntegerWidth
		if width == 0 {
			width = defaultIntegerWidth
		}
		w, err := c.CS.NewInteger(width, n)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		return adt.Integer{Gadget: w}, nil

	case adt.FieldKind:
		n, err := gadget.ParseIntegerText(text)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		return adt.FieldElement{Gadget: c.CS.NewField(n)}, nil

	default:
		return nil, adt.NewIncompatibleTypesText(text)
	}
}

// coerceFromOther parses literal text under the primitive class of a
// typed peer value (spec.md §4.3 step 2, "from_other"). Only
// Integer/Field peers are numeric; any other peer kind makes the
// coercion meaningless.
func coerceFromOther(c *Context, text string, peer adt.Value) (adt.Value, error) {
	switch p := peer.(type) {
	case adt.Integer:
		n, err := gadget.ParseIntegerText(text)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		width := defaultIntegerWidth
		if p.Gadget != nil {
			width = p.Gadget.Width
		}
		w, err := c.CS.NewInteger(width, n)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		return adt.Integer{Gadget: w}, nil

	case adt.FieldElement:
		n, err := gadget.ParseIntegerText(text)
		if err != nil {
			return nil, adt.NewGadgetError(err)
		}
		return adt.FieldElement{Gadget: c.CS.NewField(n)}, nil

	default:
		return nil, adt.NewIncompatibleTypesText(text)
	}
}

// defaultIntegerWidth is used when a literal's expected type names
// "integer" without a declared width (e.g. as a peer's fallback).
const defaultIntegerWidth = 32

func evaluateIntegerLiteral(c *Context, lit adt.IntegerLiteral) (adt.Value, error) {
	n, err := gadget.ParseIntegerText(lit.Text)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	width := lit.Width
	if width == 0 {
		width = defaultIntegerWidth
	}
	w, err := c.CS.NewInteger(width, n)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	return adt.Integer{Gadget: w}, nil
}

func evaluateFieldLiteral(c *Context, lit adt.FieldLiteral) (adt.Value, error) {
	n, err := gadget.ParseIntegerText(lit.Text)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	return adt.FieldElement{Gadget: c.CS.NewField(n)}, nil
}

func evaluateGroupLiteral(c *Context, lit adt.GroupLiteral) (adt.Value, error) {
	x, err := gadget.ParseIntegerText(lit.X)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	y, err := gadget.ParseIntegerText(lit.Y)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	g, err := c.CS.NewGroup(x, y)
	if err != nil {
		return nil, adt.NewGadgetError(err)
	}
	return adt.GroupElement{Gadget: g}, nil
}

// resolveOperands implements spec.md §4.3 steps 1-2, shared by every
// binary operator: unwrap Mutable on either side, then coerce an
// Unresolved operand using its typed peer. Returns the pair ready for
// the caller's dispatch-matrix switch.
func resolveOperands(c *Context, left, right adt.Value) (adt.Value, adt.Value, error) {
	left = adt.Unwrap(left)
	right = adt.Unwrap(right)

	if u, ok := left.(adt.Unresolved); ok {
		resolved, err := coerceFromOther(c, u.Text, right)
		if err != nil {
			return nil, nil, err
		}
		left = resolved
	}
	if u, ok := right.(adt.Unresolved); ok {
		resolved, err := coerceFromOther(c, u.Text, left)
		if err != nil {
			return nil, nil, err
		}
		right = resolved
	}
	return left, right, nil
}

// enforceIndex coerces an array-index expression to an unsigned
// integer (spec.md §4.5, §6 "enforce_index"): it must evaluate to a
// constrained Integer, or be a parseable unsigned literal if still
// Unresolved at this point (there is no typed peer at an index site).
func enforceIndex(c *Context, fileScope, functionScope adt.Scope, indexExpr adt.Expr) (int, error) {
	v, err := Enforce(c, fileScope, functionScope, nil, indexExpr)
	if err != nil {
		return 0, err
	}
	v = adt.Unwrap(v)

	switch x := v.(type) {
	case adt.Integer:
		if !x.Gadget.Value.IsInt64() || x.Gadget.Value.Sign() < 0 {
			return 0, adt.NewInvalidIndex(x.Gadget.Value.String())
		}
		return int(x.Gadget.Value.Int64()), nil
	case adt.Unresolved:
		n, err := gadget.ParseIntegerText(x.Text)
		if err != nil || n.Sign() < 0 || !n.IsInt64() {
			return 0, adt.NewInvalidIndex(x.Text)
		}
		return int(n.Int64()), nil
	default:
		return 0, adt.NewInvalidIndex(describeValue(v))
	}
}

func describeValue(v adt.Value) string {
	return v.Kind().String()
}
