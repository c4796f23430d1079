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

// evaluateArray implements spec.md §4.5's construction rules: the
// per-element expected type is one dimension peeled off
// expected_types[0], Expression elements recurse, Spread elements
// splice an array looked up in function scope, and the final length
// is checked against the leading dimension PeelArray peeled off. The
// inner dimensions are not checked here: a nested array literal checks
// its own length when evaluated under the peeled element type, but
// elements spliced by a spread are not checked against them.
func evaluateArray(c *Context, fileScope, functionScope adt.Scope, expectedTypes []adt.Type, x adt.ArrayExpr) (adt.Value, error) {
	if len(expectedTypes) != 1 || expectedTypes[0].Kind != adt.ArrayKind {
		return nil, adt.NewIncompatibleTypesText("array literal requires an array expected type")
	}
	elemType, dim, ok := expectedTypes[0].PeelArray()
	if !ok {
		return nil, adt.NewIncompatibleTypesText("array literal requires an array expected type")
	}

	var elements []adt.Value
	for _, item := range x.Elements {
		if item.IsSpread {
			v, ok := c.Store.Get(functionScope.Child(item.SpreadName))
			if !ok {
				return nil, adt.NewUndefinedArray(item.SpreadName)
			}
			arr, ok := adt.Unwrap(v).(adt.Array)
			if !ok {
				return nil, adt.NewInvalidSpread(item.SpreadName)
			}
			elements = append(elements, arr.Elements...)
			continue
		}
		v, err := Enforce(c, fileScope, functionScope, []adt.Type{elemType}, item.Expression)
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)
	}

	if len(elements) != dim {
		return nil, adt.NewInvalidLength(dim, len(elements))
	}
	return adt.Array{Elements: elements}, nil
}

// evaluateArrayAccess implements spec.md §4.5's indexing rules: the
// array operand is unwrapped one level of Mutable, then either a
// scalar index or a [from..to] range is applied.
func evaluateArrayAccess(c *Context, fileScope, functionScope adt.Scope, x adt.ArrayAccessExpr) (adt.Value, error) {
	arrVal, err := Enforce(c, fileScope, functionScope, nil, x.Array)
	if err != nil {
		return nil, err
	}
	arr, ok := adt.Unwrap(arrVal).(adt.Array)
	if !ok {
		return nil, adt.NewInvalidArrayAccess()
	}

	if !x.Index.IsRange {
		idx, err := enforceIndex(c, fileScope, functionScope, x.Index.Index)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(arr.Elements) {
			return nil, adt.NewInvalidIndex("index out of range")
		}
		return arr.Elements[idx], nil
	}

	from := 0
	to := len(arr.Elements)
	if x.Index.From != nil {
		from, err = enforceIndex(c, fileScope, functionScope, x.Index.From)
		if err != nil {
			return nil, err
		}
	}
	if x.Index.To != nil {
		to, err = enforceIndex(c, fileScope, functionScope, x.Index.To)
		if err != nil {
			return nil, err
		}
	}
	if from < 0 || to > len(arr.Elements) || from > to {
		return nil, adt.NewInvalidIndex("range out of bounds")
	}
	sliced := make([]adt.Value, to-from)
	copy(sliced, arr.Elements[from:to])
	return adt.Array{Elements: sliced}, nil
}
