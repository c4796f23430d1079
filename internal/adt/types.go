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

package adt

import (
	"strconv"
	"strings"
)

// Type is the declared-type side of the language: what an expected_types
// hint (spec.md §4.1, §4.8) or a circuit field's declared_type (spec.md
// §4.6.1) names. It is deliberately separate from Kind, which tags a
// runtime Value: a Type additionally carries an integer width or an
// array's element type and dimensions.
type Type struct {
	Kind Kind

	// IntegerWidth is meaningful only when Kind == IntegerKind.
	IntegerWidth int

	// Element and Dims are meaningful only when Kind == ArrayKind:
	// Type T[d1][d2] is represented as Element = T, Dims = [d1, d2],
	// peeled one dimension at a time by PeelArray (spec.md §4.5).
	Element *Type
	Dims    []int

	// CircuitName is meaningful only when Kind == CircuitExpressionKind
	// or CircuitDefinitionKind.
	CircuitName string
}

func Boolean() Type { return Type{Kind: BooleanKind} }
func Field() Type   { return Type{Kind: FieldKind} }
func Group() Type   { return Type{Kind: GroupKind} }

func Integer(width int) Type {
	return Type{Kind: IntegerKind, IntegerWidth: width}
}

func Circuit(name string) Type {
	return Type{Kind: CircuitExpressionKind, CircuitName: name}
}

func Array(elem Type, dims ...int) Type {
	return Type{Kind: ArrayKind, Element: &elem, Dims: dims}
}

// PeelArray returns the expected type for one element of an array of
// type t, and the leading dimension d1 that was peeled off (the
// length of the array itself). Spec.md §4.5: "the per-element expected type becomes
// T[d2]... (one dimension peeled)".
func (t Type) PeelArray() (elemType Type, dim int, ok bool) {
	if t.Kind != ArrayKind || len(t.Dims) == 0 {
		return Type{}, 0, false
	}
	dim = t.Dims[0]
	if len(t.Dims) == 1 {
		return *t.Element, dim, true
	}
	return Type{Kind: ArrayKind, Element: t.Element, Dims: t.Dims[1:]}, dim, true
}

func (t Type) String() string {
	switch t.Kind {
	case IntegerKind:
		if t.IntegerWidth == 0 {
			return "integer"
		}
		return "integer" + strconv.Itoa(t.IntegerWidth)
	case ArrayKind:
		dims := make([]string, len(t.Dims))
		for i, d := range t.Dims {
			dims[i] = "[" + strconv.Itoa(d) + "]"
		}
		elem := ""
		if t.Element != nil {
			elem = t.Element.String()
		}
		return elem + strings.Join(dims, "")
	case CircuitExpressionKind, CircuitDefinitionKind:
		return t.CircuitName
	default:
		return t.Kind.String()
	}
}
