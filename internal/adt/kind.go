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

import "fmt"

// Kind reports the primitive class of a Value, used throughout eval's
// dispatch matrices (one bit per variant, so callers can test multiple
// kinds at once with IsAnyOf).
type Kind uint16

const (
	BooleanKind Kind = 1 << iota
	IntegerKind
	FieldKind
	GroupKind
	ArrayKind
	CircuitDefinitionKind
	CircuitExpressionKind
	FunctionKind
	StaticKind
	MutableKind
	UnresolvedKind
	ReturnKind

	allKinds

	// PrimitiveKind is the set of kinds a gadget primitive may witness
	// directly; Mutable and Unresolved must be resolved away first.
	PrimitiveKind = BooleanKind | IntegerKind | FieldKind | GroupKind
)

// IsAnyOf reports whether k overlaps any of the given kinds.
func (k Kind) IsAnyOf(of Kind) bool {
	return k&of != 0
}

func (k Kind) String() string {
	switch k {
	case BooleanKind:
		return "boolean"
	case IntegerKind:
		return "integer"
	case FieldKind:
		return "field"
	case GroupKind:
		return "group"
	case ArrayKind:
		return "array"
	case CircuitDefinitionKind:
		return "circuit-definition"
	case CircuitExpressionKind:
		return "circuit"
	case FunctionKind:
		return "function"
	case StaticKind:
		return "static"
	case MutableKind:
		return "mutable"
	case UnresolvedKind:
		return "unresolved"
	case ReturnKind:
		return "return"
	}
	return fmt.Sprintf("<unknown kind %#x>", uint16(k))
}
