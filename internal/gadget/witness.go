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

package gadget

import "math/big"

// Boolean is a 1-bit constrained witness (spec.md §3, Boolean variant).
type Boolean struct {
	Term
	Value bool
}

// Integer is a fixed-width constrained witness with an implicit range
// constraint 0 <= Value < 2^Width (spec.md §3, Integer variant).
type Integer struct {
	Term
	Width int
}

// Field is a native prime-field element witness (spec.md §3,
// FieldElement variant).
type Field struct {
	Term
}

// Group is an elliptic-curve point witness on a toy short-Weierstrass
// curve y^2 = x^3 + 3 over the system's field, used only to exercise
// group_{add,sub,eq}; it is not a cryptographically meaningful curve
// (spec.md's Non-goal on group scalar multiplication already rules out
// any use requiring curve security).
type Group struct {
	X, Y *big.Int
}

// Clone returns an independent Term struct that still aliases the
// same underlying variable index, matching spec.md §5's aliasing
// guarantee for cloned witnesses.
func (t Term) Clone() Term {
	return Term{Index: t.Index, Value: new(big.Int).Set(t.Value)}
}
