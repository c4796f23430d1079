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

// Package field carries the prime moduli the reference gadget backend
// can be configured with. It holds no logic of its own, only the
// well-known constants so internal/gadget does not hardcode a magic
// number inline.
package field

import "math/big"

// bn254ScalarFieldModulus is the order of the scalar field of the
// BN254 (alt_bn128) pairing-friendly curve, the default field this
// module's reference backend witnesses FieldElement and GroupElement
// values over.
const bn254ScalarFieldModulus = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

// BN254ScalarFieldModulus returns a fresh copy of the BN254 scalar
// field modulus.
func BN254ScalarFieldModulus() *big.Int {
	m, ok := new(big.Int).SetString(bn254ScalarFieldModulus, 10)
	if !ok {
		panic("gadget/field: invalid embedded modulus constant")
	}
	return m
}
