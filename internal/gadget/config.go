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

import (
	"math/big"

	"github.com/circuitdsl/evalcore/internal/gadget/field"
)

// Config names the configurable surface of the reference
// ConstraintSystem backend: its field modulus and a default integer
// width. NewSchema reads only Modulus; DefaultIntegerWidth is not read
// by the Schema or by package eval, which applies its own 32-bit
// default when a literal leaves the width unspecified.
// Mirrors the shape of a runtime config struct threaded into a
// compiler's entry point rather than hung off package-level state.
type Config struct {
	Modulus             *big.Int
	DefaultIntegerWidth int
}

// DefaultConfig returns the BN254 scalar field with a 32-bit default
// integer width, the same defaults NewBN254/defaultIntegerWidth use.
func DefaultConfig() Config {
	return Config{
		Modulus:             field.BN254ScalarFieldModulus(),
		DefaultIntegerWidth: 32,
	}
}

// NewSchema builds a Schema from a Config, falling back to
// DefaultConfig's modulus when none is set.
func NewSchema(cfg Config) *Schema {
	modulus := cfg.Modulus
	if modulus == nil {
		modulus = field.BN254ScalarFieldModulus()
	}
	return New(modulus)
}
