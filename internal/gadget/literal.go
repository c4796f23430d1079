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
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v2"
)

// apdCtx mirrors cue/internal/adt/context.go's package-level apd
// context: numeric literal text is parsed through apd.Decimal before
// being lowered to the concrete witness type, rather than going
// straight through strconv.
var apdCtx apd.Context

func init() {
	apdCtx = apd.BaseContext
	apdCtx.Precision = 50
}

// ParseIntegerText parses numeric literal text into the big.Int that
// backs an Integer witness (spec.md §4.8, "from_type"/"from_other").
// Fractional literals are rejected: Integer, FieldElement, and
// GroupElement coordinates are all whole numbers in this language.
func ParseIntegerText(text string) (*big.Int, error) {
	d, _, err := apdCtx.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("gadget: invalid numeric literal %q: %w", text, err)
	}
	if d.Exponent < 0 {
		// Coeff * 10^Exponent has a fractional part; reject it rather
		// than silently truncating.
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.Exponent)), nil)
		if new(big.Int).Mod(&d.Coeff, scale).Sign() != 0 {
			return nil, fmt.Errorf("gadget: numeric literal %q is not an integer", text)
		}
	}
	i := new(big.Int).Set(&d.Coeff)
	if d.Exponent > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Exponent)), nil)
		i.Mul(i, scale)
	} else if d.Exponent < 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.Exponent)), nil)
		i.Div(i, scale)
	}
	if d.Negative {
		i.Neg(i)
	}
	return i, nil
}
