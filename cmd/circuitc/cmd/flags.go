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

package cmd

import (
	"math/big"

	"github.com/spf13/pflag"

	"github.com/circuitdsl/evalcore/internal/gadget"
)

type flagName string

const (
	flagModulus = flagName("modulus")
	flagTrace   = flagName("trace")
)

func addRunFlags(f *pflag.FlagSet) {
	f.String(string(flagModulus), "", "prime field modulus in base 10 (default: BN254 scalar field)")
	f.Bool(string(flagTrace), false, "print the constraint trace after evaluation")
}

// configFromFlags implements the modulus-override half of SPEC_FULL.md
// §4.3's gadget.Config surface (cmd/cue/cmd/flags.go pattern: flags
// feed a config struct, never package-level state).
func configFromFlags(f *pflag.FlagSet) (gadget.Config, error) {
	cfg := gadget.DefaultConfig()
	modulus, err := f.GetString(string(flagModulus))
	if err != nil {
		return cfg, err
	}
	if modulus == "" {
		return cfg, nil
	}
	m, ok := new(big.Int).SetString(modulus, 10)
	if !ok {
		return cfg, errInvalidModulus(modulus)
	}
	cfg.Modulus = m
	return cfg, nil
}

type errInvalidModulus string

func (e errInvalidModulus) Error() string {
	return "circuitc: invalid --modulus value: " + string(e)
}
