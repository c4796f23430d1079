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

// Package cmd implements circuitc's Cobra command tree: a small demo
// harness over the eval/internal packages, grounded in cmd/cue/cmd's
// root-command shape but reduced to the single "run" verb this module
// needs (there is no file/config surface to fmt/export/import, since
// circuits arrive as Go AST values rather than parsed source).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/circuitdsl/evalcore/internal/adt"
	"github.com/circuitdsl/evalcore/internal/debug"
	"github.com/circuitdsl/evalcore/internal/gadget"

	"github.com/circuitdsl/evalcore/eval"
)

// NewCommand builds the circuitc root command.
func NewCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuitc",
		Short: "circuitc runs the circuit expression evaluator against a demo circuit",
		Long: `circuitc is a demo harness over the circuit expression evaluator core.
It does not parse circuit-DSL source: the tokenizer, parser, and resolver are
a separate layer this module does not implement. Instead it builds a small
demo circuit directly as typed AST values and runs it through eval.Enforce,
printing the resulting witness value and, with --trace, the constraint log.`,
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "evaluate the built-in demo circuit",
		RunE:  runDemo,
	}
	addRunFlags(run.Flags())
	root.AddCommand(run)

	return root
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	trace, err := cmd.Flags().GetBool(string(flagTrace))
	if err != nil {
		return err
	}

	cs := gadget.NewSchema(cfg)
	store := adt.NewMapStore()

	fileScope := adt.Scope("")
	def := demoCircuitDefinition()
	store.Store(fileScope.Child(def.Name), def)

	c := eval.NewContext(cs, store, bodyInvoker{})

	result, err := eval.Enforce(c, fileScope, fileScope, nil, demoExpr())
	if err != nil {
		return fmt.Errorf("circuitc: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), debug.Sprint(result))
	if trace {
		for _, entry := range cs.ConstraintLog() {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+entry)
		}
	}
	return nil
}
