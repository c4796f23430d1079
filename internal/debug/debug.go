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

// Package debug prints an adt.Value in human-readable form. The result
// is not valid circuit-DSL source, only a readable rendering of the
// evaluator's internal representation, styled after
// internal/core/debug's node printer: indentation-based, one case per
// value variant, written straight to an io.Writer.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/circuitdsl/evalcore/internal/adt"
)

func WriteValue(w io.Writer, v adt.Value) {
	p := printer{Writer: w}
	p.value(v)
}

func Sprint(v adt.Value) string {
	b := &strings.Builder{}
	WriteValue(b, v)
	return b.String()
}

type printer struct {
	io.Writer
	indent string
}

func (p *printer) string(s string) {
	s = strings.Replace(s, "\n", "\n"+p.indent, -1)
	_, _ = io.WriteString(p, s)
}

func (p *printer) value(v adt.Value) {
	switch x := v.(type) {
	case adt.Boolean:
		fmt.Fprintf(p, "(boolean){%v}", x.Gadget.Value)

	case adt.Integer:
		fmt.Fprintf(p, "(integer%d){%s}", x.Gadget.Width, x.Gadget.Value)

	case adt.FieldElement:
		fmt.Fprintf(p, "(field){%s}", x.Gadget.Value)

	case adt.GroupElement:
		fmt.Fprintf(p, "(group){(%s, %s)}", x.Gadget.X, x.Gadget.Y)

	case adt.Array:
		if len(x.Elements) == 0 {
			p.string("[]")
			break
		}
		p.string("[")
		p.indent += "  "
		for _, e := range x.Elements {
			p.string("\n")
			p.value(e)
			p.string(",")
		}
		p.indent = p.indent[:len(p.indent)-2]
		p.string("\n]")

	case adt.CircuitExpression:
		if len(x.Members) == 0 {
			fmt.Fprintf(p, "%s{}", x.CircuitName)
			break
		}
		fmt.Fprintf(p, "%s{", x.CircuitName)
		p.indent += "  "
		for _, m := range x.Members {
			p.string("\n")
			p.string(m.Name)
			p.string(": ")
			p.value(m.Value)
		}
		p.indent = p.indent[:len(p.indent)-2]
		p.string("\n}")

	case adt.CircuitDefinition:
		fmt.Fprintf(p, "<definition %s>", x.Name)

	case adt.Function:
		if x.OwningCircuit != "" {
			fmt.Fprintf(p, "<function %s.%s>", x.OwningCircuit, x.AST.Name)
			break
		}
		fmt.Fprintf(p, "<function %s>", x.AST.Name)

	case adt.Static:
		p.string("static ")
		p.value(x.Function)

	case adt.Mutable:
		p.string("mut ")
		p.value(x.Value)

	case adt.Unresolved:
		fmt.Fprintf(p, "<unresolved %s>", x.Text)

	case adt.Return:
		p.string("return(")
		for i, r := range x.Values {
			if i > 0 {
				p.string(", ")
			}
			p.value(r)
		}
		p.string(")")

	case nil:
		p.string("<nil>")

	default:
		fmt.Fprintf(p, "<unknown value %T>", x)
	}
}
