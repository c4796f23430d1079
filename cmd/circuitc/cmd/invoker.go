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
	"github.com/circuitdsl/evalcore/eval"
	"github.com/circuitdsl/evalcore/internal/adt"
)

// bodyInvoker is the minimal Invoker the demo CLI needs: since
// statement-level control flow and the resolver are out of scope
// (spec.md §1), a FunctionAST's Body here is always a single adt.Expr
// whose value becomes the function's sole return value. A production
// embedder would instead walk a full statement list.
type bodyInvoker struct{}

func (bodyInvoker) Invoke(c *eval.Context, outerScope, functionScope adt.Scope, fn *adt.FunctionAST, args []adt.Expr) (adt.Value, error) {
	body, ok := fn.Body.(adt.Expr)
	if !ok {
		return nil, adt.NewUndefinedFunction()
	}

	callScope := outerScope.Child(fn.Name)
	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		v, err := eval.Enforce(c, outerScope, functionScope, nil, args[i])
		if err != nil {
			return nil, err
		}
		c.Store.Store(callScope.Child(param), v)
	}

	result, err := eval.Enforce(c, outerScope, callScope, nil, body)
	if err != nil {
		return nil, err
	}
	return adt.Return{Values: []adt.Value{result}}, nil
}
