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

package eval

import "github.com/circuitdsl/evalcore/internal/adt"

// resolveCircuitName implements the "self" alias (spec.md §4.6.1,
// SPEC_FULL.md §7): inside a method body, "self" names the circuit
// that method belongs to, tracked by Context.CurrentCircuit rather
// than by scope path, since CircuitDefinitions live in a single global
// namespace regardless of call nesting (spec.md §3, scope store
// "Three naming tiers").
func resolveCircuitName(c *Context, name string) string {
	if name == "self" && c.CurrentCircuit != "" {
		return c.CurrentCircuit
	}
	return name
}

func lookupCircuitDefinition(c *Context, fileScope adt.Scope, name string) (adt.CircuitDefinition, bool) {
	v, ok := c.Store.Get(fileScope.Child(resolveCircuitName(c, name)))
	if !ok {
		return adt.CircuitDefinition{}, false
	}
	def, ok := v.(adt.CircuitDefinition)
	return def, ok
}

// evaluateCircuit implements spec.md §4.6.1: resolve the record
// definition, then iterate its members in declaration order, binding
// data fields from the caller-supplied bindings (in any order) and
// producing Function/Static values for method members.
func evaluateCircuit(c *Context, fileScope, functionScope adt.Scope, x adt.CircuitExpr) (adt.Value, error) {
	def, ok := lookupCircuitDefinition(c, fileScope, x.Name)
	if !ok {
		return nil, adt.NewUndefinedCircuit(x.Name)
	}

	var members []adt.BoundMember
	for _, m := range def.Members {
		if m.Function != nil {
			fn := adt.Function{OwningCircuit: def.Name, AST: m.Function}
			var v adt.Value = fn
			if m.IsStatic {
				v = adt.Static{Function: fn}
			}
			members = append(members, adt.BoundMember{Name: m.Name, Value: v})
			continue
		}

		binding, found := findBinding(x.Bindings, m.Name)
		if !found {
			return nil, adt.NewExpectedCircuitValue(m.Name)
		}
		v, err := Enforce(c, fileScope, functionScope, []adt.Type{m.DeclaredType}, binding.Value)
		if err != nil {
			return nil, err
		}
		members = append(members, adt.BoundMember{Name: m.Name, Value: v})
	}

	return adt.CircuitExpression{CircuitName: def.Name, Members: members}, nil
}

func findBinding(bindings []adt.FieldBinding, name string) (adt.FieldBinding, bool) {
	for _, b := range bindings {
		if b.Name == name {
			return b, true
		}
	}
	return adt.FieldBinding{}, false
}

// evaluateCircuitMemberAccess implements spec.md §4.6.2: instance
// access `value.name`. A data-field hit returns the bound value
// directly; an instance-method hit binds every sibling non-function
// field into the callee scope at
// file_scope.record_name.method_name.field_name before returning the
// Function value for the caller's FunctionCall site to consume. A
// static-method hit returns its Function without binding any field.
func evaluateCircuitMemberAccess(c *Context, fileScope, functionScope adt.Scope, x adt.CircuitMemberAccessExpr) (adt.Value, error) {
	v, err := Enforce(c, fileScope, functionScope, nil, x.Value)
	if err != nil {
		return nil, err
	}
	inst, ok := adt.Unwrap(v).(adt.CircuitExpression)
	if !ok {
		return nil, adt.NewInvalidCircuitAccess()
	}

	for i, m := range inst.Members {
		if m.Name != x.Name {
			continue
		}
		switch fn := adt.Unwrap(m.Value).(type) {
		case adt.Function:
			bindInstanceFields(c, fileScope, inst, fn.AST.Name, i)
			return fn, nil
		case adt.Static:
			return fn.Function, nil
		default:
			return m.Value, nil
		}
	}
	return nil, adt.NewUndefinedCircuitObject(x.Name)
}

// bindInstanceFields stores every non-function, non-static sibling
// member of inst under file_scope.record_name.method_name.field_name
// (spec.md §4.6.2), skipping the method being dispatched itself.
func bindInstanceFields(c *Context, fileScope adt.Scope, inst adt.CircuitExpression, methodName string, skip int) {
	methodScope := fileScope.Child(inst.CircuitName).Child(methodName)
	for i, m := range inst.Members {
		if i == skip {
			continue
		}
		switch adt.Unwrap(m.Value).(type) {
		case adt.Function, adt.Static:
			continue
		}
		c.Store.Store(methodScope.Child(m.Name), m.Value)
	}
}

// evaluateCircuitStaticAccess implements spec.md §4.6.3: `Type::name`.
// The type expression must evaluate to a CircuitDefinition (not an
// instance); a non-static match is rejected.
func evaluateCircuitStaticAccess(c *Context, fileScope, functionScope adt.Scope, x adt.CircuitStaticFunctionAccessExpr) (adt.Value, error) {
	name, ok := staticTypeName(x.Type)
	if !ok {
		return nil, adt.NewInvalidCircuitAccess()
	}
	def, ok := lookupCircuitDefinition(c, fileScope, name)
	if !ok {
		return nil, adt.NewUndefinedCircuit(name)
	}

	member, found := def.Lookup(x.Name)
	if !found {
		return nil, adt.NewUndefinedStaticFunction(x.Name)
	}
	if member.Function == nil || !member.IsStatic {
		return nil, adt.NewInvalidStaticFunction(x.Name)
	}
	return adt.Function{OwningCircuit: def.Name, AST: member.Function}, nil
}

// staticTypeName extracts the bare circuit name from a static access
// site's type operand; the AST surface only allows a plain identifier
// there (`Type::name`), never an arbitrary expression.
func staticTypeName(e adt.Expr) (string, bool) {
	id, ok := e.(adt.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}
