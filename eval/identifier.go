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

// evaluateIdentifier implements spec.md §4.2: probe function scope
// then file scope, in that order; a hit that is Unresolved is coerced
// under the caller's expected types before being returned.
func evaluateIdentifier(c *Context, fileScope, functionScope adt.Scope, expectedTypes []adt.Type, id adt.Identifier) (adt.Value, error) {
	v, ok := c.Store.Get(functionScope.Child(id.Name))
	if !ok {
		v, ok = c.Store.Get(fileScope.Child(id.Name))
	}
	if !ok {
		return nil, adt.NewUndefinedIdentifier(id.Name)
	}

	if u, isUnresolved := v.(adt.Unresolved); isUnresolved {
		return enforceNumberImplicit(c, expectedTypes, u.Text)
	}
	return v, nil
}
