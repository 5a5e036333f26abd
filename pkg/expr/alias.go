// Copyright 2026 Strata Authors
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

package expr

// Alias binds Child's value to a new name and ExpressionID. A Project's
// projectList is built from Alias (and bare AttributeRef) entries.
type Alias struct {
	Child Expr
	Name  string
	ID    ID
}

func NewAlias(child Expr, name string, id ID) *Alias {
	return &Alias{Child: child, Name: name, ID: id}
}

func (a *Alias) Children() []Expr { return []Expr{a.Child} }

func (a *Alias) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("Alias.WithChildren: expected exactly one child")
	}
	if children[0] == a.Child {
		return a
	}
	return &Alias{Child: children[0], Name: a.Name, ID: a.ID}
}

func (a *Alias) DataType() DataType  { return a.Child.DataType() }
func (a *Alias) IsNullable() bool    { return a.Child.IsNullable() }
func (a *Alias) IsFoldable() bool    { return a.Child.IsFoldable() }
func (a *Alias) IsPure() bool        { return a.Child.IsPure() }
func (a *Alias) IsResolved() bool    { return a.Child.IsResolved() }
func (a *Alias) ReferenceIDs() IDSet { return a.Child.ReferenceIDs() }
func (a *Alias) ExprID() ID          { return a.ID }
func (a *Alias) String() string      { return a.Child.String() + " AS " + a.Name }

// GeneratedAlias is an Alias minted by the optimizer itself rather than
// the analyzer (e.g. a synthetic name for an inlined projection). It
// carries the same contract as Alias; kept as a distinct variant so
// rules can tell analyzer-authored names from optimizer-authored ones
// when deciding whether a name is safe to drop from diagnostics.
type GeneratedAlias struct {
	Alias
}

func NewGeneratedAlias(child Expr, name string, id ID) *GeneratedAlias {
	return &GeneratedAlias{Alias{Child: child, Name: name, ID: id}}
}

func (a *GeneratedAlias) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("GeneratedAlias.WithChildren: expected exactly one child")
	}
	if children[0] == a.Child {
		return a
	}
	return &GeneratedAlias{Alias{Child: children[0], Name: a.Name, ID: a.ID}}
}

// GeneratedAttribute is an AttributeRef minted by the optimizer to stand
// in for an intermediate result (e.g. a pushed-down projection output)
// rather than one bound by the analyzer.
type GeneratedAttribute struct {
	AttributeRef
}

func NewGeneratedAttribute(id ID, name string, t DataType, nullable bool) *GeneratedAttribute {
	return &GeneratedAttribute{AttributeRef{ID: id, Name: name, Type: t, Nullable: nullable}}
}
