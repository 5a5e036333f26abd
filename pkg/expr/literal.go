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

// Literal is a constant value of a known type. It is the fixed point of
// FoldConstants: it has no children, is always foldable, pure and
// resolved.
type Literal struct {
	Type DataType
	Val  interface{}
}

func NewLiteral(t DataType, v interface{}) *Literal {
	return &Literal{Type: t, Val: v}
}

func NullLiteral(t DataType) *Literal {
	return &Literal{Type: t, Val: nil}
}

func (l *Literal) Children() []Expr                  { return nil }
func (l *Literal) WithChildren(children []Expr) Expr  { return l }
func (l *Literal) DataType() DataType                 { return l.Type }
func (l *Literal) IsNullable() bool                   { return l.Val == nil }
func (l *Literal) IsFoldable() bool                   { return true }
func (l *Literal) IsPure() bool                       { return true }
func (l *Literal) IsResolved() bool                   { return true }
func (l *Literal) ReferenceIDs() IDSet                { return IDSet{} }
func (l *Literal) Eval() (Value, error)                { return Value{Type: l.Type, Val: l.Val}, nil }
func (l *Literal) String() string                     { return Value{Type: l.Type, Val: l.Val}.String() }

// AttributeRef is a reference to an attribute produced by some
// descendant plan. Its ID is stable across rewrites.
type AttributeRef struct {
	ID        ID
	Name      string
	Type      DataType
	Nullable  bool
	Qualifier string // cleared by EliminateSubqueries
}

func NewAttributeRef(id ID, name string, t DataType, nullable bool) *AttributeRef {
	return &AttributeRef{ID: id, Name: name, Type: t, Nullable: nullable}
}

func (a *AttributeRef) Children() []Expr                 { return nil }
func (a *AttributeRef) WithChildren(children []Expr) Expr { return a }
func (a *AttributeRef) DataType() DataType                { return a.Type }
func (a *AttributeRef) IsNullable() bool                  { return a.Nullable }
func (a *AttributeRef) IsFoldable() bool                  { return false }
func (a *AttributeRef) IsPure() bool                      { return true }
func (a *AttributeRef) IsResolved() bool                  { return a.Type != Unknown }
func (a *AttributeRef) ReferenceIDs() IDSet                { return NewIDSet(a.ID) }
func (a *AttributeRef) ExprID() ID                         { return a.ID }
func (a *AttributeRef) String() string {
	if a.Qualifier != "" {
		return a.Qualifier + "." + a.Name
	}
	return a.Name
}

// withClearedQualifier returns a copy with Qualifier cleared (or a
// itself when it has no qualifier), never mutating a.
func (a *AttributeRef) withClearedQualifier() *AttributeRef {
	if a.Qualifier == "" {
		return a
	}
	cp := *a
	cp.Qualifier = ""
	return &cp
}
