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

// Package fixture decodes a JSON plan description into a resolved
// pkg/plan.LogicalPlan tree, for cmd/strata-explain and tests that
// prefer a textual fixture over constructing nodes by hand. It is not
// an analyzer: every node must already carry resolved types and
// ExpressionIDs; fixture decoding fails rather than inferring them.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// node is the generic JSON shape every plan and expression fixture
// node shares: a "type" discriminator plus variant-specific fields
// decoded on demand by the matching LoadPlan/loadExpr branch.
type node struct {
	Type string `json:"type"`

	// expression fields
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	DataType  string          `json:"dataType"`
	Nullable  bool            `json:"nullable"`
	Qualifier string          `json:"qualifier"`
	Value     json.RawMessage `json:"value"`
	Child     json.RawMessage `json:"child"`
	Left      json.RawMessage `json:"left"`
	Right     json.RawMessage `json:"right"`
	Cond      json.RawMessage `json:"cond"`
	Then      json.RawMessage `json:"then"`
	Else      json.RawMessage `json:"else"`
	Args      json.RawMessage `json:"args"`
	Op        string          `json:"op"`
	Target    string          `json:"target"`

	// plan fields
	Output      json.RawMessage `json:"output"`
	ProjectList json.RawMessage `json:"projectList"`
	Condition   json.RawMessage `json:"condition"`
	JoinType    string          `json:"joinType"`
	N           json.RawMessage `json:"n"`
	Alias       string          `json:"alias"`
}

func parseType(s string) (expr.DataType, error) {
	switch s {
	case "INT":
		return expr.Int, nil
	case "FLOAT":
		return expr.Float, nil
	case "STRING":
		return expr.String, nil
	case "BOOL":
		return expr.Bool, nil
	default:
		return expr.Unknown, fmt.Errorf("fixture: unknown dataType %q", s)
	}
}

// LoadPlan decodes a single JSON-encoded LogicalPlan from b.
func LoadPlan(b []byte) (plan.LogicalPlan, error) {
	var n node
	if err := json.Unmarshal(b, &n); err != nil {
		return nil, fmt.Errorf("fixture: decode plan: %w", err)
	}
	return decodePlan(&n)
}

func decodePlan(n *node) (plan.LogicalPlan, error) {
	switch n.Type {
	case "LocalRelation":
		out, err := decodeAttrList(n.Output)
		if err != nil {
			return nil, err
		}
		return plan.NewLocalRelation(n.Name, out, nil), nil
	case "Project":
		child, err := decodeChildPlan(n.Child)
		if err != nil {
			return nil, err
		}
		list, err := decodeExprList(n.ProjectList)
		if err != nil {
			return nil, err
		}
		return plan.NewProject(child, list), nil
	case "Filter":
		child, err := decodeChildPlan(n.Child)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(n.Condition)
		if err != nil {
			return nil, err
		}
		return plan.NewFilter(child, cond), nil
	case "Join":
		left, err := decodeChildPlan(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeChildPlan(n.Right)
		if err != nil {
			return nil, err
		}
		jt, err := parseJoinType(n.JoinType)
		if err != nil {
			return nil, err
		}
		var cond expr.Expr
		if len(n.Condition) > 0 {
			cond, err = decodeExpr(n.Condition)
			if err != nil {
				return nil, err
			}
		}
		return plan.NewJoin(left, right, jt, cond), nil
	case "Limit":
		child, err := decodeChildPlan(n.Child)
		if err != nil {
			return nil, err
		}
		nExpr, err := decodeExpr(n.N)
		if err != nil {
			return nil, err
		}
		return plan.NewLimit(child, nExpr), nil
	case "Union":
		left, err := decodeChildPlan(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeChildPlan(n.Right)
		if err != nil {
			return nil, err
		}
		return plan.NewUnion(left, right), nil
	case "Subquery":
		child, err := decodeChildPlan(n.Child)
		if err != nil {
			return nil, err
		}
		return plan.NewSubquery(child, n.Alias), nil
	default:
		return nil, fmt.Errorf("fixture: unknown plan type %q", n.Type)
	}
}

func parseJoinType(s string) (plan.JoinType, error) {
	switch s {
	case "Inner":
		return plan.Inner, nil
	case "LeftOuter":
		return plan.LeftOuter, nil
	case "RightOuter":
		return plan.RightOuter, nil
	case "FullOuter":
		return plan.FullOuter, nil
	default:
		return 0, fmt.Errorf("fixture: unknown joinType %q", s)
	}
}

func decodeChildPlan(raw json.RawMessage) (plan.LogicalPlan, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("fixture: missing required plan child")
	}
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("fixture: decode plan child: %w", err)
	}
	return decodePlan(&n)
}

func decodeAttrList(raw json.RawMessage) ([]*expr.AttributeRef, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ns []node
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, fmt.Errorf("fixture: decode output list: %w", err)
	}
	out := make([]*expr.AttributeRef, len(ns))
	for i := range ns {
		t, err := parseType(ns[i].DataType)
		if err != nil {
			return nil, err
		}
		out[i] = expr.NewAttributeRef(expr.ID(ns[i].ID), ns[i].Name, t, ns[i].Nullable)
	}
	return out, nil
}

func decodeExprList(raw json.RawMessage) ([]expr.Expr, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, fmt.Errorf("fixture: decode expression list: %w", err)
	}
	out := make([]expr.Expr, len(raws))
	for i, r := range raws {
		e, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeExpr(raw json.RawMessage) (expr.Expr, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("fixture: missing required expression")
	}
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("fixture: decode expression: %w", err)
	}
	return decodeExprNode(&n)
}

func decodeExprNode(n *node) (expr.Expr, error) {
	switch n.Type {
	case "Literal":
		t, err := parseType(n.DataType)
		if err != nil {
			return nil, err
		}
		var v interface{}
		if len(n.Value) > 0 && string(n.Value) != "null" {
			if err := json.Unmarshal(n.Value, &v); err != nil {
				return nil, fmt.Errorf("fixture: decode literal value: %w", err)
			}
			if t == expr.Int {
				if f, ok := v.(float64); ok {
					v = int64(f)
				}
			}
		}
		return expr.NewLiteral(t, v), nil
	case "AttributeRef":
		t, err := parseType(n.DataType)
		if err != nil {
			return nil, err
		}
		ref := expr.NewAttributeRef(expr.ID(n.ID), n.Name, t, n.Nullable)
		ref.Qualifier = n.Qualifier
		return ref, nil
	case "Alias":
		child, err := decodeExpr(n.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewAlias(child, n.Name, expr.ID(n.ID)), nil
	case "Cast":
		child, err := decodeExpr(n.Child)
		if err != nil {
			return nil, err
		}
		t, err := parseType(n.Target)
		if err != nil {
			return nil, err
		}
		return expr.NewCast(child, t), nil
	case "Arithmetic":
		op, err := parseArithOp(n.Op)
		if err != nil {
			return nil, err
		}
		l, r, err := decodeBinary(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewArithmetic(op, l, r), nil
	case "Comparison":
		op, err := parseCompareOp(n.Op)
		if err != nil {
			return nil, err
		}
		l, r, err := decodeBinary(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewComparison(op, l, r), nil
	case "And":
		l, r, err := decodeBinary(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewAnd(l, r), nil
	case "Or":
		l, r, err := decodeBinary(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewOr(l, r), nil
	case "Not":
		c, err := decodeExpr(n.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewNot(c), nil
	case "If":
		cond, err := decodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(n.Else)
		if err != nil {
			return nil, err
		}
		return expr.NewIf(cond, then, els), nil
	case "Coalesce":
		args, err := decodeExprList(n.Args)
		if err != nil {
			return nil, err
		}
		return expr.NewCoalesce(args...), nil
	case "IsNull":
		c, err := decodeExpr(n.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewIsNull(c), nil
	case "IsNotNull":
		c, err := decodeExpr(n.Child)
		if err != nil {
			return nil, err
		}
		return expr.NewIsNotNull(c), nil
	default:
		return nil, fmt.Errorf("fixture: unknown expression type %q", n.Type)
	}
}

func decodeBinary(lraw, rraw json.RawMessage) (expr.Expr, expr.Expr, error) {
	l, err := decodeExpr(lraw)
	if err != nil {
		return nil, nil, err
	}
	r, err := decodeExpr(rraw)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func parseArithOp(s string) (expr.ArithOp, error) {
	switch s {
	case "+":
		return expr.Add, nil
	case "-":
		return expr.Sub, nil
	case "*":
		return expr.Mul, nil
	case "/":
		return expr.Div, nil
	default:
		return 0, fmt.Errorf("fixture: unknown arithmetic op %q", s)
	}
}

func parseCompareOp(s string) (expr.CompareOp, error) {
	switch s {
	case "=":
		return expr.Eq, nil
	case "<>":
		return expr.Neq, nil
	case "<":
		return expr.Lt, nil
	case "<=":
		return expr.Lte, nil
	case ">":
		return expr.Gt, nil
	case ">=":
		return expr.Gte, nil
	default:
		return 0, fmt.Errorf("fixture: unknown comparison op %q", s)
	}
}
