// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
)

// Sense is the relation of a constraint row to its right-hand side.
type Sense int

const (
	EQ Sense = iota // Σ terms = rhs
	GE              // Σ terms ≥ rhs
	LE              // Σ terms ≤ rhs
)

// String returns the LP-format operator.
func (s Sense) String() string {
	switch s {
	case EQ:
		return "="
	case GE:
		return ">="
	case LE:
		return "<="
	default:
		return fmt.Sprintf("sense(%d)", int(s))
	}
}

// prefix is the row name prefix used by LP writers for each sense.
func (s Sense) prefix() string {
	switch s {
	case GE:
		return "c_l_"
	case LE:
		return "c_u_"
	default:
		return "c_e_"
	}
}

// Var is a decision variable with simple bounds (±Inf for free).
type Var struct {
	Name  string
	Lower float64
	Upper float64
}

// Term is coef·x[Var], where Var indexes Program.Vars().
type Term struct {
	Var  int
	Coef float64
}

// Row is one linear constraint. Name is the full LP row name, e.g.
// "c_l_security_1(16)_"; Family and Key hold its parts ("security_1", 16).
type Row struct {
	Name   string
	Family string
	Key    int
	Terms  []Term
	Sense  Sense
	RHS    float64
}

// Program is a linear program in row form: minimise Objective·x + Constant
// subject to Rows and variable bounds.
type Program struct {
	name      string
	vars      []Var
	varIndex  map[string]int
	rows      []Row
	rowIndex  map[string]int
	objective []Term
	constant  float64
}

func newProgram(name string) *Program {
	return &Program{
		name:     name,
		varIndex: make(map[string]int),
		rowIndex: make(map[string]int),
	}
}

// addVar registers a variable and returns its index.
func (p *Program) addVar(name string, lower, upper float64) int {
	p.varIndex[name] = len(p.vars)
	p.vars = append(p.vars, Var{Name: name, Lower: lower, Upper: upper})

	return len(p.vars) - 1
}

// addRow appends a constraint; zero coefficients are dropped.
func (p *Program) addRow(family string, key int, sense Sense, rhs float64, terms []Term) {
	name := fmt.Sprintf("%s%s(%d)_", sense.prefix(), family, key)
	p.rowIndex[name] = len(p.rows)
	p.rows = append(p.rows, Row{
		Name:   name,
		Family: family,
		Key:    key,
		Terms:  compact(terms),
		Sense:  sense,
		RHS:    rhs,
	})
}

// compact merges duplicate variables (first-seen order) and drops zeros.
func compact(terms []Term) []Term {
	pos := make(map[int]int, len(terms))
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		if i, ok := pos[t.Var]; ok {
			out[i].Coef += t.Coef
			continue
		}
		pos[t.Var] = len(out)
		out = append(out, t)
	}
	kept := out[:0]
	for _, t := range out {
		if t.Coef != 0 {
			kept = append(kept, t)
		}
	}

	return kept
}

// Name is the problem name written in the LP header.
func (p *Program) Name() string { return p.name }

// Vars returns the variables in declaration order.
func (p *Program) Vars() []Var { return append([]Var(nil), p.vars...) }

// VarIndex returns the position of the named variable.
func (p *Program) VarIndex(name string) (int, bool) {
	i, ok := p.varIndex[name]
	return i, ok
}

// Rows returns the constraint rows in build order.
func (p *Program) Rows() []Row { return append([]Row(nil), p.rows...) }

// Row looks a constraint up by its full LP name.
func (p *Program) Row(name string) (Row, bool) {
	i, ok := p.rowIndex[name]
	if !ok {
		return Row{}, false
	}

	return p.rows[i], true
}

// Objective returns the linear objective terms and the constant offset.
func (p *Program) Objective() ([]Term, float64) {
	return append([]Term(nil), p.objective...), p.constant
}

// Violation reports a row or bound not satisfied by a candidate point.
type Violation struct {
	Name   string  // row name, or variable name for bound violations
	Amount float64 // positive distance to feasibility
}

// Violations evaluates every row and bound at x (indexed like Vars) and
// returns those violated by more than tol.
func (p *Program) Violations(x []float64, tol float64) ([]Violation, error) {
	if len(x) != len(p.vars) {
		return nil, fmt.Errorf("Violations: got %d values, want %d: %w", len(x), len(p.vars), ErrDimension)
	}

	var out []Violation
	for _, r := range p.rows {
		lhs := 0.0
		for _, t := range r.Terms {
			lhs += t.Coef * x[t.Var]
		}
		var gap float64
		switch r.Sense {
		case EQ:
			gap = math.Abs(lhs - r.RHS)
		case GE:
			gap = r.RHS - lhs
		case LE:
			gap = lhs - r.RHS
		}
		if gap > tol {
			out = append(out, Violation{Name: r.Name, Amount: gap})
		}
	}
	for i, v := range p.vars {
		if gap := v.Lower - x[i]; gap > tol {
			out = append(out, Violation{Name: v.Name, Amount: gap})
		}
		if gap := x[i] - v.Upper; gap > tol {
			out = append(out, Violation{Name: v.Name, Amount: gap})
		}
	}

	return out, nil
}

// Value returns Objective·x + Constant.
func (p *Program) Value(x []float64) (float64, error) {
	if len(x) != len(p.vars) {
		return 0, fmt.Errorf("Value: got %d values, want %d: %w", len(x), len(p.vars), ErrDimension)
	}
	v := p.constant
	for _, t := range p.objective {
		v += t.Coef * x[t.Var]
	}

	return v, nil
}
