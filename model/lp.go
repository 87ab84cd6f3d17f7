// SPDX-License-Identifier: MIT

package model

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// constVar is the fixed-at-one column used for constants and empty rows.
const constVar = "ONE_VAR_CONSTANT"

// lpWriter remembers the first write error so the emit code stays linear.
type lpWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lpWriter) str(s string) {
	if lw.err == nil {
		_, lw.err = lw.w.WriteString(s)
	}
}

func (lw *lpWriter) num(v float64) {
	switch {
	case math.IsInf(v, 1):
		lw.str("+inf")
	case math.IsInf(v, -1):
		lw.str("-inf")
	case v == 0:
		lw.str("0") // also folds -0
	default:
		lw.str(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// signed writes "+c" or "-c".
func (lw *lpWriter) signed(v float64) {
	if v >= 0 {
		lw.str("+")
	}
	lw.num(v)
}

func (lw *lpWriter) terms(p *Program, terms []Term) {
	for _, t := range terms {
		lw.signed(t.Coef)
		lw.str(" ")
		lw.str(p.vars[t.Var].Name)
		lw.str("\n")
	}
}

// WriteLP writes p in CPLEX LP format. Rows without terms and a non-zero
// objective constant are expressed through ONE_VAR_CONSTANT, fixed at 1.
func (p *Program) WriteLP(w io.Writer) error {
	lw := &lpWriter{w: bufio.NewWriter(w)}
	useConst := p.constant != 0

	lw.str("\\* ")
	lw.str(p.name)
	lw.str(" *\\\n\nmin\nobjective:\n")
	lw.terms(p, p.objective)
	if p.constant != 0 {
		lw.signed(p.constant)
		lw.str(" " + constVar + "\n")
	}
	if len(p.objective) == 0 && p.constant == 0 {
		lw.str("+0 " + constVar + "\n")
		useConst = true
	}

	lw.str("\ns.t.\n")
	for _, r := range p.rows {
		lw.str("\n")
		lw.str(r.Name)
		lw.str(":\n")
		if len(r.Terms) == 0 {
			lw.str("+0 " + constVar + "\n")
			useConst = true
		}
		lw.terms(p, r.Terms)
		lw.str(r.Sense.String())
		lw.str(" ")
		lw.num(r.RHS)
		lw.str("\n")
	}

	lw.str("\nbounds\n")
	for _, v := range p.vars {
		lw.str("   ")
		lw.num(v.Lower)
		lw.str(" <= ")
		lw.str(v.Name)
		lw.str(" <= ")
		lw.num(v.Upper)
		lw.str("\n")
	}
	if useConst {
		lw.str("   " + constVar + " = 1\n")
	}
	lw.str("end\n")

	if lw.err != nil {
		return lw.err
	}

	return lw.w.Flush()
}
