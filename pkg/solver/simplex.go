// Package solver provides the LP solving engine behind the transport.Engine
// contract. It is the only place in the repository that touches a linear
// programming backend; model construction and result interpretation stay in
// pkg/transport and never re-implement simplex or duality.
package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"transportlp/pkg/transport"
)

// valueTolerance clamps solver noise on primal values so that a variable
// that is nonbasic at its zero bound reports exactly 0.
const valueTolerance = 1e-9

// SimplexEngine solves a transport model with gonum's two-phase simplex.
//
// The primal is solved in standard form (one slack column per inequality
// row). Dual values are not exposed by gonum's Simplex, so the engine builds
// the explicit dual program and solves it as a second LP; reduced costs then
// follow from the dual solution. Both solves are deterministic for a given
// model, and the scenarios this engine is built for are small enough that
// the extra solve is negligible.
type SimplexEngine struct {
	// Tol is passed through to lp.Simplex. Zero means gonum's default.
	Tol float64
}

// NewSimplexEngine returns an engine with default tolerances.
func NewSimplexEngine() *SimplexEngine {
	return &SimplexEngine{}
}

var _ transport.Engine = (*SimplexEngine)(nil)

// row is one inequality or equality row of the primal in solver orientation.
type row struct {
	con   int // index into Model.Constraints
	coefs []float64
	rhs   float64
	// dualSign converts the solver-side multiplier into the reported shadow
	// price: -1 for upper-bound rows (relaxing the bound lowers cost), +1
	// for lower-bound rows, -1 for equality rows.
	dualSign float64
}

// Solve implements transport.Engine. Infeasible and unbounded models are
// reported through Solution.Status, not through the error value; the error
// is reserved for unexpected backend failures.
func (e *SimplexEngine) Solve(m *transport.Model) (*transport.Solution, error) {
	ineq, eq := splitRows(m)

	x, obj, status := e.solvePrimal(m, ineq, eq)
	if status != transport.StatusOptimal {
		return &transport.Solution{Status: status}, nil
	}

	lambda, nu, ok := e.solveDual(m, ineq, eq)
	if !ok {
		return &transport.Solution{Status: transport.StatusError}, nil
	}

	sol := &transport.Solution{
		Status:       transport.StatusOptimal,
		Objective:    obj,
		Values:       x,
		ReducedCosts: reducedCosts(m, ineq, eq, lambda, nu),
		Activities:   activities(m, x),
		Duals:        make([]float64, len(m.Constraints)),
	}
	for i, r := range ineq {
		sol.Duals[r.con] += r.dualSign * lambda[i]
	}
	for i, r := range eq {
		sol.Duals[r.con] += r.dualSign * nu[i]
	}
	return sol, nil
}

// splitRows flattens the model's bounded constraints into solver rows.
// Upper bounds become coefs*x <= rhs, lower bounds become -coefs*x <= -rhs,
// and a constraint with Lower == Upper becomes a single equality row.
func splitRows(m *transport.Model) (ineq, eq []row) {
	n := len(m.Variables)
	for ci, con := range m.Constraints {
		coefs := make([]float64, n)
		for k, vi := range con.Vars {
			coefs[vi] = con.Coefs[k]
		}
		if con.Lower == con.Upper {
			eq = append(eq, row{con: ci, coefs: coefs, rhs: con.Upper, dualSign: -1})
			continue
		}
		if !math.IsInf(con.Upper, 1) {
			ineq = append(ineq, row{con: ci, coefs: coefs, rhs: con.Upper, dualSign: -1})
		}
		if !math.IsInf(con.Lower, -1) {
			neg := make([]float64, n)
			for j, c := range coefs {
				neg[j] = -c
			}
			ineq = append(ineq, row{con: ci, coefs: neg, rhs: -con.Lower, dualSign: 1})
		}
	}
	return ineq, eq
}

// solvePrimal assembles the standard form
//
//	min c'x  s.t.  [G I; A 0] [x; s] = rhs,  x, s >= 0
//
// and runs gonum's simplex on it. Model variables are already non-negative,
// so only the inequality rows need slack columns.
func (e *SimplexEngine) solvePrimal(m *transport.Model, ineq, eq []row) (x []float64, obj float64, status transport.Status) {
	n := len(m.Variables)
	rows := len(ineq) + len(eq)
	cols := n + len(ineq)

	c := make([]float64, cols)
	for _, v := range m.Variables {
		c[v.Index] = v.Cost
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i, r := range ineq {
		for j, coef := range r.coefs {
			a.Set(i, j, coef)
		}
		a.Set(i, n+i, 1)
		b[i] = r.rhs
	}
	for i, r := range eq {
		for j, coef := range r.coefs {
			a.Set(len(ineq)+i, j, coef)
		}
		b[len(ineq)+i] = r.rhs
	}

	obj, xt, err := lp.Simplex(c, a, b, e.Tol, nil)
	if err != nil {
		return nil, 0, statusFor(err)
	}

	x = xt[:n]
	for j, v := range x {
		if math.Abs(v) < valueTolerance {
			x[j] = 0
		}
	}
	return x, obj, transport.StatusOptimal
}

// solveDual solves the explicit dual of the primal assembled above:
//
//	min  rhs_ineq'lambda + rhs_eq'nu
//	s.t. -(G'lambda + A'nu) <= c   (one row per primal variable)
//	     lambda >= 0, nu free
//
// The free nu multipliers are handled by lp.Convert, which splits every
// variable into positive and negative parts; lambda's sign restriction is
// kept as explicit -lambda <= 0 rows.
func (e *SimplexEngine) solveDual(m *transport.Model, ineq, eq []row) (lambda, nu []float64, ok bool) {
	n := len(m.Variables)
	nd := len(ineq) + len(eq)

	cd := make([]float64, nd)
	for i, r := range ineq {
		cd[i] = r.rhs
	}
	for i, r := range eq {
		cd[len(ineq)+i] = r.rhs
	}

	g := mat.NewDense(n+len(ineq), nd, nil)
	h := make([]float64, n+len(ineq))
	for j, v := range m.Variables {
		for i, r := range ineq {
			g.Set(j, i, -r.coefs[j])
		}
		for i, r := range eq {
			g.Set(j, len(ineq)+i, -r.coefs[j])
		}
		h[j] = v.Cost
	}
	for i := range ineq {
		g.Set(n+i, i, -1)
	}

	cNew, aNew, bNew := lp.Convert(cd, g, h, nil, nil)
	_, zt, err := lp.Simplex(cNew, aNew, bNew, e.Tol, nil)
	if err != nil {
		return nil, nil, false
	}

	z := make([]float64, nd)
	for k := range z {
		z[k] = zt[k] - zt[nd+k]
	}
	return z[:len(ineq)], z[len(ineq):], true
}

// reducedCosts derives the per-variable reduced costs from the dual
// solution: r_j = c_j + G'lambda + A'nu, zero for basic variables by
// complementary slackness.
func reducedCosts(m *transport.Model, ineq, eq []row, lambda, nu []float64) []float64 {
	rc := make([]float64, len(m.Variables))
	for j, v := range m.Variables {
		r := v.Cost
		for i, rw := range ineq {
			r += rw.coefs[j] * lambda[i]
		}
		for i, rw := range eq {
			r += rw.coefs[j] * nu[i]
		}
		if math.Abs(r) < valueTolerance {
			r = 0
		}
		rc[j] = r
	}
	return rc
}

// activities evaluates every constraint's left-hand side at the solution,
// in the constraint's own orientation.
func activities(m *transport.Model, x []float64) []float64 {
	act := make([]float64, len(m.Constraints))
	for i, con := range m.Constraints {
		var a float64
		for k, vi := range con.Vars {
			a += con.Coefs[k] * x[vi]
		}
		act[i] = a
	}
	return act
}

func statusFor(err error) transport.Status {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return transport.StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return transport.StatusUnbounded
	default:
		return transport.StatusError
	}
}
