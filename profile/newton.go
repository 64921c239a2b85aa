package profile

import (
	"fmt"
	"math"

	"github.com/npillmayer/welltraj"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolverConfig bounds the numeric solve of corner points which have no
// closed form.
type SolverConfig struct {
	Tolerance     float64 // residual norm (ft) accepted as a root
	MaxIterations int     // iteration cap; the solve fails beyond it
	Step          float64 // relative finite-difference step for the Jacobian
}

// DefaultSolverConfig returns the solver configuration used by Solve if
// none is given.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     1e-6,
		MaxIterations: 50,
		Step:          1e-6,
	}
}

// newton2 finds a root of a system of two equations in two unknowns with
// Newton–Raphson iteration, starting at x0. The Jacobian is estimated by
// forward differences. f writes the residuals for x into dst.
//
// Returns the root and the number of iterations needed. Fails with
// ErrGeometryInfeasible if the residuals are not finite, the Jacobian is
// singular, or the iteration cap is reached.
func newton2(f func(dst, x []float64), x0 [2]float64, cfg SolverConfig) ([]float64, int, error) {
	x := []float64{x0[0], x0[1]}
	fx := make([]float64, 2)
	xh := make([]float64, 2)
	fh := make([]float64, 2)
	jac := mat.NewDense(2, 2, nil)
	var dx mat.VecDense
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		f(fx, x)
		if floats.HasNaN(fx) || math.IsInf(fx[0], 0) || math.IsInf(fx[1], 0) {
			return nil, iter, fmt.Errorf("%w: residuals not finite at %v", welltraj.ErrGeometryInfeasible, x)
		}
		norm := floats.Norm(fx, 2)
		tracer().Debugf("newton #%d: x = %v, |f| = %g", iter, x, norm)
		if norm <= cfg.Tolerance {
			return x, iter, nil
		}
		for j := range x {
			copy(xh, x)
			h := cfg.Step * math.Max(1, math.Abs(x[j]))
			xh[j] += h
			f(fh, xh)
			for i := range fh {
				jac.Set(i, j, (fh[i]-fx[i])/h)
			}
		}
		if err := dx.SolveVec(jac, mat.NewVecDense(2, fx)); err != nil {
			return nil, iter, fmt.Errorf("%w: singular Jacobian at %v: %v", welltraj.ErrGeometryInfeasible, x, err)
		}
		x[0] -= dx.AtVec(0)
		x[1] -= dx.AtVec(1)
	}
	return nil, cfg.MaxIterations, fmt.Errorf("%w: no convergence after %d iterations",
		welltraj.ErrGeometryInfeasible, cfg.MaxIterations)
}
