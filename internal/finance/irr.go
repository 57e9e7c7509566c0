// Package finance provides net-present-value and internal-rate-of-return
// computation for yearly cash-flow series.
package finance

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned when a cash-flow series admits no real IRR
// (sign pattern has no root in the search interval) or the solver fails
// to converge numerically.
var ErrNoConvergence = errors.New("irr: no convergence")

const (
	maxNewtonIters    = 80
	maxBisectionIters = 200
	rateTolerance     = 1e-10
	npvTolerance      = 1e-7

	// Search interval for the bisection fallback. Rates below -100% are
	// meaningless; 1000% comfortably covers any realistic series.
	rateFloor = -0.9999
	rateCeil  = 10.0
)

// NPV returns the net present value of the series at the given discount
// rate, with flows[t] discounted by (1+rate)^t.
func NPV(rate float64, flows []float64) float64 {
	npv := 0.0
	discount := 1.0
	for _, f := range flows {
		npv += f / discount
		discount *= 1 + rate
	}
	return npv
}

// npvDerivative is d(NPV)/d(rate), used by the Newton step.
func npvDerivative(rate float64, flows []float64) float64 {
	d := 0.0
	for t := 1; t < len(flows); t++ {
		d -= float64(t) * flows[t] / math.Pow(1+rate, float64(t+1))
	}
	return d
}

// IRR returns the discount rate at which the series' net present value is
// zero. It tries Newton–Raphson first and falls back to bisection over a
// bracketed sign change. Series whose entries are all of one sign have no
// root and return ErrNoConvergence.
func IRR(flows []float64) (float64, error) {
	if len(flows) < 2 {
		return 0, ErrNoConvergence
	}

	hasPositive, hasNegative := false, false
	for _, f := range flows {
		if f > 0 {
			hasPositive = true
		}
		if f < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, ErrNoConvergence
	}

	if r, ok := newton(flows); ok {
		return r, nil
	}
	if r, ok := bisect(flows); ok {
		return r, nil
	}
	return 0, ErrNoConvergence
}

// newton runs Newton–Raphson from a 10% starting guess.
func newton(flows []float64) (float64, bool) {
	r := 0.1
	for i := 0; i < maxNewtonIters; i++ {
		f := NPV(r, flows)
		if math.Abs(f) < npvTolerance {
			return r, valid(r)
		}

		df := npvDerivative(r, flows)
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, false
		}

		next := r - f/df
		if next <= rateFloor {
			// Step shot past -100%; pull back inside the domain.
			next = (r + rateFloor) / 2
		}
		if math.Abs(next-r) < rateTolerance {
			return next, valid(next)
		}
		r = next
	}
	return 0, false
}

// bisect scans [rateFloor, rateCeil] for a sign change of NPV and narrows it.
func bisect(flows []float64) (float64, bool) {
	const steps = 400

	lo := rateFloor
	fLo := NPV(lo, flows)
	step := (rateCeil - rateFloor) / steps

	hi := lo
	fHi := fLo
	found := false
	for i := 1; i <= steps; i++ {
		hi = rateFloor + step*float64(i)
		fHi = NPV(hi, flows)
		if fLo*fHi <= 0 {
			found = true
			break
		}
		lo, fLo = hi, fHi
	}
	if !found {
		return 0, false
	}

	for i := 0; i < maxBisectionIters; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, flows)
		if math.Abs(fMid) < npvTolerance || hi-lo < rateTolerance {
			return mid, valid(mid)
		}
		if fLo*fMid <= 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, valid((lo + hi) / 2)
}

// valid rejects NaN/Inf results so callers never record them.
func valid(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0)
}
