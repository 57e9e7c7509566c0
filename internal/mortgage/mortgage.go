// Package mortgage implements fixed-rate amortization math: the standard
// annuity payment formula plus a full month-by-month schedule.
package mortgage

import "math"

// DefaultTermYears is the loan term used when none is specified.
const DefaultTermYears = 30

// MonthlyPayment returns the fixed monthly payment that amortizes principal
// to zero over years*12 equal payments at the given annual rate.
//
// Uses r = rate/12, n = years*12:
//
//	payment = principal * r*(1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to principal/n instead of dividing by zero.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	n := float64(years * 12)
	if annualRate == 0 {
		return principal / n
	}

	r := annualRate / 12
	compound := math.Pow(1+r, n)
	return principal * r * compound / (compound - 1)
}

// Summary describes the total cost of a loan at a fixed monthly payment.
type Summary struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// Summarize computes the monthly payment and lifetime totals for a loan.
func Summarize(principal, annualRate float64, years int) Summary {
	monthly := MonthlyPayment(principal, annualRate, years)
	total := monthly * float64(years*12)
	return Summary{
		MonthlyPayment: monthly,
		TotalPaid:      total,
		TotalInterest:  total - principal,
	}
}

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule produces the month-by-month amortization rows for a loan.
// The final balance is clamped to zero to absorb floating-point residue.
func Schedule(principal, annualRate float64, years int) []ScheduleRow {
	n := years * 12
	monthly := MonthlyPayment(principal, annualRate, years)
	monthlyRate := annualRate / 12

	rows := make([]ScheduleRow, 0, n)
	balance := principal
	for m := 1; m <= n; m++ {
		interest := balance * monthlyRate
		paid := monthly - interest
		balance -= paid
		if m == n || balance < 0 {
			balance = 0
		}
		rows = append(rows, ScheduleRow{
			Month:     m,
			Payment:   monthly,
			Interest:  interest,
			Principal: paid,
			Balance:   balance,
		})
	}
	return rows
}
