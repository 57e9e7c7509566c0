package mortgage

import (
	"math"
	"testing"
)

func TestMonthlyPayment_zeroRate(t *testing.T) {
	// A zero-rate loan is just the principal divided over the payments.
	got := MonthlyPayment(360000, 0, 30)
	want := 360000.0 / (30 * 12)
	if got != want {
		t.Errorf("zero-rate payment: got %f, want %f", got, want)
	}
}

func TestMonthlyPayment_annuityIdentity(t *testing.T) {
	// payment * ((1+r)^n - 1)/(r*(1+r)^n) must recover the principal.
	tests := []struct {
		principal float64
		rate      float64
		years     int
	}{
		{1600000, 0.07, 30},
		{500000, 0.035, 15},
		{2000000, 0.08, 30},
		{100000, 0.12, 10},
	}
	for _, tt := range tests {
		payment := MonthlyPayment(tt.principal, tt.rate, tt.years)
		r := tt.rate / 12
		n := float64(tt.years * 12)
		compound := math.Pow(1+r, n)
		recovered := payment * (compound - 1) / (r * compound)
		if math.Abs(recovered-tt.principal) > 1e-6 {
			t.Errorf("principal=%f rate=%f years=%d: recovered %f",
				tt.principal, tt.rate, tt.years, recovered)
		}
	}
}

func TestMonthlyPayment_knownValue(t *testing.T) {
	// $1.6M at 7% over 30 years is about $10,645.50/month.
	got := MonthlyPayment(1600000, 0.07, 30)
	if math.Abs(got-10645.50) > 0.5 {
		t.Errorf("payment: got %f, want ~10645.50", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(1000000, 0.07, 30)
	if s.TotalPaid <= 1000000 {
		t.Errorf("total paid %f should exceed principal", s.TotalPaid)
	}
	if math.Abs(s.TotalPaid-s.MonthlyPayment*360) > 1e-6 {
		t.Errorf("total paid %f inconsistent with monthly %f", s.TotalPaid, s.MonthlyPayment)
	}
	if math.Abs(s.TotalInterest-(s.TotalPaid-1000000)) > 1e-6 {
		t.Errorf("total interest %f inconsistent", s.TotalInterest)
	}
}

func TestSchedule(t *testing.T) {
	principal := 1600000.0
	rows := Schedule(principal, 0.07, 30)

	if len(rows) != 360 {
		t.Fatalf("schedule length: got %d, want 360", len(rows))
	}

	// Principal portions must sum back to the loan amount.
	var paid float64
	for _, r := range rows {
		paid += r.Principal
		if r.Balance < 0 {
			t.Errorf("month %d: negative balance %f", r.Month, r.Balance)
		}
	}
	if math.Abs(paid-principal) > 1 {
		t.Errorf("principal repaid: got %f, want %f", paid, principal)
	}

	if rows[len(rows)-1].Balance != 0 {
		t.Errorf("final balance: got %f, want 0", rows[len(rows)-1].Balance)
	}

	// Interest share declines as the balance amortizes.
	if rows[0].Interest <= rows[len(rows)-1].Interest {
		t.Errorf("interest should decline: first %f, last %f",
			rows[0].Interest, rows[len(rows)-1].Interest)
	}
}

func TestSchedule_zeroRate(t *testing.T) {
	rows := Schedule(120000, 0, 10)
	if len(rows) != 120 {
		t.Fatalf("schedule length: got %d", len(rows))
	}
	for _, r := range rows {
		if r.Interest != 0 {
			t.Fatalf("month %d: zero-rate schedule has interest %f", r.Month, r.Interest)
		}
		if math.Abs(r.Payment-1000) > 1e-9 {
			t.Fatalf("month %d: payment %f, want 1000", r.Month, r.Payment)
		}
	}
}
