package loans

import (
	"math"
	"testing"
)

func TestCalculateMonthlyPayment(t *testing.T) {
	tests := []struct {
		name               string
		principal          float64
		downPayment        float64
		annualInterestRate float64
		termMonths         int
		expectedRange      []float64 // [min, max] expected range
	}{
		{
			name:               "Standard 30-year mortgage",
			principal:          300000,
			downPayment:        60000, // 20%
			annualInterestRate: 0.06,
			termMonths:         360,
			expectedRange:      []float64{1438, 1440}, // Around $1438.92
		},
		{
			name:               "5-year car loan",
			principal:          25000,
			downPayment:        5000,
			annualInterestRate: 0.04,
			termMonths:         60,
			expectedRange:      []float64{360, 380}, // Around $368
		},
		{
			name:               "Zero interest loan",
			principal:          12000,
			downPayment:        2000,
			annualInterestRate: 0.0,
			termMonths:         60,
			expectedRange:      []float64{166, 167}, // Exactly $166.67
		},
		{
			name:               "100% down payment",
			principal:          50000,
			downPayment:        50000,
			annualInterestRate: 0.05,
			termMonths:         60,
			expectedRange:      []float64{0, 0},
		},
		{
			name:               "Down payment above price",
			principal:          50000,
			downPayment:        60000,
			annualInterestRate: 0.05,
			termMonths:         60,
			expectedRange:      []float64{0, 0},
		},
		{
			name:               "Zero term",
			principal:          50000,
			downPayment:        0,
			annualInterestRate: 0.05,
			termMonths:         0,
			expectedRange:      []float64{0, 0},
		},
		{
			name:               "High interest loan",
			principal:          10000,
			downPayment:        0,
			annualInterestRate: 0.18,
			termMonths:         36,
			expectedRange:      []float64{360, 380}, // Around $362
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMonthlyPayment(tt.principal, tt.downPayment, tt.annualInterestRate, tt.termMonths)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("CalculateMonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name               string
		remainingPrincipal float64
		annualInterestRate float64
		expected           float64
	}{
		{"Six percent on 240k", 240000, 0.06, 1200},
		{"Zero rate", 240000, 0, 0},
		{"Zero balance", 0, 0.06, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(tt.remainingPrincipal, tt.annualInterestRate)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CalculateInterestPayment() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(300000, 60000, 0.06, 360)

	if summary.LoanAmount != 240000 {
		t.Fatalf("expected loan amount 240000, got %.2f", summary.LoanAmount)
	}
	if math.Abs(summary.TotalPaid-summary.MonthlyPayment*360) > 0.0001 {
		t.Fatalf("expected total paid to equal 360 payments, got %.2f", summary.TotalPaid)
	}
	if math.Abs(summary.TotalInterest-(summary.TotalPaid-240000)) > 0.0001 {
		t.Fatalf("expected total interest to be total paid minus loan, got %.2f", summary.TotalInterest)
	}
	if summary.TotalInterest < 278000 || summary.TotalInterest > 279000 {
		t.Fatalf("expected total interest around 278010, got %.2f", summary.TotalInterest)
	}
	if math.Abs(summary.FirstInterest-1200) > 0.001 {
		t.Fatalf("expected first month interest of 1200, got %.2f", summary.FirstInterest)
	}
}

func TestSummarizeStaysFinite(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		downPayment float64
		annualRate  float64
		termMonths  int
	}{
		{"Huge price", 1e308, 0, 0.065, 360},
		{"Negative down payment overflow", 1e308, -1e308, 0.065, 360},
		{"Huge rate", 300000, 0, 1e300, 360},
		{"Huge price and rate", 1e308, 0, 1e6, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.principal, tt.downPayment, tt.annualRate, tt.termMonths)
			for name, value := range map[string]float64{
				"LoanAmount":     summary.LoanAmount,
				"MonthlyPayment": summary.MonthlyPayment,
				"FirstInterest":  summary.FirstInterest,
				"TotalPaid":      summary.TotalPaid,
				"TotalInterest":  summary.TotalInterest,
			} {
				if math.IsNaN(value) || math.IsInf(value, 0) {
					t.Errorf("%s is not finite: %v", name, value)
				}
			}
			if summary.MonthlyPayment <= 0 {
				t.Errorf("expected a positive payment, got %v", summary.MonthlyPayment)
			}
		})
	}
}

func TestSummarizeZeroInterest(t *testing.T) {
	summary := Summarize(12000, 0, 0, 12)
	if summary.MonthlyPayment != 1000 {
		t.Fatalf("expected monthly payment 1000, got %.2f", summary.MonthlyPayment)
	}
	if summary.TotalInterest != 0 {
		t.Fatalf("expected no interest, got %.2f", summary.TotalInterest)
	}
}

func TestSummarizeNoLoan(t *testing.T) {
	summary := Summarize(100000, 150000, 0.06, 360)
	if summary != (Summary{}) {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestTermMonths(t *testing.T) {
	tests := map[float64]int{
		30:   360,
		15:   180,
		2.5:  30,
		0:    0,
		-5:   0,
		0.04: 0,
	}

	for years, expected := range tests {
		if got := TermMonths(years); got != expected {
			t.Errorf("TermMonths(%v) = %d, expected %d", years, got, expected)
		}
	}
}
