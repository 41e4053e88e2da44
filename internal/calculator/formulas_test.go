package calculator

import (
	"math"
	"testing"

	"github.com/iwvelando/finance-calculators/pkg/testutil"
)

func evaluateBuiltin(t *testing.T, id string, input map[string]any) map[string]float64 {
	t.Helper()

	result, err := Default().Evaluate(id, input)
	if err != nil {
		t.Fatalf("Evaluate(%s) error = %v", id, err)
	}
	return result.Map()
}

func TestReturnOnInvestment(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]any
		netProfit float64
		roi       float64
	}{
		{"Gain", map[string]any{"initialInvestment": 1000, "finalValue": 1250}, 250, 25},
		{"Loss", map[string]any{"initialInvestment": 1000, "finalValue": 800}, -200, -20},
		{"Zero investment", map[string]any{"initialInvestment": 0, "finalValue": 500}, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluateBuiltin(t, ReturnOnInvestmentID, tt.input)
			testutil.AssertClose(t, "netProfit", out["netProfit"], tt.netProfit, 1e-9)
			testutil.AssertClose(t, "roi", out["roi"], tt.roi, 1e-9)
		})
	}
}

func TestMortgagePayment(t *testing.T) {
	tests := []struct {
		name           string
		input          map[string]any
		loanAmount     float64
		monthlyPayment float64
		totalInterest  float64
	}{
		{
			name:           "Thirty year at six percent",
			input:          map[string]any{"homePrice": 300000, "downPayment": 60000, "interestRate": 6, "termYears": 30},
			loanAmount:     240000,
			monthlyPayment: 1438.92,
			totalInterest:  278009.6,
		},
		{
			name:           "Zero interest is straight line",
			input:          map[string]any{"homePrice": 120000, "interestRate": 0, "termYears": 10},
			loanAmount:     120000,
			monthlyPayment: 1000,
			totalInterest:  0,
		},
		{
			name:           "Down payment covers the price",
			input:          map[string]any{"homePrice": 100000, "downPayment": 150000},
			loanAmount:     0,
			monthlyPayment: 0,
			totalInterest:  0,
		},
		{
			name:           "Zero term",
			input:          map[string]any{"homePrice": 100000, "termYears": 0},
			loanAmount:     100000,
			monthlyPayment: 0,
			totalInterest:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluateBuiltin(t, MortgagePaymentID, tt.input)
			testutil.AssertClose(t, "loanAmount", out["loanAmount"], tt.loanAmount, 0.01)
			testutil.AssertClose(t, "monthlyPayment", out["monthlyPayment"], tt.monthlyPayment, 0.01)
			testutil.AssertClose(t, "totalInterest", out["totalInterest"], tt.totalInterest, 2)
		})
	}
}

func TestMortgagePaymentDefaults(t *testing.T) {
	out := evaluateBuiltin(t, MortgagePaymentID, map[string]any{"homePrice": 400000})
	if out["loanAmount"] != 400000 {
		t.Fatalf("expected default down payment of 0, got loan %.2f", out["loanAmount"])
	}
	// 6.5% over 30 years.
	testutil.AssertClose(t, "monthlyPayment", out["monthlyPayment"], 2528.27, 0.01)
}

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name        string
		input       map[string]any
		futureValue float64
	}{
		{"Annual compounding", map[string]any{"principal": 1000, "annualRate": 10, "years": 2, "compoundsPerYear": 1}, 1210},
		{"Monthly default", map[string]any{"principal": 1000, "annualRate": 12, "years": 1}, 1126.825},
		{"Zero compounding treated as annual", map[string]any{"principal": 1000, "annualRate": 10, "years": 1, "compoundsPerYear": 0}, 1100},
		{"Negative years", map[string]any{"principal": 1000, "annualRate": 10, "years": -3}, 1000},
		{"Total loss floor", map[string]any{"principal": 1000, "annualRate": -250, "years": 1, "compoundsPerYear": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluateBuiltin(t, CompoundInterestID, tt.input)
			testutil.AssertClose(t, "futureValue", out["futureValue"], tt.futureValue, 0.01)
			testutil.AssertClose(t, "interestEarned", out["interestEarned"], tt.futureValue-1000, 0.01)
		})
	}
}

func TestBuiltinOutputsMatchSpecs(t *testing.T) {
	for _, def := range Builtins() {
		t.Run(def.Identifier, func(t *testing.T) {
			values := def.Defaults()
			for _, v := range def.Variables {
				if _, ok := values[v.Name]; !ok {
					values[v.Name] = 100
				}
			}
			result := def.Calculate(NewValues(values))
			if !result.IsNamed() {
				t.Fatal("expected named result")
			}
			outputs := result.Outputs()
			if len(outputs) != len(def.Outputs) {
				t.Fatalf("expected %d outputs, got %d", len(def.Outputs), len(outputs))
			}
			for i, o := range outputs {
				if o.Name != def.Outputs[i].Name {
					t.Errorf("output %d = %s, expected %s", i, o.Name, def.Outputs[i].Name)
				}
				if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
					t.Errorf("output %s is not finite: %v", o.Name, o.Value)
				}
			}
		})
	}
}

func TestBuiltinsStayFiniteOnExtremeInputs(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		input map[string]any
	}{
		{"Compound interest on nothing", CompoundInterestID, map[string]any{"principal": 0, "annualRate": 100000, "years": 1000}},
		{"Compound interest overflow", CompoundInterestID, map[string]any{"principal": 1000, "annualRate": 100000, "years": 1000}},
		{"Compound interest negative overflow", CompoundInterestID, map[string]any{"principal": -1000, "annualRate": 100000, "years": 1000}},
		{"Compound interest huge period count", CompoundInterestID, map[string]any{"principal": 1000, "annualRate": 5, "years": 1e308, "compoundsPerYear": 1e308}},
		{"Mortgage on a huge price", MortgagePaymentID, map[string]any{"homePrice": 1e308}},
		{"Mortgage with a huge rate", MortgagePaymentID, map[string]any{"homePrice": 300000, "interestRate": 1e300}},
		{"Mortgage with negative down payment", MortgagePaymentID, map[string]any{"homePrice": 1e308, "downPayment": -1e308}},
		{"Capital gain overflow", CapitalGainsTaxID, map[string]any{"basis": -1e308, "salePrice": 1e308, "taxRate": 1e300}},
		{"ROI on a tiny investment", ReturnOnInvestmentID, map[string]any{"initialInvestment": 1e-300, "finalValue": 1e300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := evaluateBuiltin(t, tt.id, tt.input)
			for name, value := range out {
				if math.IsNaN(value) || math.IsInf(value, 0) {
					t.Errorf("%s is not finite: %v", name, value)
				}
			}
		})
	}
}

func TestCompoundInterestOverflowCapsAtLargestValue(t *testing.T) {
	out := evaluateBuiltin(t, CompoundInterestID, map[string]any{"principal": 0, "annualRate": 100000, "years": 1000})
	if out["futureValue"] != 0 || out["interestEarned"] != 0 {
		t.Fatalf("expected a zero principal to stay zero, got %v", out)
	}

	out = evaluateBuiltin(t, CompoundInterestID, map[string]any{"principal": 1000, "annualRate": 100000, "years": 1000})
	if out["futureValue"] != math.MaxFloat64 {
		t.Fatalf("expected futureValue capped at MaxFloat64, got %v", out["futureValue"])
	}
}

func TestMortgageFirstMonthInterest(t *testing.T) {
	out := evaluateBuiltin(t, MortgagePaymentID, map[string]any{
		"homePrice": 300000, "downPayment": 60000, "interestRate": 6, "termYears": 30,
	})
	testutil.AssertClose(t, "firstMonthInterest", out["firstMonthInterest"], 1200, 1e-6)

	out = evaluateBuiltin(t, MortgagePaymentID, map[string]any{"homePrice": 1e308})
	if out["totalPaid"] != math.MaxFloat64 {
		t.Fatalf("expected totalPaid capped at MaxFloat64, got %v", out["totalPaid"])
	}
}
