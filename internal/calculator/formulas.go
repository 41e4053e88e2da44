package calculator

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/loans"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Calculator identifiers shipped with the site.
const (
	CapitalGainsTaxID    = "capital-gains-tax"
	ReturnOnInvestmentID = "return-on-investment"
	MortgagePaymentID    = "mortgage-payment"
	CompoundInterestID   = "compound-interest"
)

// Categories used for navigation grouping.
const (
	CategoryTax       = "Tax"
	CategoryInvesting = "Investing"
	CategoryLoans     = "Loans"
	CategorySavings   = "Savings"
)

var defaultRegistry = MustNewRegistry(Builtins()...)

// Default returns the registry of built-in calculators.
func Default() *Registry {
	return defaultRegistry
}

func float(v float64) *float64 {
	return &v
}

// Builtins returns the built-in definitions in display order.
func Builtins() []Definition {
	return []Definition{
		capitalGainsTax(),
		returnOnInvestment(),
		mortgagePayment(),
		compoundInterest(),
	}
}

// capitalGainsTax is a gain-then-tax formula. Clamp-on-loss: when the sale
// does not exceed the basis, taxOwed is 0 and capitalGain keeps its true,
// possibly negative, value. Outputs beyond the float64 range are capped at
// ±math.MaxFloat64.
func capitalGainsTax() Definition {
	return Definition{
		Identifier:  CapitalGainsTaxID,
		Name:        "Capital Gains Tax Calculator",
		Description: "Estimate the tax owed when you sell an asset for more than you paid for it.",
		LongDescription: `A **capital gain** is the profit from selling an asset such as stock, a
fund or property for more than its *cost basis* (what you paid, including
fees). The gain is taxed at your capital gains rate.

If the sale price is at or below the basis there is no gain to tax, so the
tax owed is zero. The calculator still shows the loss so you can use it to
offset other gains.`,
		Category: CategoryTax,
		Formula:  "capitalGain = salePrice − basis; taxOwed = max(capitalGain, 0) × taxRate ÷ 100",
		Keywords: []string{"capital gains", "tax", "investment tax", "cost basis"},
		Variables: []Variable{
			{Name: "basis", Label: "Purchase price (cost basis)", Kind: KindNumber,
				HelpText: "What you paid for the asset, including fees."},
			{Name: "salePrice", Label: "Sale price", Kind: KindNumber},
			{Name: "taxRate", Label: "Capital gains tax rate", Kind: KindPercentage, Default: float(15),
				HelpText: "Enter 15 for 15%."},
		},
		Outputs: []OutputSpec{
			{Name: "capitalGain", Label: "Capital gain", Format: FormatCurrency},
			{Name: "taxOwed", Label: "Tax owed", Format: FormatCurrency},
		},
		Calculate: func(v Values) Result {
			gain := mathutil.Saturate(v.Get("salePrice") - v.Get("basis"))
			return Named(
				Output{Name: "capitalGain", Value: gain},
				Output{Name: "taxOwed", Value: mathutil.Saturate(mathutil.NonNegative(gain) * v.Percent("taxRate"))},
			)
		},
	}
}

// returnOnInvestment reports roi as a whole-number percent. An initial
// investment of 0 has no meaningful ratio, so roi is reported as 0. Outputs
// beyond the float64 range are capped at ±math.MaxFloat64.
func returnOnInvestment() Definition {
	return Definition{
		Identifier:  ReturnOnInvestmentID,
		Name:        "ROI Calculator",
		Description: "Calculate the return on investment as a percentage of what you put in.",
		LongDescription: `Return on investment (ROI) compares the net profit of an investment to
its initial cost. A positive ROI means the investment gained value; a
negative ROI means it lost value.`,
		Category: CategoryInvesting,
		Formula:  "netProfit = finalValue − initialInvestment; roi = netProfit ÷ initialInvestment × 100",
		Keywords: []string{"roi", "return on investment", "investment return"},
		Variables: []Variable{
			{Name: "initialInvestment", Label: "Amount invested", Kind: KindNumber},
			{Name: "finalValue", Label: "Final value", Kind: KindNumber,
				HelpText: "What the investment is worth now or was sold for."},
		},
		Outputs: []OutputSpec{
			{Name: "netProfit", Label: "Net profit", Format: FormatCurrency},
			{Name: "roi", Label: "Return on investment", Format: FormatPercent},
		},
		Calculate: func(v Values) Result {
			initial := v.Get("initialInvestment")
			profit := mathutil.Saturate(v.Get("finalValue") - initial)
			return Named(
				Output{Name: "netProfit", Value: profit},
				Output{Name: "roi", Value: mathutil.Saturate(mathutil.CalculatePercentage(profit, initial))},
			)
		},
	}
}

// mortgagePayment amortizes homePrice − downPayment over termYears. A loan
// amount or term at or below zero produces a zero payment; a 0% rate is paid
// off in equal principal installments. Amounts beyond the float64 range are
// capped at math.MaxFloat64, and a rate large enough to overflow the
// compounding factor yields the interest-only payment.
func mortgagePayment() Definition {
	return Definition{
		Identifier:  MortgagePaymentID,
		Name:        "Mortgage Payment Calculator",
		Description: "Work out the monthly principal and interest payment on a fixed-rate mortgage.",
		LongDescription: `A fixed-rate mortgage is repaid in equal monthly installments. Early
payments are mostly interest; later payments are mostly principal.

The payment shown excludes property tax, insurance and escrow.`,
		Category: CategoryLoans,
		Formula:  "M = P × r ÷ (1 − (1 + r)^−n), where P = homePrice − downPayment, r = interestRate ÷ 1200, n = termYears × 12",
		Keywords: []string{"mortgage", "home loan", "monthly payment", "amortization"},
		Variables: []Variable{
			{Name: "homePrice", Label: "Home price", Kind: KindNumber},
			{Name: "downPayment", Label: "Down payment", Kind: KindNumber, Default: float(0)},
			{Name: "interestRate", Label: "Annual interest rate", Kind: KindPercentage, Default: float(6.5)},
			{Name: "termYears", Label: "Loan term (years)", Kind: KindNumber, Default: float(30)},
		},
		Outputs: []OutputSpec{
			{Name: "loanAmount", Label: "Loan amount", Format: FormatCurrency},
			{Name: "monthlyPayment", Label: "Monthly payment", Format: FormatCurrency},
			{Name: "firstMonthInterest", Label: "Interest in first payment", Format: FormatCurrency},
			{Name: "totalInterest", Label: "Total interest", Format: FormatCurrency},
			{Name: "totalPaid", Label: "Total paid", Format: FormatCurrency},
		},
		Calculate: func(v Values) Result {
			summary := loans.Summarize(
				v.Get("homePrice"),
				v.Get("downPayment"),
				v.Percent("interestRate"),
				loans.TermMonths(v.Get("termYears")),
			)
			return Named(
				Output{Name: "loanAmount", Value: summary.LoanAmount},
				Output{Name: "monthlyPayment", Value: summary.MonthlyPayment},
				Output{Name: "firstMonthInterest", Value: summary.FirstInterest},
				Output{Name: "totalInterest", Value: summary.TotalInterest},
				Output{Name: "totalPaid", Value: summary.TotalPaid},
			)
		},
	}
}

// compoundInterest grows principal at annualRate compounded compoundsPerYear
// times for years. compoundsPerYear below 1 is treated as annual compounding,
// negative years as 0 and a per-period rate below −100% as a total loss. A
// zero principal never grows, and a balance that overflows float64 is capped
// at ±math.MaxFloat64.
func compoundInterest() Definition {
	return Definition{
		Identifier:  CompoundInterestID,
		Name:        "Compound Interest Calculator",
		Description: "See how savings grow when interest earns interest.",
		LongDescription: `Compound interest adds earned interest back to the balance so that it
earns interest too. More frequent compounding grows the balance slightly
faster at the same annual rate.`,
		Category: CategorySavings,
		Formula:  "futureValue = principal × (1 + annualRate ÷ 100 ÷ n)^(n × years)",
		Keywords: []string{"compound interest", "savings", "interest calculator"},
		Variables: []Variable{
			{Name: "principal", Label: "Starting balance", Kind: KindNumber},
			{Name: "annualRate", Label: "Annual interest rate", Kind: KindPercentage},
			{Name: "years", Label: "Years", Kind: KindNumber},
			{Name: "compoundsPerYear", Label: "Compounding periods per year", Kind: KindNumber, Default: float(12),
				HelpText: "12 for monthly, 4 for quarterly, 1 for annually."},
		},
		Outputs: []OutputSpec{
			{Name: "futureValue", Label: "Future value", Format: FormatCurrency},
			{Name: "interestEarned", Label: "Interest earned", Format: FormatCurrency},
		},
		Calculate: func(v Values) Result {
			principal := v.Get("principal")
			n := math.Max(math.Floor(v.Get("compoundsPerYear")), 1)
			years := mathutil.NonNegative(v.Get("years"))
			rate := v.Percent("annualRate")

			future := 0.0
			if principal != 0 {
				// A rate below −100% per period cannot shrink a balance past zero.
				growth := mathutil.NonNegative(1 + rate/n)
				future = mathutil.Saturate(principal * math.Pow(growth, n*years))
			}
			return Named(
				Output{Name: "futureValue", Value: future},
				Output{Name: "interestEarned", Value: mathutil.Saturate(future - principal)},
			)
		},
	}
}
