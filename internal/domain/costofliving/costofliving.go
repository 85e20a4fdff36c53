// Package costofliving compares what is left of a net income after household
// expenses, here and in a target state.
package costofliving

import (
	"math"
	"strconv"
	"strings"
)

// Scoring thresholds.
const (
	monthsPerYear         = 12
	scoreScale            = 200
	maxScore              = 100
	coveringBasicsPercent = 70
	comfortableShare      = 0.3
	housingWarnPercent    = 35
	housingWarnShare      = 0.35
)

// Status is the qualitative label for a location's leftover.
type Status string

// Status bands, in classification priority order.
const (
	StatusBarelySurviving  Status = "Barely Surviving"
	StatusCoveringBasics   Status = "Covering Basics"
	StatusComfortablyAhead Status = "Comfortably Ahead"
	StatusGettingBy        Status = "Getting By"
)

// Expenses are monthly household costs.
type Expenses struct {
	Housing        float64
	Utilities      float64
	Groceries      float64
	Transportation float64
	Insurance      float64
	Debt           float64
	Misc           float64
}

// Total sums all seven fields.
func (e Expenses) Total() float64 {
	return e.Variable() + e.Fixed()
}

// Variable sums the fields that scale with location.
func (e Expenses) Variable() float64 {
	return e.Housing + e.Utilities + e.Groceries + e.Transportation + e.Misc
}

// Fixed sums debt and insurance, which do not move with location.
func (e Expenses) Fixed() float64 {
	return e.Insurance + e.Debt
}

// Input holds the cost-of-living form.
type Input struct {
	AnnualIncome   float64
	TaxRatePercent float64
	Expenses       Expenses
	CurrentState   string
	TargetState    string

	// Informational fields.
	CurrentCity   string
	TargetCity    string
	HouseholdSize string
	HousingType   string
}

// DefaultInput returns the form defaults shown before the user edits anything.
func DefaultInput() Input {
	return Input{
		TaxRatePercent: 20,
		Expenses: Expenses{
			Utilities:      150,
			Groceries:      400,
			Transportation: 300,
			Insurance:      200,
			Misc:           200,
		},
		HouseholdSize: "1",
		HousingType:   "renting",
	}
}

// Ready reports whether income and current state are filled in.
func (in Input) Ready() bool {
	return in.AnnualIncome != 0 && strings.TrimSpace(in.CurrentState) != ""
}

// Location is the evaluation of expenses at one place.
type Location struct {
	State            string
	Place            string
	TotalExpenses    float64
	Leftover         float64
	FixedCostPercent float64
	BuyingPowerScore float64
	Status           Status
}

// Result is the outcome of a comparison. Target is nil when no distinct
// target state was given.
type Result struct {
	NetMonthlyIncome  float64
	Current           Location
	Target            *Location
	HousingWarning    bool
	TargetHasMoreRoom bool
}

// NetMonthly converts a gross annual income to net monthly.
func NetMonthly(annualIncome, taxRatePercent float64) float64 {
	return annualIncome * (1 - taxRatePercent/100) / monthsPerYear
}

// BuyingPower maps leftover to a 0..100 score. Keeping a quarter of net
// income scores 50, keeping half scores 100; deficits clamp to 0.
func BuyingPower(leftover, netMonthly float64) float64 {
	return math.Max(0, math.Min(maxScore, leftover/netMonthly*scoreScale))
}

// Classify assigns the status label; the first matching band wins.
func Classify(leftover, fixedCostPercent, netMonthly float64) Status {
	switch {
	case leftover < 0:
		return StatusBarelySurviving
	case fixedCostPercent > coveringBasicsPercent:
		return StatusCoveringBasics
	case leftover > netMonthly*comfortableShare:
		return StatusComfortablyAhead
	default:
		return StatusGettingBy
	}
}

// TargetExpenses scales the variable expenses by the target/current index
// ratio and returns the target monthly total.
func TargetExpenses(e Expenses, currentState, targetState string) float64 {
	ratio := Index(targetState) / Index(currentState)
	return e.Variable()*ratio + e.Fixed()
}

// Compare evaluates the current location and, when the target state differs,
// the target location. It returns false when income or current state is missing.
func Compare(in Input) (Result, bool) {
	in.CurrentState = strings.TrimSpace(in.CurrentState)
	in.TargetState = strings.TrimSpace(in.TargetState)
	if !in.Ready() {
		return Result{}, false
	}

	net := NetMonthly(in.AnnualIncome, in.TaxRatePercent)
	current := evaluate(in.CurrentState, in.CurrentCity, in.Expenses.Total(), net)

	res := Result{
		NetMonthlyIncome: net,
		Current:          current,
		HousingWarning:   current.FixedCostPercent > housingWarnPercent && in.Expenses.Housing/net > housingWarnShare,
	}

	if target := in.TargetState; target != "" && target != in.CurrentState {
		loc := evaluate(target, in.TargetCity, TargetExpenses(in.Expenses, in.CurrentState, target), net)
		res.Target = &loc
		res.TargetHasMoreRoom = loc.Leftover > current.Leftover
	}
	return res, true
}

func evaluate(state, city string, total, net float64) Location {
	leftover := net - total
	pct := total / net * 100
	place := strings.TrimSpace(city)
	if place == "" {
		place = state
	}
	return Location{
		State:            state,
		Place:            place,
		TotalExpenses:    total,
		Leftover:         leftover,
		FixedCostPercent: pct,
		BuyingPowerScore: BuyingPower(leftover, net),
		Status:           Classify(leftover, pct, net),
	}
}

// ParseAmount parses a form amount, treating blank, invalid or negative input as 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
