// Package salary estimates pay for a trade from location, experience, union
// membership and certifications.
package salary

import (
	"math"
	"strings"
)

// Estimation constants.
const (
	weeksPerYear      = 52
	monthsPerYear     = 12
	unionMultiplier   = 1.2
	certificationStep = 0.05
	overtimeRate      = 1.5
	rangeLow          = 0.85
	rangeHigh         = 1.15
)

// careerSteps are the years and growth factors of the career projection.
var careerSteps = []struct {
	year   int
	factor float64
}{
	{1, 1.0},
	{3, 1.25},
	{5, 1.5},
	{10, 1.8},
}

// Input holds the salary form fields.
type Input struct {
	Trade          string
	State          string
	City           string // informational only
	Experience     Experience
	Union          UnionStatus
	Certifications []string
	HoursPerWeek   float64
	Overtime       bool
	OvertimeHours  float64
}

// DefaultInput returns the form defaults; trade and state are left empty.
func DefaultInput() Input {
	return Input{
		Experience:   ExperienceNew,
		Union:        NonUnion,
		HoursPerWeek: 40,
	}
}

// CareerStep is one point of the career projection.
type CareerStep struct {
	Year   int     `json:"year"`
	Salary float64 `json:"salary"`
}

// Result holds the estimate. Hourly, Weekly, Monthly and Annual are
// unrounded; Low, High and CareerPath are rounded to whole dollars.
type Result struct {
	Hourly     float64
	Weekly     float64
	Monthly    float64
	Annual     float64
	Low        float64
	High       float64
	CareerPath []CareerStep
}

// Rounded returns the display form: hourly to cents, the rest to whole dollars.
func (r Result) Rounded() Result {
	out := r
	out.Hourly = math.Round(r.Hourly*100) / 100
	out.Weekly = math.Round(r.Weekly)
	out.Monthly = math.Round(r.Monthly)
	out.Annual = math.Round(r.Annual)
	out.CareerPath = append([]CareerStep(nil), r.CareerPath...)
	return out
}

// Ready reports whether the required fields are present.
func (in Input) Ready() bool {
	return strings.TrimSpace(in.Trade) != "" && strings.TrimSpace(in.State) != ""
}

// CertificationCount counts distinct non-empty certifications.
func (in Input) CertificationCount() int {
	seen := make(map[string]struct{}, len(in.Certifications))
	for _, c := range in.Certifications {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		seen[c] = struct{}{}
	}
	return len(seen)
}

// AdjustedBase applies the state, experience, union and certification
// multipliers, in that order, to the trade base.
func AdjustedBase(in Input) float64 {
	base, _ := BaseSalary(in.Trade)
	base *= stateMultiplier(in.Trade, in.State)
	base *= experienceMultiplier(in.Experience)
	if in.Union == Union {
		base *= unionMultiplier
	}
	base *= 1 + certificationStep*float64(in.CertificationCount())
	return base
}

// Estimate computes the salary estimate. It returns false when trade or
// state is missing.
func Estimate(in Input) (Result, bool) {
	if !in.Ready() {
		return Result{}, false
	}

	hourly := AdjustedBase(in) / weeksPerYear / in.HoursPerWeek
	weekly := hourly * in.HoursPerWeek
	if in.Overtime && in.OvertimeHours > 0 {
		weekly += hourly * overtimeRate * in.OvertimeHours
	}
	annual := weekly * weeksPerYear

	return Result{
		Hourly:     hourly,
		Weekly:     weekly,
		Monthly:    annual / monthsPerYear,
		Annual:     annual,
		Low:        math.Round(annual * rangeLow),
		High:       math.Round(annual * rangeHigh),
		CareerPath: CareerPath(in.Trade),
	}, true
}

// CareerPath projects growth from the trade's raw base, ignoring the
// personal multipliers.
func CareerPath(trade string) []CareerStep {
	base, _ := BaseSalary(trade)
	path := make([]CareerStep, 0, len(careerSteps))
	for _, s := range careerSteps {
		path = append(path, CareerStep{Year: s.year, Salary: math.Round(base * s.factor)})
	}
	return path
}
