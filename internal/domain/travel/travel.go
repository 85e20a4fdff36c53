// Package travel compares a local hourly job with travel contract work.
package travel

import (
	"math"
)

// Comparison constants.
const (
	weeksPerYear  = 52
	daysPerWeek   = 7
	weeksPerMonth = 4
	overtimeRate  = 1.5
)

// Winner names the better-paying scenario.
type Winner string

// Winners.
const (
	WinnerLocal  Winner = "local"
	WinnerTravel Winner = "travel"
)

// Local describes the home-base job.
type Local struct {
	HourlyRate        float64
	HoursPerWeek      float64
	OvertimeHours     float64
	WeeklyCommuteCost float64
}

// Travel describes contract travel work. PerDiem and LodgingCost are daily
// amounts; ExtraFood is a monthly amount.
type Travel struct {
	HourlyRate    float64
	HoursPerWeek  float64
	ContractWeeks int
	PerDiem       float64
	LodgingCost   float64
	ExtraFood     float64
	UnpaidWeeks   int
}

// Input holds both scenarios.
type Input struct {
	Local  Local
	Travel Travel
}

// DefaultInput returns the form defaults; hourly rates are left empty.
func DefaultInput() Input {
	return Input{
		Local: Local{
			HoursPerWeek:      40,
			WeeklyCommuteCost: 50,
		},
		Travel: Travel{
			HoursPerWeek:  50,
			ContractWeeks: 13,
			ExtraFood:     100,
			UnpaidWeeks:   2,
		},
	}
}

// Ready reports whether both hourly rates have been entered.
func (in Input) Ready() bool {
	return in.Local.HourlyRate != 0 && in.Travel.HourlyRate != 0
}

// LocalResult is the local scenario's yearly outcome.
type LocalResult struct {
	Hourly float64
	Weekly float64
	Annual float64
}

// TravelResult is the travel scenario's yearly outcome.
type TravelResult struct {
	Hourly           float64
	Weekly           float64
	Annual           float64
	WeeksWorked      int
	ContractsPerYear int
}

// Result compares the two scenarios. PercentDifference and BreakEvenWeeks may
// be non-finite when the local annual or the travel weekly net is zero.
type Result struct {
	Local             LocalResult
	Travel            TravelResult
	Difference        float64
	PercentDifference float64
	BreakEvenWeeks    float64
	Winner            Winner
}

// LocalAnnual computes the local scenario. Commuting is an annual drag of 52 weeks.
func LocalAnnual(l Local) LocalResult {
	weekly := l.HourlyRate*l.HoursPerWeek + l.HourlyRate*overtimeRate*l.OvertimeHours
	return LocalResult{
		Hourly: l.HourlyRate,
		Weekly: weekly,
		Annual: weekly*weeksPerYear - l.WeeklyCommuteCost*weeksPerYear,
	}
}

// TravelAnnual computes the travel scenario over the paid weeks of the year.
func TravelAnnual(t Travel) TravelResult {
	weeksWorked := weeksPerYear - t.UnpaidWeeks
	weekly := t.HourlyRate * t.HoursPerWeek
	ww := float64(weeksWorked)

	income := weekly * ww
	perDiem := t.PerDiem * daysPerWeek * ww
	costs := t.LodgingCost*daysPerWeek*ww + t.ExtraFood*weeksPerMonth*(ww/weeksPerMonth)

	contracts := 0
	if t.ContractWeeks > 0 {
		contracts = weeksWorked / t.ContractWeeks
	}

	return TravelResult{
		Hourly:           t.HourlyRate,
		Weekly:           weekly,
		Annual:           income + perDiem - costs,
		WeeksWorked:      weeksWorked,
		ContractsPerYear: contracts,
	}
}

// WeeklyNet is one travel week's pay plus per diem minus lodging and the
// monthly extra food figure.
func WeeklyNet(t Travel) float64 {
	return t.HourlyRate*t.HoursPerWeek + t.PerDiem*daysPerWeek - t.LodgingCost*daysPerWeek - t.ExtraFood*weeksPerMonth
}

// Compare runs both scenarios. It returns false unless both hourly rates are set.
func Compare(in Input) (Result, bool) {
	if !in.Ready() {
		return Result{}, false
	}

	local := LocalAnnual(in.Local)
	trav := TravelAnnual(in.Travel)
	diff := trav.Annual - local.Annual

	winner := WinnerLocal
	if diff > 0 {
		winner = WinnerTravel
	}

	return Result{
		Local:             local,
		Travel:            trav,
		Difference:        diff,
		PercentDifference: diff / local.Annual * 100,
		BreakEvenWeeks:    math.Ceil(local.Annual / weeksPerYear / WeeklyNet(in.Travel)),
		Winner:            winner,
	}, true
}
