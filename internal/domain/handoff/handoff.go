// Package handoff defines how one calculator passes its result to the next:
// query links between the salary, cost-of-living and travel calculators, and
// the one-shot message the quiz hands to its results view.
package handoff

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Link paths and query keys.
const (
	CostOfLivingPath = "/api/v1/cost-of-living"
	TravelPath       = "/api/v1/travel-vs-local"
	SalaryPath       = "/api/v1/salary"

	IncomeParam = "income"
	StateParam  = "state"
	LocalParam  = "local"
	TradeParam  = "trade"
)

// QuizResults is the message sent from a finished quiz to its results view.
// A nil message is valid and reads as no scores.
type QuizResults struct {
	Scores map[string]int `json:"scores"`
}

// NewQuizResults copies scores into a message so later edits to the source
// map do not leak into it.
func NewQuizResults(scores map[string]int) *QuizResults {
	cp := make(map[string]int, len(scores))
	for k, v := range scores {
		cp[k] = v
	}
	return &QuizResults{Scores: cp}
}

// ScoreMap returns the scores, or an empty map for a nil message.
func (m *QuizResults) ScoreMap() map[string]int {
	if m == nil || m.Scores == nil {
		return map[string]int{}
	}
	return m.Scores
}

// CostOfLivingLink prefills the cost-of-living form with a rounded annual
// income and, when known, the current state.
func CostOfLivingLink(annual float64, state string) string {
	q := url.Values{}
	q.Set(IncomeParam, strconv.FormatInt(int64(math.Round(annual)), 10))
	if s := strings.TrimSpace(state); s != "" {
		q.Set(StateParam, s)
	}
	return CostOfLivingPath + "?" + q.Encode()
}

// TravelLink prefills the travel comparison with a local hourly rate in cents precision.
func TravelLink(hourly float64) string {
	q := url.Values{}
	q.Set(LocalParam, strconv.FormatFloat(math.Round(hourly*100)/100, 'f', -1, 64))
	return TravelPath + "?" + q.Encode()
}

// SalaryLink points at the salary estimator for a trade.
func SalaryLink(trade string) string {
	q := url.Values{}
	q.Set(TradeParam, trade)
	return SalaryPath + "?" + q.Encode()
}

// CostOfLivingPrefill is what a cost-of-living link carries.
type CostOfLivingPrefill struct {
	Income float64
	State  string
}

// AutoRun reports whether the prefill has enough to calculate immediately.
func (p CostOfLivingPrefill) AutoRun() bool {
	return p.Income != 0 && p.State != ""
}

// ParseCostOfLiving reads a cost-of-living prefill. A missing, malformed or
// negative income reads as zero.
func ParseCostOfLiving(q url.Values) CostOfLivingPrefill {
	return CostOfLivingPrefill{
		Income: parseAmount(q.Get(IncomeParam)),
		State:  strings.TrimSpace(q.Get(StateParam)),
	}
}

// ParseTravel reads the local hourly rate from a travel link.
func ParseTravel(q url.Values) float64 {
	return parseAmount(q.Get(LocalParam))
}

// parseAmount reads a money query value; anything but a finite,
// non-negative number is zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
