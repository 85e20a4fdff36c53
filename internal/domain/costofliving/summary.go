package costofliving

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Recommendation returns the move-or-stay advice for a result with a target.
// It is empty when there is no target.
func (r Result) Recommendation() string {
	if r.Target == nil {
		return ""
	}
	if r.TargetHasMoreRoom {
		return "On paper, " + r.Target.Place + " gives you more breathing room. Consider negotiating a cost-of-living adjustment if moving."
	}
	return "Right now, staying in " + r.Current.Place + " might give you more financial stability."
}

// Summary describes the current location's monthly picture with US-formatted
// whole-dollar amounts. A nil printer uses American English.
func (r Result) Summary(p *message.Printer) string {
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	return p.Sprintf("Net $%d per month, $%d in expenses, $%d left over: %s.",
		dollars(r.NetMonthlyIncome), dollars(r.Current.TotalExpenses), dollars(r.Current.Leftover), string(r.Current.Status))
}

func dollars(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}
