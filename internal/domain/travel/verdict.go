package travel

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Verdict explains the comparison in one sentence with US-formatted amounts.
// A nil printer uses American English.
func (r Result) Verdict(p *message.Printer) string {
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	gap := int64(math.Round(math.Abs(r.Difference)))
	if r.Winner == WinnerTravel {
		return p.Sprintf("Travel work beats local by $%d/year after all costs. You'll work %d weeks and be away from home more.",
			gap, r.Travel.WeeksWorked)
	}
	return p.Sprintf("Local work keeps $%d more in your pocket after subtracting travel expenses.", gap)
}
