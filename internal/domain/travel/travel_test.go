package travel_test

import (
	"math"
	"testing"

	"github.com/okian/tradecalc/internal/domain/travel"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleInput() travel.Input {
	in := travel.DefaultInput()
	in.Local.HourlyRate = 28
	in.Travel.HourlyRate = 35
	in.Travel.PerDiem = 50
	in.Travel.LodgingCost = 30
	return in
}

func TestCompare(t *testing.T) {
	Convey("Given a local and a travel offer", t, func() {
		in := sampleInput()

		Convey("When either hourly rate is missing", func() {
			noLocal := in
			noLocal.Local.HourlyRate = 0
			noTravel := in
			noTravel.Travel.HourlyRate = 0

			Convey("Then nothing is computed", func() {
				_, ok := travel.Compare(noLocal)
				So(ok, ShouldBeFalse)
				_, ok = travel.Compare(noTravel)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When comparing with form defaults", func() {
			res, ok := travel.Compare(in)

			Convey("Then the local annual subtracts a year of commuting", func() {
				So(ok, ShouldBeTrue)
				So(res.Local.Weekly, ShouldEqual, 1120)
				So(res.Local.Annual, ShouldEqual, 55640)
			})

			Convey("And travel nets income plus per diem minus lodging and food", func() {
				So(res.Travel.WeeksWorked, ShouldEqual, 50)
				So(res.Travel.ContractsPerYear, ShouldEqual, 3)
				So(res.Travel.Weekly, ShouldEqual, 1750)
				So(res.Travel.Annual, ShouldAlmostEqual, 89500, 1e-9)
			})

			Convey("And travel wins", func() {
				So(res.Difference, ShouldAlmostEqual, 33860, 1e-9)
				So(res.PercentDifference, ShouldAlmostEqual, 33860.0/55640*100, 1e-9)
				So(res.Winner, ShouldEqual, travel.WinnerTravel)
				So(res.BreakEvenWeeks, ShouldEqual, 1)
			})

			Convey("And the verdict formats the gap", func() {
				So(res.Verdict(nil), ShouldEqual,
					"Travel work beats local by $33,860/year after all costs. You'll work 50 weeks and be away from home more.")
			})
		})

		Convey("When the travel offer is worse", func() {
			in.Travel.HourlyRate = 20
			in.Travel.HoursPerWeek = 40
			in.Travel.PerDiem = 0
			in.Travel.LodgingCost = 0
			in.Travel.ExtraFood = 0
			in.Travel.UnpaidWeeks = 12
			res, _ := travel.Compare(in)

			Convey("Then local wins with a negative difference", func() {
				So(res.Travel.Annual, ShouldEqual, 32000)
				So(res.Difference, ShouldEqual, -23640)
				So(res.Winner, ShouldEqual, travel.WinnerLocal)
				So(res.Verdict(nil), ShouldEqual, "Local work keeps $23,640 more in your pocket after subtracting travel expenses.")
			})
		})

		Convey("When both scenarios pay the same", func() {
			in.Local = travel.Local{HourlyRate: 10, HoursPerWeek: 50}
			in.Travel = travel.Travel{HourlyRate: 10, HoursPerWeek: 50, ContractWeeks: 13}
			res, _ := travel.Compare(in)

			Convey("Then local is reported as the winner", func() {
				So(res.Difference, ShouldEqual, 0)
				So(res.Winner, ShouldEqual, travel.WinnerLocal)
			})
		})

		Convey("When the local annual is zero", func() {
			in.Local = travel.Local{HourlyRate: 28}
			res, ok := travel.Compare(in)

			Convey("Then the percent difference is not finite", func() {
				So(ok, ShouldBeTrue)
				So(math.IsInf(res.PercentDifference, 1), ShouldBeTrue)
			})
		})
	})
}

func TestTravelAnnual(t *testing.T) {
	Convey("Given a 35/hr, 50 hour, 13 week contract with 2 unpaid weeks", t, func() {
		tr := travel.Travel{HourlyRate: 35, HoursPerWeek: 50, ContractWeeks: 13, UnpaidWeeks: 2}

		Convey("Then 50 weeks are worked for 87500 before per diem and costs", func() {
			res := travel.TravelAnnual(tr)
			So(res.WeeksWorked, ShouldEqual, 50)
			So(res.Annual, ShouldEqual, 87500)
		})

		Convey("When the contract length is zero", func() {
			tr.ContractWeeks = 0

			Convey("Then contracts per year is zero", func() {
				So(travel.TravelAnnual(tr).ContractsPerYear, ShouldEqual, 0)
			})
		})
	})
}

func TestWeeklyNet(t *testing.T) {
	Convey("Given daily per diem and lodging with monthly extra food", t, func() {
		tr := travel.Travel{HourlyRate: 35, HoursPerWeek: 50, PerDiem: 50, LodgingCost: 30, ExtraFood: 100}

		Convey("Then the weekly net uses 7 days and 4 weeks of food", func() {
			So(travel.WeeklyNet(tr), ShouldEqual, 1750+350-210-400)
		})
	})
}
