package api

import (
	"github.com/okian/tradecalc/internal/domain/costofliving"
	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/salary"
	"github.com/okian/tradecalc/internal/domain/travel"
)

// Request bodies are decoded over a form prefilled with defaults, so absent
// fields keep their default values. The same shapes are returned by the GET
// form endpoints.

type salaryForm struct {
	Trade          string   `json:"trade"`
	State          string   `json:"state"`
	City           string   `json:"city"`
	Experience     string   `json:"experience"`
	Union          string   `json:"union"`
	Certifications []string `json:"certifications"`
	HoursPerWeek   float64  `json:"hours_per_week"`
	Overtime       bool     `json:"overtime"`
	OvertimeHours  float64  `json:"overtime_hours"`
}

func newSalaryForm(in salary.Input) salaryForm {
	return salaryForm{
		Trade:          in.Trade,
		State:          in.State,
		City:           in.City,
		Experience:     string(in.Experience),
		Union:          string(in.Union),
		Certifications: append([]string{}, in.Certifications...),
		HoursPerWeek:   in.HoursPerWeek,
		Overtime:       in.Overtime,
		OvertimeHours:  in.OvertimeHours,
	}
}

func (f salaryForm) input() salary.Input {
	return salary.Input{
		Trade:          f.Trade,
		State:          f.State,
		City:           f.City,
		Experience:     salary.Experience(f.Experience),
		Union:          salary.UnionStatus(f.Union),
		Certifications: f.Certifications,
		HoursPerWeek:   f.HoursPerWeek,
		Overtime:       f.Overtime,
		OvertimeHours:  f.OvertimeHours,
	}
}

type salaryLinks struct {
	CostOfLiving string `json:"cost_of_living"`
	Travel       string `json:"travel"`
}

type salaryResponse struct {
	Hourly     number              `json:"hourly"`
	Weekly     number              `json:"weekly"`
	Monthly    number              `json:"monthly"`
	Annual     number              `json:"annual"`
	Low        number              `json:"low"`
	High       number              `json:"high"`
	CareerPath []salary.CareerStep `json:"career_path"`
	Links      salaryLinks         `json:"links"`
}

func newSalaryResponse(in salary.Input, res salary.Result) salaryResponse {
	shown := res.Rounded()
	return salaryResponse{
		Hourly:     number(shown.Hourly),
		Weekly:     number(shown.Weekly),
		Monthly:    number(shown.Monthly),
		Annual:     number(shown.Annual),
		Low:        number(shown.Low),
		High:       number(shown.High),
		CareerPath: shown.CareerPath,
		Links: salaryLinks{
			CostOfLiving: handoff.CostOfLivingLink(res.Annual, in.State),
			Travel:       handoff.TravelLink(res.Hourly),
		},
	}
}

type expensesForm struct {
	Housing        amount `json:"housing"`
	Utilities      amount `json:"utilities"`
	Groceries      amount `json:"groceries"`
	Transportation amount `json:"transportation"`
	Insurance      amount `json:"insurance"`
	Debt           amount `json:"debt"`
	Misc           amount `json:"misc"`
}

type costOfLivingForm struct {
	AnnualIncome   amount       `json:"annual_income"`
	TaxRatePercent float64      `json:"tax_rate_percent"`
	CurrentState   string       `json:"current_state"`
	TargetState    string       `json:"target_state"`
	CurrentCity    string       `json:"current_city"`
	TargetCity     string       `json:"target_city"`
	HouseholdSize  string       `json:"household_size"`
	HousingType    string       `json:"housing_type"`
	Expenses       expensesForm `json:"expenses"`
}

func newCostOfLivingForm(in costofliving.Input) costOfLivingForm {
	e := in.Expenses
	return costOfLivingForm{
		AnnualIncome:   amount(in.AnnualIncome),
		TaxRatePercent: in.TaxRatePercent,
		CurrentState:   in.CurrentState,
		TargetState:    in.TargetState,
		CurrentCity:    in.CurrentCity,
		TargetCity:     in.TargetCity,
		HouseholdSize:  in.HouseholdSize,
		HousingType:    in.HousingType,
		Expenses: expensesForm{
			Housing:        amount(e.Housing),
			Utilities:      amount(e.Utilities),
			Groceries:      amount(e.Groceries),
			Transportation: amount(e.Transportation),
			Insurance:      amount(e.Insurance),
			Debt:           amount(e.Debt),
			Misc:           amount(e.Misc),
		},
	}
}

func (f costOfLivingForm) input() costofliving.Input {
	e := f.Expenses
	return costofliving.Input{
		AnnualIncome:   float64(f.AnnualIncome),
		TaxRatePercent: f.TaxRatePercent,
		CurrentState:   f.CurrentState,
		TargetState:    f.TargetState,
		CurrentCity:    f.CurrentCity,
		TargetCity:     f.TargetCity,
		HouseholdSize:  f.HouseholdSize,
		HousingType:    f.HousingType,
		Expenses: costofliving.Expenses{
			Housing:        float64(e.Housing),
			Utilities:      float64(e.Utilities),
			Groceries:      float64(e.Groceries),
			Transportation: float64(e.Transportation),
			Insurance:      float64(e.Insurance),
			Debt:           float64(e.Debt),
			Misc:           float64(e.Misc),
		},
	}
}

type locationResponse struct {
	State            string `json:"state"`
	Place            string `json:"place"`
	Indexed          bool   `json:"indexed"`
	TotalExpenses    number `json:"total_expenses"`
	Leftover         number `json:"leftover"`
	FixedCostPercent number `json:"fixed_cost_percent"`
	BuyingPowerScore number `json:"buying_power_score"`
	Status           string `json:"status"`
}

func newLocationResponse(l costofliving.Location) locationResponse {
	return locationResponse{
		State:            l.State,
		Place:            l.Place,
		Indexed:          costofliving.Indexed(l.State),
		TotalExpenses:    number(l.TotalExpenses),
		Leftover:         number(l.Leftover),
		FixedCostPercent: number(l.FixedCostPercent),
		BuyingPowerScore: number(l.BuyingPowerScore),
		Status:           string(l.Status),
	}
}

type costOfLivingResponse struct {
	NetMonthlyIncome  number            `json:"net_monthly_income"`
	Current           locationResponse  `json:"current"`
	Target            *locationResponse `json:"target"`
	HousingWarning    bool              `json:"housing_warning"`
	TargetHasMoreRoom bool              `json:"target_has_more_room"`
	Summary           string            `json:"summary"`
	Recommendation    string            `json:"recommendation,omitempty"`
}

func newCostOfLivingResponse(res costofliving.Result) costOfLivingResponse {
	out := costOfLivingResponse{
		NetMonthlyIncome:  number(res.NetMonthlyIncome),
		Current:           newLocationResponse(res.Current),
		HousingWarning:    res.HousingWarning,
		TargetHasMoreRoom: res.TargetHasMoreRoom,
		Summary:           res.Summary(nil),
		Recommendation:    res.Recommendation(),
	}
	if res.Target != nil {
		t := newLocationResponse(*res.Target)
		out.Target = &t
	}
	return out
}

// costOfLivingFormResponse is the prefilled form. Result is set when the
// query carried enough to run the comparison straight away.
type costOfLivingFormResponse struct {
	Form    costOfLivingForm      `json:"form"`
	AutoRun bool                  `json:"auto_run"`
	Result  *costOfLivingResponse `json:"result,omitempty"`
}

type localForm struct {
	HourlyRate        float64 `json:"hourly_rate"`
	HoursPerWeek      float64 `json:"hours_per_week"`
	OvertimeHours     float64 `json:"overtime_hours"`
	WeeklyCommuteCost float64 `json:"weekly_commute_cost"`
}

type travelForm struct {
	HourlyRate    float64 `json:"hourly_rate"`
	HoursPerWeek  float64 `json:"hours_per_week"`
	ContractWeeks int     `json:"contract_weeks"`
	PerDiem       float64 `json:"per_diem"`
	LodgingCost   float64 `json:"lodging_cost"`
	ExtraFood     float64 `json:"extra_food"`
	UnpaidWeeks   int     `json:"unpaid_weeks"`
}

type travelVsLocalForm struct {
	Local  localForm  `json:"local"`
	Travel travelForm `json:"travel"`
}

func newTravelVsLocalForm(in travel.Input) travelVsLocalForm {
	return travelVsLocalForm{
		Local:  localForm(in.Local),
		Travel: travelForm(in.Travel),
	}
}

func (f travelVsLocalForm) input() travel.Input {
	return travel.Input{
		Local:  travel.Local(f.Local),
		Travel: travel.Travel(f.Travel),
	}
}

type localResponse struct {
	Hourly number `json:"hourly"`
	Weekly number `json:"weekly"`
	Annual number `json:"annual"`
}

type travelResponse struct {
	Hourly           number `json:"hourly"`
	Weekly           number `json:"weekly"`
	Annual           number `json:"annual"`
	WeeksWorked      int    `json:"weeks_worked"`
	ContractsPerYear int    `json:"contracts_per_year"`
}

type travelVsLocalResponse struct {
	Local             localResponse  `json:"local"`
	Travel            travelResponse `json:"travel"`
	Difference        number         `json:"difference"`
	PercentDifference number         `json:"percent_difference"`
	BreakEvenWeeks    number         `json:"break_even_weeks"`
	Winner            string         `json:"winner"`
	Verdict           string         `json:"verdict"`
}

func newTravelVsLocalResponse(res travel.Result) travelVsLocalResponse {
	return travelVsLocalResponse{
		Local: localResponse{
			Hourly: number(res.Local.Hourly),
			Weekly: number(res.Local.Weekly),
			Annual: number(res.Local.Annual),
		},
		Travel: travelResponse{
			Hourly:           number(res.Travel.Hourly),
			Weekly:           number(res.Travel.Weekly),
			Annual:           number(res.Travel.Annual),
			WeeksWorked:      res.Travel.WeeksWorked,
			ContractsPerYear: res.Travel.ContractsPerYear,
		},
		Difference:        number(res.Difference),
		PercentDifference: number(res.PercentDifference),
		BreakEvenWeeks:    number(res.BreakEvenWeeks),
		Winner:            string(res.Winner),
		Verdict:           res.Verdict(nil),
	}
}
