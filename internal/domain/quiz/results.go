package quiz

import (
	"sort"

	"github.com/okian/tradecalc/internal/domain/handoff"
)

// FallbackKey is recommended when no known trade has a score.
const FallbackKey = HVAC

const alternateCount = 2

// TradeInfo describes a trade on the results page. SalaryTrade is the
// matching salary estimator trade name.
type TradeInfo struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DailyWork    string   `json:"daily_work"`
	Environments string   `json:"environments"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	AvgSalary    string   `json:"avg_salary"`
	SalaryTrade  string   `json:"salary_trade"`
}

var tradeInfo = map[string]TradeInfo{
	HVAC: {
		Key:          HVAC,
		Name:         "HVAC Technician",
		Description:  "Install, maintain, and repair heating, ventilation, air conditioning, and refrigeration systems.",
		DailyWork:    "You'll work on HVAC systems in homes, businesses, and industrial facilities. Mix of troubleshooting, installation, and routine maintenance.",
		Environments: "Residential homes, commercial buildings, sometimes outdoors for rooftop units. Climate-controlled most of the time.",
		Pros: []string{
			"High demand year-round",
			"Good pay potential with experience",
			"Can start own business relatively easily",
			"Problem-solving and customer interaction",
		},
		Cons: []string{
			"Can involve tight spaces (attics, crawl spaces)",
			"Physically demanding at times",
			"On-call work and weekend emergencies",
			"Requires EPA certification",
		},
		AvgSalary:   "45-65k",
		SalaryTrade: "HVAC Technician",
	},
	Electrician: {
		Key:          Electrician,
		Name:         "Electrician",
		Description:  "Install, maintain, and repair electrical systems in residential, commercial, and industrial settings.",
		DailyWork:    "Wire buildings, troubleshoot electrical issues, install lighting and power systems. Mix of new construction and service work.",
		Environments: "Construction sites, homes, commercial buildings. Can involve heights and working in various conditions.",
		Pros: []string{
			"Excellent job security and demand",
			"Higher earning potential than many trades",
			"Apprenticeship-to-journeyman path is well-established",
			"Can specialize (industrial, residential, commercial)",
		},
		Cons: []string{
			"Risk of electrical shock if not careful",
			"Long apprenticeship period",
			"Can require working at heights",
			"Continuous education for code changes",
		},
		AvgSalary:   "50-75k",
		SalaryTrade: "Electrician",
	},
	Plumber: {
		Key:          Plumber,
		Name:         "Plumber",
		Description:  "Install and repair pipes, fixtures, and plumbing systems for water, gas, and drainage.",
		DailyWork:    "Install new plumbing systems, fix leaks, clear clogs, work on water heaters and fixtures. Service calls and new construction.",
		Environments: "Homes, businesses, construction sites. Often crawl spaces, basements, and under sinks.",
		Pros: []string{
			"Always in demand (people always need water and drains)",
			"Good pay, especially for experienced plumbers",
			"Can start own business",
			"Mix of service and installation work",
		},
		Cons: []string{
			"Messy work at times",
			"Tight spaces and awkward positions",
			"On-call emergencies",
			"Physically demanding",
		},
		AvgSalary:   "48-68k",
		SalaryTrade: "Plumber",
	},
	Welder: {
		Key:          Welder,
		Name:         "Welder",
		Description:  "Join metal parts using heat and specialized equipment for construction, manufacturing, and repair.",
		DailyWork:    "Read blueprints, set up welding equipment, join metal components. Work in shops, construction sites, or industrial facilities.",
		Environments: "Manufacturing plants, construction sites, shipyards, or welding shops. Often hot and requires safety gear.",
		Pros: []string{
			"High demand in manufacturing and construction",
			"Good pay, especially for specialized welding",
			"Can travel for high-paying contracts",
			"Creative and hands-on work",
		},
		Cons: []string{
			"Hot work environment with protective gear",
			"Risk of burns and eye damage without precautions",
			"Physically demanding",
			"Can involve repetitive tasks in manufacturing",
		},
		AvgSalary:   "42-62k",
		SalaryTrade: "Welder",
	},
	Carpenter: {
		Key:          Carpenter,
		Name:         "Carpenter",
		Description:  "Build, install, and repair structures and fixtures made from wood and other materials.",
		DailyWork:    "Frame buildings, install cabinets and trim, build stairs and decks. Mix of rough carpentry (framing) and finish work.",
		Environments: "Construction sites, homes, commercial buildings. Often outdoors and at heights.",
		Pros: []string{
			"Tangible results you can see and take pride in",
			"Wide variety of work (framing, finishing, cabinetry)",
			"Can start own contracting business",
			"Consistent demand in construction",
		},
		Cons: []string{
			"Physically demanding and hard on the body",
			"Work slows in bad weather",
			"Risk of injury (cuts, falls)",
			"Can be seasonal in some regions",
		},
		AvgSalary:   "44-62k",
		SalaryTrade: "Carpenter",
	},
	CDL: {
		Key:          CDL,
		Name:         "CDL Truck Driver",
		Description:  "Transport goods across short or long distances using commercial trucks.",
		DailyWork:    "Drive trucks, load/unload cargo, navigate routes, maintain logs. Can be local delivery or long-haul.",
		Environments: "On the road: highways, warehouses, loading docks. Solo time in the cab.",
		Pros: []string{
			"Quick entry (CDL training is relatively fast)",
			"Good pay, especially long-haul",
			"Independence and freedom",
			"Always in demand",
		},
		Cons: []string{
			"Long hours away from home (for long-haul)",
			"Sedentary lifestyle affects health",
			"Irregular schedule",
			"Can be lonely",
		},
		AvgSalary:   "45-65k",
		SalaryTrade: "CDL Truck Driver",
	},
	Mechanic: {
		Key:          Mechanic,
		Name:         "Diesel/Auto Mechanic",
		Description:  "Diagnose, maintain, and repair vehicles: cars, trucks, buses, or heavy equipment.",
		DailyWork:    "Troubleshoot mechanical issues, perform maintenance, replace parts. Mix of diagnostics and hands-on repair.",
		Environments: "Auto shops, dealerships, fleet maintenance facilities. Indoor, climate-controlled most of the time.",
		Pros: []string{
			"Strong job security",
			"Good problem-solving and diagnostic work",
			"Can specialize (diesel, auto, heavy equipment)",
			"Opportunities at dealerships and independent shops",
		},
		Cons: []string{
			"Physically demanding (lifting, bending)",
			"Exposure to chemicals and loud noises",
			"Requires ongoing learning as tech evolves",
			"Can be repetitive",
		},
		AvgSalary:   "42-60k",
		SalaryTrade: "Diesel Mechanic",
	},
}

// Info returns the description of a trade key.
func Info(key string) (TradeInfo, bool) {
	ti, ok := tradeInfo[key]
	if !ok {
		return TradeInfo{}, false
	}
	ti.Pros = append([]string(nil), ti.Pros...)
	ti.Cons = append([]string(nil), ti.Cons...)
	return ti, true
}

// Ranked is a trade key with its score.
type Ranked struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// Pick is a ranked trade with its description.
type Pick struct {
	TradeInfo
	Score int `json:"score"`
}

// Recommendation is the ranked outcome of a quiz.
type Recommendation struct {
	Recommended Pick     `json:"recommended"`
	Alternates  []Pick   `json:"alternates"`
	Ranking     []Ranked `json:"ranking"`
	Fallback    bool     `json:"fallback"`
}

// Rank orders the known trades in scores by descending score. Ties keep the
// fixed key order; unknown keys are dropped.
func Rank(scores map[string]int) []Ranked {
	out := make([]Ranked, 0, len(keys))
	for _, k := range keys {
		if v, ok := scores[k]; ok {
			out = append(out, Ranked{Key: k, Score: v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommend picks the top trade and the next two alternates. A nil or empty
// message recommends the fallback trade with a zero score and no alternates.
func Recommend(msg *handoff.QuizResults) Recommendation {
	ranking := Rank(msg.ScoreMap())
	if len(ranking) == 0 {
		top, _ := Info(FallbackKey)
		return Recommendation{
			Recommended: Pick{TradeInfo: top},
			Alternates:  []Pick{},
			Ranking:     ranking,
			Fallback:    true,
		}
	}

	top, _ := Info(ranking[0].Key)
	rec := Recommendation{
		Recommended: Pick{TradeInfo: top, Score: ranking[0].Score},
		Alternates:  make([]Pick, 0, alternateCount),
		Ranking:     ranking,
	}
	for _, r := range ranking[1:] {
		if len(rec.Alternates) == alternateCount {
			break
		}
		info, _ := Info(r.Key)
		rec.Alternates = append(rec.Alternates, Pick{TradeInfo: info, Score: r.Score})
	}
	return rec
}

// SalaryLink is the salary estimator link for the recommended trade.
func (r Recommendation) SalaryLink() string {
	return handoff.SalaryLink(r.Recommended.SalaryTrade)
}
