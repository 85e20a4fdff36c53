package salary

// OtherTrade is the catch-all trade used for unknown trade names.
const OtherTrade = "Other"

// Experience is a closed set of experience bands.
type Experience string

// Experience bands.
const (
	ExperienceNew          Experience = "0-1"
	ExperienceJunior       Experience = "1-3"
	ExperienceIntermediate Experience = "3-5"
	ExperienceExperienced  Experience = "5-10"
	ExperienceSenior       Experience = "10+"
)

// UnionStatus is either union or non-union.
type UnionStatus string

// Union statuses.
const (
	Union    UnionStatus = "union"
	NonUnion UnionStatus = "non-union"
)

type tradeEntry struct {
	base            float64
	stateMultiplier map[string]float64
}

// trades is keyed by display name; tradeOrder fixes the catalog order.
var tradeOrder = []string{
	"HVAC Technician",
	"Electrician",
	"Plumber",
	"Welder",
	"Carpenter",
	"CDL Truck Driver",
	"Diesel Mechanic",
	"Auto Technician",
	"Lineworker",
	"General Labor",
	OtherTrade,
}

var trades = map[string]tradeEntry{
	"HVAC Technician":  {base: 45000, stateMultiplier: map[string]float64{"California": 1.3, "Texas": 1.0, "New York": 1.25}},
	"Electrician":      {base: 52000, stateMultiplier: map[string]float64{"California": 1.35, "Texas": 1.0, "New York": 1.3}},
	"Plumber":          {base: 50000, stateMultiplier: map[string]float64{"California": 1.3, "Texas": 1.0, "New York": 1.25}},
	"Welder":           {base: 42000, stateMultiplier: map[string]float64{"California": 1.2, "Texas": 1.0, "New York": 1.15}},
	"Carpenter":        {base: 46000, stateMultiplier: map[string]float64{"California": 1.25, "Texas": 1.0, "New York": 1.2}},
	"CDL Truck Driver": {base: 48000, stateMultiplier: map[string]float64{"California": 1.2, "Texas": 1.0, "New York": 1.15}},
	"Diesel Mechanic":  {base: 47000, stateMultiplier: map[string]float64{"California": 1.25, "Texas": 1.0, "New York": 1.2}},
	"Auto Technician":  {base: 40000, stateMultiplier: map[string]float64{"California": 1.3, "Texas": 1.0, "New York": 1.25}},
	"Lineworker":       {base: 60000, stateMultiplier: map[string]float64{"California": 1.3, "Texas": 1.0, "New York": 1.25}},
	"General Labor":    {base: 35000, stateMultiplier: map[string]float64{"California": 1.3, "Texas": 1.0, "New York": 1.2}},
	OtherTrade:         {base: 45000},
}

var experienceMultipliers = map[Experience]float64{
	ExperienceNew:          1.0,
	ExperienceJunior:       1.15,
	ExperienceIntermediate: 1.3,
	ExperienceExperienced:  1.5,
	ExperienceSenior:       1.7,
}

var experienceOrder = []Experience{
	ExperienceNew,
	ExperienceJunior,
	ExperienceIntermediate,
	ExperienceExperienced,
	ExperienceSenior,
}

var certificationOptions = []string{
	"EPA 608",
	"CDL-A",
	"Journeyman License",
	"Master Electrician",
	"OSHA 10",
	"OSHA 30",
	"Welding Certification",
	"Red Seal",
}

var states = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "District of Columbia", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

// Trades returns the selectable trade names in display order.
func Trades() []string { return append([]string(nil), tradeOrder...) }

// States returns the 51 US jurisdictions in display order.
func States() []string { return append([]string(nil), states...) }

// Certifications returns the selectable certification names.
func Certifications() []string { return append([]string(nil), certificationOptions...) }

// Experiences returns the experience bands from least to most senior.
func Experiences() []Experience { return append([]Experience(nil), experienceOrder...) }

// BaseSalary returns the unadjusted annual base for a trade and whether the
// trade is known. Unknown trades report the Other base.
func BaseSalary(trade string) (float64, bool) {
	e, ok := trades[trade]
	if !ok {
		return trades[OtherTrade].base, false
	}
	return e.base, true
}

// stateMultiplier returns 1.0 when the trade/state pair is not covered.
func stateMultiplier(trade, state string) float64 {
	e, ok := trades[trade]
	if !ok {
		e = trades[OtherTrade]
	}
	if m, ok := e.stateMultiplier[state]; ok {
		return m
	}
	return 1.0
}

func experienceMultiplier(exp Experience) float64 {
	if m, ok := experienceMultipliers[exp]; ok {
		return m
	}
	return 1.0
}
