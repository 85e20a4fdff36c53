package costofliving

// stateIndex is the cost-of-living index per jurisdiction, baseline 1.0.
var stateIndex = map[string]float64{
	"Alabama": 0.88, "Alaska": 1.27, "Arizona": 0.97, "Arkansas": 0.86, "California": 1.38,
	"Colorado": 1.05, "Connecticut": 1.27, "Delaware": 1.02, "District of Columbia": 1.52,
	"Florida": 0.99, "Georgia": 0.90, "Hawaii": 1.82, "Idaho": 0.92, "Illinois": 0.95,
	"Indiana": 0.88, "Iowa": 0.89, "Kansas": 0.87, "Kentucky": 0.86, "Louisiana": 0.90,
	"Maine": 1.08, "Maryland": 1.29, "Massachusetts": 1.32, "Michigan": 0.89, "Minnesota": 0.97,
	"Mississippi": 0.84, "Missouri": 0.87, "Montana": 1.00, "Nebraska": 0.91, "Nevada": 1.04,
	"New Hampshire": 1.15, "New Jersey": 1.26, "New Mexico": 0.91, "New York": 1.39,
	"North Carolina": 0.92, "North Dakota": 0.98, "Ohio": 0.89, "Oklahoma": 0.86,
	"Oregon": 1.13, "Pennsylvania": 0.98, "Rhode Island": 1.19, "South Carolina": 0.89,
	"South Dakota": 0.95, "Tennessee": 0.89, "Texas": 0.91, "Utah": 0.97, "Vermont": 1.13,
	"Virginia": 1.03, "Washington": 1.15, "West Virginia": 0.84, "Wisconsin": 0.94, "Wyoming": 0.92,
}

// Index returns the cost-of-living index for a state, or 1.0 when unknown.
func Index(state string) float64 {
	if v, ok := stateIndex[state]; ok {
		return v
	}
	return 1.0
}

// Indexed reports whether the state has an entry in the index table.
func Indexed(state string) bool {
	_, ok := stateIndex[state]
	return ok
}
