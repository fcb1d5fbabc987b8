// Package soil turns a soil test reading into fertiliser advice.
package soil

const (
	AcidicBelowPH    = 5.5
	AlkalineAbovePH  = 7.5
	LowNitrogen      = 10.0
	LowPhosphorus    = 10.0
	LowPotassium     = 100.0
	adviceAcidic     = "Soil is acidic: consider liming to increase pH"
	adviceAlkaline   = "Soil is alkaline: consider sulfur or organic matter to lower pH"
	adviceOptimalPH  = "Soil pH is within optimal range"
	adviceNitrogen   = "Nitrogen is low: apply nitrogen-rich fertilizer"
	advicePhosphorus = "Phosphorus is low: apply phosphorus fertilizer"
	advicePotassium  = "Potassium is low: apply potassium fertilizer"
)

// Reading is one soil test. Nutrients are in the lab's units; only the
// thresholds above give them meaning.
type Reading struct {
	PH         float64 `json:"ph"`
	Nitrogen   float64 `json:"n"`
	Phosphorus float64 `json:"p"`
	Potassium  float64 `json:"k"`
}

// Advise returns exactly one pH line followed by one line per deficient
// nutrient, in N, P, K order. Boundary values count as adequate.
func Advise(ph, n, p, k float64) []string {
	out := make([]string, 0, 4)
	switch {
	case ph < AcidicBelowPH:
		out = append(out, adviceAcidic)
	case ph > AlkalineAbovePH:
		out = append(out, adviceAlkaline)
	default:
		out = append(out, adviceOptimalPH)
	}
	if n < LowNitrogen {
		out = append(out, adviceNitrogen)
	}
	if p < LowPhosphorus {
		out = append(out, advicePhosphorus)
	}
	if k < LowPotassium {
		out = append(out, advicePotassium)
	}
	return out
}

func (r Reading) Advise() []string { return Advise(r.PH, r.Nitrogen, r.Phosphorus, r.Potassium) }
