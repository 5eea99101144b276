// Package scoring implements the risk scoring model: a risk level is the
// product of impact and likelihood (both 1..5), bucketed into four severity
// bands. It also computes year-over-year score changes.
package scoring

// Band is the severity band of a risk level.
type Band int

const (
	// BandUnassessed means no risk level has been recorded yet. It is a
	// distinct state, not the same as a low score.
	BandUnassessed Band = iota
	BandLow
	BandMedium
	BandHigh
	BandCritical
)

// Inclusive upper bounds for the severity bands.
const (
	LowMax    = 4
	MediumMax = 9
	HighMax   = 16
	LevelMax  = 25
)

// Level computes the risk level from impact and likelihood.
// Range validation is the caller's responsibility; for in-range inputs
// (1..5 each) the result lies in 1..25.
func Level(impact, likelihood int) int {
	return impact * likelihood
}

// Classify maps a risk level to its severity band. A nil level means the
// risk has never been assessed.
func Classify(level *int) Band {
	if level == nil {
		return BandUnassessed
	}
	switch {
	case *level <= LowMax:
		return BandLow
	case *level <= MediumMax:
		return BandMedium
	case *level <= HighMax:
		return BandHigh
	default:
		return BandCritical
	}
}

// Label returns the bilingual display label used across the UI and exports.
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "低風險 Low Risk"
	case BandMedium:
		return "中風險 Medium Risk"
	case BandHigh:
		return "高風險 High Risk"
	case BandCritical:
		return "極高風險 Critical Risk"
	default:
		return "未評估 Unassessed"
	}
}

// String returns the band's identifier for logs and JSON.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	case BandCritical:
		return "critical"
	default:
		return "unassessed"
	}
}

// Trend labels the direction of a year-over-year score change.
type Trend int

const (
	TrendNoChange Trend = iota
	TrendIncreased
	TrendDecreased
)

// String returns the trend's identifier for logs and JSON.
func (t Trend) String() string {
	switch t {
	case TrendIncreased:
		return "increased"
	case TrendDecreased:
		return "decreased"
	default:
		return "no change"
	}
}

// Delta compares a current risk level against the prior-year level. A nil
// prior (risk never assessed before) is treated as 0, so the delta equals
// the current level and a positive current score reads as increased.
func Delta(current int, prior *int) (int, Trend) {
	p := 0
	if prior != nil {
		p = *prior
	}
	d := current - p
	switch {
	case d > 0:
		return d, TrendIncreased
	case d < 0:
		return d, TrendDecreased
	default:
		return 0, TrendNoChange
	}
}
