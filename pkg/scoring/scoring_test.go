package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	for impact := 1; impact <= 5; impact++ {
		for likelihood := 1; likelihood <= 5; likelihood++ {
			level := Level(impact, likelihood)
			assert.Equal(t, impact*likelihood, level)
			assert.GreaterOrEqual(t, level, 1)
			assert.LessOrEqual(t, level, LevelMax)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		level int
		want  Band
	}{
		{1, BandLow},
		{4, BandLow},
		{5, BandMedium},
		{9, BandMedium},
		{10, BandHigh},
		{16, BandHigh},
		{17, BandCritical},
		{25, BandCritical},
	}
	for _, tt := range tests {
		level := tt.level
		assert.Equal(t, tt.want, Classify(&level), "level %d", tt.level)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := BandLow
	for level := 1; level <= LevelMax; level++ {
		l := level
		band := Classify(&l)
		assert.GreaterOrEqual(t, band, prev, "band must not decrease at level %d", level)
		prev = band
	}
}

func TestClassifyUnassessed(t *testing.T) {
	band := Classify(nil)
	assert.Equal(t, BandUnassessed, band)
	// Unassessed is its own state, never one of the numeric bands.
	for level := 1; level <= LevelMax; level++ {
		l := level
		assert.NotEqual(t, band, Classify(&l))
	}
	assert.Equal(t, "未評估 Unassessed", band.Label())
}

func TestDelta(t *testing.T) {
	prior := func(v int) *int { return &v }

	d, trend := Delta(9, prior(6))
	assert.Equal(t, 3, d)
	assert.Equal(t, TrendIncreased, trend)

	d, trend = Delta(4, prior(9))
	assert.Equal(t, -5, d)
	assert.Equal(t, TrendDecreased, trend)

	d, trend = Delta(6, prior(6))
	assert.Equal(t, 0, d)
	assert.Equal(t, TrendNoChange, trend)
}

func TestDeltaAbsentPrior(t *testing.T) {
	// A risk assessed for the first time has no prior score. The delta is
	// the full current value, labeled increased rather than "no change".
	d, trend := Delta(5, nil)
	assert.Equal(t, 5, d)
	assert.Equal(t, TrendIncreased, trend)
}

func TestBandLabels(t *testing.T) {
	assert.Equal(t, "低風險 Low Risk", BandLow.Label())
	assert.Equal(t, "中風險 Medium Risk", BandMedium.Label())
	assert.Equal(t, "高風險 High Risk", BandHigh.Label())
	assert.Equal(t, "極高風險 Critical Risk", BandCritical.Label())
}

func TestTrendString(t *testing.T) {
	assert.Equal(t, "increased", TrendIncreased.String())
	assert.Equal(t, "decreased", TrendDecreased.String())
	assert.Equal(t, "no change", TrendNoChange.String())
}
