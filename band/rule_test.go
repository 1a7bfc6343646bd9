package band_test

import (
	"testing"

	"github.com/just-hms/bandcheck/band"
	"github.com/just-hms/bandcheck/bounds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		path     string
		min, max float64
	}{
		{in: "a=0..10", name: "a", path: "a", min: 0, max: 10},
		{in: "cpu:metrics.cpu=0..100", name: "cpu", path: "metrics.cpu", min: 0, max: 100},
		{in: "temps.#=-10..45.5", name: "temps.#", path: "temps.#", min: -10, max: 45.5},
		{in: " load : sys.load = 0.5 .. 1.5 ", name: "load", path: "sys.load", min: 0.5, max: 1.5},
		{in: `items.#(kind=="disk").used=5..5`, name: `items.#(kind=="disk").used`, path: `items.#(kind=="disk").used`, min: 5, max: 5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			rule, err := band.ParseRule(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.name, rule.Name)
			assert.Equal(t, tt.path, rule.Path)
			assert.Equal(t, tt.min, rule.Range.Min())
			assert.Equal(t, tt.max, rule.Range.Max())
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{
		"cpu",
		"cpu=0",
		"cpu=a..10",
		"cpu=0..b",
		"=0..10",
		"cpu=NaN..1",
	} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := band.ParseRule(in)
			require.Error(t, err)
			assert.NotErrorIs(t, err, bounds.ErrInvertedBounds)
		})
	}
}

func TestParseRuleInverted(t *testing.T) {
	t.Parallel()

	_, err := band.ParseRule("a=10..0")
	require.ErrorIs(t, err, bounds.ErrInvertedBounds)
	assert.Contains(t, err.Error(), `rule "a"`)
}
