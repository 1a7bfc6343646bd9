// Package band checks numeric values of JSON documents against inclusive bands.
package band

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/just-hms/bandcheck/bounds"
)

// Rule binds a gjson path to the band its values must fall in.
// Build rules with NewRule or ParseRule; a Rule literal has no band and Check
// rejects it.
type Rule struct {
	Name  string
	Path  string
	Range bounds.Range[float64]
}

func NewRule(name, path string, min, max float64) (Rule, error) {
	if path == "" {
		return Rule{}, fmt.Errorf("rule %q: empty path", name)
	}
	if name == "" {
		name = path
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		return Rule{}, fmt.Errorf("rule %q: NaN bound", name)
	}
	rng, err := bounds.New(min, max)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}
	return Rule{Name: name, Path: path, Range: rng}, nil
}

// ParseRule parses "[name:]path=min..max", e.g. "cpu:metrics.cpu=0..100".
func ParseRule(s string) (Rule, error) {
	eq := strings.LastIndex(s, "=")
	if eq == -1 {
		return Rule{}, fmt.Errorf("rule %q: missing '='", s)
	}
	path, band := strings.TrimSpace(s[:eq]), strings.TrimSpace(s[eq+1:])

	var name string
	if before, after, ok := strings.Cut(path, ":"); ok && !strings.ContainsAny(before, ".#()|@*?") {
		name, path = strings.TrimSpace(before), strings.TrimSpace(after)
	}

	lo, hi, ok := strings.Cut(band, "..")
	if !ok {
		return Rule{}, fmt.Errorf("rule %q: band must look like min..max", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: bad min: %w", s, err)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: bad max: %w", s, err)
	}

	return NewRule(name, path, min, max)
}
