package band

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

type Status int

const (
	InBand Status = iota
	Below
	Above
	Missing
	NotNumber
)

func (s Status) String() string {
	switch s {
	case InBand:
		return "in band"
	case Below:
		return "below"
	case Above:
		return "above"
	case Missing:
		return "missing"
	case NotNumber:
		return "not a number"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Finding is the outcome of one rule on one value of a document.
type Finding struct {
	Source  string
	Rule    string
	Path    string
	Raw     string
	Value   float64
	Clamped float64
	Status  Status
}

func (f Finding) OK() bool {
	return f.Status == InBand
}

// Check evaluates every rule against doc. A path resolving to an array yields
// one finding per element, in element order; an empty array yields none.
func Check(source string, doc []byte, rules []Rule) ([]Finding, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("%s: document is not valid json", source)
	}

	var findings []Finding
	for _, rule := range rules {
		if !rule.Range.Valid() {
			return nil, fmt.Errorf("rule %q: no band", rule.Name)
		}

		res := gjson.GetBytes(doc, rule.Path)
		log.Debugf("%s: %s resolved to %s", source, rule.Path, res.Raw)

		if !res.Exists() {
			findings = append(findings, Finding{
				Source: source,
				Rule:   rule.Name,
				Path:   rule.Path,
				Status: Missing,
			})
			continue
		}

		if res.IsArray() {
			for i, elem := range res.Array() {
				findings = append(findings, evaluate(source, rule, fmt.Sprintf("%s[%d]", rule.Path, i), elem))
			}
			continue
		}

		findings = append(findings, evaluate(source, rule, rule.Path, res))
	}

	return findings, nil
}

func evaluate(source string, rule Rule, path string, res gjson.Result) Finding {
	f := Finding{
		Source: source,
		Rule:   rule.Name,
		Path:   path,
		Raw:    res.Raw,
	}

	if res.Type != gjson.Number {
		f.Status = NotNumber
		return f
	}

	f.Value = res.Float()
	f.Clamped = rule.Range.Clamp(f.Value)

	switch {
	case rule.Range.LessThanMin(f.Value):
		f.Status = Below
	case rule.Range.GreaterThanMax(f.Value):
		f.Status = Above
	default:
		f.Status = InBand
	}
	return f
}
