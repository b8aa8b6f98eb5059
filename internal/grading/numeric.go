package grading

import (
	"math"
	"strconv"
	"strings"
)

// Numeric accepts an exact string match, or a numeric answer within
// Tolerance of a numeric key. A key may carry its own tolerance after a
// semicolon, which overrides the strategy's:
//
//	"3.14159;tol=0.01"   // absolute tolerance
//	"100;reltol=0.05"    // 5% relative tolerance
type Numeric struct{ Tolerance float64 }

func (n Numeric) Grade(answer, key string) bool {
	target, opts, _ := strings.Cut(key, ";")
	target = strings.TrimSpace(target)
	if answer == target {
		return true
	}

	rv, rOK := parseFloatLoose(answer)
	tv, tOK := parseFloatLoose(target)
	if !rOK || !tOK {
		return false
	}

	absTol, relTol := parseTolerances(strings.Split(opts, ";"))
	if absTol < 0 && relTol < 0 {
		absTol = n.Tolerance
	}
	diff := math.Abs(rv - tv)
	if absTol >= 0 && diff <= absTol {
		return true
	}
	return relTol >= 0 && diff <= relTol*math.Abs(tv)
}

func parseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if sp := strings.Fields(s); len(sp) > 0 {
		if v, err := strconv.ParseFloat(sp[0], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func parseTolerances(keys []string) (absTol float64, relTol float64) {
	absTol, relTol = -1, -1
	for _, k := range keys {
		k = strings.TrimSpace(strings.ToLower(k))
		if strings.HasPrefix(k, "tol=") {
			if v, err := strconv.ParseFloat(strings.TrimPrefix(k, "tol="), 64); err == nil {
				absTol = v
			}
		}
		if strings.HasPrefix(k, "reltol=") {
			if v, err := strconv.ParseFloat(strings.TrimPrefix(k, "reltol="), 64); err == nil {
				relTol = v
			}
		}
	}
	return
}
