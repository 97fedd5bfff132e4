package memory

import "github.com/hostwatch/check-memory/pkg/check"

// evaluate classifies a usage percentage against a threshold pair. Both
// bounds are inclusive. The critical comparison runs first, so when the
// thresholds are inverted (warning >= critical) critical still wins.
func evaluate(usedPercent, warning, critical float64) check.Status {
	switch {
	case usedPercent >= critical:
		return check.Critical
	case usedPercent >= warning:
		return check.Warning
	default:
		return check.OK
	}
}
