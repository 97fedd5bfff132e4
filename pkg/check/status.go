// Package check defines the severity vocabulary shared by check binaries
// and the exit-code contract consumed by monitoring schedulers.
package check

// Status is an ordered health verdict. Higher values are worse; combining
// two statuses always keeps the worse one.
type Status int

const (
	// OK means the measured value is below every configured threshold.
	OK Status = iota
	// Warning means the warning threshold was reached but not the critical one.
	Warning
	// Critical means the critical threshold was reached.
	Critical
	// Unknown is reserved for environmental failures (bad arguments,
	// unreadable stats source, missing required fields). The evaluator
	// never produces it from a measurement.
	Unknown
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the status to the conventional monitoring exit code
// (0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN).
func (s Status) ExitCode() int {
	return int(s)
}

// Worse returns the more severe of the two statuses.
func Worse(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}
