package memory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hostwatch/check-memory/pkg/check"
)

// Result of a single check run.
type Result struct {
	// Status is the overall verdict, the worse of the two channels.
	Status check.Status
	// RAMStatus and SwapStatus are the per-channel verdicts.
	RAMStatus  check.Status
	SwapStatus check.Status
	Usage      Usage

	conf *Config
}

// Line renders the single status line the check prints: message segments
// for every channel at WARNING or above (RAM first, then swap), or a
// combined OK segment when both are healthy, followed by perfdata tokens
// in `key=value;warn;crit;min;max` form for downstream graphing.
func (r *Result) Line() string {
	var segments []string
	if r.RAMStatus >= check.Warning {
		segments = append(segments, fmt.Sprintf("%s: RAM over %.2f%% used", r.RAMStatus, r.Usage.MemUsedPercent))
	}
	if r.SwapStatus >= check.Warning {
		segments = append(segments, fmt.Sprintf("%s: Swap over %.2f%% used", r.SwapStatus, r.Usage.SwapUsedPercent))
	}
	if len(segments) == 0 {
		segments = append(segments, fmt.Sprintf("OK: RAM is %.2f%%, Swap is %.2f%%", r.Usage.MemUsedPercent, r.Usage.SwapUsedPercent))
	}

	segments = append(segments, r.perfData())
	return strings.Join(segments, " | ")
}

func (r *Result) perfData() string {
	return fmt.Sprintf(
		"mem_used_pc=%.2f%%;%s;%s;0;100 mem_used_gb=%.2fGB; mem_total_gb=%.2fGB "+
			"swap_used_pc=%.2f%%;%s;%s;0;100 swap_used_gb=%.2fGB; swap_total_gb=%.2fGB",
		r.Usage.MemUsedPercent, fmtThreshold(r.conf.Warning), fmtThreshold(r.conf.Critical),
		r.Usage.MemUsedGB, r.Usage.MemTotalGB,
		r.Usage.SwapUsedPercent, fmtThreshold(r.conf.SwapWarning), fmtThreshold(r.conf.SwapCritical),
		r.Usage.SwapUsedGB, r.Usage.SwapTotalGB,
	)
}

func fmtThreshold(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
