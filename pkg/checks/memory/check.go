// Package memory implements a host memory health check: it reads kernel
// memory stats, computes effective used-memory percentages for RAM and
// swap with reclaimable buffer/cache memory counted as free, and grades
// them against configurable warning/critical thresholds.
package memory

import (
	"github.com/hostwatch/check-memory/pkg/check"
	"github.com/hostwatch/check-memory/pkg/meminfo"
)

// Run executes the check once against the configured stats source and
// returns the graded result. Any error is environmental (source
// unavailable, required field missing, zero MemTotal) and maps to an
// UNKNOWN verdict at the process boundary.
func Run(conf *Config) (*Result, error) {
	stats, err := readStats(conf)
	if err != nil {
		return nil, err
	}

	usage, err := computeUsage(stats)
	if err != nil {
		return nil, err
	}

	ram := evaluate(usage.MemUsedPercent, conf.Warning, conf.Critical)

	// A host with no configured swap is never graded on the swap channel,
	// even when the thresholds would match a 0% reading.
	swap := check.OK
	if stats["SwapTotal"] > 0 {
		swap = evaluate(usage.SwapUsedPercent, conf.SwapWarning, conf.SwapCritical)
	}

	return &Result{
		Status:     check.Worse(ram, swap),
		RAMStatus:  ram,
		SwapStatus: swap,
		Usage:      usage,
		conf:       conf,
	}, nil
}

func readStats(conf *Config) (meminfo.Stats, error) {
	if conf.MeminfoPath != "" {
		return meminfo.ReadFile(conf.MeminfoPath)
	}
	return meminfo.ReadHost()
}
