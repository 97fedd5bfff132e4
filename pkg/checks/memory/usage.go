package memory

import (
	"github.com/pkg/errors"

	"github.com/hostwatch/check-memory/pkg/meminfo"
)

// Binary gigabytes: kB values are divided by 1024².
const kbPerGB = 1024 * 1024

// Usage holds the derived memory quantities the check reports. Memory
// sitting in buffers and page cache is reclaimable, so it counts as free.
type Usage struct {
	MemUsedPercent  float64
	SwapUsedPercent float64
	MemUsedGB       float64
	MemTotalGB      float64
	SwapUsedGB      float64
	SwapTotalGB     float64
}

// computeUsage derives usage percentages and GB figures from raw kernel
// stats. A host with no configured swap reports 0% swap usage. MemTotal
// of zero cannot happen on a sane host and is surfaced as an error rather
// than a NaN percentage.
func computeUsage(stats meminfo.Stats) (Usage, error) {
	memTotal := float64(stats["MemTotal"])
	if memTotal == 0 {
		return Usage{}, errors.New("memory stats report zero MemTotal")
	}
	free := float64(stats["MemFree"] + stats["Buffers"] + stats["Cached"])

	swapTotal := float64(stats["SwapTotal"])
	swapFree := float64(stats["SwapFree"])
	var swapUsedPercent float64
	if swapTotal > 0 {
		swapUsedPercent = 100 - swapFree*100/swapTotal
	}

	return Usage{
		MemUsedPercent:  100 - free*100/memTotal,
		SwapUsedPercent: swapUsedPercent,
		MemUsedGB:       (memTotal - free) / kbPerGB,
		MemTotalGB:      memTotal / kbPerGB,
		SwapUsedGB:      (swapTotal - swapFree) / kbPerGB,
		SwapTotalGB:     swapTotal / kbPerGB,
	}, nil
}
