// +build !linux

package meminfo

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/mem"
)

// ReadHost returns the memory stats of the local host via gopsutil on
// platforms without /proc/meminfo. Values are converted to kilobytes to
// match the Linux source; fields the platform has no notion of stay zero.
func ReadHost() (Stats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, errors.Wrap(err, "collecting virtual memory stats")
	}
	swap, err := mem.SwapMemory()
	if err != nil {
		return nil, errors.Wrap(err, "collecting swap memory stats")
	}

	return Stats{
		"MemTotal":  vm.Total / 1024,
		"MemFree":   vm.Free / 1024,
		"Buffers":   vm.Buffers / 1024,
		"Cached":    vm.Cached / 1024,
		"SwapTotal": swap.Total / 1024,
		"SwapFree":  swap.Free / 1024,
	}, nil
}
