package meminfo

const procMeminfoPath = "/proc/meminfo"

// ReadHost returns the memory stats of the local host from /proc/meminfo.
func ReadHost() (Stats, error) {
	return ReadFile(procMeminfoPath)
}
