// Package meminfo reads kernel-reported memory statistics in the
// line-oriented `Name: <value> kB` format exposed by /proc/meminfo.
package meminfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Stats maps a memory stat field name to its value in kilobytes. Fields
// absent from the source read back as zero, which matches the kernel's
// treatment of optional fields like Buffers and Cached.
type Stats map[string]uint64

// Field names that must be present for a usage computation to proceed.
var requiredFields = []string{"MemTotal", "MemFree", "SwapTotal", "SwapFree"}

// MissingFieldError indicates the stats source parsed cleanly but lacks a
// field the check cannot proceed without.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("memory stats source is missing required field %q", e.Field)
}

// Parse reads line-oriented memory stats from r. Each line is split on the
// first colon; the value side is taken as the first whitespace-delimited
// token, so the `kB` unit suffix and any trailing text are dropped. Lines
// that do not yield a non-empty name and an unsigned integer value are
// skipped. Parse fails if any of MemTotal, MemFree, SwapTotal or SwapFree
// is absent after the full source has been consumed.
func Parse(r io.Reader) (Stats, error) {
	stats := Stats{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		name := strings.TrimSpace(line[:colon])
		if name == "" {
			continue
		}

		fields := strings.Fields(line[colon+1:])
		if len(fields) == 0 {
			continue
		}
		value, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}

		stats[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading memory stats source")
	}

	for _, field := range requiredFields {
		if _, ok := stats[field]; !ok {
			return nil, &MissingFieldError{Field: field}
		}
	}

	return stats, nil
}

// ReadFile parses memory stats from the file at path.
func ReadFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening memory stats source %s", path)
	}
	defer f.Close()

	return Parse(f)
}
