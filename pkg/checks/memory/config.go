package memory

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/signalfx/defaults"
	yaml "gopkg.in/yaml.v2"
)

// Config for the memory check. Thresholds are percentages of effective
// used memory; no range validation is applied, values outside [0,100]
// are taken as given.
type Config struct {
	// RAM used-percent threshold that escalates the check to WARNING.
	Warning float64 `yaml:"warning" default:"85.0"`
	// RAM used-percent threshold that escalates the check to CRITICAL.
	Critical float64 `yaml:"critical" default:"90.0"`
	// Swap used-percent threshold that escalates the check to WARNING.
	SwapWarning float64 `yaml:"swap_warning" default:"85.0"`
	// Swap used-percent threshold that escalates the check to CRITICAL.
	SwapCritical float64 `yaml:"swap_critical" default:"90.0"`
	// Path to an alternate memory stats source in /proc/meminfo format.
	// Empty means the host source (/proc/meminfo on Linux, gopsutil
	// elsewhere). Useful when the host filesystem is mounted under a
	// subdirectory inside a container.
	MeminfoPath string `yaml:"meminfo_path"`
}

// NewConfig returns a Config with the default thresholds applied.
func NewConfig() (*Config, error) {
	conf := &Config{}
	if err := defaults.Set(conf); err != nil {
		return nil, errors.Wrap(err, "applying config defaults")
	}
	return conf, nil
}

// LoadConfig reads a YAML config file on top of the defaults. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	conf, err := NewConfig()
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return conf, nil
}
