package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/hostwatch/check-memory/pkg/check"
	"github.com/hostwatch/check-memory/pkg/checks/memory"
)

// Version is set at build time.
var Version = "dev"

func init() {
	log.SetFormatter(&prefixed.TextFormatter{})
	log.SetLevel(log.InfoLevel)
	// The status line owns stdout; everything else goes to stderr so the
	// scheduler parsing our output never sees diagnostics.
	log.SetOutput(os.Stderr)
}

// flags is used to store parsed flag values
type flags struct {
	warning      float64
	critical     float64
	swapWarning  float64
	swapCritical float64
	configPath   string
	meminfoPath  string
	debug        bool
	version      bool

	set *flag.FlagSet
}

// getFlags parses the command line. Threshold flags have a long and a
// short form writing to the same value; defaults come from the check's
// config defaults so usage output and behavior stay in sync.
func getFlags(args []string) (*flags, error) {
	def, err := memory.NewConfig()
	if err != nil {
		return nil, err
	}

	f := &flags{}
	set := flag.NewFlagSet("check-memory", flag.ContinueOnError)
	set.SetOutput(os.Stderr)

	set.Float64Var(&f.warning, "warning", def.Warning, "RAM warning threshold (percent used)")
	set.Float64Var(&f.warning, "w", def.Warning, "shorthand for -warning")
	set.Float64Var(&f.critical, "critical", def.Critical, "RAM critical threshold (percent used)")
	set.Float64Var(&f.critical, "c", def.Critical, "shorthand for -critical")
	set.Float64Var(&f.swapWarning, "swap_warning", def.SwapWarning, "swap warning threshold (percent used)")
	set.Float64Var(&f.swapWarning, "sw", def.SwapWarning, "shorthand for -swap_warning")
	set.Float64Var(&f.swapCritical, "swap_critical", def.SwapCritical, "swap critical threshold (percent used)")
	set.Float64Var(&f.swapCritical, "sc", def.SwapCritical, "shorthand for -swap_critical")
	set.StringVar(&f.configPath, "config", "", "path to an optional YAML config file")
	set.StringVar(&f.meminfoPath, "meminfo", "", "alternate memory stats source in /proc/meminfo format")
	set.BoolVar(&f.debug, "debug", false, "print debugging output")
	set.BoolVar(&f.version, "version", false, "print version and exit")

	if err := set.Parse(args); err != nil {
		return nil, err
	}
	if len(set.Args()) > 0 {
		set.Usage()
		return nil, fmt.Errorf("non-flag parameters are not accepted: %v", set.Args())
	}

	f.set = set
	return f, nil
}

// loadConfig builds the effective config: defaults, then the config file
// if one was given, then any thresholds set on the command line.
func loadConfig(f *flags) (*memory.Config, error) {
	var conf *memory.Config
	var err error
	if f.configPath != "" {
		conf, err = memory.LoadConfig(f.configPath)
	} else {
		conf, err = memory.NewConfig()
	}
	if err != nil {
		return nil, err
	}

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "warning", "w":
			conf.Warning = f.warning
		case "critical", "c":
			conf.Critical = f.critical
		case "swap_warning", "sw":
			conf.SwapWarning = f.swapWarning
		case "swap_critical", "sc":
			conf.SwapCritical = f.swapCritical
		case "meminfo":
			conf.MeminfoPath = f.meminfoPath
		}
	})

	return conf, nil
}

func run(args []string) int {
	f, err := getFlags(args)
	if err != nil {
		// The flag set has already written the diagnostic and usage.
		return check.Unknown.ExitCode()
	}

	if f.version {
		fmt.Printf("check-memory version %s\n", Version)
		return 0
	}
	if f.debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := loadConfig(f)
	if err != nil {
		log.WithError(err).Error("Could not load configuration")
		return check.Unknown.ExitCode()
	}
	log.WithFields(log.Fields{
		"warning":      conf.Warning,
		"critical":     conf.Critical,
		"swapWarning":  conf.SwapWarning,
		"swapCritical": conf.SwapCritical,
	}).Debug("Running memory check")

	result, err := memory.Run(conf)
	if err != nil {
		log.WithError(err).Error("Memory check failed")
		return check.Unknown.ExitCode()
	}

	fmt.Println(result.Line())
	return result.Status.ExitCode()
}

func main() {
	os.Exit(run(os.Args[1:]))
}
