// Package config holds the scenario catalog and the optional overrides
// file. Descriptors are immutable values handed to the runner; nothing
// here tracks live process state.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Kaboom2025/debug-harness/pkg/harness"
)

// SuiteName selects every scenario at once on the command line.
const SuiteName = "all"

// Config is everything the harness needs to run scenarios.
type Config struct {
	// AdapterBin is the debug adapter binary, "dlv" unless overridden.
	AdapterBin string
	// BaseDir is the working directory for every spawned target.
	BaseDir string
	// Scenarios in suite order.
	Scenarios []harness.Scenario
}

type fileConfig struct {
	Adapter   string             `mapstructure:"adapter"`
	BaseDir   string             `mapstructure:"base_dir"`
	Scenarios []scenarioOverride `mapstructure:"scenarios"`
}

type scenarioOverride struct {
	Name   string `mapstructure:"name"`
	Target string `mapstructure:"target"`
	Port   int    `mapstructure:"port"`
}

// Default returns the built-in scenario catalog. Ports are fixed and
// distinct per scenario so back-to-back suite runs never collide.
func Default() Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Config{
		AdapterBin: "dlv",
		BaseDir:    cwd,
		Scenarios: []harness.Scenario{
			{
				Name:   "web",
				Label:  "Web",
				Target: "./examples/targets/webapp",
				Port:   5678,
				Guidance: []string{
					"",
					"Web Debugging Steps:",
					"1. Attach a debug client to port 5678",
					"2. Set a breakpoint in createUser (examples/targets/webapp/main.go)",
					"3. Make a POST request:",
					`   curl -X POST http://localhost:5001/users -H 'Content-Type: application/json' -d '{"name": "John Doe"}'`,
					"4. Inspect variables when the breakpoint hits",
					"5. Continue execution or step through code",
				},
			},
			{
				Name:   "fetch",
				Label:  "Fetch",
				Target: "./examples/targets/fetch",
				Port:   5679,
				Guidance: []string{
					"",
					"Fetch Debugging Steps:",
					"1. Attach a debug client to port 5679",
					"2. Set breakpoints in the concurrent fetch paths:",
					"   - fetchData: per-URL goroutine body",
					"   - fetchAll: fan-out and result collection",
					"   - simulateProcessing: timed steps",
					"3. Step through the goroutines as they interleave",
					"4. Inspect per-request results as they arrive",
				},
			},
			{
				Name:   "class",
				Label:  "Class",
				Target: "./examples/targets/class",
				Port:   5680,
				Guidance: []string{
					"",
					"Class Debugging Steps:",
					"1. Attach a debug client to port 5680",
					"2. Set breakpoints in the processor methods:",
					"   - ProcessItem: validation and transformation",
					"   - ProcessBatch: per-item loop",
					"   - Stats: aggregate state",
					"3. Inspect receiver state and method parameters",
					"4. Step into the advanced processor's extra validators",
				},
			},
			{
				Name:   "fib",
				Label:  "Fib",
				Target: "./examples/targets/fib",
				Port:   5681,
				Guidance: []string{
					"",
					"Fib Debugging Steps:",
					"1. Attach a debug client to port 5681",
					"2. Set a breakpoint inside fibonacci to watch the recursion",
					"3. Step through processData's per-item branches",
					"4. Inspect locals at the debug marker before exit",
				},
			},
		},
	}
}

// Load returns the defaults, merged with the overrides file at path when
// path is non-empty. A missing or malformed file is an error; this is the
// one failure that stops the harness before anything launches.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if fc.Adapter != "" {
		cfg.AdapterBin = fc.Adapter
	}
	if fc.BaseDir != "" {
		cfg.BaseDir = fc.BaseDir
	}
	for _, ov := range fc.Scenarios {
		found := false
		for i := range cfg.Scenarios {
			if cfg.Scenarios[i].Name != ov.Name {
				continue
			}
			found = true
			if ov.Target != "" {
				cfg.Scenarios[i].Target = ov.Target
			}
			if ov.Port != 0 {
				cfg.Scenarios[i].Port = ov.Port
			}
		}
		if !found {
			return Config{}, fmt.Errorf("config overrides unknown scenario %q", ov.Name)
		}
	}
	return cfg, nil
}

// Find returns the scenario registered under name.
func (c Config) Find(name string) (harness.Scenario, bool) {
	for _, sc := range c.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return harness.Scenario{}, false
}

// Names lists valid scenario names in suite order, plus the suite alias.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Scenarios)+1)
	for _, sc := range c.Scenarios {
		names = append(names, sc.Name)
	}
	return append(names, SuiteName)
}
