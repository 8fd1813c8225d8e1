package config

import (
	"context"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Pink   = color.New(color.FgMagenta).SprintFunc()

	Ctx = context.Background()
)

const (
	// Marker values used in the final report
	Unknown      = "Unknown"
	LookupFailed = "lookup failed"
)

// Conf holds the runtime settings of the correlation pipeline.
type Conf struct {
	AdvisorySite string `yaml:"advisory_site"`
	ExploitSite  string `yaml:"exploit_site"`
	// Timeout of a single outbound request, in seconds
	Timeout int `yaml:"timeout"`
	// Number of services correlated at the same time
	Concurrency int `yaml:"concurrency"`
}

func Default() *Conf {
	return &Conf{
		AdvisorySite: "https://www.cvedetails.com",
		ExploitSite:  "https://www.exploit-db.com",
		Timeout:      5,
		Concurrency:  5,
	}
}

// Load reads a YAML config file and overrides the defaults with
// every field that is set. An empty filename returns the defaults.
func Load(filename string) (*Conf, error) {
	conf := Default()

	if filename == "" {
		return conf, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, err
	}

	override := &Conf{}
	if err := yaml.Unmarshal(data, override); err != nil {
		return conf, err
	}

	if override.AdvisorySite != "" {
		conf.AdvisorySite = override.AdvisorySite
	}
	if override.ExploitSite != "" {
		conf.ExploitSite = override.ExploitSite
	}
	if override.Timeout > 0 {
		conf.Timeout = override.Timeout
	}
	if override.Concurrency > 0 {
		conf.Concurrency = override.Concurrency
	}

	return conf, nil
}
