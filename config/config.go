// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"log"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of defaults and command
// line arguments.
type Config struct {
	// stop once the closest pair of surviving assemblies is at least
	// this Mash distance apart
	Distance float64 `mapstructure:"distance"`

	// stop once at most this many assemblies survive
	Count int `mapstructure:"count"`

	// stop once at most this fraction of the assemblies survives
	Fraction float64 `mapstructure:"fraction"`

	// mash assembly sketch size
	SketchSize int `mapstructure:"sketch-size"`

	// number of CPU threads for mash
	Threads int `mapstructure:"threads"`

	// whether to log every discard decision
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments.
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// Validate rejects settings outside their valid domain before any
// assemblies are read or sketched. Stop-condition domains mirror
// derep.Policy.Validate; the rest are mash's requirements.
func (c Config) Validate() error {
	if c.Distance == 0 && c.Count == 0 && c.Fraction == 0 {
		return errors.New("at least one of --distance, --count or --fraction is required")
	}
	if c.Distance != 0 && (c.Distance < 0 || c.Distance >= 1) {
		return errors.New("--distance must be between 0 and 1, exclusive")
	}
	if c.Count < 0 {
		return errors.New("--count must be a positive integer")
	}
	if c.Fraction != 0 && (c.Fraction < 0 || c.Fraction > 1) {
		return errors.New("--fraction must be above 0 and at most 1")
	}
	if c.SketchSize < 1 {
		return errors.New("--sketch-size must be a positive integer")
	}
	if c.Threads < 1 {
		return errors.New("--threads must be a positive integer")
	}
	return nil
}

// DefaultThreads caps mash's default thread count at 16: beyond that the
// sketching gains are marginal on shared machines.
func DefaultThreads() int {
	threads := runtime.NumCPU()
	if threads > 16 {
		threads = 16
	}
	return threads
}
