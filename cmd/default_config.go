package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/edsim/edsim/sim/hospital"
)

// loadConfigFile overlays the YAML file at path onto the defaults.
// Uses strict field checking: typos must cause errors.
func loadConfigFile(path string) (hospital.Config, error) {
	cfg := hospital.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto cfg, so flags
// win over the config file and untouched flags never clobber file values.
func applyFlags(flags *pflag.FlagSet, cfg *hospital.Config) {
	if flags.Changed("fast-doctors") {
		cfg.FastDoctors = fastDoctors
	}
	if flags.Changed("fast-nurses") {
		cfg.FastNurses = fastNurses
	}
	if flags.Changed("ed-doctors") {
		cfg.EDDoctors = edDoctors
	}
	if flags.Changed("ed-nurses") {
		cfg.EDNurses = edNurses
	}
	if flags.Changed("beds") {
		cfg.Beds = beds
	}
	if flags.Changed("patients") {
		cfg.Patients = patients
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("arrival-mean") {
		cfg.ArrivalMean = arrivalMean
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("monitor-interval") {
		cfg.MonitorInterval = monitorInterval
	}
}

// resolveConfig builds the effective configuration for a command.
func resolveConfig(flags *pflag.FlagSet) (hospital.Config, error) {
	cfg, err := loadConfigFile(configFile)
	if err != nil {
		return cfg, err
	}
	applyFlags(flags, &cfg)
	return cfg, nil
}
