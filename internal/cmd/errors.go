package cmd

import (
	"errors"
)

var (
	// errScenariosFailed is returned by the "report" subcommand when the
	// run contained at least one failed scenario, so CI jobs fail too.
	errScenariosFailed = errors.New("scenarios failed")

	// errModeRequired is returned when no collapsable mode was configured
	// via flag or config file.
	errModeRequired = errors.New("collapsable mode is required (set -mode or collapsable_mode in the config)")
)
