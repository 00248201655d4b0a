package gitlab

import (
	"fmt"
)

// CollapsableMode selects how much detail a failed scenario reveals.
type CollapsableMode string

const (
	// ModeSteps shows the executed step list.
	ModeSteps CollapsableMode = "steps"
	// ModeVars shows the step list and the failing step's variables.
	ModeVars CollapsableMode = "vars"
	// ModeScope shows the step list and the full captured scope.
	ModeScope CollapsableMode = "scope"
)

func (m CollapsableMode) String() string {
	return string(m)
}

// ParseCollapsableMode parses a mode name. Anything other than the three
// recognized modes is a configuration error.
func ParseCollapsableMode(s string) (CollapsableMode, error) {
	switch m := CollapsableMode(s); m {
	case ModeSteps, ModeVars, ModeScope:
		return m, nil
	}
	return "", fmt.Errorf("unknown collapsable mode %q (expected steps, vars, or scope)", s)
}
