// Package gitlab renders scenario results as GitLab CI job log output.
//
// Failed-scenario detail blocks (executed steps, captured variables, the
// full scope) are wrapped in GitLab's collapsible-section markers so the
// job log viewer can fold them. How much detail is revealed is selected by
// a CollapsableMode.
package gitlab
