package checkmatrix

import (
	"fmt"
	"strings"
)

// DefaultTool is the check command used when no override is given.
const DefaultTool = "cargo check"

// Combination is one (target, feature set) pair to check. Both fields are
// bare identifiers without flag syntax. An empty target means the host's
// default target, an empty feature set means no extra features.
type Combination struct {
	Target   string
	Features string
}

// Matrix is an ordered list of combinations. The runner processes it front
// to back.
type Matrix []Combination

// CommandLine renders the shell command that checks this combination.
// Empty fields produce no flag, so the empty combination yields the bare
// tool invocation.
func (c Combination) CommandLine(tool string) string {
	parts := []string{tool}
	if c.Target != "" {
		parts = append(parts, "--target="+c.Target)
	}
	if c.Features != "" {
		parts = append(parts, "--features="+c.Features)
	}

	return strings.Join(parts, " ")
}

// String returns a human-readable description of the combination
func (c Combination) String() string {
	target := c.Target
	if target == "" {
		target = "host"
	}

	if c.Features == "" {
		return fmt.Sprintf("%s (default features)", target)
	}
	return fmt.Sprintf("%s (features: %s)", target, c.Features)
}
