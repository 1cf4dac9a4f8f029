package process

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool names an external executable the program relies on.
type Tool struct {
	Name    string
	Command string

	// Description says what the tool is needed for; it is appended to
	// the Detail of a missing tool.
	Description string
}

// ToolStatus reports whether a Tool could be found.
type ToolStatus struct {
	Tool
	Available bool
	Detail    string
}

// CheckTools looks each tool up in PATH and reports availability.
func CheckTools(tools []Tool) []ToolStatus {
	results := make([]ToolStatus, 0, len(tools))
	for _, tool := range tools {
		status := ToolStatus{Tool: tool}
		cmd := strings.TrimSpace(tool.Command)
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		if !status.Available && tool.Description != "" {
			status.Detail += " (needed to " + tool.Description + ")"
		}
		results = append(results, status)
	}
	return results
}
