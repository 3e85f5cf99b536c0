//go:build linux

package shellsetup

import (
	"fmt"
	"os"
	"strings"
)

// DetectParentShellName returns the command name of the parent process.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
