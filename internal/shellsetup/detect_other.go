//go:build !linux

package shellsetup

// DetectParentShellName has no portable implementation outside Linux; the
// caller falls back to $SHELL.
func DetectParentShellName() string {
	return ""
}
