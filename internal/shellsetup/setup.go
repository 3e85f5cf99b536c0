// Package shellsetup prints the shell wrapper that lets trex change the
// calling shell's directory on exit.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ResultFileName is the per-process file the wrapper reads after trex exits.
func ResultFileName(pid int) string {
	return fmt.Sprintf("trex_result_%d.txt", pid)
}

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	Executable   func() (string, error)
}

// PrintSetup writes the wrapper function for shellOverride, or for the
// detected shell when shellOverride is empty.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	executable := cfg.Executable
	if executable == nil {
		executable = os.Executable
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	} else if !supportedShell(shell) {
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, sh, ksh, fish)", shellOverride)
	}

	tpath, err := executable()
	if err != nil {
		tpath = "trex"
	}
	quoted := strconv.Quote(tpath)

	if shell == "fish" {
		_, err = fmt.Fprintf(w, fishTemplate, quoted, quoted)
	} else {
		_, err = fmt.Fprintf(w, posixTemplate, quoted, quoted)
	}
	return err
}

const posixTemplate = `trex() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    command %s &
    trex_pid=$!
    wait $trex_pid

    result_file="${TMPDIR:-/tmp}/trex_result_$trex_pid.txt"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ] && [ -O "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        rm -f "$result_file"
        if [ -d "$dest" ] 2>/dev/null; then
            cd "$dest"
        fi
    else
        rm -f "$result_file" 2>/dev/null
    fi
}
`

const fishTemplate = `function trex
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    command %s &
    set trex_pid $last_pid
    wait $trex_pid

    set tmp /tmp
    set -q TMPDIR; and set tmp $TMPDIR
    set result_file "$tmp/trex_result_$trex_pid.txt"
    if test -f "$result_file" -a ! -L "$result_file" -a -O "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
    rm -f "$result_file" 2>/dev/null
end
`

func supportedShell(name string) bool {
	switch name {
	case "bash", "zsh", "sh", "ksh", "fish":
		return true
	default:
		return false
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

// detectShellInternal prefers $SHELL, then the parent process, and falls
// back to the POSIX wrapper.
func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := normalizeShellName(getenv("SHELL")); supportedShell(shell) {
		return shell
	}

	if parent != nil {
		if shell := normalizeShellName(parent()); supportedShell(shell) {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "sh"
	}
	return "bash"
}

func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimSuffix(base, ".exe")
	// Login shells show up as "-bash" in process listings.
	base = strings.TrimPrefix(base, "-")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
