package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

var userHomeDir = os.UserHomeDir

// detectEditorCommand resolves the editor, preferring override (from the
// config file) over $VISUAL and $EDITOR.
func detectEditorCommand(override string) ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, override, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos, override string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	for _, configured := range []string{override, getenv("VISUAL"), getenv("EDITOR")} {
		if args, ok := resolveEditor(splitEditorCommand(configured), lookPath); ok {
			return args, true
		}
	}
	for _, fallback := range fallbackEditors(goos) {
		if args, ok := resolveEditor(fallback, lookPath); ok {
			return args, true
		}
	}
	return nil, false
}

func fallbackEditors(goos string) [][]string {
	if strings.EqualFold(goos, "windows") {
		return [][]string{{"code", "--wait"}, {"notepad.exe"}}
	}
	return [][]string{{"vim"}, {"vi"}, {"nano"}}
}

// splitEditorCommand splits cmd into words on unquoted whitespace. Single or
// double quotes group a word and are dropped.
func splitEditorCommand(cmd string) []string {
	var args []string
	var word strings.Builder
	var quote rune
	inWord := false

	for _, r := range cmd {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			word.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		args = append(args, word.String())
	}
	return args
}

// resolveEditor looks up the program of args on PATH, expanding a leading ~.
func resolveEditor(args []string, lookPath func(string) (string, error)) ([]string, bool) {
	if len(args) == 0 || args[0] == "" {
		return nil, false
	}
	program := args[0]
	if program == "~" || strings.HasPrefix(program, "~/") || strings.HasPrefix(program, `~\`) {
		if home, err := userHomeDir(); err == nil {
			program = filepath.Join(home, program[1:])
		}
	}
	path, err := lookPath(program)
	if err != nil {
		return nil, false
	}
	return append([]string{path}, args[1:]...), true
}
