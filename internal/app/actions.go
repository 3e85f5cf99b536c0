package app

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	clipboardWrite = clipboard.WriteAll
	commandBuilder = exec.Command
)

func (app *Application) handleClipboard() bool {
	if !app.state.ClipboardAvailable {
		return false
	}
	target := normalizeClipboardPath(app.state.CurrentFilePath(), runtime.GOOS)
	if err := clipboardWrite(target); err != nil {
		app.state.LastError = fmt.Errorf("copy to clipboard failed: %w", err)
		return true
	}
	app.state.Notice = "Yanked: " + target
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

// handleEditorOpen runs the editor on the selected file and resyncs, since
// the file may have changed or been removed meanwhile.
func (app *Application) handleEditorOpen() bool {
	if !app.state.EditorAvailable || len(app.editorCmd) == 0 {
		return false
	}

	file := app.state.CurrentFile()
	if file == nil || file.IsDir() {
		return false
	}

	if err := app.openFileInEditor(file.FullPath); err != nil {
		app.log.WithError(err).WithField("path", file.FullPath).Warn("editor failed")
		app.state.LastError = err
	}
	app.reducer.Resync(app.state)
	return true
}

func (app *Application) openFileInEditor(filePath string) error {
	if len(app.editorCmd) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorArgs := app.editorArgsWithFile(filePath)
	if runtime.GOOS == "windows" {
		return app.openFileInEditorFallback(editorArgs)
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return app.openFileInEditorFallback(editorArgs)
	}
	defer func() {
		_ = tty.Close()
	}()

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(editorArgs[0], editorArgs[1:]...)
	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return wrapEditorError(editorArgs[0], runErr)
}

func (app *Application) openFileInEditorFallback(args []string) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
		app.screen.Sync()
	}()

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return wrapEditorError(args[0], cmd.Run())
}

func wrapEditorError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("editor %s: %w", name, err)
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}
