//go:build windows

package app

// Windows consoles have no job control, so Ctrl-Z only redraws.
func (app *Application) suspendToShell() {
	app.log.Debug("suspend not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
