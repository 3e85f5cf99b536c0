package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/trex/internal/state"
)

// Run draws the UI and processes events until a quit action arrives.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			app.eventCh <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-app.eventCh:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// processActions drains queued actions without blocking.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	// Errors and notices describe the previous command only.
	if _, isResize := action.(statepkg.ResizeAction); !isResize {
		app.state.LastError = nil
		app.state.Notice = ""
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.QuitAndChangeAction:
		app.currentPath = app.state.CurrentPath
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	return app.handleAppAction(action)
}

func (app *Application) handleAppAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.YankPathAction:
		return app.handleClipboard()
	case statepkg.OpenEditorAction:
		return app.handleEditorOpen()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.WithError(err).Debug("action failed")
		app.state.LastError = err
	}
	app.syncScreenSize()
	return true
}

// syncScreenSize catches resizes that a dialog consumed while it was open.
func (app *Application) syncScreenSize() {
	w, h := app.screen.Size()
	if w == app.state.ScreenWidth && h == app.state.ScreenHeight {
		return
	}
	if _, err := app.reducer.Reduce(app.state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
		app.log.WithError(err).Debug("resize failed")
	}
}
