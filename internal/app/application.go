package app

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/trex/internal/config"
	"github.com/kk-code-lab/trex/internal/logging"
	"github.com/kk-code-lab/trex/internal/preview"
	statepkg "github.com/kk-code-lab/trex/internal/state"
	dialogui "github.com/kk-code-lab/trex/internal/ui/dialog"
	inputui "github.com/kk-code-lab/trex/internal/ui/input"
	renderui "github.com/kk-code-lab/trex/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Options configures a new Application.
type Options struct {
	StartDir string
	Config   *config.Config
	Logger   logrus.FieldLogger
}

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *statepkg.AppState
	reducer     *statepkg.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan statepkg.Action
	eventCh     chan tcell.Event
	shouldQuit  bool
	currentPath string
	editorCmd   []string
	log         logrus.FieldLogger
}

// NewApplication initialises the terminal and loads the start directory.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	startDir := opts.StartDir
	if startDir == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		startDir = cwd
	}

	generator, err := preview.NewGenerator(cfg.PreviewOptions())
	if err != nil {
		return nil, err
	}

	editorCmd, editorAvail := detectEditorCommand(cfg.Editor)

	state := statepkg.NewAppState(startDir, cfg.ShowHidden)
	state.ClipboardAvailable = !clipboard.Unsupported
	state.EditorAvailable = editorAvail
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, 10)
	eventCh := make(chan tcell.Event, 10)

	renderer := renderui.NewRenderer(screen)
	renderer.SetHighlighting(cfg.Preview.Highlight, cfg.Preview.Style)

	reducer := statepkg.NewStateReducer(
		statepkg.WithPreviewGenerator(generator),
		statepkg.WithLogger(log),
	)
	reducer.SetDialogs(dialogui.New(screen, eventCh, func() {
		renderer.Render(state)
	}))

	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	reducer.Resync(state)
	log.WithFields(logrus.Fields{
		"path":        startDir,
		"show_hidden": cfg.ShowHidden,
		"editor":      editorAvail,
		"clipboard":   state.ClipboardAvailable,
	}).Info("started")

	return &Application{
		screen:      screen,
		state:       state,
		reducer:     reducer,
		renderer:    renderer,
		input:       inputHandler,
		actionCh:    actionCh,
		eventCh:     eventCh,
		currentPath: startDir,
		editorCmd:   editorCmd,
		log:         log,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// GetCurrentPath returns the current directory to output on exit.
func (app *Application) GetCurrentPath() string {
	return app.currentPath
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
