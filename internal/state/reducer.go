package state

import (
	"os"
	"path/filepath"

	fsutil "github.com/kk-code-lab/trex/internal/fs"
	"github.com/kk-code-lab/trex/internal/logging"
	"github.com/kk-code-lab/trex/internal/preview"
	"github.com/sirupsen/logrus"
)

// StateReducer applies actions to AppState. Every transition that changes
// what is on screen ends in exactly one resync.
type StateReducer struct {
	list    func(path string, showHidden bool) ([]FileEntry, error)
	preview func(path string, showHidden bool) *preview.Preview
	home    func() (string, error)
	dialogs Dialogs
	log     logrus.FieldLogger
}

// ReducerOption configures a StateReducer.
type ReducerOption func(*StateReducer)

// WithPreviewGenerator routes previews through g.
func WithPreviewGenerator(g *preview.Generator) ReducerOption {
	return func(r *StateReducer) {
		r.preview = g.Generate
	}
}

// WithDialogs sets the prompt/confirmation collaborator used by mutations.
func WithDialogs(d Dialogs) ReducerOption {
	return func(r *StateReducer) {
		r.dialogs = d
	}
}

// WithLogger sets the reducer logger.
func WithLogger(l logrus.FieldLogger) ReducerOption {
	return func(r *StateReducer) {
		r.log = l
	}
}

// WithLister replaces the directory catalog.
func WithLister(fn func(path string, showHidden bool) ([]FileEntry, error)) ReducerOption {
	return func(r *StateReducer) {
		r.list = fn
	}
}

// WithHomeDir replaces home directory resolution.
func WithHomeDir(fn func() (string, error)) ReducerOption {
	return func(r *StateReducer) {
		r.home = fn
	}
}

func NewStateReducer(opts ...ReducerOption) *StateReducer {
	r := &StateReducer{
		list:    fsutil.List,
		preview: preview.MustNewGenerator(preview.DefaultOptions()).Generate,
		home:    os.UserHomeDir,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetDialogs installs the dialog collaborator after construction; the UI
// dialogs need a screen that exists only once the application starts.
func (r *StateReducer) SetDialogs(d Dialogs) {
	r.dialogs = d
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		if !state.HasSelection() || state.SelectedIndex >= len(state.Current.Entries)-1 {
			return state, nil
		}
		state.SelectedIndex++
		r.resync(state, "move-down")
		return state, nil

	case NavigateUpAction:
		if !state.HasSelection() || state.SelectedIndex == 0 {
			return state, nil
		}
		state.SelectedIndex--
		r.resync(state, "move-up")
		return state, nil

	case JumpTopAction:
		if len(state.Current.Entries) == 0 {
			return state, nil
		}
		state.SelectedIndex = 0
		r.resync(state, "jump-top")
		return state, nil

	case JumpBottomAction:
		if len(state.Current.Entries) == 0 {
			return state, nil
		}
		state.SelectedIndex = len(state.Current.Entries) - 1
		r.resync(state, "jump-bottom")
		return state, nil

	case EnterDirectoryAction:
		file := state.CurrentFile()
		if file == nil || !file.IsDir() {
			return state, nil
		}
		r.changeDirectory(state, file.FullPath)
		r.resync(state, "descend")
		return state, nil

	case GoUpAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil
		}
		old := state.CurrentPath
		r.changeDirectory(state, parent)
		state.focusPath = old
		r.resync(state, "ascend")
		return state, nil

	case GoHomeAction:
		home, err := r.home()
		if err != nil {
			return state, err
		}
		r.changeDirectory(state, filepath.Clean(home))
		r.resync(state, "home")
		return state, nil

	// ===== VIEW =====

	case ToggleHiddenFilesAction:
		state.ShowHidden = !state.ShowHidden
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		r.resync(state, "toggle-hidden")
		return state, nil

	case RefreshDirectoryAction:
		r.resync(state, "refresh")
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state, nil

	// ===== MUTATIONS =====

	case CreateEntryAction:
		return state, r.promptCreate(state)

	case RenameEntryAction:
		return state, r.promptRename(state)

	case DeleteEntryAction:
		return state, r.confirmDelete(state)
	}

	return state, nil
}

func (r *StateReducer) changeDirectory(state *AppState, path string) {
	state.CurrentPath = path
	state.SelectedIndex = 0
	state.ScrollOffset = 0
}

// Resync recomputes every derived view from CurrentPath, SelectedIndex and
// ShowHidden.
func (r *StateReducer) Resync(state *AppState) {
	r.resync(state, "resync")
}

func (r *StateReducer) resync(state *AppState, cause string) {
	parent := filepath.Dir(state.CurrentPath)
	if parent == state.CurrentPath {
		state.Parent = Listing{}
	} else {
		state.Parent = r.snapshot(parent, state.ShowHidden)
	}

	state.Current = r.snapshot(state.CurrentPath, state.ShowHidden)
	if state.Current.Err != nil {
		r.log.WithError(state.Current.Err).WithField("path", state.CurrentPath).Warn("cannot list directory")
	}

	if state.focusPath != "" {
		state.SelectedIndex = indexOfPath(state.Current.Entries, state.focusPath)
		state.focusPath = ""
	}
	state.SelectedIndex = clampCursor(state.SelectedIndex, len(state.Current.Entries))
	state.updateScrollVisibility()

	if file := state.CurrentFile(); file != nil {
		state.Preview = r.preview(file.FullPath, state.ShowHidden)
	} else {
		state.Preview = preview.NoSelection()
	}

	dirs, files := fsutil.CountKinds(state.Current.Entries)
	state.Status = StatusSummary{Path: state.CurrentPath, Dirs: dirs, Files: files}

	r.log.WithFields(logrus.Fields{
		"action": cause,
		"path":   state.CurrentPath,
		"cursor": state.SelectedIndex,
	}).Debug("resync")
}

func (r *StateReducer) snapshot(path string, showHidden bool) Listing {
	entries, err := r.list(path, showHidden)
	if err != nil {
		return Listing{Path: path, Err: err}
	}
	return Listing{Path: path, Entries: entries}
}

func indexOfPath(entries []FileEntry, path string) int {
	for i, entry := range entries {
		if entry.FullPath == path {
			return i
		}
	}
	return 0
}

func clampCursor(idx, length int) int {
	if length == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
