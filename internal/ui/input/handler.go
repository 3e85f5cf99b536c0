package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/trex/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for availability checks
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference used to gate optional commands.
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// a quitting action was emitted.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
		return true

	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.JumpTopAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.JumpBottomAction{}
		return true

	case tcell.KeyRune:
		return ih.processRune(ev.Rune())

	default:
		return true
	}
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case 'x':
		ih.actionChan <- statepkg.QuitAndChangeAction{}
		return false

	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'l':
		ih.actionChan <- statepkg.EnterDirectoryAction{}
	case 'h':
		ih.actionChan <- statepkg.GoUpAction{}
	case 'g':
		ih.actionChan <- statepkg.JumpTopAction{}
	case 'G':
		ih.actionChan <- statepkg.JumpBottomAction{}
	case '~':
		ih.actionChan <- statepkg.GoHomeAction{}
	case '.':
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
	case 'R':
		ih.actionChan <- statepkg.RefreshDirectoryAction{}

	case 'a':
		ih.actionChan <- statepkg.CreateEntryAction{}
	case 'r':
		ih.actionChan <- statepkg.RenameEntryAction{}
	case 'D':
		ih.actionChan <- statepkg.DeleteEntryAction{}

	case 'y':
		if ih.state == nil || ih.state.ClipboardAvailable {
			ih.actionChan <- statepkg.YankPathAction{}
		}
	case 'e':
		if ih.state != nil && ih.state.EditorAvailable {
			ih.actionChan <- statepkg.OpenEditorAction{}
		}
	}
	return true
}
