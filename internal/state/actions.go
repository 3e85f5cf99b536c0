package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type GoHomeAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}
type RefreshDirectoryAction struct{}
type YankPathAction struct{}
type OpenEditorAction struct{}

// ===== MUTATION ACTIONS =====

type CreateEntryAction struct{}
type RenameEntryAction struct{}
type DeleteEntryAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}          // q - return to original directory
type QuitAndChangeAction struct{} // x - change to current directory
type SuspendAction struct{}       // Ctrl+Z
