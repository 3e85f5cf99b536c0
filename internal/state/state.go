package state

import (
	fsutil "github.com/kk-code-lab/trex/internal/fs"
	"github.com/kk-code-lab/trex/internal/preview"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Listing is one directory snapshot taken during resync. Err is set when the
// directory itself could not be read; Entries is empty in that case.
type Listing struct {
	Path    string
	Entries []FileEntry
	Err     error
}

// StatusSummary is recomputed from the current listing on every resync.
type StatusSummary struct {
	Path  string
	Dirs  int
	Files int
}

// AppState is the single source of truth
type AppState struct {
	// Navigation
	CurrentPath   string
	SelectedIndex int // -1 when the current listing is empty
	ShowHidden    bool

	// Derived views, written only by resync
	Parent  Listing // zero value at the filesystem root
	Current Listing
	Preview *preview.Preview
	Status  StatusSummary

	// Viewport
	ScrollOffset int
	ScreenWidth  int
	ScreenHeight int

	// Status line
	ClipboardAvailable bool
	EditorAvailable    bool
	Notice             string

	// Error state
	LastError error

	// focusPath selects an entry by path on the next resync.
	focusPath string
}

// NewAppState returns the startup state for path. Derived views are empty
// until the first resync.
func NewAppState(path string, showHidden bool) *AppState {
	return &AppState{
		CurrentPath:   path,
		SelectedIndex: 0,
		ShowHidden:    showHidden,
	}
}

// Files returns the entries of the current listing.
func (s *AppState) Files() []FileEntry {
	return s.Current.Entries
}

// HasSelection reports whether the cursor points at an entry.
func (s *AppState) HasSelection() bool {
	return s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Current.Entries)
}

// CurrentFile returns the selected entry or nil.
func (s *AppState) CurrentFile() *FileEntry {
	if !s.HasSelection() {
		return nil
	}
	return &s.Current.Entries[s.SelectedIndex]
}

// CurrentFilePath returns the selected entry's path, or the current directory
// when nothing is selected.
func (s *AppState) CurrentFilePath() string {
	if file := s.CurrentFile(); file != nil {
		return file.FullPath
	}
	return s.CurrentPath
}

// ListRows is the number of listing rows that fit on screen.
func (s *AppState) ListRows() int {
	rows := s.ScreenHeight - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *AppState) updateScrollVisibility() {
	idx := s.SelectedIndex
	visibleLines := s.ListRows()

	if idx < 0 {
		s.ScrollOffset = 0
		return
	}

	if idx < s.ScrollOffset {
		s.ScrollOffset = idx
	} else if idx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = idx - visibleLines + 1
	}

	maxOffset := len(s.Current.Entries) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
