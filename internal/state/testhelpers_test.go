package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/trex/internal/fs"
)

// makeTree creates names under a fresh temp dir; a trailing slash makes a directory.
func makeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, strings.TrimSuffix(name, "/"))
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir parent of %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}

type countingLister struct {
	calls int
}

func (c *countingLister) list(path string, showHidden bool) ([]FileEntry, error) {
	c.calls++
	return fsutil.List(path, showHidden)
}

type fakeDialogs struct {
	reply     string
	replyOK   bool
	confirm   bool
	prompts   []string
	initials  []string
	questions []string
}

func (d *fakeDialogs) Prompt(title, initial string) (string, bool) {
	d.prompts = append(d.prompts, title)
	d.initials = append(d.initials, initial)
	return d.reply, d.replyOK
}

func (d *fakeDialogs) Confirm(message string) bool {
	d.questions = append(d.questions, message)
	return d.confirm
}

func loadState(t *testing.T, r *StateReducer, dir string) *AppState {
	t.Helper()
	state := NewAppState(dir, true)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	r.Resync(state)
	return state
}

func entryNames(entries []FileEntry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}

func assertNames(t *testing.T, got []FileEntry, want ...string) {
	t.Helper()
	names := entryNames(got)
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("expected entries %v, got %v", want, names)
	}
}

// assertConsistent checks the invariants every resync must leave behind.
func assertConsistent(t *testing.T, state *AppState) {
	t.Helper()
	n := len(state.Current.Entries)
	if n == 0 {
		if state.SelectedIndex != -1 {
			t.Fatalf("empty listing must have no selection, got cursor %d", state.SelectedIndex)
		}
		if state.Preview == nil || state.Preview.Path != "" {
			t.Fatalf("empty listing must show the no-selection preview, got %+v", state.Preview)
		}
	} else {
		if state.SelectedIndex < 0 || state.SelectedIndex >= n {
			t.Fatalf("cursor %d out of range for %d entries", state.SelectedIndex, n)
		}
		if state.Preview == nil || state.Preview.Path != state.Current.Entries[state.SelectedIndex].FullPath {
			t.Fatalf("preview does not follow the cursor: %+v", state.Preview)
		}
	}
	dirs, files := fsutil.CountKinds(state.Current.Entries)
	if state.Status.Dirs != dirs || state.Status.Files != files || state.Status.Path != state.CurrentPath {
		t.Fatalf("status %+v inconsistent with listing (%d dirs, %d files)", state.Status, dirs, files)
	}
	if state.Current.Path != state.CurrentPath {
		t.Fatalf("listing path %q differs from current %q", state.Current.Path, state.CurrentPath)
	}
}
