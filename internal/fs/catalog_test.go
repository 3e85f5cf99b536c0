package fs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Name
	}
	return out
}

func TestListSortsDirectoriesFirstCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "A.txt"), "a")
	writeFile(t, filepath.Join(dir, ".hidden"), "h")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zeta"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Alpha"), 0o755))

	entries, err := List(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "zeta", ".hidden", "A.txt", "b.txt"}, names(entries))

	for _, entry := range entries {
		assert.True(t, entry.Known(), "metadata for %s", entry.Name)
		assert.Equal(t, filepath.Join(dir, entry.Name), entry.FullPath)
	}
}

func TestListHiddenFilterMatchesPostFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "x")
	writeFile(t, filepath.Join(dir, "main.go"), "package main")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))

	all, err := List(dir, true)
	require.NoError(t, err)
	visible, err := List(dir, false)
	require.NoError(t, err)

	assert.Equal(t, names(FilterHidden(all)), names(visible))
	assert.Equal(t, []string{"src", "main.go"}, names(visible))
}

func TestListEmptyDirectory(t *testing.T) {
	entries, err := List(t.TempDir(), true)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListReportsTopLevelFailure(t *testing.T) {
	orig := osReadDir
	t.Cleanup(func() { osReadDir = orig })
	osReadDir = func(name string) ([]os.DirEntry, error) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	entries, err := List("/locked", true)
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.Equal(t, PermissionDenied, KindOf(err))

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "/locked", opErr.Path)
}

func TestListMissingDirectoryIsNotFound(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "gone"), true)
	require.Error(t, err)
	assert.Equal(t, NotFound, KindOf(err))
}

func TestListKeepsEntryWhoseMetadataVanished(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "k")
	writeFile(t, filepath.Join(dir, "racy.txt"), "r")

	orig := osLstat
	t.Cleanup(func() { osLstat = orig })
	osLstat = func(name string) (os.FileInfo, error) {
		if filepath.Base(name) == "racy.txt" {
			return nil, &os.PathError{Op: "lstat", Path: name, Err: os.ErrNotExist}
		}
		return orig(name)
	}

	entries, err := List(dir, true)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "keep.txt", entries[0].Name)
	assert.True(t, entries[0].Known())
	assert.Equal(t, "racy.txt", entries[1].Name)
	assert.False(t, entries[1].Known())
	assert.Equal(t, KindRegular, entries[1].Kind)
}

func TestListSymlinkToDirectorySortsWithDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0o755))
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "broken")))

	entries, err := List(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"link", "real", "a.txt", "broken"}, names(entries))

	link := entries[0]
	assert.Equal(t, KindSymlink, link.Kind)
	assert.True(t, link.IsDir())
	assert.True(t, link.IsSymlink())

	broken := entries[3]
	assert.Equal(t, KindSymlink, broken.Kind)
	assert.False(t, broken.IsDir())
	assert.True(t, broken.Known())
}

func TestCountKinds(t *testing.T) {
	entries := []Entry{
		{Name: "d", Kind: KindDirectory},
		{Name: "l", Kind: KindSymlink, LinksToDir: true},
		{Name: "f", Kind: KindRegular},
		{Name: "x", Kind: KindOther},
	}
	dirs, files := CountKinds(entries)
	assert.Equal(t, 2, dirs)
	assert.Equal(t, 2, files)
}

func TestPermissionString(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want string
	}{
		{name: "regular", mode: 0o644, want: "-rw-r--r--"},
		{name: "directory", mode: os.ModeDir | 0o755, want: "drwxr-xr-x"},
		{name: "symlink", mode: os.ModeSymlink | 0o777, want: "lrwxrwxrwx"},
		{name: "executable", mode: 0o750, want: "-rwxr-x---"},
		{name: "nothing", mode: 0, want: "----------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionString(tt.mode))
		})
	}
}

func TestMetadataExecutable(t *testing.T) {
	assert.True(t, (&Metadata{Mode: 0o755}).Executable())
	assert.False(t, (&Metadata{Mode: 0o644}).Executable())
	var unknown *Metadata
	assert.False(t, unknown.Executable())
	assert.Equal(t, "", unknown.Permissions())
}
