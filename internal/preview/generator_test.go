package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	fsutil "github.com/kk-code-lab/trex/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(DefaultOptions())
	require.NoError(t, err)
	return g
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0o644))
	require.NoError(t, os.Chmod(path, 0o644))
}

func TestGenerateEmptyPathIsNoSelection(t *testing.T) {
	p := newTestGenerator(t).Generate("", true)
	assert.Equal(t, KindNoSelection, p.Kind)
	assert.Nil(t, p.Header)
}

func TestGenerateMissingPath(t *testing.T) {
	p := newTestGenerator(t).Generate(filepath.Join(t.TempDir(), "ghost.txt"), true)
	assert.Equal(t, KindMissing, p.Kind)
	assert.Nil(t, p.Header)
}

func TestGenerateTextIsCapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString(strings.Repeat("é", 300))
		b.WriteByte('\n')
	}
	writeFile(t, path, []byte(b.String()))

	p := newTestGenerator(t).Generate(path, true)
	require.Equal(t, KindText, p.Kind)
	require.Len(t, p.Lines, 80)
	for _, line := range p.Lines {
		assert.Equal(t, 200, utf8.RuneCountInString(line))
	}

	require.NotNil(t, p.Header)
	assert.Equal(t, "-rw-r--r--", p.Header.Permissions)
	assert.Equal(t, int64(b.Len()), p.Header.Size)
	assert.False(t, p.Header.Modified.IsZero())
}

func TestGenerateTextSplitsAllLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.txt")
	writeFile(t, path, []byte("one\r\ntwo\rthree\nfour\n"))

	p := newTestGenerator(t).Generate(path, true)
	require.Equal(t, KindText, p.Kind)
	assert.Equal(t, []string{"one", "two", "three", "four"}, p.Lines)
}

func TestGenerateTextReplacesInvalidSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	writeFile(t, path, []byte("caf\xe9\n"))

	p := newTestGenerator(t).Generate(path, true)
	require.Equal(t, KindText, p.Kind)
	assert.Equal(t, []string{"caf�"}, p.Lines)
}

func TestGenerateEmptyFileIsTextWithoutLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	writeFile(t, path, nil)

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindText, p.Kind)
	assert.Empty(t, p.Lines)
}

func TestGenerateBinaryExtensionSkipsRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.JPG")
	writeFile(t, path, []byte{0xff, 0xfe, 0x00, 0x81})

	orig := readHead
	t.Cleanup(func() { readHead = orig })
	readHead = func(string, int64) ([]byte, error) {
		t.Fatal("content must not be read for binary extensions")
		return nil, nil
	}

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindBinary, p.Kind)
	assert.Equal(t, ".jpg", p.Extension)
	assert.NotNil(t, p.Header)
}

func TestGenerateBinaryExtensionMasksDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.zip")
	writeFile(t, path, []byte("plain text inside"))

	orig := readHead
	t.Cleanup(func() { readHead = orig })
	readHead = func(string, int64) ([]byte, error) {
		return nil, errors.New("decode would fail")
	}

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindBinary, p.Kind)
	assert.NoError(t, p.Err)
}

func TestGenerateBinaryPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.lock")
	writeFile(t, path, []byte("[[package]]\n"))

	g, err := NewGenerator(Options{BinaryPatterns: []string{"*.lock"}})
	require.NoError(t, err)
	p := g.Generate(path, true)
	assert.Equal(t, KindBinary, p.Kind)
	assert.Equal(t, ".lock", p.Extension)

	_, err = NewGenerator(Options{BinaryPatterns: []string{"[unterminated"}})
	assert.Error(t, err)
}

func TestGenerateNULSniffing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.data")
	content := append([]byte("header"), 0x00, 0x01, 0x02)
	writeFile(t, path, content)

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindBinary, p.Kind)
	assert.Empty(t, p.Extension)
	assert.NotEmpty(t, p.MIME)
}

func TestGenerateNULBeyondSniffWindowStillText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.txt")
	content := append([]byte(strings.Repeat("a", 2000)), 0x00)
	writeFile(t, path, content)

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindText, p.Kind)
}

func TestGenerateTooLargeReportsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.log")
	writeFile(t, path, []byte(strings.Repeat("x", 70000)))

	orig := readHead
	t.Cleanup(func() { readHead = orig })
	readHead = func(string, int64) ([]byte, error) {
		t.Fatal("oversized files must not be read")
		return nil, nil
	}

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindTooLarge, p.Kind)
	assert.Equal(t, int64(70000), p.Size)
}

func TestGenerateUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.txt")
	writeFile(t, path, []byte("hidden"))

	orig := readHead
	t.Cleanup(func() { readHead = orig })
	readHead = func(p string, _ int64) ([]byte, error) {
		return nil, &fsutil.OpError{Op: "read", Path: p, Kind: fsutil.PermissionDenied, Err: os.ErrPermission}
	}

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindUnreadable, p.Kind)
	assert.Error(t, p.Err)
}

func TestGenerateDirectoryDigest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 60; i++ {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("f%02d.txt", i)), nil)
	}
	writeFile(t, filepath.Join(dir, ".dot"), nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	g := newTestGenerator(t)

	p := g.Generate(dir, false)
	require.Equal(t, KindDirectory, p.Kind)
	require.Len(t, p.Entries, 50)
	assert.Equal(t, "sub", p.Entries[0].Name)
	assert.Equal(t, 11, p.Remaining)
	require.NotNil(t, p.Header)
	assert.True(t, strings.HasPrefix(p.Header.Permissions, "d"))

	p = g.Generate(dir, true)
	assert.Equal(t, 12, p.Remaining)
}

func TestGenerateDirectoryWithinCap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "only.txt"), nil)

	p := newTestGenerator(t).Generate(dir, true)
	require.Equal(t, KindDirectory, p.Kind)
	assert.Len(t, p.Entries, 1)
	assert.Zero(t, p.Remaining)
}

func TestGenerateDirectoryDenied(t *testing.T) {
	dir := t.TempDir()

	orig := listDir
	t.Cleanup(func() { listDir = orig })
	listDir = func(path string, _ bool) ([]fsutil.Entry, error) {
		return nil, &fsutil.OpError{Op: "list", Path: path, Kind: fsutil.PermissionDenied, Err: os.ErrPermission}
	}

	p := newTestGenerator(t).Generate(dir, true)
	assert.Equal(t, KindDirectoryDenied, p.Kind)
	assert.NotNil(t, p.Header)
}

func TestGenerateHeaderMissingWhenLstatFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racy.txt")
	writeFile(t, path, []byte("ok"))

	orig := statInfo
	t.Cleanup(func() { statInfo = orig })
	statInfo = func(p string) (*fsutil.Metadata, error) {
		return nil, &fsutil.OpError{Op: "stat", Path: p, Kind: fsutil.NotFound, Err: os.ErrNotExist}
	}

	p := newTestGenerator(t).Generate(path, true)
	assert.Equal(t, KindText, p.Kind)
	assert.Nil(t, p.Header)
	assert.Equal(t, []string{"ok"}, p.Lines)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a", want: []string{"a"}},
		{in: "a\n", want: []string{"a"}},
		{in: "a\n\nb", want: []string{"a", "", "b"}},
		{in: "\r\n", want: []string{""}},
		{in: "a\r\r\nb", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitLines(tt.in), "input %q", tt.in)
	}
}

func TestMustNewGeneratorPanicsOnBadPattern(t *testing.T) {
	assert.NotPanics(t, func() { MustNewGenerator(DefaultOptions()) })

	opts := DefaultOptions()
	opts.BinaryPatterns = []string{"[unclosed"}
	assert.Panics(t, func() { MustNewGenerator(opts) })
}
