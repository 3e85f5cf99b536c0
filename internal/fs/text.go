package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var binaryExtensions = map[string]struct{}{
	".7z":      {},
	".a":       {},
	".avi":     {},
	".bin":     {},
	".bmp":     {},
	".bz2":     {},
	".dat":     {},
	".db":      {},
	".dll":     {},
	".doc":     {},
	".docx":    {},
	".dylib":   {},
	".eot":     {},
	".exe":     {},
	".flac":    {},
	".gif":     {},
	".gz":      {},
	".ico":     {},
	".img":     {},
	".iso":     {},
	".jpeg":    {},
	".jpg":     {},
	".mkv":     {},
	".mov":     {},
	".mp3":     {},
	".mp4":     {},
	".o":       {},
	".ogg":     {},
	".otf":     {},
	".pdf":     {},
	".png":     {},
	".ppt":     {},
	".pptx":    {},
	".pyc":     {},
	".pyo":     {},
	".rar":     {},
	".so":      {},
	".sqlite":  {},
	".sqlite3": {},
	".svg":     {},
	".tar":     {},
	".tif":     {},
	".tiff":    {},
	".ttf":     {},
	".wav":     {},
	".webm":    {},
	".webp":    {},
	".woff":    {},
	".woff2":   {},
	".xls":     {},
	".xlsx":    {},
	".xz":      {},
	".zip":     {},
	".zst":     {},
}

// BinaryExtension returns the lowercased extension of name and whether it
// belongs to the fixed set of formats that are never previewed as text.
func BinaryExtension(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	_, ok := binaryExtensions[ext]
	return ext, ok
}

// ReadFileHead returns up to limit bytes from the beginning of path.
func ReadFileHead(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError("read", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, wrapError("read", path, err)
	}
	return data, nil
}

// HasNUL reports whether a NUL byte occurs within the first window bytes.
func HasNUL(content []byte, window int) bool {
	if window >= 0 && len(content) > window {
		content = content[:window]
	}
	return bytes.IndexByte(content, 0x00) != -1
}

// DecodeText converts content to UTF-8, dropping a leading byte order mark and
// replacing invalid sequences with U+FFFD.
func DecodeText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
