package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
	fsutil "github.com/kk-code-lab/trex/internal/fs"
)

var (
	osStat   = os.Stat
	statInfo = fsutil.StatInfo
	listDir  = fsutil.List
	readHead = fsutil.ReadFileHead
)

// Generator produces previews under a fixed set of limits.
type Generator struct {
	opts     Options
	patterns []glob.Glob
}

// NewGenerator compiles the configured binary patterns.
func NewGenerator(opts Options) (*Generator, error) {
	opts = opts.withDefaults()
	g := &Generator{opts: opts}
	for _, pattern := range opts.BinaryPatterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid binary pattern %q: %w", pattern, err)
		}
		g.patterns = append(g.patterns, compiled)
	}
	return g, nil
}

// MustNewGenerator is like NewGenerator but panics if a pattern does not
// compile. It is meant for options built in code, not read from config.
func MustNewGenerator(opts Options) *Generator {
	g, err := NewGenerator(opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Options returns the effective limits.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate describes path. It never fails: every problem is folded into one
// of the sentinel kinds. No more than MaxBytes of file content is read.
func (g *Generator) Generate(path string, showHidden bool) *Preview {
	if path == "" {
		return NoSelection()
	}

	info, err := osStat(path)
	if err != nil {
		return &Preview{Path: path, Kind: KindMissing}
	}

	p := &Preview{Path: path}
	if meta, err := statInfo(path); err == nil {
		p.Header = &Header{
			Permissions: meta.Permissions(),
			Owner:       meta.Owner,
			Group:       meta.Group,
			Size:        meta.Size,
			Modified:    meta.Modified,
		}
	}

	switch mode := info.Mode(); {
	case mode.IsDir():
		g.fillDirectory(p, showHidden)
	case mode.IsRegular():
		g.fillFile(p, info.Size())
	default:
		// Pipes and devices are never opened: a read may block.
		p.Kind = KindSpecial
		p.Special = specialLabel(mode)
	}
	return p
}

func specialLabel(mode os.FileMode) string {
	switch {
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode&os.ModeCharDevice != 0:
		return "character device"
	case mode&os.ModeDevice != 0:
		return "block device"
	default:
		return "special file"
	}
}

func (g *Generator) fillDirectory(p *Preview, showHidden bool) {
	entries, err := listDir(p.Path, showHidden)
	if err != nil {
		if fsutil.KindOf(err) == fsutil.PermissionDenied {
			p.Kind = KindDirectoryDenied
			return
		}
		p.Kind = KindUnreadable
		p.Err = err
		return
	}

	p.Kind = KindDirectory
	if len(entries) > g.opts.MaxDirEntries {
		p.Remaining = len(entries) - g.opts.MaxDirEntries
		entries = entries[:g.opts.MaxDirEntries]
	}
	p.Entries = entries
}

func (g *Generator) fillFile(p *Preview, size int64) {
	name := filepath.Base(p.Path)
	if ext, ok := g.binaryByName(name); ok {
		p.Kind = KindBinary
		p.Extension = ext
		return
	}

	if size > g.opts.MaxBytes {
		p.Kind = KindTooLarge
		p.Size = size
		return
	}

	content, err := readHead(p.Path, g.opts.MaxBytes)
	if err != nil {
		p.Kind = KindUnreadable
		p.Err = err
		return
	}

	if fsutil.HasNUL(content, g.opts.SniffBytes) {
		p.Kind = KindBinary
		p.MIME = mimetype.Detect(content).String()
		return
	}

	text, err := fsutil.DecodeText(content)
	if err != nil {
		p.Kind = KindUnreadable
		p.Err = err
		return
	}

	p.Kind = KindText
	p.Lines = g.clip(splitLines(text))
}

func (g *Generator) binaryByName(name string) (string, bool) {
	if ext, ok := fsutil.BinaryExtension(name); ok {
		return ext, true
	}
	for _, pattern := range g.patterns {
		if pattern.Match(name) {
			return strings.ToLower(filepath.Ext(name)), true
		}
	}
	return "", false
}

func (g *Generator) clip(lines []string) []string {
	if len(lines) > g.opts.MaxLines {
		lines = lines[:g.opts.MaxLines]
	}
	for i, line := range lines {
		lines[i] = truncateRunes(line, g.opts.MaxLineRunes)
	}
	return lines
}

func truncateRunes(line string, limit int) string {
	if utf8.RuneCountInString(line) <= limit {
		return line
	}
	count := 0
	for idx := range line {
		if count == limit {
			return line[:idx]
		}
		count++
	}
	return line
}

// splitLines breaks text on \n, \r\n and \r. A trailing terminator does not
// start an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
