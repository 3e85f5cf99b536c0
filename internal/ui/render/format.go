package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	fsutil "github.com/kk-code-lab/trex/internal/fs"
	"github.com/kk-code-lab/trex/internal/preview"
	textutil "github.com/kk-code-lab/trex/internal/textutil"
)

const (
	listTimeLayout   = "2006-01-02 15:04"
	headerTimeLayout = "2006-01-02 15:04:05"
	unknownField     = "?"
)

func formatSize(size int64) string {
	if size < 0 {
		return unknownField
	}
	return humanize.IBytes(uint64(size))
}

// decoratedName appends the type marker: "/" for directories, "@" for
// symlinks and "*" for executables.
func decoratedName(entry fsutil.Entry) string {
	name := textutil.SanitizeTerminalText(entry.DisplayName())
	switch {
	case entry.Kind == fsutil.KindDirectory:
		return name + "/"
	case entry.IsSymlink():
		return name + "@"
	case entry.Meta.Executable():
		return name + "*"
	default:
		return name
	}
}

// entryMeta renders the right-hand size and mtime columns of a listing row.
func entryMeta(entry fsutil.Entry) string {
	if !entry.Known() {
		return fmt.Sprintf("%9s  %16s", unknownField, unknownField)
	}
	return fmt.Sprintf("%9s  %16s", formatSize(entry.Meta.Size), entry.Meta.Modified.Format(listTimeLayout))
}

func formatPreviewHeader(h *preview.Header) string {
	if h == nil {
		return ""
	}
	owner := h.Owner
	if owner == "" {
		owner = unknownField
	}
	group := h.Group
	if group == "" {
		group = unknownField
	}
	return fmt.Sprintf("%s  %s:%s  %s  %s", h.Permissions, owner, group, formatSize(h.Size), formatTime(h.Modified))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return unknownField
	}
	return t.Format(headerTimeLayout)
}

func formatStatusSummary(path string, dirs, files int) string {
	return fmt.Sprintf(" %s  [%d dirs, %d files]", path, dirs, files)
}

func listingErrorText(err error) string {
	if fsutil.KindOf(err) == fsutil.PermissionDenied {
		return "Permission denied"
	}
	return fmt.Sprintf("Cannot read directory: %v", err)
}
