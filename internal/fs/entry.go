package fs

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies an entry by what lstat reports for it.
type Kind int

const (
	KindOther Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Metadata is the stat snapshot of an entry taken during one listing pass.
type Metadata struct {
	Size     int64
	Modified time.Time
	Mode     os.FileMode
	Owner    string
	Group    string
}

// Executable reports whether any execute bit is set.
func (m *Metadata) Executable() bool {
	return m != nil && m.Mode&0o111 != 0
}

// Permissions renders the mode as a ten character string such as "drwxr-xr-x".
func (m *Metadata) Permissions() string {
	if m == nil {
		return ""
	}
	return PermissionString(m.Mode)
}

// Entry represents a single file or directory on disk.
// Meta is nil when the entry's metadata could not be read.
type Entry struct {
	Name       string
	FullPath   string
	Kind       Kind
	LinksToDir bool
	Meta       *Metadata
}

// IsDir reports whether the entry can be descended into. Symlinks count when
// their target is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory || (e.Kind == KindSymlink && e.LinksToDir)
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}

// Known reports whether metadata was captured for the entry.
func (e Entry) Known() bool {
	return e.Meta != nil
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// DisplayName returns the NFC form of the name for rendering.
func (e Entry) DisplayName() string {
	return norm.NFC.String(e.Name)
}

func (e Entry) sortKey() string {
	return strings.ToLower(norm.NFC.String(e.Name))
}

// IsHidden reports whether a name starts with a dot.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// FilterHidden returns entries without dot-names. The input is not modified.
func FilterHidden(entries []Entry) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsHidden() {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
