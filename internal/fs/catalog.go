package fs

import (
	"os"
	"path/filepath"
	"sort"
)

var (
	osReadDir = os.ReadDir
	osLstat   = os.Lstat
	osStat    = os.Stat
)

// List returns the entries of dir, dot-names removed unless showHidden is set,
// directories first and then case-insensitively by name.
//
// A failure to read dir itself is returned as an *OpError. Entries whose
// metadata cannot be read (including ones that vanish mid-listing) are kept
// with nil Meta.
func List(dir string, showHidden bool) ([]Entry, error) {
	dirEntries, err := osReadDir(dir)
	if err != nil {
		return nil, wrapError("list", dir, err)
	}

	owners := newOwnerResolver()
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && IsHidden(name) {
			continue
		}
		entries = append(entries, buildEntry(dir, name, de.Type(), owners))
	}

	SortEntries(entries)
	return entries, nil
}

func buildEntry(dir, name string, typ os.FileMode, owners *ownerResolver) Entry {
	fullPath := filepath.Join(dir, name)
	entry := Entry{
		Name:     name,
		FullPath: fullPath,
		Kind:     kindFromMode(typ),
	}

	info, err := osLstat(fullPath)
	if err != nil {
		return entry
	}

	entry.Kind = kindFromMode(info.Mode())
	owner, group := owners.resolve(info)
	entry.Meta = &Metadata{
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
		Owner:    owner,
		Group:    group,
	}

	if entry.Kind == KindSymlink {
		if target, err := osStat(fullPath); err == nil {
			entry.LinksToDir = target.IsDir()
		}
	}
	return entry
}

func kindFromMode(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindRegular
	default:
		return KindOther
	}
}

// SortEntries orders entries in place: directories first, then by lowercase name.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		ki, kj := entries[i].sortKey(), entries[j].sortKey()
		if ki != kj {
			return ki < kj
		}
		return entries[i].Name < entries[j].Name
	})
}

// CountKinds returns how many entries are directories and how many are not.
func CountKinds(entries []Entry) (dirs, files int) {
	for _, entry := range entries {
		if entry.IsDir() {
			dirs++
		} else {
			files++
		}
	}
	return dirs, files
}

// StatInfo returns lstat metadata for path, owner and group resolved.
func StatInfo(path string) (*Metadata, error) {
	info, err := osLstat(path)
	if err != nil {
		return nil, wrapError("stat", path, err)
	}
	owner, group := newOwnerResolver().resolve(info)
	return &Metadata{
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
		Owner:    owner,
		Group:    group,
	}, nil
}
