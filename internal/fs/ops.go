package fs

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	osMkdir     = os.Mkdir
	osRename    = os.Rename
	osRemove    = os.Remove
	osRemoveAll = os.RemoveAll
	osOpenFile  = os.OpenFile
)

// ValidateName rejects names that are empty or would resolve outside the
// directory they are created in.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return &OpError{Op: "validate", Path: name, Kind: IOFailure, Err: ErrInvalidName}
	}
	return nil
}

// CreateFile creates an empty regular file. An existing file, or a symlink
// resolving to one, is left untouched and reported through existed.
func CreateFile(path string) (existed bool, err error) {
	if info, statErr := osStat(path); statErr == nil {
		if info.Mode().IsRegular() {
			return true, nil
		}
		return false, &OpError{Op: "create", Path: path, Kind: AlreadyExists, Err: os.ErrExist}
	}

	f, err := osOpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, wrapError("create", path, err)
	}
	if err := f.Close(); err != nil {
		return false, wrapError("create", path, err)
	}
	return false, nil
}

// CreateDir creates a single directory. An existing directory is reported
// through existed; anything else at path is an AlreadyExists failure.
func CreateDir(path string) (existed bool, err error) {
	if info, statErr := osStat(path); statErr == nil {
		if info.IsDir() {
			return true, nil
		}
		return false, &OpError{Op: "mkdir", Path: path, Kind: AlreadyExists, Err: os.ErrExist}
	}

	if err := osMkdir(path, 0o755); err != nil {
		return false, wrapError("mkdir", path, err)
	}
	return false, nil
}

// Rename moves oldPath to newPath, refusing to replace anything already at newPath.
func Rename(oldPath, newPath string) error {
	if _, err := osLstat(newPath); err == nil {
		return &OpError{Op: "rename", Path: newPath, Kind: AlreadyExists, Err: os.ErrExist}
	}
	if err := osRename(oldPath, newPath); err != nil {
		return wrapError("rename", oldPath, err)
	}
	return nil
}

// Remove deletes entry. Real directories are removed recursively; symlinks
// are removed without touching their target.
func Remove(entry Entry) error {
	if _, err := osLstat(entry.FullPath); err != nil {
		return wrapError("remove", entry.FullPath, err)
	}
	if entry.Kind == KindDirectory {
		if err := osRemoveAll(entry.FullPath); err != nil {
			return wrapError("remove", entry.FullPath, err)
		}
		return nil
	}
	if err := osRemove(entry.FullPath); err != nil {
		return wrapError("remove", entry.FullPath, err)
	}
	return nil
}
