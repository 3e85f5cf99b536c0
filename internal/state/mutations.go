package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/trex/internal/fs"
	"github.com/sirupsen/logrus"
)

const (
	CreatePrompt = "Create (end with / for dir):"
	RenamePrompt = "Rename:"
)

// Dialogs is the UI collaborator mutations ask for input. Prompt returns the
// trimmed text and false when the user cancelled.
type Dialogs interface {
	Prompt(title, initial string) (string, bool)
	Confirm(message string) bool
}

var (
	createFile  = fsutil.CreateFile
	createDir   = fsutil.CreateDir
	renamePath  = fsutil.Rename
	removeEntry = fsutil.Remove
)

func (r *StateReducer) promptCreate(state *AppState) error {
	if r.dialogs == nil {
		return nil
	}
	name, ok := r.dialogs.Prompt(CreatePrompt, "")
	if !ok {
		return nil
	}
	return r.Create(state, name)
}

func (r *StateReducer) promptRename(state *AppState) error {
	file := state.CurrentFile()
	if file == nil || r.dialogs == nil {
		return nil
	}
	name, ok := r.dialogs.Prompt(RenamePrompt, file.Name)
	if !ok {
		return nil
	}
	return r.Rename(state, name)
}

func (r *StateReducer) confirmDelete(state *AppState) error {
	file := state.CurrentFile()
	if file == nil || r.dialogs == nil {
		return nil
	}
	if !r.dialogs.Confirm(DeleteMessage(file.Name)) {
		return nil
	}
	return r.Delete(state)
}

// DeleteMessage is the confirmation text for deleting name.
func DeleteMessage(name string) string {
	return fmt.Sprintf("Delete '%s'?", name)
}

// Create makes an empty file, or a directory when name ends with a path
// separator, inside the current directory. Blank names and entries that
// already exist leave the state untouched.
func (r *StateReducer) Create(state *AppState, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	wantDir := isSeparator(name[len(name)-1])
	if wantDir {
		name = strings.TrimRightFunc(name, func(c rune) bool { return c < 0x80 && isSeparator(byte(c)) })
		if name == "" {
			return nil
		}
	}
	if err := fsutil.ValidateName(name); err != nil {
		return err
	}

	target := filepath.Join(state.CurrentPath, name)
	var existed bool
	var err error
	if wantDir {
		existed, err = createDir(target)
	} else {
		existed, err = createFile(target)
	}
	if err != nil {
		r.logFailure("create", target, err)
		return err
	}
	if existed {
		return nil
	}

	r.log.WithFields(logrus.Fields{"op": "create", "path": target}).Info("mutation applied")
	r.resync(state, "create")
	return nil
}

// Rename moves the selected entry to newName within the current directory.
func (r *StateReducer) Rename(state *AppState, newName string) error {
	file := state.CurrentFile()
	if file == nil {
		return nil
	}
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == file.Name {
		return nil
	}
	if err := fsutil.ValidateName(newName); err != nil {
		return err
	}

	target := filepath.Join(state.CurrentPath, newName)
	if err := renamePath(file.FullPath, target); err != nil {
		r.logFailure("rename", file.FullPath, err)
		return err
	}

	r.log.WithFields(logrus.Fields{"op": "rename", "path": file.FullPath, "to": target}).Info("mutation applied")
	r.resync(state, "rename")
	return nil
}

// Delete removes the selected entry. Callers obtain confirmation first.
func (r *StateReducer) Delete(state *AppState) error {
	file := state.CurrentFile()
	if file == nil {
		return nil
	}
	target := *file
	if err := removeEntry(target); err != nil {
		r.logFailure("delete", target.FullPath, err)
		return err
	}

	r.log.WithFields(logrus.Fields{"op": "delete", "path": target.FullPath}).Info("mutation applied")
	r.resync(state, "delete")
	return nil
}

func (r *StateReducer) logFailure(op, path string, err error) {
	r.log.WithError(err).WithFields(logrus.Fields{
		"op":   op,
		"path": path,
		"kind": fsutil.KindOf(err).String(),
	}).Warn("mutation failed")
}

func isSeparator(c byte) bool {
	return c == '/' || os.IsPathSeparator(c)
}
