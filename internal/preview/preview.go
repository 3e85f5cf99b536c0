// Package preview builds the right-pane description of the selected path.
package preview

import (
	"time"

	fsutil "github.com/kk-code-lab/trex/internal/fs"
)

// Kind identifies which variant a Preview carries.
type Kind int

const (
	KindNoSelection Kind = iota
	KindMissing
	KindDirectory
	KindDirectoryDenied
	KindText
	KindBinary
	KindTooLarge
	KindUnreadable
	KindSpecial
)

// Header is the metadata line shown above every preview of an existing path.
type Header struct {
	Permissions string
	Owner       string
	Group       string
	Size        int64
	Modified    time.Time
}

// Preview is the rendered-independent description of one path.
type Preview struct {
	Path   string
	Kind   Kind
	Header *Header

	// KindDirectory
	Entries   []fsutil.Entry
	Remaining int

	// KindText
	Lines []string

	// KindBinary: Extension is set when the name alone decided it, MIME when
	// the content did.
	Extension string
	MIME      string

	// KindTooLarge
	Size int64

	// KindUnreadable
	Err error

	// KindSpecial: what the path is, e.g. "named pipe".
	Special string
}

// NoSelection is the preview shown when the current listing is empty.
func NoSelection() *Preview {
	return &Preview{Kind: KindNoSelection}
}
