package preview

const (
	DefaultMaxBytes      int64 = 64 * 1024
	DefaultSniffBytes          = 1024
	DefaultMaxLines            = 80
	DefaultMaxLineRunes        = 200
	DefaultMaxDirEntries       = 50
)

// Options bounds the work done for a single preview.
type Options struct {
	MaxBytes      int64
	SniffBytes    int
	MaxLines      int
	MaxLineRunes  int
	MaxDirEntries int
	// BinaryPatterns are glob patterns matched against the base name; a match
	// is handled like a binary extension.
	BinaryPatterns []string
}

// DefaultOptions returns the standard limits.
func DefaultOptions() Options {
	return Options{
		MaxBytes:      DefaultMaxBytes,
		SniffBytes:    DefaultSniffBytes,
		MaxLines:      DefaultMaxLines,
		MaxLineRunes:  DefaultMaxLineRunes,
		MaxDirEntries: DefaultMaxDirEntries,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.SniffBytes <= 0 {
		o.SniffBytes = DefaultSniffBytes
	}
	if o.MaxLines <= 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.MaxLineRunes <= 0 {
		o.MaxLineRunes = DefaultMaxLineRunes
	}
	if o.MaxDirEntries <= 0 {
		o.MaxDirEntries = DefaultMaxDirEntries
	}
	return o
}
