package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Foreground      tcell.Color
	HiddenFg        tcell.Color
	DirectoryFg     tcell.Color
	SymlinkFg       tcell.Color
	ExecutableFg    tcell.Color
	SelectionBg     tcell.Color
	SelectionFg     tcell.Color
	ParentActiveBg  tcell.Color
	ParentActiveFg  tcell.Color
	MetaFg          tcell.Color
	HeaderBg        tcell.Color
	HeaderFg        tcell.Color
	FooterBg        tcell.Color
	FooterFg        tcell.Color
	ErrorFg         tcell.Color
	NoticeFg        tcell.Color
	PlaceholderFg   tcell.Color
	PreviewHeaderFg tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Foreground:      tcell.ColorDefault,
		HiddenFg:        tcell.ColorLightSlateGray,
		DirectoryFg:     tcell.Color33,
		SymlinkFg:       tcell.Color51,
		ExecutableFg:    tcell.Color70,
		SelectionBg:     tcell.Color33,
		SelectionFg:     tcell.ColorWhite,
		ParentActiveBg:  tcell.Color238,
		ParentActiveFg:  tcell.ColorWhite,
		MetaFg:          tcell.Color245,
		HeaderBg:        tcell.Color236,
		HeaderFg:        tcell.ColorWhite,
		FooterBg:        tcell.Color236,
		FooterFg:        tcell.Color250,
		ErrorFg:         tcell.ColorRed,
		NoticeFg:        tcell.ColorGreen,
		PlaceholderFg:   tcell.Color245,
		PreviewHeaderFg: tcell.Color180,
	}
}
