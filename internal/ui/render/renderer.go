package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/trex/internal/fs"
	statepkg "github.com/kk-code-lab/trex/internal/state"
	textutil "github.com/kk-code-lab/trex/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	highlight        *highlighter
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     GetColorTheme(),
		highlight: newHighlighter(true, defaultHighlightStyle),
	}
}

// SetHighlighting configures syntax coloring of text previews.
func (r *Renderer) SetHighlighting(enabled bool, style string) {
	r.highlight = newHighlighter(enabled, style)
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	if state == nil {
		return
	}
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := computeLayout(w, h)

	r.drawHeader(state, w)
	if layout.parentWidth > 0 {
		r.drawParentPane(state, layout)
	}
	r.drawCurrentPane(state, layout)
	if layout.previewWidth > 0 {
		r.drawPreviewPane(state, layout)
	}
	r.drawSeparators(layout)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the program name and current path.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, "trex ", style.Bold(true))
	if endX < w {
		path := r.truncateLeft(textutil.SanitizeTerminalText(state.CurrentPath), w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, path, style)
	}
	r.fillRow(endX, w, 0, style)
}

func (r *Renderer) drawSeparators(layout layoutMetrics) {
	style := tcell.StyleDefault.Foreground(r.theme.MetaFg)
	for _, x := range layout.separatorCols {
		for y := layout.listStartY; y < layout.bottomLimit; y++ {
			r.screen.SetContent(x, y, '│', nil, style)
		}
	}
}

// drawParentPane lists the parent directory with the current directory
// highlighted and kept near the middle of the pane.
func (r *Renderer) drawParentPane(state *statepkg.AppState, layout layoutMetrics) {
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)
	startX, width := layout.parentStart, layout.parentWidth
	y := layout.listStartY

	parent := state.Parent
	switch {
	case parent.Path == "":
		r.drawPlaceholder(startX, y, width, textutil.SanitizeTerminalText(state.CurrentPath))
		return
	case parent.Err != nil:
		r.drawPlaceholder(startX, y, width, listingErrorText(parent.Err))
		return
	}

	entries := parent.Entries
	maxRows := layout.bottomLimit - layout.listStartY
	currentIdx := -1
	for idx, entry := range entries {
		if entry.FullPath == state.CurrentPath {
			currentIdx = idx
			break
		}
	}

	startIdx := 0
	if len(entries) > maxRows && currentIdx >= 0 {
		startIdx = currentIdx - maxRows/2
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx > len(entries)-maxRows {
			startIdx = len(entries) - maxRows
		}
	}

	for i := startIdx; i < len(entries) && y < layout.bottomLimit; i++ {
		entry := entries[i]
		rowStyle := r.entryStyle(entry, base)
		if i == currentIdx {
			rowStyle = tcell.StyleDefault.Background(r.theme.ParentActiveBg).Foreground(r.theme.ParentActiveFg)
		}
		name := r.truncateTextToWidth(decoratedName(entry), width-1)
		endX := r.drawTextLine(startX, y, width, " "+name, rowStyle)
		r.fillRow(endX, startX+width, y, rowStyle)
		y++
	}
}

// drawCurrentPane lists the current directory from the scroll offset with
// the cursor row highlighted.
func (r *Renderer) drawCurrentPane(state *statepkg.AppState, layout layoutMetrics) {
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)
	startX, width := layout.currentStart, layout.currentWidth
	y := layout.listStartY

	if state.Current.Err != nil {
		r.drawPlaceholder(startX, y, width, listingErrorText(state.Current.Err))
		return
	}
	entries := state.Files()
	if len(entries) == 0 {
		r.drawPlaceholder(startX, y, width, "Empty directory")
		return
	}

	metaFits := width >= metaColumnWidth+minNameColumnWidth
	for i := state.ScrollOffset; i < len(entries) && y < layout.bottomLimit; i++ {
		entry := entries[i]
		selected := i == state.SelectedIndex

		rowStyle := r.entryStyle(entry, base)
		metaStyle := base.Foreground(r.theme.MetaFg)
		if selected {
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			metaStyle = rowStyle
		}

		nameWidth := width - 1
		if metaFits {
			nameWidth -= metaColumnWidth + 1
		}
		name := r.truncateTextToWidth(decoratedName(entry), nameWidth)
		endX := r.drawTextLine(startX, y, width, " "+name, rowStyle)
		r.fillRow(endX, startX+width, y, rowStyle)

		if metaFits {
			meta := entryMeta(entry)
			metaX := startX + width - 1 - r.measureTextWidth(meta)
			r.drawTextLine(metaX, y, startX+width-metaX, meta, metaStyle)
		}
		y++
	}
}

const (
	metaColumnWidth    = 27
	minNameColumnWidth = 12
)

func (r *Renderer) drawPlaceholder(startX, y, width int, text string) {
	style := tcell.StyleDefault.Foreground(r.theme.PlaceholderFg)
	r.drawTextLine(startX, y, width, " "+r.truncateTextToWidth(text, width-1), style)
}

func (r *Renderer) entryStyle(entry fsutil.Entry, base tcell.Style) tcell.Style {
	style := base
	switch {
	case entry.IsSymlink():
		style = base.Foreground(r.theme.SymlinkFg)
	case entry.IsDir():
		style = base.Foreground(r.theme.DirectoryFg).Bold(true)
	case entry.Meta.Executable():
		style = base.Foreground(r.theme.ExecutableFg)
	}
	if entry.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	return style
}

// drawStatusLine shows the status summary followed by the last error or
// notice.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)

	path := state.Status.Path
	if path == "" {
		path = state.CurrentPath
	}
	summary := formatStatusSummary(textutil.SanitizeTerminalText(path), state.Status.Dirs, state.Status.Files)
	endX := r.drawTextLine(0, y, w, summary, base)

	var message string
	style := base
	switch {
	case state.LastError != nil:
		message = state.LastError.Error()
		style = base.Foreground(r.theme.ErrorFg)
	case state.Notice != "":
		message = state.Notice
		style = base.Foreground(r.theme.NoticeFg)
	}
	if message != "" && endX+2 < w {
		message = r.truncateTextToWidth(textutil.SanitizeTerminalText(message), w-endX-2)
		endX = r.drawTextLine(endX+2, y, w-endX-2, message, style)
	}
	r.fillRow(endX, w, y, base)
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	help := r.truncateTextToWidth(buildFooterHelpText(state), w)
	endX := r.drawTextLine(0, y, w, help, style)
	r.fillRow(endX, w, y, style)
}
