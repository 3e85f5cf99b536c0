package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/trex/internal/preview"
	statepkg "github.com/kk-code-lab/trex/internal/state"
)

func (r *Renderer) drawPreviewPane(state *statepkg.AppState, layout layoutMetrics) {
	p := state.Preview
	if p == nil {
		return
	}
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)
	startX, width := layout.previewStart, layout.previewWidth
	y := layout.listStartY

	if header := formatPreviewHeader(p.Header); header != "" {
		style := base.Foreground(r.theme.PreviewHeaderFg)
		r.drawTextLine(startX, y, width, " "+r.truncateTextToWidth(header, width-1), style)
		y += 2
	}
	if y >= layout.bottomLimit {
		return
	}

	switch p.Kind {
	case preview.KindDirectory:
		r.drawDirectoryPreview(p, startX, width, y, layout.bottomLimit)
	case preview.KindText:
		r.drawTextPreview(p, startX, width, y, layout.bottomLimit)
	default:
		r.drawPlaceholder(startX, y, width, previewMessage(p))
	}
}

// previewMessage is the one-line body of previews that carry no content.
func previewMessage(p *preview.Preview) string {
	switch p.Kind {
	case preview.KindNoSelection:
		return "No selection"
	case preview.KindMissing:
		return "Path does not exist"
	case preview.KindDirectoryDenied:
		return "Permission denied"
	case preview.KindBinary:
		switch {
		case p.Extension != "":
			return fmt.Sprintf("Binary file (%s)", p.Extension)
		case p.MIME != "":
			return fmt.Sprintf("Binary file (%s)", p.MIME)
		default:
			return "Binary file"
		}
	case preview.KindTooLarge:
		return fmt.Sprintf("File too large to preview (%s)", formatSize(p.Size))
	case preview.KindUnreadable:
		return "Cannot read file"
	case preview.KindSpecial:
		return fmt.Sprintf("Special file (%s)", p.Special)
	case preview.KindDirectory:
		if len(p.Entries) == 0 {
			return "Empty directory"
		}
	}
	return ""
}

func (r *Renderer) drawDirectoryPreview(p *preview.Preview, startX, width, y, bottom int) {
	if len(p.Entries) == 0 {
		r.drawPlaceholder(startX, y, width, previewMessage(p))
		return
	}
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)
	for _, entry := range p.Entries {
		if y >= bottom {
			return
		}
		name := r.truncateTextToWidth(decoratedName(entry), width-1)
		r.drawTextLine(startX, y, width, " "+name, r.entryStyle(entry, base))
		y++
	}
	if p.Remaining > 0 && y < bottom {
		r.drawPlaceholder(startX, y, width, fmt.Sprintf("... and %d more", p.Remaining))
	}
}

func (r *Renderer) drawTextPreview(p *preview.Preview, startX, width, y, bottom int) {
	base := tcell.StyleDefault.Foreground(r.theme.Foreground)
	for _, segments := range r.highlight.lines(r, p, base) {
		if y >= bottom {
			return
		}
		r.drawSegments(startX+1, y, width-1, segments)
		y++
	}
}

// drawSegments draws styled segments left to right, clipped to maxWidth.
func (r *Renderer) drawSegments(startX, y, maxWidth int, segments []styledSegment) {
	x := startX
	limit := startX + maxWidth
	for _, seg := range segments {
		if x >= limit {
			return
		}
		x = r.drawTextLine(x, y, limit-x, seg.text, seg.style)
	}
}
