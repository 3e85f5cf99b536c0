package render

type layoutMetrics struct {
	parentStart   int
	parentWidth   int
	currentStart  int
	currentWidth  int
	previewStart  int
	previewWidth  int
	listStartY    int
	bottomLimit   int // first row below the panes
	separatorCols []int
}

const (
	minParentTerminalWidth  = 40
	minPreviewTerminalWidth = 24
	paneGap                 = 1
)

// computeLayout splits the width 1:2:2 between parent, current and preview
// panes. Narrow terminals drop the parent pane first and then the preview.
func computeLayout(w, h int) layoutMetrics {
	if w < 0 {
		w = 0
	}
	m := layoutMetrics{listStartY: 1, bottomLimit: h - 2}
	if m.bottomLimit < m.listStartY {
		m.bottomLimit = m.listStartY
	}

	switch {
	case w >= minParentTerminalWidth:
		usable := w - 2*paneGap
		m.parentWidth = usable / 5
		m.currentWidth = (usable - m.parentWidth) / 2
		m.previewWidth = usable - m.parentWidth - m.currentWidth
		m.currentStart = m.parentWidth + paneGap
		m.previewStart = m.currentStart + m.currentWidth + paneGap
		m.separatorCols = []int{m.parentWidth, m.previewStart - paneGap}
	case w >= minPreviewTerminalWidth:
		usable := w - paneGap
		m.currentWidth = usable / 2
		m.previewWidth = usable - m.currentWidth
		m.previewStart = m.currentWidth + paneGap
		m.separatorCols = []int{m.currentWidth}
	default:
		m.currentWidth = w
	}
	return m
}
