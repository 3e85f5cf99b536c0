// Package dialog draws the modal prompt and confirmation boxes used by
// create, rename and delete.
package dialog

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/trex/internal/textutil"
	"github.com/mattn/go-runewidth"
)

const (
	minBoxWidth = 30
	maxBoxWidth = 72
	boxHeight   = 5
)

// Dialog reads keys from the application's event stream while it is open,
// so it never competes with the loop's PollEvent goroutine.
type Dialog struct {
	screen   tcell.Screen
	events   <-chan tcell.Event
	backdrop func()
	style    tcell.Style
	border   tcell.Style
}

// New creates a dialog drawing on screen. backdrop redraws the main view
// and may be nil.
func New(screen tcell.Screen, events <-chan tcell.Event, backdrop func()) *Dialog {
	return &Dialog{
		screen:   screen,
		events:   events,
		backdrop: backdrop,
		style:    tcell.StyleDefault.Background(tcell.Color236).Foreground(tcell.ColorWhite),
		border:   tcell.StyleDefault.Background(tcell.Color236).Foreground(tcell.Color33),
	}
}

// Prompt asks for a line of text. It returns the trimmed input and true on
// Enter, or false when the user pressed Escape.
func (d *Dialog) Prompt(title, initial string) (string, bool) {
	buf := []rune(initial)
	for {
		d.draw(title, string(buf)+"_")
		ev, ok := <-d.events
		if !ok {
			return "", false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return strings.TrimSpace(string(buf)), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyCtrlU:
				buf = buf[:0]
			case tcell.KeyRune:
				buf = append(buf, ev.Rune())
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Confirm asks a yes/no question. Only y or Y confirms.
func (d *Dialog) Confirm(message string) bool {
	for {
		d.draw(message, "[y/N]")
		ev, ok := <-d.events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'y', 'Y':
					return true
				case 'n', 'N':
					return false
				}
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return false
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

func (d *Dialog) draw(title, body string) {
	if d.backdrop != nil {
		d.backdrop()
	}

	w, h := d.screen.Size()
	boxW := w - 4
	if boxW > maxBoxWidth {
		boxW = maxBoxWidth
	}
	if boxW < minBoxWidth {
		boxW = w
	}
	x0 := (w - boxW) / 2
	y0 := (h - boxHeight) / 2
	if y0 < 0 {
		y0 = 0
	}

	for y := y0; y < y0+boxHeight && y < h; y++ {
		for x := x0; x < x0+boxW; x++ {
			d.screen.SetContent(x, y, ' ', nil, d.style)
		}
	}
	d.frame(x0, y0, boxW)

	inner := boxW - 4
	title = textutil.SanitizeTerminalText(title)
	body = textutil.SanitizeTerminalText(body)
	d.text(x0+2, y0+1, inner, clipText(title, inner, false), d.style.Bold(true))
	d.text(x0+2, y0+3, inner, clipText(body, inner, true), d.style)
	d.screen.Show()
}

func (d *Dialog) frame(x0, y0, boxW int) {
	right := x0 + boxW - 1
	bottom := y0 + boxHeight - 1
	for x := x0; x <= right; x++ {
		d.screen.SetContent(x, y0, tcell.RuneHLine, nil, d.border)
		d.screen.SetContent(x, bottom, tcell.RuneHLine, nil, d.border)
	}
	for y := y0; y <= bottom; y++ {
		d.screen.SetContent(x0, y, tcell.RuneVLine, nil, d.border)
		d.screen.SetContent(right, y, tcell.RuneVLine, nil, d.border)
	}
	d.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, d.border)
	d.screen.SetContent(right, y0, tcell.RuneURCorner, nil, d.border)
	d.screen.SetContent(x0, bottom, tcell.RuneLLCorner, nil, d.border)
	d.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, d.border)
}

func (d *Dialog) text(x, y, maxWidth int, s string, style tcell.Style) {
	limit := x + maxWidth
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw <= 0 {
			rw = 1
		}
		if x+rw > limit {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
}

// clipText fits s into width. Input lines keep their tail so the cursor
// stays visible; titles keep their head.
func clipText(s string, width int, keepTail bool) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if !keepTail {
		return runewidth.Truncate(s, width, "…")
	}
	runes := []rune(s)
	total := 0
	start := len(runes)
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if total+rw > width-1 {
			break
		}
		total += rw
		start--
	}
	return "…" + string(runes[start:])
}
