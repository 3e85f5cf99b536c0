package render

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/trex/internal/preview"
	textutil "github.com/kk-code-lab/trex/internal/textutil"
)

const defaultHighlightStyle = "dracula"

var matchLexer = lexers.Match

type styledSegment struct {
	text  string
	style tcell.Style
}

// highlighter turns text preview lines into colored segments. The result for
// the last preview is cached since the same preview is redrawn on every
// cursor-neutral render.
type highlighter struct {
	enabled bool
	style   *chroma.Style

	cached      *preview.Preview
	cachedLines [][]styledSegment
}

func newHighlighter(enabled bool, styleName string) *highlighter {
	if styleName == "" {
		styleName = defaultHighlightStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{enabled: enabled, style: style}
}

// lines returns one segment slice per preview line. Lines are tab-expanded
// and sanitized before they are returned.
func (h *highlighter) lines(r *Renderer, p *preview.Preview, base tcell.Style) [][]styledSegment {
	if p == nil || p.Kind != preview.KindText {
		return nil
	}
	if h.cached == p {
		return h.cachedLines
	}

	expanded := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		expanded[i] = r.expandTabs(line, previewTabWidth)
	}

	out := h.colorize(p.Path, expanded, base)
	if out == nil {
		out = plainSegments(expanded, base)
	}

	h.cached = p
	h.cachedLines = out
	return out
}

func (h *highlighter) colorize(path string, lines []string, base tcell.Style) [][]styledSegment {
	if !h.enabled || len(lines) == 0 {
		return nil
	}
	lexer := matchLexer(filepath.Base(path))
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return nil
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	out := make([][]styledSegment, len(lines))
	for i := range lines {
		if i >= len(tokenLines) {
			out[i] = []styledSegment{{text: textutil.SanitizeTerminalText(lines[i]), style: base}}
			continue
		}
		for _, token := range tokenLines[i] {
			text := strings.TrimRight(token.Value, "\n")
			if text == "" {
				continue
			}
			out[i] = append(out[i], styledSegment{
				text:  textutil.SanitizeTerminalText(text),
				style: h.styleFor(token.Type, base),
			})
		}
	}
	return out
}

func (h *highlighter) styleFor(tokenType chroma.TokenType, base tcell.Style) tcell.Style {
	entry := h.style.Get(tokenType)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	return style
}

func plainSegments(lines []string, base tcell.Style) [][]styledSegment {
	out := make([][]styledSegment, len(lines))
	for i, line := range lines {
		out[i] = []styledSegment{{text: textutil.SanitizeTerminalText(line), style: base}}
	}
	return out
}
