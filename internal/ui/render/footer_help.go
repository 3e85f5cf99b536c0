package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/trex/internal/state"
)

// buildFooterHelpText returns the footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := []string{
		"hjkl/arrows: navigate",
		"g/G: top/bottom",
		"~: home",
		"a: create",
		"r: rename",
		"D: delete",
		"R: refresh",
	}
	return append(segments, persistentHelpSegments(state)...)
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	hiddenStatus := "show"
	if state.ShowHidden {
		hiddenStatus = "hide"
	}

	segments := []string{fmt.Sprintf(".: %s hidden", hiddenStatus)}
	if state.ClipboardAvailable {
		segments = append(segments, "y: yank path")
	}
	if state.EditorAvailable {
		segments = append(segments, "e: edit file")
	}
	return append(segments, "q/x: quit/cd")
}
