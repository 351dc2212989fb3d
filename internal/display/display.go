// Package display renders normalized outlines and transient notices in the
// terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/tocfmt/internal/outline"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ShouldColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ShouldColor resolves a color mode for w. In auto mode only terminals get
// styled output.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteOutline prints o to w. Without color the output is exactly
// o.String() followed by a newline.
func WriteOutline(w io.Writer, o outline.Outline, color bool) error {
	text := o.String()
	if text == "" {
		return nil
	}
	if !color {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Violet)
	tsStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)

	var b strings.Builder
	for _, l := range o.Lines {
		switch l.Kind {
		case outline.KindHeader:
			b.WriteString(headerStyle.Render(l.Text))
		case outline.KindEntry:
			b.WriteString(tsStyle.Render(l.Timestamp))
			b.WriteString(mutedStyle.Render(" - "))
			b.WriteString(l.Title)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
