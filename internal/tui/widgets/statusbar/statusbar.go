package statusbar

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "textino/internal/tui/state"
    "textino/internal/tui/util"
    "textino/internal/tui/widgets/tagchips"
)

// Info is what the status bar shows besides the UI state.
type Info struct {
    Message string
    Tags    []state.Tag
    Line    int
    Col     int
    NoColor bool
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes one status line: the message (or notice) on the left, the
// chips and caret position on the right, padded to s.Width.
func (StatusBar) View(s state.UIState, in Info) string {
    left := in.Message
    if left == "" {
        left = s.Notice
    }
    right := fmt.Sprintf("Ln %d, Col %d", in.Line, in.Col)
    if chips := tagchips.View(in.Tags, in.NoColor); chips != "" {
        right = chips + "  " + right
    }

    width := s.Width
    if width <= 0 {
        return strings.TrimSpace(left + "  " + right)
    }
    room := width - lipgloss.Width(right) - 1
    if room < 0 {
        room = 0
    }
    if lipgloss.Width(left) > room {
        left = truncate(left, room)
    }
    gap := width - lipgloss.Width(left) - lipgloss.Width(right)
    if gap < 1 {
        gap = 1
    }
    line := left + strings.Repeat(" ", gap) + right
    if util.NoColor(in.NoColor) {
        return line
    }
    p := util.DefaultPalette()
    return lipgloss.NewStyle().Background(p.Bar).Foreground(p.BarText).MaxWidth(width).Render(line)
}

func truncate(s string, width int) string {
    if width <= 0 {
        return ""
    }
    runes := []rune(s)
    if len(runes) <= width {
        return s
    }
    if width == 1 {
        return "…"
    }
    return string(runes[:width-1]) + "…"
}
