package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "textino/internal/tui/state"
    "textino/internal/tui/util"
)

// View renders status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.MODIFIED:
        return "Modified"
    case state.SAVED:
        return "Saved"
    case state.PROFILE:
        return t.Label
    case state.LINES:
        return fmt.Sprintf("%d lines", t.Value)
    case state.SELECTION:
        return fmt.Sprintf("Sel %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.MODIFIED:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.SAVED:
        return base.Background(p.Success).Foreground(lipgloss.Color("#FFFFFF"))
    case state.PROFILE:
        return base.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
    case state.LINES:
        return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
    case state.SELECTION:
        return base.Background(p.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
