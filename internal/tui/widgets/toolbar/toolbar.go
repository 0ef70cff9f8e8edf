package toolbar

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
)

// Button is a toolbar entry. An empty ID is a group separator.
type Button struct {
    ID    string
    Label string
}

type Toolbar struct {
    Buttons []Button
    Enabled func(id string) bool
}

var (
    buttonStyle = lipgloss.NewStyle().Padding(0, 1)
    offStyle    = buttonStyle.Faint(true)
)

const sep = "│"

func (t Toolbar) width(b Button) int {
    if b.ID == "" {
        return 1
    }
    return len([]rune(b.Label)) + 2
}

// Hit returns the enabled button under column x.
func (t Toolbar) Hit(x int) (string, bool) {
    pos := 0
    for _, b := range t.Buttons {
        w := t.width(b)
        if x >= pos && x < pos+w {
            if b.ID == "" || (t.Enabled != nil && !t.Enabled(b.ID)) {
                return "", false
            }
            return b.ID, true
        }
        pos += w
    }
    return "", false
}

// View renders the buttons on one row; disabled ones are drawn faint.
func (t Toolbar) View(width int) string {
    var sb strings.Builder
    for _, b := range t.Buttons {
        switch {
        case b.ID == "":
            sb.WriteString(sep)
        case t.Enabled != nil && !t.Enabled(b.ID):
            sb.WriteString(offStyle.Render(b.Label))
        default:
            sb.WriteString(buttonStyle.Render(b.Label))
        }
    }
    line := sb.String()
    if pad := width - lipgloss.Width(line); pad > 0 {
        line += strings.Repeat(" ", pad)
    }
    return line
}
