package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"
)

// Section is a titled group of bindings.
type Section struct {
    Title string
    Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped key help. Disabled bindings are listed anyway since
// the overlay documents every shortcut, not only the ones usable right now.
func (HelpOverlay) View(title string, sections []Section) string {
    var b strings.Builder
    b.WriteString(title + "\n")
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        w := 0
        for _, k := range sec.Keys {
            w = max(w, len([]rune(k.Help().Key)))
        }
        for _, k := range sec.Keys {
            h := k.Help()
            fmt.Fprintf(&b, "  %-*s  %s\n", w, h.Key, h.Desc)
        }
    }
    return b.String()
}
