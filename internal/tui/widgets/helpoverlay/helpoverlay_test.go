package helpoverlay

import (
    "strings"
    "testing"

    "github.com/charmbracelet/bubbles/key"
)

func TestViewGroupsKeys(t *testing.T) {
    save := key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))
    find := key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find"))
    find.SetEnabled(false)
    out := NewHelpOverlay().View("Keys", []Section{
        {Title: "File", Keys: []key.Binding{save}},
        {Title: "Search", Keys: []key.Binding{find}},
    })
    for _, want := range []string{"Keys\n", "File:", "ctrl+s  save", "Search:", "ctrl+f  find"} {
        if !strings.Contains(out, want) {
            t.Fatalf("missing %q in:\n%s", want, out)
        }
    }
}
