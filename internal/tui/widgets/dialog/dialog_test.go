package dialog

import (
    "os"
    "path/filepath"
    "strings"
    "testing"

    tea "github.com/charmbracelet/bubbletea"

    "textino/internal/document"
    "textino/internal/search"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestConfirmAnswers(t *testing.T) {
    cases := []struct {
        msg  tea.KeyMsg
        want document.Answer
    }{
        {runes("y"), document.Yes},
        {tea.KeyMsg{Type: tea.KeyEnter}, document.Yes},
        {runes("N"), document.No},
        {runes("c"), document.Cancel},
        {tea.KeyMsg{Type: tea.KeyEsc}, document.Cancel},
    }
    for _, c := range cases {
        d := NewConfirm("Textino", "Save?")
        if a, _ := d.Update(c.msg); a != Answered {
            t.Fatalf("%q: action = %v, want Answered", c.msg.String(), a)
        }
        if d.Answer() != c.want {
            t.Fatalf("%q: answer = %v, want %v", c.msg.String(), d.Answer(), c.want)
        }
    }
    d := NewConfirm("Textino", "Save?")
    if a, _ := d.Update(runes("x")); a != None {
        t.Fatalf("unrelated key should be ignored, got %v", a)
    }
}

func TestMessageClosesOnAnyKey(t *testing.T) {
    d := NewMessage("Textino", "Cannot read file")
    if !strings.Contains(d.View(), "Cannot read file") {
        t.Fatalf("body missing from view")
    }
    if a, _ := d.Update(runes("q")); a != Close {
        t.Fatalf("action = %v, want Close", a)
    }
}

func TestFindTypingAndToggles(t *testing.T) {
    d := NewFind("", search.Options{Wrap: true})
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); a != None {
        t.Fatalf("empty query should not search")
    }
    d.Update(runes("foo"))
    if d.Query() != "foo" {
        t.Fatalf("query = %q", d.Query())
    }
    d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}, Alt: true})
    d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true})
    o := d.Options()
    if !o.CaseSensitive || !o.Backward || o.WholeWord || !o.Wrap {
        t.Fatalf("options = %+v", o)
    }
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); a != FindNext {
        t.Fatalf("enter = %v, want FindNext", a)
    }
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyEsc}); a != Close {
        t.Fatalf("esc = %v, want Close", a)
    }
}

func TestReplaceFields(t *testing.T) {
    d := NewReplace("a", "", search.Options{})
    d.Update(tea.KeyMsg{Type: tea.KeyTab})
    d.Update(runes("b"))
    if d.Query() != "a" || d.Replacement() != "b" {
        t.Fatalf("query/repl = %q/%q", d.Query(), d.Replacement())
    }
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); a != ReplaceOne {
        t.Fatalf("enter = %v, want ReplaceOne", a)
    }
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyCtrlA}); a != ReplaceAll {
        t.Fatalf("ctrl+a = %v, want ReplaceAll", a)
    }
}

func TestPromptCompletes(t *testing.T) {
    dir := t.TempDir()
    for _, n := range []string{"notes.txt", "notes.md", "other.go"} {
        if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
            t.Fatal(err)
        }
    }
    if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
        t.Fatal(err)
    }
    d := NewPrompt("Open", filepath.Join(dir, "no"))
    d.Update(tea.KeyMsg{Type: tea.KeyTab})
    if got, want := d.Query(), filepath.Join(dir, "notes."); got != want {
        t.Fatalf("after tab = %q, want %q", got, want)
    }
    if !strings.Contains(d.View(), "notes.md") {
        t.Fatalf("candidates not shown:\n%s", d.View())
    }

    d = NewPrompt("Open", filepath.Join(dir, "s"))
    d.Update(tea.KeyMsg{Type: tea.KeyTab})
    if got, want := d.Query(), filepath.Join(dir, "sub")+string(filepath.Separator); got != want {
        t.Fatalf("dir completion = %q, want %q", got, want)
    }
    if a, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); a != Submit {
        t.Fatalf("enter = %v, want Submit", a)
    }
}

func TestExpandPath(t *testing.T) {
    home, err := os.UserHomeDir()
    if err != nil {
        t.Skip("no home directory")
    }
    if got := ExpandPath("~/x.txt"); got != filepath.Join(home, "x.txt") {
        t.Fatalf("ExpandPath(~/x.txt) = %q", got)
    }
    if got := ExpandPath("rel.txt"); !filepath.IsAbs(got) {
        t.Fatalf("relative path not made absolute: %q", got)
    }
    if ExpandPath("  ") != "" {
        t.Fatalf("blank path should stay empty")
    }
}
