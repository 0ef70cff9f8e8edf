package dialog

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/textinput"
    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "textino/internal/document"
    "textino/internal/search"
)

// Kind selects the layout and keys of a dialog.
type Kind int

const (
    Message Kind = iota
    Confirm
    Prompt
    Find
    Replace
)

// Action is what a key press asks the owner of the dialog to do.
type Action int

const (
    None Action = iota
    Close
    Answered
    Submit
    FindNext
    ReplaceOne
    ReplaceAll
)

const boxWidth = 56

var (
    boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
    titleStyle = lipgloss.NewStyle().Bold(true)
    faint      = lipgloss.NewStyle().Faint(true)
    onStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
)

// Dialog is a small modal box drawn over the editor.
type Dialog struct {
    kind  Kind
    title string
    body  string

    answer document.Answer

    query   textinput.Model
    repl    textinput.Model
    onRepl  bool
    opts    search.Options
    suggest []string
    status  string
}

func newInput(prompt, value string) textinput.Model {
    in := textinput.New()
    in.Prompt = prompt
    in.Width = boxWidth - len(prompt) - 4
    in.SetValue(value)
    in.CursorEnd()
    return in
}

// NewMessage is an informational box any key dismisses.
func NewMessage(title, body string) *Dialog {
    return &Dialog{kind: Message, title: title, body: body}
}

// NewConfirm asks a Yes/No/Cancel question.
func NewConfirm(title, question string) *Dialog {
    return &Dialog{kind: Confirm, title: title, body: question, answer: document.Cancel}
}

// NewPrompt asks for a file path, starting from value.
func NewPrompt(title, value string) *Dialog {
    d := &Dialog{kind: Prompt, title: title, query: newInput("Path: ", value)}
    d.query.Focus()
    return d
}

// NewFind asks for a search query.
func NewFind(query string, o search.Options) *Dialog {
    d := &Dialog{kind: Find, title: "Find", query: newInput("Find:    ", query), opts: o}
    d.query.Focus()
    return d
}

// NewReplace asks for a query and its replacement.
func NewReplace(query, repl string, o search.Options) *Dialog {
    d := &Dialog{kind: Replace, title: "Replace", query: newInput("Find:    ", query), repl: newInput("Replace: ", repl), opts: o}
    d.query.Focus()
    return d
}

func (d *Dialog) Kind() Kind { return d.kind }
func (d *Dialog) Answer() document.Answer { return d.answer }
func (d *Dialog) Query() string { return d.query.Value() }
func (d *Dialog) Replacement() string { return d.repl.Value() }
func (d *Dialog) Options() search.Options { return d.opts }
func (d *Dialog) SetStatus(s string) { d.status = s }

// Path is the prompt's value expanded to an absolute path.
func (d *Dialog) Path() string { return ExpandPath(d.query.Value()) }

// Update handles one message while the dialog is on top.
func (d *Dialog) Update(msg tea.Msg) (Action, tea.Cmd) {
    k, ok := msg.(tea.KeyMsg)
    if !ok {
        return d.forward(msg)
    }
    switch d.kind {
    case Message:
        return Close, nil
    case Confirm:
        switch strings.ToLower(k.String()) {
        case "y", "enter":
            d.answer = document.Yes
        case "n":
            d.answer = document.No
        case "c", "esc":
            d.answer = document.Cancel
        default:
            return None, nil
        }
        return Answered, nil
    case Prompt:
        switch k.String() {
        case "esc":
            return Close, nil
        case "enter":
            if strings.TrimSpace(d.query.Value()) == "" {
                return None, nil
            }
            return Submit, nil
        case "tab":
            d.complete()
            return None, nil
        }
        d.suggest = nil
        return d.forward(msg)
    }

    switch k.String() {
    case "esc":
        return Close, nil
    case "alt+c":
        d.opts.CaseSensitive = !d.opts.CaseSensitive
        return None, nil
    case "alt+w":
        d.opts.WholeWord = !d.opts.WholeWord
        return None, nil
    case "alt+b":
        d.opts.Backward = !d.opts.Backward
        return None, nil
    case "tab", "shift+tab", "up", "down":
        if d.kind == Replace {
            d.onRepl = !d.onRepl
            if d.onRepl {
                d.query.Blur()
                return None, d.repl.Focus()
            }
            d.repl.Blur()
            return None, d.query.Focus()
        }
        return None, nil
    case "enter":
        if d.query.Value() == "" {
            return None, nil
        }
        if d.kind == Replace {
            return ReplaceOne, nil
        }
        return FindNext, nil
    case "ctrl+a":
        if d.kind == Replace && d.query.Value() != "" {
            return ReplaceAll, nil
        }
        return None, nil
    }
    d.status = ""
    return d.forward(msg)
}

func (d *Dialog) forward(msg tea.Msg) (Action, tea.Cmd) {
    var cmd tea.Cmd
    switch {
    case d.kind == Replace && d.onRepl:
        d.repl, cmd = d.repl.Update(msg)
    case d.kind >= Prompt:
        d.query, cmd = d.query.Update(msg)
    }
    return None, cmd
}

// complete fills in the common prefix of the matching entries and keeps the
// candidates for display.
func (d *Dialog) complete() {
    c := Completions(d.query.Value(), 8)
    d.suggest = c
    if len(c) == 0 {
        d.status = "No matches"
        return
    }
    d.status = ""
    if p := commonPrefix(c); len(p) > len(d.query.Value()) {
        d.query.SetValue(p)
        d.query.CursorEnd()
    }
    if len(c) == 1 {
        d.suggest = nil
    }
}

func check(on bool, label string) string {
    if on {
        return onStyle.Render("[x] " + label)
    }
    return "[ ] " + label
}

// View renders the bordered box.
func (d *Dialog) View() string {
    var b strings.Builder
    b.WriteString(titleStyle.Render(d.title) + "\n\n")
    switch d.kind {
    case Message:
        b.WriteString(d.body + "\n\n")
        b.WriteString(faint.Render("any key: close"))
    case Confirm:
        b.WriteString(d.body + "\n\n")
        b.WriteString(faint.Render("y: yes   n: no   c/esc: cancel"))
    case Prompt:
        b.WriteString(d.query.View() + "\n")
        for _, s := range d.suggest {
            b.WriteString(faint.Render("  • ") + s + "\n")
        }
        if d.status != "" {
            b.WriteString(d.status + "\n")
        }
        b.WriteString("\n" + faint.Render("enter: ok   tab: complete   esc: cancel"))
    case Find, Replace:
        b.WriteString(d.query.View() + "\n")
        if d.kind == Replace {
            b.WriteString(d.repl.View() + "\n")
        }
        dir := "forward"
        if d.opts.Backward {
            dir = "backward"
        }
        fmt.Fprintf(&b, "\n%s  %s  %s\n", check(d.opts.CaseSensitive, "Case"), check(d.opts.WholeWord, "Word"), check(d.opts.Backward, "Backward"))
        if d.status != "" {
            b.WriteString(d.status + "\n")
        }
        if d.kind == Replace {
            b.WriteString("\n" + faint.Render("enter: replace   ctrl+a: all   tab: field   esc: close"))
        } else {
            b.WriteString("\n" + faint.Render(fmt.Sprintf("enter: find %s   alt+c/w/b: options   esc: close", dir)))
        }
    }
    return boxStyle.Width(boxWidth).Render(b.String())
}
