package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"textino/internal/clip"
	"textino/internal/lexer"
	"textino/internal/tui/state"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(Options{Clipboard: &clip.Memory{}, NoColor: true})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func send(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func ctrl(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingMarksModified(t *testing.T) {
	m := newTestModel(t)
	if got := m.doc.Title(); got != "Untitled.txt - Textino" {
		t.Fatalf("title = %q", got)
	}
	send(m, typed("hello"))
	if !m.doc.Modified() || m.doc.Title() != "Untitled.txt* - Textino" {
		t.Fatalf("modified=%v title=%q", m.doc.Modified(), m.doc.Title())
	}
	send(m, ctrl(tea.KeyCtrlZ))
	if m.ed.Text() != "" || m.doc.Modified() {
		t.Fatalf("undo should restore the pristine text, got %q modified=%v", m.ed.Text(), m.doc.Modified())
	}
}

func TestSaveAsFromUntitled(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "main.py")
	send(m, typed("print(1)"), ctrl(tea.KeyCtrlS))
	if m.top() == nil || m.top().purpose != forSaveAs {
		t.Fatalf("ctrl+s on an untitled document should prompt for a path")
	}
	send(m, ctrl(tea.KeyCtrlU), typed(path), ctrl(tea.KeyEnter))
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "print(1)" {
		t.Fatalf("saved %q, %v", data, err)
	}
	if m.doc.Modified() || m.doc.Path() != path || m.doc.Profile() != lexer.Python {
		t.Fatalf("after save: modified=%v path=%q profile=%v", m.doc.Modified(), m.doc.Path(), m.doc.Profile())
	}
	if m.status != "File saved" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestExitAsksWhenModified(t *testing.T) {
	m := newTestModel(t)
	send(m, typed("x"))
	if cmd := send(m, ctrl(tea.KeyCtrlQ)); isQuit(cmd) {
		t.Fatalf("should ask before quitting")
	}
	if m.top() == nil || m.top().purpose != forConfirm {
		t.Fatalf("confirm dialog not shown")
	}
	if cmd := send(m, typed("c")); isQuit(cmd) {
		t.Fatalf("cancel should keep the window open")
	}
	if m.ed.Text() != "x" || !m.doc.Modified() {
		t.Fatalf("cancel must leave the buffer alone")
	}
	send(m, ctrl(tea.KeyCtrlQ))
	if cmd := send(m, typed("n")); !isQuit(cmd) {
		t.Fatalf("discarding should quit")
	}
}

func TestExitUnmodifiedQuits(t *testing.T) {
	m := newTestModel(t)
	if cmd := send(m, ctrl(tea.KeyCtrlW)); !isQuit(cmd) {
		t.Fatalf("unmodified exit should quit at once")
	}
}

func TestYesOnUntitledSavesThenContinues(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	send(m, typed("keep me"), ctrl(tea.KeyCtrlN), typed("y"))
	if m.top() == nil || m.top().purpose != forSaveAs {
		t.Fatalf("yes on an untitled document should ask for a path")
	}
	send(m, ctrl(tea.KeyCtrlU), typed(path), ctrl(tea.KeyEnter))
	if data, _ := os.ReadFile(path); string(data) != "keep me" {
		t.Fatalf("saved %q", data)
	}
	if m.ed.Text() != "" || m.doc.Path() != "" {
		t.Fatalf("new file should follow the save, text=%q path=%q", m.ed.Text(), m.doc.Path())
	}
}

func TestOpenMissingFileReports(t *testing.T) {
	m := newTestModel(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")
	send(m, ctrl(tea.KeyCtrlO), ctrl(tea.KeyCtrlU), typed(missing), ctrl(tea.KeyEnter))
	if m.top() == nil || m.top().purpose != forMessage {
		t.Fatalf("missing file should raise a message")
	}
	if v := m.View(); !strings.Contains(v, "Cannot read file") {
		t.Fatalf("message not drawn:\n%s", v)
	}
	if m.doc.Path() != "" || m.doc.Title() != "Untitled.txt - Textino" {
		t.Fatalf("document changed after a failed load")
	}
	send(m, typed("x"))
	if m.top() != nil || m.ui.Focus != state.EDITOR {
		t.Fatalf("any key should dismiss the message")
	}
}

func TestStartLoadsOrNames(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.sql")
	if err := os.WriteFile(existing, []byte("select 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := New(Options{Clipboard: &clip.Memory{}})
	if err := m.Start(existing); err != nil {
		t.Fatal(err)
	}
	if m.ed.Text() != "select 1;\n" || m.doc.Profile() != lexer.SQL {
		t.Fatalf("loaded %q profile %v", m.ed.Text(), m.doc.Profile())
	}

	fresh := filepath.Join(dir, "b.java")
	m = New(Options{Clipboard: &clip.Memory{}})
	if err := m.Start(fresh); err != nil {
		t.Fatal(err)
	}
	if m.doc.Path() != fresh || m.doc.DisplayName() != "b.java" || m.doc.Modified() {
		t.Fatalf("path=%q name=%q", m.doc.Path(), m.doc.DisplayName())
	}
}

func TestFindAndReplaceAll(t *testing.T) {
	m := newTestModel(t)
	m.ed.SetText("foo bar foo")
	m.doc.SetCurrentFile("")
	send(m, ctrl(tea.KeyCtrlF), typed("foo"), ctrl(tea.KeyEnter))
	if s, e, ok := m.ed.SelectionRange(); !ok || s != 0 || e != 3 {
		t.Fatalf("first match = %d..%d %v", s, e, ok)
	}
	send(m, ctrl(tea.KeyEnter))
	if s, _, _ := m.ed.SelectionRange(); s != 8 {
		t.Fatalf("second match at %d", s)
	}
	send(m, ctrl(tea.KeyEsc), ctrl(tea.KeyCtrlR), ctrl(tea.KeyTab), typed("baz"), ctrl(tea.KeyCtrlA))
	if m.ed.Text() != "baz bar baz" || !m.doc.Modified() {
		t.Fatalf("replace all = %q", m.ed.Text())
	}
	send(m, ctrl(tea.KeyEsc), ctrl(tea.KeyCtrlZ))
	if m.ed.Text() != "foo bar foo" {
		t.Fatalf("replace all should undo in one step, got %q", m.ed.Text())
	}
}

func TestFindMissReportsStatus(t *testing.T) {
	m := newTestModel(t)
	m.ed.SetText("abc")
	send(m, ctrl(tea.KeyCtrlF), typed("zzz"), ctrl(tea.KeyEnter))
	if m.status != `Cannot find "zzz"` {
		t.Fatalf("status = %q", m.status)
	}
}

func TestCopyPasteThroughActions(t *testing.T) {
	m := newTestModel(t)
	send(m, typed("one"), ctrl(tea.KeyCtrlC), ctrl(tea.KeyEnd), ctrl(tea.KeyEnter), ctrl(tea.KeyCtrlV))
	if got := m.ed.Text(); got != "one\none" {
		t.Fatalf("text = %q", got)
	}
}

func TestMenuActivatesAction(t *testing.T) {
	m := newTestModel(t)
	send(m, alt('h'))
	if m.ui.Focus != state.MENU {
		t.Fatalf("alt+h should open the Help menu")
	}
	if info := m.statusInfo(); info.Message != "List the keyboard shortcuts" {
		t.Fatalf("status tip = %q", info.Message)
	}
	send(m, ctrl(tea.KeyDown), ctrl(tea.KeyEnter))
	if m.top() == nil || !strings.Contains(m.View(), "About Textino") {
		t.Fatalf("About dialog not shown")
	}
}

func TestChangesView(t *testing.T) {
	m := newTestModel(t)
	send(m, typed("added"), ctrl(tea.KeyCtrlD))
	if m.ui.Focus != state.CHANGES {
		t.Fatalf("ctrl+d should open the changes view")
	}
	if v := m.View(); !strings.Contains(v, "+ added") {
		t.Fatalf("changes view:\n%s", v)
	}
	send(m, ctrl(tea.KeyEsc))
	if m.ui.Focus != state.EDITOR {
		t.Fatalf("esc should close the changes view")
	}
}

func TestStatusClearsAfterTimeout(t *testing.T) {
	m := newTestModel(t)
	m.flash("File saved")
	m.Update(clearStatusMsg{seq: m.statusSeq - 1})
	if m.status != "File saved" {
		t.Fatalf("stale tick cleared the status")
	}
	m.Update(clearStatusMsg{seq: m.statusSeq})
	if m.status != readyMessage {
		t.Fatalf("status = %q", m.status)
	}
}

func TestYesOnNamedFileSavesAndReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t)
	if err := m.Start(path); err != nil {
		t.Fatal(err)
	}
	send(m, ctrl(tea.KeyCtrlEnd), typed(" more"), ctrl(tea.KeyCtrlN), typed("y"))
	if data, _ := os.ReadFile(path); string(data) != "old more" {
		t.Fatalf("saved %q", data)
	}
	if m.status != "File saved" {
		t.Fatalf("status = %q", m.status)
	}
	if m.ed.Text() != "" || m.doc.Path() != "" {
		t.Fatalf("new file should follow the save, text=%q path=%q", m.ed.Text(), m.doc.Path())
	}
}

func TestWordWrapToggle(t *testing.T) {
	m := newTestModel(t)
	if !m.ed.Wrap() {
		t.Fatalf("word wrap should start on")
	}
	m.ed.SetText(strings.Repeat("word ", 30) + "END")
	send(m, ctrl(tea.KeyCtrlEnd))
	if v := m.View(); !strings.Contains(v, "word word") || !strings.Contains(v, "END") {
		t.Fatalf("wrapped view should show the line start and end:\n%s", v)
	}
	send(m, alt('z'))
	if m.ed.Wrap() || m.status != "Word wrap off" {
		t.Fatalf("alt+z should turn wrap off, status %q", m.status)
	}
	send(m, alt('v'))
	if !strings.Contains(m.View(), "Word Wrap") {
		t.Fatalf("View menu should list Word Wrap")
	}
}

func TestCompletionAcceptsWithEnter(t *testing.T) {
	m := newTestModel(t)
	m.ed.SetText("function\n")
	send(m, ctrl(tea.KeyCtrlEnd), typed("f"), typed("u"))
	items, _, ok := m.ed.Completions()
	if !ok || len(items) != 1 || items[0] != "function" {
		t.Fatalf("completions = %v %v", items, ok)
	}
	if v := m.View(); strings.Count(v, "function") != 2 {
		t.Fatalf("popup not drawn:\n%s", v)
	}
	send(m, ctrl(tea.KeyEnter))
	if got := m.ed.Text(); got != "function\nfunction" || !m.doc.Modified() {
		t.Fatalf("text = %q modified=%v", got, m.doc.Modified())
	}
}
