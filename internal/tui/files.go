package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"textino/internal/document"
	"textino/internal/tui/widgets/dialog"
	"textino/internal/watch"
)

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// guard runs next once unsaved changes are dealt with. A modified document
// first gets the save-changes question.
func (m *Model) guard(next func() tea.Cmd) tea.Cmd {
	if !m.doc.Modified() {
		return next()
	}
	m.pending = next
	m.push(dialog.NewConfirm(document.AppName, "The document has been modified.\nDo you want to save your changes?"), forConfirm)
	return nil
}

// resolve continues the guarded action with the user's answer.
func (m *Model) resolve(a document.Answer) tea.Cmd {
	next := m.pending
	m.pending = nil
	if next == nil {
		return nil
	}
	if a == document.Yes && m.doc.Path() == "" {
		m.afterSave = next
		return m.saveFileAs()
	}
	saved := false
	write := func() bool {
		saved = m.writeTo(m.doc.Path())
		return saved
	}
	if !m.doc.MaybeSave(document.Fixed(a), write) {
		return nil
	}
	if saved {
		return tea.Batch(m.flash("File saved"), next())
	}
	return next()
}

func (m *Model) newFile() tea.Cmd {
	return m.guard(func() tea.Cmd {
		m.ed.SetText("")
		m.doc.SetCurrentFile("")
		m.watchCurrent()
		return nil
	})
}

func (m *Model) openFile() tea.Cmd {
	return m.guard(func() tea.Cmd {
		m.push(dialog.NewPrompt("Open", m.promptStart()), forOpen)
		return nil
	})
}

func (m *Model) saveFile() tea.Cmd {
	if m.doc.Path() == "" {
		return m.saveFileAs()
	}
	if m.writeTo(m.doc.Path()) {
		return m.flash("File saved")
	}
	return nil
}

func (m *Model) saveFileAs() tea.Cmd {
	start := m.doc.Path()
	if start == "" {
		start = m.promptStart() + document.Placeholder
	}
	m.push(dialog.NewPrompt("Save As", start), forSaveAs)
	return nil
}

func (m *Model) exit() tea.Cmd {
	return m.guard(func() tea.Cmd {
		m.quitting = true
		return nil
	})
}

// promptStart is the directory of the current file, or the working
// directory, with a trailing separator.
func (m *Model) promptStart() string {
	dir := ""
	if p := m.doc.Path(); p != "" {
		dir = filepath.Dir(p)
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}
	if dir == "" {
		return ""
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}

func (m *Model) load(path string) tea.Cmd {
	if err := m.doc.LoadFile(path); err != nil {
		return nil
	}
	m.watchCurrent()
	return m.flash("File loaded")
}

// saveAs writes to path from the Save As prompt and resumes an action that
// was waiting on the save.
func (m *Model) saveAs(path string) tea.Cmd {
	next := m.afterSave
	m.afterSave = nil
	if !m.writeTo(path) {
		return nil
	}
	cmd := m.flash("File saved")
	if next != nil {
		return tea.Batch(cmd, next())
	}
	return cmd
}

func (m *Model) writeTo(path string) bool {
	if err := m.doc.SaveFile(path); err != nil {
		return false
	}
	m.watchCurrent()
	return true
}

func (m *Model) watchCurrent() {
	if m.opts.Watcher == nil {
		return
	}
	if err := m.opts.Watcher.Watch(m.doc.Path()); err != nil {
		m.logf("watch %s: %v", m.doc.Path(), err)
	}
}

// onDiskChange notes edits made to the file by other programs. Our own
// saves leave the disk equal to the pristine text and are ignored.
func (m *Model) onDiskChange(ev watch.Event) {
	if ev.Path != m.doc.Path() {
		return
	}
	if ev.Removed {
		m.say("File removed from disk")
		return
	}
	data, err := os.ReadFile(ev.Path)
	if err != nil || bytes.Equal(data, []byte(m.doc.Pristine())) {
		return
	}
	m.logf("changed on disk: %s", ev.Path)
	m.say("File changed on disk")
}

func (m *Model) cut() tea.Cmd {
	if err := m.ed.Cut(); err != nil {
		m.logf("cut: %v", err)
		return m.flash("Clipboard unavailable")
	}
	m.edited()
	return nil
}

func (m *Model) copy() tea.Cmd {
	if err := m.ed.Copy(); err != nil {
		m.logf("copy: %v", err)
		return m.flash("Clipboard unavailable")
	}
	return nil
}

func (m *Model) paste() tea.Cmd {
	changed, err := m.ed.Paste()
	if err != nil {
		m.logf("paste: %v", err)
		return m.flash("Clipboard unavailable")
	}
	if changed {
		m.edited()
	}
	return nil
}

func (m *Model) undo() tea.Cmd {
	if m.ed.Undo() {
		m.edited()
	}
	return nil
}

func (m *Model) redo() tea.Cmd {
	if m.ed.Redo() {
		m.edited()
	}
	return nil
}

func (m *Model) selectAll() tea.Cmd {
	m.ed.SelectAll()
	return nil
}
