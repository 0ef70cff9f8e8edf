package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"textino/internal/tui/views/menu"
	"textino/internal/tui/widgets/helpoverlay"
	"textino/internal/tui/widgets/toolbar"
)

type keyMap struct {
	New, Open, Save, SaveAs, Exit           key.Binding
	Cut, Copy, Paste, Undo, Redo, SelectAll key.Binding
	Find, FindNext, Replace                 key.Binding
	Changes, LineNumbers, Toolbar, Wrap     key.Binding
	Help, MenuBar                           key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		New:         key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new file")),
		Open:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:      key.NewBinding(key.WithKeys("ctrl+shift+s", "alt+s"), key.WithHelp("ctrl+shift+s/alt+s", "save as")),
		Exit:        key.NewBinding(key.WithKeys("ctrl+w", "ctrl+q"), key.WithHelp("ctrl+w/ctrl+q", "exit")),
		Cut:         key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Undo:        key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:        key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Find:        key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		FindNext:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "find next")),
		Replace:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replace")),
		Changes:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "unsaved changes")),
		LineNumbers: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "line numbers")),
		Toolbar:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toolbar")),
		Wrap:        key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "word wrap")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "keys")),
		MenuBar:     key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10/alt+f,e,r,v,h", "menu")),
	}
}

// action is a command reachable from a key, a menu item or a toolbar
// button. tip is shown in the status bar while the menu item is selected.
type action struct {
	id      string
	label   string
	tip     string
	key     *key.Binding
	run     func(m *Model) tea.Cmd
	enabled func(m *Model) bool
}

func always(*Model) bool { return true }

func (m *Model) buildActions() {
	k := &m.keys
	list := []action{
		{"new", "New", "Create a new file", &k.New, (*Model).newFile, always},
		{"open", "Open...", "Open an existing file", &k.Open, (*Model).openFile, always},
		{"save", "Save", "Save the document to disk", &k.Save, (*Model).saveFile, always},
		{"saveas", "Save As...", "Save the document under a new name", &k.SaveAs, (*Model).saveFileAs, always},
		{"exit", "Exit", "Exit the application", &k.Exit, (*Model).exit, always},
		{"cut", "Cut", "Cut the current selection's contents to the clipboard", &k.Cut, (*Model).cut, canCopy},
		{"copy", "Copy", "Copy the current selection's contents to the clipboard", &k.Copy, (*Model).copy, canCopy},
		{"paste", "Paste", "Paste the clipboard's contents into the current selection", &k.Paste, (*Model).paste, always},
		{"undo", "Undo", "Undo the last edit", &k.Undo, (*Model).undo, func(m *Model) bool { return m.ed.CanUndo() }},
		{"redo", "Redo", "Redo the edit that was undone", &k.Redo, (*Model).redo, func(m *Model) bool { return m.ed.CanRedo() }},
		{"selectall", "Select All", "Select the whole document", &k.SelectAll, (*Model).selectAll, always},
		{"find", "Find...", "Search the document", &k.Find, (*Model).openFind, always},
		{"findnext", "Find Next", "Repeat the last search", &k.FindNext, (*Model).findAgain, func(m *Model) bool { return m.lastQuery != "" }},
		{"replace", "Replace...", "Replace text in the document", &k.Replace, (*Model).openReplace, always},
		{"changes", "Unsaved Changes", "Compare the buffer with the saved file", &k.Changes, (*Model).showChanges, always},
		{"linenumbers", "Line Numbers", "Show or hide the line number margin", &k.LineNumbers, (*Model).toggleLineNumbers, always},
		{"toolbar", "Toolbar", "Show or hide the toolbar", &k.Toolbar, (*Model).toggleToolbar, always},
		{"wordwrap", "Word Wrap", "Wrap long lines at word boundaries", &k.Wrap, (*Model).toggleWrap, always},
		{"help", "Keys", "List the keyboard shortcuts", &k.Help, (*Model).showHelp, always},
		{"about", "About", "Show the application's About box", nil, (*Model).about, always},
	}
	m.actions = make(map[string]*action, len(list))
	m.order = make([]*action, 0, len(list))
	for i := range list {
		a := &list[i]
		m.actions[a.id] = a
		m.order = append(m.order, a)
	}
}

func canCopy(m *Model) bool { return m.ed.CanCopy() }

func (m *Model) actionEnabled(id string) bool {
	a, ok := m.actions[id]
	return ok && a.enabled(m)
}

// trigger runs the action id if it is currently enabled.
func (m *Model) trigger(id string) tea.Cmd {
	a, ok := m.actions[id]
	if !ok || !a.enabled(m) {
		return nil
	}
	m.logf("action: %s", id)
	return a.run(m)
}

// matchAction finds the action bound to msg.
func (m *Model) matchAction(msg tea.KeyMsg) (*action, bool) {
	for _, a := range m.order {
		if a.key != nil && key.Matches(msg, *a.key) {
			return a, true
		}
	}
	return nil, false
}

func (m *Model) item(id string) menu.Item {
	a := m.actions[id]
	it := menu.Item{ID: id, Label: a.label, Tip: a.tip}
	if a.key != nil {
		if ks := a.key.Keys(); len(ks) > 0 {
			it.Key = ks[0]
		}
	}
	return it
}

func (m *Model) buildMenus() menu.Bar {
	items := func(ids ...string) []menu.Item {
		out := make([]menu.Item, len(ids))
		for i, id := range ids {
			if id != "" {
				out[i] = m.item(id)
			}
		}
		return out
	}
	b := menu.New(
		menu.Menu{Title: "File", Hotkey: "alt+f", Items: items("new", "open", "save", "saveas", "", "exit")},
		menu.Menu{Title: "Edit", Hotkey: "alt+e", Items: items("cut", "copy", "paste", "", "undo", "redo", "", "selectall")},
		menu.Menu{Title: "Search", Hotkey: "alt+r", Items: items("find", "findnext", "replace")},
		menu.Menu{Title: "View", Hotkey: "alt+v", Items: items("changes", "", "linenumbers", "toolbar", "wordwrap")},
		menu.Menu{Title: "Help", Hotkey: "alt+h", Items: items("help", "about")},
	)
	b.Enabled = m.actionEnabled
	return b
}

func (m *Model) buildToolbar() toolbar.Toolbar {
	return toolbar.Toolbar{
		Buttons: []toolbar.Button{
			{ID: "new", Label: "New"}, {ID: "open", Label: "Open"}, {ID: "save", Label: "Save"}, {ID: "saveas", Label: "Save As"},
			{},
			{ID: "cut", Label: "Cut"}, {ID: "copy", Label: "Copy"}, {ID: "paste", Label: "Paste"}, {ID: "undo", Label: "Undo"}, {ID: "redo", Label: "Redo"},
			{},
			{ID: "about", Label: "About"},
		},
		Enabled: m.actionEnabled,
	}
}

func (m *Model) helpSections() []helpoverlay.Section {
	k := m.keys
	return []helpoverlay.Section{
		{Title: "File", Keys: []key.Binding{k.New, k.Open, k.Save, k.SaveAs, k.Exit}},
		{Title: "Edit", Keys: []key.Binding{k.Cut, k.Copy, k.Paste, k.Undo, k.Redo, k.SelectAll,
			key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "set mark (selection)")),
			key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+arrows", "extend selection")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/enter", "accept completion (esc closes)"))}},
		{Title: "Search", Keys: []key.Binding{k.Find, k.FindNext, k.Replace}},
		{Title: "View", Keys: []key.Binding{k.Changes, k.LineNumbers, k.Toolbar, k.Wrap, k.Help, k.MenuBar}},
	}
}
