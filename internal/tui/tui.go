package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"textino/internal/clip"
	"textino/internal/config"
	"textino/internal/document"
	"textino/internal/lexer"
	"textino/internal/search"
	"textino/internal/tui/state"
	"textino/internal/tui/util"
	"textino/internal/tui/views/menu"
	"textino/internal/tui/widgets/dialog"
	"textino/internal/tui/widgets/diff"
	"textino/internal/tui/widgets/editor"
	"textino/internal/tui/widgets/helpoverlay"
	"textino/internal/tui/widgets/statusbar"
	"textino/internal/tui/widgets/toolbar"
	"textino/internal/watch"
)

// Options configures the main window.
type Options struct {
	Config    *config.Config
	Clipboard editor.Clipboard
	Watcher   *watch.Watcher // optional
	Version   string
	Verbose   bool
	NoColor   bool
	Logf      func(format string, args ...any)
}

const (
	readyMessage  = "Ready"
	statusTimeout = 2 * time.Second
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// purpose says what the answer of a modal is for.
type purpose int

const (
	forMessage purpose = iota
	forConfirm
	forOpen
	forSaveAs
	forSearch
)

type modal struct {
	d       *dialog.Dialog
	purpose purpose
}

type clearStatusMsg struct{ seq int }

type watchMsg watch.Event

func waitWatch(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return watchMsg(ev)
	}
}

// Model is the main window: title row, menu bar, toolbar, editor pane and
// status bar, with modal dialogs drawn on top.
type Model struct {
	opts Options
	logf func(string, ...any)

	ed   *editor.Editor
	doc  *document.Document
	ui   state.UIState
	keys keyMap

	actions map[string]*action
	order   []*action
	menu    menu.Bar
	tools   toolbar.Toolbar

	modals []modal
	// pending runs once the save-changes question lets it through; afterSave
	// runs once a Save As started for that question succeeds.
	pending   func() tea.Cmd
	afterSave func() tea.Cmd

	lastQuery string
	lastRepl  string
	searchOpt search.Options

	status    string
	statusSeq int
	title     string
	quitting  bool
}

// New builds the window around an empty, untitled document.
func New(opts Options) *Model {
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clip.Memory{}
	}
	c := opts.Config
	m := &Model{opts: opts, logf: opts.Logf, keys: defaultKeys(), status: readyMessage}
	m.ed = editor.New(editor.Config{
		Style:        c.Style,
		CommentColor: c.CommentColor,
		TabWidth:     c.TabWidth,
		MarginWidth:  c.MarginWidth,
		LineNumbers:  c.ShowLineNumbers(),
		CaretLine:    c.ShowCaretLine(),
		HistoryLimit: c.UndoLimit(),
		WordWrap:     c.Wrap(),
		IndentGuides: c.Guides(),
		AutoComplete: c.Complete(),
	}, opts.Clipboard)
	m.doc = document.New(m.ed, m, m.logf)
	m.doc.OnProfileChange(func(p lexer.Profile) { m.ed.SetProfile(p) })
	m.ui = state.UIState{Toolbar: c.ShowToolbar(), MinCol: 30}
	m.searchOpt = search.Options{Wrap: true}
	m.buildActions()
	m.menu = m.buildMenus()
	m.tools = m.buildToolbar()
	return m
}

// Run opens path (when given) and runs the program until the user exits.
func Run(opts Options, path string) error {
	m := New(opts)
	if err := m.Start(path); err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Start loads path, or names the untitled buffer after it when the file
// does not exist yet.
func (m *Model) Start(path string) error {
	if path == "" {
		return nil
	}
	path = dialog.ExpandPath(path)
	if fileExists(path) {
		if err := m.doc.LoadFile(path); err != nil {
			return err
		}
	} else {
		m.doc.SetCurrentFile(path)
	}
	m.watchCurrent()
	return nil
}

// Document and Editor expose the parts the caller may inspect in tests.
func (m *Model) Document() *document.Document { return m.doc }
func (m *Model) Editor() *editor.Editor { return m.ed }

// Warn implements document.Reporter with a modal message box.
func (m *Model) Warn(title, message string) {
	m.push(dialog.NewMessage(title, message), forMessage)
}

func (m *Model) push(d *dialog.Dialog, p purpose) {
	m.ui = state.SetFocus(m.ui, state.DIALOG)
	m.modals = append(m.modals, modal{d: d, purpose: p})
}

func (m *Model) pop() {
	if n := len(m.modals); n > 0 {
		m.modals = m.modals[:n-1]
	}
	if len(m.modals) == 0 {
		m.ui = state.SetFocus(m.ui, state.EDITOR)
	}
}

func (m *Model) top() *modal {
	if n := len(m.modals); n > 0 {
		return &m.modals[n-1]
	}
	return nil
}

// flash shows msg in the status bar for statusTimeout.
func (m *Model) flash(msg string) tea.Cmd {
	m.status = msg
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// say shows msg until the next message replaces it.
func (m *Model) say(msg string) {
	m.status = msg
	m.statusSeq++
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.syncTitle()}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitWatch(m.opts.Watcher.Events()))
	}
	return tea.Batch(cmds...)
}

// syncTitle emits a terminal title update when the window title changed.
func (m *Model) syncTitle() tea.Cmd {
	t := m.doc.Title()
	if t == m.title {
		return nil
	}
	m.title = t
	return tea.SetWindowTitle(t)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.syncTitle())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = readyMessage
		}
		return nil
	case watchMsg:
		m.onDiskChange(watch.Event(msg))
		return waitWatch(m.opts.Watcher.Events())
	case tea.MouseMsg:
		return m.mouse(msg)
	case tea.KeyMsg:
		if m.opts.Verbose {
			m.logf("key: %q focus=%d", msg.String(), m.ui.Focus)
		}
		return m.keyPress(msg)
	}
	if t := m.top(); t != nil {
		_, cmd := t.d.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) keyPress(msg tea.KeyMsg) tea.Cmd {
	if t := m.top(); t != nil {
		return m.dialogKey(t, msg)
	}
	switch m.ui.Focus {
	case state.MENU:
		id := m.menu.Update(msg)
		if !m.menu.IsOpen() {
			m.ui = state.SetFocus(m.ui, state.EDITOR)
		}
		if id != "" {
			return m.trigger(id)
		}
		return nil
	case state.CHANGES, state.HELP:
		return m.overlayKey(msg)
	}

	k := msg.String()
	if k == "f10" {
		m.menu.Open(0)
	}
	if k == "f10" || m.menu.OpenHotkey(k) {
		m.ui = state.SetFocus(m.ui, state.MENU)
		return nil
	}
	if a, ok := m.matchAction(msg); ok {
		return m.trigger(a.id)
	}
	if m.ed.HandleKey(msg) {
		m.edited()
	}
	return nil
}

// edited refreshes the modified flag after the buffer changed.
func (m *Model) edited() {
	m.doc.SetModified(m.ed.Text() != m.doc.Pristine())
}

func (m *Model) overlayKey(msg tea.KeyMsg) tea.Cmd {
	page := max(m.bodyHeight()-1, 1)
	last := max(len(m.overlayLines())-m.bodyHeight(), 0)
	switch msg.String() {
	case "esc", "q", "ctrl+d", "f1":
		m.ui = state.SetFocus(m.ui, state.EDITOR)
	case "v":
		if m.ui.Focus == state.CHANGES {
			m.ui = state.ToggleView(m.ui)
		}
	case "w":
		if m.ui.Focus == state.CHANGES {
			m.ui = state.ToggleWrap(m.ui)
		}
	case "down", "j":
		m.ui = state.ScrollDown(m.ui, 1, last)
	case "up", "k":
		m.ui = state.ScrollUp(m.ui, 1)
	case "pgdown", " ":
		m.ui = state.ScrollDown(m.ui, page, last)
	case "pgup":
		m.ui = state.ScrollUp(m.ui, page)
	case "home", "g":
		m.ui = state.ScrollUp(m.ui, m.ui.ScrollV)
	}
	return nil
}

func (m *Model) dialogKey(t *modal, msg tea.KeyMsg) tea.Cmd {
	act, cmd := t.d.Update(msg)
	switch act {
	case dialog.Close:
		if t.purpose == forSaveAs {
			m.afterSave = nil
		}
		m.pop()
	case dialog.Answered:
		a := t.d.Answer()
		m.pop()
		return tea.Batch(cmd, m.resolve(a))
	case dialog.Submit:
		path, p := t.d.Path(), t.purpose
		m.pop()
		if p == forOpen {
			return tea.Batch(cmd, m.load(path))
		}
		return tea.Batch(cmd, m.saveAs(path))
	case dialog.FindNext:
		return tea.Batch(cmd, m.find(t.d))
	case dialog.ReplaceOne:
		return tea.Batch(cmd, m.replaceOne(t.d))
	case dialog.ReplaceAll:
		return tea.Batch(cmd, m.replaceAll(t.d))
	}
	return cmd
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	if len(m.modals) > 0 || m.ui.Focus == state.CHANGES || m.ui.Focus == state.HELP {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ed.Scroll(-3)
		return nil
	case tea.MouseButtonWheelDown:
		m.ed.Scroll(3)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.menu.IsOpen() {
		if id, hit := m.menu.HitItem(msg.X, msg.Y-2); hit {
			if !m.menu.IsOpen() {
				m.ui = state.SetFocus(m.ui, state.EDITOR)
			}
			if id != "" {
				return m.trigger(id)
			}
			return nil
		}
	}
	switch y := msg.Y; {
	case y == 1:
		if i := m.menu.Hit(msg.X); i >= 0 {
			m.menu.Open(i)
			m.ui = state.SetFocus(m.ui, state.MENU)
			return nil
		}
	case y == 2 && m.ui.Toolbar:
		m.closeMenu()
		if id, ok := m.tools.Hit(msg.X); ok {
			return m.trigger(id)
		}
		return nil
	case y >= m.editorTop() && y < m.editorTop()+m.bodyHeight():
		m.closeMenu()
		m.ed.MoveToCell(msg.X, y-m.editorTop())
		return nil
	}
	m.closeMenu()
	return nil
}

func (m *Model) closeMenu() {
	if m.menu.IsOpen() {
		m.menu.Close()
		m.ui = state.SetFocus(m.ui, state.EDITOR)
	}
}

// editorTop is the first screen row of the editor pane.
func (m *Model) editorTop() int {
	if m.ui.Toolbar {
		return 3
	}
	return 2
}

func (m *Model) bodyHeight() int { return max(m.ui.Height-m.editorTop()-1, 1) }

func (m *Model) layout() { m.ed.SetSize(m.ui.Width, m.bodyHeight()) }

func (m *Model) overlayText() string {
	if m.ui.Focus == state.HELP {
		return helpoverlay.NewHelpOverlay().View("Keyboard shortcuts (esc to close)", m.helpSections())
	}
	return diff.NewDiffView().View(m.ui, m.doc.Pristine(), m.ed.Text())
}

func (m *Model) statusInfo() statusbar.Info {
	msg := m.status
	if m.ui.Focus == state.CHANGES && m.ui.Notice != "" {
		msg = m.ui.Notice
	}
	if m.ui.Focus == state.MENU {
		if it, ok := m.menu.Selected(); ok {
			msg = it.Tip
		}
	}
	start, end, _ := m.ed.SelectionRange()
	line, col := m.ed.Cursor()
	return statusbar.Info{
		Message: msg,
		Tags: util.ComputeTags(util.DocStatus{
			Modified: m.doc.Modified(),
			Profile:  profileLabel(m.doc.Profile()),
			Lines:    m.ed.LineCount(),
			Selected: end - start,
		}),
		Line:    line,
		Col:     col,
		NoColor: m.opts.NoColor,
	}
}

func profileLabel(p lexer.Profile) string {
	if p == lexer.None {
		return ""
	}
	return p.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.ui.Width
	var rows []string
	rows = append(rows, lipgloss.PlaceHorizontal(w, lipgloss.Center, titleStyle.Render(m.doc.Title())))
	rows = append(rows, m.menu.View(w, m.opts.NoColor))
	if m.ui.Toolbar {
		rows = append(rows, m.tools.View(w))
	}

	body := m.ed.View()
	if m.ui.Focus == state.CHANGES || m.ui.Focus == state.HELP {
		body = m.scrolled()
	}
	rows = append(rows, body)
	rows = append(rows, statusbar.NewStatusBar().View(m.ui, m.statusInfo()))
	screen := strings.Join(rows, "\n")

	if m.menu.IsOpen() {
		screen = overlay.Composite(m.menu.Dropdown(), screen, overlay.Left, overlay.Top, m.menu.DropdownX(), 2)
	}
	if t := m.top(); t != nil {
		screen = overlay.Composite(t.d.View(), screen, overlay.Center, overlay.Center, 0, 0)
	}
	return screen
}

// overlayLines is the help or changes text split into screen rows, wrapped
// to the window width when wrapping is on.
func (m *Model) overlayLines() []string {
	text := strings.TrimRight(m.overlayText(), "\n")
	if m.ui.Wrap && m.ui.Width > 0 {
		text = lipgloss.NewStyle().Width(m.ui.Width).Render(text)
	}
	return strings.Split(text, "\n")
}

// scrolled cuts the overlay rows to the body area at the scroll offset.
func (m *Model) scrolled() string {
	lines := m.overlayLines()
	h := m.bodyHeight()
	start := min(m.ui.ScrollV, max(len(lines)-1, 0))
	lines = lines[start:]
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, l := range lines {
		if m.ui.Width > 0 && lipgloss.Width(l) > m.ui.Width {
			l = lipgloss.NewStyle().MaxWidth(m.ui.Width).Render(l)
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n")
}

func (m *Model) about() tea.Cmd {
	v := m.opts.Version
	if v == "" {
		v = "dev"
	}
	m.Warn("About "+document.AppName, fmt.Sprintf("%s %s\n\nA small text editor for the terminal with\nsyntax highlighting for C/C++, Java, Python,\nJavaScript, Verilog/VHDL and SQL.", document.AppName, v))
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	m.ui = state.SetFocus(m.ui, state.HELP)
	return nil
}

func (m *Model) showChanges() tea.Cmd {
	m.ui = state.Resize(state.ClearNotice(state.SetFocus(m.ui, state.CHANGES)), m.ui.Width, m.ui.Height)
	return nil
}

func (m *Model) toggleLineNumbers() tea.Cmd {
	m.ed.ToggleLineNumbers()
	return nil
}

func (m *Model) toggleWrap() tea.Cmd {
	m.ed.ToggleWrap()
	if m.ed.Wrap() {
		return m.flash("Word wrap on")
	}
	return m.flash("Word wrap off")
}

func (m *Model) toggleToolbar() tea.Cmd {
	m.ui = state.ToggleToolbar(m.ui)
	m.layout()
	return nil
}
