package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"textino/internal/search"
	"textino/internal/tui/widgets/dialog"
)

func (m *Model) openFind() tea.Cmd {
	q := m.lastQuery
	if s := m.ed.SelectedText(); s != "" && !strings.ContainsRune(s, '\n') {
		q = s
	}
	m.push(dialog.NewFind(q, m.searchOpt), forSearch)
	return nil
}

func (m *Model) openReplace() tea.Cmd {
	q := m.lastQuery
	if s := m.ed.SelectedText(); s != "" && !strings.ContainsRune(s, '\n') {
		q = s
	}
	m.push(dialog.NewReplace(q, m.lastRepl, m.searchOpt), forSearch)
	return nil
}

func (m *Model) remember(d *dialog.Dialog) {
	m.lastQuery = d.Query()
	m.searchOpt = d.Options()
	if d.Kind() == dialog.Replace {
		m.lastRepl = d.Replacement()
	}
}

// findAgain repeats the last search without a dialog.
func (m *Model) findAgain() tea.Cmd {
	if _, ok := m.findNext(m.lastQuery, m.searchOpt); !ok {
		return m.flash(notFound(m.lastQuery))
	}
	return nil
}

func (m *Model) find(d *dialog.Dialog) tea.Cmd {
	m.remember(d)
	if _, ok := m.findNext(m.lastQuery, m.searchOpt); !ok {
		d.SetStatus(notFound(m.lastQuery))
		return m.flash(notFound(m.lastQuery))
	}
	d.SetStatus("")
	return nil
}

func notFound(q string) string { return fmt.Sprintf("Cannot find %q", q) }

// findNext selects the next match of q after the selection (or before it
// when searching backward).
func (m *Model) findNext(q string, o search.Options) (int, bool) {
	from := m.ed.CursorOffset()
	if start, end, ok := m.ed.SelectionRange(); ok {
		from = end
		if o.Backward {
			from = start
		}
	}
	i := search.Find(m.ed.Text(), q, from, o)
	if i < 0 {
		return -1, false
	}
	m.ed.Select(i, i+len([]rune(q)))
	return i, true
}

// replaceOne replaces the selected match, if the selection is one, and
// moves on to the next match.
func (m *Model) replaceOne(d *dialog.Dialog) tea.Cmd {
	m.remember(d)
	q, r, o := m.lastQuery, m.lastRepl, m.searchOpt
	if start, end, ok := m.ed.SelectionRange(); ok && end-start == len([]rune(q)) {
		if _, hit := search.Replace(m.ed.Text(), q, r, start, o); hit {
			m.ed.ReplaceSelection(r)
			m.edited()
			if o.Backward {
				m.ed.SetCursorOffset(start)
			}
		}
	}
	if _, ok := m.findNext(q, o); !ok {
		d.SetStatus(notFound(q))
		return m.flash(notFound(q))
	}
	d.SetStatus("")
	return nil
}

func (m *Model) replaceAll(d *dialog.Dialog) tea.Cmd {
	m.remember(d)
	text, n := search.ReplaceAll(m.ed.Text(), m.lastQuery, m.lastRepl, m.searchOpt)
	if n == 0 {
		d.SetStatus(notFound(m.lastQuery))
		return m.flash(notFound(m.lastQuery))
	}
	m.ed.ApplyText(text)
	m.edited()
	msg := fmt.Sprintf("Replaced %d occurrence(s)", n)
	d.SetStatus(msg)
	return m.flash(msg)
}
