package menu

import (
    "strings"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "textino/internal/tui/util"
)

// Item is one entry of a dropdown. An empty ID is a separator.
type Item struct {
    ID    string
    Label string
    Key   string
    Tip   string
}

// Menu is a titled dropdown opened from the bar.
type Menu struct {
    Title  string
    Hotkey string
    Items  []Item
}

// Bar is the menu bar and at most one open dropdown.
type Bar struct {
    Menus   []Menu
    Enabled func(id string) bool

    open int
    sel  int
}

func New(menus ...Menu) Bar { return Bar{Menus: menus, open: -1} }

var (
    dropStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
    selStyle  = lipgloss.NewStyle().Reverse(true)
    offStyle  = lipgloss.NewStyle().Faint(true)
)

func (b *Bar) IsOpen() bool { return b.open >= 0 }

// Open shows menu i with its first usable item selected.
func (b *Bar) Open(i int) {
    if i < 0 || i >= len(b.Menus) {
        return
    }
    b.open, b.sel = i, -1
    b.moveSel(1)
}

func (b *Bar) Close() { b.open = -1 }

// OpenHotkey opens the menu whose hotkey is k.
func (b *Bar) OpenHotkey(k string) bool {
    for i, m := range b.Menus {
        if m.Hotkey == k {
            b.Open(i)
            return true
        }
    }
    return false
}

func (b *Bar) enabled(it Item) bool {
    return it.ID != "" && (b.Enabled == nil || b.Enabled(it.ID))
}

func (b *Bar) moveSel(dir int) {
    items := b.Menus[b.open].Items
    for n := 0; n < len(items); n++ {
        b.sel = (b.sel + dir + len(items)) % len(items)
        if b.enabled(items[b.sel]) {
            return
        }
    }
}

// Selected is the highlighted item of the open menu.
func (b *Bar) Selected() (Item, bool) {
    if !b.IsOpen() || b.sel < 0 || b.sel >= len(b.Menus[b.open].Items) {
        return Item{}, false
    }
    return b.Menus[b.open].Items[b.sel], true
}

// Update navigates the open menu. It returns the ID of an activated item;
// the bar closes on activation and on esc.
func (b *Bar) Update(msg tea.KeyMsg) string {
    if !b.IsOpen() {
        return ""
    }
    switch msg.String() {
    case "esc", "f10":
        b.Close()
    case "left":
        b.Open((b.open - 1 + len(b.Menus)) % len(b.Menus))
    case "right":
        b.Open((b.open + 1) % len(b.Menus))
    case "up":
        b.moveSel(-1)
    case "down":
        b.moveSel(1)
    case "enter", " ":
        if it, ok := b.Selected(); ok && b.enabled(it) {
            b.Close()
            return it.ID
        }
    default:
        b.OpenHotkey(msg.String())
    }
    return ""
}

// titleX is the column where menu i's title starts.
func (b *Bar) titleX(i int) int {
    x := 1
    for j := 0; j < i; j++ {
        x += len([]rune(b.Menus[j].Title)) + 2
    }
    return x
}

// Hit returns the menu whose title covers column x of the bar, or -1.
func (b *Bar) Hit(x int) int {
    for i, m := range b.Menus {
        start := b.titleX(i)
        if x >= start && x < start+len([]rune(m.Title))+2 {
            return i
        }
    }
    return -1
}

// HitItem returns the item under (x, y) of the dropdown, with y relative to
// the row below the bar.
func (b *Bar) HitItem(x, y int) (string, bool) {
    if !b.IsOpen() {
        return "", false
    }
    w := lipgloss.Width(b.Dropdown())
    ox := b.titleX(b.open) - 1
    items := b.Menus[b.open].Items
    i := y - 1
    if x < ox || x >= ox+w || i < 0 || i >= len(items) {
        return "", false
    }
    if !b.enabled(items[i]) {
        return "", true
    }
    b.Close()
    return items[i].ID, true
}

// View renders the bar row, width cells wide.
func (b *Bar) View(width int, noColor bool) string {
    var sb strings.Builder
    sb.WriteString(" ")
    for i, m := range b.Menus {
        t := " " + m.Title + " "
        if i == b.open {
            t = selStyle.Render(t)
        }
        sb.WriteString(t)
    }
    line := sb.String()
    if pad := width - lipgloss.Width(line); pad > 0 {
        line += strings.Repeat(" ", pad)
    }
    if util.NoColor(noColor) {
        return line
    }
    p := util.DefaultPalette()
    return lipgloss.NewStyle().Background(p.Bar).Foreground(p.BarText).Render(line)
}

// Dropdown renders the open menu's box, or "" when closed.
func (b *Bar) Dropdown() string {
    if !b.IsOpen() {
        return ""
    }
    items := b.Menus[b.open].Items
    lw, kw := 0, 0
    for _, it := range items {
        lw = max(lw, len([]rune(it.Label)))
        kw = max(kw, len([]rune(it.Key)))
    }
    rows := make([]string, len(items))
    for i, it := range items {
        if it.ID == "" {
            rows[i] = strings.Repeat("─", lw+kw+4)
            continue
        }
        row := " " + it.Label + strings.Repeat(" ", lw-len([]rune(it.Label))+2) +
            strings.Repeat(" ", kw-len([]rune(it.Key))) + it.Key + " "
        switch {
        case i == b.sel:
            row = selStyle.Render(row)
        case !b.enabled(it):
            row = offStyle.Render(row)
        }
        rows[i] = row
    }
    return dropStyle.Render(strings.Join(rows, "\n"))
}

// DropdownX is the column the dropdown box starts at.
func (b *Bar) DropdownX() int {
    if !b.IsOpen() {
        return 0
    }
    return b.titleX(b.open) - 1
}
