package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "textino/internal/tui/state"
)

var (
    diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint       = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// op is one line of a line-level diff.
type op struct {
    kind dmp.Operation
    text string
}

// lineOps diffs before and after line by line.
func lineOps(before, after string) []op {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)
    var out []op
    for _, df := range diffs {
        text := strings.TrimSuffix(df.Text, "\n")
        for _, l := range strings.Split(text, "\n") {
            out = append(out, op{kind: df.Type, text: l})
        }
    }
    return out
}

// charSpans highlights what changed inside a replaced line pair.
func charSpans(bl, al string) (left, right string) {
    d := dmp.New()
    diffs := d.DiffMain(bl, al, false)
    d.DiffCleanupSemantic(diffs)
    var lbuf, rbuf strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            lbuf.WriteString(diffDelChar.Render(df.Text))
        case dmp.DiffInsert:
            rbuf.WriteString(diffAddChar.Render(df.Text))
        case dmp.DiffEqual:
            lbuf.WriteString(diffDelLine.Render(df.Text))
            rbuf.WriteString(diffAddLine.Render(df.Text))
        }
    }
    return lbuf.String(), rbuf.String()
}

// pairs walks ops and calls emit with the left/right line of each row.
// Adjacent delete/insert runs are paired so replaced lines line up.
func pairs(ops []op, emit func(kind dmp.Operation, left, right string, paired bool)) {
    for i := 0; i < len(ops); {
        if ops[i].kind == dmp.DiffEqual {
            emit(dmp.DiffEqual, ops[i].text, ops[i].text, false)
            i++
            continue
        }
        var dels, ins []string
        for i < len(ops) && ops[i].kind == dmp.DiffDelete {
            dels = append(dels, ops[i].text)
            i++
        }
        for i < len(ops) && ops[i].kind == dmp.DiffInsert {
            ins = append(ins, ops[i].text)
            i++
        }
        n := max(len(dels), len(ins))
        for j := 0; j < n; j++ {
            switch {
            case j < len(dels) && j < len(ins):
                emit(dmp.DiffDelete, dels[j], ins[j], true)
            case j < len(dels):
                emit(dmp.DiffDelete, dels[j], "", false)
            default:
                emit(dmp.DiffInsert, "", ins[j], false)
            }
        }
    }
}

// View renders the changes between the saved text and the buffer. For
// SideBySide it aligns two columns with a vertical separator; for Unified it
// prefixes lines with +/- markers.
func (DiffView) View(s state.UIState, saved, current string) string {
    if saved == current {
        return "No changes\n"
    }
    if s.View == state.SideBySide {
        return sideBySide(saved, current, s)
    }
    return unified(saved, current, s)
}

func unified(saved, current string, s state.UIState) string {
    var b strings.Builder
    b.WriteString("SAVED vs BUFFER (Unified)\n")
    width := 0
    if !s.Wrap {
        width = s.Width - 2
    }
    pairs(lineOps(saved, current), func(kind dmp.Operation, left, right string, paired bool) {
        switch {
        case kind == dmp.DiffEqual:
            b.WriteString("  " + faint.Render(clip(left, width, 0)) + "\n")
        case paired:
            l, r := charSpans(clip(left, width, 0), clip(right, width, 0))
            b.WriteString(diffDelLine.Render("- ") + l + "\n")
            b.WriteString(diffAddLine.Render("+ ") + r + "\n")
        case kind == dmp.DiffDelete:
            b.WriteString(diffDelLine.Render("- "+clip(left, width, 0)) + "\n")
        default:
            b.WriteString(diffAddLine.Render("+ "+clip(right, width, 0)) + "\n")
        }
    })
    return b.String()
}

func sideBySide(saved, current string, s state.UIState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("SAVED │ BUFFER\n")
    // Compute column width from total width if provided
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - len([]rune(sep))) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    text := colWidth - 2
    pairs(lineOps(saved, current), func(kind dmp.Operation, left, right string, paired bool) {
        left, right = clip(left, text, 0), clip(right, text, 0)
        var l, r string
        switch {
        case kind == dmp.DiffEqual:
            l, r = "  "+faint.Render(left), "  "+faint.Render(right)
        case paired:
            ls, rs := charSpans(left, right)
            l, r = diffDelLine.Render("- ")+ls, diffAddLine.Render("+ ")+rs
        case kind == dmp.DiffDelete:
            l = diffDelLine.Render("- " + left)
        default:
            r = diffAddLine.Render("+ " + right)
        }
        b.WriteString(pad(l, colWidth) + sep + r + "\n")
    })
    return b.String()
}

func clip(s string, width int, start int) string {
    runes := []rune(s)
    if start < 0 {
        start = 0
    }
    if start >= len(runes) {
        return ""
    }
    if width <= 0 {
        return string(runes[start:])
    }
    end := start + width
    if end > len(runes) {
        end = len(runes)
    }
    return string(runes[start:end])
}

func pad(s string, width int) string {
    if w := lipgloss.Width(s); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
