package diff

import (
    "strings"
    "testing"

    "textino/internal/tui/state"
)

func TestUnifiedSnapshot(t *testing.T) {
    v := NewDiffView()
    s := state.UIState{View: state.Unified, Width: 80}
    out := v.View(s, "a\nb\nd", "a\nc\nd")
    if !strings.Contains(out, "SAVED vs BUFFER (Unified)") {
        t.Fatalf("missing unified header")
    }
    if !strings.Contains(out, "  a") || !strings.Contains(out, "- b") || !strings.Contains(out, "+ c") {
        t.Fatalf("expected context and +/- lines in unified output:\n%s", out)
    }
}

func TestUnifiedInsertOnly(t *testing.T) {
    out := NewDiffView().View(state.UIState{Width: 80}, "a", "a\nnew")
    if !strings.Contains(out, "+ new") || strings.Contains(out, "- ") {
        t.Fatalf("expected a pure insertion:\n%s", out)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    v := NewDiffView()
    s := state.UIState{View: state.SideBySide, Width: 60}
    out := v.View(s, "left", "right")
    if !strings.HasPrefix(out, "SAVED │ BUFFER\n") {
        t.Fatalf("missing sbs header")
    }
    if !strings.Contains(out, " │ ") {
        t.Fatalf("missing separator")
    }
}

func TestNoChanges(t *testing.T) {
    if out := NewDiffView().View(state.UIState{}, "same", "same"); out != "No changes\n" {
        t.Fatalf("unexpected %q", out)
    }
}
