package state

import "testing"

func TestToggleWrap(t *testing.T) {
    s := UIState{Wrap: false}
    s = ToggleWrap(s)
    if !s.Wrap { t.Fatalf("expected Wrap to be true") }
}

func TestToggleToolbar(t *testing.T) {
    s := UIState{Toolbar: true}
    s = ToggleToolbar(s)
    if s.Toolbar { t.Fatalf("expected toolbar hidden") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified, Width: 120, MinCol: 20}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestToggleViewTooNarrowStaysUnified(t *testing.T) {
    s := UIState{View: Unified, Width: 30, MinCol: 20}
    s = ToggleView(s)
    if s.View != Unified { t.Fatalf("expected Unified when too narrow") }
    if s.Notice == "" { t.Fatalf("expected fallback notice") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
    if s.Height != 10 { t.Fatalf("expected height recorded") }
}

func TestScrolls(t *testing.T) {
    s := UIState{}
    s = ScrollDown(s, 8, 5)
    if s.ScrollV != 5 { t.Fatalf("expected scroll clamped to 5, got %d", s.ScrollV) }
    s = ScrollUp(s, 8)
    if s.ScrollV != 0 { t.Fatalf("expected scroll to return to 0") }
}

func TestSetFocusResetsScroll(t *testing.T) {
    s := UIState{Focus: CHANGES, ScrollV: 4}
    s = SetFocus(s, EDITOR)
    if s.Focus != EDITOR || s.ScrollV != 0 { t.Fatalf("expected editor focus and reset scroll") }
}
