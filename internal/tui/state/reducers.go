package state

// ToggleWrap flips the Wrap flag and returns a new state copy.
func ToggleWrap(s UIState) UIState {
    s.Wrap = !s.Wrap
    return s
}

// ToggleToolbar shows or hides the toolbar row.
func ToggleToolbar(s UIState) UIState {
    s.Toolbar = !s.Toolbar
    return s
}

// SetFocus moves keyboard focus. Leaving the changes or help view resets its
// scroll offset.
func SetFocus(s UIState, f Focus) UIState {
    if f != s.Focus && (s.Focus == CHANGES || s.Focus == HELP) {
        s.ScrollV = 0
    }
    s.Focus = f
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return Resize(s, s.Width, s.Height)
}

// Resize updates the size and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// ScrollDown moves the overlay view down by n rows, never past last.
func ScrollDown(s UIState, n, last int) UIState {
    s.ScrollV += n
    if s.ScrollV > last {
        s.ScrollV = last
    }
    if s.ScrollV < 0 {
        s.ScrollV = 0
    }
    return s
}

// ScrollUp moves the overlay view up by n rows.
func ScrollUp(s UIState, n int) UIState {
    if s.ScrollV >= n {
        s.ScrollV -= n
    } else {
        s.ScrollV = 0
    }
    return s
}

// ClearNotice drops the one-shot notice.
func ClearNotice(s UIState) UIState {
    s.Notice = ""
    return s
}
