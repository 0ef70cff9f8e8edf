package state

// Focus is the part of the window that receives keys.
type Focus int

const (
    EDITOR Focus = iota
    MENU
    DIALOG
    CHANGES
    HELP
)

// DiffMode controls how the changes view is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by the status bar, the changes
// view and the layout.
type UIState struct {
    Focus Focus

    // Layout
    Width   int
    Height  int
    Toolbar bool

    // Changes view
    View    DiffMode
    Wrap    bool
    MinCol  int
    ScrollV int

    // Notices and ephemeral messages
    Notice string
}
