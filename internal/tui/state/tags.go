package state

// TagKind enumerates the status chips shown on the right of the status bar.
type TagKind int

const (
    // Stable ordering for display: Modified/Saved, Profile, Lines, Selection
    MODIFIED TagKind = iota
    SAVED
    PROFILE
    LINES
    SELECTION
)

// Tag represents a single status chip. Value is used for numeric counters
// (line count, selected runes); Label carries text for PROFILE.
type Tag struct {
    Kind  TagKind
    Value int
    Label string
}
