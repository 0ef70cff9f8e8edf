package util

import (
    "textino/internal/tui/state"
)

// DocStatus is the document information the status chips are built from.
type DocStatus struct {
    Modified bool
    Profile  string
    Lines    int
    Selected int // selected runes, 0 when nothing is selected
}

// ComputeTags returns the status chips for d in a stable order:
//   Modified|Saved, Profile, Lines, Selection
//
// Exactly one of Modified and Saved is present. Selection only appears when
// something is selected.
func ComputeTags(d DocStatus) []state.Tag {
    tags := make([]state.Tag, 0, 4)
    if d.Modified {
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
    } else {
        tags = append(tags, state.Tag{Kind: state.SAVED})
    }
    if d.Profile != "" {
        tags = append(tags, state.Tag{Kind: state.PROFILE, Label: d.Profile})
    }
    tags = append(tags, state.Tag{Kind: state.LINES, Value: d.Lines})
    if d.Selected > 0 {
        tags = append(tags, state.Tag{Kind: state.SELECTION, Value: d.Selected})
    }
    return tags
}
