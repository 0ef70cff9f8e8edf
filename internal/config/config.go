package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
)

// Config holds appearance and behaviour settings read at startup.
// Zero values are replaced by Default() values in Load.
type Config struct {
    Style        string `json:"style,omitempty"`         // chroma style name
    CommentColor string `json:"comment_color,omitempty"` // muted color for comment tokens
    TabWidth     int    `json:"tab_width,omitempty"`
    MarginWidth  int    `json:"margin_width,omitempty"` // line-number margin, in cells
    HistoryLimit *int   `json:"history_limit,omitempty"` // 0 keeps every step
    LineNumbers  *bool  `json:"line_numbers,omitempty"`
    CaretLine    *bool  `json:"caret_line,omitempty"`
    Toolbar      *bool  `json:"toolbar,omitempty"`
    WordWrap     *bool  `json:"word_wrap,omitempty"`
    IndentGuides *bool  `json:"indent_guides,omitempty"`
    AutoComplete *bool  `json:"auto_complete,omitempty"`
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

// Default mirrors the stock editor look: numbered margin, highlighted caret
// line, gray comments, word wrap, indentation guides and completion.
func Default() *Config {
    return &Config{
        Style:        "github",
        CommentColor: "#a0a0a4",
        TabWidth:     4,
        MarginWidth:  5,
        HistoryLimit: intPtr(200),
        LineNumbers:  boolPtr(true),
        CaretLine:    boolPtr(true),
        Toolbar:      boolPtr(true),
        WordWrap:     boolPtr(true),
        IndentGuides: boolPtr(true),
        AutoComplete: boolPtr(true),
    }
}

// DefaultPath is $XDG_CONFIG_HOME/textino/config.json (or the OS equivalent).
func DefaultPath() (string, error) {
    dir, err := os.UserConfigDir()
    if err != nil {
        return "", fmt.Errorf("config dir: %w", err)
    }
    return filepath.Join(dir, "textino", "config.json"), nil
}

// Load reads path and fills unset fields from Default. A missing file is not
// an error: the defaults are returned.
func Load(path string) (*Config, error) {
    c := &Config{}
    data, err := os.ReadFile(path)
    switch {
    case errors.Is(err, fs.ErrNotExist):
        return Default(), nil
    case err != nil:
        return nil, fmt.Errorf("read config: %w", err)
    }
    if err := json.Unmarshal(data, c); err != nil {
        return nil, fmt.Errorf("parse config JSON: %w", err)
    }
    c.fill(Default())
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

func (c *Config) fill(d *Config) {
    if c.Style == "" {
        c.Style = d.Style
    }
    if c.CommentColor == "" {
        c.CommentColor = d.CommentColor
    }
    if c.TabWidth == 0 {
        c.TabWidth = d.TabWidth
    }
    if c.MarginWidth == 0 {
        c.MarginWidth = d.MarginWidth
    }
    if c.HistoryLimit == nil {
        c.HistoryLimit = d.HistoryLimit
    }
    if c.LineNumbers == nil {
        c.LineNumbers = d.LineNumbers
    }
    if c.CaretLine == nil {
        c.CaretLine = d.CaretLine
    }
    if c.Toolbar == nil {
        c.Toolbar = d.Toolbar
    }
    if c.WordWrap == nil {
        c.WordWrap = d.WordWrap
    }
    if c.IndentGuides == nil {
        c.IndentGuides = d.IndentGuides
    }
    if c.AutoComplete == nil {
        c.AutoComplete = d.AutoComplete
    }
}

func (c *Config) Validate() error {
    if c.TabWidth < 1 || c.TabWidth > 16 {
        return fmt.Errorf("config: tab_width %d out of range 1..16", c.TabWidth)
    }
    if c.MarginWidth < 2 || c.MarginWidth > 12 {
        return fmt.Errorf("config: margin_width %d out of range 2..12", c.MarginWidth)
    }
    if c.HistoryLimit != nil && *c.HistoryLimit < 0 {
        return fmt.Errorf("config: history_limit must not be negative")
    }
    return nil
}

func (c *Config) ShowLineNumbers() bool { return c.LineNumbers == nil || *c.LineNumbers }
func (c *Config) ShowCaretLine() bool   { return c.CaretLine == nil || *c.CaretLine }
func (c *Config) ShowToolbar() bool     { return c.Toolbar == nil || *c.Toolbar }
func (c *Config) Wrap() bool            { return c.WordWrap == nil || *c.WordWrap }
func (c *Config) Guides() bool          { return c.IndentGuides == nil || *c.IndentGuides }
func (c *Config) Complete() bool        { return c.AutoComplete == nil || *c.AutoComplete }

// UndoLimit is the number of undo steps to keep; 0 means no limit.
func (c *Config) UndoLimit() int {
    if c.HistoryLimit == nil {
        return *Default().HistoryLimit
    }
    return *c.HistoryLimit
}

// Save writes c as indented JSON, creating the parent directory.
func Save(path string, c *Config) error {
    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return err
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return fmt.Errorf("create config dir: %w", err)
    }
    return os.WriteFile(path, append(data, '\n'), 0644)
}
