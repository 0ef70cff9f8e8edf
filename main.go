// Copyright
// SPDX-License-Identifier: MIT
// textino: a syntax-highlighting text editor for the terminal
package main

import (
    "errors"
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    tea "github.com/charmbracelet/bubbletea"

    "textino/internal/clip"
    "textino/internal/config"
    "textino/internal/lexer"
    "textino/internal/tui"
    "textino/internal/tui/widgets/editor"
    "textino/internal/watch"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) > 1 {
        switch os.Args[1] {
        case "help", "-h", "--help":
            if len(os.Args) > 2 {
                helpTopic(os.Args[2])
            } else {
                usage()
            }
            return
        case "version", "--version":
            fmt.Println("textino", Version)
            return
        case "init":
            cmdInit()
            return
        case "lexers":
            cmdLexers()
            return
        }
    }
    if err := cmdEdit(os.Args[1:]); err != nil {
        fmt.Fprintln(os.Stderr, "textino:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Println(`textino ` + Version + `
A text editor for the terminal with syntax highlighting, find/replace and undo.
USAGE
  textino [--config PATH] [--log-file PATH] [-v] [--no-color] [FILE]
  textino <command>
COMMANDS
  init         Write the default settings file (never overwrites)
  lexers       List the highlighting profiles and their file extensions
  help         Show help (try: textino help keys)
  version      Print version
NOTES
  • FILE is opened when it exists; otherwise it names the new buffer and is created on the first save.
  • Use ./help to open a file that is literally called "help".
  • Logs are discarded unless --log-file is given; -v adds a line per key press.
`)
}

func helpTopic(name string) {
    switch name {
    case "keys":
        fmt.Println(`KEYS
  File     ctrl+n new   ctrl+o open   ctrl+s save   ctrl+shift+s / alt+s save as   ctrl+w / ctrl+q exit
  Edit     ctrl+x cut   ctrl+c copy   ctrl+v paste   ctrl+z undo   ctrl+y / ctrl+shift+z redo   ctrl+a select all
           ctrl+space set mark   shift+arrows extend selection   tab/enter accept completion
  Search   ctrl+f find   f3 find next   ctrl+r replace
  View     ctrl+d unsaved changes   ctrl+l line numbers   ctrl+t toolbar   alt+z word wrap   f1 keys
  Menus    f10 or alt+f / alt+e / alt+r / alt+v / alt+h
Without a selection, cut and copy act on the current line.`)
    case "config":
        path, _ := config.DefaultPath()
        fmt.Println(`SETTINGS
  File: ` + path + ` (override with --config PATH)
  style           chroma style name (default: github)
  comment_color   color of comments in highlighted files (default: #a0a0a4)
  tab_width       1..16 (default: 4)
  margin_width    line number margin, 2..12 (default: 5)
  history_limit   undo steps kept, 0 = unlimited (default: 200)
  line_numbers    show the margin (default: true)
  caret_line      highlight the cursor line (default: true)
  toolbar         show the toolbar (default: true)
  word_wrap       wrap long lines at word boundaries (default: true)
  indent_guides   draw guides inside leading whitespace (default: true)
  auto_complete   offer words from the document while typing (default: true)
A missing file means defaults. 'textino init' writes one to edit.`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func configPath(flagValue string) (string, error) {
    if flagValue != "" {
        return flagValue, nil
    }
    return config.DefaultPath()
}

func cmdInit() {
    fs := flag.NewFlagSet("init", flag.ExitOnError)
    cfgPath := fs.String("config", "", "Settings file to write")
    _ = fs.Parse(os.Args[2:])
    path, err := configPath(*cfgPath)
    if err != nil {
        fmt.Fprintln(os.Stderr, "textino:", err)
        os.Exit(1)
    }
    if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
        fmt.Println(path, "already exists; not overwriting")
        return
    }
    if err := config.Save(path, config.Default()); err != nil {
        fmt.Fprintln(os.Stderr, "textino:", err)
        os.Exit(1)
    }
    fmt.Println("Wrote", path)
}

func cmdLexers() {
    fmt.Println("Highlighting profiles (extensions are case-sensitive):")
    for _, in := range lexer.Profiles() {
        fmt.Printf("  %-12s %s\n", in.Profile, strings.Join(in.Extensions, " "))
    }
    fmt.Println("Any other extension opens as plain text.")
}

func cmdEdit(args []string) error {
    fs := flag.NewFlagSet("textino", flag.ContinueOnError)
    cfgPath := fs.String("config", "", "Settings file (default: user config dir)")
    logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
    verbose := fs.Bool("v", false, "Log every key press")
    noColor := fs.Bool("no-color", false, "Disable colors in the status bar and menus")
    fs.Usage = usage
    if err := fs.Parse(args); err != nil {
        if errors.Is(err, flag.ErrHelp) {
            return nil
        }
        return err
    }
    if fs.NArg() > 1 {
        return fmt.Errorf("expected at most one FILE, got %d", fs.NArg())
    }

    logf := func(string, ...any) {}
    if *logPath != "" {
        if dir := filepath.Dir(*logPath); dir != "." && dir != "" {
            _ = os.MkdirAll(dir, 0o755)
        }
        f, err := tea.LogToFile(*logPath, "textino")
        if err != nil {
            return fmt.Errorf("log file: %w", err)
        }
        defer f.Close()
        logf = log.Printf
        logf("=== textino %s started ===", Version)
    }

    path, err := configPath(*cfgPath)
    if err != nil {
        return err
    }
    cfg, err := config.Load(path)
    if err != nil {
        return fmt.Errorf("%s: %w", path, err)
    }

    var cb editor.Clipboard = clip.System{}
    if !clip.Available() {
        logf("no system clipboard; using an in-process one")
        cb = &clip.Memory{}
    }

    w, err := watch.New(logf)
    if err != nil {
        logf("%v; external changes will not be noticed", err)
    } else {
        defer w.Close()
    }

    return tui.Run(tui.Options{
        Config:    cfg,
        Clipboard: cb,
        Watcher:   w,
        Version:   Version,
        Verbose:   *verbose,
        NoColor:   *noColor,
        Logf:      logf,
    }, fs.Arg(0))
}
