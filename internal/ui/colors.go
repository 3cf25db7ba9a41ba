package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var Green = color.New(color.FgGreen).SprintFunc()
var HiCyan = color.New(color.FgHiCyan).SprintFunc()
var Red = color.New(color.FgRed).SprintFunc()
var Bold = color.New(color.Bold).SprintFunc()
var Blue = color.New(color.FgBlue).SprintFunc()
var Grey = color.New(color.FgHiBlack).SprintFunc()
var Yellow = color.New(color.FgYellow).SprintFunc()

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorsEnabled resolves a --color mode. "auto" enables colours only when f
// is a terminal.
func ColorsEnabled(mode string, f *os.File) bool {
	switch mode {
	case ColorAlways, "on":
		return true
	case ColorNever, "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// SetColors switches the palette on or off for the whole process.
func SetColors(enabled bool) {
	color.NoColor = !enabled
}

// Bool renders a boolean as a coloured true/false.
func Bool(v bool) string {
	if v {
		return Green("true")
	}
	return Red("false")
}
