package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	// ColorModeAuto enables color only for terminals.
	ColorModeAuto = "auto"
	// ColorModeAlways forces ANSI styling.
	ColorModeAlways = "always"
	// ColorModeNever disables ANSI styling.
	ColorModeNever = "never"

	noColorEnvironmentVariable = "NO_COLOR"
	invalidColorModeFormat     = "invalid color mode %q; accepted values: auto, always, never"
)

// Palette turns styles into optionally colorized labels.
type Palette struct {
	colors map[Style]*color.Color
}

// NewPalette builds the palette. When enabled is false labels are returned untouched.
func NewPalette(enabled bool) *Palette {
	colors := map[Style]*color.Color{
		StyleDirectory: color.New(color.FgBlue, color.Bold),
		StyleRust:      color.New(color.FgYellow),
		StyleText:      color.New(color.FgCyan),
		StylePlain:     color.New(color.FgGreen),
	}
	for _, styleColor := range colors {
		if enabled {
			styleColor.EnableColor()
		} else {
			styleColor.DisableColor()
		}
	}
	return &Palette{colors: colors}
}

// Paint renders text in the color assigned to style.
func (palette *Palette) Paint(style Style, text string) string {
	if palette == nil {
		return text
	}
	styleColor, found := palette.colors[style]
	if !found {
		return text
	}
	return styleColor.Sprint(text)
}

// ResolveColorEnabled decides whether output written to writer should be colorized.
func ResolveColorEnabled(mode string, writer io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorModeAlways:
		return true, nil
	case ColorModeNever:
		return false, nil
	case ColorModeAuto, "":
		if _, disabled := os.LookupEnv(noColorEnvironmentVariable); disabled {
			return false, nil
		}
		outputFile, isFile := writer.(*os.File)
		if !isFile {
			return false, nil
		}
		fileDescriptor := outputFile.Fd()
		return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor), nil
	default:
		return false, fmt.Errorf(invalidColorModeFormat, mode)
	}
}

// IsValidColorMode reports whether mode is one of the supported color modes.
func IsValidColorMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
		return true
	default:
		return false
	}
}
