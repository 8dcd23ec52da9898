package render

import "strings"

// Style identifies how an entry label is presented.
type Style int

const (
	// StylePlain is used for files without a recognized extension.
	StylePlain Style = iota
	// StyleDirectory marks directories.
	StyleDirectory
	// StyleRust marks Rust source files.
	StyleRust
	// StyleText marks plain text files.
	StyleText
)

const (
	rustExtension = "rs"
	textExtension = "txt"
	extensionDot  = "."
)

var extensionStyles = map[string]Style{
	rustExtension: StyleRust,
	textExtension: StyleText,
}

// Classify maps an entry kind and extension (without the leading dot) to a style.
func Classify(isDirectory bool, extension string) Style {
	if isDirectory {
		return StyleDirectory
	}
	if style, known := extensionStyles[extension]; known {
		return style
	}
	return StylePlain
}

// entryExtension returns the extension of an entry name without the dot.
// A single leading dot starts a hidden name rather than an extension.
func entryExtension(entryName string) string {
	dotIndex := strings.LastIndex(entryName, extensionDot)
	if dotIndex <= 0 {
		return ""
	}
	return entryName[dotIndex+1:]
}

func (style Style) String() string {
	switch style {
	case StyleDirectory:
		return "directory"
	case StyleRust:
		return "rust"
	case StyleText:
		return "text"
	default:
		return "plain"
	}
}
