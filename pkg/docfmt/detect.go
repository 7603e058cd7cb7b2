// Package docfmt detects the source format of a documentation file.
// It uses go-enry to classify content when the extension alone is not
// decisive, so the link checker can pick the right extraction path
// (plain AsciiDoc scan vs XML include expansion).
package docfmt

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Format is a detected source format.
type Format string

const (
	// AsciiDoc is lightly structured text markup.
	AsciiDoc Format = "asciidoc"

	// DocBook is XML markup requiring include expansion before link
	// extraction.
	DocBook Format = "docbook"

	// UnknownFormat is anything else.
	UnknownFormat Format = "unknown"
)

// Extensions returns the file extensions conventionally used by the
// format, lowercase with leading dot.
func (f Format) Extensions() []string {
	switch f {
	case AsciiDoc:
		return []string{".adoc"}
	case DocBook:
		return []string{".xml"}
	default:
		return nil
	}
}

// Detect classifies a file by its name and content. The extension is
// authoritative when recognized; otherwise the content classifier
// decides.
func Detect(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".adoc", ".asciidoc":
		return AsciiDoc
	case ".xml":
		return DocBook
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	switch lang {
	case "AsciiDoc":
		return AsciiDoc
	case "XML":
		return DocBook
	}

	// Fall back on a cheap structural sniff; enry is conservative for
	// short snippets.
	trimmed := strings.TrimLeft(string(content), " \t\r\n")
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<!DOCTYPE") {
		return DocBook
	}

	return UnknownFormat
}
