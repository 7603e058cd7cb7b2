// Package document models an AsciiDoc source file under audit: its path,
// raw text, inferred type, and the semantic elements the conformance rules
// read (identifiers, headings, step markers, attribute definitions).
package document

import (
	"path/filepath"
	"strings"
)

// Document is a single source file loaded for checking.
//
// Content is computed lazily from Raw by stripping comments and is cached
// for the lifetime of the document (a single validation pass). Rules read
// documents but never mutate them.
type Document struct {
	// Path is the file path as given by the caller.
	Path string

	// Raw is the unmodified file text.
	Raw string

	docType Type
	typed   bool

	content  string
	stripped bool
}

// New creates a Document for the given path and raw text.
func New(path, raw string) *Document {
	return &Document{Path: path, Raw: raw}
}

// Type returns the document type inferred from the file name.
// The result is cached after the first call.
func (d *Document) Type() Type {
	if !d.typed {
		d.docType = Classify(d.Path)
		d.typed = true
	}
	return d.docType
}

// Content returns the comment-stripped text every extraction pass operates
// on. The result is cached after the first call.
func (d *Document) Content() string {
	if !d.stripped {
		d.content = StripComments(d.Raw)
		d.stripped = true
	}
	return d.content
}

// Lines returns the content split into lines.
func (d *Document) Lines() []string {
	return strings.Split(d.Content(), "\n")
}

// Identifiers returns every explicit identifier declared in the document,
// in order of appearance. Duplicates are preserved.
func (d *Document) Identifiers() []string {
	return ExtractIdentifiers(d.Content())
}

// Headings returns every heading title in the document, in order of
// appearance.
func (d *Document) Headings() []string {
	return ExtractHeadings(d.Content())
}

// HasSteps reports whether the document contains at least one step marker.
func (d *Document) HasSteps() bool {
	return HasSteps(d.Content())
}

// Attribute returns the value of the named attribute definition and whether
// it is defined at all. For repeated definitions the last one wins, matching
// how AsciiDoc resolves attributes.
func (d *Document) Attribute(name string) (string, bool) {
	return ExtractAttribute(d.Content(), name)
}

// AbsPath returns the document's absolute path, falling back to the raw
// path if it cannot be resolved.
func (d *Document) AbsPath() string {
	abs, err := filepath.Abs(d.Path)
	if err != nil {
		return d.Path
	}
	return abs
}
