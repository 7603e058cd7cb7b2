package document

import (
	"regexp"
	"strings"
)

// Line-oriented extraction patterns. Extraction is targeted pattern
// matching, not a full AsciiDoc parse: unmatched or malformed lines are
// simply not extracted.
var (
	// identifierPattern matches explicit id declarations such as
	// [id='installing-{context}'] or [id="foo"].
	identifierPattern = regexp.MustCompile(`^\[id=(['"])(.*?)(['"])\]`)

	// headingPattern matches section titles: one or more '=' markers,
	// whitespace, then the title text.
	headingPattern = regexp.MustCompile(`^=+\s+(\S.*)$`)

	// stepPattern matches ordered-list items, which modular docs use for
	// procedure steps: one or more '.' markers, whitespace, content.
	stepPattern = regexp.MustCompile(`^\.+\s+\S`)

	// attributePattern matches attribute definitions such as
	// :context: installing. Group 1 is the name, group 2 the value.
	attributePattern = regexp.MustCompile(`^:([A-Za-z0-9_][A-Za-z0-9_-]*):\s*(.*)$`)
)

// ExtractIdentifiers returns every quoted identifier declared in the
// content, in order of appearance. Duplicates are preserved as distinct
// elements; rules that need set semantics deduplicate themselves.
func ExtractIdentifiers(content string) []string {
	var ids []string
	for _, line := range strings.Split(content, "\n") {
		m := identifierPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Require matching quote styles; [id='foo"] is malformed.
		if m[1] != m[3] {
			continue
		}
		ids = append(ids, m[2])
	}
	return ids
}

// ExtractHeadings returns every heading title in the content, in order of
// appearance.
func ExtractHeadings(content string) []string {
	var titles []string
	for _, line := range strings.Split(content, "\n") {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		titles = append(titles, strings.TrimSpace(m[1]))
	}
	return titles
}

// HasSteps reports whether at least one line is a step marker.
func HasSteps(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if stepPattern.MatchString(line) {
			return true
		}
	}
	return false
}

// ExtractAttribute returns the value of the named attribute definition.
// When the attribute is defined more than once the last definition wins.
// The boolean reports whether any definition was found, even an empty one.
func ExtractAttribute(content, name string) (string, bool) {
	value := ""
	found := false
	for _, line := range strings.Split(content, "\n") {
		m := attributePattern.FindStringSubmatch(line)
		if m == nil || m[1] != name {
			continue
		}
		value = strings.TrimSpace(m[2])
		found = true
	}
	return value, found
}
