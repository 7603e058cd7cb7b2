package document

import "strings"

// Comment markers in AsciiDoc source.
const (
	// blockCommentDelimiter opens and closes a comment block when it is
	// the only content on a line.
	blockCommentDelimiter = "////"

	// lineCommentMarker starts a line comment when followed by whitespace.
	lineCommentMarker = "//"
)

// StripComments removes comment blocks and line comments from raw document
// text, producing the logical content stream the extractors operate on.
// Commented-out markup must never be mistaken for real structure or links.
//
// Section ordering is preserved; exact line numbering is not guaranteed.
// The operation is idempotent: stripping already-stripped content is a
// no-op.
func StripComments(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))

	inBlock := false
	for _, line := range lines {
		if strings.TrimSpace(line) == blockCommentDelimiter {
			inBlock = !inBlock
			continue
		}
		if inBlock {
			continue
		}
		if isLineComment(line) {
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// isLineComment reports whether the line is a "// " style comment. A bare
// "//" with no trailing content also counts; "//no space" does not, since
// AsciiDoc treats it as ordinary text in several contexts and the original
// never stripped it.
func isLineComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, lineCommentMarker) {
		return false
	}
	rest := trimmed[len(lineCommentMarker):]
	if rest == "" {
		return true // bare "//"
	}
	return rest[0] == ' ' || rest[0] == '\t'
}
