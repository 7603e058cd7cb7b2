package docfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Format
	}{
		{"adoc extension", "proc_install.adoc", "= Title", AsciiDoc},
		{"asciidoc extension", "notes.asciidoc", "= Title", AsciiDoc},
		{"xml extension", "book.xml", "<book/>", DocBook},
		{"extension wins over content", "book.adoc", "<?xml version=\"1.0\"?>", AsciiDoc},
		{"xml declaration sniffed", "mystery", "<?xml version=\"1.0\"?><book/>", DocBook},
		{"doctype sniffed", "mystery", "<!DOCTYPE book PUBLIC \"-//OASIS//DTD DocBook\">", DocBook},
		{"plain text unknown", "mystery", "just some words", UnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.path, []byte(tt.content)))
		})
	}
}

func TestFormatExtensions(t *testing.T) {
	assert.Equal(t, []string{".adoc"}, AsciiDoc.Extensions())
	assert.Equal(t, []string{".xml"}, DocBook.Extensions())
	assert.Nil(t, UnknownFormat.Extensions())
}
