package document

import (
	"path/filepath"
	"strings"
)

// Type classifies a document by the naming convention of its file.
type Type int

// Document types, in the order the classifier checks them.
const (
	// Unknown is any file whose name matches no convention.
	Unknown Type = iota

	// Concept documents explain background (prefix "con_").
	Concept

	// Reference documents list facts (prefix "ref_").
	Reference

	// Procedure documents describe numbered steps (prefix "proc_").
	Procedure

	// Assembly documents stitch modules together (prefix "assembly_").
	Assembly

	// Master is the book entry point (exact name "master.<ext>").
	Master

	// Attributes is a shared attribute-definition file
	// ("attributes.<ext>" or "local-attributes.<ext>").
	Attributes
)

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case Concept:
		return "concept"
	case Reference:
		return "reference"
	case Procedure:
		return "procedure"
	case Assembly:
		return "assembly"
	case Master:
		return "master"
	case Attributes:
		return "attributes"
	default:
		return "unknown"
	}
}

// typePrefixes maps explicit file-name prefixes to document types.
// Checked in declaration order before the special-name forms.
var typePrefixes = []struct {
	prefix string
	t      Type
}{
	{"con_", Concept},
	{"ref_", Reference},
	{"proc_", Procedure},
	{"assembly_", Assembly},
}

// Classify infers the document type from a file name. The directory part
// is ignored; classification is a pure function of the base name.
func Classify(path string) Type {
	base := filepath.Base(path)

	for _, p := range typePrefixes {
		if strings.HasPrefix(base, p.prefix) {
			return p.t
		}
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "master" {
		return Master
	}
	if stem == "attributes" || strings.HasSuffix(stem, "-attributes") {
		return Attributes
	}

	return Unknown
}
