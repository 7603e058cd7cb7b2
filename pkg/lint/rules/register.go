// Package rules provides the built-in conformance rules for check-links.
//
// Rules are conditioned on the document type the classifier infers from
// the file name:
//
//   - CL001: naming-convention - File names must signal a document type
//   - CL002: context-attribute - Classified files define a :context: attribute
//   - CL003: no-internal-marker - The :internal: attribute must be absent
//   - CL004: steps-required - Procedure modules contain at least one step
//   - CL005: steps-forbidden - Concept/reference modules contain no steps
//   - CL006: reusable-identifiers - Identifiers embed {context}
//   - CL007: heading-abbreviations - Headings use abbreviations, not expansions
//   - CL008: deprecated-terminology - Content avoids the deprecated glossary
//   - CL009: attributes-location - Attributes files live in the canonical path
package rules

import "github.com/jhradilek/check-links/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Document-level rules
	registry.Register(NewNamingConventionRule())   // CL001
	registry.Register(NewContextAttributeRule())   // CL002
	registry.Register(NewNoInternalMarkerRule())   // CL003
	registry.Register(NewStepsRequiredRule())      // CL004
	registry.Register(NewStepsForbiddenRule())     // CL005
	registry.Register(NewAttributesLocationRule()) // CL009

	// Per-element rules
	registry.Register(NewReusableIdentifiersRule())   // CL006
	registry.Register(NewHeadingAbbreviationsRule())  // CL007
	registry.Register(NewDeprecatedTerminologyRule()) // CL008
}

// Register built-in rules with the default registry on import.
//
//nolint:gochecknoinits // Self-registration keeps rule wiring in one place
func init() {
	RegisterAll(lint.DefaultRegistry)
}
