// Package projectkeys merges dotted-path overrides into a parsed dbt project
// configuration document.
//
// Overrides arrive as raw strings, typically rendered by the orchestrator's
// templating engine before this package sees them. Each override names a
// location in the document with a dotted key path ("models.my_project.marts.
// meta.owner") and carries a string value that is coerced into a richer YAML
// type (boolean, integer, float, sequence, mapping, or null) before being
// written.
//
// # Merge semantics
//
//	doc, err := projectkeys.MergeKeys(base, map[string]string{
//	    "models.my_project.materialized": "table",
//	    "models.my_project.tags":         `["nightly", "marts"]`,
//	})
//
// Intermediate mappings along a path are created on demand. Writing through
// an existing non-mapping value (for example setting "a.b.c" when "a.b" holds
// a scalar) fails with ErrTypeConflict. The final segment of a path always
// overwrites whatever was there. When two overrides target the same path the
// one applied later wins.
//
// The package never touches disk: reading the base document and persisting
// the merged result belong to the caller (see the project package).
package projectkeys
