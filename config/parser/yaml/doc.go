// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. Dotted key paths
// (e.g., "models.my_project") map directly onto YAML path format
// (e.g., "$.models.my_project").
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg ModelConfig
//	err := parser.Parse(data, &cfg, "models.my_project")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "name" -> "$.name"
//   - Nested path "models.my_project" -> "$.models.my_project"
package yaml
