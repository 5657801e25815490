// Package yaml provides a YAML renderer implementation for the config package.
//
// It is the write-side counterpart of config/parser/yaml: the project package
// parses dbt_project.yml into a document, merges overrides into it, and hands
// the result here for serialization before writing it back to disk.
package yaml
