package projectkeys

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// coerceRule pairs a predicate with a constructor. Rules are evaluated
// top-to-bottom and the first match wins, so the ordering of coerceRules is
// part of the contract: structured literals go first so that "4" inside a
// list is not coerced at the top level, and numeric rules precede the string
// fallback.
type coerceRule struct {
	name  string
	apply func(raw string) (any, bool)
}

var coerceRules = []coerceRule{
	{name: "structured", apply: coerceStructured},
	{name: "boolean", apply: coerceBool},
	{name: "integer", apply: coerceInt},
	{name: "float", apply: coerceFloat},
	{name: "null", apply: coerceNull},
}

// Coerce interprets a raw string override as the richest YAML type it
// matches: a flow-style sequence or mapping literal, a boolean, an integer,
// a float, a null token, or the original string. Coercion is total: every
// input yields exactly one value and never an error.
func Coerce(raw string) any {
	for _, rule := range coerceRules {
		if value, ok := rule.apply(raw); ok {
			return value
		}
	}

	return raw
}

// coerceStructured parses sequence and mapping literals such as
// ["tag1","tag2"] or {"owner": "data_team"}. Flow-style YAML is a superset of
// JSON, so JSON literals from templated sources parse as-is. Anything that
// does not start with a bracket, or fails to parse, falls through.
func coerceStructured(raw string) (any, bool) {
	if !strings.HasPrefix(raw, "[") && !strings.HasPrefix(raw, "{") {
		return nil, false
	}

	var value any

	err := yaml.Unmarshal([]byte(raw), &value)
	if err != nil {
		return nil, false
	}

	switch value.(type) {
	case []any, map[string]any:
		return value, true
	default:
		return nil, false
	}
}

func coerceBool(raw string) (any, bool) {
	if strings.EqualFold(raw, "true") {
		return true, true
	}

	if strings.EqualFold(raw, "false") {
		return false, true
	}

	return nil, false
}

func coerceInt(raw string) (any, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}

	return n, true
}

func coerceFloat(raw string) (any, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}

	return f, true
}

// coerceNull recognizes the YAML null tokens. The empty string is not one of
// them: a templated value that rendered to nothing stays an empty string.
func coerceNull(raw string) (any, bool) {
	switch strings.ToLower(raw) {
	case "null", "none", "~":
		return nil, true
	}

	return nil, false
}
