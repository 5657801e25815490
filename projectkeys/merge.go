package projectkeys

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTypeConflict is returned when an override path tries to descend through
// an existing value that is not a mapping.
var ErrTypeConflict = errors.New("key path conflicts with existing value")

// Document is a parsed configuration document: a nested mapping from string
// keys to scalars, sequences, or further mappings. It is the shape produced
// by unmarshaling YAML into any.
type Document = map[string]any

// Override pairs a parsed key path with an already-coerced value. Each
// override is consumed by a single merge call.
type Override struct {
	Path  KeyPath
	Value any
}

// Apply walks doc along path, creating intermediate mappings as needed, and
// sets the final segment to value, overwriting unconditionally. Descending
// through an existing non-mapping value fails with ErrTypeConflict; doc is
// left as modified up to that point, so callers that need the original
// unchanged should merge via MergeAll instead.
func Apply(doc Document, path KeyPath, value any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	cursor := doc

	for i, segment := range path[:len(path)-1] {
		existing, found := cursor[segment]
		if !found {
			child := Document{}
			cursor[segment] = child
			cursor = child

			continue
		}

		child, isMapping := existing.(map[string]any)
		if !isMapping {
			return fmt.Errorf("%w: cannot descend into %T at %q (segment %d of %q)",
				ErrTypeConflict, existing, segment, i+1, path)
		}

		cursor = child
	}

	cursor[path[len(path)-1]] = value

	return nil
}

// MergeAll deep-copies doc, applies the overrides in the given order, and
// returns the merged copy. The input document is never modified. Order
// matters: for identical paths the later override wins, and when one path is
// a prefix of another the outcome depends on which is applied first. The
// first failing override aborts the merge and no document is returned, since
// a partially-applied configuration must not reach the downstream tool.
func MergeAll(doc Document, overrides []Override) (Document, error) {
	working := deepCopy(doc)

	for _, override := range overrides {
		err := Apply(working, override.Path, override.Value)
		if err != nil {
			return nil, err
		}
	}

	return working, nil
}

// MergeKeys merges raw dotted-path overrides, parsing each path and coercing
// each value before applying. Go maps carry no order, so the keys are applied
// in lexicographic order; this keeps prefix conflicts deterministic ("a"
// always applies before "a.b").
func MergeKeys(doc Document, keys map[string]string) (Document, error) {
	overrides := make([]Override, 0, len(keys))

	sortedKeys := make([]string, 0, len(keys))
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	slices.Sort(sortedKeys)

	for _, raw := range sortedKeys {
		path, err := ParsePath(raw)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, Override{Path: path, Value: Coerce(keys[raw])})
	}

	return MergeAll(doc, overrides)
}

func deepCopy(doc Document) Document {
	copied := make(Document, len(doc))

	for key, value := range doc {
		copied[key] = copyValue(value)
	}

	return copied
}

func copyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return deepCopy(typed)
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = copyValue(item)
		}

		return items
	default:
		return typed
	}
}
