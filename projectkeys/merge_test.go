package projectkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestApply_CreatesIntermediateMappings(t *testing.T) {
	t.Parallel()

	doc := Document{}

	err := Apply(doc, KeyPath{"models", "proj", "materialized"}, "table")

	require.NoError(t, err)
	assert.Equal(t, Document{
		"models": map[string]any{
			"proj": map[string]any{
				"materialized": "table",
			},
		},
	}, doc)
}

func TestApply_OverwritesExistingValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      Document
		path     KeyPath
		value    any
		expected Document
	}{
		{
			name:     "scalar replaced by scalar",
			doc:      Document{"version": "0.1.0"},
			path:     KeyPath{"version"},
			value:    "1.0.0",
			expected: Document{"version": "1.0.0"},
		},
		{
			name: "mapping replaced by scalar at last segment",
			doc: Document{
				"models": map[string]any{"proj": map[string]any{"materialized": "view"}},
			},
			path:     KeyPath{"models"},
			value:    "flattened",
			expected: Document{"models": "flattened"},
		},
		{
			name:     "sequence replaced by new sequence",
			doc:      Document{"tags": []any{"old"}},
			path:     KeyPath{"tags"},
			value:    []any{"new"},
			expected: Document{"tags": []any{"new"}},
		},
		{
			name:     "null value is written, not skipped",
			doc:      Document{"profile": "default"},
			path:     KeyPath{"profile"},
			value:    nil,
			expected: Document{"profile": nil},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Apply(tt.doc, tt.path, tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, tt.doc)
		})
	}
}

func TestApply_TypeConflict(t *testing.T) {
	t.Parallel()

	doc := Document{"a": map[string]any{"b": int64(1)}}

	err := Apply(doc, KeyPath{"a", "b", "c"}, "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeConflict)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestApply_NullIsAConflictingValue(t *testing.T) {
	t.Parallel()

	// An explicit null occupies the position; it is not a mapping.
	doc := Document{"models": nil}

	err := Apply(doc, KeyPath{"models", "proj"}, "table")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeConflict)
}

func TestApply_EmptyPath(t *testing.T) {
	t.Parallel()

	err := Apply(Document{}, nil, "x")

	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	path := KeyPath{"models", "proj", "tags"}
	value := []any{"nightly"}

	once := Document{}
	require.NoError(t, Apply(once, path, value))

	twice := Document{}
	require.NoError(t, Apply(twice, path, value))
	require.NoError(t, Apply(twice, path, value))

	assert.Equal(t, once, twice)
}

func TestMergeAll_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := Document{
		"name":   "jaffle_shop",
		"models": map[string]any{"proj": map[string]any{"materialized": "view"}},
	}

	merged, err := MergeAll(base, []Override{
		{Path: KeyPath{"models", "proj", "materialized"}, Value: "table"},
		{Path: KeyPath{"models", "proj", "tags"}, Value: []any{"marts"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "table", lookup(t, merged, "models", "proj", "materialized"))
	assert.Equal(t, "view", lookup(t, base, "models", "proj", "materialized"))
}

func TestMergeAll_LastWriteWins(t *testing.T) {
	t.Parallel()

	merged, err := MergeAll(Document{}, []Override{
		{Path: KeyPath{"version"}, Value: "1.0.0"},
		{Path: KeyPath{"version"}, Value: "2.0.0"},
	})

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", merged["version"])
}

func TestMergeAll_ShorterPathAfterDeeperDiscardsStructure(t *testing.T) {
	t.Parallel()

	merged, err := MergeAll(Document{}, []Override{
		{Path: KeyPath{"models", "proj", "materialized"}, Value: "table"},
		{Path: KeyPath{"models"}, Value: "gone"},
	})

	require.NoError(t, err)
	assert.Equal(t, Document{"models": "gone"}, merged)
}

func TestMergeAll_DeeperPathAfterScalarPrefixFails(t *testing.T) {
	t.Parallel()

	merged, err := MergeAll(Document{}, []Override{
		{Path: KeyPath{"models"}, Value: "scalar"},
		{Path: KeyPath{"models", "proj", "materialized"}, Value: "table"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeConflict)
	assert.Nil(t, merged)
}

func TestMergeKeys(t *testing.T) {
	t.Parallel()

	base := Document{
		"name":    "jaffle_shop",
		"version": "0.1.0",
	}

	merged, err := MergeKeys(base, map[string]string{
		"version":                        "1.0.0",
		"models.proj.materialized":       "table",
		"models.proj.tags":               `["tag1","tag2"]`,
		"models.proj.meta.owner":         "data_team",
		"models.proj.meta.sla_hours":     "4",
		"models.proj.meta.alert":         "true",
		"models.proj.meta.failure_rate":  "0.01",
		"models.proj.meta.partition_by":  "none",
		"models.proj.staging.schema_ref": "staging_dev",
	})

	require.NoError(t, err)
	assert.Equal(t, "jaffle_shop", merged["name"])
	assert.Equal(t, "1.0.0", merged["version"])
	assert.Equal(t, "table", lookup(t, merged, "models", "proj", "materialized"))
	assert.Equal(t, []any{"tag1", "tag2"}, lookup(t, merged, "models", "proj", "tags"))
	assert.Equal(t, "data_team", lookup(t, merged, "models", "proj", "meta", "owner"))
	assert.Equal(t, int64(4), lookup(t, merged, "models", "proj", "meta", "sla_hours"))
	assert.Equal(t, true, lookup(t, merged, "models", "proj", "meta", "alert"))
	assert.Equal(t, 0.01, lookup(t, merged, "models", "proj", "meta", "failure_rate"))
	assert.Nil(t, lookup(t, merged, "models", "proj", "meta", "partition_by"))
	assert.Equal(t, "staging_dev", lookup(t, merged, "models", "proj", "staging", "schema_ref"))
}

func TestMergeKeys_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := MergeKeys(Document{}, map[string]string{"a..b": "x"})

	assert.ErrorIs(t, err, ErrInvalidPath)
}

// Lexicographic application order means a scalar prefix always lands before
// a deeper write under it, so the conflict is deterministic.
func TestMergeKeys_PrefixConflictIsDeterministic(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		_, err := MergeKeys(Document{}, map[string]string{
			"models":      "scalar",
			"models.proj": "table",
		})

		require.ErrorIs(t, err, ErrTypeConflict)
	}
}

func TestMergeKeys_EmptyKeys(t *testing.T) {
	t.Parallel()

	base := Document{"name": "jaffle_shop"}

	merged, err := MergeKeys(base, nil)

	require.NoError(t, err)
	assert.Equal(t, base, merged)
}

// Looking up any applied path in the merged document yields exactly the
// coerced value.
func TestMergeKeys_LookupYieldsCoercedValue(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(
			rapid.StringMatching(`[a-z_]{1,8}`), 1, 5,
		).Draw(t, "segments")
		raw := rapid.SampledFrom([]string{
			"true", "false", "42", "4.5", "null", "hello", `["a","b"]`, "",
		}).Draw(t, "raw")

		path := KeyPath(segments)

		merged, err := MergeAll(Document{}, []Override{{Path: path, Value: Coerce(raw)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cursor := any(merged)
		for _, segment := range path {
			mapping, ok := cursor.(map[string]any)
			if !ok {
				t.Fatalf("expected mapping at %q, got %T", segment, cursor)
			}
			cursor = mapping[segment]
		}

		assert.Equal(t, Coerce(raw), cursor)
	})
}

func lookup(t *testing.T, doc Document, path ...string) any {
	t.Helper()

	cursor := any(doc)
	for _, segment := range path {
		mapping, ok := cursor.(map[string]any)
		require.True(t, ok, "expected mapping at %q, got %T", segment, cursor)
		cursor = mapping[segment]
	}

	return cursor
}
