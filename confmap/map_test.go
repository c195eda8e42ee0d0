package confmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── From ─────────────────────────────────────────────────────────────────────

// TestFrom_AcceptsStringKeyedMaps verifies that Map, map[string]any and
// map[string]string inputs are all converted.
func TestFrom_AcceptsStringKeyedMaps(t *testing.T) {
	cases := []any{
		Map{"a": 1},
		map[string]any{"a": 1},
		map[string]string{"a": "1"},
	}

	for _, in := range cases {
		m, ok := From(in)
		require.True(t, ok)
		assert.Len(t, m, 1)
	}
}

// TestFrom_RejectsNonMappings verifies that scalars, sequences, and nil all
// report false.
func TestFrom_RejectsNonMappings(t *testing.T) {
	for _, in := range []any{nil, 42, "conf", []string{"a"}, map[int]any{1: "a"}} {
		_, ok := From(in)
		assert.False(t, ok, "expected %T to be rejected", in)
	}
}

// TestFrom_NormalizesValues verifies that ints widen to int64 and nested maps
// become map[string]any.
func TestFrom_NormalizesValues(t *testing.T) {
	m, ok := From(map[string]any{
		"timeout": 30,
		"nested":  Map{"ratio": float32(0.5)},
		"ports":   []int{80, 443},
	})
	require.True(t, ok)

	assert.Equal(t, int64(30), m["timeout"])
	nested, isTable := m["nested"].(map[string]any)
	require.True(t, isTable)
	assert.Equal(t, float64(float32(0.5)), nested["ratio"])
	assert.Equal(t, []any{int64(80), int64(443)}, m["ports"])
}

// ── Clone ────────────────────────────────────────────────────────────────────

// TestClone_IsDeep verifies that mutating a clone's nested table leaves the
// original untouched.
func TestClone_IsDeep(t *testing.T) {
	original := Map{"network": map[string]any{"timeout": int64(30)}}

	clone := original.Clone()
	clone.Set("network.timeout", 60)

	v, ok := original.Get("network.timeout")
	require.True(t, ok)
	assert.Equal(t, int64(30), v)
}

// ── Merge ────────────────────────────────────────────────────────────────────

// TestMerge_LaterSourceWinsAtLeaf verifies leaf-level overwrite.
func TestMerge_LaterSourceWinsAtLeaf(t *testing.T) {
	m := Map{"network": map[string]any{"timeout": int64(30), "host": "localhost"}}

	err := m.Merge(Map{"network": map[string]any{"timeout": int64(60)}})
	require.NoError(t, err)

	timeout, _ := m.Get("network.timeout")
	host, _ := m.Get("network.host")
	assert.Equal(t, int64(60), timeout)
	assert.Equal(t, "localhost", host, "untouched sibling keys survive the merge")
}

// TestMerge_NestedTablesMergeRecursively verifies that sibling subtrees from
// both sides are preserved.
func TestMerge_NestedTablesMergeRecursively(t *testing.T) {
	m := Map{"a": map[string]any{"b": map[string]any{"x": int64(1)}}}

	err := m.Merge(Map{"a": map[string]any{"b": map[string]any{"y": int64(2)}}})
	require.NoError(t, err)

	x, _ := m.Get("a.b.x")
	y, _ := m.Get("a.b.y")
	assert.Equal(t, int64(1), x)
	assert.Equal(t, int64(2), y)
}

// TestMerge_SequencesReplacedWholesale verifies that slices do not append.
func TestMerge_SequencesReplacedWholesale(t *testing.T) {
	m := Map{"hosts": []any{"a", "b"}}

	err := m.Merge(Map{"hosts": []any{"c"}})
	require.NoError(t, err)

	assert.Equal(t, []any{"c"}, m["hosts"])
}

// TestMerge_EmptyValuesOverwrite verifies that explicit zero values present in
// a source still win (enabled = false must override a true default).
func TestMerge_EmptyValuesOverwrite(t *testing.T) {
	m := Map{"feature": map[string]any{"enabled": true, "limit": int64(10)}}

	err := m.Merge(Map{"feature": map[string]any{"enabled": false, "limit": int64(0)}})
	require.NoError(t, err)

	enabled, _ := m.Get("feature.enabled")
	limit, _ := m.Get("feature.limit")
	assert.Equal(t, false, enabled)
	assert.Equal(t, int64(0), limit)
}

// TestMerge_SiblingsSurviveEmptyValueOverride verifies that overriding one
// leaf with an empty value inside a nested table keeps the table's untouched
// sibling keys.
func TestMerge_SiblingsSurviveEmptyValueOverride(t *testing.T) {
	m := Map{"a": map[string]any{"keep": int64(1), "flag": true}}

	err := m.Merge(Map{"a": map[string]any{"flag": false, "new": int64(2)}})
	require.NoError(t, err)

	assert.Equal(t, Map{"a": map[string]any{
		"keep": int64(1),
		"flag": false,
		"new":  int64(2),
	}}, m)
}

// TestMerge_EmptySourceTableKeepsDestination verifies that an empty nested
// table in a source merges nothing and leaves the populated destination
// table untouched.
func TestMerge_EmptySourceTableKeepsDestination(t *testing.T) {
	m := Map{"a": map[string]any{"keep": int64(1)}}

	err := m.Merge(Map{"a": map[string]any{}})
	require.NoError(t, err)

	v, ok := m.Get("a.keep")
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

// TestMerge_Idempotent verifies that merging a map's own subtree back in
// changes nothing.
func TestMerge_Idempotent(t *testing.T) {
	m := Map{"network": map[string]any{"timeout": int64(30), "hosts": []any{"a"}}}
	snapshot := m.Clone()

	err := m.Merge(snapshot.Clone())
	require.NoError(t, err)

	assert.Equal(t, snapshot, m)
}

// TestMerge_MultipleSourcesInOrder verifies that sources apply left to right.
func TestMerge_MultipleSourcesInOrder(t *testing.T) {
	m := New()

	err := m.Merge(
		Map{"k": "first"},
		Map{"k": "second"},
	)
	require.NoError(t, err)

	assert.Equal(t, "second", m["k"])
}

// TestMerge_DoesNotAliasSource verifies that mutating the destination after a
// merge leaves the source untouched.
func TestMerge_DoesNotAliasSource(t *testing.T) {
	src := Map{"network": map[string]any{"timeout": int64(30)}}
	m := New()
	require.NoError(t, m.Merge(src))

	m.Set("network.timeout", 99)

	v, _ := src.Get("network.timeout")
	assert.Equal(t, int64(30), v)
}

// ── Get / Set / Delete ───────────────────────────────────────────────────────

// TestGet_DottedPath verifies multi-level lookups and the comma-ok contract.
func TestGet_DottedPath(t *testing.T) {
	m := Map{"a": map[string]any{"b": map[string]any{"c": "deep"}}}

	v, ok := m.Get("a.b.c")
	require.True(t, ok)
	assert.Equal(t, "deep", v)

	_, ok = m.Get("a.b.missing")
	assert.False(t, ok)
	_, ok = m.Get("a.b.c.too-deep")
	assert.False(t, ok, "scalar leaves have no children")
	_, ok = m.Get("")
	assert.False(t, ok)
}

// TestSet_CreatesIntermediateTables verifies that Set builds the path.
func TestSet_CreatesIntermediateTables(t *testing.T) {
	m := New()

	m.Set("a.b.c", 7)

	v, ok := m.Get("a.b.c")
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
}

// TestSet_ReplacesScalarIntermediate verifies that a scalar in the middle of
// the path is replaced by a table.
func TestSet_ReplacesScalarIntermediate(t *testing.T) {
	m := Map{"a": "scalar"}

	m.Set("a.b", 1)

	v, ok := m.Get("a.b")
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

// TestDelete_ReportsExistence verifies both outcomes.
func TestDelete_ReportsExistence(t *testing.T) {
	m := Map{"a": map[string]any{"b": int64(1)}}

	assert.True(t, m.Delete("a.b"))
	assert.False(t, m.Delete("a.b"))
	assert.False(t, m.Delete("missing.path"))
}

// ── Subset / Keys / Len / String ─────────────────────────────────────────────

// TestSubset_CopiesSelectedTopLevelKeys verifies selection and deep copy.
func TestSubset_CopiesSelectedTopLevelKeys(t *testing.T) {
	m := Map{
		"network": map[string]any{"timeout": int64(30)},
		"logging": map[string]any{"level": "debug"},
	}

	sub := m.Subset("network", "missing")

	assert.Equal(t, []string{"network"}, sub.Keys())
	sub.Set("network.timeout", 99)
	v, _ := m.Get("network.timeout")
	assert.Equal(t, int64(30), v, "subset must not alias the original")
}

// TestKeys_Sorted verifies deterministic ordering.
func TestKeys_Sorted(t *testing.T) {
	m := Map{"zeta": 1, "alpha": 2, "mid": 3}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

// TestString_RendersTOML verifies the textual form is a TOML document.
func TestString_RendersTOML(t *testing.T) {
	m := Map{"network": map[string]any{"timeout": int64(30)}}

	s := m.String()

	assert.Contains(t, s, "[network]")
	assert.Contains(t, s, "timeout = 30")
}
