package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayPlain(t *testing.T) {
	items := ExtractJSONArray(`[{"id": 1}, {"id": 2}]`)
	require.Len(t, items, 2)
	assert.Equal(t, float64(1), items[0]["id"])
}

func TestExtractJSONArraySurroundedByProse(t *testing.T) {
	raw := `Sure! Here are my picks:

[{"id": 3, "explanation": "good fit"}]

Let me know if you need more.`
	items := ExtractJSONArray(raw)
	require.Len(t, items, 1)
	assert.Equal(t, "good fit", items[0]["explanation"])
}

func TestExtractJSONArrayPicksLongest(t *testing.T) {
	raw := `First I considered [{"id": 1}] but the final answer is
[{"id": 2}, {"id": 3}, {"id": 4}].`
	items := ExtractJSONArray(raw)
	require.Len(t, items, 3)
	assert.Equal(t, float64(2), items[0]["id"])
}

func TestExtractJSONArrayNestedBrackets(t *testing.T) {
	raw := `[{"id": 1, "tags": ["a", "b"]}, {"id": 2, "tags": []}]`
	items := ExtractJSONArray(raw)
	require.Len(t, items, 2)
	assert.Equal(t, []any{"a", "b"}, items[0]["tags"])
}

func TestExtractJSONArraySkipsMalformed(t *testing.T) {
	raw := `[{"id": broken] and then [{"id": 5}]`
	items := ExtractJSONArray(raw)
	require.Len(t, items, 1)
	assert.Equal(t, float64(5), items[0]["id"])
}

func TestExtractJSONArrayNoObjects(t *testing.T) {
	assert.Nil(t, ExtractJSONArray("no json here"))
	assert.Nil(t, ExtractJSONArray("[1, 2, 3]"), "arrays of non-objects do not qualify")
	assert.Nil(t, ExtractJSONArray(""))
}
