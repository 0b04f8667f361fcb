package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transposer/transpose"
)

type entry struct {
	key    string
	fields []string
	values []any
}

func collect(t *testing.T, src transpose.Source[string, any]) ([]entry, error) {
	t.Helper()
	var out []entry
	err := src.Each(func(k string, f transpose.Fields[any]) {
		e := entry{key: k}
		for name, v := range f.All() {
			e.fields = append(e.fields, name)
			e.values = append(e.values, v)
		}
		out = append(out, e)
	})
	return out, err
}

func TestDecode_JSONPreservesOrder(t *testing.T) {
	doc := `{"Q2":{"orders":1380,"revenue":138000},"Q1":{"orders":1250,"revenue":125000.5}}`

	got, err := collect(t, DecodeBytes([]byte(doc)))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Q2", got[0].key)
	assert.Equal(t, "Q1", got[1].key)
	assert.Equal(t, []string{"orders", "revenue"}, got[0].fields)
	assert.Equal(t, []any{1380, 138000}, got[0].values)
	assert.Equal(t, []any{1250, 125000.5}, got[1].values)
}

func TestDecode_YAMLScalarsAndNull(t *testing.T) {
	doc := `
Category1:
  s: value1
  b: true
  n: null
  f: 99.9
`
	got, err := collect(t, Decode(strings.NewReader(doc)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"s", "b", "n", "f"}, got[0].fields)
	assert.Equal(t, []any{"value1", true, nil, 99.9}, got[0].values)
}

func TestDecode_EmptyDocuments(t *testing.T) {
	for _, doc := range []string{"", "{}", "[]", "null", "~"} {
		t.Run(doc, func(t *testing.T) {
			got, err := collect(t, DecodeBytes([]byte(doc)))
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestDecode_SequenceRoot(t *testing.T) {
	got, err := collect(t, DecodeBytes([]byte(`[{"x":1},{"x":2}]`)))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "0", got[0].key)
	assert.Equal(t, "1", got[1].key)
}

func TestDecode_ScalarRoot(t *testing.T) {
	_, err := collect(t, DecodeBytes([]byte(`42`)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotMapping))
}

func TestDecode_NonMappingInnerIsEmpty(t *testing.T) {
	got, err := collect(t, DecodeBytes([]byte(`{"A":{"x":1},"B":7,"C":[1,2]}`)))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Empty(t, got[1].fields)
	assert.Empty(t, got[2].fields)
}

func TestDecode_SyntaxErrorSurfacesFromEach(t *testing.T) {
	src := DecodeBytes([]byte(`{"A": {"x": 1`))
	_, err := collect(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec:")
}

func TestDecode_IsLazy(t *testing.T) {
	r := &countingReader{r: strings.NewReader(`{"A":{"x":1}}`)}
	src := Decode(r)
	assert.Zero(t, r.reads)

	_, err := collect(t, src)
	require.NoError(t, err)
	assert.NotZero(t, r.reads)
}

func TestDecode_FeedsTransposer(t *testing.T) {
	doc := `{"A":{"x":1,"y":2},"B":{"x":3}}`
	out, err := transpose.New[string, any](transpose.WithLabel("Field")).Transpose(DecodeBytes([]byte(doc)))
	require.NoError(t, err)

	y, ok := out.Get("y")
	require.True(t, ok)
	b, _ := y.Get("B")
	assert.False(t, b.Present)
	a, _ := y.Get("A")
	assert.Equal(t, 2, a.Value)
}

type countingReader struct {
	r     *strings.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestDecode_NestedNonStringKeysBecomeStrings(t *testing.T) {
	doc := "A:\n  x: {1: a, true: b}\n  y: [{2: c}]\n"
	got, err := collect(t, DecodeBytes([]byte(doc)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []any{
		map[string]any{"1": "a", "true": "b"},
		[]any{map[string]any{"2": "c"}},
	}, got[0].values)
}
