package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_KeepsInsertionOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	require.Equal(t, []string{"z", "a", "m"}, m.Keys())
	require.Equal(t, 3, m.Len())

	var seen []string
	for k, v := range m.All() {
		seen = append(seen, k)
		v2, ok := m.Get(k)
		require.True(t, ok)
		assert.Equal(t, v2, v)
	}
	assert.Equal(t, []string{"z", "a", "m"}, seen)
}

func TestMap_RepeatedKeyKeepsPositionTakesLastValue(t *testing.T) {
	m := Of(
		Pair[string, int]{"a", 1},
		Pair[string, int]{"b", 2},
		Pair[string, int]{"a", 3},
	)

	require.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has("x"))
	_, _, ok := m.First()
	assert.False(t, ok)
	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestMap_First(t *testing.T) {
	m := Of(Pair[int, string]{2, "two"}, Pair[int, string]{1, "one"})

	k, v, ok := m.First()
	require.True(t, ok)
	assert.Equal(t, 2, k)
	assert.Equal(t, "two", v)
}

func TestMap_KeysIsACopy(t *testing.T) {
	m := Of(Pair[string, int]{"a", 1})
	keys := m.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := Of(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"c", 3})

	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestMap_ZeroValueIsUsable(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	p := &Map[string, int]{}
	p.Set("x", 1)
	assert.Equal(t, 1, p.Len())
}
