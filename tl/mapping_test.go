package tl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telegram-toys/tljson/tl"
)

func TestMapping_InsertionOrder(t *testing.T) {
	m := tl.NewMapping()
	m.Set("c", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMapping_SetExistingKeepsPosition(t *testing.T) {
	m := tl.NewMapping()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMapping_DeletePreservesOrder(t *testing.T) {
	m := tl.NewMapping()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	_, ok := m.Get("b")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	m.Delete("zzz")
	assert.Equal(t, 2, m.Len())
}

func TestMapping_Pop(t *testing.T) {
	m := tl.NewMapping()
	m.Set("tag", "x")
	m.Set("n", int64(1))

	v, ok := m.Pop("tag")
	require.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, []string{"n"}, m.Keys())

	_, ok = m.Pop("tag")
	assert.False(t, ok)
}

func TestMapping_EqualIgnoresOrder(t *testing.T) {
	a := tl.NewMapping()
	a.Set("x", int64(1))
	a.Set("y", "two")

	b := tl.NewMapping()
	b.Set("y", "two")
	b.Set("x", int64(1))

	assert.True(t, a.Equal(b))

	b.Set("x", int64(9))
	assert.False(t, a.Equal(b))

	c := tl.NewMapping()
	c.Set("x", int64(1))
	assert.False(t, a.Equal(c))
}

func TestValueEqual_Scalars(t *testing.T) {
	assert.True(t, tl.ValueEqual(nil, nil))
	assert.False(t, tl.ValueEqual(nil, "x"))
	assert.True(t, tl.ValueEqual("a", "a"))
	assert.True(t, tl.ValueEqual(true, true))
	assert.False(t, tl.ValueEqual(true, false))
	assert.True(t, tl.ValueEqual([]byte{1, 2}, []byte{1, 2}))
	assert.False(t, tl.ValueEqual([]byte{1}, []byte{1, 2}))
}

func TestValueEqual_NumericWidths(t *testing.T) {
	// Integers of different Go widths compare by value.
	assert.True(t, tl.ValueEqual(int32(7), int64(7)))
	assert.True(t, tl.ValueEqual(int(7), int64(7)))
	assert.False(t, tl.ValueEqual(int64(7), int64(8)))
	assert.True(t, tl.ValueEqual(float32(1.5), float64(1.5)))
	// An int and a float are distinct values even when numerically equal.
	assert.False(t, tl.ValueEqual(int64(2), float64(2)))
}

func TestValueEqual_Timestamps(t *testing.T) {
	utc := time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)
	ist := utc.In(time.FixedZone("", 5*3600+1800))

	// Same instant, different offsets: not equal.
	assert.False(t, tl.ValueEqual(utc, ist))
	// Same instant and offset under a different zone name: equal.
	named := utc.In(time.FixedZone("somewhere", 0))
	assert.True(t, tl.ValueEqual(utc, named))
}

func TestValueEqual_Nested(t *testing.T) {
	inner := tl.NewMapping()
	inner.Set("k", []any{int64(1), "a"})

	a := []any{inner, nil, int64(3)}

	inner2 := tl.NewMapping()
	inner2.Set("k", []any{int64(1), "a"})
	b := []any{inner2, nil, int64(3)}

	assert.True(t, tl.ValueEqual(a, b))

	inner2.Set("k", []any{int64(1), "b"})
	assert.False(t, tl.ValueEqual(a, b))
}
