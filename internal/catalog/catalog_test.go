package catalog_test

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/langtour/internal/catalog"
)

func processors(tb testing.TB) catalog.Map {
	m := &catalog.MemoryMap{}
	assert.NoError(tb, catalog.Fill(context.Background(), m, catalog.Processors...))
	return m
}

func TestFindByValue(t *testing.T) {
	ctx := context.Background()

	e, ok, err := catalog.FindByValue(ctx, processors(t), "amd ryzen 3")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, catalog.Entry{Key: "1300X", Value: "AMD Ryzen 3"}, e)

	_, ok, err = catalog.FindByValue(ctx, processors(t), "Apple M3")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByValue_stopsAtFirstMatch(t *testing.T) {
	m := &orderedMap{entries: []catalog.Entry{
		{Key: "a", Value: "AMD Ryzen 3"},
		{Key: "b", Value: "amd ryzen 3"},
	}}
	e, ok, err := catalog.FindByValue(context.Background(), m, "AMD RYZEN 3")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", e.Key)
	assert.Equal(t, 1, m.yielded)
}

func TestFindByValue_iterationError(t *testing.T) {
	expErr := errors.New("boom")
	m := &orderedMap{err: expErr}
	_, _, err := catalog.FindByValue(context.Background(), m, "x")
	assert.ErrorIs(t, expErr, err)
}

func TestFindMember(t *testing.T) {
	ctx := context.Background()
	s := &catalog.MemorySet{}
	assert.NoError(t, catalog.FillSet(ctx, s, catalog.ProcessorModels...))

	v, ok, err := catalog.FindMember(ctx, s, "amd ryzen 3")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AMD Ryzen 3", v)

	_, ok, err = catalog.FindMember(ctx, s, "Intel Core i3")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFormatMap(t *testing.T) {
	ctx := context.Background()

	got, err := catalog.FormatMap(ctx, &orderedMap{entries: []catalog.Entry{
		{Key: "13900KS", Value: "Intel Core i9"},
		{Key: "1300X", Value: "AMD Ryzen 3"},
	}})
	assert.NoError(t, err)
	assert.Equal(t, `{"13900KS": "Intel Core i9", "1300X": "AMD Ryzen 3"}`, got)

	got, err = catalog.FormatMap(ctx, processors(t))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "{") && strings.HasSuffix(got, "}"))
	for _, e := range catalog.Processors {
		assert.Contains(t, got, `"`+e.Key+`": "`+e.Value+`"`)
	}

	got, err = catalog.FormatMap(ctx, &catalog.MemoryMap{})
	assert.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestFormatSet(t *testing.T) {
	ctx := context.Background()
	s := &catalog.MemorySet{}
	assert.NoError(t, catalog.FillSet(ctx, s, catalog.ProcessorModels...))

	got, err := catalog.FormatSet(ctx, s)
	assert.NoError(t, err)
	for _, v := range catalog.ProcessorModels {
		assert.Contains(t, got, `"`+v+`"`)
	}
	assert.Equal(t, len(catalog.ProcessorModels)-1, strings.Count(got, ", "))
}

// orderedMap yields its entries in slice order, so first-match behaviour can be asserted.
type orderedMap struct {
	catalog.MemoryMap
	entries []catalog.Entry
	err     error
	yielded int
}

func (m *orderedMap) Iter(ctx context.Context) iter.Seq2[catalog.Entry, error] {
	return func(yield func(catalog.Entry, error) bool) {
		if m.err != nil {
			yield(catalog.Entry{}, m.err)
			return
		}
		for _, e := range m.entries {
			m.yielded++
			if !yield(e, nil) {
				return
			}
		}
	}
}
