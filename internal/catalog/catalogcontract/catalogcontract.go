// Package catalogcontract holds the behaviour every catalog.Backend must share.
package catalogcontract

import (
	"context"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/langtour/internal/catalog"
)

func Backend(t *testing.T, mk func(tb testing.TB) catalog.Backend) {
	s := testcase.NewSpec(t)

	backend := testcase.Let(s, func(t *testcase.T) catalog.Backend {
		return mk(t)
	})

	s.Describe("#NewMap", func(s *testcase.Spec) {
		m := testcase.Let(s, func(t *testcase.T) catalog.Map {
			m, err := backend.Get(t).NewMap(context.Background(), "contract")
			assert.NoError(t, err)
			return m
		})

		s.Test("a new map is empty", func(t *testcase.T) {
			n, err := m.Get(t).Len(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 0, n)
		})

		s.Test("round trip: every inserted key looks up its own value", func(t *testcase.T) {
			ctx := context.Background()
			expected := randomEntries(t)
			for k, v := range expected {
				assert.NoError(t, m.Get(t).Set(ctx, k, v))
			}
			for k, v := range expected {
				got, ok, err := m.Get(t).Lookup(ctx, k)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
			n, err := m.Get(t).Len(ctx)
			assert.NoError(t, err)
			assert.Equal(t, len(expected), n)

			entries, err := iterkit.CollectE(m.Get(t).Iter(ctx))
			assert.NoError(t, err)
			got := make(map[string]string)
			for _, e := range entries {
				got[e.Key] = e.Value
			}
			assert.Equal(t, expected, got)
		})

		s.Test("keys are unique", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, m.Get(t).Set(ctx, "13600K", "Intel Core i3"))
			assert.NoError(t, m.Get(t).Set(ctx, "13600K", "Intel Core i5"))
			n, err := m.Get(t).Len(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 1, n)
			got, _, err := m.Get(t).Lookup(ctx, "13600K")
			assert.NoError(t, err)
			assert.Equal(t, "Intel Core i5", got)
		})

		s.Test("missing keys are reported as absent", func(t *testcase.T) {
			_, ok, err := m.Get(t).Lookup(context.Background(), "4004")
			assert.NoError(t, err)
			assert.False(t, ok)
		})

		s.Test("delete", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, m.Get(t).Set(ctx, "1800X", "AMD Ryzen 7"))
			assert.NoError(t, m.Get(t).Delete(ctx, "1800X"))
			_, ok, err := m.Get(t).Lookup(ctx, "1800X")
			assert.NoError(t, err)
			assert.False(t, ok)
		})

		s.Test("iteration can stop early", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, catalog.Fill(ctx, m.Get(t), catalog.Processors...))
			var seen int
			for _, err := range m.Get(t).Iter(ctx) {
				assert.NoError(t, err)
				seen++
				break
			}
			assert.Equal(t, 1, seen)
		})

		s.Test("a second NewMap with the same name starts empty", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, m.Get(t).Set(ctx, "k", "v"))
			fresh, err := backend.Get(t).NewMap(ctx, "contract")
			assert.NoError(t, err)
			n, err := fresh.Len(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 0, n)
		})

		s.Test("cancelled context", func(t *testcase.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.ErrorIs(t, context.Canceled, m.Get(t).Set(ctx, "k", "v"))
		})
	})

	s.Describe("#NewSet", func(s *testcase.Spec) {
		set := testcase.Let(s, func(t *testcase.T) catalog.Set {
			set, err := backend.Get(t).NewSet(context.Background(), "contract")
			assert.NoError(t, err)
			return set
		})

		s.Test("values are unique", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, catalog.FillSet(ctx, set.Get(t), catalog.ProcessorModels...))
			assert.NoError(t, catalog.FillSet(ctx, set.Get(t), catalog.ProcessorModels...))
			n, err := set.Get(t).Len(ctx)
			assert.NoError(t, err)
			assert.Equal(t, len(catalog.ProcessorModels), n)

			values, err := iterkit.CollectE(set.Get(t).Iter(ctx))
			assert.NoError(t, err)
			assert.ContainsExactly(t, catalog.ProcessorModels, values)
		})

		s.Test("membership", func(t *testcase.T) {
			ctx := context.Background()
			assert.NoError(t, set.Get(t).Add(ctx, "AMD Ryzen 3"))
			ok, err := set.Get(t).Has(ctx, "AMD Ryzen 3")
			assert.NoError(t, err)
			assert.True(t, ok)

			assert.NoError(t, set.Get(t).Remove(ctx, "AMD Ryzen 3"))
			ok, err = set.Get(t).Has(ctx, "AMD Ryzen 3")
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	})
}

func randomEntries(t *testcase.T) map[string]string {
	entries := make(map[string]string)
	n := t.Random.IntBetween(3, 12)
	for len(entries) < n {
		key := randomdata.Alphanumeric(8)
		entries[key] = randomdata.FirstName(randomdata.RandomGender) + " " + randomdata.LastName()
	}
	return entries
}
