// Package catalog provides the processor catalog containers used by the tour:
// a key/value Map and a value Set.
//
// Neither container promises an iteration order.
// Callers must only rely on membership and content, never on the sequence of entries.
package catalog

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

const ErrBucketNotFound errorkit.Error = "ErrBucketNotFound"

type Entry struct {
	Key   string
	Value string
}

// Map is a key/value container with unique keys.
type Map interface {
	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Lookup(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Len(ctx context.Context) (int, error)
	// Iter yields every entry once, in an unspecified order.
	Iter(ctx context.Context) iter.Seq2[Entry, error]
}

// Set is a container of unique values.
type Set interface {
	Add(ctx context.Context, value string) error
	Has(ctx context.Context, value string) (bool, error)
	Remove(ctx context.Context, value string) error
	Len(ctx context.Context) (int, error)
	// Iter yields every value once, in an unspecified order.
	Iter(ctx context.Context) iter.Seq2[string, error]
}

// Backend makes fresh, empty containers.
type Backend interface {
	NewMap(ctx context.Context, name string) (Map, error)
	NewSet(ctx context.Context, name string) (Set, error)
}

var Processors = []Entry{
	{Key: "13900KS", Value: "Intel Core i9"},
	{Key: "13700K", Value: "Intel Core i7"},
	{Key: "13600K", Value: "Intel Core i5"},
	{Key: "1800X", Value: "AMD Ryzen 7"},
	{Key: "1600X", Value: "AMD Ryzen 5"},
	{Key: "1300X", Value: "AMD Ryzen 3"},
}

var ProcessorModels = []string{
	"Intel Core i9",
	"Intel Core i7",
	"Intel Core i5",
	"AMD Ryzen 7",
	"AMD Ryzen 5",
	"AMD Ryzen 3",
}

func Fill(ctx context.Context, m Map, entries ...Entry) error {
	for _, e := range entries {
		if err := m.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func FillSet(ctx context.Context, s Set, values ...string) error {
	for _, v := range values {
		if err := s.Add(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

// FindByValue returns the first entry, in iteration order,
// whose lower-cased value equals the lower-cased target.
func FindByValue(ctx context.Context, m Map, target string) (Entry, bool, error) {
	target = strings.ToLower(target)
	for e, err := range m.Iter(ctx) {
		if err != nil {
			return Entry{}, false, err
		}
		if strings.ToLower(e.Value) == target {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// FindMember returns the first value, in iteration order,
// whose lower-cased form equals the lower-cased target.
func FindMember(ctx context.Context, s Set, target string) (string, bool, error) {
	target = strings.ToLower(target)
	for v, err := range s.Iter(ctx) {
		if err != nil {
			return "", false, err
		}
		if strings.ToLower(v) == target {
			return v, true, nil
		}
	}
	return "", false, nil
}

// FormatMap renders the entries as {"key": "value", ...} in iteration order.
func FormatMap(ctx context.Context, m Map) (string, error) {
	entries, err := iterkit.CollectE(m.Iter(ctx))
	if err != nil {
		return "", err
	}
	parts := slicekit.Map(entries, func(e Entry) string {
		return fmt.Sprintf("%q: %q", e.Key, e.Value)
	})
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// FormatSet renders the values as {"a", "b", ...} in iteration order.
func FormatSet(ctx context.Context, s Set) (string, error) {
	values, err := iterkit.CollectE(s.Iter(ctx))
	if err != nil {
		return "", err
	}
	parts := slicekit.Map(values, func(v string) string {
		return fmt.Sprintf("%q", v)
	})
	return "{" + strings.Join(parts, ", ") + "}", nil
}
