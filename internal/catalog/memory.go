package catalog

import (
	"context"
	"iter"

	"go.llib.dev/frameless/port/ds/dsmap"
	"go.llib.dev/frameless/port/ds/dsset"
)

// Memory keeps every container in the in-memory data structures of frameless.
// Iteration follows Go's map order, so it differs from run to run.
type Memory struct{}

func (Memory) NewMap(ctx context.Context, name string) (Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &MemoryMap{}, nil
}

func (Memory) NewSet(ctx context.Context, name string) (Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &MemorySet{}, nil
}

// MemoryMap is ready to use in its zero value.
type MemoryMap struct {
	vs dsmap.Map[string, string]
}

func (m *MemoryMap) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.vs == nil {
		m.vs = make(dsmap.Map[string, string])
	}
	m.vs.Set(key, value)
	return nil
}

func (m *MemoryMap) Lookup(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v, ok := m.vs.Lookup(key)
	return v, ok, nil
}

func (m *MemoryMap) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.vs.Delete(key)
	return nil
}

func (m *MemoryMap) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.vs.Len(), nil
}

func (m *MemoryMap) Iter(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(Entry{}, err)
			return
		}
		for k, v := range m.vs.All() {
			if !yield(Entry{Key: k, Value: v}, nil) {
				return
			}
		}
	}
}

// MemorySet is ready to use in its zero value.
type MemorySet struct {
	vs dsset.Set[string]
}

func (s *MemorySet) Add(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.vs.Append(value)
	return nil
}

func (s *MemorySet) Has(ctx context.Context, value string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.vs.Contains(value), nil
}

func (s *MemorySet) Remove(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delete(s.vs, value)
	return nil
}

func (s *MemorySet) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.vs.Len(), nil
}

func (s *MemorySet) Iter(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := ctx.Err(); err != nil {
			yield("", err)
			return
		}
		for v := range s.vs.Values() {
			if !yield(v, nil) {
				return
			}
		}
	}
}
