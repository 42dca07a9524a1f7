package catalog

import (
	"context"
	"iter"

	"github.com/boltdb/bolt"
)

// Bolt keeps every container in its own bucket of a bolt database file.
// Keys and set values must not be empty.
// Iteration yields entries in bucket key order while holding a read transaction,
// so the consumer must not write into the same database before the iteration ends.
type Bolt struct {
	DB *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Bolt{DB: db}, nil
}

// Close the database and release the file lock.
func (b *Bolt) Close() error {
	return b.DB.Close()
}

func (b *Bolt) NewMap(ctx context.Context, name string) (Map, error) {
	bucket := []byte("map:" + name)
	if err := b.resetBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return &BoltMap{db: b.DB, bucket: bucket}, nil
}

func (b *Bolt) NewSet(ctx context.Context, name string) (Set, error) {
	bucket := []byte("set:" + name)
	if err := b.resetBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return &BoltSet{db: b.DB, bucket: bucket}, nil
}

func (b *Bolt) resetBucket(ctx context.Context, name []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.DB.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket(name)
		return err
	})
}

type BoltMap struct {
	db     *bolt.DB
	bucket []byte
}

func (m *BoltMap) Set(ctx context.Context, key, value string) error {
	return update(ctx, m.db, m.bucket, func(b *bolt.Bucket) error {
		return b.Put([]byte(key), []byte(value))
	})
}

func (m *BoltMap) Lookup(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := view(ctx, m.db, m.bucket, func(b *bolt.Bucket) error {
		if v := b.Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	return value, found, err
}

func (m *BoltMap) Delete(ctx context.Context, key string) error {
	return update(ctx, m.db, m.bucket, func(b *bolt.Bucket) error {
		return b.Delete([]byte(key))
	})
}

func (m *BoltMap) Len(ctx context.Context) (int, error) {
	return count(ctx, m.db, m.bucket)
}

func (m *BoltMap) Iter(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		each(ctx, m.db, m.bucket, func(k, v []byte, err error) bool {
			if err != nil {
				return yield(Entry{}, err)
			}
			return yield(Entry{Key: string(k), Value: string(v)}, nil)
		})
	}
}

var member = []byte{1}

type BoltSet struct {
	db     *bolt.DB
	bucket []byte
}

func (s *BoltSet) Add(ctx context.Context, value string) error {
	return update(ctx, s.db, s.bucket, func(b *bolt.Bucket) error {
		return b.Put([]byte(value), member)
	})
}

func (s *BoltSet) Has(ctx context.Context, value string) (bool, error) {
	var found bool
	err := view(ctx, s.db, s.bucket, func(b *bolt.Bucket) error {
		found = b.Get([]byte(value)) != nil
		return nil
	})
	return found, err
}

func (s *BoltSet) Remove(ctx context.Context, value string) error {
	return update(ctx, s.db, s.bucket, func(b *bolt.Bucket) error {
		return b.Delete([]byte(value))
	})
}

func (s *BoltSet) Len(ctx context.Context) (int, error) {
	return count(ctx, s.db, s.bucket)
}

func (s *BoltSet) Iter(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		each(ctx, s.db, s.bucket, func(k, _ []byte, err error) bool {
			if err != nil {
				return yield("", err)
			}
			return yield(string(k), nil)
		})
	}
}

func update(ctx context.Context, db *bolt.DB, name []byte, blk func(*bolt.Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return ErrBucketNotFound.F("%s", name)
		}
		return blk(b)
	})
}

func view(ctx context.Context, db *bolt.DB, name []byte, blk func(*bolt.Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return ErrBucketNotFound.F("%s", name)
		}
		return blk(b)
	})
}

func count(ctx context.Context, db *bolt.DB, name []byte) (int, error) {
	var n int
	err := view(ctx, db, name, func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// each walks the bucket with a cursor until fn returns false.
// A failure to open the read transaction is reported through fn once.
func each(ctx context.Context, db *bolt.DB, name []byte, fn func(k, v []byte, err error) bool) {
	var stopped bool
	err := view(ctx, db, name, func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if !fn(k, v, nil) {
				stopped = true
				return nil
			}
		}
		return nil
	})
	if err != nil && !stopped {
		fn(nil, nil, err)
	}
}
