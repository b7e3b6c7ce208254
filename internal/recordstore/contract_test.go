package recordstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
		v, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), v)
	})

	t.Run("set replaces", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("one")))
		require.NoError(t, s.Set(ctx, "k", []byte("two")))
		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", string(v))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))
		v, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", string(v))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v")))
		require.NoError(t, s.Delete(ctx, "k"))
		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, v)

		// second delete is a no-op
		require.NoError(t, s.Delete(ctx, "k"))
	})

	t.Run("update absent key", func(t *testing.T) {
		s := newStore(t)
		var seen []byte
		called := false
		err := Update(ctx, s, "k", func(cur []byte) ([]byte, error) {
			called = true
			seen = cur
			return []byte("new"), nil
		})
		require.NoError(t, err)
		assert.True(t, called)
		assert.Nil(t, seen)

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "new", string(v))
	})

	t.Run("update sees current value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("a")))
		err := Update(ctx, s, "k", func(cur []byte) ([]byte, error) {
			return append(cur, 'b'), nil
		})
		require.NoError(t, err)

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "ab", string(v))
	})

	t.Run("update error leaves value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("keep")))
		boom := errors.New("boom")
		err := Update(ctx, s, "k", func(cur []byte) ([]byte, error) {
			return []byte("lost"), boom
		})
		require.ErrorIs(t, err, boom)

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "keep", string(v))
	})
}

// runConcurrentUpdates appends one byte per goroutine and expects none to
// be lost.
func runConcurrentUpdates(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	const n = 8

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Update(ctx, s, "counter", func(cur []byte) ([]byte, error) {
				return append(cur, 'x'), nil
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	v, err := s.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Len(t, v, n)
}
