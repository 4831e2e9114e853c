package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	require.NoError(t, r.Set(ctx, "c", []byte("3")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)

	require.NoError(t, r.DeleteMany(ctx, "a", "b"))
	require.NoError(t, r.Delete(ctx, "missing"))

	v, err = r.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryRepository_CopiesValues(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("token")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), out)

	out[0] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), again)
}

func TestRepositories_SatisfyInterface(t *testing.T) {
	var _ Repository = NewMemoryRepository()
	var _ Repository = NewSQLiteRepository(nil)
}
