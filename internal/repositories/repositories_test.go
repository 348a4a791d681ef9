package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_MigratesAndServesMetadata(t *testing.T) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, "file:reposinit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.NoError(t, repos.Metadata.SetString(ctx, "device_id", "d-1"))

	v, ok, err := repos.Metadata.GetString(ctx, "device_id")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "d-1", v)
}

func TestInitDatabase_InvalidPathFails(t *testing.T) {
	_, err := InitDatabase(context.Background(), "file:/nonexistent-dir/sub/x.db?mode=rw")
	require.Error(t, err)
}
