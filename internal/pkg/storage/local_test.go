package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	path, err := store.Save(ctx, strings.NewReader("date,hours\n2025-04-01,4.00\n"), "reports/2025/04/test.csv", "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "reports/2025/04/test.csv", path)

	file, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "date,hours\n2025-04-01,4.00\n", string(content))
}

func TestLocalStorage_URL(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	require.NoError(t, err)

	url, err := store.URL(ctx, "reports/2025/04/test.csv")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/reports/2025/04/test.csv", url)
}

func TestLocalStorage_ExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "missing.csv")
	require.NoError(t, err)
	assert.False(t, exists)

	path, err := store.Save(ctx, strings.NewReader("x"), "exports/out.csv", "text/csv")
	require.NoError(t, err)

	exists, err = store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, path))

	exists, err = store.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, path))
}

func TestLocalStorage_RejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/files")
	require.NoError(t, err)

	_, err = store.Save(ctx, strings.NewReader("x"), "../outside.csv", "text/csv")
	assert.Error(t, err)
}
