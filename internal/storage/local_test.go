package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "eggs.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/static/images/"), "unexpected reference %q", ref)
	assert.True(t, strings.HasSuffix(ref, "_eggs.jpg"), "original filename should be kept as suffix, got %q", ref)

	// The referenced file exists on disk with the uploaded content.
	name := strings.TrimPrefix(ref, "/static/images/")
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalStore_Save_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	ref1, err := store.Save(ctx, "eggs.jpg", strings.NewReader("a"))
	require.NoError(t, err)

	ref2, err := store.Save(ctx, "eggs.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestLocalStore_Save_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, ref, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_passwd"))
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")

	_, err := NewLocalStore(dir, zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
