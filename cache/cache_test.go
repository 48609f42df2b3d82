package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(dir, "my-post", "# source", "<h1>rendered</h1>"))

	html, ok := Read(dir, "my-post", "# source", time.Hour)
	require.True(t, ok)
	assert.Equal(t, "<h1>rendered</h1>", html)
}

func TestRead_MissesOnChangedSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "my-post", "old source", "<p>old</p>"))

	_, ok := Read(dir, "my-post", "new source", time.Hour)
	assert.False(t, ok)
}

func TestRead_MissesWhenAbsent(t *testing.T) {
	_, ok := Read(t.TempDir(), "nothing", "src", time.Hour)
	assert.False(t, ok)
}

func TestClear_RemovesAllHashesForPost(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "my-post", "v1", "<p>1</p>"))
	require.NoError(t, Write(dir, "my-post", "v2", "<p>2</p>"))
	require.NoError(t, Write(dir, "other", "v1", "<p>x</p>"))

	require.NoError(t, Clear(dir, "my-post"))

	_, ok := Read(dir, "my-post", "v1", time.Hour)
	assert.False(t, ok)
	_, ok = Read(dir, "my-post", "v2", time.Hour)
	assert.False(t, ok)
	_, ok = Read(dir, "other", "v1", time.Hour)
	assert.True(t, ok)
}
