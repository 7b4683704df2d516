package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litrevu/internal/shared/logger"
)

func newTestStorage(t *testing.T) *LocalMediaStorage {
	t.Helper()
	s, err := NewLocalMediaStorage(t.TempDir(), logger.NewLogger())
	require.NoError(t, err)
	return s
}

func TestLocalMediaStorage_SaveAndDelete(t *testing.T) {
	s := newTestStorage(t)

	relPath, err := s.Save("cover.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "tickets/"))
	assert.True(t, strings.HasSuffix(relPath, ".png"))

	data, err := os.ReadFile(s.AbsolutePath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, s.Delete(relPath))
	_, err = os.Stat(s.AbsolutePath(relPath))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalMediaStorage_SaveRejectsUnknownExtension(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Save("script.sh", strings.NewReader("#!/bin/sh"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestLocalMediaStorage_DeleteMissingFileIsNoop(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete("tickets/gone.png"))
	assert.NoError(t, s.Delete(""))
}

func TestLocalMediaStorage_SaveGeneratesDistinctNames(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.Save("a.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := s.Save("a.jpg", strings.NewReader("two"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestIsAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.webp", true},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAllowedExtension(tt.filename), tt.filename)
	}
}

func TestNewLocalMediaStorage_RequiresRoot(t *testing.T) {
	_, err := NewLocalMediaStorage("", logger.NewLogger())
	assert.Error(t, err)
}

func TestLocalMediaStorage_AbsolutePath(t *testing.T) {
	s := newTestStorage(t)
	assert.Equal(t, filepath.Join(s.Root(), "tickets", "x.png"), s.AbsolutePath("tickets/x.png"))
}
