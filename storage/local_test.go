package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	fileID := uuid.New()

	path, err := store.Upload(ctx, fileID, "bo luat lao dong.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Contains(t, path, fileID.String())
	assert.NotContains(t, path, " ")

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	// Deleting a path that was never uploaded is not an error.
	assert.NoError(t, store.Delete(context.Background(), "ab/does-not-exist.pdf"))
}

func TestGenerateStoragePathSanitizes(t *testing.T) {
	fileID := uuid.New()
	path := generateStoragePath(fileID, "nghị định/15 2020.docx")
	assert.Equal(t, fileID.String()[:2]+"/"+fileID.String()+"_nghị_định_15_2020.docx", path)
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"van-ban.PDF", "application/pdf"},
		{"van-ban.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"van-ban.txt", "text/plain; charset=utf-8"},
		{"van-ban.json", "application/json"},
		{"van-ban.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, getContentType(tt.filename))
		})
	}
}
