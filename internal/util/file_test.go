package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	mime, err := ValidateMimeType(bytes.NewReader(png), []string{MimeImage})
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	mime, err = ValidateMimeType(bytes.NewReader([]byte("plain text")), []string{MimeImage})
	assert.Error(t, err)
	assert.Contains(t, mime, "text/plain")

	// 短于 512 字节的内容也能嗅探
	_, err = ValidateMimeType(bytes.NewReader([]byte{0x00, 0x01}), []string{MimeImage, MimeOctetStream})
	assert.NoError(t, err)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/jpeg"))
	assert.True(t, IsImage(" IMAGE/HEIC "))
	assert.False(t, IsImage("application/pdf"))
	assert.False(t, IsImage(""))
}

func TestImageExtension(t *testing.T) {
	tests := []struct {
		sniffed, declared, filename string
		wantExt, wantType          string
	}{
		{"image/png", "image/jpeg", "me.JPG", ".png", "image/png"},
		{"image/jpeg", "image/jpeg", "me.jpeg", ".jpg", "image/jpeg"},
		{MimeOctetStream, "image/heic", "IMG.HEIC", ".heic", "image/heic"},
		{MimeOctetStream, "image/png", "evil.html", ".png", "image/png"},
		{MimeOctetStream, "image/x-unknown", "photo.WEBP", ".webp", "image/webp"},
		{MimeOctetStream, "image/x-unknown", "photo.jpeg", ".jpg", "image/jpeg"},
		{MimeOctetStream, "image/svg+xml", "evil.svg", ".png", "image/png"},
		{MimeOctetStream, "image/x-unknown", "", DefaultImageExt, "image/png"},
	}
	for _, tt := range tests {
		ext, mediaType := ImageExtension(tt.sniffed, tt.declared, tt.filename)
		assert.Equal(t, tt.wantExt, ext, tt.filename)
		assert.Equal(t, tt.wantType, mediaType, tt.filename)
	}
}
