package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSignatures(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		extension   string
	}{
		{
			name:        "pdf",
			data:        []byte("%PDF-1.7 some pdf body"),
			contentType: "application/pdf",
			extension:   ".pdf",
		},
		{
			name:        "png",
			data:        []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
			contentType: "image/png",
			extension:   ".png",
		},
		{
			name:        "jpeg",
			data:        []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			contentType: "image/jpeg",
			extension:   ".jpg",
		},
		{
			name:        "zip treated as docx",
			data:        []byte{'P', 'K', 0x03, 0x04, 0x14, 0x00},
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			extension:   ".docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := Detect(tt.data)
			assert.Equal(t, tt.contentType, ft.ContentType)
			assert.Equal(t, tt.extension, ft.Extension)
		})
	}
}

func TestDetectText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		text bool
	}{
		{"plain ascii sentence", []byte("The quick brown fox jumps over the lazy dog."), true},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, true},
		{"utf16 be bom", []byte{0xFE, 0xFF, 0x00, 'h'}, true},
		{"utf16 le bom", []byte{0xFF, 0xFE, 'h', 0x00}, true},
		{"multiline with punctuation", []byte("Dear admin,\n\nPlease find the receipt attached.\n\t- A donor"), true},
		{"unicode letters", []byte("Résumé für die Stiftung"), true},
		{"three consecutive nuls tolerated", []byte("abc\x00\x00\x00def"), true},
		{"four consecutive nuls are binary", []byte{0x00, 0x00, 0x00, 0x00}, false},
		{"nul run inside text is binary", []byte("abc\x00\x00\x00\x00def"), false},
		{"control bytes are binary", []byte{'a', 0x07, 'b', 'c'}, false},
		{"invalid utf8 is binary", []byte{0xC3, 0x28, 0x41, 0x42}, false},
		{"empty is binary", []byte{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := Detect(tt.data)
			if tt.text {
				assert.Equal(t, "text/plain", ft.ContentType)
				assert.Equal(t, ".txt", ft.Extension)
			} else {
				assert.Equal(t, "application/octet-stream", ft.ContentType)
				assert.Equal(t, ".bin", ft.Extension)
			}
		})
	}
}

func TestDetectShortInputSkipsSignatures(t *testing.T) {
	// A bare JPEG marker is under the 4-byte signature gate and is not
	// valid UTF-8 either, so it stays a generic binary.
	ft := Detect([]byte{0xFF, 0xD8})
	assert.Equal(t, "application/octet-stream", ft.ContentType)
	assert.Equal(t, ".bin", ft.Extension)
}
