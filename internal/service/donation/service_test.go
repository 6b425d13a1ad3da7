package donation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentFileName(t *testing.T) {
	date := time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		donor string
		ext   string
		want  string
	}{
		{"pdf", "Jane Doe", ".pdf", "Donation_Jane Doe_20250309.pdf"},
		{"binary fallback", "ACME", ".bin", "Donation_ACME_20250309.bin"},
		{"text", "O'Leary", ".txt", "Donation_O'Leary_20250309.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentFileName(tt.donor, date, tt.ext))
		})
	}
}

func TestDocumentFileNamePadsDate(t *testing.T) {
	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Donation_X_20240102.pdf", DocumentFileName("X", date, ".pdf"))
}
