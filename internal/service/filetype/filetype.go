// Package filetype classifies an opaque byte blob from its header bytes
// so a stored document can be served with a usable name and content type.
// Nothing about the type is persisted; detection runs at read time.
package filetype

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type FileType struct {
	ContentType string
	Extension   string
}

var (
	sigPDF  = []byte("%PDF")
	sigPNG  = []byte{0x89, 'P', 'N', 'G'}
	sigJPEG = []byte{0xFF, 0xD8}
	sigZIP  = []byte{'P', 'K', 0x03, 0x04}

	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// maxNulRun is the longest run of NUL bytes still tolerated in text.
const maxNulRun = 3

// Detect classifies a blob. Anything unrecognized stays a generic binary.
func Detect(data []byte) FileType {
	binary := FileType{ContentType: "application/octet-stream", Extension: ".bin"}

	if len(data) >= 4 {
		switch {
		case bytes.HasPrefix(data, sigPDF):
			return FileType{ContentType: "application/pdf", Extension: ".pdf"}
		case bytes.HasPrefix(data, sigPNG):
			return FileType{ContentType: "image/png", Extension: ".png"}
		case bytes.HasPrefix(data, sigJPEG):
			return FileType{ContentType: "image/jpeg", Extension: ".jpg"}
		case bytes.HasPrefix(data, sigZIP):
			// Office Open XML is a ZIP container; uploads here are
			// overwhelmingly Word documents, so a ZIP header is
			// reported as .docx rather than distinguished further.
			return FileType{
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Extension:   ".docx",
			}
		}
	}

	if looksLikeText(data) {
		return FileType{ContentType: "text/plain", Extension: ".txt"}
	}

	return binary
}

// looksLikeText reports whether the blob is plausibly a text file: a
// Unicode byte-order mark, or valid UTF-8 whose every rune is
// alphanumeric, punctuation, whitespace or symbol. NUL bytes are
// tolerated individually but a run longer than maxNulRun marks the blob
// as binary.
func looksLikeText(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	if bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16BE) ||
		bytes.HasPrefix(data, bomUTF16LE) {
		return true
	}

	if !utf8.Valid(data) {
		return false
	}

	nulRun := 0
	for _, r := range string(data) {
		if r == 0 {
			nulRun++
			if nulRun > maxNulRun {
				return false
			}
			continue
		}
		nulRun = 0

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsPunct(r) &&
			!unicode.IsSpace(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
