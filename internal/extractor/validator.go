package extractor

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/aleister1102/rtfcompare/internal/common"
)

// validationSniffLen is how many leading bytes the format check inspects
const validationSniffLen = 50

// ValidateRTF checks that an uploaded file looks like an RTF document:
// .rtf extension, non-empty content and the RTF group signature within the
// leading bytes. The returned error carries a user-presentable reason.
func ValidateRTF(filename string, content []byte) error {
	if !strings.EqualFold(filepath.Ext(filename), ".rtf") {
		return common.NewValidationError("filename", filename, "file must have .rtf extension")
	}

	head := content
	if len(head) > validationSniffLen {
		head = head[:validationSniffLen]
	}

	if len(bytes.TrimSpace(head)) == 0 {
		return common.NewValidationError("content", filename, "file appears to be empty")
	}

	lowered := bytes.ToLower(head)
	if !bytes.Contains(lowered, []byte("rtf")) || !bytes.Contains(head, []byte("{")) {
		return common.NewValidationError("content", filename, "file does not appear to be valid RTF format")
	}

	return nil
}

// ValidateDocument checks an uploaded file against the formats the
// extractor supports. RTF files get the full signature check; HTML and
// plain text only need content.
func ValidateDocument(filename string, content []byte) error {
	if !IsSupportedExtension(filename) {
		return common.NewValidationError("filename", filename, "unsupported file type, use .rtf, .html, .htm or .txt")
	}

	if strings.EqualFold(filepath.Ext(filename), ".rtf") {
		return ValidateRTF(filename, content)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return common.NewValidationError("content", filename, "file appears to be empty")
	}
	return nil
}

// IsSupportedExtension reports whether the extractor can handle the file
func IsSupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rtf", ".html", ".htm", ".txt":
		return true
	}
	return false
}
