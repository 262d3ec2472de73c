package extraction

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// Document is one uploaded ticket or itinerary
type Document struct {
	Base64   string
	MimeType string
}

var acceptedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
}

// Decode validates and decodes the document payload. The media type is
// sniffed from the decoded bytes rather than trusted from the upload.
func (d Document) Decode() ([]byte, string, error) {
	if d.Base64 == "" {
		return nil, "", fmt.Errorf("empty document payload")
	}
	data, err := base64.StdEncoding.DecodeString(d.Base64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}

	// Uploads lie about their type often enough; the sniffed type wins.
	detected := mimetype.Detect(data).String()
	if !acceptedMimeTypes[detected] {
		return nil, "", fmt.Errorf("unsupported document type %q", detected)
	}
	return data, detected, nil
}
