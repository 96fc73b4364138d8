package recipe

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	MaxImageSize    = 10 << 20
	magicNumberSeek = 512
	dataURLScheme   = "data:"
	base64Marker    = ";base64"
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrImageTooLarge       = errors.New("image too large")
	ErrInvalidImage        = errors.New("invalid image data url")
)

type Image struct {
	Data     []byte
	Suffix   string
	MimeType string
}

// DecodeDataURL decodes a `data:<mime>;base64,<payload>` image. The declared
// MIME type is ignored; the type is sniffed from the decoded bytes.
func DecodeDataURL(raw string) (Image, error) {
	if !strings.HasPrefix(raw, dataURLScheme) {
		return Image{}, fmt.Errorf("missing %q prefix: %w", dataURLScheme, ErrInvalidImage)
	}
	header, payload, ok := strings.Cut(raw[len(dataURLScheme):], ",")
	if !ok {
		return Image{}, fmt.Errorf("missing payload separator: %w", ErrInvalidImage)
	}
	if !strings.HasSuffix(header, base64Marker) {
		return Image{}, fmt.Errorf("payload is not base64: %w", ErrInvalidImage)
	}
	payload = strings.TrimSpace(payload)
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageSize+2 {
		return Image{}, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, errors.Join(ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("empty payload: %w", ErrInvalidImage)
	}
	if len(data) > MaxImageSize {
		return Image{}, ErrImageTooLarge
	}

	contentType := sniff(data)
	if !allowedImageTypes[contentType] {
		return Image{}, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return Image{
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

func sniff(data []byte) string {
	head := data[:min(len(data), magicNumberSeek)]
	contentType := http.DetectContentType(head)
	// DetectContentType has no svg signature; svg sniffs as xml or text.
	if strings.HasPrefix(contentType, "text/xml") || strings.HasPrefix(contentType, "text/plain") {
		if bytes.Contains(head, []byte("<svg")) {
			return "image/svg+xml"
		}
	}
	return strings.TrimSpace(strings.Split(contentType, ";")[0])
}
