package pdfrender

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// decodeInlineImage parses a "data:image/<type>;base64,<payload>" URI and
// validates the payload is a decodable raster before it ever reaches the
// document builder. A broken image must only cost its own drawing step, never
// poison the page.
func decodeInlineImage(dataURI string) (data []byte, imageType string, err error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, "", fmt.Errorf("not an inline image")
	}

	head, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, "", fmt.Errorf("malformed data uri")
	}
	if !strings.HasSuffix(head, ";base64") {
		return nil, "", fmt.Errorf("unsupported data uri encoding")
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "png", "jpeg", "gif":
		return data, strings.ToUpper(strings.Replace(format, "jpeg", "jpg", 1)), nil
	default:
		return nil, "", fmt.Errorf("unsupported image format %v", format)
	}
}
