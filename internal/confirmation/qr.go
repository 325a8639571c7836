// Package confirmation builds the scannable confirmation link shown after registering.
package confirmation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	maxSize     = 1024
)

// URL joins the public base URL with the confirmation page path.
func URL(publicURL, path string) string {
	return strings.TrimRight(publicURL, "/") + path
}

// PNG encodes content as a QR code image of size x size pixels.
func PNG(content string, size int) ([]byte, error) {
	if size <= 0 || size > maxSize {
		size = DefaultSize
	}
	if _, err := url.Parse(content); err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
