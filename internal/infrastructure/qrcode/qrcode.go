package qrcode

import (
	"errors"

	goqrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("empty qr code content")

// PNG renders content (a PIX copy-and-paste code) as a PNG image.
func PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	return goqrcode.Encode(content, goqrcode.Medium, size)
}
