package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Encoder implements ports.QREncoder.
type Encoder struct {
	level qrcode.RecoveryLevel
}

func NewEncoder() *Encoder {
	return &Encoder{level: qrcode.Medium}
}

func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, e.level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// Text renders two modules per character row using half-block glyphs.
func (e *Encoder) Text(content string) (string, error) {
	q, err := qrcode.New(content, e.level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}
