package ports

// QREncoder renders QR codes for a URL.
type QREncoder interface {
	// PNG returns a size×size PNG image.
	PNG(content string, size int) ([]byte, error)
	// Text returns a block-character rendering for terminals.
	Text(content string) (string, error)
}
