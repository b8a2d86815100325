package qr_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/kinun-go/internal/adapters/qr"
)

const addFriend = "https://line.me/R/ti/p/@042rsqoj"

func TestEncoder_PNG(t *testing.T) {
	b, err := qr.NewEncoder().PNG(addFriend, 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestEncoder_Text(t *testing.T) {
	enc := qr.NewEncoder()

	text, err := enc.Text(addFriend)
	require.NoError(t, err)
	assert.Greater(t, len(strings.Split(strings.TrimSpace(text), "\n")), 10)

	again, err := enc.Text(addFriend)
	require.NoError(t, err)
	assert.Equal(t, text, again)
}
