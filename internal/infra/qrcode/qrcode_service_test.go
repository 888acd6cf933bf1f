package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateListingQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(128, "M", "https://directory.example/businesses")

	png, err := svc.GenerateListingQR(uuid.New())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected a PNG payload")
}

func TestGenerateListingQR_DefaultsApply(t *testing.T) {
	// Unknown correction level and non-positive size fall back to defaults.
	svc := NewQRCodeService(0, "X", "https://directory.example/businesses/")

	png, err := svc.GenerateListingQR(uuid.New())

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
