package image

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Encoder_Encode(t *testing.T) {
	encoder := NewBase64Encoder()

	encoded, err := encoder.Encode(strings.NewReader("fake image bytes"))

	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(decoded))
}

func TestBase64Encoder_RejectsOversizedUpload(t *testing.T) {
	encoder := NewBase64Encoder()
	oversized := bytes.Repeat([]byte{0xff}, maxBlobBytes+1)

	_, err := encoder.Encode(bytes.NewReader(oversized))

	assert.ErrorIs(t, err, ErrBlobTooLarge)
}

func TestBase64Encoder_EmptyUpload(t *testing.T) {
	encoder := NewBase64Encoder()

	encoded, err := encoder.Encode(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, encoded)
}
