// Package image implements the BlobEncoder collaborator. Uploads are stored
// inline on documents as base64 text, matching the directory's data model;
// the rest of the system treats the result as an opaque string.
package image

import (
	"encoding/base64"
	"io"

	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/service"

	"github.com/pkg/errors"
)

// maxBlobBytes bounds a single upload before encoding.
const maxBlobBytes = 4 << 20

// ErrBlobTooLarge is returned when an upload exceeds maxBlobBytes. It is an
// application validation error, so it surfaces to the client as a 400.
var ErrBlobTooLarge = domainerrors.ErrValidationFailed.WithDetails("image upload exceeds the 4MB limit")

type base64Encoder struct{}

// NewBase64Encoder is the constructor for base64Encoder.
func NewBase64Encoder() service.BlobEncoder {
	return &base64Encoder{}
}

// Encode reads the upload and returns its base64 representation.
func (e *base64Encoder) Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBlobBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read image upload")
	}
	if len(data) > maxBlobBytes {
		return "", ErrBlobTooLarge
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
