package service

import "io"

// BlobEncoder converts uploaded binary content into the opaque string form
// stored on documents. The core never inspects the format.
type BlobEncoder interface {
	// Encode reads the upload and returns its storable representation.
	Encode(r io.Reader) (string, error)
}
