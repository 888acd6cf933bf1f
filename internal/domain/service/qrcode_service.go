package service

import "github.com/google/uuid"

// QRCodeService renders a scannable share code for a listing page.
type QRCodeService interface {
	// GenerateListingQR returns a PNG QR code that points at the public
	// page of the given listing.
	GenerateListingQR(businessID uuid.UUID) ([]byte, error)
}
