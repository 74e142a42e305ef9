package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR generates a QR code customers scan to check in at a business
	GenerateCheckInQR(businessID uuid.UUID) ([]byte, error)

	// ParseCheckInQR parses QR code data and returns the business ID
	ParseCheckInQR(qrData string) (uuid.UUID, error)
}
