package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR generates a QR code image for an order reference
	GenerateOrderQR(reference string) ([]byte, error)

	// ParseOrderQR parses QR code data and returns the order reference
	ParseOrderQR(qrData string) (string, error)
}
