package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code pointing at the profile's share link
	GenerateProfileQR(profileID string) ([]byte, error)

	// ProfileLink returns the share link encoded in the QR code
	ProfileLink(profileID string) string
}
