package service

// BadgeEncoder renders the scannable identity badge of a personnel record.
type BadgeEncoder interface {
	// Encode returns a PNG QR code identifying the service number.
	Encode(serviceNumber string) ([]byte, error)
}
