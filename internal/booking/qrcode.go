package booking

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	"github.com/ukydev/trip-planner/internal/models"
)

// QRContent is what gets encoded for r: the booking link, else the
// reference number, else the name.
func QRContent(r models.Reservation) string {
	switch {
	case r.URL != "":
		return r.URL
	case r.RefNumber != "":
		return r.RefNumber
	default:
		return r.Name
	}
}

// QRCode renders QRContent(r) as a square PNG of the given size in pixels.
func QRCode(r models.Reservation, size int) ([]byte, error) {
	content := QRContent(r)
	if content == "" {
		return nil, fmt.Errorf("%w: nothing to encode for %s", models.ErrInvalidReservation, r.ID)
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
