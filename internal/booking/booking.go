// Package booking keeps the list of reservations of a trip.
package booking

import (
	"fmt"
	"strings"

	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/models"
)

// Input carries the fields of a new reservation. Empty type and status
// default to ticket and pending.
type Input struct {
	Type      models.ReservationType
	Name      string
	Status    models.ReservationStatus
	DateTime  string
	RefNumber string
	Notes     string
	URL       string
}

// Patch lists the fields to change on a reservation. Nil fields are kept.
type Patch struct {
	Type      *models.ReservationType
	Name      *string
	Status    *models.ReservationStatus
	DateTime  *string
	RefNumber *string
	Notes     *string
	URL       *string
}

func validate(r models.Reservation) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", models.ErrInvalidReservation)
	}
	if !models.IsValidReservationType(r.Type) {
		return fmt.Errorf("%w: unknown type %q", models.ErrInvalidReservation, r.Type)
	}
	if !models.IsValidReservationStatus(r.Status) {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidReservation, r.Status)
	}
	return nil
}

// Add validates in and appends it as a new reservation.
func Add(list []models.Reservation, in Input) ([]models.Reservation, models.Reservation, error) {
	r := models.Reservation{
		ID:        ident.New(),
		Type:      in.Type,
		Name:      strings.TrimSpace(in.Name),
		Status:    in.Status,
		DateTime:  in.DateTime,
		RefNumber: in.RefNumber,
		Notes:     in.Notes,
		URL:       in.URL,
	}
	if r.Type == "" {
		r.Type = models.ReservationTicket
	}
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	if err := validate(r); err != nil {
		return list, models.Reservation{}, err
	}
	return append(list, r), r, nil
}

// Update merges patch onto the reservation with the given id. An unknown id
// reports false.
func Update(list []models.Reservation, id string, patch Patch) (models.Reservation, bool, error) {
	idx := indexOf(list, id)
	if idx < 0 {
		return models.Reservation{}, false, nil
	}
	r := list[idx]
	if patch.Type != nil {
		r.Type = *patch.Type
	}
	if patch.Name != nil {
		r.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.DateTime != nil {
		r.DateTime = *patch.DateTime
	}
	if patch.RefNumber != nil {
		r.RefNumber = *patch.RefNumber
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.URL != nil {
		r.URL = *patch.URL
	}
	if err := validate(r); err != nil {
		return models.Reservation{}, true, err
	}
	list[idx] = r
	return r, true, nil
}

// Delete removes the reservation with the given id.
func Delete(list []models.Reservation, id string) ([]models.Reservation, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	return append(list[:idx], list[idx+1:]...), true
}

// Find returns the reservation with the given id.
func Find(list []models.Reservation, id string) (models.Reservation, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return models.Reservation{}, false
	}
	return list[idx], true
}

func indexOf(list []models.Reservation, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// StatusLabel is the display text of a status. Anything unknown reads as pending.
func StatusLabel(s models.ReservationStatus) string {
	switch s {
	case models.StatusBooked:
		return "Booked"
	case models.StatusToBook:
		return "To book"
	default:
		return "Pending"
	}
}

// TypeIcon is a one-glyph marker for a reservation type.
func TypeIcon(t models.ReservationType) string {
	switch t {
	case models.ReservationFlight:
		return "✈"
	case models.ReservationHotel:
		return "🏨"
	case models.ReservationRestaurant:
		return "🍴"
	default:
		return "🎫"
	}
}
