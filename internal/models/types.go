package models

// EventType classifies an itinerary event.
type EventType string

const (
	EventSight     EventType = "sight"
	EventFood      EventType = "food"
	EventTransport EventType = "transport"
	EventHotel     EventType = "hotel"
)

// SubItemType classifies a checklist entry of an event.
type SubItemType string

const (
	SubItemBuy SubItemType = "buy"
	SubItemEat SubItemType = "eat"
	SubItemDo  SubItemType = "do"
)

// TransportMode is the way of travelling between two events.
type TransportMode string

const (
	ModeTrain TransportMode = "train"
	ModeWalk  TransportMode = "walk"
	ModeTaxi  TransportMode = "taxi"
	ModeBus   TransportMode = "bus"
	ModeOther TransportMode = "other"
)

// MealType names one of the three buckets of a MealPlan.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// ReservationType classifies a booking.
type ReservationType string

const (
	ReservationFlight     ReservationType = "flight"
	ReservationHotel      ReservationType = "hotel"
	ReservationRestaurant ReservationType = "restaurant"
	ReservationTicket     ReservationType = "ticket"
)

// ReservationStatus is the booking state of a reservation.
type ReservationStatus string

const (
	StatusBooked  ReservationStatus = "booked"
	StatusPending ReservationStatus = "pending"
	StatusToBook  ReservationStatus = "to-book"
)

// IsValidEventType checks if an event type is valid
func IsValidEventType(t EventType) bool {
	switch t {
	case EventSight, EventFood, EventTransport, EventHotel:
		return true
	default:
		return false
	}
}

// IsValidSubItemType checks if a sub-item type is valid
func IsValidSubItemType(t SubItemType) bool {
	switch t {
	case SubItemBuy, SubItemEat, SubItemDo:
		return true
	default:
		return false
	}
}

// IsValidTransportMode checks if a transport mode is valid
func IsValidTransportMode(m TransportMode) bool {
	switch m {
	case ModeTrain, ModeWalk, ModeTaxi, ModeBus, ModeOther:
		return true
	default:
		return false
	}
}

// IsValidMealType checks if a meal type is valid
func IsValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

// IsValidReservationType checks if a reservation type is valid
func IsValidReservationType(t ReservationType) bool {
	switch t {
	case ReservationFlight, ReservationHotel, ReservationRestaurant, ReservationTicket:
		return true
	default:
		return false
	}
}

// IsValidReservationStatus checks if a reservation status is valid
func IsValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case StatusBooked, StatusPending, StatusToBook:
		return true
	default:
		return false
	}
}
