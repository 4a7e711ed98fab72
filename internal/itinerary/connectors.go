package itinerary

import "github.com/ukydev/trip-planner/internal/models"

// Connector is the gap between two consecutive events of a day.
type Connector struct {
	From    models.Event
	To      models.Event
	Transit *models.TransportDetail // nil when no travel detail was recorded
}

// Connectors derives the gaps of day from the current event order. A link
// stored on the last event has no successor and is ignored.
func Connectors(day *models.Day) []Connector {
	if len(day.Events) < 2 {
		return nil
	}
	out := make([]Connector, 0, len(day.Events)-1)
	for i := 0; i < len(day.Events)-1; i++ {
		out = append(out, Connector{
			From:    day.Events[i],
			To:      day.Events[i+1],
			Transit: day.Events[i].TransitToNext,
		})
	}
	return out
}
