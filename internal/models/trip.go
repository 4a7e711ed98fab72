package models

// TripDocument is the root of everything the planner persists. There is exactly
// one per installation and it is always written as a whole.
type TripDocument struct {
	CurrencyRate float64       `json:"currencyRate" bson:"currencyRate"` // primary -> secondary multiplier
	Members      []string      `json:"members" bson:"members"`
	Expenses     []Expense     `json:"expenses" bson:"expenses"`
	PackingList  []PackingItem `json:"packingList" bson:"packingList"`
	Reservations []Reservation `json:"reservations" bson:"reservations"`
	Days         []Day         `json:"days" bson:"days"`
}

// Day is one calendar day of the itinerary.
type Day struct {
	Date        string    `json:"date" bson:"date"`
	Weekday     string    `json:"weekday" bson:"weekday"`
	Title       string    `json:"title" bson:"title"`
	Weather     string    `json:"weather" bson:"weather"`
	LocationKey string    `json:"locationKey" bson:"locationKey"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Events      []Event   `json:"events" bson:"events"`
	MealOptions *MealPlan `json:"mealOptions,omitempty" bson:"mealOptions,omitempty"`
}

// Event is a scheduled stop. Events of a day are kept ordered by Time ("HH:MM").
type Event struct {
	ID    string    `json:"id" bson:"id"`
	Time  string    `json:"time" bson:"time"`
	Type  EventType `json:"type" bson:"type"`
	Title string    `json:"title" bson:"title"`
	Loc   string    `json:"loc" bson:"loc"`
	Image string    `json:"image,omitempty" bson:"image,omitempty"`
	Tags  []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Desc  string    `json:"desc,omitempty" bson:"desc,omitempty"`
	Note  string    `json:"note,omitempty" bson:"note,omitempty"`
	// TransitToNext describes travel to the event that follows this one in the same day.
	TransitToNext *TransportDetail `json:"transitToNext,omitempty" bson:"transitToNext,omitempty"`
	SubItems      []SubItem        `json:"subItems" bson:"subItems"`
}

// SubItem is a "must buy / eat / do" checklist entry attached to an event.
type SubItem struct {
	ID      string      `json:"id" bson:"id"`
	Type    SubItemType `json:"type" bson:"type"`
	Text    string      `json:"text" bson:"text"`
	Checked bool        `json:"checked" bson:"checked"`
}

// TransportDetail describes how to get from one event to the next.
type TransportDetail struct {
	Mode     TransportMode `json:"mode" bson:"mode"`
	Duration string        `json:"duration" bson:"duration"` // free text, e.g. "25m"
	Note     string        `json:"note,omitempty" bson:"note,omitempty"`
	URL      string        `json:"url,omitempty" bson:"url,omitempty"`
}

// MealPlan holds the restaurant shortlist of a day.
type MealPlan struct {
	Breakfast []RestaurantOption `json:"breakfast" bson:"breakfast"`
	Lunch     []RestaurantOption `json:"lunch" bson:"lunch"`
	Dinner    []RestaurantOption `json:"dinner" bson:"dinner"`
}

// NewMealPlan returns a plan with three empty buckets.
func NewMealPlan() *MealPlan {
	return &MealPlan{
		Breakfast: []RestaurantOption{},
		Lunch:     []RestaurantOption{},
		Dinner:    []RestaurantOption{},
	}
}

// Bucket returns the list for the given meal, or nil for an unknown meal type.
func (p *MealPlan) Bucket(meal MealType) *[]RestaurantOption {
	switch meal {
	case MealBreakfast:
		return &p.Breakfast
	case MealLunch:
		return &p.Lunch
	case MealDinner:
		return &p.Dinner
	default:
		return nil
	}
}

// RestaurantOption is one candidate place for a meal.
type RestaurantOption struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Dish        string `json:"dish" bson:"dish"`
	PriceLevel  string `json:"priceLevel" bson:"priceLevel"` // display only, e.g. "¥1000~"
	Rating      string `json:"rating,omitempty" bson:"rating,omitempty"`
	Note        string `json:"note,omitempty" bson:"note,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	LocationURL string `json:"locationUrl,omitempty" bson:"locationUrl,omitempty"`
}

// Reservation is a booking such as a flight or a hotel stay.
type Reservation struct {
	ID        string            `json:"id" bson:"id"`
	Type      ReservationType   `json:"type" bson:"type"`
	Name      string            `json:"name" bson:"name"`
	Status    ReservationStatus `json:"status" bson:"status"`
	DateTime  string            `json:"dateTime" bson:"dateTime"` // free text
	RefNumber string            `json:"refNumber,omitempty" bson:"refNumber,omitempty"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	URL       string            `json:"url,omitempty" bson:"url,omitempty"`
}

// PackingItem is a line of the packing checklist.
type PackingItem struct {
	ID       string `json:"id" bson:"id"`
	Category string `json:"category" bson:"category"`
	Text     string `json:"text" bson:"text"`
	Checked  bool   `json:"checked" bson:"checked"`
}

// Expense is a shared cost. Amount is in whole units of the primary currency.
type Expense struct {
	ID       string   `json:"id" bson:"id"`
	Title    string   `json:"title" bson:"title"`
	Amount   int64    `json:"amount" bson:"amount"`
	Payer    string   `json:"payer" bson:"payer"`
	Involved []string `json:"involved" bson:"involved"`
	Date     string   `json:"date" bson:"date"` // ISO timestamp, informational
}
