package domain

type RentalType string

const (
	RentalTypeRent RentalType = "rent"
	RentalTypeFree RentalType = "free"
)

type Listing struct {
	ID               int32      `json:"id"`
	OwnerID          string     `json:"-"`
	Title            string     `json:"title"`
	ItemType         string     `json:"itemType"`
	Size             string     `json:"size"`
	Condition        string     `json:"condition"`
	WashInstructions string     `json:"washInstructions"`
	PricePerDayCents int32      `json:"pricePerDayCents"`
	RentalType       RentalType `json:"rentalType"`
	AvailableFrom    string     `json:"startDate"`
	AvailableTo      string     `json:"endDate"`
	ImageURL         string     `json:"imageURL,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	ContactEmail     string     `json:"contact_email,omitempty"`
	CreatedOn        string     `json:"created_on,omitempty"`
}

// ListingSummary is the public projection of a listing. Contact fields are
// deliberately absent: they are released only through the disclosure gate.
type ListingSummary struct {
	ID               int32      `json:"id"`
	Title            string     `json:"title"`
	ItemType         string     `json:"itemType"`
	Size             string     `json:"size"`
	Condition        string     `json:"condition"`
	WashInstructions string     `json:"washInstructions"`
	PricePerDayCents int32      `json:"pricePerDayCents"`
	RentalType       RentalType `json:"rentalType"`
	AvailableFrom    string     `json:"startDate"`
	AvailableTo      string     `json:"endDate"`
	ImageURL         string     `json:"imageURL,omitempty"`
}

func (l *Listing) Summary() ListingSummary {
	return ListingSummary{
		ID:               l.ID,
		Title:            l.Title,
		ItemType:         l.ItemType,
		Size:             l.Size,
		Condition:        l.Condition,
		WashInstructions: l.WashInstructions,
		PricePerDayCents: l.PricePerDayCents,
		RentalType:       l.RentalType,
		AvailableFrom:    l.AvailableFrom,
		AvailableTo:      l.AvailableTo,
		ImageURL:         l.ImageURL,
	}
}
