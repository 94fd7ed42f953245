package domain

type RentalStatus string

const (
	// RentalStatusPending exists only for free-rental requests awaiting the
	// owner handshake. Paid bookings are inserted directly as confirmed.
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusFailed    RentalStatus = "failed"
)

type Rental struct {
	ID               int32        `json:"id"`
	ListingID        int32        `json:"listing_id"`
	RenterID         string       `json:"renter_id"`
	StartDate        string       `json:"start_date"`
	EndDate          string       `json:"end_date"`
	TotalAmountCents int32        `json:"total_amount_cents"`
	PickupLocation   string       `json:"pickup_location,omitempty"`
	DropoffLocation  string       `json:"dropoff_location,omitempty"`
	PaymentID        *string      `json:"payment_id,omitempty"`
	IdempotencyKey   string       `json:"-"`
	Status           RentalStatus `json:"status"`
	CreatedOn        string       `json:"created_on,omitempty"`
}

// RentalRequest is the validated booking input. It is never persisted; a row
// appears in the rentals table only once the outcome is known.
type RentalRequest struct {
	ListingID       int32
	RenterID        string
	StartDate       string
	EndDate         string
	PickupLocation  string
	DropoffLocation string
}

// RentalWithListing pairs a rental with the public summary of its listing for
// the rental-history read path.
type RentalWithListing struct {
	Rental
	Listing ListingSummary `json:"listing"`
}

// ContactInfo is the seller contact released by the disclosure gate.
type ContactInfo struct {
	PhoneNumber  string `json:"phone_number"`
	ContactEmail string `json:"contact_email"`
}
