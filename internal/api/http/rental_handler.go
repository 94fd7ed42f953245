package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler serves the booking transaction and the rental read paths.
type RentalHandler struct {
	bookingSvc service.BookingService
	rentalSvc  service.RentalService
	accounts   accountResolver
}

func NewRentalHandler(bookingSvc service.BookingService, rentalSvc service.RentalService, accounts accountResolver) *RentalHandler {
	return &RentalHandler{
		bookingSvc: bookingSvc,
		rentalSvc:  rentalSvc,
		accounts:   accounts,
	}
}

// processPaymentRequest is the validated schema for POST /api/process-payment.
// Unknown fields are rejected at the boundary.
type processPaymentRequest struct {
	SourceID        string      `json:"sourceId"`
	Amount          json.Number `json:"amount"`
	ListingID       int32       `json:"listingId"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	UserEmail       string      `json:"userEmail"`
	PickupLocation  string      `json:"pickupLocation"`
	DropoffLocation string      `json:"dropoffLocation"`
	IdempotencyKey  string      `json:"idempotencyKey,omitempty"`
}

// ProcessPayment handles POST /api/process-payment: the paid booking flow.
func (h *RentalHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req processPaymentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if req.SourceID == "" || req.Amount == "" || req.ListingID == 0 ||
		req.StartDate == "" || req.EndDate == "" || req.UserEmail == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required payment information")
		return
	}

	quotedCents, err := parseAmountCents(req.Amount)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	account, err := h.accounts.FindAccountByEmail(r.Context(), req.UserEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.bookingSvc.BookListing(r.Context(), service.BookingInput{
		Request: domain.RentalRequest{
			ListingID:       req.ListingID,
			RenterID:        account.ID,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			PickupLocation:  req.PickupLocation,
			DropoffLocation: req.DropoffLocation,
		},
		RenterEmail:       account.Email,
		SourceID:          req.SourceID,
		IdempotencyKey:    req.IdempotencyKey,
		QuotedAmountCents: quotedCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"paymentId": result.PaymentID,
		"rentalId":  result.RentalID,
	})
}

type freeRentalRequest struct {
	ListingID       int32  `json:"listingId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
}

// RequestFreeRental handles POST /api/rental-requests: the no-payment variant.
func (h *RentalHandler) RequestFreeRental(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r, h.accounts)
	if !ok {
		return
	}

	var req freeRentalRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.ListingID == 0 || req.StartDate == "" || req.EndDate == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required rental information")
		return
	}

	rental, err := h.bookingSvc.RequestFreeRental(r.Context(), domain.RentalRequest{
		ListingID:       req.ListingID,
		RenterID:        account.ID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"rentalId": rental.ID,
		"status":   rental.Status,
	})
}

// ListRentals handles GET /api/rentals: the caller's rental history.
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r, h.accounts)
	if !ok {
		return
	}

	rentals, err := h.rentalSvc.ListForRenter(r.Context(), account.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.RentalWithListing{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"rentals": rentals,
	})
}

// GetContactInfo handles GET /api/rental-contact-info/{rentalId}.
func (h *RentalHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	account, ok := requireAccount(w, r, h.accounts)
	if !ok {
		return
	}

	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 32)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid rental id")
		return
	}

	info, err := h.rentalSvc.GetContactInfo(r.Context(), int32(rentalID), account.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"phone_number":  info.PhoneNumber,
		"contact_email": info.ContactEmail,
	})
}

func parseAmountCents(amount json.Number) (int32, error) {
	dollars, err := amount.Float64()
	if err != nil {
		return 0, err
	}
	return int32(math.Round(dollars * 100)), nil
}
