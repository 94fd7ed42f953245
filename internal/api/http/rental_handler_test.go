package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func paymentBody(t *testing.T, overrides map[string]interface{}) *bytes.Buffer {
	t.Helper()
	body := map[string]interface{}{
		"sourceId":        "cnon:card-nonce-ok",
		"amount":          15.00,
		"listingId":       1,
		"startDate":       "2026-06-01",
		"endDate":         "2026-06-03",
		"userEmail":       "renter@example.com",
		"pickupLocation":  "Downtown",
		"dropoffLocation": "Downtown",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
		} else {
			body[k] = v
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	return buf
}

func newRentalHandler() (*RentalHandler, *MockBookingService, *MockRentalService, *MockAccountResolver) {
	booking := new(MockBookingService)
	rentalSvc := new(MockRentalService)
	accounts := new(MockAccountResolver)
	return NewRentalHandler(booking, rentalSvc, accounts), booking, rentalSvc, accounts
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestProcessPayment_Success(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	booking.On("BookListing", mock.Anything, mock.MatchedBy(func(in service.BookingInput) bool {
		return in.Request.ListingID == 1 &&
			in.Request.RenterID == "acct-1" &&
			in.SourceID == "cnon:card-nonce-ok" &&
			in.QuotedAmountCents == 1500
	})).Return(&service.BookingResult{RentalID: 42, PaymentID: "pay_123", TotalAmountCents: 1500}, nil)

	req := httptest.NewRequest("POST", "/api/process-payment", paymentBody(t, nil))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "pay_123", out["paymentId"])
	assert.Equal(t, float64(42), out["rentalId"])
	booking.AssertExpectations(t)
}

func TestProcessPayment_MissingFields(t *testing.T) {
	handler, booking, _, _ := newRentalHandler()

	req := httptest.NewRequest("POST", "/api/process-payment",
		paymentBody(t, map[string]interface{}{"sourceId": nil}))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	booking.AssertNotCalled(t, "BookListing", mock.Anything, mock.Anything)
}

func TestProcessPayment_UnknownField(t *testing.T) {
	handler, booking, _, _ := newRentalHandler()

	req := httptest.NewRequest("POST", "/api/process-payment",
		paymentBody(t, map[string]interface{}{"surprise": "field"}))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	booking.AssertNotCalled(t, "BookListing", mock.Anything, mock.Anything)
}

func TestProcessPayment_UnknownUser(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(nil, domain.ErrAccountNotFound)

	req := httptest.NewRequest("POST", "/api/process-payment", paymentBody(t, nil))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	booking.AssertNotCalled(t, "BookListing", mock.Anything, mock.Anything)
}

func TestProcessPayment_Declined(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, mock.Anything).
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	booking.On("BookListing", mock.Anything, mock.Anything).
		Return(nil, &domain.GatewayError{Code: "CARD_DECLINED", Declined: true})

	req := httptest.NewRequest("POST", "/api/process-payment", paymentBody(t, nil))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, false, out["success"])
}

func TestProcessPayment_TransientEchoesKey(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, mock.Anything).
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	booking.On("BookListing", mock.Anything, mock.Anything).
		Return(nil, &domain.TransientError{IdempotencyKey: "key-7"})

	req := httptest.NewRequest("POST", "/api/process-payment", paymentBody(t, nil))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, true, out["retryable"])
	assert.Equal(t, "key-7", out["idempotencyKey"])
}

func TestProcessPayment_DateConflict(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, mock.Anything).
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	booking.On("BookListing", mock.Anything, mock.Anything).
		Return(nil, &domain.ConflictError{ListingID: 1})

	req := httptest.NewRequest("POST", "/api/process-payment", paymentBody(t, nil))
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequestFreeRental_Success(t *testing.T) {
	handler, booking, _, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	booking.On("RequestFreeRental", mock.Anything, mock.MatchedBy(func(req domain.RentalRequest) bool {
		return req.ListingID == 3 && req.RenterID == "acct-1"
	})).Return(&domain.Rental{ID: 9, Status: domain.RentalStatusPending}, nil)

	body := bytes.NewBufferString(`{"listingId":3,"startDate":"2026-06-01","endDate":"2026-06-02"}`)
	req := httptest.NewRequest("POST", "/api/rental-requests", body)
	req.Header.Set(userIDHeader, "renter@example.com")
	rec := httptest.NewRecorder()
	handler.RequestFreeRental(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "pending", out["status"])
}

func TestListRentals_RequiresHeader(t *testing.T) {
	handler, _, rentalSvc, _ := newRentalHandler()

	req := httptest.NewRequest("GET", "/api/rentals", nil)
	rec := httptest.NewRecorder()
	handler.ListRentals(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rentalSvc.AssertNotCalled(t, "ListForRenter", mock.Anything, mock.Anything)
}

func TestListRentals_EmptyHistoryIsArray(t *testing.T) {
	handler, _, rentalSvc, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	rentalSvc.On("ListForRenter", mock.Anything, "acct-1").
		Return([]domain.RentalWithListing(nil), nil)

	req := httptest.NewRequest("GET", "/api/rentals", nil)
	req.Header.Set(userIDHeader, "renter@example.com")
	rec := httptest.NewRecorder()
	handler.ListRentals(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	rentals, ok := out["rentals"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rentals, 0)
}

func TestGetContactInfo_GatedUntilConfirmed(t *testing.T) {
	handler, _, rentalSvc, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	rentalSvc.On("GetContactInfo", mock.Anything, int32(12), "acct-1").
		Return(nil, domain.ErrContactNotYetAvailable)

	req := httptest.NewRequest("GET", "/api/rental-contact-info/12", nil)
	req.Header.Set(userIDHeader, "renter@example.com")
	rec := httptest.NewRecorder()

	router := NewRouter(NewListingHandler(new(MockListingService), accounts), handler)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetContactInfo_Success(t *testing.T) {
	handler, _, rentalSvc, accounts := newRentalHandler()

	accounts.On("FindAccountByEmail", mock.Anything, "renter@example.com").
		Return(&domain.Account{ID: "acct-1", Email: "renter@example.com"}, nil)
	rentalSvc.On("GetContactInfo", mock.Anything, int32(12), "acct-1").
		Return(&domain.ContactInfo{PhoneNumber: "555-0100", ContactEmail: "owner@example.com"}, nil)

	req := httptest.NewRequest("GET", "/api/rental-contact-info/12", nil)
	req.Header.Set(userIDHeader, "renter@example.com")
	rec := httptest.NewRecorder()

	router := NewRouter(NewListingHandler(new(MockListingService), accounts), handler)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "555-0100", out["phone_number"])
	assert.Equal(t, "owner@example.com", out["contact_email"])
}
