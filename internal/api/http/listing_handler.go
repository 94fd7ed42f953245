package http

import (
	"math"
	"net/http"
	"strconv"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"
)

const maxUploadBytes = 10 << 20

// ListingHandler serves listing ingestion and search.
type ListingHandler struct {
	listingSvc service.ListingService
	accounts   accountResolver
}

func NewListingHandler(listingSvc service.ListingService, accounts accountResolver) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc, accounts: accounts}
}

// CreateListing handles POST /listings (multipart form, image included).
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	account, ok := h.requireAccount(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "Malformed multipart form")
		return
	}

	rentalType := domain.RentalType(r.FormValue("rentalType"))
	if rentalType == "" {
		rentalType = domain.RentalTypeRent
	}

	priceCents, err := parsePriceCents(r.FormValue("pricePerDay"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid pricePerDay")
		return
	}

	listing := &domain.Listing{
		OwnerID:          account.ID,
		Title:            r.FormValue("title"),
		ItemType:         r.FormValue("itemType"),
		Size:             r.FormValue("size"),
		Condition:        r.FormValue("condition"),
		WashInstructions: r.FormValue("washInstructions"),
		PricePerDayCents: priceCents,
		RentalType:       rentalType,
		AvailableFrom:    r.FormValue("startDate"),
		AvailableTo:      r.FormValue("endDate"),
		PhoneNumber:      r.FormValue("phoneNumber"),
		ContactEmail:     r.FormValue("contactEmail"),
	}

	var image *service.ImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &service.ImageUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	if err := h.listingSvc.CreateListing(r.Context(), listing, image); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Listing posted successfully",
		"listing": listing,
	})
}

// Search handles GET /search?query=.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingSvc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"listings": listings,
	})
}

func (h *ListingHandler) requireAccount(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	return requireAccount(w, r, h.accounts)
}

// parsePriceCents converts a decimal dollar amount ("5.00") to cents.
// An empty value is zero, valid only for free listings.
func parsePriceCents(value string) (int32, error) {
	if value == "" {
		return 0, nil
	}
	dollars, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int32(math.Round(dollars * 100)), nil
}
