package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all public routes onto a gorilla/mux router.
func NewRouter(listingHandler *ListingHandler, rentalHandler *RentalHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.HandleFunc("/listings", listingHandler.CreateListing).Methods("POST")
	router.HandleFunc("/search", listingHandler.Search).Methods("GET")

	router.HandleFunc("/api/process-payment", rentalHandler.ProcessPayment).Methods("POST")
	router.HandleFunc("/api/rental-requests", rentalHandler.RequestFreeRental).Methods("POST")
	router.HandleFunc("/api/rentals", rentalHandler.ListRentals).Methods("GET")
	router.HandleFunc("/api/rental-contact-info/{rentalId}", rentalHandler.GetContactInfo).Methods("GET")

	return router
}

// RegisterUploadsDir exposes locally stored images when the mock storage
// backend is in use. Image URLs are {baseURL}/uploads/{key}.
func RegisterUploadsDir(router *mux.Router, uploadDir string) {
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	router.PathPrefix("/uploads/").Handler(fs).Methods("GET")
}
