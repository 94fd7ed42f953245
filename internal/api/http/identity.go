package http

import (
	"context"
	"errors"
	"net/http"

	"closetshare-backend/internal/domain"
)

// userIDHeader carries the caller's email; session management itself is the
// identity provider's problem, not ours.
const userIDHeader = "user-id"

type accountResolver interface {
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// requireAccount resolves the user-id header to an account or writes the
// failure response. The second return is false when the response is written.
func requireAccount(w http.ResponseWriter, r *http.Request, accounts accountResolver) (*domain.Account, bool) {
	email := r.Header.Get(userIDHeader)
	if email == "" {
		writeMessage(w, http.StatusUnauthorized, "User authentication required")
		return nil, false
	}

	account, err := accounts.FindAccountByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
		} else {
			writeMessage(w, http.StatusInternalServerError, "Identity lookup failed")
		}
		return nil, false
	}
	return account, true
}
