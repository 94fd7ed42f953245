package domain

// Account is a user record as known by the external identity provider.
// Accounts are never created or mutated here; they are resolved from an email
// carried in the user-id request header.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
