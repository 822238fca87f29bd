package model

// User is the authenticated account as reported by the remote API.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
