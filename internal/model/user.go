package model

// User exists in the data model but is not exposed by any route — the
// original system shipped the same dormant scaffolding. Password holds a
// bcrypt hash, never the plaintext.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
