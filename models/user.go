package models

import "time"

// User is an account of the sync server.
// Password is only ever populated on the way in (signup/login requests)
// and PasswordHash never leaves the server.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password carried by auth requests.
	Password string `json:"password,omitempty"`

	// PasswordHash is the keyed hash persisted by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u without credentials, safe to send to clients
// or to persist in a session file.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
