package models

// User is the identity attached to a session. IsAdmin is true only for the
// fixed admin credential pair; every other login, including guest entry,
// produces a regular user.
type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
