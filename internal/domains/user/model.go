package user

// User is a registered library account. PasswordHash holds the hex-encoded
// SHA-256 digest of the password and is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Admin        bool   `json:"admin"`
}
