package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers never learn which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
