package service

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when an authenticated caller is not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrLikeConflict is returned when a concurrent toggle inserted the like
	// first and the unique constraint rejected ours.
	ErrLikeConflict = errors.New("like already exists")
)
