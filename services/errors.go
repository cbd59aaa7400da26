package services

import "errors"

// Service-level failure taxonomy. Controllers map these onto HTTP codes;
// raw gorm/driver errors never cross the controller boundary.
var (
	ErrInvalidInput       = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrUpstream           = errors.New("upstream unavailable")
)
