package company

import "errors"

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrBusinessNumberExists = errors.New("business number already registered")
)
