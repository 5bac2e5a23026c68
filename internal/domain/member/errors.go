package member

import "errors"

var (
	ErrMemberNotFound       = errors.New("company member not found")
	ErrMemberAlreadyExists  = errors.New("user already belongs to this company")
	ErrForbidden            = errors.New("not permitted for this company")
	ErrOwnerMembershipFixed = errors.New("the owner membership cannot be changed")
)
