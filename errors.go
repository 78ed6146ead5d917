package tillbook

import "errors"

var (
	ErrEmptyName        = errors.New("name is required")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrUnknownAccount   = errors.New("unknown account")
	ErrUnknownType      = errors.New("unknown account type")
	ErrDuplicateItem    = errors.New("stock item already exists")
	ErrItemNotFound     = errors.New("stock item not found")
	ErrNegative         = errors.New("value must not be negative")
	ErrNotPositive      = errors.New("value must be positive")
	ErrOversold         = errors.New("quantity sold exceeds opening stock")
	ErrIndexOutOfRange  = errors.New("index out of range")
)
