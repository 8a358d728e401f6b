package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAddress      = errors.New("invalid principal address")
	ErrInvalidAssetID      = errors.New("invalid asset identifier")
	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidLockMaturity = errors.New("invalid lock maturity")
	ErrEmptyRecipients     = errors.New("recipients list cannot be empty")
	ErrTooManyRecipients   = errors.New("too many recipients")
	ErrEmptyPacket         = errors.New("packet is required")
	ErrEmptyViewingKey     = errors.New("viewing key is required")
)
