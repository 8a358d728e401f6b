package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidRecipient is returned when an owner or recipient address is
	// malformed.
	ErrInvalidRecipient = errors.New("invalid recipient address")

	// ErrAssetLocked is returned by Transfer while the asset is staked.
	ErrAssetLocked = errors.New("asset is locked")

	ErrAlreadyStaked      = errors.New("asset is already staked")
	ErrNotStaked          = errors.New("asset is not staked")
	ErrMaturityNotReached = errors.New("lock maturity is not reached")

	// ErrMalformedPacket is returned by Import for any packet that cannot be
	// decoded into a valid record.
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrNotOwner is returned when a viewing key is requested by someone
	// other than the current owner.
	ErrNotOwner = errors.New("principal is not the owner of the asset")
)
