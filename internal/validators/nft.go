package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shielded-nft/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the asset identifier of a request.
	FieldID = "id"

	// FieldOwner targets the owner principal of a mint, list or viewing key request.
	FieldOwner = "owner"

	// FieldName targets the public name of the minted metadata.
	FieldName = "name"

	// FieldLockMaturity targets the advisory maturity marker of a mint request.
	FieldLockMaturity = "lock_maturity"

	// FieldRecipient targets the new owner of a transfer.
	FieldRecipient = "to"

	// FieldRecipients targets the recipient list of an airdrop.
	FieldRecipients = "recipients"

	// FieldPacket targets the raw bytes of an import request.
	FieldPacket = "packet"

	// FieldViewingKey targets the credential of a view request. It is not
	// part of the default set: viewing without a key is allowed.
	FieldViewingKey = "viewing_key"
)

const (
	// MaxNameLength bounds the public name of an asset.
	MaxNameLength = 256

	// MaxAirdropRecipients bounds the fan-out of one airdrop request.
	MaxAirdropRecipients = 1000

	// MaxLockMaturity bounds the maturity marker, in epochs.
	MaxLockMaturity = 1 << 20
)

// NFTValidator implements [Validator] for the request models of the NFT
// registry. Both value and pointer forms are accepted.
type NFTValidator struct{}

// NewNFTValidator constructs a new NFTValidator and returns it as the
// Validator interface.
func NewNFTValidator() Validator {
	return &NFTValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.MintRequest / *models.MintRequest
//   - models.TransferRequest / *models.TransferRequest
//   - models.AssetRequest / *models.AssetRequest
//   - models.ListRequest / *models.ListRequest
//   - models.ViewingKeyRequest / *models.ViewingKeyRequest
//   - models.AirdropRequest / *models.AirdropRequest
//   - models.ImportRequest / *models.ImportRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *NFTValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MintRequest:
		return v.validateMintRequest(ctx, value, fields...)
	case *models.MintRequest:
		return v.validateMintRequest(ctx, *value, fields...)

	case models.TransferRequest:
		return v.validateTransferRequest(ctx, value, fields...)
	case *models.TransferRequest:
		return v.validateTransferRequest(ctx, *value, fields...)

	case models.AssetRequest:
		return v.validateAssetRequest(ctx, value, fields...)
	case *models.AssetRequest:
		return v.validateAssetRequest(ctx, *value, fields...)

	case models.ListRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(ctx, *value, fields...)

	case models.ViewingKeyRequest:
		return v.validateViewingKeyRequest(ctx, value, fields...)
	case *models.ViewingKeyRequest:
		return v.validateViewingKeyRequest(ctx, *value, fields...)

	case models.AirdropRequest:
		return v.validateAirdropRequest(ctx, value, fields...)
	case *models.AirdropRequest:
		return v.validateAirdropRequest(ctx, *value, fields...)

	case models.ImportRequest:
		return v.validateImportRequest(ctx, value, fields...)
	case *models.ImportRequest:
		return v.validateImportRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateID(id models.AssetID) error {
	if _, err := models.ParseAssetID(string(id)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAssetID, id)
	}
	return nil
}

func (v *NFTValidator) validateMintRequest(_ context.Context, req models.MintRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldName, FieldLockMaturity}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if err := ValidateAddress(req.Owner); err != nil {
				return err
			}
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
			if len(req.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldLockMaturity:
			if req.LockMaturity != nil && *req.LockMaturity > MaxLockMaturity {
				return ErrInvalidLockMaturity
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NFTValidator) validateTransferRequest(_ context.Context, req models.TransferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldRecipient}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(req.ID); err != nil {
				return err
			}
		case FieldRecipient:
			if err := ValidateAddress(req.To); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NFTValidator) validateAssetRequest(_ context.Context, req models.AssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(req.ID); err != nil {
				return err
			}
		case FieldViewingKey:
			if req.ViewingKey == "" {
				return ErrEmptyViewingKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NFTValidator) validateListRequest(_ context.Context, req models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			// an empty owner lists every asset
			if req.Owner == "" {
				continue
			}
			if err := ValidateAddress(req.Owner); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NFTValidator) validateViewingKeyRequest(_ context.Context, req models.ViewingKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwner}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(req.ID); err != nil {
				return err
			}
		case FieldOwner:
			if err := ValidateAddress(req.Owner); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateAirdropRequest checks the source id and the size of the recipient
// list. Individual recipients are not checked here: a malformed recipient
// is reported in its own airdrop outcome.
func (v *NFTValidator) validateAirdropRequest(_ context.Context, req models.AirdropRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldRecipients}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateID(req.ID); err != nil {
				return err
			}
		case FieldRecipients:
			if len(req.Recipients) == 0 {
				return ErrEmptyRecipients
			}
			if len(req.Recipients) > MaxAirdropRecipients {
				return fmt.Errorf("%w: %d > %d", ErrTooManyRecipients, len(req.Recipients), MaxAirdropRecipients)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NFTValidator) validateImportRequest(_ context.Context, req models.ImportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPacket}
	}

	for _, f := range fields {
		switch f {
		case FieldPacket:
			if len(req.Packet) == 0 {
				return ErrEmptyPacket
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
