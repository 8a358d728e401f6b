package store

import (
	"fmt"

	"github.com/MKhiriev/shielded-nft/models"
)

// validateRecord enforces the invariants every stored record satisfies.
func validateRecord(nft models.NFT) error {
	if _, err := models.ParseAssetID(string(nft.ID)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if nft.Owner == "" {
		return fmt.Errorf("%w: empty owner", ErrInvalidRecord)
	}
	if !nft.Lock.Valid() {
		return fmt.Errorf("%w: malformed lock state %q", ErrInvalidRecord, nft.Lock.Status)
	}
	return nil
}
