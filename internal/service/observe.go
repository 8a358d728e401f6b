package service

import (
	"errors"
	"time"

	"github.com/MKhiriev/shielded-nft/internal/metrics"
	"github.com/MKhiriev/shielded-nft/internal/store"
)

// Operation names used as the "op" metric label.
const (
	opMint            = "mint"
	opTransfer        = "transfer"
	opReveal          = "reveal"
	opIssueViewingKey = "issue_viewing_key"
	opList            = "list"
	opStake           = "stake"
	opUnstake         = "unstake"
	opAirdrop         = "airdrop"
	opExport          = "export"
	opImport          = "import"
)

// outcomeKinds maps known errors to the "outcome" metric label.
var outcomeKinds = []struct {
	err  error
	kind string
}{
	{store.ErrNotFound, "not_found"},
	{store.ErrDuplicateIdentifier, "duplicate"},
	{ErrAssetLocked, "asset_locked"},
	{ErrAlreadyStaked, "already_staked"},
	{ErrNotStaked, "not_staked"},
	{ErrMaturityNotReached, "maturity_not_reached"},
	{ErrMalformedPacket, "malformed_packet"},
	{ErrInvalidRecipient, "invalid_recipient"},
	{ErrInvalidDataProvided, "invalid_data"},
	{ErrNotOwner, "not_owner"},
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	for _, k := range outcomeKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}

// observe records one finished operation. Call it deferred with a pointer
// to the named error result.
func observe(m *metrics.Metrics, op string, start time.Time, err *error) {
	m.ObserveOperation(op, outcome(*err), time.Since(start))
}
