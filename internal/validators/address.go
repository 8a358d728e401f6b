package validators

import (
	"fmt"
	"regexp"
)

// addressPattern accepts the principal spellings used across chains:
// bech32 ("cosmos1..."), hex ("0x..."), DIDs ("did:key:...") and plain
// account names.
var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._:-]{0,127}$`)

// ValidateAddress reports whether addr is a well-formed principal address.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if !addressPattern.MatchString(addr) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return nil
}
