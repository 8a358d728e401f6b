package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/shielded-nft/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// withHashCheck rejects a request whose body does not match its HashSHA256
// header. It is a no-op when no hash key is configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	if h.settings.HashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.withHashCheck").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(HashHeader)
		if !utils.VerifyHex(body, hashFromRequest) {
			h.logger.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
