package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/shielded-nft/internal/app"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/utils"
)

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	return nil
}

// writeBadRequest answers 400 with the error text.
func writeBadRequest(w http.ResponseWriter, r *http.Request, fn string, err error) {
	logger.FromRequest(r).Debug().Err(err).Str("func", fn).Msg("bad request")
	utils.WriteError(w, err, http.StatusBadRequest)
}

// writeServiceError maps a service error onto a status code. Internal
// failures are logged and answered without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("internal error")
		utils.WriteError(w, errors.New(app.MsgInternalServerError), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err, status)
}
