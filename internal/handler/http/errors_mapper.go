package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/shielded-nft/internal/service"
	"github.com/MKhiriev/shielded-nft/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidRecipient:      http.StatusBadRequest,
	service.ErrMalformedPacket:       http.StatusBadRequest,
	service.ErrAssetLocked:           http.StatusConflict,
	service.ErrAlreadyStaked:         http.StatusConflict,
	service.ErrNotStaked:             http.StatusConflict,
	service.ErrMaturityNotReached:    http.StatusConflict,
	service.ErrNotOwner:              http.StatusForbidden,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrNotFound:            http.StatusNotFound,
	store.ErrDuplicateIdentifier: http.StatusConflict,
	store.ErrInvalidRecord:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrSealing:              http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
