package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order: ErrTokenIsExpired is also an
// ErrTokenIsExpiredOrInvalid and must win.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrNoOwnerInContext, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{errInvalidEntryID, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{store.ErrEntryNotFound, errorResponse{http.StatusNotFound, app.MsgEntryNotFound}},
	{store.ErrVersionConflict, errorResponse{http.StatusConflict, app.MsgVersionConflict}},
}

// statusFromError maps a service or store error to a status code and a
// generic message. Anything unknown is a 500; its details stay in the log.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
